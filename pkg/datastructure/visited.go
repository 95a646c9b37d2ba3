package datastructure

// VisitedMarks is the per-run visited state of a traversal, one mark per antenna.
type VisitedMarks []bool

func NewVisitedMarks(n int) VisitedMarks {
	return make(VisitedMarks, n)
}

func (vm VisitedMarks) Mark(id Index) {
	vm[id] = true
}

func (vm VisitedMarks) Unmark(id Index) {
	vm[id] = false
}

func (vm VisitedMarks) IsMarked(id Index) bool {
	return vm[id]
}

func (vm VisitedMarks) Reset() {
	for i := range vm {
		vm[i] = false
	}
}

func (vm VisitedMarks) Count() int {
	n := 0
	for _, m := range vm {
		if m {
			n++
		}
	}
	return n
}
