package traversal

import (
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// BFS runs a breadth-first search from origin on fresh visited marks.
func BFS(g *da.AntennaGraph, origin *da.Antenna) ([]Visit, error) {
	return BFSWithMarks(g, origin, g.NewVisitedMarks())
}

// BFSWithMarks marks an antenna when it is discovered and emits it when it is dequeued, so no
// antenna is ever queued twice. A marked origin yields no visits.
func BFSWithMarks(g *da.AntennaGraph, origin *da.Antenna, marks da.VisitedMarks) ([]Visit, error) {
	if !g.HasAntenna(origin) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "bfs origin is not an antenna of this graph")
	}

	output := make([]Visit, 0)
	if marks.IsMarked(origin.GetID()) {
		return output, nil
	}

	queue := make([]da.Index, 0, g.NumberOfVertices())
	marks.Mark(origin.GetID())
	queue = append(queue, origin.GetID())

	for len(queue) > 0 {
		v := queue[0]
		queue = queue[1:]
		output = append(output, newVisit(g.GetAntenna(v)))

		for _, w := range g.GetNeighbors(v) {
			if !marks.IsMarked(w) {
				marks.Mark(w)
				queue = append(queue, w)
			}
		}
	}

	return output, nil
}
