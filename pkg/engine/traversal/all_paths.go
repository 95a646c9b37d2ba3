package traversal

import (
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// AllPaths enumerates every simple path from origin to destination in neighbor order.
// When origin == destination the single-antenna path is the only result.
func AllPaths(g *da.AntennaGraph, origin, destination *da.Antenna) ([]Path, error) {
	if !g.HasAntenna(origin) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "path origin is not an antenna of this graph")
	}
	if !g.HasAntenna(destination) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "path destination is not an antenna of this graph")
	}

	ps := &pathSearch{
		g:      g,
		target: destination.GetID(),
		marks:  g.NewVisitedMarks(),
		buf:    make([]da.Index, 0, g.NumberOfVertices()),
		paths:  make([]Path, 0),
	}
	ps.visit(origin.GetID())
	return ps.paths, nil
}

type pathSearch struct {
	g      *da.AntennaGraph
	target da.Index
	marks  da.VisitedMarks
	buf    []da.Index
	paths  []Path
}

// visit extends the current path with v and unmarks v on the way out, so v can take part in
// other paths through a different prefix.
func (ps *pathSearch) visit(v da.Index) {
	if ps.marks.IsMarked(v) {
		return
	}
	ps.marks.Mark(v)
	ps.buf = append(ps.buf, v)

	if v == ps.target {
		ps.emit()
	} else {
		for _, w := range ps.g.GetNeighbors(v) {
			ps.visit(w)
		}
	}

	ps.buf = ps.buf[:len(ps.buf)-1]
	ps.marks.Unmark(v)
}

func (ps *pathSearch) emit() {
	path := make(Path, len(ps.buf))
	for i, v := range ps.buf {
		path[i] = ps.g.GetAntenna(v).GetCoordinate()
	}
	ps.paths = append(ps.paths, path)
}
