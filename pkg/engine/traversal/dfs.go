package traversal

import (
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// DFS runs a depth-first search from origin on fresh visited marks.
func DFS(g *da.AntennaGraph, origin *da.Antenna) ([]Visit, error) {
	return DFSWithMarks(g, origin, g.NewVisitedMarks())
}

// DFSWithMarks runs a depth-first search using the caller's marks. Antennas already marked are
// skipped, including the origin, so the caller must reset marks left by a previous run.
// Neighbors are followed in their stored (ascending index) order.
func DFSWithMarks(g *da.AntennaGraph, origin *da.Antenna, marks da.VisitedMarks) ([]Visit, error) {
	if !g.HasAntenna(origin) {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "dfs origin is not an antenna of this graph")
	}

	order := make([]da.Index, 0)
	dfs(g, origin.GetID(), &order, marks)

	output := make([]Visit, len(order))
	for i, v := range order {
		output[i] = newVisit(g.GetAntenna(v))
	}
	return output, nil
}

func dfs(g *da.AntennaGraph, v da.Index, output *[]da.Index, marks da.VisitedMarks) {
	if marks.IsMarked(v) {
		return
	}
	marks.Mark(v)
	*output = append(*output, v)

	for _, w := range g.GetNeighbors(v) {
		if !marks.IsMarked(w) {
			dfs(g, w, output, marks)
		}
	}
}
