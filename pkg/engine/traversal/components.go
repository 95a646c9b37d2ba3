package traversal

import (
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
)

// ConnectedComponents groups antennas by reachability, sharing one set of marks across DFS runs.
// Components are ordered by their first antenna; members keep DFS order.
func ConnectedComponents(g *da.AntennaGraph) [][]da.Index {
	components := make([][]da.Index, 0, 10)
	marks := g.NewVisitedMarks()

	for v := da.Index(0); v < da.Index(g.NumberOfVertices()); v++ {
		if marks.IsMarked(v) {
			continue
		}
		component := make([]da.Index, 0, 10)
		dfs(g, v, &component, marks)
		components = append(components, component)
	}

	return components
}
