package traversal

import (
	"fmt"

	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
)

// Visit is emitted once per antenna reached by DFS or BFS, in visitation order.
type Visit struct {
	Coordinate da.Coordinate
	Label      rune
}

func newVisit(a *da.Antenna) Visit {
	return Visit{Coordinate: a.GetCoordinate(), Label: a.GetLabel()}
}

func (v Visit) String() string {
	return fmt.Sprintf("%v [%c]", v.Coordinate, v.Label)
}

// Path is one simple path, origin first.
type Path []da.Coordinate

func (p Path) Len() int {
	return len(p)
}
