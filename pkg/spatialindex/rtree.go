package spatialindex

import (
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/tidwall/rtree"
)

// Rtree indexes grid points. Each item is a degenerate box at its (row, col).
type Rtree[T any] struct {
	tr *rtree.RTreeG[T]
}

func NewRtree[T any]() *Rtree[T] {
	var tr rtree.RTreeG[T]
	return &Rtree[T]{
		tr: &tr,
	}
}

func point(c da.Coordinate) [2]float64 {
	return [2]float64{float64(c.Row), float64(c.Col)}
}

func (rt *Rtree[T]) Insert(c da.Coordinate, item T) {
	p := point(c)
	rt.tr.Insert(p, p, item)
}

func (rt *Rtree[T]) Len() int {
	return rt.tr.Len()
}

// SearchRect returns every item whose point lies in the closed rectangle [lower, upper].
func (rt *Rtree[T]) SearchRect(lower, upper da.Coordinate) []T {
	results := make([]T, 0, 10)
	rt.tr.Search(point(lower), point(upper),
		func(min, max [2]float64, data T) bool {
			results = append(results, data)
			return true
		})
	return results
}

func (rt *Rtree[T]) SearchPoint(c da.Coordinate) []T {
	return rt.SearchRect(c, c)
}

// SearchBounds returns the items lying inside the grid extent b.
func (rt *Rtree[T]) SearchBounds(b da.Bounds) []T {
	if b.Rows <= 0 || b.Cols <= 0 {
		return []T{}
	}
	return rt.SearchRect(da.NewCoordinate(0, 0), da.NewCoordinate(b.Rows-1, b.Cols-1))
}

func IndexAntennas(g *da.AntennaGraph) *Rtree[*da.Antenna] {
	rt := NewRtree[*da.Antenna]()
	g.ForAntennas(func(a *da.Antenna) {
		rt.Insert(a.GetCoordinate(), a)
	})
	return rt
}

// IndexLocations stores each location under its position in locs, so callers can restore order.
func IndexLocations(locs []da.Location) *Rtree[int] {
	rt := NewRtree[int]()
	for i, l := range locs {
		rt.Insert(l.Coordinate, i)
	}
	return rt
}
