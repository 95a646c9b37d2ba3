// Package interference derives harmful-effect locations from pairs of same-label antennas.
//
// For antennas a and b sharing a label the two locations are the reflections of each antenna
// through the other:
//
//	L1 = 2a - b
//	L2 = 2b - a
//
// Deduce keeps every reflection, out-of-grid points and repeats included. WithinBounds and
// Unique are the opt-in filters.
package interference

import (
	"sort"

	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/spatialindex"
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// Deduce visits each unordered pair (v1, v2), v2 after v1 in insertion order, once.
// Locations come out in computation order: pairs in order, L1 before L2.
func Deduce(g *da.AntennaGraph) []da.Location {
	ants := g.Antennas()
	locs := make([]da.Location, 0, Count(g))

	for i := 0; i < len(ants); i++ {
		v1 := ants[i]
		for j := i + 1; j < len(ants); j++ {
			v2 := ants[j]
			if v1.GetLabel() != v2.GetLabel() {
				continue
			}
			l1 := v1.GetCoordinate().Reflect(v2.GetCoordinate())
			l2 := v2.GetCoordinate().Reflect(v1.GetCoordinate())
			locs = append(locs, da.Location{Coordinate: l1}, da.Location{Coordinate: l2})
		}
	}
	return locs
}

// Count is the number of locations Deduce yields: 2*C(k,2) summed over labels.
func Count(g *da.AntennaGraph) int {
	perLabel := make(map[rune]int)
	g.ForAntennas(func(a *da.Antenna) {
		perLabel[a.GetLabel()]++
	})
	n := 0
	for _, k := range perLabel {
		n += k * (k - 1)
	}
	return n
}

// Reverse returns locs most-recently-computed first.
func Reverse(locs []da.Location) []da.Location {
	return util.ReverseG(locs)
}

// WithinBounds keeps the locations inside the grid, in their original order.
func WithinBounds(locs []da.Location, b da.Bounds) []da.Location {
	idx := spatialindex.IndexLocations(locs).SearchBounds(b)
	sort.Ints(idx)

	res := make([]da.Location, 0, len(idx))
	for _, i := range idx {
		res = append(res, locs[i])
	}
	return res
}

// Unique drops repeated locations, keeping the first occurrence.
func Unique(locs []da.Location) []da.Location {
	seen := make(map[da.Coordinate]struct{}, len(locs))
	res := make([]da.Location, 0, len(locs))
	for _, l := range locs {
		if _, ok := seen[l.Coordinate]; ok {
			continue
		}
		seen[l.Coordinate] = struct{}{}
		res = append(res, l)
	}
	return res
}

// OnAntennas returns the locations that coincide with an antenna of g.
func OnAntennas(g *da.AntennaGraph, locs []da.Location) []da.Location {
	antennaIdx := spatialindex.IndexAntennas(g)
	res := make([]da.Location, 0)
	for _, l := range locs {
		if len(antennaIdx.SearchPoint(l.Coordinate)) > 0 {
			res = append(res, l)
		}
	}
	return res
}
