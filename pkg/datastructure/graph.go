package datastructure

import (
	"github.com/lintang-b-s/Antennax/pkg/util"
)

// AntennaGraph connects every pair of antennas sharing a label, so each label forms a clique.
// Antennas are kept in insertion order; adjacency lists hold indexes into that slice.
type AntennaGraph struct {
	antennas []*Antenna
	adj      [][]Index // adjacency list
	byCoord  map[Coordinate]Index
	bounds   Bounds
	numEdges int
}

// NewAntennaGraph builds the graph from grid triples, in the given order, and derives adjacency.
// A coordinate that appears twice fails the whole build.
func NewAntennaGraph(triples []Triple) (*AntennaGraph, error) {
	g := &AntennaGraph{
		antennas: make([]*Antenna, 0, len(triples)),
		byCoord:  make(map[Coordinate]Index, len(triples)),
	}

	for _, t := range triples {
		coord := NewCoordinate(t.Row, t.Col)
		if prev, ok := g.byCoord[coord]; ok {
			return nil, util.WrapErrorf(nil, util.ErrInvalidInput,
				"duplicate antenna at %v: [%c] collides with [%c]", coord, t.Label, g.antennas[prev].GetLabel())
		}
		id := Index(len(g.antennas))
		g.antennas = append(g.antennas, NewAntenna(id, coord, t.Label))
		g.byCoord[coord] = id

		if t.Row+1 > g.bounds.Rows {
			g.bounds.Rows = t.Row + 1
		}
		if t.Col+1 > g.bounds.Cols {
			g.bounds.Cols = t.Col + 1
		}
	}

	g.DeriveAdjacency()
	return g, nil
}

// DeriveAdjacency recomputes every adjacency list from scratch. For each ordered pair (v1, v2)
// of distinct antennas with equal label, v2 is appended to v1's list, so neighbors are stored in
// ascending index order.
func (g *AntennaGraph) DeriveAdjacency() {
	g.adj = make([][]Index, len(g.antennas))
	g.numEdges = 0

	for i, v1 := range g.antennas {
		for j, v2 := range g.antennas {
			if i == j || v1.GetLabel() != v2.GetLabel() {
				continue
			}
			g.adj[i] = append(g.adj[i], Index(j))
			g.numEdges++
		}
	}
}

// SetBounds overrides the extent derived from the antennas, e.g. with the loader's line count
// and longest line.
func (g *AntennaGraph) SetBounds(b Bounds) {
	g.bounds = b
}

func (g *AntennaGraph) Bounds() Bounds {
	return g.bounds
}

func (g *AntennaGraph) NumberOfVertices() int {
	return len(g.antennas)
}

// NumberOfEdges counts directed entries, so each undirected pairing counts twice.
func (g *AntennaGraph) NumberOfEdges() int {
	return g.numEdges
}

func (g *AntennaGraph) GetAntenna(id Index) *Antenna {
	return g.antennas[id]
}

func (g *AntennaGraph) HasAntenna(a *Antenna) bool {
	return a != nil && int(a.GetID()) < len(g.antennas) && g.antennas[a.GetID()] == a
}

func (g *AntennaGraph) GetAntennaAt(coord Coordinate) (*Antenna, error) {
	id, ok := g.byCoord[coord]
	if !ok {
		return nil, util.WrapErrorf(nil, util.ErrNotFound, "no antenna at %v", coord)
	}
	return g.antennas[id], nil
}

func (g *AntennaGraph) GetNeighbors(id Index) []Index {
	return g.adj[id]
}

func (g *AntennaGraph) ForAntennas(handle func(a *Antenna)) {
	for _, a := range g.antennas {
		handle(a)
	}
}

func (g *AntennaGraph) ForNeighborsOf(id Index, handle func(n *Antenna)) {
	for _, n := range g.adj[id] {
		handle(g.antennas[n])
	}
}

func (g *AntennaGraph) Antennas() []*Antenna {
	return g.antennas
}

// FindNthByLabel returns the n-th antenna (0-based, insertion order) carrying label.
func (g *AntennaGraph) FindNthByLabel(label rune, n int) (*Antenna, error) {
	if n >= 0 {
		count := 0
		for _, a := range g.antennas {
			if a.GetLabel() != label {
				continue
			}
			if count == n {
				return a, nil
			}
			count++
		}
	}
	return nil, util.WrapErrorf(nil, util.ErrNotFound, "antenna #%d with label [%c] not found", n, label)
}

func (g *AntennaGraph) AntennasByLabel(label rune) []*Antenna {
	res := make([]*Antenna, 0)
	for _, a := range g.antennas {
		if a.GetLabel() == label {
			res = append(res, a)
		}
	}
	return res
}

// Labels returns distinct labels in the order they first appear.
func (g *AntennaGraph) Labels() []rune {
	seen := make(map[rune]struct{})
	labels := make([]rune, 0)
	for _, a := range g.antennas {
		if _, ok := seen[a.GetLabel()]; ok {
			continue
		}
		seen[a.GetLabel()] = struct{}{}
		labels = append(labels, a.GetLabel())
	}
	return labels
}

func (g *AntennaGraph) NewVisitedMarks() VisitedMarks {
	return NewVisitedMarks(len(g.antennas))
}

// ResetVisitedMarks clears marks left by an earlier traversal that shared them.
func (g *AntennaGraph) ResetVisitedMarks(marks VisitedMarks) {
	util.AssertPanic(len(marks) == len(g.antennas), "visited marks do not match graph size")
	marks.Reset()
}
