package traversal

import (
	"testing"

	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/lintang-b-s/Antennax/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildGraph(t *testing.T, triples ...da.Triple) *da.AntennaGraph {
	t.Helper()
	g, err := da.NewAntennaGraph(triples)
	require.NoError(t, err)
	return g
}

func coords(visits []Visit) []da.Coordinate {
	res := make([]da.Coordinate, len(visits))
	for i, v := range visits {
		res[i] = v.Coordinate
	}
	return res
}

func c(row, col int) da.Coordinate {
	return da.NewCoordinate(row, col)
}

func TestThreeClique(t *testing.T) {
	g := buildGraph(t, da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'A'), da.NewTriple(0, 2, 'A'))
	origin, err := g.FindNthByLabel('A', 0)
	require.NoError(t, err)
	dest, err := g.GetAntennaAt(c(0, 2))
	require.NoError(t, err)

	for id := da.Index(0); id < 3; id++ {
		assert.Len(t, g.GetNeighbors(id), 2)
	}

	dfsVisits, err := DFS(g, origin)
	require.NoError(t, err)
	assert.Equal(t, []da.Coordinate{c(0, 0), c(0, 1), c(0, 2)}, coords(dfsVisits))
	assert.Equal(t, 'A', dfsVisits[0].Label)

	paths, err := AllPaths(g, origin, dest)
	require.NoError(t, err)
	assert.Equal(t, []Path{
		{c(0, 0), c(0, 1), c(0, 2)},
		{c(0, 0), c(0, 2)},
	}, paths)
}

func TestDFSAndBFSOrder(t *testing.T) {
	// label A: 4-clique, label B: pair
	g := buildGraph(t,
		da.NewTriple(0, 0, 'A'), da.NewTriple(0, 5, 'B'), da.NewTriple(1, 1, 'A'),
		da.NewTriple(2, 2, 'A'), da.NewTriple(3, 3, 'A'), da.NewTriple(4, 4, 'B'))

	origin, err := g.FindNthByLabel('A', 1)
	require.NoError(t, err)

	dfsVisits, err := DFS(g, origin)
	require.NoError(t, err)
	// recursion goes deep first: (1,1) -> (0,0) -> (2,2) -> (3,3)
	assert.Equal(t, []da.Coordinate{c(1, 1), c(0, 0), c(2, 2), c(3, 3)}, coords(dfsVisits))

	bfsVisits, err := BFS(g, origin)
	require.NoError(t, err)
	assert.Equal(t, []da.Coordinate{c(1, 1), c(0, 0), c(2, 2), c(3, 3)}, coords(bfsVisits))
	assert.ElementsMatch(t, coords(dfsVisits), coords(bfsVisits))
}

func TestCliqueOrderFromLastAntenna(t *testing.T) {
	// neighbor lists are ascending, so both searches continue from the lowest index
	g := buildGraph(t, da.NewTriple(0, 0, 'x'), da.NewTriple(0, 1, 'x'), da.NewTriple(0, 2, 'x'))
	origin, _ := g.FindNthByLabel('x', 2)

	dfsVisits, err := DFS(g, origin)
	require.NoError(t, err)
	bfsVisits, err := BFS(g, origin)
	require.NoError(t, err)

	assert.Equal(t, []da.Coordinate{c(0, 2), c(0, 0), c(0, 1)}, coords(dfsVisits))
	assert.Equal(t, []da.Coordinate{c(0, 2), c(0, 0), c(0, 1)}, coords(bfsVisits))
}

func TestTraversalWithMarks(t *testing.T) {
	g := buildGraph(t, da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'A'), da.NewTriple(1, 0, 'B'))
	origin, _ := g.FindNthByLabel('A', 0)
	marks := g.NewVisitedMarks()

	first, err := DFSWithMarks(g, origin, marks)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	// marks left over from the first run turn the second run into a no-op
	again, err := DFSWithMarks(g, origin, marks)
	require.NoError(t, err)
	assert.Empty(t, again)
	bfsAgain, err := BFSWithMarks(g, origin, marks)
	require.NoError(t, err)
	assert.Empty(t, bfsAgain)

	g.ResetVisitedMarks(marks)
	bfsVisits, err := BFSWithMarks(g, origin, marks)
	require.NoError(t, err)
	assert.Len(t, bfsVisits, 2)
	assert.Equal(t, 2, marks.Count())
}

func TestTraversalNotFound(t *testing.T) {
	g := buildGraph(t)
	other := buildGraph(t, da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'A'))
	foreign, _ := other.FindNthByLabel('A', 0)

	origin, err := g.FindNthByLabel('A', 0)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Nil(t, origin)

	_, err = DFS(g, origin)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = BFS(g, origin)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = AllPaths(g, origin, origin)
	assert.ErrorIs(t, err, util.ErrNotFound)
	_, err = DFS(g, foreign)
	assert.ErrorIs(t, err, util.ErrNotFound)

	_, err = AllPaths(other, foreign, nil)
	assert.ErrorIs(t, err, util.ErrNotFound)
	assert.Empty(t, ConnectedComponents(g))
}

func TestAllPaths(t *testing.T) {
	g := buildGraph(t,
		da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'A'), da.NewTriple(0, 2, 'A'),
		da.NewTriple(0, 3, 'A'), da.NewTriple(1, 0, 'B'), da.NewTriple(1, 1, 'B'))

	testCases := []struct {
		name      string
		origin    da.Coordinate
		dest      da.Coordinate
		wantPaths int
		wantFirst Path
	}{
		{
			name:      "4-clique has 1 + 2 + 2 simple paths",
			origin:    c(0, 0),
			dest:      c(0, 3),
			wantPaths: 5,
			wantFirst: Path{c(0, 0), c(0, 1), c(0, 2), c(0, 3)},
		},
		{
			name:      "two antennas form a chain with one path",
			origin:    c(1, 0),
			dest:      c(1, 1),
			wantPaths: 1,
			wantFirst: Path{c(1, 0), c(1, 1)},
		},
		{
			name:      "different labels are unreachable",
			origin:    c(0, 0),
			dest:      c(1, 1),
			wantPaths: 0,
		},
		{
			name:      "origin equals destination",
			origin:    c(1, 1),
			dest:      c(1, 1),
			wantPaths: 1,
			wantFirst: Path{c(1, 1)},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			o, err := g.GetAntennaAt(tt.origin)
			require.NoError(t, err)
			d, err := g.GetAntennaAt(tt.dest)
			require.NoError(t, err)

			paths, err := AllPaths(g, o, d)
			require.NoError(t, err)
			require.Len(t, paths, tt.wantPaths)
			if tt.wantPaths > 0 {
				assert.Equal(t, tt.wantFirst, paths[0])
			}
			for _, p := range paths {
				assert.Equal(t, tt.origin, p[0])
				assert.Equal(t, tt.dest, p[len(p)-1])
				seen := make(map[da.Coordinate]bool)
				for _, pc := range p {
					assert.False(t, seen[pc], "repeated %v in %v", pc, p)
					seen[pc] = true
				}
			}
		})
	}
}

func TestConnectedComponents(t *testing.T) {
	g := buildGraph(t,
		da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'B'), da.NewTriple(0, 2, 'A'),
		da.NewTriple(1, 0, 'C'), da.NewTriple(1, 1, 'B'))

	assert.Equal(t, [][]da.Index{{0, 2}, {1, 4}, {3}}, ConnectedComponents(g))
}
