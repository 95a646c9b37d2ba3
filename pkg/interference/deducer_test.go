package interference

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	da "github.com/lintang-b-s/Antennax/pkg/datastructure"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loc(row, col int) da.Location {
	return da.NewLocation(row, col)
}

func TestDeduce(t *testing.T) {
	testCases := []struct {
		name    string
		triples []da.Triple
		want    []da.Location
	}{
		{
			name:    "empty grid",
			triples: nil,
			want:    []da.Location{},
		},
		{
			name:    "A.A",
			triples: []da.Triple{da.NewTriple(0, 0, 'A'), da.NewTriple(0, 2, 'A')},
			want:    []da.Location{loc(0, -2), loc(0, 4)},
		},
		{
			name: "pairs in order, L1 before L2, other labels ignored",
			triples: []da.Triple{da.NewTriple(3, 4, 'a'), da.NewTriple(4, 8, 'a'),
				da.NewTriple(5, 5, 'a'), da.NewTriple(1, 1, 'B')},
			want: []da.Location{
				loc(2, 0), loc(5, 12),
				loc(1, 3), loc(7, 6),
				loc(3, 11), loc(6, 2),
			},
		},
		{
			name:    "single antenna per label",
			triples: []da.Triple{da.NewTriple(0, 0, 'A'), da.NewTriple(0, 1, 'B')},
			want:    []da.Location{},
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			g, err := da.NewAntennaGraph(tt.triples)
			require.NoError(t, err)

			got := Deduce(g)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.want), Count(g))
		})
	}
}

func TestFilters(t *testing.T) {
	// 'a' at (0,0),(1,1),(2,2) on a 3x3 grid:
	// (0,0)-(1,1) -> (-1,-1),(2,2); (0,0)-(2,2) -> (-2,-2),(4,4); (1,1)-(2,2) -> (0,0),(3,3)
	g, err := da.NewAntennaGraph([]da.Triple{da.NewTriple(0, 0, 'a'), da.NewTriple(1, 1, 'a'),
		da.NewTriple(2, 2, 'a')})
	require.NoError(t, err)
	g.SetBounds(da.NewBounds(3, 3))

	locs := Deduce(g)
	require.Len(t, locs, 6)

	assert.Equal(t, []da.Location{loc(2, 2), loc(0, 0)}, WithinBounds(locs, g.Bounds()))
	assert.Empty(t, WithinBounds(locs, da.NewBounds(0, 0)))
	assert.Equal(t, []da.Location{loc(2, 2), loc(0, 0)}, OnAntennas(g, locs))
	assert.Equal(t, []da.Location{loc(3, 3), loc(0, 0), loc(4, 4), loc(-2, -2), loc(2, 2), loc(-1, -1)},
		Reverse(locs))

	dup := append(append([]da.Location{}, locs...), loc(2, 2), loc(9, 9), loc(9, 9))
	assert.Equal(t, append(append([]da.Location{}, locs...), loc(9, 9)), Unique(dup))
}

func TestDeduceCountProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	labels := []rune{'.', 'A', 'B', 'c'}

	properties.Property("2*C(k,2) locations per label", prop.ForAll(
		func(cells []int) bool {
			triples := make([]da.Triple, 0)
			perLabel := make(map[rune]int)
			for i, v := range cells {
				if v == 0 {
					continue
				}
				triples = append(triples, da.NewTriple(i/4, i%4, labels[v]))
				perLabel[labels[v]]++
			}
			g, err := da.NewAntennaGraph(triples)
			if err != nil {
				return false
			}
			want := 0
			for _, k := range perLabel {
				want += 2 * (k * (k - 1) / 2)
			}
			return len(Deduce(g)) == want && Count(g) == want
		},
		gen.SliceOfN(16, gen.IntRange(0, len(labels)-1)),
	))

	properties.TestingRun(t)
}
