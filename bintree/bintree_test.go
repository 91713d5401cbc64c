package bintree_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/bintree"
	"github.com/katalvlaran/lvmaze/grid"
)

func onlyOpen(c grid.Cell) bool { return c == grid.Open }

// TestGenerate_InvalidDimensions verifies the 2×2 minimum.
func TestGenerate_InvalidDimensions(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
	}{
		{"OneRow", 1, 5},
		{"OneCol", 5, 1},
		{"Zero", 0, 0},
		{"Negative", -3, 4},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := bintree.FromSeed(tc.rows, tc.cols, false, 1)
			assert.ErrorIs(t, err, bintree.ErrInvalidDimensions)
		})
	}
}

// TestGenerate_NeedsRand ensures no hidden global source is used.
func TestGenerate_NeedsRand(t *testing.T) {
	t.Parallel()

	_, err := bintree.Generate(5, 5)
	assert.ErrorIs(t, err, bintree.ErrNeedRandSource)

	assert.Panics(t, func() { bintree.WithRand(nil) })
}

// TestGenerate_Deterministic checks that a seed fully determines the grid,
// for both exit policies.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 20; seed++ {
		for _, random := range []bool{false, true} {
			a, err := bintree.FromSeed(15, 21, random, seed)
			require.NoError(t, err)
			b, err := bintree.FromSeed(15, 21, random, seed)
			require.NoError(t, err)
			assert.True(t, a.Equal(b), "seed=%d random=%v", seed, random)
		}
	}

	r1 := rand.New(rand.NewSource(7))
	r2 := rand.New(rand.NewSource(7))
	a, err := bintree.Generate(9, 9, bintree.WithRand(r1))
	require.NoError(t, err)
	b, err := bintree.Generate(9, 9, bintree.WithRand(r2))
	require.NoError(t, err)
	assert.True(t, a.Equal(b))
}

// TestGenerate_SpanningTree checks the load-bearing property: the Open
// cells are one connected, acyclic region.
func TestGenerate_SpanningTree(t *testing.T) {
	t.Parallel()

	sizes := [][2]int{{3, 3}, {5, 5}, {7, 11}, {15, 15}, {4, 6}, {6, 9}, {10, 10}}
	for _, sz := range sizes {
		for seed := int64(0); seed < 10; seed++ {
			g, err := bintree.FromSeed(sz[0], sz[1], false, seed)
			require.NoError(t, err)

			comps := g.Components(onlyOpen)
			require.Len(t, comps, 1, "size=%v seed=%d", sz, seed)
			n := len(comps[0])
			assert.Equal(t, n-1, g.Adjacencies(onlyOpen), "cycle in size=%v seed=%d", sz, seed)
		}
	}
}

// TestGenerate_OpenCellCount: with odd dimensions and fixed exits no room
// is overwritten, so Open cells = rooms + (rooms − 1) carved walls.
func TestGenerate_OpenCellCount(t *testing.T) {
	t.Parallel()

	for _, sz := range [][2]int{{3, 5}, {5, 5}, {9, 13}, {21, 21}} {
		g, err := bintree.FromSeed(sz[0], sz[1], false, 3)
		require.NoError(t, err)
		rooms := bintree.RoomCount(sz[0], sz[1])
		assert.Equal(t, 2*rooms-1, g.Count(grid.Open), "size=%v", sz)
		assert.Equal(t, 2, g.Count(grid.Opening), "size=%v", sz)
	}
}

// TestGenerate_FixedExits pins the scenario from the 5×5, seed 42 request.
func TestGenerate_FixedExits(t *testing.T) {
	t.Parallel()

	g, err := bintree.FromSeed(5, 5, false, 42)
	require.NoError(t, err)

	v, err := g.Get(grid.At(0, 3))
	require.NoError(t, err)
	assert.Equal(t, grid.Opening, v)
	v, err = g.Get(grid.At(4, 1))
	require.NoError(t, err)
	assert.Equal(t, grid.Opening, v)
	assert.Equal(t, []grid.Coord{grid.At(0, 3), grid.At(4, 1)}, g.Find(grid.Opening))
}

// TestGenerate_RandomExits checks that random openings are two distinct
// border cells.
func TestGenerate_RandomExits(t *testing.T) {
	t.Parallel()

	for seed := int64(0); seed < 200; seed++ {
		g, err := bintree.FromSeed(7, 9, true, seed)
		require.NoError(t, err)
		openings := g.Find(grid.Opening)
		require.Len(t, openings, 2, "seed=%d", seed)
		for _, c := range openings {
			assert.True(t, g.IsBorder(c), "seed=%d opening %v not on border", seed, c)
		}
	}

	// Even the smallest maze has enough border cells for two distinct exits.
	for seed := int64(0); seed < 50; seed++ {
		g, err := bintree.FromSeed(2, 2, true, seed)
		require.NoError(t, err)
		assert.Len(t, g.Find(grid.Opening), 2)
	}
}

// TestGenerate_TopRowIsCorridor: rooms in row 1 cannot go up, so each one
// except the last carves right and the row is a single corridor.
func TestGenerate_TopRowIsCorridor(t *testing.T) {
	t.Parallel()

	g, err := bintree.FromSeed(9, 11, false, 99)
	require.NoError(t, err)
	for c := 1; c <= 9; c++ {
		v, _ := g.Get(grid.At(1, c))
		assert.Equal(t, grid.Open, v, "col %d", c)
	}
	// The last room column can only go up, so column cols−2 is open from
	// row 1 down to the last room row.
	for r := 1; r <= 7; r++ {
		v, _ := g.Get(grid.At(r, 9))
		assert.Equal(t, grid.Open, v, "row %d", r)
	}
}

func TestRoomHelpers(t *testing.T) {
	assert.True(t, bintree.IsRoom(grid.At(1, 3)))
	assert.False(t, bintree.IsRoom(grid.At(2, 3)))
	assert.Equal(t, 4, bintree.RoomCount(5, 5))
	assert.Equal(t, 1, bintree.RoomCount(2, 2))
	assert.Equal(t, 6, bintree.RoomCount(4, 7))
	assert.Zero(t, bintree.RoomCount(0, 5))
}

// ExampleFromSeed shows a 3×5 maze: two rooms in one row, joined by the
// only possible carve, with the fixed exits above and below.
func ExampleFromSeed() {
	g, err := bintree.FromSeed(3, 5, false, 1)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, line := range grid.Format(g, grid.Glyphs{Wall: '#', Open: '.', Opening: 'X'}) {
		fmt.Println(line)
	}
	// Output:
	// ###X#
	// #...#
	// #X###
}
