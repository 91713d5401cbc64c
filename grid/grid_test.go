package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
)

// TestNew_AllWall checks that a fresh grid has the requested shape and
// every cell is Wall.
func TestNew_AllWall(t *testing.T) {
	t.Parallel()

	g, err := grid.New(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 4, g.Cols())
	assert.Equal(t, 12, g.Count(grid.Wall))
	assert.Zero(t, g.Count(grid.Open))
}

// TestNew_Errors verifies that empty dimensions are rejected.
func TestNew_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		rows, cols int
	}{
		{"ZeroRows", 0, 3},
		{"ZeroCols", 3, 0},
		{"Negative", -1, -1},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.rows, tc.cols)
			assert.ErrorIs(t, err, grid.ErrEmptyGrid)
		})
	}
}

// TestGetSet_OutOfBounds covers every side of the rectangle.
func TestGetSet_OutOfBounds(t *testing.T) {
	t.Parallel()

	g, err := grid.New(2, 3)
	require.NoError(t, err)

	bad := []grid.Coord{grid.At(-1, 0), grid.At(0, -1), grid.At(2, 0), grid.At(0, 3)}
	for _, c := range bad {
		_, err := g.Get(c)
		assert.ErrorIs(t, err, grid.ErrOutOfBounds, "Get%v", c)
		assert.ErrorIs(t, g.Set(c, grid.Open), grid.ErrOutOfBounds, "Set%v", c)
		_, ok := g.Lookup(c)
		assert.False(t, ok, "Lookup%v", c)
	}

	require.NoError(t, g.Set(grid.At(1, 2), grid.Opening))
	v, err := g.Get(grid.At(1, 2))
	require.NoError(t, err)
	assert.Equal(t, grid.Opening, v)
}

// TestFromRows_CopiesInput ensures the grid does not alias the caller's slice.
func TestFromRows_CopiesInput(t *testing.T) {
	t.Parallel()

	src := [][]grid.Cell{
		{grid.Wall, grid.Open},
		{grid.Opening, grid.Wall},
	}
	g, err := grid.FromRows(src)
	require.NoError(t, err)

	src[0][1] = grid.Wall
	v, _ := g.Get(grid.At(0, 1))
	assert.Equal(t, grid.Open, v)

	_, err = grid.FromRows([][]grid.Cell{{grid.Wall}, {}})
	assert.ErrorIs(t, err, grid.ErrNonRectangular)
	_, err = grid.FromRows(nil)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// TestBorderAndNeighbors checks border enumeration and the fixed neighbor order.
func TestBorderAndNeighbors(t *testing.T) {
	t.Parallel()

	g, err := grid.New(3, 3)
	require.NoError(t, err)

	border := g.Border()
	assert.Len(t, border, 8)
	assert.NotContains(t, border, grid.At(1, 1))
	assert.True(t, g.IsBorder(grid.At(2, 1)))
	assert.False(t, g.IsBorder(grid.At(1, 1)))
	assert.False(t, g.IsBorder(grid.At(3, 3)))

	assert.Equal(t,
		[]grid.Coord{grid.At(0, 1), grid.At(2, 1), grid.At(1, 0), grid.At(1, 2)},
		g.Neighbors(grid.At(1, 1)),
	)
	assert.Equal(t, []grid.Coord{grid.At(1, 0), grid.At(0, 1)}, g.Neighbors(grid.At(0, 0)))
}

// TestCloneAndEqual verifies that clones are independent.
func TestCloneAndEqual(t *testing.T) {
	t.Parallel()

	g, err := grid.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(grid.At(0, 0), grid.Open))

	c := g.Clone()
	assert.True(t, g.Equal(c))
	require.NoError(t, c.Set(grid.At(1, 1), grid.Opening))
	assert.False(t, g.Equal(c))

	v, _ := g.Get(grid.At(1, 1))
	assert.Equal(t, grid.Wall, v)
}

func TestIndexRoundTrip(t *testing.T) {
	g, err := grid.New(4, 7)
	require.NoError(t, err)
	for i := 0; i < 28; i++ {
		assert.Equal(t, i, g.Index(g.Coordinate(i)))
	}
}

// TestPath covers reversal, membership and contiguity.
func TestPath(t *testing.T) {
	t.Parallel()

	p := grid.Path{grid.At(0, 0), grid.At(0, 1), grid.At(1, 1)}
	assert.True(t, p.IsContiguous())
	assert.Equal(t, grid.Path{grid.At(1, 1), grid.At(0, 1), grid.At(0, 0)}, p.Reversed())
	assert.True(t, p.Contains(grid.At(0, 1)))
	assert.False(t, p.Contains(grid.At(1, 0)))
	assert.Equal(t, 3, p.Len())

	diagonal := grid.Path{grid.At(0, 0), grid.At(1, 1)}
	assert.False(t, diagonal.IsContiguous())
	assert.True(t, grid.Path{}.IsContiguous())
}

func TestCellAndDirectionStrings(t *testing.T) {
	assert.Equal(t, "wall", grid.Wall.String())
	assert.Equal(t, "opening", grid.Opening.String())
	assert.Equal(t, "cell(9)", grid.Cell(9).String())
	assert.Equal(t, "left", grid.Left.String())
	assert.Equal(t, "(2,3)", grid.At(2, 3).String())
	assert.Equal(t, grid.At(1, 3), grid.At(1, 2).Add(grid.Right))
}
