package grid_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvmaze/grid"
)

func TestFormatParse(t *testing.T) {
	t.Parallel()

	lines := []string{
		"■X■",
		"■ ■",
		"■X■",
	}
	g, err := grid.Parse(lines, grid.DefaultGlyphs)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Count(grid.Opening))
	assert.Equal(t, 1, g.Count(grid.Open))
	assert.Equal(t, lines, grid.Format(g, grid.DefaultGlyphs))

	ascii := grid.Glyphs{Wall: '#', Open: '.', Opening: '*'}
	assert.Equal(t, []string{"#*#", "#.#", "#*#"}, grid.Format(g, ascii))
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := grid.Parse([]string{"■?■"}, grid.DefaultGlyphs)
	assert.ErrorIs(t, err, grid.ErrUnknownGlyph)

	_, err = grid.Parse([]string{"■■", "■"}, grid.DefaultGlyphs)
	assert.ErrorIs(t, err, grid.ErrNonRectangular)

	_, err = grid.Parse(nil, grid.DefaultGlyphs)
	assert.ErrorIs(t, err, grid.ErrEmptyGrid)
}

// ExampleFormat renders a small grid with caller-chosen glyphs.
func ExampleFormat() {
	g, _ := grid.New(3, 5)
	_ = g.Set(grid.At(1, 1), grid.Open)
	_ = g.Set(grid.At(1, 2), grid.Open)
	_ = g.Set(grid.At(1, 3), grid.Open)
	_ = g.Set(grid.At(0, 3), grid.Opening)

	for _, line := range grid.Format(g, grid.Glyphs{Wall: '#', Open: '.', Opening: 'o'}) {
		fmt.Println(line)
	}
	// Output:
	// ###o#
	// #...#
	// #####
}
