package grid

import "fmt"

// Glyphs maps each cell state to a display rune.
type Glyphs struct {
	Wall    rune
	Open    rune
	Opening rune
}

// DefaultGlyphs draws walls as '■', open cells as ' ' and openings (or
// path cells after an overlay) as 'X'.
var DefaultGlyphs = Glyphs{Wall: '■', Open: ' ', Opening: 'X'}

func (gl Glyphs) rune(c Cell) rune {
	switch c {
	case Open:
		return gl.Open
	case Opening:
		return gl.Opening
	}
	return gl.Wall
}

func (gl Glyphs) cell(r rune) (Cell, bool) {
	switch r {
	case gl.Wall:
		return Wall, true
	case gl.Open:
		return Open, true
	case gl.Opening:
		return Opening, true
	}
	return Wall, false
}

// Format renders g as one string per row using the given glyphs.
func Format(g *Grid, glyphs Glyphs) []string {
	out := make([]string, g.rows)
	line := make([]rune, g.cols)
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			line[c] = glyphs.rune(g.cells[r*g.cols+c])
		}
		out[r] = string(line)
	}
	return out
}

// Parse builds a grid from rows of glyphs. Every line must have the same
// number of runes. Returns ErrEmptyGrid, ErrNonRectangular, or
// ErrUnknownGlyph (wrapped with its position).
func Parse(lines []string, glyphs Glyphs) (*Grid, error) {
	rows := make([][]Cell, len(lines))
	for r, line := range lines {
		for c, ch := range []rune(line) {
			cell, ok := glyphs.cell(ch)
			if !ok {
				return nil, fmt.Errorf("Parse: %q at %v: %w", ch, At(r, c), ErrUnknownGlyph)
			}
			rows[r] = append(rows[r], cell)
		}
	}
	return FromRows(rows)
}
