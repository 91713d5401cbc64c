// Package overlay paints a solved path onto a display copy of a grid.
package overlay

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrGridNil is returned if a nil grid is passed.
var ErrGridNil = errors.New("overlay: grid is nil")

// Apply returns a new grid derived from g and path; g is never modified.
//
// With an empty path the result is an unmodified copy of g, so an
// Unreachable outcome renders as the plain maze. Otherwise every Wall
// stays Wall, every other cell is cleared to Open, and each non-wall cell
// on path is marked Opening. Applying the same path twice gives the same
// grid as applying it once.
//
// Returns grid.ErrOutOfBounds if any path coordinate lies outside g.
func Apply(g *grid.Grid, path grid.Path) (*grid.Grid, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	out := g.Clone()
	if len(path) == 0 {
		return out, nil
	}
	for _, c := range path {
		if !g.InBounds(c) {
			return nil, fmt.Errorf("Apply: path cell %v: %w", c, grid.ErrOutOfBounds)
		}
	}

	for r := 0; r < out.Rows(); r++ {
		for c := 0; c < out.Cols(); c++ {
			at := grid.At(r, c)
			if v, _ := out.Lookup(at); v != grid.Wall {
				_ = out.Set(at, grid.Open)
			}
		}
	}
	for _, c := range path {
		if v, _ := out.Lookup(c); v != grid.Wall {
			_ = out.Set(c, grid.Opening)
		}
	}
	return out, nil
}
