package maze

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Stats summarizes the cell population of a grid.
type Stats struct {
	Rows, Cols int
	Walls      int
	Open       int
	Openings   int
	// Components is the number of 4-connected passable regions, not
	// counting openings that touch no passable cell.
	Components int
	// Adjacencies is the number of adjacent passable pairs in that set.
	Adjacencies int
}

// Inspect counts cells and passable regions of g.
func Inspect(g *grid.Grid) (Stats, error) {
	if g == nil {
		return Stats{}, fmt.Errorf("Inspect: %w", ErrGridNil)
	}
	body := maskIsolated(g)
	return Stats{
		Rows:        g.Rows(),
		Cols:        g.Cols(),
		Walls:       g.Count(grid.Wall),
		Open:        g.Count(grid.Open),
		Openings:    g.Count(grid.Opening),
		Components:  len(body.Components(grid.Passable)),
		Adjacencies: body.Adjacencies(grid.Passable),
	}, nil
}

// Verify reports whether the passable cells of g form a tree: one
// connected region with exactly one path between any two cells.
// Openings that touch no passable cell are ignored; they make the maze
// unsolvable but do not break the tree.
//
// Returns ErrNotPerfect wrapped with the offending counts, or ErrGridNil.
func Verify(g *grid.Grid) error {
	if g == nil {
		return fmt.Errorf("Verify: %w", ErrGridNil)
	}
	body := maskIsolated(g)
	comps := body.Components(grid.Passable)
	if len(comps) != 1 {
		return fmt.Errorf("Verify: %d passable regions: %w", len(comps), ErrNotPerfect)
	}
	n := len(comps[0])
	if e := body.Adjacencies(grid.Passable); e != n-1 {
		return fmt.Errorf("Verify: %d cells with %d adjacencies (want %d): %w", n, e, n-1, ErrNotPerfect)
	}
	return nil
}

// maskIsolated returns a copy of g in which every Opening without a
// passable neighbor is turned into Wall.
func maskIsolated(g *grid.Grid) *grid.Grid {
	body := g.Clone()
	for _, c := range g.Find(grid.Opening) {
		touches := false
		for _, n := range g.Neighbors(c) {
			if v, _ := g.Lookup(n); grid.Passable(v) {
				touches = true
				break
			}
		}
		if !touches {
			_ = body.Set(c, grid.Wall)
		}
	}
	return body
}
