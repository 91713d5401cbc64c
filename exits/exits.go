// Package exits inspects the openings of a maze before it is solved.
//
// Classify scans for Opening cells and sorts the grid into one of three
// kinds: Solitary (one opening, trivially solved), Pair (the normal case)
// or Malformed (zero or more than two openings). IsEncircled tells whether
// an opening has any passable cell leading into the maze body; a Pair with
// an encircled opening has no solution and must not be handed to a solver.
package exits

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// ErrMalformed indicates the grid does not carry one or two openings.
// For generated mazes this means the generation invariant was violated.
var ErrMalformed = errors.New("exits: grid must have one or two openings")

// ErrGridNil is returned when a nil grid is passed.
var ErrGridNil = errors.New("exits: grid is nil")

// Kind classifies the openings of a grid.
type Kind uint8

const (
	// Malformed: fewer than one or more than two openings.
	Malformed Kind = iota
	// Solitary: exactly one opening.
	Solitary
	// Pair: exactly two openings.
	Pair
)

func (k Kind) String() string {
	switch k {
	case Malformed:
		return "malformed"
	case Solitary:
		return "solitary"
	case Pair:
		return "pair"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Report is the outcome of Classify or Analyze.
//
// Openings holds the opening coordinates in row-major order. For a Pair the
// first is the start and the second the goal. Encircled is filled only by
// Analyze and is parallel to Openings.
type Report struct {
	Kind      Kind
	Openings  []grid.Coord
	Encircled []bool
}

// Start returns the first opening, or false if there is none.
func (r Report) Start() (grid.Coord, bool) {
	if len(r.Openings) == 0 {
		return grid.Coord{}, false
	}
	return r.Openings[0], true
}

// Goal returns the second opening of a Pair, or false otherwise.
func (r Report) Goal() (grid.Coord, bool) {
	if r.Kind != Pair {
		return grid.Coord{}, false
	}
	return r.Openings[1], true
}

// Solvable reports whether r is a Pair with neither opening encircled.
// Only meaningful for reports produced by Analyze.
func (r Report) Solvable() bool {
	if r.Kind != Pair || len(r.Encircled) != 2 {
		return false
	}
	return !r.Encircled[0] && !r.Encircled[1]
}

// Classify scans g once for Opening cells.
// A Malformed grid yields a Report of kind Malformed together with
// ErrMalformed wrapped with the opening count.
func Classify(g *grid.Grid) (Report, error) {
	if g == nil {
		return Report{}, ErrGridNil
	}
	openings := g.Find(grid.Opening)
	switch len(openings) {
	case 1:
		return Report{Kind: Solitary, Openings: openings}, nil
	case 2:
		return Report{Kind: Pair, Openings: openings}, nil
	}
	return Report{Kind: Malformed, Openings: openings},
		fmt.Errorf("Classify: found %d openings: %w", len(openings), ErrMalformed)
}

// Analyze is Classify followed by IsEncircled on every opening.
func Analyze(g *grid.Grid) (Report, error) {
	rep, err := Classify(g)
	if err != nil {
		return rep, err
	}
	rep.Encircled = make([]bool, len(rep.Openings))
	for i, c := range rep.Openings {
		enc, err := IsEncircled(g, c)
		if err != nil {
			return rep, err
		}
		rep.Encircled[i] = enc
	}
	return rep, nil
}

// IsEncircled reports whether the cell at c has no passable neighbor on
// its interior side.
//
// The interior side of a border cell is the set of neighbors stepping away
// from each edge it touches: row 0 looks down, the last row looks up,
// column 0 looks right and the last column looks left. A corner therefore
// has two interior neighbors and is encircled only if both are walls.
// A cell that touches no edge looks in all four directions.
// Open and Opening neighbors both count as passable.
//
// Neighbors along the edge are never consulted. On mazes with an even
// row or column count the last row or column holds rooms, and an opening
// placed between two of them is reported encircled even though it joins
// the corridor along the edge. Callers that need reachability rather than
// this interior test should run the solver.
//
// Returns grid.ErrOutOfBounds if c is outside g.
func IsEncircled(g *grid.Grid, c grid.Coord) (bool, error) {
	if g == nil {
		return false, ErrGridNil
	}
	if !g.InBounds(c) {
		return false, fmt.Errorf("IsEncircled: %v: %w", c, grid.ErrOutOfBounds)
	}
	for _, n := range interiorNeighbors(g, c) {
		if v, ok := g.Lookup(n); ok && grid.Passable(v) {
			return false, nil
		}
	}
	return true, nil
}

// interiorNeighbors lists the candidate cells leading from c into the maze
// body, in grid.Directions order.
func interiorNeighbors(g *grid.Grid, c grid.Coord) []grid.Coord {
	if !g.IsBorder(c) {
		return g.Neighbors(c)
	}
	var out []grid.Coord
	for _, d := range grid.Directions {
		if faces(g, c, d) {
			if n := c.Add(d); g.InBounds(n) {
				out = append(out, n)
			}
		}
	}
	return out
}

// faces reports whether d points away from an edge that c touches.
func faces(g *grid.Grid, c grid.Coord, d grid.Direction) bool {
	switch d {
	case grid.Up:
		return c.Row == g.Rows()-1
	case grid.Down:
		return c.Row == 0
	case grid.Left:
		return c.Col == g.Cols()-1
	case grid.Right:
		return c.Col == 0
	}
	return false
}
