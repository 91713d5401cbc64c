// Package maze wires the stages together: analyze the openings, solve,
// and overlay the path for display. It also checks whether a grid is a
// perfect maze.
//
// Every function takes the grid by pointer but treats it as read-only;
// results are fresh values.
package maze

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/exits"
	"github.com/katalvlaran/lvmaze/floodfill"
	"github.com/katalvlaran/lvmaze/grid"
	"github.com/katalvlaran/lvmaze/overlay"
)

// ErrMalformed is exits.ErrMalformed, re-exported for pipeline callers.
var ErrMalformed = exits.ErrMalformed

// ErrGridNil is returned if a nil grid is passed.
var ErrGridNil = errors.New("maze: grid is nil")

// ErrNotPerfect indicates Verify found a cycle or a disconnected region.
var ErrNotPerfect = errors.New("maze: not a perfect maze")

// Kind is the outcome of Solve.
type Kind uint8

const (
	// Solved: both openings connected; Path is a shortest path.
	Solved Kind = iota
	// Solitary: a single opening; Path is that one cell.
	Solitary
	// NoPath: an opening is encircled or the two are disconnected.
	NoPath
)

func (k Kind) String() string {
	switch k {
	case Solved:
		return "solved"
	case Solitary:
		return "solitary"
	case NoPath:
		return "no path"
	}
	return fmt.Sprintf("kind(%d)", uint8(k))
}

// Outcome describes how a maze was solved.
// Path runs goal → start (as floodfill builds it) and is nil for NoPath.
type Outcome struct {
	Kind     Kind
	Path     grid.Path
	Openings []grid.Coord
	// Encircled is set when NoPath was decided before solving.
	Encircled bool
}

// Solve classifies the openings of g and, for a solvable pair, finds a
// shortest path from the first opening (row-major) to the second.
//
// Malformed grids propagate ErrMalformed. An encircled opening yields
// NoPath without invoking the solver.
func Solve(g *grid.Grid) (*Outcome, error) {
	rep, err := exits.Analyze(g)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	out := &Outcome{Openings: rep.Openings}

	switch rep.Kind {
	case exits.Solitary:
		out.Kind = Solitary
		out.Path = grid.Path{rep.Openings[0]}
		return out, nil
	case exits.Pair:
	default:
		return nil, fmt.Errorf("maze: unexpected kind %v: %w", rep.Kind, ErrMalformed)
	}

	if !rep.Solvable() {
		out.Kind = NoPath
		out.Encircled = true
		return out, nil
	}

	start, _ := rep.Start()
	goal, _ := rep.Goal()
	res, err := floodfill.Solve(g, start, goal)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if !res.Found {
		out.Kind = NoPath
		return out, nil
	}
	out.Kind = Solved
	out.Path = res.Path
	return out, nil
}

// Render solves g and overlays the result on a copy of it. For NoPath the
// copy is unmodified; callers distinguish it through Outcome.Kind.
func Render(g *grid.Grid) (*grid.Grid, *Outcome, error) {
	out, err := Solve(g)
	if err != nil {
		return nil, nil, err
	}
	painted, err := overlay.Apply(g, out.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("maze: %w", err)
	}
	return painted, out, nil
}
