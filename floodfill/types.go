// Package floodfill provides tunable options, sentinel errors and result
// types for flood-fill maze solving.
package floodfill

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// Sentinel errors for Solve and Label.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("floodfill: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("floodfill: invalid option supplied")

	// ErrNotLabeled is returned by Reconstruct when the goal carries no label.
	ErrNotLabeled = errors.New("floodfill: goal is not labeled")
)

// Option configures labeling via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Solve or Label is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for labeling.
type Options struct {
	// OnLabel is called every time a cell receives a label, including the
	// start cell (label 1).
	OnLabel func(c grid.Coord, label int)

	// MaxLabel, if > 0, stops labeling once this label has been assigned.
	// A goal beyond the limit is reported as not found.
	// 0 disables the limit.
	MaxLabel int

	err error
}

// DefaultOptions returns Options with no hook and no label limit.
func DefaultOptions() Options {
	return Options{
		OnLabel:  func(grid.Coord, int) {},
		MaxLabel: 0,
	}
}

// WithOnLabel registers a callback run on every labeled cell.
func WithOnLabel(fn func(c grid.Coord, label int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnLabel = fn
		}
	}
}

// WithMaxLabel caps the labels that may be assigned.
//
//	n > 0: stop after label n
//	n == 0: no limit
//	n < 0: invalid → ErrOptionViolation
func WithMaxLabel(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: MaxLabel cannot be negative (%d)", ErrOptionViolation, n)
		default:
			o.MaxLabel = n
		}
	}
}

// Labels is the solver's scratch distance map. It has the dimensions of
// the grid it was derived from but is a separate value; the grid is never
// written to. A label of 0 means "not reached"; walls are never labeled.
// The label of a reached cell is its shortest-path distance from the start
// plus one.
type Labels struct {
	rows, cols int
	vals       []int
}

func newLabels(rows, cols int) *Labels {
	return &Labels{rows: rows, cols: cols, vals: make([]int, rows*cols)}
}

// At returns the label at c and whether c was reached.
func (l *Labels) At(c grid.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= l.rows || c.Col < 0 || c.Col >= l.cols {
		return 0, false
	}
	v := l.vals[c.Row*l.cols+c.Col]
	return v, v > 0
}

func (l *Labels) get(c grid.Coord) int {
	v, _ := l.At(c)
	return v
}

func (l *Labels) set(c grid.Coord, v int) {
	l.vals[c.Row*l.cols+c.Col] = v
}

// Reached counts labeled cells.
func (l *Labels) Reached() int {
	n := 0
	for _, v := range l.vals {
		if v > 0 {
			n++
		}
	}
	return n
}

// Rows returns the number of rows of the label map.
func (l *Labels) Rows() int { return l.rows }

// Cols returns the number of columns of the label map.
func (l *Labels) Cols() int { return l.cols }

// Result holds the outcome of Solve.
//
//   - Found: whether the goal was reached. false is the Unreachable
//     outcome and is not an error.
//   - Path: goal → start, in the order reconstruction walks it. Use
//     Forward for start → goal. nil when not Found.
//   - Labels: the distance map built while solving.
//   - Sweeps: how many labeling sweeps ran.
type Result struct {
	Found  bool
	Path   grid.Path
	Labels *Labels
	Sweeps int
}

// Forward returns the path ordered start → goal.
func (r *Result) Forward() grid.Path {
	if r == nil || r.Path == nil {
		return nil
	}
	return r.Path.Reversed()
}

// Distance returns the number of steps between start and goal, or -1 if
// the goal was not reached.
func (r *Result) Distance() int {
	if r == nil || !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
