// Package floodfill solves a grid maze by distance labeling from one
// opening followed by a backward walk from the other.
//
// Labeling is breadth-first: the start is labeled 1 and each sweep k gives
// label k+1 to every unlabeled passable neighbor of a label-k cell. Only
// the cells labeled in sweep k are expanded in sweep k+1, so every cell is
// expanded at most once. Reconstruction walks from the goal to any neighbor
// labeled one less, in grid.Directions order, until it reaches label 1.
package floodfill

import (
	"fmt"

	"github.com/katalvlaran/lvmaze/grid"
)

// labeler encapsulates mutable labeling state.
type labeler struct {
	g        *grid.Grid
	opts     Options
	start    grid.Coord
	goal     grid.Coord
	labels   *Labels
	frontier []grid.Coord
	sweeps   int
}

// Solve labels g from start and reconstructs a shortest path from goal.
//
// Passable cells are Open cells plus start and goal themselves, whatever
// their state. When the goal cannot be reached the result has Found=false
// and a nil Path; this is not an error.
//
// Returns ErrGridNil, grid.ErrOutOfBounds for start/goal outside g, or
// ErrOptionViolation for bad options.
// Complexity: O(rows·cols) labeling, O(path length) reconstruction.
func Solve(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Result, error) {
	labels, found, sweeps, err := label(g, start, goal, opts...)
	if err != nil {
		return nil, err
	}
	res := &Result{Found: found, Labels: labels, Sweeps: sweeps}
	if !found {
		return res, nil
	}
	path, err := Reconstruct(labels, goal)
	if err != nil {
		return nil, err
	}
	res.Path = path
	return res, nil
}

// Label runs only the labeling phase and reports whether goal was reached.
func Label(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Labels, bool, error) {
	labels, found, _, err := label(g, start, goal, opts...)
	return labels, found, err
}

func label(g *grid.Grid, start, goal grid.Coord, opts ...Option) (*Labels, bool, int, error) {
	if g == nil {
		return nil, false, 0, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, false, 0, o.err
	}
	for _, c := range [2]grid.Coord{start, goal} {
		if !g.InBounds(c) {
			return nil, false, 0, fmt.Errorf("floodfill: %v outside %dx%d grid: %w",
				c, g.Rows(), g.Cols(), grid.ErrOutOfBounds)
		}
	}

	l := &labeler{
		g:      g,
		opts:   o,
		start:  start,
		goal:   goal,
		labels: newLabels(g.Rows(), g.Cols()),
	}
	found := l.run()
	return l.labels, found, l.sweeps, nil
}

// passable reports whether c may receive a label.
func (l *labeler) passable(c grid.Coord) bool {
	if c == l.start || c == l.goal {
		return true
	}
	v, ok := l.g.Lookup(c)
	return ok && v == grid.Open
}

func (l *labeler) assign(c grid.Coord, k int) {
	l.labels.set(c, k)
	l.opts.OnLabel(c, k)
	l.frontier = append(l.frontier, c)
}

// run sweeps until the goal is labeled or a sweep labels nothing.
func (l *labeler) run() bool {
	l.assign(l.start, 1)
	if l.start == l.goal {
		return true
	}
	for k := 1; len(l.frontier) > 0; k++ {
		if l.opts.MaxLabel > 0 && k >= l.opts.MaxLabel {
			return false
		}
		current := l.frontier
		l.frontier = nil
		l.sweeps++
		for _, c := range current {
			for _, d := range grid.Directions {
				n := c.Add(d)
				if !l.passable(n) || l.labels.get(n) != 0 {
					continue
				}
				l.assign(n, k+1)
				if n == l.goal {
					return true
				}
			}
		}
	}
	return false
}

// Reconstruct walks labels backwards from goal to the cell labeled 1.
// At each step it moves to the first neighbor, in grid.Directions order,
// whose label is exactly one less: one step per decrement.
// The returned path runs goal → start.
// Returns ErrNotLabeled if goal has no label.
func Reconstruct(labels *Labels, goal grid.Coord) (grid.Path, error) {
	k, ok := labels.At(goal)
	if !ok {
		return nil, fmt.Errorf("Reconstruct: %v: %w", goal, ErrNotLabeled)
	}
	path := make(grid.Path, 0, k)
	path = append(path, goal)
	cur := goal
	for ; k > 1; k-- {
		next, ok := stepDown(labels, cur, k)
		if !ok {
			// Labels produced by Solve always have a k−1 neighbor.
			return nil, fmt.Errorf("Reconstruct: no neighbor of %v labeled %d: %w", cur, k-1, ErrNotLabeled)
		}
		path = append(path, next)
		cur = next
	}
	return path, nil
}

func stepDown(labels *Labels, cur grid.Coord, k int) (grid.Coord, bool) {
	for _, d := range grid.Directions {
		n := cur.Add(d)
		if v, ok := labels.At(n); ok && v == k-1 {
			return n, true
		}
	}
	return grid.Coord{}, false
}
