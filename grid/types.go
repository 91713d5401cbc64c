package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a grid with no rows or no columns was requested.
	ErrEmptyGrid = errors.New("grid: grid must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a coordinate outside the grid extent.
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
	// ErrUnknownGlyph indicates Parse met a rune that is not in the Glyphs set.
	ErrUnknownGlyph = errors.New("grid: unknown glyph")
)

// Cell is the permanent state of one grid cell.
type Cell uint8

const (
	// Wall blocks movement. It is the zero value.
	Wall Cell = iota
	// Open is a passable cell of the maze body.
	Open
	// Opening is a designated entry/exit cell; it is passable.
	Opening
)

// String returns a lower-case name of the state.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Opening:
		return "opening"
	}
	return fmt.Sprintf("cell(%d)", uint8(c))
}

// Passable reports whether movement may enter a cell in state c.
func Passable(c Cell) bool {
	return c == Open || c == Opening
}

// Coord is a (Row, Col) position. It is valid for a grid iff
// 0 ≤ Row < rows and 0 ≤ Col < cols.
type Coord struct {
	Row int
	Col int
}

// At is shorthand for Coord{Row: row, Col: col}.
func At(row, col int) Coord {
	return Coord{Row: row, Col: col}
}

// Add returns the coordinate one step from c in direction d.
func (c Coord) Add(d Direction) Coord {
	dr, dc := d.Offset()
	return Coord{Row: c.Row + dr, Col: c.Col + dc}
}

// String renders c as "(row,col)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions is the fixed scan order used for neighbor iteration and for
// breaking ties between equally good neighbors.
var Directions = [4]Direction{Up, Down, Left, Right}

// Offset returns the (row, col) delta of one step in d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	case Right:
		return 0, 1
	}
	return 0, 0
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// Path is an ordered sequence of coordinates. Paths produced by this module
// are contiguous: each consecutive pair is 4-directionally adjacent.
type Path []Coord

// Len returns the number of cells on the path.
func (p Path) Len() int {
	return len(p)
}

// Reversed returns a new path with the order of p reversed.
func (p Path) Reversed() Path {
	out := make(Path, len(p))
	for i, c := range p {
		out[len(p)-1-i] = c
	}
	return out
}

// Contains reports whether c lies on p. O(len(p)).
func (p Path) Contains(c Coord) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// IsContiguous reports whether every consecutive pair of p is orthogonally
// adjacent. Empty and single-cell paths are contiguous.
func (p Path) IsContiguous() bool {
	for i := 1; i < len(p); i++ {
		dr := abs(p[i].Row - p[i-1].Row)
		dc := abs(p[i].Col - p[i-1].Col)
		if dr+dc != 1 {
			return false
		}
	}
	return true
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
