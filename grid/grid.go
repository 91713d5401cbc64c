package grid

import "fmt"

// Grid is a rectangular buffer of cells with fixed dimensions.
// The zero value is not usable; construct with New or FromRows.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// New returns a rows×cols grid with every cell set to Wall.
// Returns ErrEmptyGrid if rows < 1 or cols < 1.
// Complexity: O(rows·cols) time and memory.
func New(rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("New: rows=%d, cols=%d: %w", rows, cols, ErrEmptyGrid)
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}, nil
}

// FromRows builds a grid from a non-empty rectangular 2-D slice.
// The input is deep-copied.
func FromRows(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	w := len(rows[0])
	for _, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g, err := New(len(rows), w)
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		copy(g.cells[r*w:(r+1)*w], row)
	}
	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// IsBorder reports whether c is an in-bounds cell on the outer ring:
// row 0 or rows−1, or column 0 or cols−1.
func (g *Grid) IsBorder(c Coord) bool {
	if !g.InBounds(c) {
		return false
	}
	return c.Row == 0 || c.Row == g.rows-1 || c.Col == 0 || c.Col == g.cols-1
}

// Get returns the state of the cell at c, or ErrOutOfBounds.
func (g *Grid) Get(c Coord) (Cell, error) {
	if !g.InBounds(c) {
		return Wall, g.outOfBounds("Get", c)
	}
	return g.cells[g.Index(c)], nil
}

// Set stores v at c, or returns ErrOutOfBounds.
func (g *Grid) Set(c Coord, v Cell) error {
	if !g.InBounds(c) {
		return g.outOfBounds("Set", c)
	}
	g.cells[g.Index(c)] = v
	return nil
}

// Lookup returns the state at c and true, or (Wall, false) when c is
// outside the grid.
func (g *Grid) Lookup(c Coord) (Cell, bool) {
	if !g.InBounds(c) {
		return Wall, false
	}
	return g.cells[g.Index(c)], true
}

func (g *Grid) outOfBounds(method string, c Coord) error {
	return fmt.Errorf("%s: %v outside %dx%d grid: %w", method, c, g.rows, g.cols, ErrOutOfBounds)
}

// Index maps c to its row-major index: Row*cols + Col.
// The caller must ensure c is in bounds.
func (g *Grid) Index(c Coord) int {
	return c.Row*g.cols + c.Col
}

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.cols, Col: idx % g.cols}
}

// Neighbors returns the in-bounds orthogonal neighbors of c in
// Directions order.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		n := c.Add(d)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Border lists every border cell in row-major order.
func (g *Grid) Border() []Coord {
	out := make([]Coord, 0, 2*(g.rows+g.cols))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if r == 0 || r == g.rows-1 || c == 0 || c == g.cols-1 {
				out = append(out, Coord{Row: r, Col: c})
			}
		}
	}
	return out
}

// Find returns the coordinates of every cell equal to v, row-major.
func (g *Grid) Find(v Cell) []Coord {
	var out []Coord
	for i, cell := range g.cells {
		if cell == v {
			out = append(out, g.Coordinate(i))
		}
	}
	return out
}

// Count returns how many cells equal v.
func (g *Grid) Count(v Cell) int {
	n := 0
	for _, cell := range g.cells {
		if cell == v {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Equal reports whether g and other have the same dimensions and cells.
func (g *Grid) Equal(other *Grid) bool {
	if g == nil || other == nil {
		return g == other
	}
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// ToRows returns a fresh [][]Cell copy of the grid.
func (g *Grid) ToRows() [][]Cell {
	out := make([][]Cell, g.rows)
	for r := range out {
		out[r] = make([]Cell, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}
