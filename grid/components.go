package grid

// Components finds all 4-connected regions of cells accepted by pass.
// Seeds are taken in row-major order, so component i is the region that
// contains the i-th accepted cell not already claimed. Within a component,
// cells appear in BFS order from the seed, neighbors in Directions order.
//
// A nil pass selects Passable.
//
// Time:   O(rows·cols·4).
// Memory: O(rows·cols) for the seen flags and output.
func (g *Grid) Components(pass func(Cell) bool) [][]Coord {
	if pass == nil {
		pass = Passable
	}
	seen := make([]bool, len(g.cells))
	var comps [][]Coord

	for i0, cell := range g.cells {
		if !pass(cell) || seen[i0] {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		var comp []Coord

		for qi := 0; qi < len(queue); qi++ {
			u := g.Coordinate(queue[qi])
			comp = append(comp, u)
			for _, d := range Directions {
				v := u.Add(d)
				if !g.InBounds(v) {
					continue
				}
				vi := g.Index(v)
				if seen[vi] || !pass(g.cells[vi]) {
					continue
				}
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
		comps = append(comps, comp)
	}
	return comps
}

// Adjacencies counts unordered pairs of orthogonally adjacent cells that
// are both accepted by pass. A nil pass selects Passable.
// Together with Components it tells whether a region is a tree:
// a single component of n cells is acyclic iff it has n−1 adjacencies.
func (g *Grid) Adjacencies(pass func(Cell) bool) int {
	if pass == nil {
		pass = Passable
	}
	n := 0
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if !pass(g.cells[r*g.cols+c]) {
				continue
			}
			if c+1 < g.cols && pass(g.cells[r*g.cols+c+1]) {
				n++
			}
			if r+1 < g.rows && pass(g.cells[(r+1)*g.cols+c]) {
				n++
			}
		}
	}
	return n
}
