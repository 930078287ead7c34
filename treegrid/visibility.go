package treegrid

// Visible returns every cell that can be seen from outside the grid
// looking straight along its row or column.
//
// Each row is swept left→right and right→left, each column top→bottom and
// bottom→top. A sweep starts at the border cell (always visible) with that
// cell's height as the running maximum; any later cell strictly taller than
// the running maximum is visible and raises it. The four sweeps are unioned.
//
// Time: O(R×C). Memory: O(R×C) for the returned set.
func (g *Grid) Visible() VisibilitySet {
	seen := make([]bool, g.Rows*g.Cols)
	for r := 0; r < g.Rows; r++ {
		g.sweep(seen, r, 0, 0, 1, g.Cols)
		g.sweep(seen, r, g.Cols-1, 0, -1, g.Cols)
	}
	for c := 0; c < g.Cols; c++ {
		g.sweep(seen, 0, c, 1, 0, g.Rows)
		g.sweep(seen, g.Rows-1, c, -1, 0, g.Rows)
	}

	set := VisibilitySet{cells: make(map[Cell]struct{})}
	for idx, ok := range seen {
		if ok {
			r, c := g.Coordinate(idx)
			set.cells[Cell{Row: r, Col: c}] = struct{}{}
		}
	}

	return set
}

// sweep walks n cells from (r,c) in steps of (dr,dc), marking cells that
// rise above everything before them. The first cell is always marked.
func (g *Grid) sweep(seen []bool, r, c, dr, dc, n int) {
	idx := g.Index(r, c)
	seen[idx] = true
	highest := g.heights[idx]
	for i := 1; i < n; i++ {
		r, c = r+dr, c+dc
		idx = g.Index(r, c)
		h := g.heights[idx]
		if h > highest {
			highest = h
			seen[idx] = true
			if highest == MaxHeight {
				return // nothing further can be taller
			}
		}
	}
}
