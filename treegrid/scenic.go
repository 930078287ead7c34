package treegrid

// directions lists the four orthogonal viewing directions as (dRow, dCol).
var directions = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

// ViewingDistance counts the trees visible from (row,col) looking in the
// direction (dr,dc), stopping at the grid edge or at the first tree at least
// as tall as the origin. The blocking tree itself is counted.
func (g *Grid) ViewingDistance(row, col, dr, dc int) int {
	origin := g.Height(row, col)
	dist := 0
	for r, c := row+dr, col+dc; g.InBounds(r, c); r, c = r+dr, c+dc {
		dist++
		if int(g.heights[g.Index(r, c)]) >= origin {
			break
		}
	}

	return dist
}

// ScenicScore is the product of the four viewing distances from (row,col).
// Border cells always score 0 because one of their distances is 0.
func (g *Grid) ScenicScore(row, col int) int {
	score := 1
	for _, d := range directions {
		score *= g.ViewingDistance(row, col, d[0], d[1])
		if score == 0 {
			return 0
		}
	}

	return score
}

// MaxScenicScore returns the highest scenic score over interior cells.
// Grids without interior cells (a single row or column, or 2×2) yield 0.
// Vertical bounds come from Rows and horizontal bounds from Cols, so
// non-square grids are scanned correctly.
// Time: O(R×C×max(R,C)).
func (g *Grid) MaxScenicScore() int {
	best := 0
	for r := 1; r < g.Rows-1; r++ {
		for c := 1; c < g.Cols-1; c++ {
			if s := g.ScenicScore(r, c); s > best {
				best = s
			}
		}
	}

	return best
}
