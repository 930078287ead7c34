package treegrid

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice of heights.
// It copies the input, so later changes to heights do not affect the Grid.
// Returns ErrEmptyGrid if heights has no rows or no columns,
// ErrNonRectangular if any row length differs, and ErrBadHeight for a value
// outside 0..MaxHeight.
// Algorithmic complexity: O(R×C) time and memory.
func NewGrid(heights [][]int) (*Grid, error) {
	if len(heights) == 0 || len(heights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(heights), len(heights[0])
	cells := make([]uint8, 0, rows*cols)
	for r, row := range heights {
		if len(row) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), cols)
		}
		for c, h := range row {
			if h < 0 || h > MaxHeight {
				return nil, fmt.Errorf("%w: %d at row %d col %d", ErrBadHeight, h, r, c)
			}
			cells = append(cells, uint8(h))
		}
	}

	return &Grid{Rows: rows, Cols: cols, heights: cells}, nil
}

// Parse reads one grid row per line, each line a run of ASCII digits.
// Trailing blank lines are ignored; a blank line between rows is not.
func Parse(r io.Reader) (*Grid, error) {
	var (
		heights [][]int
		blank   int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			blank++
			continue
		}
		if blank > 0 && len(heights) > 0 {
			return nil, fmt.Errorf("%w: blank line before row %d", ErrNonRectangular, len(heights))
		}
		blank = 0
		row := make([]int, len(line))
		for c := 0; c < len(line); c++ {
			ch := line[c]
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: %q at row %d col %d", ErrBadHeight, ch, len(heights), c)
			}
			row[c] = int(ch - '0')
		}
		heights = append(heights, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("treegrid: reading input: %w", err)
	}

	return NewGrid(heights)
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Rows && col >= 0 && col < g.Cols
}

// Height returns the tree height at (row,col). It panics when the cell is
// out of bounds, like an index expression would.
func (g *Grid) Height(row, col int) int {
	if !g.InBounds(row, col) {
		panic(fmt.Sprintf("treegrid: cell (%d,%d) outside %dx%d grid", row, col, g.Rows, g.Cols))
	}
	return int(g.heights[g.Index(row, col)])
}

// Index maps (row,col) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (g *Grid) Index(row, col int) int {
	return row*g.Cols + col
}

// Coordinate converts a row-major index back to (row,col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (row, col int) {
	return idx / g.Cols, idx % g.Cols
}

// IsBorder reports whether (row,col) sits on the outer edge of the grid.
func (g *Grid) IsBorder(row, col int) bool {
	return row == 0 || col == 0 || row == g.Rows-1 || col == g.Cols-1
}
