package treegrid

import "sort"

// MaxHeight is the tallest tree a Grid accepts.
const MaxHeight = 9

// Cell addresses one tree by row and column, both 0-indexed.
type Cell struct {
	Row, Col int
}

// Grid is a rectangular grid of tree heights. It is immutable once built.
// Rows and Cols define dimensions; heights are stored row-major.
type Grid struct {
	Rows, Cols int
	heights    []uint8
}

// VisibilitySet holds the cells visible from outside a Grid.
// It is built once by Grid.Visible and never mutated afterwards.
type VisibilitySet struct {
	cells map[Cell]struct{}
}

// Len returns the number of visible cells.
func (s VisibilitySet) Len() int {
	return len(s.cells)
}

// Contains reports whether c is visible.
func (s VisibilitySet) Contains(c Cell) bool {
	_, ok := s.cells[c]
	return ok
}

// Cells returns the visible cells in row-major order.
func (s VisibilitySet) Cells() []Cell {
	out := make([]Cell, 0, len(s.cells))
	for c := range s.cells {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})

	return out
}
