package treegrid_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ArjenL/AoC2022/treegrid"
)

const sample = `30373
25512
65332
33549
35390
`

func mustParse(t *testing.T, s string) *treegrid.Grid {
	t.Helper()
	g, err := treegrid.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return g
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

// TestNewGrid_Errors verifies that NewGrid rejects empty, ragged or out-of-range inputs.
func TestNewGrid_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid [][]int
		err  error
	}{
		{"EmptyRows", [][]int{}, treegrid.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, treegrid.ErrEmptyGrid},
		{"NonRectangular", [][]int{{1, 2}, {3}}, treegrid.ErrNonRectangular},
		{"TooTall", [][]int{{1, 10}, {3, 4}}, treegrid.ErrBadHeight},
		{"Negative", [][]int{{1, -1}, {3, 4}}, treegrid.ErrBadHeight},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := treegrid.NewGrid(tc.grid)
			assert.ErrorIs(t, err, tc.err)
			assert.ErrorIs(t, err, treegrid.ErrMalformedGrid)
		})
	}
}

// TestNewGrid_Copies checks that the Grid does not alias its input.
func TestNewGrid_Copies(t *testing.T) {
	in := [][]int{{1, 2}, {3, 4}}
	g, err := treegrid.NewGrid(in)
	require.NoError(t, err)
	in[0][0] = 9
	assert.Equal(t, 1, g.Height(0, 0))
}

// TestParse_Errors covers non-digit input and interior blank lines.
func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name, in string
		err      error
	}{
		{"Letter", "123\n1a3\n", treegrid.ErrBadHeight},
		{"Ragged", "123\n12\n", treegrid.ErrNonRectangular},
		{"InteriorBlank", "123\n\n123\n", treegrid.ErrNonRectangular},
		{"Empty", "\n\n", treegrid.ErrEmptyGrid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := treegrid.Parse(strings.NewReader(tc.in))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.err), "got %v, want %v", err, tc.err)
		})
	}
}

// TestParse_Sample checks dimensions and a few heights of the sample grid.
func TestParse_Sample(t *testing.T) {
	g := mustParse(t, sample+"\n\n")
	assert.Equal(t, 5, g.Rows)
	assert.Equal(t, 5, g.Cols)
	assert.Equal(t, 3, g.Height(0, 0))
	assert.Equal(t, 9, g.Height(3, 4))
	assert.Equal(t, 0, g.Height(4, 4))
	assert.Panics(t, func() { g.Height(5, 0) })
}

// TestCoordinate round-trips row-major indices on a non-square grid.
func TestCoordinate(t *testing.T) {
	g := mustParse(t, "123\n456\n")
	for idx := 0; idx < g.Rows*g.Cols; idx++ {
		r, c := g.Coordinate(idx)
		assert.Equal(t, idx, g.Index(r, c))
		assert.True(t, g.InBounds(r, c))
	}
	assert.False(t, g.InBounds(2, 0))
	assert.False(t, g.InBounds(0, 3))
	assert.False(t, g.InBounds(-1, 0))
}

//----------------------------------------------------------------------------//
// Visibility
//----------------------------------------------------------------------------//

// TestVisible_Sample matches the puzzle answer and the hidden interior trees.
func TestVisible_Sample(t *testing.T) {
	g := mustParse(t, sample)
	vis := g.Visible()
	assert.Equal(t, 21, vis.Len())
	for _, c := range []treegrid.Cell{{1, 1}, {1, 2}, {2, 1}, {2, 3}, {3, 2}} {
		assert.True(t, vis.Contains(c), "%v should be visible", c)
	}
	for _, c := range []treegrid.Cell{{1, 3}, {2, 2}, {3, 1}, {3, 3}} {
		assert.False(t, vis.Contains(c), "%v should be hidden", c)
	}
}

// TestVisible_BorderAlwaysVisible checks every border cell on several shapes.
func TestVisible_BorderAlwaysVisible(t *testing.T) {
	for _, in := range []string{sample, "99\n99\n", "5\n", "000000\n", "9\n9\n9\n", "1234321\n1050501\n9999999\n"} {
		g := mustParse(t, in)
		vis := g.Visible()
		for r := 0; r < g.Rows; r++ {
			for c := 0; c < g.Cols; c++ {
				if g.IsBorder(r, c) {
					assert.True(t, vis.Contains(treegrid.Cell{Row: r, Col: c}), "border %d,%d of %q", r, c, in)
				}
			}
		}
	}
}

// TestVisible_NonSquare exercises both orientations of a non-square grid.
func TestVisible_NonSquare(t *testing.T) {
	wide := mustParse(t, "1234321\n1050501\n9999999\n")
	assert.Equal(t, 18, wide.Visible().Len())

	tall := mustParse(t, "303\n255\n653\n335\n353\n777\n")
	vis := tall.Visible()
	assert.Equal(t, 17, vis.Len())
	assert.False(t, vis.Contains(treegrid.Cell{Row: 3, Col: 1}))
}

// TestVisible_CellsSorted checks row-major ordering of Cells.
func TestVisible_CellsSorted(t *testing.T) {
	g := mustParse(t, "11\n11\n")
	assert.Equal(t, []treegrid.Cell{{0, 0}, {0, 1}, {1, 0}, {1, 1}}, g.Visible().Cells())
}

//----------------------------------------------------------------------------//
// Scenic score
//----------------------------------------------------------------------------//

// TestScenicScore_Sample checks the two cells described by the puzzle.
func TestScenicScore_Sample(t *testing.T) {
	g := mustParse(t, sample)
	assert.Equal(t, 4, g.ScenicScore(1, 2))
	assert.Equal(t, 8, g.ScenicScore(3, 2))
	assert.Equal(t, 8, g.MaxScenicScore())

	assert.Equal(t, 1, g.ViewingDistance(1, 2, -1, 0))
	assert.Equal(t, 1, g.ViewingDistance(1, 2, 0, -1))
	assert.Equal(t, 2, g.ViewingDistance(1, 2, 0, 1))
	assert.Equal(t, 2, g.ViewingDistance(1, 2, 1, 0))
}

// TestScenicScore_Border verifies that edge trees score zero.
func TestScenicScore_Border(t *testing.T) {
	g := mustParse(t, sample)
	for c := 0; c < g.Cols; c++ {
		assert.Zero(t, g.ScenicScore(0, c))
		assert.Zero(t, g.ScenicScore(g.Rows-1, c))
	}
}

// TestMaxScenicScore_NonSquare uses row counts for vertical bounds.
func TestMaxScenicScore_NonSquare(t *testing.T) {
	wide := mustParse(t, "1234321\n1050501\n9999999\n")
	assert.Equal(t, 4, wide.MaxScenicScore())

	tall := mustParse(t, "303\n255\n653\n335\n353\n777\n")
	assert.Equal(t, 2, tall.MaxScenicScore())
	assert.Equal(t, 2, tall.ScenicScore(2, 1))
}

// TestMaxScenicScore_NoInterior covers grids without interior cells.
func TestMaxScenicScore_NoInterior(t *testing.T) {
	for _, in := range []string{"12\n34\n", "5\n", "12345\n", "1\n2\n3\n"} {
		g := mustParse(t, in)
		assert.Zero(t, g.MaxScenicScore(), in)
	}
}

// TestIdempotent re-runs both scans on the same grid.
func TestIdempotent(t *testing.T) {
	g := mustParse(t, sample)
	assert.Equal(t, g.Visible().Cells(), g.Visible().Cells())
	assert.Equal(t, g.MaxScenicScore(), g.MaxScenicScore())
}
