// Package treegrid models a rectangular patch of forest as a grid of tree
// heights and answers line-of-sight questions about it.
//
// What:
//
//   - Grid wraps an immutable rectangular grid of single-digit heights (0..9).
//   - Visible reports every tree that can be seen from outside the grid
//     looking along a row or a column.
//   - ScenicScore multiplies the four viewing distances from one tree;
//     MaxScenicScore finds the best tree-house spot among interior cells.
//
// Why:
//
//   - Tree-house placement: choose the tree with the widest view.
//   - Visibility audits: count trees hidden behind taller neighbours.
//
// Complexity:
//
//   - Visible:        O(R×C), Memory: O(R×C) for the result set.
//   - ScenicScore:    O(R+C) per cell.
//   - MaxScenicScore: O(R×C×max(R,C)), Memory: O(1).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadHeight: a cell is not a digit in 0..9.
//
// All three wrap ErrMalformedGrid.
package treegrid
