// Package concentric renders square grids of concentric integer rings.
// It supports:
//
//   - Building the raw value board (Grid)
//   - Formatting the board as text rows (Render)
//   - Visualizing the diagonal decomposition behind the formula (Regions)
//
// The board for size parameter n is a square of side m = 2n-1 whose
// cells hold their ring number: n on the outer border, descending to 1
// at the center. Instead of taking the minimum distance to all four
// edges per cell, the board is split along the anti-diagonal i+j = m-1
// into two triangular regions, each served by one formula:
//
//	i+j < m : max(n-i, n-j)      — upper-left region and the diagonal
//	i+j ≥ m : max(i-n, j-n) + 2  — lower-right region
//
// The +2 offset aligns the lower-right values with the upper-left
// count-down so the halves meet seamlessly across the diagonal; the
// result equals the classic nearest-edge ring pattern.
package concentric
