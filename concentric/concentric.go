package concentric

import (
	"strconv"
	"strings"
)

// Grid builds the value board for size parameter n.
//
// Description:
//
//	Each cell (i, j) of the (2n-1)×(2n-1) board holds its ring number.
//	The board is partitioned along the anti-diagonal i+j = m-1 and each
//	half is computed by a single formula:
//
//	  i+j < m : max(n-i, n-j)
//	  i+j ≥ m : max(i-n, j-n) + 2
//
// Example (n=4, 7×7):
//
//	4 4 4 4 4 4 4
//	4 3 3 3 3 3 4
//	4 3 2 2 2 3 4
//	4 3 2 1 2 3 4
//	4 3 2 2 2 3 4
//	4 3 3 3 3 3 4
//	4 4 4 4 4 4 4
//
// Errors:
//   - ErrNonPositiveSize — n ≤ 0.
//
// Complexity: O(n²) time, O(n²) memory.
func Grid(n int) ([][]int, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	m := 2*n - 1
	cells := make([][]int, m)
	for i := 0; i < m; i++ {
		row := make([]int, m)
		for j := 0; j < m; j++ {
			if i+j < m {
				row[j] = max(n-i, n-j)
			} else {
				row[j] = max(i-n, j-n) + 2
			}
		}
		cells[i] = row
	}

	return cells, nil
}

// Render formats the board for size parameter n as text rows.
// Every cell value is followed by a single space; result row r is board
// row r, so exactly 2n-1 rows are produced.
// Returns ErrNonPositiveSize when n ≤ 0.
// Complexity: O(n²).
func Render(n int) ([]string, error) {
	cells, err := Grid(n)
	if err != nil {
		return nil, err
	}
	rows := make([]string, len(cells))
	var sb strings.Builder
	for i, row := range cells {
		sb.Reset()
		for _, v := range row {
			sb.WriteString(strconv.Itoa(v))
			sb.WriteByte(' ')
		}
		rows[i] = sb.String()
	}

	return rows, nil
}
