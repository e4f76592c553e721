package concentric

import "strings"

// Region glyphs used by the decomposition map.
const (
	upperLeftMark  = "U"
	lowerRightMark = "L"
)

// Regions renders the diagonal-decomposition map for size parameter n:
// cells on the upper-left side of the anti-diagonal (i+j < m) print as
// "U", the remaining lower-right cells as "L", in the same
// one-glyph-one-space layout as Render. Useful for seeing which of the
// two formulas serves each cell.
// Returns ErrNonPositiveSize when n ≤ 0.
// Complexity: O(n²).
func Regions(n int) ([]string, error) {
	if n <= 0 {
		return nil, ErrNonPositiveSize
	}
	m := 2*n - 1
	rows := make([]string, m)
	var sb strings.Builder
	for i := 0; i < m; i++ {
		sb.Reset()
		for j := 0; j < m; j++ {
			if i+j < m {
				sb.WriteString(upperLeftMark)
			} else {
				sb.WriteString(lowerRightMark)
			}
			sb.WriteByte(' ')
		}
		rows[i] = sb.String()
	}

	return rows, nil
}
