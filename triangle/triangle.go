package triangle

import "strings"

// Triangular returns the k-th triangular number k(k+1)/2, the glyph
// count of a k-row right triangle. Non-positive k yields 0.
func Triangular(k int) int {
	if k <= 0 {
		return 0
	}

	return k * (k + 1) / 2
}

// Total returns the number of glyphs Render emits for height n.
func Total(n int) int {
	return Triangular(n)
}

// Render draws a right triangle of height n as text rows.
//
// Description:
//
//	Rather than nesting a column loop inside a row loop, Render walks
//	one counter i from 1 to Total(n), emitting a glyph per step. A row
//	is complete exactly when i equals the current row's triangular
//	number — the identity T(k) = T(k-1) + k guarantees each boundary is
//	hit once — so the row is flushed and the row counter advances.
//
// Example (n=4):
//
//	*
//	* *
//	* * *
//	* * * *
//
// Output: row k (1-indexed) holds k glyphs, each followed by a single
// space; exactly n rows are produced.
//
// Errors:
//   - ErrNonPositiveHeight — n ≤ 0.
//
// Complexity: O(n²) glyphs emitted, O(1) auxiliary space beyond the result.
func Render(n int, opts Options) ([]string, error) {
	if n <= 0 {
		return nil, ErrNonPositiveHeight
	}
	glyph := opts.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}

	rows := make([]string, 0, n)
	var sb strings.Builder
	row := 1
	total := Total(n)
	for i := 1; i <= total; i++ {
		sb.WriteString(glyph)
		sb.WriteByte(' ')
		// Row boundary: i reached the row-th triangular number.
		if i == Triangular(row) {
			rows = append(rows, sb.String())
			sb.Reset()
			row++
		}
	}

	return rows, nil
}
