// Package console implements the thin interactive shell shared by the
// pattern-printing programs: styled banners and prompts, integer input
// scanning, and pattern row output. Renderers never touch a writer;
// everything that reaches the terminal goes through this package.
package console

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrNotAnInteger indicates the input token could not be scanned as an
// integer.
var ErrNotAnInteger = errors.New("console: input is not a valid integer")

// Banner writes the program title, an underline rule of equal length,
// and a trailing blank line.
func Banner(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
	fmt.Fprintln(w, ruleStyle.Render(strings.Repeat("=", len(title))))
	fmt.Fprintln(w)
}

// PromptInt writes the styled label followed by a space and scans one
// integer token from r, skipping leading whitespace. A token that does
// not parse yields ErrNotAnInteger wrapping the scan failure.
func PromptInt(r io.Reader, w io.Writer, label string) (int, error) {
	fmt.Fprint(w, promptStyle.Render(label)+" ")
	var n int
	if _, err := fmt.Fscan(r, &n); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrNotAnInteger, err)
	}

	return n, nil
}

// Errorln writes msg in the error style on its own line.
func Errorln(w io.Writer, msg string) {
	fmt.Fprintln(w, errorStyle.Render(msg))
}

// WriteRows writes rendered pattern rows, one per line, unchanged.
func WriteRows(w io.Writer, rows []string) {
	for _, row := range rows {
		fmt.Fprintln(w, row)
	}
}
