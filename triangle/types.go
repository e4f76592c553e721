// Package triangle: options and sentinel errors for triangle rendering.
package triangle

import "errors"

var (
	// ErrNonPositiveHeight indicates the requested height is zero or negative.
	ErrNonPositiveHeight = errors.New("triangle: height must be a positive integer")
)

// DefaultGlyph is the figure drawn when Options.Glyph is left empty.
const DefaultGlyph = "*"

// Options configures triangle rendering.
//
// Fields:
//   - Glyph — the figure drawn at every position; each emitted glyph is
//     followed by a single space. Empty means DefaultGlyph.
//
// Example:
//
//	opts := triangle.DefaultOptions()
//	opts.Glyph = "#"
//	rows, err := triangle.Render(5, opts)
type Options struct {
	Glyph string
}

// DefaultOptions returns Options with the asterisk glyph.
func DefaultOptions() Options {
	return Options{Glyph: DefaultGlyph}
}
