// Package triangle renders right-angled glyph triangles using a single
// loop driven by triangular numbers.
//
// The k-th triangular number T(k) = k(k+1)/2 counts the glyphs of a
// k-row triangle. By running one counter over all T(n) glyphs and
// ending a row whenever the counter hits the current row's triangular
// number, the usual nested row/column loops collapse into a single
// traversal with O(1) auxiliary state, riding on T(k) = T(k-1) + k.
package triangle
