// Package patterna is a small playground of closed-form console
// patterns — classic text figures rebuilt around a single arithmetic
// identity each, instead of the usual pile of nested loops.
//
// 🚀 What is patterna?
//
//	A tiny, deterministic library (plus two interactive programs) that
//	renders geometric text patterns from one integer:
//		• Concentric squares: ring grids via diagonal decomposition —
//		  the board is split along the anti-diagonal and each half is
//		  served by a single distance formula
//		• Right triangles: rows driven by triangular numbers — one
//		  running counter replaces the nested row/column loops
//
// ✨ Why choose patterna?
//
//   - Pure functions – every renderer maps an int to text rows; no
//     state, no side effects, printing is the caller's concern
//   - Verified identities – ring symmetry and triangular-number row
//     boundaries are pinned by tests, not by faith
//   - Friendly shell – the bundled commands prompt, validate, and show
//     worked examples for a couple of extra sizes
//
// Everything is organized under four packages:
//
//	concentric/ — Grid, Render and the U/L region visualization
//	triangle/   — Triangular, Total, Render with a configurable glyph
//	console/    — styled prompts, integer scanning, row output
//	cmd/        — the concentric-square and triangle programs
//
// Quick ASCII example (n = 3):
//
//	3 3 3 3 3        *
//	3 2 2 2 3        * *
//	3 2 1 2 3        * * *
//	3 2 2 2 3
//	3 3 3 3 3
//
//	go get github.com/devlunagariya/patterna
package patterna
