// Package matrix provides the mutable rectangular grid of exact
// rationals that the elimination phases operate on.
//
// 🚀 What is matrix?
//
//	Grid stores rows×cols rational entries in a flat row-major slice and
//	exposes exactly the three elementary row operations row reduction
//	needs:
//	  • SwapRows(i, j)                   — Rᵢ ↔ Rⱼ
//	  • ReplaceRow(target, src, factor)  — Rₜ ← Rₜ − factor·Rₛ
//	  • ScaleRow(row, divisor)           — Rᵣ ← Rᵣ / divisor
//
// Construction validates shape up front (ErrBadShape for empty, jagged
// or zero-column input); public indexers return ErrOutOfRange rather
// than panic. A Grid is exclusively owned by whichever reduction phase
// is currently running — nothing in this package is safe for concurrent
// mutation, and nothing needs to be.
//
// ⚙️ Usage:
//
//	g, err := matrix.NewGrid([][]rational.Rational{
//	    {rational.New(0), rational.New(2), rational.New(4)},
//	    {rational.New(1), rational.New(1), rational.New(1)},
//	})
//	_ = g.SwapRows(0, 1)
//
// Presentation (alignment, circled pivots) lives in the render package;
// Grid.String is a plain debug form only.
package matrix
