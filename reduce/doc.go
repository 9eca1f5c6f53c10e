// Package reduce implements the two-phase Row Reduction Algorithm over
// an exact-rational matrix.Grid: a forward phase producing echelon form
// and a backward phase producing reduced echelon form (RREF).
//
// 🚀 How it works
//
// Forward phase (Echelon), a column-major sweep with an advancing
// pivot-row cursor:
//  1. For each column left to right, find the topmost row at or below
//     the cursor with a nonzero entry in that column.
//  2. No such row — the column contributes no pivot; keep the cursor.
//  3. Otherwise swap that row up to the cursor if needed (Swap op).
//  4. For every row strictly below, eliminate its entry with
//     factor = entry / pivot (Replace op: Rᵣ ← Rᵣ − factor·R_cursor).
//  5. Advance the cursor; stop once it reaches the row count.
//
// Backward phase (RREF), walking the pivot list in reverse — bottom-up
// order is mandatory, it guarantees entries created above a pivot are
// never disturbed by a later step:
//  1. Scale the pivot row by the pivot value so the pivot becomes 1
//     (Scale op), unless it already is.
//  2. Eliminate every nonzero entry strictly above the pivot with
//     factor = entry (Replace op) — the pivot is 1 by then.
//
// Every elementary row operation is emitted, in the exact order applied,
// to the OnOperation hook (see Options). The default hook is a no-op, so
// tracing costs nothing unless requested.
//
// ⚙️ Usage:
//
//	pivots, err := reduce.Echelon(g)
//	err = reduce.RREF(g, pivots)
//
//	// or both phases with a trace:
//	pivots, err := reduce.Reduce(g, reduce.WithOperationHook(func(op reduce.RowOp) {
//	    fmt.Println(render.Op(op))
//	}))
//
// Complexity: O(rows²·cols) rational operations for either phase.
// Determinism: fixed sweep orders, no randomness — identical inputs
// yield identical operation sequences and identical results.
package reduce
