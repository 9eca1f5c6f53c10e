// SPDX-License-Identifier: MIT
// Package reduce: forward phase — echelon form.

package reduce

import (
	"fmt"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// noPivotRow marks "no nonzero entry found" during the pivot search.
const noPivotRow = -1

// Echelon reduces g to row-echelon form in place and returns the pivot
// list, ordered by increasing row (equivalently increasing column —
// elimination is monotonic).
//
// Implementation:
//   - Stage 1 (Validate): reject a nil grid.
//   - Stage 2 (Sweep): column-major sweep with an advancing pivot-row
//     cursor; per column: topmost-nonzero search, optional swap,
//     elimination of every nonzero entry strictly below the cursor.
//   - Stage 3 (Finalize): derive pivots by scanning each row for its
//     leading nonzero entry (FindPivots).
//
// Behavior highlights:
//   - Pivot selection is first-nonzero, never magnitude-based: exact
//     arithmetic makes partial pivoting unnecessary.
//   - Each Swap/Replace is emitted to the OnOperation hook after it is
//     applied, in application order.
//
// Invariants established: at most one pivot per row; pivot columns
// strictly increase with pivot rows.
//
// Errors:
//   - ErrNilGrid for a nil grid.
//   - Propagated grid errors cannot occur for in-range sweeps; any that
//     surface indicate a broken invariant and are returned wrapped.
//
// Determinism: fixed col→row visitation; identical inputs produce
// identical operation sequences.
// Complexity: O(rows²·cols) rational operations, O(min(rows,cols))
// extra memory for the pivot list.
func Echelon(g *matrix.Grid, opts ...Option) ([]Pivot, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	o := gatherOptions(opts)

	rows, cols := g.Rows(), g.Cols()
	var (
		cursor     int               // top row of the active submatrix
		col, r     int               // sweep iterators
		entry      rational.Rational // current candidate entry
		pivotVal   rational.Rational // pivot entry for the active column
		factor     rational.Rational // elimination factor entry/pivot
		nonzeroRow int               // topmost nonzero row at/below cursor
		err        error
	)
	for col = 0; col < cols; col++ {
		if cursor >= rows {
			break // every row already carries a pivot
		}

		// Step 1: find the topmost nonzero entry at or below the cursor.
		nonzeroRow = noPivotRow
		for r = cursor; r < rows; r++ {
			if entry, err = g.At(r, col); err != nil {
				return nil, fmt.Errorf("Echelon: At(%d,%d): %w", r, col, err)
			}
			if !entry.IsZero() {
				nonzeroRow = r
				break
			}
		}
		if nonzeroRow == noPivotRow {
			continue // column contributes no pivot; cursor stays put
		}

		// Step 2: interchange rows to bring the nonzero entry to the top.
		if nonzeroRow != cursor {
			if err = g.SwapRows(cursor, nonzeroRow); err != nil {
				return nil, fmt.Errorf("Echelon: SwapRows(%d,%d): %w", cursor, nonzeroRow, err)
			}
			o.OnOperation(swapOp(cursor, nonzeroRow))
		}

		// Step 3: row replacement — zero out every entry below the pivot.
		if pivotVal, err = g.At(cursor, col); err != nil {
			return nil, fmt.Errorf("Echelon: At(%d,%d): %w", cursor, col, err)
		}
		for r = cursor + 1; r < rows; r++ {
			if entry, err = g.At(r, col); err != nil {
				return nil, fmt.Errorf("Echelon: At(%d,%d): %w", r, col, err)
			}
			if entry.IsZero() {
				continue
			}
			// factor = entry / pivot; pivot is nonzero by selection.
			if factor, err = entry.Div(pivotVal); err != nil {
				return nil, fmt.Errorf("Echelon: factor at row %d: %w", r, err)
			}
			if err = g.ReplaceRow(r, cursor, factor); err != nil {
				return nil, fmt.Errorf("Echelon: ReplaceRow(%d,%d): %w", r, cursor, err)
			}
			o.OnOperation(replaceOp(r, cursor, factor))
		}

		// Step 4: cover the top row of the submatrix.
		cursor++
	}

	return FindPivots(g)
}

// FindPivots locates all pivot positions (row, col) of a grid in echelon
// form by scanning each row left-to-right for its leading nonzero entry.
// Rows with no nonzero entry contribute no pivot.
//
// The result is ordered by increasing row index. On a grid that is not
// in echelon form the scan still terminates and simply reports each
// row's leading entry; callers needing echelon invariants must run
// Echelon first.
//
// Errors: ErrNilGrid. Complexity: O(rows·cols).
func FindPivots(g *matrix.Grid) ([]Pivot, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	rows, cols := g.Rows(), g.Cols()
	pivots := make([]Pivot, 0, min(rows, cols))
	var (
		entry rational.Rational
		err   error
	)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if entry, err = g.At(r, c); err != nil {
				return nil, fmt.Errorf("FindPivots: At(%d,%d): %w", r, c, err)
			}
			if !entry.IsZero() {
				pivots = append(pivots, Pivot{Row: r, Col: c})
				break
			}
		}
	}

	return pivots, nil
}

// Reduce runs the full Row Reduction Algorithm — forward phase, then
// backward phase — on g in place, and returns the pivot list of the
// resulting RREF. Pivot positions are unchanged by the backward phase.
//
// Errors: ErrNilGrid plus anything Echelon/RREF surface.
// Complexity: O(rows²·cols).
func Reduce(g *matrix.Grid, opts ...Option) ([]Pivot, error) {
	pivots, err := Echelon(g, opts...)
	if err != nil {
		return nil, err
	}
	if err = RREF(g, pivots, opts...); err != nil {
		return nil, err
	}

	return pivots, nil
}
