// SPDX-License-Identifier: MIT
// Package reduce: backward phase — reduced echelon form.

package reduce

import (
	"fmt"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// RREF reduces a grid already in echelon form to reduced row-echelon
// form in place, consuming the pivot list produced by Echelon (or
// FindPivots).
//
// Implementation:
//   - Stage 1 (Validate): reject a nil grid; reject pivots outside the
//     grid (ErrBadPivot).
//   - Stage 2 (Sweep): process pivots in reverse — rightmost/bottommost
//     first. Per pivot: scale the pivot row so the pivot becomes exactly
//     1 (skipped when it already is), then eliminate every nonzero entry
//     strictly above it, walking upward.
//
// The reverse order is mandatory: eliminating bottom-up guarantees that
// entries created above a pivot are never disturbed by a later step.
// Since the pivot is 1 when elimination starts, the replace factor is
// the entry itself.
//
// Behavior highlights:
//   - Each Scale/Replace is emitted to the OnOperation hook after it is
//     applied, in application order.
//   - A grid already in RREF produces zero operations and is unchanged
//     (idempotence).
//
// Invariants established: every pivot equals exactly 1 and is the only
// nonzero entry in its column.
//
// Errors:
//   - ErrNilGrid, ErrBadPivot for malformed arguments.
//   - A zero-valued pivot in the supplied list surfaces as a wrapped
//     rational.ErrDivisionByZero from ScaleRow — an internal invariant
//     violation, never reachable through Echelon's output.
//
// Determinism: fixed reverse-pivot then upward-row visitation.
// Complexity: O(rows²·cols) rational operations, O(1) extra memory.
func RREF(g *matrix.Grid, pivots []Pivot, opts ...Option) error {
	if g == nil {
		return ErrNilGrid
	}
	rows, cols := g.Rows(), g.Cols()
	for _, p := range pivots {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return fmt.Errorf("RREF: pivot (%d,%d): %w", p.Row, p.Col, ErrBadPivot)
		}
	}
	o := gatherOptions(opts)

	var (
		idx      int               // reverse iterator over pivots
		r        int               // row iterator above the pivot
		pivotVal rational.Rational // current pivot entry
		entry    rational.Rational // entry above the pivot
		err      error
	)
	for idx = len(pivots) - 1; idx >= 0; idx-- {
		p := pivots[idx]

		// Step 5-1: scale the pivot row so the pivot becomes 1.
		if pivotVal, err = g.At(p.Row, p.Col); err != nil {
			return fmt.Errorf("RREF: At(%d,%d): %w", p.Row, p.Col, err)
		}
		if !pivotVal.IsOne() {
			if err = g.ScaleRow(p.Row, pivotVal); err != nil {
				return fmt.Errorf("RREF: ScaleRow(%d): %w", p.Row, err)
			}
			o.OnOperation(scaleOp(p.Row, pivotVal))
		}

		// Step 5-2: eliminate all entries above the pivot, walking upward.
		for r = p.Row - 1; r >= 0; r-- {
			if entry, err = g.At(r, p.Col); err != nil {
				return fmt.Errorf("RREF: At(%d,%d): %w", r, p.Col, err)
			}
			if entry.IsZero() {
				continue
			}
			// Pivot is 1, so the factor is the entry itself.
			if err = g.ReplaceRow(r, p.Row, entry); err != nil {
				return fmt.Errorf("RREF: ReplaceRow(%d,%d): %w", r, p.Row, err)
			}
			o.OnOperation(replaceOp(r, p.Row, entry))
		}
	}

	return nil
}
