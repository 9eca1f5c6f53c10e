// SPDX-License-Identifier: MIT
// Package reduce: pivot and row-operation types plus sentinel errors.

package reduce

import (
	"errors"
	"fmt"

	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// Sentinel errors for reduction runs.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("reduce: grid is nil")

	// ErrBadPivot is returned when a supplied pivot list references a
	// position outside the grid. A well-formed list from Echelon or
	// FindPivots never triggers it.
	ErrBadPivot = errors.New("reduce: pivot out of range")
)

// Pivot is the position of a leading nonzero entry: row r, column c.
type Pivot struct {
	Row int
	Col int
}

// OpKind tags the variant carried by a RowOp.
type OpKind int

const (
	// OpSwap — interchange two rows: Rᵢ ↔ Rⱼ.
	OpSwap OpKind = iota

	// OpReplace — row replacement: R_target ← R_target − Factor·R_source.
	OpReplace

	// OpScale — row scaling: R_row ← R_row / Divisor.
	OpScale
)

// RowOp is one elementary row operation, emitted in the exact order it
// was applied to the grid. Which fields are meaningful depends on Kind:
//
//	OpSwap    — I, J
//	OpReplace — Target, Source, Factor
//	OpScale   — Row, Divisor
//
// All row indices are zero-based; presentation layers may renumber.
type RowOp struct {
	Kind OpKind

	// Swap operands.
	I, J int

	// Replace operands.
	Target, Source int
	Factor         rational.Rational

	// Scale operands.
	Row     int
	Divisor rational.Rational
}

// swapOp builds an OpSwap record.
func swapOp(i, j int) RowOp { return RowOp{Kind: OpSwap, I: i, J: j} }

// replaceOp builds an OpReplace record.
func replaceOp(target, source int, factor rational.Rational) RowOp {
	return RowOp{Kind: OpReplace, Target: target, Source: source, Factor: factor}
}

// scaleOp builds an OpScale record.
func scaleOp(row int, divisor rational.Rational) RowOp {
	return RowOp{Kind: OpScale, Row: row, Divisor: divisor}
}

// String renders a compact zero-based debug form. Human-facing, 1-based
// narration belongs to the render package.
func (op RowOp) String() string {
	switch op.Kind {
	case OpSwap:
		return fmt.Sprintf("swap(%d,%d)", op.I, op.J)
	case OpReplace:
		return fmt.Sprintf("replace(%d,%d,%s)", op.Target, op.Source, op.Factor)
	case OpScale:
		return fmt.Sprintf("scale(%d,%s)", op.Row, op.Divisor)
	default:
		return fmt.Sprintf("unknown(%d)", int(op.Kind))
	}
}
