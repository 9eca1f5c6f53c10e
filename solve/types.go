// SPDX-License-Identifier: MIT
// Package solve: verdict types and sentinel errors.

package solve

import (
	"errors"

	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// Sentinel errors for classification.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrNoVariables is returned when the grid cannot be read as an
	// augmented system: with fewer than two columns there is no
	// coefficient column left of the right-hand side.
	ErrNoVariables = errors.New("solve: augmented grid needs at least two columns")

	// ErrBadPivot is returned when the supplied pivot list references a
	// position outside the grid.
	ErrBadPivot = errors.New("solve: pivot out of range")
)

// Kind tags the verdict carried by a Solution.
type Kind int

const (
	// Inconsistent — the system has no solution (a row reads 0 = nonzero).
	Inconsistent Kind = iota

	// Unique — exactly one solution; see Solution.Values.
	Unique

	// Infinite — a solution family parametrized by the free variables;
	// see Solution.Particular and Solution.Directions.
	Infinite
)

// String names the verdict kind for debugging and rendering.
func (k Kind) String() string {
	switch k {
	case Inconsistent:
		return "inconsistent"
	case Unique:
		return "unique"
	case Infinite:
		return "infinite"
	default:
		return "unknown"
	}
}

// Direction is one span vector of an infinite solution family: setting
// free variable Free to t (and every other free variable to 0) moves the
// solution by t·Vector.
type Direction struct {
	// Free is the zero-based variable index of the free variable.
	Free int

	// Vector has length numVars; component Free is exactly 1.
	Vector []rational.Rational
}

// Solution is the classifier's verdict. Which fields are populated
// depends on Kind:
//
//	Inconsistent — nothing beyond Kind
//	Unique       — Values (length numVars)
//	Infinite     — Particular (length numVars) and Directions, ordered
//	               by increasing free-variable index
type Solution struct {
	Kind       Kind
	Values     []rational.Rational
	Particular []rational.Rational
	Directions []Direction
}
