// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors. All operations
// MUST return these sentinels (optionally wrapped with call-site context
// via fmt.Errorf("...: %w", ...)) and tests MUST check them via
// errors.Is. No operation panics on user-triggered conditions.

package matrix

import "errors"

var (
	// ErrBadShape is returned when constructing a Grid from input that is
	// empty, has zero columns, or has rows of unequal length.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) and row operations MUST return this,
	// not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilGrid indicates that a nil *Grid receiver or argument was used.
	ErrNilGrid = errors.New("matrix: nil grid")
)
