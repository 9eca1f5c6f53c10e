// SPDX-License-Identifier: MIT
// Package solve: the solution-set decision procedure over an augmented
// RREF grid.

package solve

import (
	"fmt"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
	"github.com/dschell3/ReducedEchelonFormAlgo/reduce"
)

// noPivot marks a variable column without a pivot row (a free variable).
const noPivot = -1

// Classify decides the solution set of the augmented system [A | b]
// represented by g in reduced row-echelon form, with pivot list pivots.
// The last column is the right-hand side; numVars = Cols − 1.
//
// Implementation:
//   - Stage 1 (Validate): non-nil grid, at least two columns, pivots in
//     range.
//   - Stage 2 (Inconsistency): a pivot in the augmented column means a
//     row reads 0 = nonzero — verdict Inconsistent.
//   - Stage 3 (Partition): variable columns split into basic (carry a
//     pivot) and free (do not).
//   - Stage 4 (Read off): no free variables — Unique, each basic value
//     is its pivot row's RHS entry (RREF guarantees the pivot is 1 and
//     the column is otherwise zero). Free variables present — Infinite:
//     particular solution sets every free variable to 0; the direction
//     vector for free variable f has component f = 1, component c =
//     −RREF[r][f] for each basic c with pivot row r, and 0 elsewhere,
//     produced in increasing free-variable order.
//
// Errors: ErrNilGrid, ErrNoVariables, ErrBadPivot.
// Determinism: verdict and vectors are pure functions of the input.
// Complexity: O(rows·cols) grid reads, O(numVars·(free+1)) memory.
func Classify(g *matrix.Grid, pivots []reduce.Pivot) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cols := g.Cols()
	if cols < 2 {
		return nil, fmt.Errorf("Classify: %d column(s): %w", cols, ErrNoVariables)
	}
	numVars := cols - 1

	// Map each variable column to its pivot row, rejecting bad pivots and
	// detecting inconsistency in the same pass.
	pivotRowOf := make([]int, numVars)
	for c := range pivotRowOf {
		pivotRowOf[c] = noPivot
	}
	for _, p := range pivots {
		if p.Row < 0 || p.Row >= g.Rows() || p.Col < 0 || p.Col >= cols {
			return nil, fmt.Errorf("Classify: pivot (%d,%d): %w", p.Row, p.Col, ErrBadPivot)
		}
		if p.Col == numVars {
			// Pivot in the augmented column: 0 = nonzero.
			return &Solution{Kind: Inconsistent}, nil
		}
		pivotRowOf[p.Col] = p.Row
	}

	// Collect free variables in increasing index order.
	free := make([]int, 0, numVars)
	for c := 0; c < numVars; c++ {
		if pivotRowOf[c] == noPivot {
			free = append(free, c)
		}
	}

	// readRHS reads the augmented-column entry of a pivot row.
	readRHS := func(row int) (rational.Rational, error) {
		v, err := g.At(row, numVars)
		if err != nil {
			return rational.Zero(), fmt.Errorf("Classify: At(%d,%d): %w", row, numVars, err)
		}

		return v, nil
	}

	// Unique: every variable is basic; read values off the RHS.
	if len(free) == 0 {
		values := make([]rational.Rational, numVars)
		for c := 0; c < numVars; c++ {
			v, err := readRHS(pivotRowOf[c])
			if err != nil {
				return nil, err
			}
			values[c] = v
		}

		return &Solution{Kind: Unique, Values: values}, nil
	}

	// Infinite: particular solution with all free variables at 0.
	particular := make([]rational.Rational, numVars) // zero value is 0
	for c := 0; c < numVars; c++ {
		if pivotRowOf[c] == noPivot {
			continue
		}
		v, err := readRHS(pivotRowOf[c])
		if err != nil {
			return nil, err
		}
		particular[c] = v
	}

	// One direction vector per free variable, increasing index order.
	directions := make([]Direction, 0, len(free))
	for _, f := range free {
		vec := make([]rational.Rational, numVars) // zero value is 0
		vec[f] = rational.One()
		for c := 0; c < numVars; c++ {
			r := pivotRowOf[c]
			if r == noPivot {
				continue // other free variables stay 0
			}
			entry, err := g.At(r, f)
			if err != nil {
				return nil, fmt.Errorf("Classify: At(%d,%d): %w", r, f, err)
			}
			vec[c] = entry.Neg()
		}
		directions = append(directions, Direction{Free: f, Vector: vec})
	}

	return &Solution{Kind: Infinite, Particular: particular, Directions: directions}, nil
}
