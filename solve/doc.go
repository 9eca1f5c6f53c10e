// Package solve classifies the solution set of a linear system whose
// augmented matrix [A | b] has been brought to reduced row-echelon form.
//
// 🚀 What does Classify decide?
//
//	Exactly one of three verdicts, matching linear-algebra theory:
//	  • Inconsistent — the augmented column contains a pivot, i.e. some
//	    row reads 0 = nonzero.
//	  • Unique — every variable column carries a pivot; the solution is
//	    read directly off the RHS column.
//	  • Infinite — free variables exist; the set is described by a
//	    particular solution (all free variables at 0) plus one direction
//	    vector per free variable, in increasing free-variable order.
//
// For a free variable f the direction vector has component f equal to 1,
// component c equal to −RREF[r][f] for every basic variable c with pivot
// row r, and 0 elsewhere. The full solution family is
//
//	x = particular + Σ_f t_f · direction_f,  t_f ranging over ℚ.
//
// ⚙️ Usage:
//
//	pivots, _ := reduce.Reduce(g)           // g is augmented [A | b]
//	sol, err := solve.Classify(g, pivots)
//	switch sol.Kind {
//	case solve.Inconsistent: ...
//	case solve.Unique:       ... // sol.Values
//	case solve.Infinite:     ... // sol.Particular, sol.Directions
//	}
//
// Classify only reads the grid; it assumes — and does not re-verify —
// that the grid is in RREF with the supplied pivot list.
package solve
