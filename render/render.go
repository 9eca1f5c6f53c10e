// SPDX-License-Identifier: MIT
// Package render: matrix, operation, and verdict formatting.

package render

import (
	"fmt"
	"strings"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
	"github.com/dschell3/ReducedEchelonFormAlgo/reduce"
	"github.com/dschell3/ReducedEchelonFormAlgo/solve"
)

// cell is one formatted grid entry; pivot entries get wrapped in
// parentheses (the ASCII stand-in for circling the pivot).
func cell(v rational.Rational, pivot bool) string {
	if pivot {
		return "(" + v.String() + ")"
	}

	return v.String()
}

// grid renders g with right-aligned columns, marking the given pivot
// set. The column width is the widest cell in the whole grid, so rows
// line up the way the classroom notation does.
func grid(g *matrix.Grid, isPivot func(r, c int) bool) string {
	if g == nil {
		return ""
	}
	rows, cols := g.Rows(), g.Cols()

	// First pass: format every cell and find the widest.
	cells := make([]string, rows*cols)
	width := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			v, _ := g.At(r, c) // indices in range by construction
			s := cell(v, isPivot(r, c))
			cells[r*cols+c] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	// Second pass: assemble bracketed, aligned rows.
	var b strings.Builder
	for r := 0; r < rows; r++ {
		b.WriteString("  [ ")
		for c := 0; c < cols; c++ {
			if c > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%*s", width, cells[r*cols+c])
		}
		b.WriteString(" ]\n")
	}

	return b.String()
}

// Matrix renders g as bracketed rows with right-aligned columns.
func Matrix(g *matrix.Grid) string {
	return grid(g, func(int, int) bool { return false })
}

// MatrixWithPivots renders g like Matrix, wrapping each pivot entry in
// parentheses.
func MatrixWithPivots(g *matrix.Grid, pivots []reduce.Pivot) string {
	marked := make(map[reduce.Pivot]bool, len(pivots))
	for _, p := range pivots {
		marked[p] = true
	}

	return grid(g, func(r, c int) bool { return marked[reduce.Pivot{Row: r, Col: c}] })
}

// Op narrates one elementary row operation with 1-based row labels,
// matching the classic step notation:
//
//	R1 <-> R3
//	R3 = R3 - (3/2)*R1
//	R2 = R2 / (5)
func Op(op reduce.RowOp) string {
	switch op.Kind {
	case reduce.OpSwap:
		return fmt.Sprintf("R%d <-> R%d", op.I+1, op.J+1)
	case reduce.OpReplace:
		return fmt.Sprintf("R%d = R%d - (%s)*R%d",
			op.Target+1, op.Target+1, op.Factor, op.Source+1)
	case reduce.OpScale:
		return fmt.Sprintf("R%d = R%d / (%s)", op.Row+1, op.Row+1, op.Divisor)
	default:
		return op.String()
	}
}

// Vector renders a rational vector as "[a, b, c]".
func Vector(v []rational.Rational) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = x.String()
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

// Verdict renders a classifier verdict:
//
//	Inconsistent — a fixed one-line statement;
//	Unique       — one "x1 = v" line per variable;
//	Infinite     — the parametric form
//	               x = particular + t2*[...] + t3*[...]
//	               with one parameter t_f per free variable (1-based).
func Verdict(sol *solve.Solution) string {
	if sol == nil {
		return ""
	}
	switch sol.Kind {
	case solve.Inconsistent:
		return "The system is inconsistent: no solution exists."
	case solve.Unique:
		lines := make([]string, len(sol.Values))
		for i, v := range sol.Values {
			lines[i] = fmt.Sprintf("x%d = %s", i+1, v)
		}

		return "Unique solution:\n  " + strings.Join(lines, "\n  ")
	case solve.Infinite:
		var b strings.Builder
		b.WriteString("Infinitely many solutions:\n  x = ")
		b.WriteString(Vector(sol.Particular))
		for _, d := range sol.Directions {
			fmt.Fprintf(&b, " + t%d*%s", d.Free+1, Vector(d.Vector))
		}
		b.WriteString("\n  with ")
		params := make([]string, len(sol.Directions))
		for i, d := range sol.Directions {
			params[i] = fmt.Sprintf("t%d", d.Free+1)
		}
		b.WriteString(strings.Join(params, ", "))
		b.WriteString(" free")

		return b.String()
	default:
		return "Unknown verdict."
	}
}
