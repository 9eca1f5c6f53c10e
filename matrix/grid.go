// SPDX-License-Identifier: MIT
// Package matrix: Grid — a concrete, row-major rectangular matrix of
// exact rationals, storing entries in a flat slice for cache friendliness.
// Grid is the single mutable state threaded through the reduction phases.

package matrix

import (
	"fmt"
	"strings"

	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// gridErrorf wraps an underlying error with Grid method context.
func gridErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", method, row, col, err)
}

// Grid is a row-major matrix of rational values.
// r is rows, c is columns, and data holds r*c entries in row-major order.
// Entries are immutable Rational values; only the slice cells mutate.
type Grid struct {
	r, c int
	data []rational.Rational // flat backing storage, length == r*c
}

// NewGrid builds a Grid from a slice of rows, copying every entry.
// Stage 1 (Validate): rows ≥ 1, cols ≥ 1, all rows of equal length.
// Stage 2 (Prepare): allocate the flat backing slice.
// Stage 3 (Finalize): copy row data and return the Grid.
// Errors: ErrBadShape on empty, zero-column, or jagged input.
// Complexity: O(r*c) time and memory.
func NewGrid(rows [][]rational.Rational) (*Grid, error) {
	// Validate row count.
	if len(rows) == 0 {
		return nil, fmt.Errorf("NewGrid: no rows: %w", ErrBadShape)
	}
	// Validate column count from the first row.
	cols := len(rows[0])
	if cols == 0 {
		return nil, fmt.Errorf("NewGrid: no columns: %w", ErrBadShape)
	}
	// Validate rectangularity before allocating anything.
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("NewGrid: row %d has %d entries, want %d: %w",
				i, len(row), cols, ErrBadShape)
		}
	}

	// Copy into flat storage.
	data := make([]rational.Rational, 0, len(rows)*cols)
	for _, row := range rows {
		data = append(data, row...)
	}

	return &Grid{r: len(rows), c: cols, data: data}, nil
}

// Rows returns the number of rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.r }

// Cols returns the number of columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (g *Grid) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= g.r {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}
	if col < 0 || col >= g.c {
		return 0, gridErrorf(method, row, col, ErrOutOfRange)
	}

	return row*g.c + col, nil
}

// checkRow validates a bare row index for row-level operations.
func (g *Grid) checkRow(method string, row int) error {
	if row < 0 || row >= g.r {
		return fmt.Errorf("Grid.%s(%d): %w", method, row, ErrOutOfRange)
	}

	return nil
}

// At retrieves the entry at (row, col).
// Errors: ErrOutOfRange on bad indices. Complexity: O(1).
func (g *Grid) At(row, col int) (rational.Rational, error) {
	idx, err := g.indexOf("At", row, col)
	if err != nil {
		return rational.Zero(), err
	}

	return g.data[idx], nil
}

// Set assigns value v at (row, col).
// Errors: ErrOutOfRange on bad indices. Complexity: O(1).
func (g *Grid) Set(row, col int, v rational.Rational) error {
	idx, err := g.indexOf("Set", row, col)
	if err != nil {
		return err
	}
	g.data[idx] = v

	return nil
}

// Row returns a copy of row i. Mutating the copy does not affect the Grid.
// Errors: ErrOutOfRange. Complexity: O(c).
func (g *Grid) Row(i int) ([]rational.Rational, error) {
	if err := g.checkRow("Row", i); err != nil {
		return nil, err
	}
	out := make([]rational.Rational, g.c)
	copy(out, g.data[i*g.c:(i+1)*g.c])

	return out, nil
}

// SwapRows exchanges rows i and j in place (Rᵢ ↔ Rⱼ).
// Swapping a row with itself is a no-op.
// Errors: ErrOutOfRange. Complexity: O(c).
func (g *Grid) SwapRows(i, j int) error {
	if err := g.checkRow("SwapRows", i); err != nil {
		return err
	}
	if err := g.checkRow("SwapRows", j); err != nil {
		return err
	}
	if i == j {
		return nil
	}

	baseI, baseJ := i*g.c, j*g.c
	for k := 0; k < g.c; k++ {
		g.data[baseI+k], g.data[baseJ+k] = g.data[baseJ+k], g.data[baseI+k]
	}

	return nil
}

// ReplaceRow applies Rₜ ← Rₜ − factor·Rₛ element-wise, in place.
// target == source is rejected as out-of-contract (it would zero the row
// only for factor=1 and corrupt it otherwise); the eliminators never ask
// for it.
// Errors: ErrOutOfRange. Complexity: O(c).
func (g *Grid) ReplaceRow(target, source int, factor rational.Rational) error {
	if err := g.checkRow("ReplaceRow", target); err != nil {
		return err
	}
	if err := g.checkRow("ReplaceRow", source); err != nil {
		return err
	}
	if target == source {
		return fmt.Errorf("Grid.ReplaceRow(%d,%d): target equals source: %w",
			target, source, ErrOutOfRange)
	}

	baseT, baseS := target*g.c, source*g.c
	for k := 0; k < g.c; k++ {
		g.data[baseT+k] = g.data[baseT+k].Sub(factor.Mul(g.data[baseS+k]))
	}

	return nil
}

// ScaleRow applies Rᵣ ← Rᵣ / divisor element-wise, in place.
// Stage 1 (Validate): row in range, divisor nonzero.
// Stage 2 (Execute): divide every entry.
// Errors: ErrOutOfRange; rational.ErrDivisionByZero for a zero divisor —
// callers must never pass a zero pivot, so hitting it means a broken
// elimination invariant upstream.
// Complexity: O(c).
func (g *Grid) ScaleRow(row int, divisor rational.Rational) error {
	if err := g.checkRow("ScaleRow", row); err != nil {
		return err
	}
	if divisor.IsZero() {
		return fmt.Errorf("Grid.ScaleRow(%d): %w", row, rational.ErrDivisionByZero)
	}

	base := row * g.c
	var err error
	for k := 0; k < g.c; k++ {
		// Division cannot fail past the guard above; keep the check anyway
		// so a broken invariant surfaces instead of silently corrupting.
		if g.data[base+k], err = g.data[base+k].Div(divisor); err != nil {
			return fmt.Errorf("Grid.ScaleRow(%d): %w", row, err)
		}
	}

	return nil
}

// Clone returns a deep copy of the Grid.
// Complexity: O(r*c) time and memory.
func (g *Grid) Clone() *Grid {
	data := make([]rational.Rational, len(g.data))
	copy(data, g.data)

	return &Grid{r: g.r, c: g.c, data: data}
}

// Equal reports whether g and other have identical shape and entries.
// Complexity: O(r*c).
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.r != other.r || g.c != other.c {
		return false
	}
	for i := range g.data {
		if !g.data[i].Equal(other.data[i]) {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer for debugging. Presentation-quality
// output (alignment, pivot marks) belongs to the render package.
// Complexity: O(r*c).
func (g *Grid) String() string {
	var b strings.Builder
	var i, j int
	for i = 0; i < g.r; i++ {
		b.WriteByte('[')
		for j = 0; j < g.c; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(g.data[i*g.c+j].String())
		}
		b.WriteString("]\n")
	}

	return b.String()
}
