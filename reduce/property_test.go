package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
	"github.com/dschell3/ReducedEchelonFormAlgo/reduce"
)

// drawGrid generates a small random rational grid. Entries are drawn as
// p/q with small numerators and denominators so factors stay readable
// in failure reports while still exercising non-integer arithmetic.
func drawGrid(t *rapid.T) *matrix.Grid {
	rows := rapid.IntRange(1, 5).Draw(t, "rows")
	cols := rapid.IntRange(1, 5).Draw(t, "cols")

	data := make([][]rational.Rational, rows)
	for i := range data {
		data[i] = make([]rational.Rational, cols)
		for j := range data[i] {
			p := int64(rapid.IntRange(-5, 5).Draw(t, "num"))
			q := int64(rapid.IntRange(1, 4).Draw(t, "den"))
			data[i][j] = rational.MustFrac(p, q)
		}
	}

	g, err := matrix.NewGrid(data)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}

	return g
}

// TestReduce_RREFShapeProperty checks the reduced-echelon invariants on
// random grids: leading entries are exactly 1, pivot columns strictly
// increase, and pivot columns are zero outside their pivot row.
func TestReduce_RREFShapeProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)

		pivots, err := reduce.Reduce(g)
		if err != nil {
			rt.Fatalf("Reduce: %v", err)
		}

		prevCol := -1
		for _, p := range pivots {
			if p.Col <= prevCol {
				rt.Fatalf("pivot columns not strictly increasing: %+v", pivots)
			}
			prevCol = p.Col

			v, err := g.At(p.Row, p.Col)
			if err != nil || !v.IsOne() {
				rt.Fatalf("pivot %+v is %v, want 1 (err=%v)", p, v, err)
			}
			for r := 0; r < g.Rows(); r++ {
				if r == p.Row {
					continue
				}
				v, err = g.At(r, p.Col)
				if err != nil || !v.IsZero() {
					rt.Fatalf("column %d not cleared at row %d: %v (err=%v)", p.Col, r, v, err)
				}
			}
		}
	})
}

// TestReduce_RankBoundProperty checks rank ≤ min(rows, cols) on random
// grids.
func TestReduce_RankBoundProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)

		pivots, err := reduce.Reduce(g)
		if err != nil {
			rt.Fatalf("Reduce: %v", err)
		}
		bound := min(g.Rows(), g.Cols())
		if len(pivots) > bound {
			rt.Fatalf("rank %d exceeds min(rows,cols)=%d", len(pivots), bound)
		}
	})
}

// TestReduce_RowPermutationInvariance checks that permuting the input
// rows changes neither the rank nor the final RREF.
func TestReduce_RowPermutationInvariance(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)
		shuffled := g.Clone()

		// Fisher–Yates over the clone's rows, driven by rapid draws.
		for i := shuffled.Rows() - 1; i > 0; i-- {
			j := rapid.IntRange(0, i).Draw(rt, "perm")
			if err := shuffled.SwapRows(i, j); err != nil {
				rt.Fatalf("SwapRows: %v", err)
			}
		}

		p1, err := reduce.Reduce(g)
		if err != nil {
			rt.Fatalf("Reduce(original): %v", err)
		}
		p2, err := reduce.Reduce(shuffled)
		if err != nil {
			rt.Fatalf("Reduce(shuffled): %v", err)
		}

		if len(p1) != len(p2) {
			rt.Fatalf("rank differs under row permutation: %d vs %d", len(p1), len(p2))
		}
		// RREF is canonical: the reduced forms must agree entirely.
		if !g.Equal(shuffled) {
			rt.Fatalf("RREF differs under row permutation:\n%v\nvs\n%v", g, shuffled)
		}
	})
}

// TestReduce_OpsReplay re-applies the emitted operation sequence to a
// pristine copy and checks it reproduces the reduced grid exactly —
// the trace is a faithful, ordered record of the reduction.
func TestReduce_OpsReplay(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		g := drawGrid(rt)
		replay := g.Clone()

		var ops []reduce.RowOp
		if _, err := reduce.Reduce(g, collectOps(&ops)); err != nil {
			rt.Fatalf("Reduce: %v", err)
		}

		for _, op := range ops {
			var err error
			switch op.Kind {
			case reduce.OpSwap:
				err = replay.SwapRows(op.I, op.J)
			case reduce.OpReplace:
				err = replay.ReplaceRow(op.Target, op.Source, op.Factor)
			case reduce.OpScale:
				err = replay.ScaleRow(op.Row, op.Divisor)
			}
			if err != nil {
				rt.Fatalf("replay %v: %v", op, err)
			}
		}

		if !g.Equal(replay) {
			rt.Fatalf("replayed ops do not reproduce the RREF:\n%v\nvs\n%v", g, replay)
		}
	})
}

// TestReduce_Deterministic runs the reduction twice on identical input
// and requires identical operation sequences.
func TestReduce_Deterministic(t *testing.T) {
	g1 := mustGrid(t, [][]int64{{0, 2, 4, 1}, {3, 1, 0, 2}, {3, 1, 0, 5}})
	g2 := g1.Clone()

	var ops1, ops2 []reduce.RowOp
	_, err := reduce.Reduce(g1, collectOps(&ops1))
	require.NoError(t, err)
	_, err = reduce.Reduce(g2, collectOps(&ops2))
	require.NoError(t, err)

	require.Equal(t, len(ops1), len(ops2))
	for i := range ops1 {
		require.Equalf(t, ops1[i].String(), ops2[i].String(), "op %d", i)
	}
}
