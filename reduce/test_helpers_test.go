package reduce_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
	"github.com/dschell3/ReducedEchelonFormAlgo/reduce"
)

// mustGrid builds a Grid from integer rows, failing the test on error.
func mustGrid(t *testing.T, ints [][]int64) *matrix.Grid {
	t.Helper()
	rows := make([][]rational.Rational, len(ints))
	for i, row := range ints {
		rows[i] = make([]rational.Rational, len(row))
		for j, n := range row {
			rows[i][j] = rational.New(n)
		}
	}
	g, err := matrix.NewGrid(rows)
	require.NoError(t, err)

	return g
}

// entry reads (r,c), failing the test on error.
func entry(t *testing.T, g *matrix.Grid, r, c int) rational.Rational {
	t.Helper()
	v, err := g.At(r, c)
	require.NoError(t, err)

	return v
}

// collectOps returns an Option that appends every emitted operation to
// the given slice, in order.
func collectOps(ops *[]reduce.RowOp) reduce.Option {
	return reduce.WithOperationHook(func(op reduce.RowOp) {
		*ops = append(*ops, op)
	})
}

// assertRREFShape checks the reduced-echelon invariants on g:
// every nonzero row leads with exactly 1, pivot columns strictly
// increase with row index, and each pivot column is zero elsewhere.
func assertRREFShape(t *testing.T, g *matrix.Grid) {
	t.Helper()
	pivots, err := reduce.FindPivots(g)
	require.NoError(t, err)

	prevCol := -1
	for _, p := range pivots {
		require.Greaterf(t, p.Col, prevCol,
			"pivot columns must strictly increase (pivot %+v)", p)
		prevCol = p.Col

		require.Truef(t, entry(t, g, p.Row, p.Col).IsOne(),
			"pivot at %+v must be exactly 1", p)
		for r := 0; r < g.Rows(); r++ {
			if r == p.Row {
				continue
			}
			require.Truef(t, entry(t, g, r, p.Col).IsZero(),
				"column %d must be zero outside its pivot row (row %d)", p.Col, r)
		}
	}
}
