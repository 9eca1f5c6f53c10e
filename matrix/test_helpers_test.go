package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dschell3/ReducedEchelonFormAlgo/matrix"
	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// ratRows converts an integer grid into rational rows for NewGrid.
func ratRows(ints [][]int64) [][]rational.Rational {
	rows := make([][]rational.Rational, len(ints))
	for i, row := range ints {
		rows[i] = make([]rational.Rational, len(row))
		for j, n := range row {
			rows[i][j] = rational.New(n)
		}
	}

	return rows
}

// mustGrid builds a Grid from integer rows, failing the test on error.
func mustGrid(t *testing.T, ints [][]int64) *matrix.Grid {
	t.Helper()
	g, err := matrix.NewGrid(ratRows(ints))
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
