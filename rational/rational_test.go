package rational_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dschell3/ReducedEchelonFormAlgo/rational"
)

// TestNewFrac_Normalization verifies reduction to lowest terms and
// sign normalization into the numerator.
func TestNewFrac_Normalization(t *testing.T) {
	r, err := rational.NewFrac(-6, 4)
	require.NoError(t, err)
	assert.Equal(t, "-3/2", r.String(), "NewFrac(-6,4) must reduce to -3/2")

	r, err = rational.NewFrac(3, -6)
	require.NoError(t, err)
	assert.Equal(t, "-1/2", r.String(), "sign must move into the numerator")

	r, err = rational.NewFrac(-2, -8)
	require.NoError(t, err)
	assert.Equal(t, "1/4", r.String(), "double negation must cancel")

	r, err = rational.NewFrac(0, 5)
	require.NoError(t, err)
	assert.True(t, r.IsZero(), "0/5 must be zero")
}

// TestNewFrac_ZeroDenominator verifies the DivisionByZero sentinel.
func TestNewFrac_ZeroDenominator(t *testing.T) {
	_, err := rational.NewFrac(3, 0)
	assert.ErrorIs(t, err, rational.ErrDivisionByZero, "q=0 must error ErrDivisionByZero")
}

// TestParse_Valid covers integer and fraction forms.
func TestParse_Valid(t *testing.T) {
	cases := map[string]string{
		"3":    "3",
		"-3":   "-3",
		"+7":   "7",
		"0":    "0",
		"5/7":  "5/7",
		"-6/4": "-3/2",
		"10/5": "2",
	}
	for in, want := range cases {
		r, err := rational.Parse(in)
		require.NoErrorf(t, err, "Parse(%q)", in)
		assert.Equalf(t, want, r.String(), "Parse(%q)", in)
	}
}

// TestParse_Invalid covers the syntax and zero-denominator failures.
func TestParse_Invalid(t *testing.T) {
	for _, in := range []string{"", "abc", "1.5", "2e3", "1/2/3", "/2", "3/", "1 2"} {
		_, err := rational.Parse(in)
		assert.ErrorIsf(t, err, rational.ErrSyntax, "Parse(%q) must error ErrSyntax", in)
	}

	_, err := rational.Parse("1/0")
	assert.ErrorIs(t, err, rational.ErrDivisionByZero, "Parse(1/0) must error ErrDivisionByZero")
}

// TestArithmetic exercises Add/Sub/Mul/Div/Neg on mixed fractions.
func TestArithmetic(t *testing.T) {
	a := rational.MustFrac(1, 2)
	b := rational.MustFrac(1, 3)

	assert.Equal(t, "5/6", a.Add(b).String())
	assert.Equal(t, "1/6", a.Sub(b).String())
	assert.Equal(t, "1/6", a.Mul(b).String())
	assert.Equal(t, "-1/2", a.Neg().String())

	q, err := a.Div(b)
	require.NoError(t, err)
	assert.Equal(t, "3/2", q.String())

	// Operands are untouched: Rational is immutable.
	assert.Equal(t, "1/2", a.String())
	assert.Equal(t, "1/3", b.String())
}

// TestDiv_ByZero verifies the DivisionByZero sentinel on a zero divisor.
func TestDiv_ByZero(t *testing.T) {
	_, err := rational.One().Div(rational.Zero())
	assert.ErrorIs(t, err, rational.ErrDivisionByZero)
}

// TestZeroValue verifies that the zero value of Rational behaves as 0.
func TestZeroValue(t *testing.T) {
	var r rational.Rational

	assert.True(t, r.IsZero())
	assert.False(t, r.IsOne())
	assert.Equal(t, 0, r.Sign())
	assert.Equal(t, "0", r.String())
	assert.True(t, r.Add(rational.One()).IsOne(), "0 + 1 must be 1")
	assert.True(t, r.Equal(rational.Zero()))
}

// TestPredicates covers IsZero/IsOne/Equal/Sign exactness.
func TestPredicates(t *testing.T) {
	assert.True(t, rational.MustFrac(7, 7).IsOne(), "7/7 reduces to 1")
	assert.True(t, rational.MustFrac(2, 4).Equal(rational.MustFrac(1, 2)))
	assert.False(t, rational.MustFrac(1, 3).Equal(rational.MustFrac(1, 2)))
	assert.Equal(t, -1, rational.MustFrac(-1, 5).Sign())
	assert.Equal(t, 1, rational.New(9).Sign())

	// No epsilon anywhere: a tiny nonzero value is still nonzero.
	tiny := rational.MustFrac(1, 1_000_000_007)
	assert.False(t, tiny.IsZero())
}

// TestNumDen verifies the accessor copies and q > 0 invariant.
func TestNumDen(t *testing.T) {
	r := rational.MustFrac(-6, 4)
	assert.Equal(t, int64(-3), r.Num().Int64())
	assert.Equal(t, int64(2), r.Den().Int64())

	// Mutating the returned big.Int must not affect the Rational.
	n := r.Num()
	n.SetInt64(99)
	assert.Equal(t, "-3/2", r.String())
}

// TestMustHelpers verifies the panic contract of the Must* constructors.
func TestMustHelpers(t *testing.T) {
	assert.Panics(t, func() { rational.MustFrac(1, 0) })
	assert.Panics(t, func() { rational.MustParse("nope") })
	assert.Equal(t, "5/7", rational.MustParse("5/7").String())
}
