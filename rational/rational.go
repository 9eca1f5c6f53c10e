// SPDX-License-Identifier: MIT
// Package rational: the Rational value type and its exact arithmetic.
// All operations return fresh values; no method mutates its receiver or
// its operands. Sentinels are matched via errors.Is; no method panics on
// user-triggered conditions (Must* helpers are the explicit exception).

package rational

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrDivisionByZero is returned when a divisor or denominator is zero.
	ErrDivisionByZero = errors.New("rational: division by zero")

	// ErrSyntax is returned by Parse for input that is neither an integer
	// nor a p/q fraction.
	ErrSyntax = errors.New("rational: invalid syntax")
)

// fracSep separates numerator and denominator in textual form.
const fracSep = "/"

// Rational is an immutable exact fraction p/q, kept in lowest terms with
// q > 0 (big.Rat normalization). The zero value represents 0.
//
// Rational is a value type: copy freely, compare with Equal. Internals
// are never mutated after construction, so sharing the backing *big.Rat
// across copies is safe.
type Rational struct {
	v *big.Rat // nil means exact zero
}

// rat returns the backing *big.Rat, treating the zero value as 0.
// Callers must only read the result.
func (a Rational) rat() *big.Rat {
	if a.v == nil {
		return new(big.Rat)
	}

	return a.v
}

// wrap packages a freshly computed big.Rat into a Rational.
// The argument must not be retained or mutated by the caller afterwards.
func wrap(v *big.Rat) Rational {
	return Rational{v: v}
}

// Zero returns the rational 0.
// Complexity: O(1).
func Zero() Rational { return Rational{} }

// One returns the rational 1.
// Complexity: O(1).
func One() Rational { return New(1) }

// New constructs the rational n/1.
// Complexity: O(1).
func New(n int64) Rational {
	return wrap(new(big.Rat).SetInt64(n))
}

// NewFrac constructs the rational p/q reduced to lowest terms with the
// sign normalized into the numerator.
// Stage 1 (Validate): reject q == 0 with ErrDivisionByZero.
// Stage 2 (Execute): delegate reduction/normalization to big.Rat.
// Complexity: O(log min(|p|,|q|)) for the GCD reduction.
func NewFrac(p, q int64) (Rational, error) {
	// Validate the denominator before touching big.Rat (SetFrac64 panics on 0).
	if q == 0 {
		return Rational{}, fmt.Errorf("NewFrac(%d,%d): %w", p, q, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).SetFrac64(p, q)), nil
}

// MustFrac is NewFrac that panics on a zero denominator.
// Intended for literals in tests and examples, not for untrusted input.
func MustFrac(p, q int64) Rational {
	r, err := NewFrac(p, q)
	if err != nil {
		panic(err)
	}

	return r
}

// Parse reads a rational from text: an optionally signed integer ("-3")
// or fraction ("5/7", "-6/4"). Whitespace is not trimmed; tokenizing is
// the caller's job (see the parse package).
// Errors: ErrSyntax for malformed text, ErrDivisionByZero for "p/0".
// Complexity: O(len(s)) plus one GCD reduction.
func Parse(s string) (Rational, error) {
	if s == "" {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	// Reject an explicit zero denominator up front: big.Rat's own parser
	// reports it as a generic failure, and we owe callers the distinction.
	if num, den, found := strings.Cut(s, fracSep); found {
		if den == "0" {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrDivisionByZero)
		}
		// Guard nested separators ("1/2/3"): big.Rat would reject them too,
		// but the explicit check keeps the error a clean ErrSyntax.
		if strings.Contains(den, fracSep) || num == "" || den == "" {
			return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
		}
	}

	v, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}
	// big.Rat accepts float ("1.5") and exponent forms; those are outside
	// the exact-input grammar, so reject anything with a decimal point.
	if strings.ContainsAny(s, ".eE") {
		return Rational{}, fmt.Errorf("Parse(%q): %w", s, ErrSyntax)
	}

	return wrap(v), nil
}

// MustParse is Parse that panics on error. For tests and fixtures only.
func MustParse(s string) Rational {
	r, err := Parse(s)
	if err != nil {
		panic(err)
	}

	return r
}

// Add returns a + b.
// Complexity: O(n log n log log n) on operand bit length (big.Int bound).
func (a Rational) Add(b Rational) Rational {
	return wrap(new(big.Rat).Add(a.rat(), b.rat()))
}

// Sub returns a − b.
func (a Rational) Sub(b Rational) Rational {
	return wrap(new(big.Rat).Sub(a.rat(), b.rat()))
}

// Mul returns a · b.
func (a Rational) Mul(b Rational) Rational {
	return wrap(new(big.Rat).Mul(a.rat(), b.rat()))
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
// Stage 1 (Validate): reject a zero divisor.
// Stage 2 (Execute): multiply by the inverse via big.Rat.Quo.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.IsZero() {
		return Rational{}, fmt.Errorf("Div(%s,%s): %w", a, b, ErrDivisionByZero)
	}

	return wrap(new(big.Rat).Quo(a.rat(), b.rat())), nil
}

// Neg returns −a.
func (a Rational) Neg() Rational {
	return wrap(new(big.Rat).Neg(a.rat()))
}

// IsZero reports whether a equals 0, exactly.
// Complexity: O(1).
func (a Rational) IsZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

// IsOne reports whether a equals 1, exactly.
func (a Rational) IsOne() bool {
	return a.v != nil && a.v.Cmp(ratOne) == 0
}

// Equal reports whether a and b represent the same value.
// Lowest-terms normalization makes this a plain component comparison.
func (a Rational) Equal(b Rational) bool {
	return a.rat().Cmp(b.rat()) == 0
}

// Sign returns -1, 0, or +1 according to the sign of a.
func (a Rational) Sign() int {
	if a.v == nil {
		return 0
	}

	return a.v.Sign()
}

// Num returns the numerator (sign carrier) as a fresh big.Int.
func (a Rational) Num() *big.Int {
	return new(big.Int).Set(a.rat().Num())
}

// Den returns the denominator (always > 0) as a fresh big.Int.
func (a Rational) Den() *big.Int {
	return new(big.Int).Set(a.rat().Denom())
}

// String renders "p/q", or just "p" when the denominator is 1.
// Matches the textual grammar accepted by Parse.
func (a Rational) String() string {
	r := a.rat()
	if r.IsInt() {
		return r.Num().String()
	}

	return r.RatString()
}

// ratOne is the shared read-only constant 1 used by IsOne.
var ratOne = big.NewRat(1, 1)
