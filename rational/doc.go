// Package rational provides an immutable exact-fraction value type.
//
// 🚀 What is rational?
//
//	Every value is p/q in lowest terms with q > 0. Arithmetic never
//	rounds: Add/Sub/Mul/Neg are total, Div fails on a zero divisor, and
//	equality, IsZero and IsOne are exact bit-for-bit decisions.
//
// Exactness is the whole point: row reduction picks pivots and detects
// free variables by testing entries against zero, and any epsilon-based
// comparison would misclassify ill-conditioned systems. All comparisons
// in this package (and everything built on it) are exact.
//
// ⚙️ Usage:
//
//	a := rational.New(3)                // 3
//	b, err := rational.NewFrac(-6, 4)   // -3/2
//	c, err := rational.Parse("5/7")     // 5/7
//	sum := a.Add(b)                     // 3/2
//	q, err := sum.Div(rational.Zero())  // rational.ErrDivisionByZero
//
// The zero value of Rational is usable and equal to 0.
package rational
