// Package polycalc provides exact symbolic-calculus primitives for
// single-variable polynomials.
//
// Polycalc represents monomials and polynomials as immutable value types in
// canonical form, evaluates them at a point, computes derivatives of any
// order in closed form, and classifies growth and concavity over numeric
// intervals. It is a pure computational library: no I/O, no configuration,
// no shared mutable state, so every value is safe for concurrent use.
//
// # Core Features
//
//   - Exact canonical form: like terms merged, zero terms dropped,
//     descending-exponent order
//   - Closed-form first and n-th derivatives for monomials and polynomials
//   - Interval classification of trend (increasing / decreasing / constant /
//     non-monotonic) and concavity (up / down / undefined)
//   - Polynomial arithmetic: add, subtract, multiply, negate
//   - Stable xxHash64 fingerprints of canonical forms for cheap dedup and
//     map keys
//   - Typed sentinel errors (errs package) for every invalid input
//
// # Basic Usage
//
// Building and differentiating a polynomial:
//
//	import "github.com/arloliu/polycalc"
//
//	m, _ := polycalc.NewMonomial(3, 2)  // 3x^2
//	n, _ := polycalc.NewMonomial(-1, 1) // -x
//	p := polycalc.NewPolynomial(m, n)   // 3x^2 - x
//
//	y := p.Evaluate(2)                // 10
//	d := p.Derivative()               // 6x - 1
//	d2, err := p.NthDerivative(2)     // 6
//
// Classifying behavior over an interval:
//
//	iv, err := polycalc.NewInterval(0, 5)
//	if err != nil {
//	    return err
//	}
//	trend, err := polycalc.ClassifyTrend(p, iv)
//	concavity, err := polycalc.ClassifyConcavity(p, iv)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the poly and
// calculus packages, simplifying the most common use cases. For the full API
// surface, use those packages directly.
package polycalc

import (
	"github.com/arloliu/polycalc/calculus"
	"github.com/arloliu/polycalc/poly"
)

// NewMonomial creates a monomial with the given coefficient and exponent.
// Returns errs.ErrInvalidExponent if exponent is negative.
func NewMonomial(coefficient float64, exponent int) (poly.Monomial, error) {
	return poly.NewMonomial(coefficient, exponent)
}

// NewPolynomial builds a polynomial from the given terms, normalizing them
// into canonical form. See poly.New.
func NewPolynomial(terms ...poly.Monomial) poly.Polynomial {
	return poly.New(terms...)
}

// NewInterval creates the closed interval [a, b]. Returns
// errs.ErrInvalidInterval unless a < b.
func NewInterval(a, b float64) (calculus.Interval, error) {
	return calculus.NewInterval(a, b)
}

// NthDerivative applies closed-form differentiation n times to a monomial or
// polynomial. See calculus.NthDerivative.
func NthDerivative[T calculus.Function[T]](f T, n int) (T, error) {
	return calculus.NthDerivative(f, n)
}

// ClassifyTrend classifies the monotonic behavior of a monomial or polynomial
// over iv. See calculus.ClassifyTrend for the endpoint-sign algorithm.
func ClassifyTrend[T calculus.Function[T]](f T, iv calculus.Interval, opts ...calculus.Option) (calculus.Trend, error) {
	return calculus.ClassifyTrend(f, iv, opts...)
}

// ClassifyConcavity classifies the curvature of a monomial or polynomial over
// iv. See calculus.ClassifyConcavity.
func ClassifyConcavity[T calculus.Function[T]](f T, iv calculus.Interval, opts ...calculus.Option) (calculus.Concavity, error) {
	return calculus.ClassifyConcavity(f, iv, opts...)
}
