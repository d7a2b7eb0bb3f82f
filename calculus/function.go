package calculus

import (
	"fmt"

	"github.com/arloliu/polycalc/errs"
)

// Function is the capability set the calculus routines need from a term type:
// closed-form differentiation, pointwise evaluation, and a zero test.
//
// It is a self-referential constraint (Derivative returns the concrete type),
// satisfied by both poly.Monomial and poly.Polynomial, so the classifiers are
// written once and work at either term granularity.
type Function[T any] interface {
	Evaluate(x float64) float64
	Derivative() T
	IsZero() bool
}

// NthDerivative applies Derivative n times to f.
//
// n = 0 returns f unchanged. Differentiation stops early once the value is
// identically zero, since every further derivative stays zero.
// Returns errs.ErrInvalidDegree if n is negative.
func NthDerivative[T Function[T]](f T, n int) (T, error) {
	if n < 0 {
		var zero T
		return zero, fmt.Errorf("%w: got %d", errs.ErrInvalidDegree, n)
	}

	result := f
	for i := 0; i < n && !result.IsZero(); i++ {
		result = result.Derivative()
	}

	return result, nil
}
