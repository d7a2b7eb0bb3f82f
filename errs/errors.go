// Package errs defines the sentinel error values shared across polycalc packages.
//
// Callers should match errors with errors.Is since call sites may wrap these
// sentinels with additional context.
package errs

import "errors"

var (
	// ErrInvalidExponent is returned when constructing a monomial with a negative exponent.
	ErrInvalidExponent = errors.New("invalid exponent: must be non-negative")

	// ErrInvalidDegree is returned when a derivative of negative order is requested.
	ErrInvalidDegree = errors.New("invalid derivative order: must be non-negative")

	// ErrInvalidInterval is returned when an interval's lower bound is not strictly
	// below its upper bound.
	ErrInvalidInterval = errors.New("invalid interval: lower bound must be less than upper bound")

	// ErrUnlikeTerms is returned when adding monomials with different exponents.
	ErrUnlikeTerms = errors.New("cannot add monomials with different exponents")
)
