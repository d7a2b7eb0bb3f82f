// Package poly provides exact value types for single-variable polynomial
// terms and polynomials.
//
// The two types are Monomial (a single c*x^n term) and Polynomial (a sum of
// monomials kept in canonical form). Both are immutable values: arithmetic,
// evaluation, and differentiation return new values and never mutate the
// receiver, so any value can be shared across goroutines without
// coordination.
//
// # Canonical Form
//
// A Polynomial always satisfies three invariants, established by New and
// preserved by every operation:
//
//   - at most one term per exponent (like terms merged by summing coefficients)
//   - no zero-coefficient terms (the zero polynomial has no terms at all)
//   - terms ordered by descending exponent
//
// Equality, rendering, and fingerprints are all defined over this canonical
// form, so two polynomials built from the same terms in different orders are
// indistinguishable.
//
// # Basic Usage
//
//	m, err := poly.NewMonomial(3, 2) // 3x^2
//	if err != nil {
//	    return err
//	}
//	p := poly.New(m, poly.Monomial{Coefficient: 5, Exponent: 0}) // 3x^2 + 5
//
//	y := p.Evaluate(2)  // 17
//	d := p.Derivative() // 6x
//
// Construction is the only fallible step: NewMonomial rejects negative
// exponents with errs.ErrInvalidExponent, and NthDerivative rejects negative
// orders with errs.ErrInvalidDegree. Everything downstream of a valid term is
// a total operation.
package poly
