package poly

import (
	"fmt"
	"sort"
	"strings"

	"github.com/arloliu/polycalc/errs"
	"github.com/arloliu/polycalc/internal/hash"
)

// Polynomial is a sum of monomials in a single variable, held in canonical
// form: at most one term per exponent, no zero-coefficient terms, terms
// ordered by descending exponent. The zero polynomial has no terms.
//
// Polynomials are immutable values. They own their term slice exclusively;
// constructors and accessors copy, so no two Polynomials share storage.
type Polynomial struct {
	terms []Monomial
}

// New builds a polynomial from the given terms and normalizes it.
//
// Normalization merges like terms by summing their coefficients, drops any
// term whose coefficient ends up zero, and orders the result by descending
// exponent. The input order of terms never affects the result:
//
//	p := poly.New(
//	    poly.Monomial{Coefficient: 1, Exponent: 2},
//	    poly.Monomial{Coefficient: 2, Exponent: 2},
//	    poly.Monomial{Coefficient: 5, Exponent: 0},
//	)
//	// p is 3x^2 + 5
func New(terms ...Monomial) Polynomial {
	merged := make(map[int]float64, len(terms))
	for _, t := range terms {
		merged[t.Exponent] += t.Coefficient
	}

	canonical := make([]Monomial, 0, len(merged))
	for exp, coeff := range merged {
		if coeff == 0 {
			continue
		}
		canonical = append(canonical, Monomial{Coefficient: coeff, Exponent: exp})
	}
	sort.Slice(canonical, func(i, j int) bool {
		return canonical[i].Exponent > canonical[j].Exponent
	})

	return Polynomial{terms: canonical}
}

// Terms returns a copy of the canonical term slice, highest exponent first.
// The zero polynomial returns an empty slice.
func (p Polynomial) Terms() []Monomial {
	out := make([]Monomial, len(p.terms))
	copy(out, p.terms)

	return out
}

// Len returns the number of canonical terms.
func (p Polynomial) Len() int {
	return len(p.terms)
}

// IsZero reports whether p is the zero polynomial.
func (p Polynomial) IsZero() bool {
	return len(p.terms) == 0
}

// Degree returns the highest exponent with a nonzero coefficient, or -1 for
// the zero polynomial.
func (p Polynomial) Degree() int {
	if len(p.terms) == 0 {
		return -1
	}

	return p.terms[0].Exponent
}

// Equal reports whether both polynomials have identical canonical terms.
// Term input order at construction does not matter; 2x + x equals 3x.
func (p Polynomial) Equal(other Polynomial) bool {
	if len(p.terms) != len(other.terms) {
		return false
	}
	for i, t := range p.terms {
		if t != other.terms[i] {
			return false
		}
	}

	return true
}

// Evaluate returns the value of the polynomial at x, the sum of each term's
// value.
func (p Polynomial) Evaluate(x float64) float64 {
	var sum float64
	for _, t := range p.terms {
		sum += t.Evaluate(x)
	}

	return sum
}

// Derivative returns the first derivative of the polynomial.
//
// Each term differentiates independently; constant terms drop out, so the
// derivative of a polynomial of degree d has degree d-1 (or is zero).
func (p Polynomial) Derivative() Polynomial {
	derived := make([]Monomial, 0, len(p.terms))
	for _, t := range p.terms {
		d := t.Derivative()
		if d.IsZero() {
			continue
		}
		derived = append(derived, d)
	}

	return New(derived...)
}

// NthDerivative returns the n-th derivative of the polynomial.
//
// n = 0 returns p unchanged. For n greater than the degree the result is the
// zero polynomial. Returns errs.ErrInvalidDegree if n is negative.
func (p Polynomial) NthDerivative(n int) (Polynomial, error) {
	if n < 0 {
		return Polynomial{}, fmt.Errorf("%w: got %d", errs.ErrInvalidDegree, n)
	}

	result := p
	for i := 0; i < n && !result.IsZero(); i++ {
		result = result.Derivative()
	}

	return result, nil
}

// Add returns the sum p + other.
func (p Polynomial) Add(other Polynomial) Polynomial {
	combined := make([]Monomial, 0, len(p.terms)+len(other.terms))
	combined = append(combined, p.terms...)
	combined = append(combined, other.terms...)

	return New(combined...)
}

// Neg returns -p.
func (p Polynomial) Neg() Polynomial {
	negated := make([]Monomial, len(p.terms))
	for i, t := range p.terms {
		negated[i] = Monomial{Coefficient: -t.Coefficient, Exponent: t.Exponent}
	}

	return Polynomial{terms: negated}
}

// Sub returns the difference p - other.
func (p Polynomial) Sub(other Polynomial) Polynomial {
	return p.Add(other.Neg())
}

// Mul returns the product p * other, normalized.
func (p Polynomial) Mul(other Polynomial) Polynomial {
	products := make([]Monomial, 0, len(p.terms)*len(other.terms))
	for _, a := range p.terms {
		for _, b := range other.terms {
			products = append(products, a.Mul(b))
		}
	}

	return New(products...)
}

// Fingerprint returns a stable xxHash64 of the canonical form.
//
// Equal polynomials always share a fingerprint, regardless of the term order
// they were built from, so the fingerprint works as a cheap dedup token or
// cache key for polynomial-valued maps.
func (p Polynomial) Fingerprint() uint64 {
	terms := make([]hash.Term, len(p.terms))
	for i, t := range p.terms {
		terms[i] = hash.Term{Exponent: t.Exponent, Coefficient: t.Coefficient}
	}

	return hash.Sum64(terms)
}

// String renders the polynomial in descending-exponent form,
// e.g. "3x^2 - x + 5". The zero polynomial renders as "0".
func (p Polynomial) String() string {
	return p.render(Monomial.String)
}

// LaTeX renders the polynomial as a LaTeX fragment, e.g. "3x^{2} - x + 5".
func (p Polynomial) LaTeX() string {
	return p.render(Monomial.LaTeX)
}

func (p Polynomial) render(term func(Monomial) string) string {
	if len(p.terms) == 0 {
		return "0"
	}

	var sb strings.Builder
	for i, t := range p.terms {
		if i > 0 {
			if t.Coefficient < 0 {
				sb.WriteString(" - ")
				t.Coefficient = -t.Coefficient
			} else {
				sb.WriteString(" + ")
			}
		}
		sb.WriteString(term(t))
	}

	return sb.String()
}
