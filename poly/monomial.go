package poly

import (
	"fmt"
	"math"
	"strconv"

	"github.com/arloliu/polycalc/errs"
)

// Monomial is a single polynomial term of the form Coefficient * x^Exponent.
//
// Monomials are immutable values: every operation returns a new Monomial and
// never mutates the receiver. The zero value is the zero term (0 * x^0).
type Monomial struct {
	Coefficient float64
	Exponent    int
}

// NewMonomial creates a monomial with the given coefficient and exponent.
//
// Returns errs.ErrInvalidExponent if exponent is negative. Negative exponents
// are rejected eagerly rather than clamped; the library only models ordinary
// polynomial terms.
func NewMonomial(coefficient float64, exponent int) (Monomial, error) {
	if exponent < 0 {
		return Monomial{}, fmt.Errorf("%w: got %d", errs.ErrInvalidExponent, exponent)
	}

	return Monomial{Coefficient: coefficient, Exponent: exponent}, nil
}

// IsZero reports whether the monomial is the zero term.
func (m Monomial) IsZero() bool {
	return m.Coefficient == 0
}

// Equal reports whether both monomials have the same coefficient and exponent.
func (m Monomial) Equal(other Monomial) bool {
	return m == other
}

// Evaluate returns Coefficient * x^Exponent.
//
// Exponent-0 terms evaluate to the coefficient for every x, including x = 0
// (the 0^0 = 1 convention).
func (m Monomial) Evaluate(x float64) float64 {
	if m.Exponent == 0 {
		return m.Coefficient
	}

	return m.Coefficient * math.Pow(x, float64(m.Exponent))
}

// Derivative returns the first derivative of the monomial.
//
// The derivative of c*x^n is (c*n)*x^(n-1); constant terms differentiate to
// the zero term.
func (m Monomial) Derivative() Monomial {
	if m.Exponent == 0 {
		return Monomial{}
	}

	return Monomial{
		Coefficient: m.Coefficient * float64(m.Exponent),
		Exponent:    m.Exponent - 1,
	}
}

// NthDerivative returns the n-th derivative of the monomial.
//
// n = 0 returns the monomial unchanged. Once the exponent is exhausted the
// result is the zero term and stays zero for every higher order.
// Returns errs.ErrInvalidDegree if n is negative.
func (m Monomial) NthDerivative(n int) (Monomial, error) {
	if n < 0 {
		return Monomial{}, fmt.Errorf("%w: got %d", errs.ErrInvalidDegree, n)
	}

	result := m
	for i := 0; i < n && !result.IsZero(); i++ {
		result = result.Derivative()
	}

	return result, nil
}

// Add sums two like terms.
//
// Returns errs.ErrUnlikeTerms if the exponents differ; unlike terms only
// combine at the polynomial level.
func (m Monomial) Add(other Monomial) (Monomial, error) {
	if m.Exponent != other.Exponent {
		return Monomial{}, fmt.Errorf("%w: x^%d and x^%d", errs.ErrUnlikeTerms, m.Exponent, other.Exponent)
	}

	return Monomial{Coefficient: m.Coefficient + other.Coefficient, Exponent: m.Exponent}, nil
}

// Mul multiplies two monomials: coefficients multiply, exponents add.
func (m Monomial) Mul(other Monomial) Monomial {
	return Monomial{
		Coefficient: m.Coefficient * other.Coefficient,
		Exponent:    m.Exponent + other.Exponent,
	}
}

// String renders the monomial in conventional form, e.g. "3x^2", "-x", "5".
func (m Monomial) String() string {
	return m.format(false)
}

// LaTeX renders the monomial as a LaTeX fragment, e.g. "3x^{2}".
func (m Monomial) LaTeX() string {
	return m.format(true)
}

func (m Monomial) format(latex bool) string {
	if m.Coefficient == 0 {
		return "0"
	}
	if m.Exponent == 0 {
		return formatFloat(m.Coefficient)
	}

	coeff := ""
	switch m.Coefficient {
	case 1:
	case -1:
		coeff = "-"
	default:
		coeff = formatFloat(m.Coefficient)
	}

	switch {
	case m.Exponent == 1:
		return coeff + "x"
	case latex:
		return coeff + "x^{" + strconv.Itoa(m.Exponent) + "}"
	default:
		return coeff + "x^" + strconv.Itoa(m.Exponent)
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
