package calculus

import (
	"fmt"

	"github.com/arloliu/polycalc/errs"
)

// Interval is a closed interval [A, B] on the real line with A < B.
//
// It is a parameter object for the classifiers, not a persisted entity; the
// classifiers validate it on every call, so zero or hand-built values are
// safe to pass and fail cleanly.
type Interval struct {
	A float64
	B float64
}

// NewInterval creates the interval [a, b].
//
// Returns errs.ErrInvalidInterval unless a < b; degenerate (a == b) and
// inverted (a > b) intervals are both rejected.
func NewInterval(a, b float64) (Interval, error) {
	iv := Interval{A: a, B: b}
	if err := iv.Validate(); err != nil {
		return Interval{}, err
	}

	return iv, nil
}

// Validate checks the A < B invariant.
func (iv Interval) Validate() error {
	// The negated comparison also rejects NaN bounds.
	if !(iv.A < iv.B) {
		return fmt.Errorf("%w: [%g, %g]", errs.ErrInvalidInterval, iv.A, iv.B)
	}

	return nil
}

// Midpoint returns the center of the interval.
func (iv Interval) Midpoint() float64 {
	return iv.A + (iv.B-iv.A)/2
}
