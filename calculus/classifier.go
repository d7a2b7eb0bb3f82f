package calculus

import (
	"fmt"
	"math"

	"github.com/arloliu/polycalc/internal/options"
)

// DefaultTolerance is the half-width of the band around zero within which an
// endpoint derivative value is treated as exactly zero.
const DefaultTolerance = 1e-10

type classifyConfig struct {
	tolerance float64
}

// Option configures a classification call.
type Option = options.Option[*classifyConfig]

// WithTolerance overrides the zero-detection tolerance used when reading the
// sign of derivative values at the interval endpoints.
//
// The tolerance must be positive; a non-positive value makes the classify
// call fail.
func WithTolerance(eps float64) Option {
	return options.New(func(cfg *classifyConfig) error {
		if eps <= 0 || math.IsNaN(eps) {
			return fmt.Errorf("tolerance must be positive, got %g", eps)
		}
		cfg.tolerance = eps

		return nil
	})
}

// ClassifyTrend classifies the monotonic behavior of f over iv.
//
// The first derivative is computed in closed form and its sign is read at the
// interval endpoints:
//
//   - zero derivative function: TrendConstant
//   - both endpoints positive: TrendIncreasing
//   - both endpoints negative: TrendDecreasing
//   - opposite endpoint signs: TrendNonMonotonic (the derivative crosses zero
//     inside the interval)
//
// A zero at exactly one endpoint is a boundary tangency, not necessarily a
// sign change, so the sign at the interval midpoint breaks the tie: if it
// agrees with the nonzero endpoint the function is monotonic on the interval
// (x^2 on [0, 5] classifies as Increasing), otherwise TrendNonMonotonic. A
// zero at both endpoints of a nonzero derivative is TrendNonMonotonic.
//
// The endpoint test is exact for derivatives that change sign at most once
// inside the interval. A derivative with an even number of interior sign
// changes can present equal signs at both endpoints and be misclassified;
// callers working with high-degree polynomials should subdivide the interval.
//
// Returns errs.ErrInvalidInterval if iv is degenerate or inverted.
func ClassifyTrend[T Function[T]](f T, iv Interval, opts ...Option) (Trend, error) {
	cfg, err := newClassifyConfig(iv, opts)
	if err != nil {
		return 0, err
	}

	d := f.Derivative()
	if d.IsZero() {
		return TrendConstant, nil
	}

	sa := signOf(d.Evaluate(iv.A), cfg.tolerance)
	sb := signOf(d.Evaluate(iv.B), cfg.tolerance)
	switch {
	case sa > 0 && sb > 0:
		return TrendIncreasing, nil
	case sa < 0 && sb < 0:
		return TrendDecreasing, nil
	case sa == 0 && sb == 0:
		return TrendNonMonotonic, nil
	case sa == 0 || sb == 0:
		interior := sa + sb // sign of the nonzero endpoint
		if signOf(d.Evaluate(iv.Midpoint()), cfg.tolerance) == interior {
			if interior > 0 {
				return TrendIncreasing, nil
			}

			return TrendDecreasing, nil
		}

		return TrendNonMonotonic, nil
	default:
		return TrendNonMonotonic, nil
	}
}

// ClassifyConcavity classifies the curvature of f over iv.
//
// The second derivative is computed in closed form and its sign is read at
// the interval endpoints, with the same boundary-tangency midpoint tie-break
// as ClassifyTrend:
//
//   - zero second derivative function: ConcavityUndefined (degree <= 1 inputs
//     have no curvature to classify)
//   - both endpoints positive: ConcaveUp
//   - both endpoints negative: ConcaveDown
//   - opposite endpoint signs: ConcavityUndefined (an inflection point lies
//     inside the interval, so no single classification covers it)
//
// Returns errs.ErrInvalidInterval if iv is degenerate or inverted.
func ClassifyConcavity[T Function[T]](f T, iv Interval, opts ...Option) (Concavity, error) {
	cfg, err := newClassifyConfig(iv, opts)
	if err != nil {
		return 0, err
	}

	d2 := f.Derivative().Derivative()
	if d2.IsZero() {
		return ConcavityUndefined, nil
	}

	sa := signOf(d2.Evaluate(iv.A), cfg.tolerance)
	sb := signOf(d2.Evaluate(iv.B), cfg.tolerance)
	switch {
	case sa > 0 && sb > 0:
		return ConcaveUp, nil
	case sa < 0 && sb < 0:
		return ConcaveDown, nil
	case sa == 0 && sb == 0:
		return ConcavityUndefined, nil
	case sa == 0 || sb == 0:
		interior := sa + sb
		if signOf(d2.Evaluate(iv.Midpoint()), cfg.tolerance) == interior {
			if interior > 0 {
				return ConcaveUp, nil
			}

			return ConcaveDown, nil
		}

		return ConcavityUndefined, nil
	default:
		return ConcavityUndefined, nil
	}
}

func newClassifyConfig(iv Interval, opts []Option) (classifyConfig, error) {
	cfg := classifyConfig{tolerance: DefaultTolerance}
	if err := options.Apply(&cfg, opts...); err != nil {
		return classifyConfig{}, err
	}
	if err := iv.Validate(); err != nil {
		return classifyConfig{}, err
	}

	return cfg, nil
}

// signOf reads v as -1, 0, or +1, treating values within eps of zero as zero.
func signOf(v, eps float64) int {
	switch {
	case v > eps:
		return 1
	case v < -eps:
		return -1
	default:
		return 0
	}
}
