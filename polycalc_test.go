package polycalc_test

import (
	"testing"

	"github.com/arloliu/polycalc"
	"github.com/arloliu/polycalc/calculus"
	"github.com/arloliu/polycalc/errs"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd(t *testing.T) {
	m, err := polycalc.NewMonomial(3, 2)
	require.NoError(t, err)
	require.Equal(t, 12.0, m.Evaluate(2))

	n, err := polycalc.NewMonomial(-1, 1)
	require.NoError(t, err)

	c, err := polycalc.NewMonomial(5, 0)
	require.NoError(t, err)

	p := polycalc.NewPolynomial(m, n, c) // 3x^2 - x + 5
	require.Equal(t, "3x^2 - x + 5", p.String())
	require.Equal(t, 15.0, p.Evaluate(2))

	d, err := polycalc.NthDerivative(p, 2)
	require.NoError(t, err)
	require.Equal(t, "6", d.String())

	iv, err := polycalc.NewInterval(1, 5)
	require.NoError(t, err)

	trend, err := polycalc.ClassifyTrend(p, iv)
	require.NoError(t, err)
	require.Equal(t, calculus.TrendIncreasing, trend)

	concavity, err := polycalc.ClassifyConcavity(p, iv)
	require.NoError(t, err)
	require.Equal(t, calculus.ConcaveUp, concavity)
}

func TestEndToEnd_Errors(t *testing.T) {
	_, err := polycalc.NewMonomial(1, -1)
	require.ErrorIs(t, err, errs.ErrInvalidExponent)

	_, err = polycalc.NewInterval(5, 2)
	require.ErrorIs(t, err, errs.ErrInvalidInterval)

	p := polycalc.NewPolynomial()
	_, err = polycalc.NthDerivative(p, -1)
	require.ErrorIs(t, err, errs.ErrInvalidDegree)
}
