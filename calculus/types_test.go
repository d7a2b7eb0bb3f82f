package calculus

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTrend_String(t *testing.T) {
	require.Equal(t, "Increasing", TrendIncreasing.String())
	require.Equal(t, "Decreasing", TrendDecreasing.String())
	require.Equal(t, "Constant", TrendConstant.String())
	require.Equal(t, "NonMonotonic", TrendNonMonotonic.String())
	require.Equal(t, "Unknown", Trend(0).String())
}

func TestConcavity_String(t *testing.T) {
	require.Equal(t, "ConcaveUp", ConcaveUp.String())
	require.Equal(t, "ConcaveDown", ConcaveDown.String())
	require.Equal(t, "Undefined", ConcavityUndefined.String())
	require.Equal(t, "Unknown", Concavity(0).String())
}
