package calculus

type (
	// Trend classifies the monotonic behavior of a function over an interval.
	Trend uint8

	// Concavity classifies the curvature of a function over an interval.
	Concavity uint8
)

const (
	TrendIncreasing   Trend = 0x1 // derivative positive throughout the interval
	TrendDecreasing   Trend = 0x2 // derivative negative throughout the interval
	TrendConstant     Trend = 0x3 // derivative is the zero function
	TrendNonMonotonic Trend = 0x4 // derivative changes sign inside the interval

	ConcaveUp          Concavity = 0x1 // second derivative positive throughout
	ConcaveDown        Concavity = 0x2 // second derivative negative throughout
	ConcavityUndefined Concavity = 0x3 // zero second derivative or inflection inside
)

func (t Trend) String() string {
	switch t {
	case TrendIncreasing:
		return "Increasing"
	case TrendDecreasing:
		return "Decreasing"
	case TrendConstant:
		return "Constant"
	case TrendNonMonotonic:
		return "NonMonotonic"
	default:
		return "Unknown"
	}
}

func (c Concavity) String() string {
	switch c {
	case ConcaveUp:
		return "ConcaveUp"
	case ConcaveDown:
		return "ConcaveDown"
	case ConcavityUndefined:
		return "Undefined"
	default:
		return "Unknown"
	}
}
