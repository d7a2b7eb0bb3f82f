// Package calculus provides closed-form derivative helpers and interval
// classification for polynomial-like values.
//
// The package is written against the Function constraint rather than
// concrete types, so every routine works identically on poly.Monomial and
// poly.Polynomial. Classification never samples: derivatives are exact, and
// behavior over an interval is read from the derivative's sign at the
// interval endpoints (see ClassifyTrend for the tie-break rules and the known
// limitation of the endpoint test).
//
// Typical use:
//
//	p := poly.New(poly.Monomial{Coefficient: 1, Exponent: 2}) // x^2
//	iv, err := calculus.NewInterval(0, 5)
//	if err != nil {
//	    return err
//	}
//
//	trend, _ := calculus.ClassifyTrend(p, iv)         // TrendIncreasing
//	concavity, _ := calculus.ClassifyConcavity(p, iv) // ConcaveUp
package calculus
