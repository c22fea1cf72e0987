// SPDX-License-Identifier: MIT
package htest

import "errors"

// Alternative selects the direction of the alternative hypothesis.
type Alternative int

const (
	// TwoSided tests for any shift: H1 says the population parameter
	// differs from the null value in either direction.
	TwoSided Alternative = iota
	// Less tests for a downward shift: H1 says the first sample's
	// parameter is smaller.
	Less
	// Greater tests for an upward shift: H1 says the first sample's
	// parameter is larger.
	Greater
)

// String returns the conventional name of the alternative.
func (a Alternative) String() string {
	switch a {
	case TwoSided:
		return "two-sided"
	case Less:
		return "less"
	case Greater:
		return "greater"
	default:
		return "unknown"
	}
}

// TestResult carries the outcome of a hypothesis test.
//
// DF is NaN for tests that have no degrees-of-freedom notion (rank-sum).
// N2 is zero for one-sample tests.
type TestResult struct {
	Statistic float64 // test statistic (t or z, depending on the test)
	PValue    float64 // p-value under the selected Alternative
	DF        float64 // degrees of freedom, possibly fractional (Welch)
	N1        int     // size of the first sample
	N2        int     // size of the second sample, 0 for one-sample tests
}

var (
	// ErrSampleSize is returned when a sample is too short for the test.
	ErrSampleSize = errors.New("htest: sample too small")
	// ErrNaN is returned when an input sample contains NaN.
	ErrNaN = errors.New("htest: sample contains NaN")
	// ErrZeroVariance is returned when the test statistic is undefined
	// because the data carry no spread.
	ErrZeroVariance = errors.New("htest: zero variance in sample")
	// ErrAlternative is returned for an unknown Alternative value.
	ErrAlternative = errors.New("htest: unknown alternative hypothesis")
)

// checkSample validates the minimum length and scans for NaN values.
func checkSample(xs []float64, minLen int) error {
	if len(xs) < minLen {
		return ErrSampleSize
	}
	for _, x := range xs {
		if x != x {
			return ErrNaN
		}
	}

	return nil
}

// checkAlternative rejects out-of-range Alternative values up front so the
// p-value switches below never fall through silently.
func checkAlternative(alt Alternative) error {
	switch alt {
	case TwoSided, Less, Greater:
		return nil
	default:
		return ErrAlternative
	}
}
