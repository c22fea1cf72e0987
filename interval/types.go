// SPDX-License-Identifier: MIT
// Package interval: core types and sentinel errors.
package interval

import "errors"

// Sentinel errors for interval construction. All preconditions are checked
// eagerly: when one fails, no computation has been performed.
var (
	// ErrTrials indicates a non-positive number of trials.
	ErrTrials = errors.New("interval: number of trials must be positive")
	// ErrSuccesses indicates successes outside [0, trials].
	ErrSuccesses = errors.New("interval: successes must lie within [0, trials]")
	// ErrAlpha indicates an error rate outside the open (0,1), or NaN.
	ErrAlpha = errors.New("interval: alpha must lie strictly inside (0, 1)")
	// ErrSampleSize indicates fewer observations than the formula requires.
	ErrSampleSize = errors.New("interval: sample size too small")
	// ErrVariance indicates a negative, NaN or infinite variance input.
	ErrVariance = errors.New("interval: variance must be finite and non-negative")
	// ErrMethod indicates an unknown interval method tag.
	ErrMethod = errors.New("interval: unknown interval method")
)

// Interval is an immutable confidence interval with Lower ≤ Upper,
// guaranteed by construction.
type Interval struct {
	Lower, Upper float64
}

// BinomialMethod selects a binomial proportion interval strategy. The set
// is closed: every tag dispatches to one formula via Interval.
type BinomialMethod int

const (
	// WilsonScore inverts the score test; recommended default.
	WilsonScore BinomialMethod = iota
	// NormalApproximation is the Wald interval, clipped into [0,1].
	NormalApproximation
	// AgrestiCoull is the adjusted Wald interval, clipped into [0,1].
	AgrestiCoull
	// ClopperPearson is the exact tail inversion via beta quantiles.
	ClopperPearson
	// Jeffreys is the Bayesian equal-tailed Beta(x+½, n−x+½) interval.
	Jeffreys
)

// String returns the method name for diagnostics.
func (m BinomialMethod) String() string {
	switch m {
	case WilsonScore:
		return "WilsonScore"
	case NormalApproximation:
		return "NormalApproximation"
	case AgrestiCoull:
		return "AgrestiCoull"
	case ClopperPearson:
		return "ClopperPearson"
	case Jeffreys:
		return "Jeffreys"
	default:
		return "Unknown"
	}
}
