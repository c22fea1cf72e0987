// SPDX-License-Identifier: MIT
// Package moment: streaming covariance and Pearson correlation.
package moment

import "math"

// Covariance is a single-pass accumulator of the co-moment
// c = Σ(x-meanX)(y-meanY) together with the marginal central sums, so
// covariance and Pearson correlation come from one pass over the pairs.
//
// Combine follows the same pairwise algebra as the univariate accumulators.
type Covariance struct {
	n            int64
	meanX, meanY float64
	c            float64 // co-moment Σ(x-meanX)(y-meanY)
	sxx, syy     float64 // marginal central sums of squares
	biased       bool
}

// NewCovariance returns an empty accumulator (sample statistics by default).
func NewCovariance() *Covariance { return &Covariance{} }

// CovarianceOf bulk-builds a Covariance from paired slices of equal length;
// pairs beyond the shorter slice are ignored.
func CovarianceOf(xs, ys []float64) *Covariance {
	cov := NewCovariance()
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	for i := 0; i < n; i++ {
		cov.Add(xs[i], ys[i])
	}

	return cov
}

// CovarianceOfRange bulk-builds a Covariance from the pairs
// (xs[i], ys[i]) for i in [from, to). The subrange must fit both slices;
// returns ErrRange otherwise.
func CovarianceOfRange(xs, ys []float64, from, to int) (*Covariance, error) {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if err := checkRange(n, from, to); err != nil {
		return nil, err
	}

	return CovarianceOf(xs[from:to], ys[from:to]), nil
}

// Biased selects the read-time divisor (n when true, n-1 by default).
// Returns the receiver for chaining.
func (cov *Covariance) Biased(b bool) *Covariance {
	cov.biased = b

	return cov
}

// Add folds one (x, y) pair in. The co-moment update uses the pre-update
// x-deviation and the post-update y-mean, mirroring the Welford discipline.
func (cov *Covariance) Add(x, y float64) {
	cov.n++
	n := float64(cov.n)

	dx := x - cov.meanX
	dy := y - cov.meanY
	cov.meanX += dx / n
	cov.meanY += dy / n
	cov.c += dx * (y - cov.meanY)
	cov.sxx += dx * (x - cov.meanX)
	cov.syy += dy * (y - cov.meanY)
}

// Combine merges another accumulator into cov:
//
//	c = cA + cB + dx·dy·nA·nB/n
//
// with the marginal sums merged exactly like Variance.Combine. Empty (or
// nil) operands are a no-op.
func (cov *Covariance) Combine(o *Covariance) {
	if o == nil || o.n == 0 {
		return
	}
	if cov.n == 0 {
		c := *o
		c.biased = cov.biased
		*cov = c

		return
	}

	nA, nB := float64(cov.n), float64(o.n)
	n := nA + nB
	dx := o.meanX - cov.meanX
	dy := o.meanY - cov.meanY

	cov.c += o.c + dx*dy*nA*nB/n
	cov.sxx += o.sxx + dx*dx*nA*nB/n
	cov.syy += o.syy + dy*dy*nA*nB/n
	cov.meanX = (nA*cov.meanX + nB*o.meanX) / n
	cov.meanY = (nA*cov.meanY + nB*o.meanY) / n
	cov.n += o.n
}

// Count returns the number of pairs accepted so far.
func (cov *Covariance) Count() int64 { return cov.n }

// MeanX returns the running mean of the first coordinate, NaN when empty.
func (cov *Covariance) MeanX() float64 {
	if cov.n == 0 {
		return math.NaN()
	}

	return cov.meanX
}

// MeanY returns the running mean of the second coordinate, NaN when empty.
func (cov *Covariance) MeanY() float64 {
	if cov.n == 0 {
		return math.NaN()
	}

	return cov.meanY
}

// Value returns the covariance under the configured bias policy.
// n=0 → NaN; n=1 → NaN (sample) or 0 (population).
func (cov *Covariance) Value() float64 {
	if cov.n == 0 {
		return math.NaN()
	}
	if cov.biased {
		return cov.c / float64(cov.n)
	}
	if cov.n < 2 {
		return math.NaN()
	}

	return cov.c / float64(cov.n-1)
}

// Correlation returns the Pearson correlation coefficient, NaN when either
// marginal has zero spread (0/0 guard) or fewer than two pairs were seen.
func (cov *Covariance) Correlation() float64 {
	if cov.n < 2 || cov.sxx == 0 || cov.syy == 0 {
		return math.NaN()
	}

	return cov.c / math.Sqrt(cov.sxx*cov.syy)
}
