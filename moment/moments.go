// SPDX-License-Identifier: MIT
// Package moment: four-moment accumulator (skewness & kurtosis).
package moment

import "math"

// Moments is a single-pass accumulator of the first four moments. It tracks
// the count, the running mean m1, and the central power sums
// m2 = Σd², m3 = Σd³, m4 = Σd⁴ with d = x - mean. The update recurrence
// shares delta and delta/n intermediates across orders, so maintaining all
// four costs barely more than variance alone.
//
// Invariants: n=0 reads are NaN; at n=1 every central sum is exactly zero.
type Moments struct {
	n              int64
	m1, m2, m3, m4 float64
	biased         bool
}

// NewMoments returns an empty accumulator (bias-corrected reads by default).
func NewMoments() *Moments { return &Moments{} }

// MomentsOf bulk-builds a Moments from values; equivalent to sequential Add.
func MomentsOf(values ...float64) *Moments {
	m := NewMoments()
	for _, x := range values {
		m.Add(x)
	}

	return m
}

// MomentsOfRange bulk-builds a Moments from values[from:to].
// Returns ErrRange unless 0 ≤ from ≤ to ≤ len(values).
func MomentsOfRange(values []float64, from, to int) (*Moments, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return MomentsOf(values[from:to]...), nil
}

// Biased selects the read-time convention: the moment-ratio estimators
// g1/g2 when true, the bias-corrected G1/G2 (the default) when false.
// Returns the receiver for chaining.
func (m *Moments) Biased(b bool) *Moments {
	m.biased = b

	return m
}

// Add folds one observation into all four moments in one pass.
func (m *Moments) Add(x float64) {
	n1 := float64(m.n)
	m.n++
	n := float64(m.n)

	delta := x - m.m1
	deltaN := delta / n
	deltaN2 := deltaN * deltaN
	term1 := delta * deltaN * n1

	m.m1 += deltaN
	m.m4 += term1*deltaN2*(n*n-3*n+3) + 6*deltaN2*m.m2 - 4*deltaN*m.m3
	m.m3 += term1*deltaN*(n-2) - 3*deltaN*m.m2
	m.m2 += term1
}

// Combine merges another accumulator into m with the Chan pairwise update
// for all four central sums. Combining with an empty (or nil) accumulator
// is a no-op and never introduces NaN; the other operand's bias flag is
// ignored. The merge is commutative and associative up to rounding.
func (m *Moments) Combine(o *Moments) {
	if o == nil || o.n == 0 {
		return
	}
	if m.n == 0 {
		m.n, m.m1, m.m2, m.m3, m.m4 = o.n, o.m1, o.m2, o.m3, o.m4

		return
	}

	nA, nB := float64(m.n), float64(o.n)
	n := nA + nB
	delta := o.m1 - m.m1
	delta2 := delta * delta

	m4 := m.m4 + o.m4 + delta2*delta2*nA*nB*(nA*nA-nA*nB+nB*nB)/(n*n*n)
	m4 += 6*delta2*(nA*nA*o.m2+nB*nB*m.m2)/(n*n) + 4*delta*(nA*o.m3-nB*m.m3)/n

	m3 := m.m3 + o.m3 + delta2*delta*nA*nB*(nA-nB)/(n*n)
	m3 += 3 * delta * (nA*o.m2 - nB*m.m2) / n

	m.m4 = m4
	m.m3 = m3
	m.m2 += o.m2 + delta2*nA*nB/n
	m.m1 = (nA*m.m1 + nB*o.m1) / n
	m.n += o.n
}

// Count returns the number of observations accepted so far.
func (m *Moments) Count() int64 { return m.n }

// Mean returns the running mean, or NaN when empty.
func (m *Moments) Mean() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.m1
}

// Variance returns the second-moment statistic under the bias policy
// (population m2/n when biased, sample m2/(n-1) otherwise).
func (m *Moments) Variance() float64 {
	if m.n == 0 {
		return math.NaN()
	}
	if m.biased {
		return m.m2 / float64(m.n)
	}
	if m.n < 2 {
		return math.NaN()
	}

	return m.m2 / float64(m.n-1)
}

// StdDev returns the square root of Variance.
func (m *Moments) StdDev() float64 {
	return math.Sqrt(m.Variance())
}

// Skewness returns the third standardized moment.
//
// Biased convention: g1 = √n·m3/m2^1.5, defined for n ≥ 2.
// Unbiased (default): G1 = √(n(n-1))/(n-2)·g1, defined for n ≥ 3.
// Below the minimum length, or when m2 is zero (0/0), the result is NaN.
func (m *Moments) Skewness() float64 {
	n := float64(m.n)
	if m.m2 == 0 {
		return math.NaN()
	}
	g1 := math.Sqrt(n) * m.m3 / math.Pow(m.m2, 1.5)
	if m.biased {
		if m.n < 2 {
			return math.NaN()
		}

		return g1
	}
	if m.n < 3 {
		return math.NaN()
	}

	return math.Sqrt(n*(n-1)) / (n - 2) * g1
}

// Kurtosis returns the excess kurtosis.
//
// Biased convention: g2 = n·m4/m2² − 3, defined for n ≥ 2.
// Unbiased (default): G2 = ((n+1)·g2 + 6)·(n-1)/((n-2)(n-3)), n ≥ 4.
// Below the minimum length, or when m2 is zero, the result is NaN.
func (m *Moments) Kurtosis() float64 {
	n := float64(m.n)
	if m.m2 == 0 {
		return math.NaN()
	}
	g2 := n*m.m4/(m.m2*m.m2) - 3
	if m.biased {
		if m.n < 2 {
			return math.NaN()
		}

		return g2
	}
	if m.n < 4 {
		return math.NaN()
	}

	return ((n+1)*g2 + 6) * (n - 1) / ((n - 2) * (n - 3))
}
