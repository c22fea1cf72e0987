// SPDX-License-Identifier: MIT
// Package moment: streaming variance and standard deviation (Welford).
package moment

import "math"

// Variance is a single-pass variance accumulator using Welford's updating
// identity. It tracks the count, the running mean and the central
// sum-of-squares term m2 = Σ(x-mean)².
//
// The bias flag is read-time configuration only: it never participates in
// Combine, so accumulators with different settings merge freely.
type Variance struct {
	n      int64
	m1, m2 float64
	biased bool
}

// NewVariance returns an empty accumulator (sample statistics by default).
func NewVariance() *Variance { return &Variance{} }

// VarianceOf bulk-builds a Variance from values; equivalent to sequential Add.
func VarianceOf(values ...float64) *Variance {
	v := NewVariance()
	for _, x := range values {
		v.Add(x)
	}

	return v
}

// VarianceOfRange bulk-builds a Variance from values[from:to].
// Returns ErrRange unless 0 ≤ from ≤ to ≤ len(values).
func VarianceOfRange(values []float64, from, to int) (*Variance, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return VarianceOf(values[from:to]...), nil
}

// Biased selects the divisor used at read time: n (biased/population) when
// true, n-1 (Bessel-corrected sample, the default) when false. Returns the
// receiver for chaining.
func (v *Variance) Biased(b bool) *Variance {
	v.biased = b

	return v
}

// Add folds one observation in:
//
//	delta = x - m;  m' = m + delta/n';  m2' = m2 + delta·(x - m')
func (v *Variance) Add(x float64) {
	v.n++
	delta := x - v.m1
	v.m1 += delta / float64(v.n)
	v.m2 += delta * (x - v.m1)
}

// Combine merges another accumulator into v using the pairwise update
//
//	m2 = m2A + m2B + delta²·nA·nB/n,  delta = mB - mA.
//
// Combining with an empty (or nil) accumulator is a no-op and never
// introduces NaN. The other operand's bias flag is ignored: bias is not
// part of the mergeable state.
func (v *Variance) Combine(o *Variance) {
	if o == nil || o.n == 0 {
		return
	}
	if v.n == 0 {
		v.n, v.m1, v.m2 = o.n, o.m1, o.m2

		return
	}
	nA, nB := float64(v.n), float64(o.n)
	n := nA + nB
	delta := o.m1 - v.m1
	v.m2 += o.m2 + delta*delta*nA*nB/n
	v.m1 = (nA*v.m1 + nB*o.m1) / n
	v.n += o.n
}

// Count returns the number of observations accepted so far.
func (v *Variance) Count() int64 { return v.n }

// Mean returns the running mean, or NaN when empty.
func (v *Variance) Mean() float64 {
	if v.n == 0 {
		return math.NaN()
	}

	return v.m1
}

// Value returns the variance under the configured bias policy.
//
// Edge cases: n=0 → NaN; n=1 → NaN for the sample estimator (no deviation
// measurable), 0 for the population estimator by convention.
func (v *Variance) Value() float64 {
	if v.n == 0 {
		return math.NaN()
	}
	if v.biased {
		return v.m2 / float64(v.n)
	}
	if v.n < 2 {
		return math.NaN()
	}

	return v.m2 / float64(v.n-1)
}

// StdDev is the square-root companion of Variance: identical accumulation
// and merge state, with Value() = √variance at read time.
type StdDev struct {
	Variance
}

// NewStdDev returns an empty accumulator (sample statistics by default).
func NewStdDev() *StdDev { return &StdDev{} }

// StdDevOf bulk-builds a StdDev from values.
func StdDevOf(values ...float64) *StdDev {
	s := NewStdDev()
	for _, x := range values {
		s.Add(x)
	}

	return s
}

// StdDevOfRange bulk-builds a StdDev from values[from:to].
func StdDevOfRange(values []float64, from, to int) (*StdDev, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return StdDevOf(values[from:to]...), nil
}

// Biased selects the read-time divisor; returns the receiver for chaining.
func (s *StdDev) Biased(b bool) *StdDev {
	s.biased = b

	return s
}

// Combine merges another StdDev into s.
func (s *StdDev) Combine(o *StdDev) {
	if o == nil {
		return
	}
	s.Variance.Combine(&o.Variance)
}

// Value returns the standard deviation under the configured bias policy.
func (s *StdDev) Value() float64 {
	return math.Sqrt(s.Variance.Value())
}
