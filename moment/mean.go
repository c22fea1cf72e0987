// SPDX-License-Identifier: MIT
// Package moment: streaming arithmetic mean.
package moment

import "math"

// Mean is a single-pass arithmetic mean accumulator.
//
// Invariants: for n=0 Value() is NaN; otherwise the running estimate equals
// the arithmetic mean of all values seen so far, to within floating-point
// rounding. A Mean never shrinks.
type Mean struct {
	n  int64
	m1 float64
}

// NewMean returns an empty accumulator.
func NewMean() *Mean { return &Mean{} }

// MeanOf bulk-builds a Mean from values; equivalent to sequential Add.
func MeanOf(values ...float64) *Mean {
	m := NewMean()
	for _, x := range values {
		m.Add(x)
	}

	return m
}

// MeanOfRange bulk-builds a Mean from values[from:to].
// Returns ErrRange unless 0 ≤ from ≤ to ≤ len(values).
func MeanOfRange(values []float64, from, to int) (*Mean, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return MeanOf(values[from:to]...), nil
}

// Add folds one observation in: m' = m + (x-m)/n'.
func (m *Mean) Add(x float64) {
	m.n++
	m.m1 += (x - m.m1) / float64(m.n)
}

// Combine merges another accumulator into m (Chan pairwise update).
// Combining with an empty accumulator is a no-op; a nil other counts as
// empty. Both operands must be accessed exclusively during the merge.
func (m *Mean) Combine(o *Mean) {
	if o == nil || o.n == 0 {
		return
	}
	if m.n == 0 {
		*m = *o

		return
	}
	nA, nB := float64(m.n), float64(o.n)
	m.n += o.n
	m.m1 = (nA*m.m1 + nB*o.m1) / float64(m.n)
}

// Count returns the number of observations accepted so far.
func (m *Mean) Count() int64 { return m.n }

// Sum returns n·mean, the running total; 0 for an empty accumulator.
func (m *Mean) Sum() float64 {
	if m.n == 0 {
		return 0
	}

	return m.m1 * float64(m.n)
}

// Value returns the arithmetic mean, or NaN when no values were accepted.
func (m *Mean) Value() float64 {
	if m.n == 0 {
		return math.NaN()
	}

	return m.m1
}

// checkRange validates an OfRange subrange against the slice length.
func checkRange(n, from, to int) error {
	if from < 0 || to < from || to > n {
		return ErrRange
	}

	return nil
}
