// SPDX-License-Identifier: MIT
// Package exact: exact-sum variance and standard deviation.
package exact

import (
	"math"
	"math/big"

	"github.com/katalvlaran/momenta/wideint"
)

// Variance accumulates count, exact Σx (Int128) and exact Σx² (UInt192)
// over int64 input. The bias flag is read-time configuration only and never
// affects merge compatibility: accumulators with different settings share
// identical raw state for the same data.
type Variance struct {
	n      int64
	sum    wideint.Int128
	sumSq  wideint.UInt192
	biased bool
}

// NewVariance returns an empty accumulator (sample statistics by default).
func NewVariance() *Variance { return &Variance{} }

// VarianceOf bulk-builds from values; equivalent to sequential Add.
func VarianceOf(values ...int64) *Variance {
	v := NewVariance()
	for _, x := range values {
		v.sum.Add(x)
		v.sumSq.AddSquare(x)
	}
	v.n += int64(len(values))

	return v
}

// VarianceOfRange bulk-builds from values[from:to].
// Returns ErrRange unless 0 ≤ from ≤ to ≤ len(values).
func VarianceOfRange(values []int64, from, to int) (*Variance, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return VarianceOf(values[from:to]...), nil
}

// Biased selects the read-time divisor: n² (population) when true,
// n·(n−1) (sample, the default) when false. Returns the receiver for
// chaining.
func (v *Variance) Biased(b bool) *Variance {
	v.biased = b

	return v
}

// Add folds one observation into the exact sums.
func (v *Variance) Add(x int64) {
	v.n++
	v.sum.Add(x)
	v.sumSq.AddSquare(x)
}

// Combine merges another accumulator into v by exact limb addition of the
// counts and both sums. Exact, associative and commutative — unlike the
// floating-point merge, which is only so up to rounding. The other
// operand's bias flag is ignored. A nil other counts as empty.
func (v *Variance) Combine(o *Variance) {
	if o == nil {
		return
	}
	v.n += o.n
	v.sum.AddInt128(o.sum)
	v.sumSq.AddUInt192(o.sumSq)
}

// Count returns the number of observations accepted so far.
func (v *Variance) Count() int64 { return v.n }

// Sum returns the exact running sum. Always succeeds.
func (v *Variance) Sum() *big.Int { return v.sum.BigInt() }

// SumSquares returns the exact running sum of squares. Always succeeds.
func (v *Variance) SumSquares() *big.Int { return v.sumSq.BigInt() }

// Mean returns Σx/n rounded once to float64, or NaN when empty.
func (v *Variance) Mean() float64 {
	if v.n == 0 {
		return math.NaN()
	}
	q := new(big.Float).SetInt(v.sum.BigInt())
	q.Quo(q, new(big.Float).SetInt64(v.n))
	f, _ := q.Float64()

	return f
}

// Value returns the variance computed from the exact sums:
//
//	(n·Σx² − (Σx)²) / (n·(n−1))   sample (default)
//	(n·Σx² − (Σx)²) / n²          population
//
// The numerator is evaluated entirely in exact integer arithmetic; only the
// final division happens in floating point.
// Edge cases: n=0 → NaN; n=1 → NaN (sample) or 0 (population).
func (v *Variance) Value() float64 {
	if v.n == 0 {
		return math.NaN()
	}
	if !v.biased && v.n < 2 {
		return math.NaN()
	}

	s := v.sum.BigInt()
	num := new(big.Int).Mul(big.NewInt(v.n), v.sumSq.BigInt())
	num.Sub(num, s.Mul(s, s))

	f, _ := new(big.Float).SetInt(num).Float64()
	den := float64(v.n) * float64(v.n)
	if !v.biased {
		den = float64(v.n) * float64(v.n-1)
	}

	return f / den
}

// StdDev is the square-root companion of Variance: identical exact state,
// with Value() = √variance at read time.
type StdDev struct {
	Variance
}

// NewStdDev returns an empty accumulator (sample statistics by default).
func NewStdDev() *StdDev { return &StdDev{} }

// StdDevOf bulk-builds from values.
func StdDevOf(values ...int64) *StdDev {
	s := NewStdDev()
	for _, x := range values {
		s.Add(x)
	}

	return s
}

// StdDevOfRange bulk-builds from values[from:to].
func StdDevOfRange(values []int64, from, to int) (*StdDev, error) {
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
