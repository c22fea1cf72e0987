// SPDX-License-Identifier: MIT
// Package exact: exact sum of squares.
package exact

import (
	"math/big"

	"github.com/katalvlaran/momenta/wideint"
)

// SumOfSquares accumulates Σx² over int64 input exactly. The running sum
// lives in a UInt192, wide enough for 2^63 squared int64 values, so no
// input sequence within the documented domain can overflow it.
type SumOfSquares struct {
	n  int64
	ss wideint.UInt192
}

// NewSumOfSquares returns an empty accumulator.
func NewSumOfSquares() *SumOfSquares { return &SumOfSquares{} }

// SumOfSquaresOf bulk-builds from values; equivalent to sequential Add.
func SumOfSquaresOf(values ...int64) *SumOfSquares {
	s := NewSumOfSquares()
	for _, v := range values {
		s.ss.AddSquare(v)
	}
	s.n += int64(len(values))

	return s
}

// SumOfSquaresOfRange bulk-builds from values[from:to].
// Returns ErrRange unless 0 ≤ from ≤ to ≤ len(values).
func SumOfSquaresOfRange(values []int64, from, to int) (*SumOfSquares, error) {
	if err := checkRange(len(values), from, to); err != nil {
		return nil, err
	}

	return SumOfSquaresOf(values[from:to]...), nil
}

// Add folds one observation in.
func (s *SumOfSquares) Add(v int64) {
	s.n++
	s.ss.AddSquare(v)
}

// Combine merges another accumulator into s. Exact and associative; a nil
// other counts as empty.
func (s *SumOfSquares) Combine(o *SumOfSquares) {
	if o == nil {
		return
	}
	s.n += o.n
	s.ss.AddUInt192(o.ss)
}

// Count returns the number of observations accepted so far.
func (s *SumOfSquares) Count() int64 { return s.n }

// BigInt returns the exact sum of squares. Always succeeds.
func (s *SumOfSquares) BigInt() *big.Int { return s.ss.BigInt() }

// Int64 returns the exact sum, or wideint.ErrOverflow when it exceeds
// math.MaxInt64. The accumulator stays valid either way.
func (s *SumOfSquares) Int64() (int64, error) { return s.ss.Int64() }

// Float64 returns the sum rounded to the nearest float64.
func (s *SumOfSquares) Float64() float64 { return s.ss.Float64() }

// checkRange validates an OfRange subrange against the slice length.
func checkRange(n, from, to int) error {
	if from < 0 || to < from || to > n {
		return ErrRange
	}

	return nil
}
