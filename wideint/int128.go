// SPDX-License-Identifier: MIT
// Package wideint: signed 128-bit accumulator.
package wideint

import (
	"math"
	"math/big"
	"math/bits"
)

// Int128 is a signed 128-bit two's-complement integer held as two uint64
// limbs (lo, hi). The value always equals the two's-complement
// interpretation of the limb pair; every limb combination is a valid value.
//
// The zero value is zero and ready to use. Int128 is sized so that summing
// up to 2^63 arbitrary int64 values cannot overflow.
type Int128 struct {
	lo, hi uint64
}

// Int128Of returns an Int128 seeded with v.
func Int128Of(v int64) Int128 {
	var z Int128
	z.Add(v)

	return z
}

// Add folds a signed 64-bit value into the accumulator using
// carry-propagating limb addition. It cannot overflow within the documented
// domain (≤ 2^63 additions), so it has no error condition.
func (z *Int128) Add(v int64) {
	lo := uint64(v)
	var hi uint64
	if v < 0 {
		hi = math.MaxUint64 // sign extension of a negative int64
	}
	var carry uint64
	z.lo, carry = bits.Add64(z.lo, lo, 0)
	z.hi, _ = bits.Add64(z.hi, hi, carry)
}

// AddInt128 merges another accumulator into z with the same
// carry-propagation discipline. Used as the exact parallel-combine step.
func (z *Int128) AddInt128(o Int128) {
	var carry uint64
	z.lo, carry = bits.Add64(z.lo, o.lo, 0)
	z.hi, _ = bits.Add64(z.hi, o.hi, carry)
}

// Sign reports -1 for negative, 0 for zero, +1 for positive.
func (z Int128) Sign() int {
	if z.hi&(1<<63) != 0 {
		return -1
	}
	if z.hi == 0 && z.lo == 0 {
		return 0
	}

	return 1
}

// IsNegative reports whether z is strictly below zero.
func (z Int128) IsNegative() bool { return z.hi&(1<<63) != 0 }

// Cmp compares z and o as signed values, returning -1, 0 or +1.
// Flipping the sign bit of the high limb turns signed ordering into
// unsigned ordering, so the limbs compare lexicographically.
func (z Int128) Cmp(o Int128) int {
	zh, oh := z.hi^(1<<63), o.hi^(1<<63)
	switch {
	case zh < oh || (zh == oh && z.lo < o.lo):
		return -1
	case zh > oh || (zh == oh && z.lo > o.lo):
		return 1
	default:
		return 0
	}
}

// abs returns the magnitude limbs of z (two's-complement negation when
// negative). The magnitude of math.MinInt128 wraps to itself, which is the
// correct unsigned interpretation.
func (z Int128) abs() (lo, hi uint64) {
	lo, hi = z.lo, z.hi
	if z.Sign() < 0 {
		var borrow uint64
		lo, borrow = bits.Sub64(0, lo, 0)
		hi, _ = bits.Sub64(0, hi, borrow)
	}

	return lo, hi
}

// Float64 converts to the nearest representable float64. Lossy but total:
// it succeeds for every Int128 value.
func (z Int128) Float64() float64 {
	lo, hi := z.abs()
	f := float64(hi)*0x1p64 + float64(lo)
	if z.Sign() < 0 {
		f = -f
	}

	return f
}

// BigInt converts to an exact arbitrary-precision integer. Always succeeds.
func (z Int128) BigInt() *big.Int {
	lo, hi := z.abs()
	b := new(big.Int).SetUint64(hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(lo))
	if z.Sign() < 0 {
		b.Neg(b)
	}

	return b
}

// Int64 returns the exact value as int64, or ErrOverflow when the value
// lies outside [math.MinInt64, math.MaxInt64].
func (z Int128) Int64() (int64, error) {
	// Non-negative values fit iff the high limb is clear and the low limb
	// has no sign bit; negatives fit iff the high limb is all ones and the
	// low limb carries the sign bit.
	if z.hi == 0 && z.lo <= math.MaxInt64 {
		return int64(z.lo), nil
	}
	if z.hi == math.MaxUint64 && z.lo >= 1<<63 {
		return int64(z.lo), nil
	}

	return 0, ErrOverflow
}

// Int32 returns the exact value as int32, or ErrOverflow when out of range.
func (z Int128) Int32() (int32, error) {
	v, err := z.Int64()
	if err != nil {
		return 0, err
	}
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrOverflow
	}

	return int32(v), nil
}
