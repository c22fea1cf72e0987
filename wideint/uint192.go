// SPDX-License-Identifier: MIT
// Package wideint: unsigned 192-bit accumulator.
package wideint

import (
	"math"
	"math/big"
	"math/bits"
)

// UInt192 is an unsigned 192-bit integer held as three uint64 limbs
// (lo, mid, hi). It is sized to absorb 2^63 squared int64 values: each
// square is below 2^126, so the exact sum stays below 2^189.
//
// The zero value is zero and ready to use.
type UInt192 struct {
	lo, mid, hi uint64
}

// UInt192OfSquare returns a UInt192 seeded with v².
func UInt192OfSquare(v int64) UInt192 {
	var z UInt192
	z.AddSquare(v)

	return z
}

// AddSquare folds v² into the accumulator. The square is computed exactly
// as a 128-bit unsigned product of the magnitude of v (64×64→128 multiply),
// never in floating point, then added with carry propagation.
func (z *UInt192) AddSquare(v int64) {
	m := uint64(v)
	if v < 0 {
		m = -m // magnitude; correct for math.MinInt64 under two's complement
	}
	pHi, pLo := bits.Mul64(m, m)

	var carry uint64
	z.lo, carry = bits.Add64(z.lo, pLo, 0)
	z.mid, carry = bits.Add64(z.mid, pHi, carry)
	z.hi, _ = bits.Add64(z.hi, 0, carry)
}

// AddUInt192 merges another accumulator into z. Used as the exact
// parallel-combine step.
func (z *UInt192) AddUInt192(o UInt192) {
	var carry uint64
	z.lo, carry = bits.Add64(z.lo, o.lo, 0)
	z.mid, carry = bits.Add64(z.mid, o.mid, carry)
	z.hi, _ = bits.Add64(z.hi, o.hi, carry)
}

// IsZero reports whether the accumulator holds zero.
func (z UInt192) IsZero() bool {
	return z.lo == 0 && z.mid == 0 && z.hi == 0
}

// Float64 converts to the nearest representable float64. Lossy but total.
func (z UInt192) Float64() float64 {
	return float64(z.hi)*0x1p128 + float64(z.mid)*0x1p64 + float64(z.lo)
}

// BigInt converts to an exact arbitrary-precision integer. Always succeeds.
func (z UInt192) BigInt() *big.Int {
	b := new(big.Int).SetUint64(z.hi)
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(z.mid))
	b.Lsh(b, 64)
	b.Or(b, new(big.Int).SetUint64(z.lo))

	return b
}

// Uint64 returns the exact value as uint64, or ErrOverflow when the value
// does not fit in 64 bits.
func (z UInt192) Uint64() (uint64, error) {
	if z.mid != 0 || z.hi != 0 {
		return 0, ErrOverflow
	}

	return z.lo, nil
}

// Int64 returns the exact value as int64, or ErrOverflow when the value
// exceeds math.MaxInt64.
func (z UInt192) Int64() (int64, error) {
	if z.mid != 0 || z.hi != 0 || z.lo > math.MaxInt64 {
		return 0, ErrOverflow
	}

	return int64(z.lo), nil
}
