// Package wideint provides fixed-width wide integers — a signed 128-bit
// Int128 and an unsigned 192-bit UInt192 — built from uint64 limbs with
// explicit carry propagation.
//
// 🚀 What is wideint?
//
//	The exact-arithmetic substrate of momenta: accumulators wide enough to
//	sum up to 2^63 values (Int128) or 2^63 squared int64 values (UInt192)
//	without overflow and without a single bit of rounding error.
//
// ✨ Key features:
//   - Add / AddSquare fold int64 values in exactly (64×64→128 multiply)
//   - AddInt128 / AddUInt192 merge two accumulators for parallel reduction
//   - Float64 rounds to the nearest double; BigInt is always exact
//   - Int64 / Uint64 / Int32 narrow reads fail with ErrOverflow instead of
//     silently truncating
//
// ⚙️ Usage:
//
//	var ss wideint.UInt192
//	for _, v := range values {
//		ss.AddSquare(v) // exact Σ v², no overflow for ≤ 2^63 inputs
//	}
//	exact := ss.BigInt()      // always succeeds
//	asInt, err := ss.Int64()  // ErrOverflow when Σ v² ≥ 2^63
//
// The zero value of both types is a ready-to-use zero accumulator. Neither
// type is safe for concurrent mutation; confine each accumulator to one
// goroutine and merge under exclusive access.
//
// wideint is deliberately not a bignum: the width is fixed and sized to the
// documented input domain, so the hot path is three machine adds at most.
package wideint
