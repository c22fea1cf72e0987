// Package exact computes descriptive statistics over int64 input with
// exact intermediate arithmetic: the sum and sum-of-squares are held in
// fixed-width wide integers (momenta/wideint) and carry no rounding error
// whatsoever. Floating point appears only in the final read.
//
// 🚀 Why an exact family?
//
//	Integer domains admit exact arithmetic, so instead of incrementally
//	updating floating-point moments, these accumulators keep
//	n, Σx (Int128) and Σx² (UInt192) bit-for-bit. Variance is then read
//	through the algebraic identity
//
//	  var = (n·Σx² − (Σx)²) / (n·(n−1))   // sample; n² for population
//
//	evaluated in exact integer arithmetic with a single float64 division at
//	the very end. The result agrees with the Welford accumulator but is
//	free of incremental rounding error.
//
// ✨ Key features:
//   - Combine is plain exact addition: associative and commutative exactly,
//     not just up to rounding — ideal for parallel folds
//   - Sum / SumSquares expose the raw state as *big.Int; Int64 reads fail
//     with wideint.ErrOverflow instead of truncating
//   - Biased(bool) affects only the final division, never merge
//     compatibility
//   - counts up to 2^63 observations are supported; the count itself is
//     deliberately unchecked within that domain
//
// ⚙️ Usage:
//
//	v := exact.VarianceOf(xs...)    // xs []int64
//	sample := v.Value()             // float64, NaN for n < 2
//	raw := v.SumSquares()           // *big.Int, exact
//
// Like every momenta accumulator, these carry no locks: one per goroutine,
// Combine under exclusive access.
package exact
