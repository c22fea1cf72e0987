// Package moment computes streaming (single-pass) descriptive statistics
// over float64 input: mean, variance, standard deviation, skewness,
// kurtosis and covariance — with a pairwise merge for parallel reduction.
//
// 🚀 What is moment?
//
//	Every accumulator here uses the Welford updating identity, which keeps
//	cancellation error bounded where the naive "sum of squares minus square
//	of sum" formula degrades with the magnitude of the mean. Combine
//	implements the Chan et al. pairwise update, so two accumulators built
//	over disjoint partitions merge into a statistically correct accumulator
//	over the union without replaying any data.
//
// ✨ Key features:
//   - Add(x): O(1) update, shared delta/delta-over-n intermediates
//   - Combine(o): associative & commutative up to floating-point rounding,
//     NaN-safe against empty operands
//   - Of / OfRange bulk constructors (tight loops, same results as Add)
//   - Biased(bool): Bessel correction toggled at read time only — the flag
//     is not part of the mergeable state
//   - n=0 reads are NaN by contract, not by accident
//
// ⚙️ Usage:
//
//	v := moment.NewVariance()
//	for _, x := range xs {
//		v.Add(x)
//	}
//	sample := v.Value()                  // Σ(x-m)² / (n-1)
//	population := v.Biased(true).Value() // Σ(x-m)² / n
//
// Parallel folds: build one accumulator per partition (one goroutine each),
// then Combine under exclusive access to both operands. No accumulator
// carries internal synchronization.
//
// For integer input where exactness matters, see momenta/exact.
package moment
