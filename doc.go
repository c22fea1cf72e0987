// Package momenta is your toolbox for descriptive statistics done right —
// streaming moments, exact integer accumulation, rank transforms,
// confidence intervals and hypothesis tests.
//
// 🚀 What is momenta?
//
//	A small, mergeable-by-design statistics library that brings together:
//		• Streaming moments: mean, variance, skewness, kurtosis in one pass
//		• Merge algebra: pairwise Combine (Chan et al.) for parallel folds
//		• Exact integer statistics: overflow-free wide-integer sums
//		• Wide integers: Int128 / UInt192 with explicit carry propagation
//		• Rank transforms: five tie-handling methods
//		• Confidence intervals: Wilson, Agresti–Coull, Jeffreys & friends
//		• Hypothesis tests: t-tests and the Wilcoxon rank-sum
//
// ✨ Why choose momenta?
//
//   - Numerically honest – Welford updates, no catastrophic cancellation
//   - Parallel-ready – every accumulator merges; exact ones merge exactly
//   - Pure Go core – quantiles delegate to gonum, nothing else imported
//   - Predictable – sentinel errors, NaN as a documented first-class result
//
// Everything is organized under flat subpackages:
//
//	wideint/  — Int128 & UInt192 fixed-width accumulators
//	moment/   — streaming float64 moments + covariance, with Combine
//	exact/    — exact int64 sum / sum-of-squares / variance on wideint
//	rank/     — rank transformation with tie policies
//	interval/ — binomial & normal-sample confidence intervals
//	htest/    — t-tests and rank-sum test
//
// Quick taste:
//
//	v := moment.NewVariance()
//	for _, x := range data {
//		v.Add(x)
//	}
//	fmt.Println(v.Value()) // sample variance, NaN for n < 2
//
// Accumulators carry no locks: build one per goroutine, Combine at the end.
//
//	go get github.com/katalvlaran/momenta
package momenta
