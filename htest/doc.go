// Package htest runs classical hypothesis tests over float64 samples:
// one-sample and Welch two-sample t-tests, and the Wilcoxon/Mann–Whitney
// rank-sum test.
//
// 🚀 What is htest?
//
//	The inference layer of momenta. Location tests answer "is the mean
//	(or distribution) of this sample shifted?" — parametrically through
//	Student's t, or rank-based when normality is off the table.
//
// ✨ Key features:
//   - Alternative hypotheses: TwoSided, Less, Greater
//   - Welch–Satterthwaite degrees of freedom (no equal-variance assumption)
//   - Rank-sum uses the normal approximation with the standard tie
//     correction, built on momenta/rank
//   - Degenerate inputs (zero spread, too-short samples, NaN) are rejected
//     with sentinel errors, never returned as quiet NaN statistics
//
// ⚙️ Usage:
//
//	res, err := htest.WelchTTest(before, after, htest.TwoSided)
//	if err != nil { ... }
//	if res.PValue < 0.05 {
//		// reject the null at the 5% level
//	}
//
// P-values come from gonum.org/v1/gonum/stat/distuv CDFs (Student's t and
// the standard normal).
package htest
