// Package interval builds confidence intervals from accumulator output:
// binomial proportion intervals and normal-sample intervals for the mean
// and the variance.
//
// 🚀 What is interval?
//
//	The read-out layer on top of momenta's accumulators. A binomial method
//	takes (trials, successes, alpha), a normal method takes the accumulator
//	triple (mean, variance, n) plus alpha, and both return an immutable
//	Interval with Lower ≤ Upper.
//
// ✨ Binomial strategies (one closed set, selected by tag):
//   - WilsonScore         — score inversion, good small-sample coverage
//   - NormalApproximation — Wald interval, clipped into [0,1]
//   - AgrestiCoull        — adjusted Wald, clipped into [0,1]
//   - ClopperPearson      — exact beta-quantile tail inversion
//   - Jeffreys            — Beta(x+½, n−x+½) equal-tailed, with the x=0
//     and x=n boundaries pinned to 0 and 1
//
// ⚙️ Usage:
//
//	iv, err := interval.WilsonScore.Interval(10, 5, 0.05)
//	// iv ≈ {0.23659, 0.76341}
//
//	m := moment.VarianceOf(xs...)
//	iv, err = interval.MeanInterval(m.Mean(), m.Value(), m.Count(), 0.05)
//
// Every method validates its arguments eagerly — trials > 0,
// 0 ≤ successes ≤ trials, alpha strictly inside (0,1) and not NaN, n > 1
// for the normal-sample methods — and returns a sentinel error before any
// computation when a precondition fails.
//
// Quantiles (normal, Student's t, chi-squared, beta) come from
// gonum.org/v1/gonum/stat/distuv.
package interval
