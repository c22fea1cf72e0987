// Package rank assigns 1-based ranks to float64 data with explicit control
// over how ties are resolved.
//
// 🚀 What is a rank transform?
//
//	Replacing each value by its position in the sorted order. Rank-based
//	statistics (Spearman correlation, the Wilcoxon rank-sum test) use the
//	transform to stay robust against outliers and non-normality.
//
// ✨ Tie policies (matching the classic rankdata semantics):
//   - Average — tied values share the mean of the ranks they span (default
//     for rank-sum statistics)
//   - Min     — competition ranking: ties take the smallest spanned rank
//   - Max     — ties take the largest spanned rank
//   - Dense   — like Min, but the next distinct value follows immediately
//   - Ordinal — every value gets a distinct rank in input order
//
// ⚙️ Usage:
//
//	ranks, err := rank.Ranks([]float64{0, 2, 3, 2}, rank.Average)
//	// ranks = [1, 2.5, 4, 2.5]
//
// NaN input is rejected with ErrNaN: ranks over a partial order are not
// well defined, and silently sorting NaN would corrupt downstream tests.
package rank
