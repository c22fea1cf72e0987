// SPDX-License-Identifier: MIT
// Package htest: Wilcoxon/Mann–Whitney rank-sum test.
package htest

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/momenta/rank"
)

// RankSum runs the Wilcoxon rank-sum (Mann–Whitney) test of whether xs and
// ys come from the same distribution, against a location-shift alternative.
//
// Ranks are assigned over the pooled sample with average ranks for ties
// (rank.Average). The statistic reported is the normal-approximation z
// score of W = Σ ranks(xs), with the standard tie correction applied to
// the null variance:
//
//	Var(W) = n1·n2/12 · ( N+1 − Σ(t³−t) / (N·(N−1)) )
//
// where t runs over the sizes of tied groups. Less means xs is
// stochastically smaller than ys. Both samples need at least one
// observation; a pooled sample made of a single tied value has zero null
// variance and yields ErrZeroVariance.
func RankSum(xs, ys []float64, alt Alternative) (TestResult, error) {
	if err := checkSample(xs, 1); err != nil {
		return TestResult{}, err
	}
	if err := checkSample(ys, 1); err != nil {
		return TestResult{}, err
	}
	if err := checkAlternative(alt); err != nil {
		return TestResult{}, err
	}

	n1, n2 := len(xs), len(ys)
	pooled := make([]float64, 0, n1+n2)
	pooled = append(pooled, xs...)
	pooled = append(pooled, ys...)
	ranks, err := rank.Ranks(pooled, rank.Average)
	if err != nil {
		return TestResult{}, err
	}

	var w float64
	for _, r := range ranks[:n1] {
		w += r
	}

	fn1, fn2 := float64(n1), float64(n2)
	total := fn1 + fn2
	mean := fn1 * (total + 1) / 2
	variance := fn1 * fn2 / 12 * (total + 1 - tieTerm(pooled)/(total*(total-1)))
	if variance <= 0 {
		return TestResult{}, ErrZeroVariance
	}
	z := (w - mean) / math.Sqrt(variance)

	return TestResult{
		Statistic: z,
		PValue:    normalPValue(z, alt),
		DF:        math.NaN(),
		N1:        n1,
		N2:        n2,
	}, nil
}

// tieTerm returns Σ(t³−t) over the sizes t of tied groups in values.
// Untied observations contribute nothing (1³−1 = 0).
func tieTerm(values []float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	var sum float64
	for i := 0; i < len(sorted); {
		j := i + 1
		for j < len(sorted) && sorted[j] == sorted[i] {
			j++
		}
		t := float64(j - i)
		sum += t*t*t - t
		i = j
	}

	return sum
}

// normalPValue converts a z statistic into a p-value under the given
// alternative using the standard normal CDF.
func normalPValue(z float64, alt Alternative) float64 {
	dist := distuv.Normal{Mu: 0, Sigma: 1}
	switch alt {
	case Less:
		return dist.CDF(z)
	case Greater:
		return 1 - dist.CDF(z)
	default:
		p := 2 * dist.CDF(-math.Abs(z))
		if p > 1 {
			p = 1
		}

		return p
	}
}
