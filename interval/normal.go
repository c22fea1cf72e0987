// SPDX-License-Identifier: MIT
// Package interval: normal-sample intervals for mean and variance.
package interval

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// MeanInterval returns the two-sided Student's t interval for the mean of a
// normal sample, at confidence level 1−alpha:
//
//	mean ± t(n−1, 1−alpha/2) · √(variance/n)
//
// Inputs are the accumulator reads — sample mean, sample variance and
// count. Preconditions: n > 1 (ErrSampleSize), variance finite and
// non-negative (ErrVariance), alpha strictly inside (0,1) (ErrAlpha).
func MeanInterval(mean, variance float64, n int64, alpha float64) (Interval, error) {
	if n < 2 {
		return Interval{}, ErrSampleSize
	}
	if math.IsNaN(variance) || math.IsInf(variance, 0) || variance < 0 {
		return Interval{}, ErrVariance
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return Interval{}, ErrAlpha
	}

	t := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: float64(n - 1)}.Quantile(1 - alpha/2)
	half := t * math.Sqrt(variance/float64(n))

	return Interval{Lower: mean - half, Upper: mean + half}, nil
}

// VarianceInterval returns the two-sided chi-squared interval for the
// variance of a normal sample, at confidence level 1−alpha:
//
//	[ (n−1)s²/χ²(n−1, 1−alpha/2),  (n−1)s²/χ²(n−1, alpha/2) ]
//
// Same preconditions as MeanInterval.
func VarianceInterval(variance float64, n int64, alpha float64) (Interval, error) {
	if n < 2 {
		return Interval{}, ErrSampleSize
	}
	if math.IsNaN(variance) || math.IsInf(variance, 0) || variance < 0 {
		return Interval{}, ErrVariance
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return Interval{}, ErrAlpha
	}

	chi := distuv.ChiSquared{K: float64(n - 1)}
	scaled := float64(n-1) * variance

	return Interval{
		Lower: scaled / chi.Quantile(1-alpha/2),
		Upper: scaled / chi.Quantile(alpha/2),
	}, nil
}
