// SPDX-License-Identifier: MIT
// Package htest: one-sample and Welch two-sample t-tests.
package htest

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/momenta/moment"
)

// OneSampleTTest tests whether the mean of xs equals mu.
//
// The statistic is t = (mean − mu)/√(s²/n) with n−1 degrees of freedom,
// where s² is the sample (Bessel-corrected) variance. Requires n ≥ 2 and a
// sample with nonzero spread; a constant sample yields ErrZeroVariance.
func OneSampleTTest(xs []float64, mu float64, alt Alternative) (TestResult, error) {
	if err := checkSample(xs, 2); err != nil {
		return TestResult{}, err
	}
	if err := checkAlternative(alt); err != nil {
		return TestResult{}, err
	}

	v := moment.VarianceOf(xs...)
	s2 := v.Value()
	if s2 == 0 {
		return TestResult{}, ErrZeroVariance
	}
	n := float64(v.Count())
	df := n - 1
	t := (v.Mean() - mu) / math.Sqrt(s2/n)

	return TestResult{
		Statistic: t,
		PValue:    studentPValue(t, df, alt),
		DF:        df,
		N1:        len(xs),
	}, nil
}

// WelchTTest tests whether xs and ys share a mean, without assuming equal
// variances. Degrees of freedom follow the Welch–Satterthwaite
// approximation:
//
//	df = (vx/nx + vy/ny)² / ((vx/nx)²/(nx−1) + (vy/ny)²/(ny−1))
//
// Requires at least two observations per sample; when both samples are
// constant the statistic is undefined and ErrZeroVariance is returned.
func WelchTTest(xs, ys []float64, alt Alternative) (TestResult, error) {
	if err := checkSample(xs, 2); err != nil {
		return TestResult{}, err
	}
	if err := checkSample(ys, 2); err != nil {
		return TestResult{}, err
	}
	if err := checkAlternative(alt); err != nil {
		return TestResult{}, err
	}

	vx, vy := moment.VarianceOf(xs...), moment.VarianceOf(ys...)
	nx, ny := float64(vx.Count()), float64(vy.Count())
	sx, sy := vx.Value()/nx, vy.Value()/ny
	se2 := sx + sy
	if se2 == 0 {
		return TestResult{}, ErrZeroVariance
	}
	df := se2 * se2 / (sx*sx/(nx-1) + sy*sy/(ny-1))
	t := (vx.Mean() - vy.Mean()) / math.Sqrt(se2)

	return TestResult{
		Statistic: t,
		PValue:    studentPValue(t, df, alt),
		DF:        df,
		N1:        len(xs),
		N2:        len(ys),
	}, nil
}

// studentPValue converts a t statistic with df degrees of freedom into a
// p-value under the given alternative.
func studentPValue(t, df float64, alt Alternative) float64 {
	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	switch alt {
	case Less:
		return dist.CDF(t)
	case Greater:
		return 1 - dist.CDF(t)
	default:
		p := 2 * dist.CDF(-math.Abs(t))
		if p > 1 {
			p = 1
		}

		return p
	}
}
