// SPDX-License-Identifier: MIT
// Package interval: binomial proportion intervals.
package interval

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

// stdNormal is the shared N(0,1) used for z quantiles.
var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// Interval computes the confidence interval for a binomial proportion with
// the given strategy, at confidence level 1−alpha.
//
// Preconditions, checked in order before any computation:
//   - trials > 0 (ErrTrials)
//   - 0 ≤ successes ≤ trials (ErrSuccesses)
//   - alpha strictly inside (0,1) and not NaN (ErrAlpha)
//
// An unknown tag yields ErrMethod.
func (m BinomialMethod) Interval(trials, successes int, alpha float64) (Interval, error) {
	if err := validateBinomial(trials, successes, alpha); err != nil {
		return Interval{}, err
	}

	switch m {
	case WilsonScore:
		return wilsonScore(trials, successes, alpha), nil
	case NormalApproximation:
		return normalApproximation(trials, successes, alpha), nil
	case AgrestiCoull:
		return agrestiCoull(trials, successes, alpha), nil
	case ClopperPearson:
		return clopperPearson(trials, successes, alpha), nil
	case Jeffreys:
		return jeffreys(trials, successes, alpha), nil
	default:
		return Interval{}, ErrMethod
	}
}

// validateBinomial enforces the shared preconditions for every strategy.
func validateBinomial(trials, successes int, alpha float64) error {
	if trials <= 0 {
		return ErrTrials
	}
	if successes < 0 || successes > trials {
		return ErrSuccesses
	}
	if math.IsNaN(alpha) || alpha <= 0 || alpha >= 1 {
		return ErrAlpha
	}

	return nil
}

// zCrit returns the two-sided critical value Φ⁻¹(1−alpha/2).
func zCrit(alpha float64) float64 {
	return stdNormal.Quantile(1 - alpha/2)
}

// wilsonScore inverts the score test:
//
//	center = (p̂ + z²/2n) / (1 + z²/n)
//	half   = z·√(p̂(1−p̂)/n + z²/4n²) / (1 + z²/n)
//
// The construction keeps the bounds inside [0,1] without clipping.
func wilsonScore(trials, successes int, alpha float64) Interval {
	n := float64(trials)
	p := float64(successes) / n
	z := zCrit(alpha)
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	return Interval{Lower: center - half, Upper: center + half}
}

// normalApproximation is the Wald interval p̂ ± z·√(p̂(1−p̂)/n). The
// approximation can overshoot [0,1], so the result is clipped; extreme
// counts (x=0, x=n) legitimately collapse to a degenerate interval.
func normalApproximation(trials, successes int, alpha float64) Interval {
	n := float64(trials)
	p := float64(successes) / n
	half := zCrit(alpha) * math.Sqrt(p*(1-p)/n)

	return clip01(Interval{Lower: p - half, Upper: p + half})
}

// agrestiCoull recenters Wald on ñ = n + z², p̃ = (x + z²/2)/ñ; clipped
// into [0,1] like the plain approximation.
func agrestiCoull(trials, successes int, alpha float64) Interval {
	z := zCrit(alpha)
	z2 := z * z
	nTilde := float64(trials) + z2
	pTilde := (float64(successes) + z2/2) / nTilde
	half := z * math.Sqrt(pTilde*(1-pTilde)/nTilde)

	return clip01(Interval{Lower: pTilde - half, Upper: pTilde + half})
}

// clopperPearson is the exact equal-tailed inversion:
//
//	lower = BetaInv(alpha/2; x, n−x+1),  0 when x = 0
//	upper = BetaInv(1−alpha/2; x+1, n−x), 1 when x = n
func clopperPearson(trials, successes int, alpha float64) Interval {
	n := float64(trials)
	x := float64(successes)

	lower := 0.0
	if successes > 0 {
		lower = distuv.Beta{Alpha: x, Beta: n - x + 1}.Quantile(alpha / 2)
	}
	upper := 1.0
	if successes < trials {
		upper = distuv.Beta{Alpha: x + 1, Beta: n - x}.Quantile(1 - alpha/2)
	}

	return Interval{Lower: lower, Upper: upper}
}

// jeffreys is the equal-tailed interval of the Beta(x+½, n−x+½) posterior.
// The x=0 and x=n cases pin the respective bound to exactly 0 or 1: the
// true coverage there is degenerate and a non-trivial bound would be wrong.
func jeffreys(trials, successes int, alpha float64) Interval {
	n := float64(trials)
	x := float64(successes)
	post := distuv.Beta{Alpha: x + 0.5, Beta: n - x + 0.5}

	lower := 0.0
	if successes > 0 {
		lower = post.Quantile(alpha / 2)
	}
	upper := 1.0
	if successes < trials {
		upper = post.Quantile(1 - alpha/2)
	}

	return Interval{Lower: lower, Upper: upper}
}

// clip01 clamps both bounds into [0,1].
func clip01(iv Interval) Interval {
	return Interval{
		Lower: math.Max(0, iv.Lower),
		Upper: math.Min(1, iv.Upper),
	}
}
