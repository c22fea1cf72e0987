// SPDX-License-Identifier: MIT
// Package rank: the rank transformation.
package rank

import (
	"errors"
	"math"
	"sort"
)

// Sentinel errors for rank operations.
var (
	// ErrNaN indicates a NaN value in the input; ranks are undefined then.
	ErrNaN = errors.New("rank: NaN value in input")
	// ErrTies indicates an unknown tie-resolution method.
	ErrTies = errors.New("rank: unknown ties method")
)

// Ties selects how equal values share ranks.
type Ties int

const (
	// Average assigns each tied value the mean of the ranks the tie spans.
	Average Ties = iota
	// Min assigns each tied value the smallest spanned rank (competition).
	Min
	// Max assigns each tied value the largest spanned rank.
	Max
	// Dense assigns ranks like Min but without gaps after a tie.
	Dense
	// Ordinal assigns distinct consecutive ranks in input order.
	Ordinal
)

// Ranks returns the 1-based rank of every element of xs under the given
// tie policy. The input is not modified; an empty input yields an empty
// result. Returns ErrNaN when xs contains NaN and ErrTies for an unknown
// policy, in that order of priority.
//
// Complexity: O(n log n) time, O(n) extra space.
func Ranks(xs []float64, ties Ties) ([]float64, error) {
	for _, x := range xs {
		if math.IsNaN(x) {
			return nil, ErrNaN
		}
	}
	if ties < Average || ties > Ordinal {
		return nil, ErrTies
	}

	n := len(xs)
	out := make([]float64, n)
	if n == 0 {
		return out, nil
	}

	// Stable sort of an index permutation keeps equal values in input
	// order, which is exactly the Ordinal contract.
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	if ties == Ordinal {
		for pos, i := range idx {
			out[i] = float64(pos + 1)
		}

		return out, nil
	}

	// Walk runs of equal values in sorted order and assign per policy.
	dense := 0
	for lo := 0; lo < n; {
		hi := lo + 1
		for hi < n && xs[idx[hi]] == xs[idx[lo]] {
			hi++
		}
		dense++

		var r float64
		switch ties {
		case Average:
			r = float64(lo+hi+1) / 2 // mean of ranks lo+1 .. hi
		case Min:
			r = float64(lo + 1)
		case Max:
			r = float64(hi)
		case Dense:
			r = float64(dense)
		}
		for k := lo; k < hi; k++ {
			out[idx[k]] = r
		}
		lo = hi
	}

	return out, nil
}
