package moment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/momenta/moment"
	"github.com/stretchr/testify/assert"
)

// merged builds Moments over xs[:cut] and xs[cut:] separately and combines.
func merged(xs []float64, cut int) *moment.Moments {
	a := moment.MomentsOf(xs[:cut]...)
	b := moment.MomentsOf(xs[cut:]...)
	a.Combine(b)

	return a
}

// TestCombine_EqualsWholeSequence checks the central merge property: for
// every split point, combining partition accumulators matches accumulating
// the whole sequence, within floating-point tolerance.
func TestCombine_EqualsWholeSequence(t *testing.T) {
	xs := []float64{2.5, -1, 0, 4, 4, 9.75, -3.5, 8, 1, 1, 6, -2.25}
	whole := moment.MomentsOf(xs...)

	for cut := 0; cut <= len(xs); cut++ {
		m := merged(xs, cut)

		assert.Equal(t, whole.Count(), m.Count(), "cut=%d", cut)
		assert.InDelta(t, whole.Mean(), m.Mean(), 1e-12, "cut=%d", cut)
		assert.InDelta(t, whole.Variance(), m.Variance(), 1e-10, "cut=%d", cut)
		assert.InDelta(t, whole.Skewness(), m.Skewness(), 1e-10, "cut=%d", cut)
		assert.InDelta(t, whole.Kurtosis(), m.Kurtosis(), 1e-9, "cut=%d", cut)
	}
}

// TestCombine_Commutative verifies A∪B equals B∪A up to rounding.
func TestCombine_Commutative(t *testing.T) {
	xsA := []float64{1, 2, 3, 4}
	xsB := []float64{10, 20, 30}

	ab := moment.MomentsOf(xsA...)
	ab.Combine(moment.MomentsOf(xsB...))

	ba := moment.MomentsOf(xsB...)
	ba.Combine(moment.MomentsOf(xsA...))

	assert.InDelta(t, ab.Mean(), ba.Mean(), 1e-12)
	assert.InDelta(t, ab.Variance(), ba.Variance(), 1e-10)
	assert.InDelta(t, ab.Skewness(), ba.Skewness(), 1e-10)
	assert.InDelta(t, ab.Kurtosis(), ba.Kurtosis(), 1e-10)
}

// TestCombine_ThreeWayAssociative checks (A∪B)∪C against A∪(B∪C).
func TestCombine_ThreeWayAssociative(t *testing.T) {
	xsA := []float64{5, 6, 7}
	xsB := []float64{-2, 0.5}
	xsC := []float64{100, 101, 99, 98}

	left := moment.MomentsOf(xsA...)
	left.Combine(moment.MomentsOf(xsB...))
	left.Combine(moment.MomentsOf(xsC...))

	bc := moment.MomentsOf(xsB...)
	bc.Combine(moment.MomentsOf(xsC...))
	right := moment.MomentsOf(xsA...)
	right.Combine(bc)

	assert.InDelta(t, left.Mean(), right.Mean(), 1e-12)
	assert.InDelta(t, left.Variance(), right.Variance(), 1e-9)
	assert.InDelta(t, left.Kurtosis(), right.Kurtosis(), 1e-9)
}

// TestCombine_EmptyIdentity verifies that merging with a fresh accumulator
// is a no-op in both directions and never introduces NaN.
func TestCombine_EmptyIdentity(t *testing.T) {
	m := moment.MomentsOf(1, 2, 3, 4, 10)
	wantMean, wantVar := m.Mean(), m.Variance()

	m.Combine(moment.NewMoments())
	assert.Equal(t, wantMean, m.Mean(), "empty right operand must not change state")
	assert.Equal(t, wantVar, m.Variance())
	assert.False(t, math.IsNaN(m.Mean()), "empty merge must not inject NaN")

	empty := moment.NewMoments()
	empty.Combine(m)
	assert.Equal(t, wantMean, empty.Mean(), "merging into empty adopts the other state")
	assert.Equal(t, wantVar, empty.Variance())

	// nil counts as empty.
	m.Combine(nil)
	assert.Equal(t, wantMean, m.Mean())
}

// TestCombine_VarianceAndMean covers the lighter accumulators' merges.
func TestCombine_VarianceAndMean(t *testing.T) {
	xs := []float64{3, 1, 4, 1, 5, 9, 2, 6}
	whole := moment.VarianceOf(xs...)

	a := moment.VarianceOf(xs[:3]...)
	a.Combine(moment.VarianceOf(xs[3:]...))
	assert.InDelta(t, whole.Value(), a.Value(), 1e-10)
	assert.InDelta(t, whole.Mean(), a.Mean(), 1e-12)

	mWhole := moment.MeanOf(xs...)
	mA := moment.MeanOf(xs[:5]...)
	mA.Combine(moment.MeanOf(xs[5:]...))
	assert.InDelta(t, mWhole.Value(), mA.Value(), 1e-12)
	assert.Equal(t, mWhole.Count(), mA.Count())
}

// TestCombine_BiasFlagIndependence merges accumulators built with different
// bias settings and confirms the merged state matches an all-default build;
// only the read differs.
func TestCombine_BiasFlagIndependence(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 10, -5, 7}

	biased := moment.VarianceOf(xs[:4]...).Biased(true)
	plain := moment.VarianceOf(xs[4:]...)
	biased.Combine(plain)

	reference := moment.VarianceOf(xs...)

	// Raw state comparison through both read policies.
	assert.InDelta(t, reference.Biased(true).Value(), biased.Value(), 1e-10,
		"merged biased read must match reference population variance")
	assert.InDelta(t, reference.Biased(false).Value(), biased.Biased(false).Value(), 1e-10,
		"flipping the flag after merge must match reference sample variance")
	assert.Equal(t, reference.Count(), biased.Count())
}

// TestCombine_SingletonPartitions folds a sequence as n singleton merges;
// the result must match plain accumulation.
func TestCombine_SingletonPartitions(t *testing.T) {
	xs := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	whole := moment.VarianceOf(xs...)

	acc := moment.NewVariance()
	for _, x := range xs {
		acc.Combine(moment.VarianceOf(x))
	}

	assert.Equal(t, whole.Count(), acc.Count())
	assert.InDelta(t, whole.Mean(), acc.Mean(), 1e-12)
	assert.InDelta(t, whole.Value(), acc.Value(), 1e-10)
}
