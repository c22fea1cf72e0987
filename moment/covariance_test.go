package moment_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/momenta/moment"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCovariance_PerfectLine pins covariance and correlation on y = 2x+1.
func TestCovariance_PerfectLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{3, 5, 7, 9, 11}

	cov := moment.CovarianceOf(xs, ys)

	// Var(x) sample = 2.5, Cov(x,y) = 2·Var(x) = 5.
	assert.InDelta(t, 5.0, cov.Value(), 1e-12)
	assert.InDelta(t, 4.0, cov.Biased(true).Value(), 1e-12)
	assert.InDelta(t, 1.0, cov.Correlation(), 1e-12, "a perfect line correlates at 1")
	assert.InDelta(t, 3.0, cov.MeanX(), 1e-12)
	assert.InDelta(t, 7.0, cov.MeanY(), 1e-12)
}

// TestCovariance_SignAndIndependence checks a negative trend and a flat one.
func TestCovariance_SignAndIndependence(t *testing.T) {
	xs := []float64{1, 2, 3, 4}

	down := moment.CovarianceOf(xs, []float64{8, 6, 4, 2})
	assert.InDelta(t, -1.0, down.Correlation(), 1e-12)
	assert.Negative(t, down.Value())

	flat := moment.CovarianceOf(xs, []float64{5, 5, 5, 5})
	assert.Equal(t, 0.0, flat.Value(), "no co-variation with a constant")
	assert.True(t, math.IsNaN(flat.Correlation()), "zero spread in y is a 0/0 guard")
}

// TestCovariance_EdgeCounts verifies the n=0 / n=1 contract.
func TestCovariance_EdgeCounts(t *testing.T) {
	cov := moment.NewCovariance()
	assert.True(t, math.IsNaN(cov.Value()))
	assert.True(t, math.IsNaN(cov.MeanX()))

	cov.Add(2, 3)
	assert.True(t, math.IsNaN(cov.Value()), "n=1 sample covariance is NaN")
	assert.Equal(t, 0.0, cov.Biased(true).Value(), "n=1 population covariance is 0")
	assert.True(t, math.IsNaN(cov.Correlation()))
}

// TestCovariance_CombineEqualsWhole splits the pairs and merges.
func TestCovariance_CombineEqualsWhole(t *testing.T) {
	xs := []float64{1, 4, 2, 8, 5, 7, 3, 6}
	ys := []float64{2, 9, 3, 14, 11, 13, 5, 12}
	whole := moment.CovarianceOf(xs, ys)

	for cut := 0; cut <= len(xs); cut++ {
		a := moment.CovarianceOf(xs[:cut], ys[:cut])
		a.Combine(moment.CovarianceOf(xs[cut:], ys[cut:]))

		assert.Equal(t, whole.Count(), a.Count(), "cut=%d", cut)
		assert.InDelta(t, whole.Value(), a.Value(), 1e-10, "cut=%d", cut)
		assert.InDelta(t, whole.Correlation(), a.Correlation(), 1e-10, "cut=%d", cut)
	}
}

// TestCovariance_CombineEmptyIdentity mirrors the univariate guarantee.
func TestCovariance_CombineEmptyIdentity(t *testing.T) {
	cov := moment.CovarianceOf([]float64{1, 2, 3}, []float64{4, 6, 5})
	want := cov.Value()

	cov.Combine(moment.NewCovariance())
	assert.Equal(t, want, cov.Value())

	empty := moment.NewCovariance()
	empty.Combine(cov)
	assert.Equal(t, want, empty.Value())
}

// TestCovarianceOfRange checks subrange construction and bounds validation
// against the shorter of the two slices.
func TestCovarianceOfRange(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5}
	ys := []float64{2, 4, 6, 8, 10}

	sub, err := moment.CovarianceOfRange(xs, ys, 1, 4)
	require.NoError(t, err)
	whole := moment.CovarianceOf(xs[1:4], ys[1:4])
	assert.Equal(t, whole.Value(), sub.Value())
	assert.Equal(t, int64(3), sub.Count())

	_, err = moment.CovarianceOfRange(xs, ys[:3], 2, 4)
	assert.ErrorIs(t, err, moment.ErrRange, "bounds must respect the shorter slice")

	_, err = moment.CovarianceOfRange(xs, ys, 3, 2)
	assert.ErrorIs(t, err, moment.ErrRange)
}
