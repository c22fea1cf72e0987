package exact_test

import (
	"testing"

	"github.com/katalvlaran/momenta/exact"
)

// benchInts returns a deterministic pseudo-random int64 sample of length n.
func benchInts(n int) []int64 {
	xs := make([]int64, n)
	state := uint64(7)
	for i := range xs {
		state = state*6364136223846793005 + 1442695040888963407
		xs[i] = int64(state)
	}

	return xs
}

// BenchmarkVariance_Add measures the exact fold (one limb add + one
// 64×64→128 multiply-add per observation).
func BenchmarkVariance_Add(b *testing.B) {
	xs := benchInts(1024)
	v := exact.NewVariance()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v.Add(xs[i&1023])
	}
	_ = v.Count()
}

// BenchmarkVariance_Value measures the big-int read path.
func BenchmarkVariance_Value(b *testing.B) {
	v := exact.VarianceOf(benchInts(4096)...)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = v.Value()
	}
}

// BenchmarkVariance_Combine measures the exact merge.
func BenchmarkVariance_Combine(b *testing.B) {
	part := exact.VarianceOf(benchInts(512)...)
	acc := exact.NewVariance()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		acc.Combine(part)
	}
	_ = acc.Count()
}
