package wideint_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/momenta/wideint"
)

// BenchmarkInt128_Add measures the signed fold hot path.
func BenchmarkInt128_Add(b *testing.B) {
	var z wideint.Int128
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.Add(int64(i) - math.MaxInt32)
	}
	_ = z.Float64()
}

// BenchmarkUInt192_AddSquare measures the exact square-and-fold hot path.
func BenchmarkUInt192_AddSquare(b *testing.B) {
	var z wideint.UInt192
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.AddSquare(int64(i)*2654435761 ^ math.MinInt32)
	}
	_ = z.Float64()
}

// BenchmarkUInt192_Merge measures the pairwise combine step.
func BenchmarkUInt192_Merge(b *testing.B) {
	part := wideint.UInt192OfSquare(math.MaxInt64)
	var z wideint.UInt192
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		z.AddUInt192(part)
	}
	_ = z.IsZero()
}
