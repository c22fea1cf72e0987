package moment_test

import (
	"fmt"

	"github.com/katalvlaran/momenta/moment"
)

// ExampleMean demonstrates the canonical streaming scenario: feed values
// one at a time, read mean, sum and count at the end.
func ExampleMean() {
	m := moment.NewMean()
	for _, x := range []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10} {
		m.Add(x)
	}

	fmt.Printf("count=%d mean=%.1f sum=%.1f\n", m.Count(), m.Value(), m.Sum())
	// Output:
	// count=10 mean=5.5 sum=55.0
}

// ExampleVariance_Combine shows a parallel-style fold: two partitions,
// one Combine, same variance as a single pass over the union.
func ExampleVariance_Combine() {
	left := moment.VarianceOf(1, 2, 3, 4)
	right := moment.VarianceOf(5, 6, 7, 8, 9, 10)

	left.Combine(right)
	fmt.Printf("n=%d variance=%.4f\n", left.Count(), left.Value())

	whole := moment.VarianceOf(1, 2, 3, 4, 5, 6, 7, 8, 9, 10)
	fmt.Printf("whole=%.4f\n", whole.Value())
	// Output:
	// n=10 variance=9.1667
	// whole=9.1667
}

// ExampleMoments demonstrates skewness and kurtosis from one accumulator.
func ExampleMoments() {
	m := moment.MomentsOf(1, 2, 3, 4, 10)

	fmt.Printf("mean=%.1f variance=%.1f\n", m.Mean(), m.Variance())
	fmt.Printf("skewness=%.4f kurtosis=%.4f\n", m.Skewness(), m.Kurtosis())
	// Output:
	// mean=4.0 variance=12.5
	// skewness=1.6971 kurtosis=3.1520
}
