package scale

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-sgwt/internal/testutil"
)

func BenchmarkCalculate(b *testing.B) {
	for _, n := range []int{64, 1024, 16384} {
		x := testutil.DeterministicNoise(1, 1, n)
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(n * 8))

			for range b.N {
				Calculate(x)
			}
		})
	}
}

func BenchmarkEnergyFraction(b *testing.B) {
	results := make([][]float64, 8)
	for i := range results {
		results[i] = testutil.DeterministicNoise(int64(i), 1, 4096)
	}
	b.ReportAllocs()

	for range b.N {
		EnergyFraction(results)
	}
}
