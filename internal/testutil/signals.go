package testutil

import (
	"math"
	"math/rand"
)

// Impulse returns a graph signal of n nodes with a unit value at node.
func Impulse(n, node int) []float64 {
	out := make([]float64, n)
	if node >= 0 && node < n {
		out[node] = 1
	}
	return out
}

// Constant returns a graph signal with every node set to value.
func Constant(value float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return Constant(1.0, n)
}

// DeterministicNoise returns uniform noise in [-amplitude, amplitude] with a
// fixed seed.
func DeterministicNoise(seed int64, amplitude float64, n int) []float64 {
	out := make([]float64, n)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// PathMode returns the k-th eigenvector of the combinatorial Laplacian of an
// n-node path graph, cos(πk(i+½)/n). Its eigenvalue is PathEigenvalue(k, n).
func PathMode(k, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Cos(math.Pi * float64(k) * (float64(i) + 0.5) / float64(n))
	}
	return out
}

// PathEigenvalue returns 2 - 2cos(πk/n).
func PathEigenvalue(k, n int) float64 {
	return 2 - 2*math.Cos(math.Pi*float64(k)/float64(n))
}
