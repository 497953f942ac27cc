package engine

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
)

// Sequential applies the recurrence on the host.
type Sequential struct{}

// NewSequential returns a host applier.
func NewSequential() *Sequential {
	return &Sequential{}
}

// Apply computes Σ_{j=1..M-1} c[i][j]·L^j·signal for every row i. Every
// scale restarts from the raw signal. A row with fewer than two
// coefficients yields a zero vector.
func (s *Sequential) Apply(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error) {
	n := len(signal)
	out := make([][]float64, len(c))

	v := make([]float64, n)
	next := make([]float64, n)
	scaled := make([]float64, n)

	for i, row := range c {
		acc := make([]float64, n)
		copy(v, signal)
		for j := 1; j < len(row); j++ {
			if err := l.MulVec(next, v); err != nil {
				return nil, fmt.Errorf("engine: scale %d order %d: %w", i, j, err)
			}
			v, next = next, v
			vecmath.ScaleBlock(scaled, v, row[j])
			vecmath.AddBlockInPlace(acc, scaled)
		}
		out[i] = acc
	}
	return out, nil
}
