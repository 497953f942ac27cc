package engine

import (
	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
)

// Applier filters a signal with every coefficient row of a table and returns
// one result vector per row, in table order. The returned vectors are owned
// by the caller.
type Applier interface {
	Apply(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error)
}

// ApplierFunc adapts a function to the Applier interface.
type ApplierFunc func(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error)

// Apply calls f.
func (f ApplierFunc) Apply(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error) {
	return f(l, signal, c)
}

var (
	_ Applier = (*Sequential)(nil)
	_ Applier = (*Accelerated)(nil)
	_ Applier = (*Chebyshev)(nil)
)
