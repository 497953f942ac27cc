package engine

import (
	"fmt"

	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
)

// Validate checks that l is square, that signal has one value per node and
// that c is a non-empty rectangular table.
func Validate(l *sparse.CSR, signal []float64, c filter.Coeffs) error {
	if l == nil || !l.IsSquare() {
		rows, cols := 0, 0
		if l != nil {
			rows, cols = l.Rows(), l.Cols()
		}
		return fmt.Errorf("engine: Laplacian %dx%d: %w", rows, cols, ErrNonSquare)
	}
	if len(signal) != l.Rows() {
		return fmt.Errorf("engine: signal of %d values for %d nodes: %w", len(signal), l.Rows(), ErrDimensionMismatch)
	}
	if len(c) == 0 {
		return ErrEmptyCoeffs
	}
	for i, row := range c {
		if len(row) != len(c[0]) {
			return fmt.Errorf("engine: row %d has %d coefficients, want %d: %w", i, len(row), len(c[0]), ErrRaggedCoeffs)
		}
	}
	return nil
}

// Validated wraps a so that every call is checked with Validate first.
func Validated(a Applier) Applier {
	return ApplierFunc(func(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error) {
		if err := Validate(l, signal, c); err != nil {
			return nil, err
		}
		return a.Apply(l, signal, c)
	})
}

// ValidatedBank is Validated with the additional check that c has one row
// per kernel of bank.
func ValidatedBank(a Applier, bank filter.Bank) Applier {
	v := Validated(a)
	return ApplierFunc(func(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error) {
		if len(c) != bank.Len() {
			return nil, fmt.Errorf("engine: %d coefficient rows for %d kernels: %w", len(c), bank.Len(), ErrRaggedCoeffs)
		}
		return v.Apply(l, signal, c)
	})
}
