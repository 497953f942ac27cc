package engine

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
)

// Chebyshev evaluates the Chebyshev series of every coefficient row on the
// Laplacian mapped from [lo, hi] to [-1, 1]:
//
//	r = c[0]/2·s + Σ_{k≥1} c[k]·T_k(L̃)·s,  L̃ = (L - a2·I)/a1
//
// with T_k built by the three-term recurrence T_k = 2·L̃·T_{k-1} - T_{k-2}.
// The range must be the one the coefficients were fitted on.
type Chebyshev struct {
	a1, a2 float64
}

// NewChebyshev returns a Chebyshev applier for coefficients fitted on
// [lo, hi], normally [0, lambdaMax].
func NewChebyshev(lo, hi float64) (*Chebyshev, error) {
	if !(hi > lo) {
		return nil, fmt.Errorf("engine: range [%v, %v]: %w", lo, hi, ErrInvalidRange)
	}
	return &Chebyshev{a1: (hi - lo) / 2, a2: (hi + lo) / 2}, nil
}

// Range returns the approximation interval.
func (ch *Chebyshev) Range() (lo, hi float64) {
	return ch.a2 - ch.a1, ch.a2 + ch.a1
}

// Apply returns the Chebyshev series of every row of c applied to signal.
func (ch *Chebyshev) Apply(l *sparse.CSR, signal []float64, c filter.Coeffs) ([][]float64, error) {
	n := len(signal)
	out := make([][]float64, len(c))

	prev := make([]float64, n)
	cur := make([]float64, n)
	lx := make([]float64, n)
	tmp := make([]float64, n)

	for i, row := range c {
		acc := make([]float64, n)
		out[i] = acc
		if len(row) == 0 {
			continue
		}
		vecmath.ScaleBlock(acc, signal, row[0]/2)
		if len(row) == 1 {
			continue
		}

		// T_0 = s, T_1 = L̃·s
		copy(prev, signal)
		if err := ch.shifted(cur, prev, lx, tmp, l); err != nil {
			return nil, fmt.Errorf("engine: scale %d order 1: %w", i, err)
		}
		vecmath.ScaleBlock(tmp, cur, row[1])
		vecmath.AddBlockInPlace(acc, tmp)

		for k := 2; k < len(row); k++ {
			// prev <- 2·L̃·cur - prev
			if err := ch.shifted(lx, cur, lx, tmp, l); err != nil {
				return nil, fmt.Errorf("engine: scale %d order %d: %w", i, k, err)
			}
			vecmath.ScaleBlockInPlace(prev, -0.5)
			vecmath.AddMulBlock(prev, lx, prev, 2)
			prev, cur = cur, prev

			vecmath.ScaleBlock(tmp, cur, row[k])
			vecmath.AddBlockInPlace(acc, tmp)
		}
	}
	return out, nil
}

// shifted stores (L·x - a2·x)/a1 in dst. lx and tmp are scratch; dst may
// be lx.
func (ch *Chebyshev) shifted(dst, x, lx, tmp []float64, l *sparse.CSR) error {
	if err := l.MulVec(lx, x); err != nil {
		return err
	}
	vecmath.ScaleBlock(tmp, x, -ch.a2)
	vecmath.AddMulBlock(dst, lx, tmp, 1/ch.a1)
	return nil
}
