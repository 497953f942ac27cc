package filter

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-sgwt/graph/kernel"
)

// Coeffs holds one row of Chebyshev coefficients per kernel, in bank order.
// Every row has maxOrder+1 entries.
type Coeffs [][]float64

// NumScales returns the number of rows.
func (c Coeffs) NumScales() int { return len(c) }

// Order returns the polynomial order of the table, i.e. the row length
// minus one, or -1 for an empty table.
func (c Coeffs) Order() int {
	if len(c) == 0 {
		return -1
	}
	return len(c[0]) - 1
}

// Validate checks that the table is rectangular and, when numScales > 0,
// that it has numScales rows.
func (c Coeffs) Validate(numScales int) error {
	if len(c) == 0 {
		return fmt.Errorf("filter: empty coefficient table: %w", ErrShape)
	}
	if numScales > 0 && len(c) != numScales {
		return fmt.Errorf("filter: %d coefficient rows, want %d: %w", len(c), numScales, ErrShape)
	}
	for i, row := range c {
		if len(row) != len(c[0]) {
			return fmt.Errorf("filter: row %d has %d coefficients, want %d: %w", i, len(row), len(c[0]), ErrShape)
		}
	}
	return nil
}

// Coefficients computes the Chebyshev coefficients of orders 0..maxOrder
// for every kernel of the bank.
func Coefficients(bank Bank, maxOrder int, opts ...CoeffOption) (Coeffs, error) {
	cfg := defaultCoeffConfig()
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if bank.Empty() {
		return nil, ErrEmptyBank
	}
	if maxOrder < 0 || cfg.gridOrder < 0 {
		return nil, fmt.Errorf("filter: maxOrder=%d gridOrder=%d: %w", maxOrder, cfg.gridOrder, ErrInvalidOrder)
	}
	if !(cfg.hi > cfg.lo) {
		return nil, fmt.Errorf("filter: range [%v, %v]: %w", cfg.lo, cfg.hi, ErrInvalidRange)
	}

	gridOrder := cfg.gridOrder
	if gridOrder == 0 {
		gridOrder = maxOrder + 1
	}
	a1 := (cfg.hi - cfg.lo) / 2
	a2 := (cfg.hi + cfg.lo) / 2

	var dct *dctPlan
	if cfg.useFFT {
		dct = newDCTPlan(gridOrder)
	}

	out := make(Coeffs, bank.Len())
	for s, g := range bank.kernels {
		samples := sampleNodes(g, gridOrder, a1, a2)
		if dct != nil {
			out[s] = dct.coefficients(samples, maxOrder)
			continue
		}
		row := make([]float64, maxOrder+1)
		for k := range row {
			row[k] = cosineSum(samples, k)
		}
		out[s] = row
	}
	return out, nil
}

// Coefficient returns the coefficient of the given 1-based order for g,
// using gridOrder quadrature nodes on the interval mapped by a1, a2.
func Coefficient(g *kernel.Func, order, gridOrder int, a1, a2 float64) float64 {
	return cosineSum(sampleNodes(g, gridOrder, a1, a2), order-1)
}

// sampleNodes evaluates g at the Chebyshev nodes a1·cos(π(i-½)/N) + a2.
func sampleNodes(g *kernel.Func, n int, a1, a2 float64) []float64 {
	samples := make([]float64, n)
	for i := 1; i <= n; i++ {
		x := a1*math.Cos(math.Pi*(float64(i)-0.5)/float64(n)) + a2
		samples[i-1] = g.Eval(x)
	}
	return samples
}

// cosineSum returns 2/N · Σ samples[i-1]·cos(π·k·(i-½)/N).
func cosineSum(samples []float64, k int) float64 {
	n := len(samples)
	var t float64
	for i := 1; i <= n; i++ {
		t += samples[i-1] * math.Cos(math.Pi*float64(k)*(float64(i)-0.5)/float64(n))
	}
	return 2 * t / float64(n)
}

// Approximate evaluates the Chebyshev series with coefficients c on [a, b]
// at x using Clenshaw's recurrence. The first coefficient is halved.
func Approximate(c []float64, x, a, b float64) float64 {
	if len(c) == 0 {
		return 0
	}
	y := (2*x - a - b) / (b - a)
	var b1, b2 float64
	for k := len(c) - 1; k >= 1; k-- {
		b1, b2 = 2*y*b1-b2+c[k], b1
	}
	return c[0]/2 + y*b1 - b2
}

// MaxError returns the largest absolute difference between g and its
// expansion c on [a, b], probed at samples evenly spaced points.
func MaxError(g *kernel.Func, c []float64, a, b float64, samples int) float64 {
	if samples < 2 {
		samples = 2
	}
	var worst float64
	for i := 0; i < samples; i++ {
		x := a + (b-a)*float64(i)/float64(samples-1)
		worst = math.Max(worst, math.Abs(g.Eval(x)-Approximate(c, x, a, b)))
	}
	return worst
}
