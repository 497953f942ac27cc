package filter

import (
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-sgwt/graph"
)

// dctPlan evaluates all cosine sums of a sample vector at once through a
// DCT-II computed with a complex FFT of twice the grid length.
type dctPlan struct {
	n        int
	plan     *algofft.Plan[complex128]
	buf      []complex128
	spectrum []complex128
}

// newDCTPlan returns nil unless 2n is a power of two and a plan of that
// length can be created; the caller then falls back to the direct sums.
func newDCTPlan(n int) *dctPlan {
	if !isPowerOf2(2 * n) {
		return nil
	}
	plan, err := algofft.NewPlan64(2 * n)
	if err != nil {
		graph.Logger().Debug("filter: FFT coefficients unavailable, using direct sums",
			"grid", n, "err", err)
		return nil
	}
	return &dctPlan{
		n:        n,
		plan:     plan,
		buf:      make([]complex128, 2*n),
		spectrum: make([]complex128, 2*n),
	}
}

// coefficients returns 2/N · Σ f_i cos(π·k·(i+½)/N) for k = 0..maxOrder.
//
// With y the even extension of f (y[i] = y[2N-1-i] = f[i]) the spectrum
// satisfies Y[k] = 2·e^{iπk/2N}·Σ f_i cos(πk(i+½)/N), and Y has period 2N in
// k, so orders beyond the grid are read back modulo 2N.
func (d *dctPlan) coefficients(samples []float64, maxOrder int) []float64 {
	n := d.n
	for i, f := range samples {
		d.buf[i] = complex(f, 0)
		d.buf[2*n-1-i] = complex(f, 0)
	}
	row := make([]float64, maxOrder+1)
	if err := d.plan.Forward(d.spectrum, d.buf); err != nil {
		for k := range row {
			row[k] = cosineSum(samples, k)
		}
		return row
	}
	for k := range row {
		shift := cmplx.Exp(complex(0, -math.Pi*float64(k)/float64(2*n)))
		row[k] = real(shift*d.spectrum[k%(2*n)]) / float64(n)
	}
	return row
}

func isPowerOf2(n int) bool {
	return n > 0 && (n&(n-1)) == 0
}
