// Package spectral describes filter kernels by their response over the
// graph spectrum [0, lambdaMax].
//
// A response is a kernel sampled on a uniform eigenvalue grid; sample i
// sits at λ_i = i·lambdaMax/(n-1).
package spectral

import (
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/kernel"
)

// DefaultRolloff is the energy fraction used for Stats.Rolloff.
const DefaultRolloff = 0.85

// Stats holds descriptors of one kernel response.
type Stats struct {
	Samples    int
	Peak       float64 // max |g|
	PeakLambda float64
	Energy     float64 // sum of squared samples
	Centroid   float64 // magnitude-weighted mean eigenvalue
	Spread     float64 // magnitude-weighted standard deviation around Centroid
	Rolloff    float64 // eigenvalue below which DefaultRolloff of the energy lies
	Bandwidth  float64 // width of the half-power band around the peak
}

// Sample evaluates g on n uniformly spaced eigenvalues in [0, lambdaMax].
// n < 2 yields nil.
func Sample(g *kernel.Func, lambdaMax float64, n int) []float64 {
	if n < 2 || !(lambdaMax > 0) {
		return nil
	}
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Eval(lambdaAt(i, lambdaMax, n))
	}
	return out
}

func lambdaAt(i int, lambdaMax float64, n int) float64 {
	return float64(i) * lambdaMax / float64(n-1)
}

// Calculate computes the descriptors of a response sampled on [0, lambdaMax].
func Calculate(response []float64, lambdaMax float64) Stats {
	n := len(response)
	if n < 2 {
		return Stats{Samples: n}
	}

	mag := make([]float64, n)
	peakIdx := 0
	for i, v := range response {
		mag[i] = math.Abs(v)
		if mag[i] > mag[peakIdx] {
			peakIdx = i
		}
	}
	sum := vecmath.Sum(mag)
	energy := vecmath.DotProduct(mag, mag)

	s := Stats{
		Samples:    n,
		Peak:       mag[peakIdx],
		PeakLambda: lambdaAt(peakIdx, lambdaMax, n),
		Energy:     energy,
	}
	if sum == 0 {
		return s
	}
	s.Centroid = centroid(mag, lambdaMax, sum)
	s.Spread = spread(mag, lambdaMax, s.Centroid, sum)
	s.Rolloff = rolloff(mag, lambdaMax, DefaultRolloff, energy)
	s.Bandwidth = bandwidth(mag, lambdaMax, peakIdx)
	return s
}

// Describe samples every kernel of bank and returns its descriptors in
// bank order.
func Describe(bank filter.Bank, lambdaMax float64, n int) []Stats {
	out := make([]Stats, bank.Len())
	for i, g := range bank.Kernels() {
		out[i] = Calculate(Sample(g, lambdaMax, n), lambdaMax)
	}
	return out
}

// FrameBounds returns the minimum and maximum over the sampled spectrum of
// G(λ) = Σ_i g_i(λ)². Equal bounds mean the bank is a tight frame on the
// sampled eigenvalues.
func FrameBounds(bank filter.Bank, lambdaMax float64, n int) (lower, upper float64) {
	if bank.Empty() || n < 2 || !(lambdaMax > 0) {
		return 0, 0
	}
	total := make([]float64, n)
	sq := make([]float64, n)
	for _, g := range bank.Kernels() {
		r := Sample(g, lambdaMax, n)
		vecmath.MulBlock(sq, r, r)
		vecmath.AddBlockInPlace(total, sq)
	}
	lower, upper = total[0], total[0]
	for _, v := range total[1:] {
		lower = math.Min(lower, v)
		upper = math.Max(upper, v)
	}
	return lower, upper
}

func centroid(mag []float64, lambdaMax, sum float64) float64 {
	n := len(mag)
	weighted := 0.0
	for i, v := range mag {
		weighted += lambdaAt(i, lambdaMax, n) * v
	}
	return weighted / sum
}

func spread(mag []float64, lambdaMax, cent, sum float64) float64 {
	n := len(mag)
	weighted := 0.0
	for i, v := range mag {
		d := lambdaAt(i, lambdaMax, n) - cent
		weighted += d * d * v
	}
	return math.Sqrt(weighted / sum)
}

func rolloff(mag []float64, lambdaMax, fraction, energy float64) float64 {
	n := len(mag)
	threshold := fraction * energy
	cum := 0.0
	for i, v := range mag {
		cum += v * v
		if cum >= threshold {
			return lambdaAt(i, lambdaMax, n)
		}
	}
	return lambdaMax
}

// bandwidth locates the half-power points on both sides of the peak with
// linear interpolation between samples.
func bandwidth(mag []float64, lambdaMax float64, peak int) float64 {
	n := len(mag)
	threshold := mag[peak] / math.Sqrt2

	lower := 0.0
	for i := peak; i >= 1; i-- {
		if mag[i-1] <= threshold && mag[i] > threshold {
			lower = interp(i-1, mag[i-1], mag[i], threshold, lambdaMax, n)
			break
		}
	}
	upper := lambdaMax
	for i := peak; i < n-1; i++ {
		if mag[i+1] <= threshold && mag[i] > threshold {
			upper = interp(i, mag[i], mag[i+1], threshold, lambdaMax, n)
			break
		}
	}
	return max(upper-lower, 0)
}

// interp returns the eigenvalue between samples lo and lo+1 where the
// magnitude crosses threshold.
func interp(lo int, magLo, magHi, threshold, lambdaMax float64, n int) float64 {
	l0 := lambdaAt(lo, lambdaMax, n)
	l1 := lambdaAt(lo+1, lambdaMax, n)
	if magHi == magLo {
		return (l0 + l1) / 2
	}
	t := (threshold - magLo) / (magHi - magLo)
	return l0 + t*(l1-l0)
}
