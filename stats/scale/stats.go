// Package scale summarizes filtered graph signals, one Stats per scale of a
// result set.
package scale

import (
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// SupportThreshold is the magnitude, relative to the peak, above which a
// node counts towards Support.
const SupportThreshold = 1e-6

// Stats holds node-domain statistics of one filtered signal.
type Stats struct {
	Length   int
	Mean     float64
	RMS      float64
	Peak     float64 // max |x|
	PeakNode int     // first node reaching Peak
	Energy   float64 // sum of squares
	Variance float64
	Skewness float64
	Kurtosis float64 // excess
	Support  int     // nodes with |x| > SupportThreshold·Peak
}

// Calculate computes all statistics of signal. Moments use Welford's online
// update; energy and peak use the vecmath kernels.
func Calculate(signal []float64) Stats {
	n := len(signal)
	if n == 0 {
		return Stats{}
	}

	var mean, m2, m3, m4 float64
	peakNode := 0
	for i, x := range signal {
		ni := float64(i + 1)
		delta := x - mean
		deltaN := delta / ni
		deltaN2 := deltaN * deltaN
		term1 := delta * deltaN * float64(i)

		// M4 before M3 before M2.
		m4 += term1*deltaN2*(ni*ni-3*ni+3) + 6*deltaN2*m2 - 4*deltaN*m3
		m3 += term1*deltaN*(float64(i)-1) - 3*deltaN*m2
		m2 += term1
		mean += deltaN

		if math.Abs(x) > math.Abs(signal[peakNode]) {
			peakNode = i
		}
	}

	nf := float64(n)
	energy := vecmath.DotProduct(signal, signal)
	peak := vecmath.MaxAbs(signal)
	variance := m2 / nf

	var skewness, kurtosis float64
	if variance > 0 {
		skewness = (m3 / nf) / (variance * math.Sqrt(variance))
		kurtosis = (m4/nf)/(variance*variance) - 3
	}

	support := 0
	if peak > 0 {
		limit := SupportThreshold * peak
		for _, x := range signal {
			if math.Abs(x) > limit {
				support++
			}
		}
	}

	return Stats{
		Length:   n,
		Mean:     mean,
		RMS:      math.Sqrt(energy / nf),
		Peak:     peak,
		PeakNode: peakNode,
		Energy:   energy,
		Variance: variance,
		Skewness: skewness,
		Kurtosis: kurtosis,
		Support:  support,
	}
}

// Summarize returns Calculate for every result vector, in order.
func Summarize(results [][]float64) []Stats {
	out := make([]Stats, len(results))
	for i, r := range results {
		out[i] = Calculate(r)
	}
	return out
}

// EnergyFraction returns each result's share of the total energy. All
// fractions are zero when the total is zero.
func EnergyFraction(results [][]float64) []float64 {
	out := make([]float64, len(results))
	var total float64
	for i, r := range results {
		out[i] = vecmath.DotProduct(r, r)
		total += out[i]
	}
	if total == 0 {
		clear(out)
		return out
	}
	vecmath.ScaleBlockInPlace(out, 1/total)
	return out
}
