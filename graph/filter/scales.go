package filter

import "math"

// Shape constants of the band-pass kernel: its response is flat above t2 and
// below t1 in units of scale·λ.
const (
	scaleT1 = 1.0
	scaleT2 = 2.0
)

// WaveletScales returns n scales spaced evenly in log-space from
// t2/lambdaMin down to t1/lambdaMax, both inclusive. Scales below or above
// that range would yield kernels of the same shape at the spectrum edges.
//
// It returns nil when any argument is not positive.
func WaveletScales(lambdaMin, lambdaMax float64, n int) []float64 {
	if !(lambdaMin > 0) || !(lambdaMax > 0) || n <= 0 {
		return nil
	}

	sMin := scaleT1 / lambdaMax
	sMax := scaleT2 / lambdaMin

	logHi := math.Log(sMax)
	logLo := math.Log(sMin)

	scales := make([]float64, n)
	if n == 1 {
		scales[0] = sMax
		return scales
	}
	step := (logLo - logHi) / float64(n-1)
	for i := range scales {
		scales[i] = math.Exp(logHi + float64(i)*step)
	}
	// Pin the last value to avoid drift from the accumulated step.
	scales[n-1] = sMin
	return scales
}
