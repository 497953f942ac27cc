//go:build fastmath

package kernel

import "github.com/meko-christian/algo-approx"

// exp uses the algo-approx approximation of e^x.
func exp(x float64) float64 {
	return approx.FastExp(x)
}
