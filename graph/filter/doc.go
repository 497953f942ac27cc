// Package filter builds spectral graph filter banks and their Chebyshev
// expansion coefficients.
//
// A [Bank] is an ordered set of scalar kernels: index 0 is the low-pass
// (bias) kernel and indices 1..N are wavelet kernels at decreasing scales.
// [New] builds a named family from spectrum bounds and [WaveletScales]
// chooses the scales log-uniformly between the bounds where the kernel
// response changes.
//
// [Coefficients] fits every kernel on an interval [a, b] with
// Gauss-Chebyshev quadrature:
//
//	c_k = 2/N · Σ_{i=1..N} g(a1·cos(π(i-½)/N) + a2) · cos(π(k-1)(i-½)/N)
//
// with a1 = (b-a)/2, a2 = (b+a)/2, k = 1..maxOrder+1 and N the grid order.
// The first coefficient carries the usual factor of two of the Chebyshev
// convention; [Approximate] halves it when evaluating the series.
//
// Basic usage:
//
//	bank, err := filter.New(filter.KindMexicanHat, lmax, 4)
//	coeffs, err := filter.Coefficients(bank, 40, filter.WithRange(0, lmax))
package filter
