// Package engine applies a table of polynomial filter coefficients to a
// graph signal through repeated sparse matrix-vector products with the
// graph Laplacian.
//
// For a coefficient row c of length M the result of a scale is
//
//	r = Σ_{j=1..M-1} c[j] · L^j · s
//
// built one multiplication per order, so no eigendecomposition of L is
// needed. Two interchangeable [Applier] implementations exist:
//
//   - [Sequential] runs on the host with SIMD-accelerated accumulation.
//   - [Accelerated] runs the same recurrence on a [device.Context] after
//     uploading the Laplacian, the signal and the coefficient table.
//
// The choice between them is the caller's. [Accelerated.FitsInDeviceMemory]
// is the admission check to consult before choosing the device path; the
// engine never falls back on its own.
//
// The order-0 coefficient is not applied by either path. [Chebyshev]
// evaluates the full Chebyshev series Σ c[k]·T_k(L̃)·s on the shifted
// operator L̃ = (L - a2)/a1 and reproduces g(L)·s for coefficients from
// filter.Coefficients.
//
// The appliers trust their inputs. Wrap one with [Validated] (or call
// [Validate]) to reject mismatched shapes before any work is done.
package engine
