// Package graph is the root of the spectral graph filtering packages.
//
// Filtering a signal defined on the nodes of a graph with a function of the
// graph Laplacian normally requires an eigendecomposition. The packages below
// avoid that by expanding each filter kernel in a truncated polynomial series
// whose terms are built from sparse matrix-vector products:
//
//   - [github.com/cwbudde/algo-sgwt/graph/kernel] composable scalar kernels.
//   - [github.com/cwbudde/algo-sgwt/graph/filter] filter banks, wavelet scales
//     and Chebyshev coefficients computed by quadrature.
//   - [github.com/cwbudde/algo-sgwt/graph/sparse] CSR Laplacians.
//   - [github.com/cwbudde/algo-sgwt/graph/engine] recurrence application on the
//     CPU or on a device.
//   - [github.com/cwbudde/algo-sgwt/graph/device] device backends.
//
// This package itself only carries the shared logger.
//
// Basic usage:
//
//	l, _ := sparse.Laplacian(5, sparse.Path(5))
//	bank, _ := filter.New(filter.KindMexicanHat, sparse.GershgorinBound(l), 4)
//	coeffs, _ := filter.Coefficients(bank, 30, filter.WithRange(0, sparse.GershgorinBound(l)))
//	out, _ := engine.NewSequential().Apply(l, signal, coeffs)
package graph
