// Package sparse provides compressed sparse row (CSR) matrices and graph
// Laplacian construction.
//
// The filtering engine only needs a square sparse operator with a
// matrix-vector product. [CSR] supplies that on the host and exposes its raw
// arrays so device backends can copy it. Laplacians are built from weighted
// edge lists, either combinatorial (D - W) or symmetric normalized
// (I - D^-1/2 W D^-1/2):
//
//	l, err := sparse.Laplacian(64, sparse.Grid(8, 8), sparse.WithNormalized())
//	lmax := sparse.GershgorinBound(l)
package sparse
