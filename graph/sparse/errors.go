package sparse

import "errors"

var (
	// ErrBadShape is returned when a requested shape is invalid (rows or cols <= 0).
	ErrBadShape = errors.New("sparse: invalid shape")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("sparse: index out of range")

	// ErrDimensionMismatch indicates incompatible operand lengths, e.g. a
	// vector whose length differs from the matrix column count.
	ErrDimensionMismatch = errors.New("sparse: dimension mismatch")

	// ErrMalformed is returned when CSR arrays are inconsistent
	// (non-monotonic indptr, wrong lengths).
	ErrMalformed = errors.New("sparse: malformed CSR arrays")

	// ErrInvalidWeight is returned for NaN, Inf or negative edge weights.
	ErrInvalidWeight = errors.New("sparse: invalid edge weight")
)
