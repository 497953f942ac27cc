package engine

import "errors"

var (
	// ErrTransfer is returned when host-to-device or device-to-host copies fail.
	ErrTransfer = errors.New("engine: device transfer failed")

	// ErrDeviceMemory is returned when the inputs do not fit in device memory.
	ErrDeviceMemory = errors.New("engine: inputs exceed device allocation limit")

	// ErrDimensionMismatch is returned when the signal length does not match
	// the Laplacian.
	ErrDimensionMismatch = errors.New("engine: signal and Laplacian dimensions differ")

	// ErrNonSquare is returned for a non-square Laplacian.
	ErrNonSquare = errors.New("engine: Laplacian is not square")

	// ErrRaggedCoeffs is returned when coefficient rows differ in length or
	// the table does not match the filter bank.
	ErrRaggedCoeffs = errors.New("engine: coefficient table is not rectangular")

	// ErrEmptyCoeffs is returned for an empty coefficient table.
	ErrEmptyCoeffs = errors.New("engine: empty coefficient table")

	// ErrInvalidRange is returned when a Chebyshev range is empty or reversed.
	ErrInvalidRange = errors.New("engine: invalid approximation range")
)
