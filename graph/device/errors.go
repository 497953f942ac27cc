package device

import "errors"

var (
	// ErrNoBackend is returned when no backend is registered.
	ErrNoBackend = errors.New("device: no backend registered")

	// ErrBackendUnavailable is returned when the backend is registered but not
	// usable on this system (no device, driver missing).
	ErrBackendUnavailable = errors.New("device: backend unavailable")

	// ErrInvalidLength is returned for non-positive buffer sizes.
	ErrInvalidLength = errors.New("device: invalid length")

	// ErrLengthMismatch is returned when host data does not match a buffer.
	ErrLengthMismatch = errors.New("device: length mismatch")

	// ErrAllocationTooLarge is returned when a single buffer exceeds the
	// device allocation limit.
	ErrAllocationTooLarge = errors.New("device: allocation exceeds device limit")

	// ErrOutOfMemory is returned when an allocation exceeds the remaining
	// device memory budget.
	ErrOutOfMemory = errors.New("device: out of memory")

	// ErrClosed is returned when using a closed buffer or context.
	ErrClosed = errors.New("device: use of closed resource")

	// ErrForeignBuffer is returned when a buffer from another context or
	// precision is passed to a context.
	ErrForeignBuffer = errors.New("device: buffer does not belong to context")

	// ErrNotImplemented is returned by stubbed backends.
	ErrNotImplemented = errors.New("device: not implemented")
)
