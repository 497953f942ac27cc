package device

import "sync"

// Backend is implemented by device backends (host emulation, OpenCL, ...).
// It is responsible for device discovery and context creation.
type Backend interface {
	Info() BackendInfo
	Available() bool
	Devices() ([]DeviceInfo, error)
	NewContext(deviceIndex int, precision Precision) (Context, error)
}

// Context is a device context with its own allocations. Closing the context
// releases every buffer it allocated.
type Context interface {
	Device() DeviceInfo
	Precision() Precision

	NewVector(n int) (Vector, error)
	NewMatrix(rows, cols, nnz int) (Matrix, error)
	NewDense(rows, cols int) (Dense, error)

	// MulVec computes dst = a·x. dst and x must be distinct buffers.
	MulVec(dst Vector, a Matrix, x Vector) error
	// Copy copies src into dst.
	Copy(dst, src Vector) error
	// Zero clears v.
	Zero(v Vector) error
	// AddScaled computes dst += table[row, col]·x without reading the
	// coefficient back to the host.
	AddScaled(dst Vector, table Dense, row, col int, x Vector) error

	// Synchronize waits for queued work to complete.
	Synchronize() error
	Close() error
}

// Buffer is a device allocation.
type Buffer interface {
	// Len returns the number of stored elements.
	Len() int
	// SizeBytes returns the allocation size.
	SizeBytes() uint64
	Close() error
}

// Vector is a dense device vector.
type Vector interface {
	Buffer
	Upload(src []float64) error
	Download(dst []float64) error
}

// Matrix is a device CSR matrix.
type Matrix interface {
	Buffer
	Rows() int
	Cols() int
	Upload(indptr, indices []int, data []float64) error
}

// Dense is a row-major dense device table.
type Dense interface {
	Buffer
	Rows() int
	Cols() int
	Upload(rows [][]float64) error
}

var (
	backendMu sync.RWMutex
	backend   Backend
)

// RegisterBackend registers the default backend. Passing nil clears it.
func RegisterBackend(b Backend) {
	backendMu.Lock()
	backend = b
	backendMu.Unlock()
}

// CurrentBackend returns the registered backend or nil.
func CurrentBackend() Backend {
	backendMu.RLock()
	b := backend
	backendMu.RUnlock()
	return b
}

// CurrentBackendInfo reports the currently registered backend, if any.
func CurrentBackendInfo() (BackendInfo, bool) {
	b := CurrentBackend()
	if b == nil {
		return BackendInfo{}, false
	}
	return b.Info(), true
}
