package device

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/gogpu/gputypes"

	"github.com/cwbudde/algo-sgwt/graph"
)

// DefaultHostMemoryBytes is the default memory budget of a host device.
const DefaultHostMemoryBytes = 1 << 30

type hostConfig struct {
	name        string
	limits      gputypes.Limits
	memoryBytes uint64
}

// HostOption configures a HostBackend.
type HostOption func(*hostConfig)

// WithLimits sets the advertised device limits. MaxBufferSize is the
// per-allocation limit used by the engine's memory check.
func WithLimits(l gputypes.Limits) HostOption {
	return func(cfg *hostConfig) {
		cfg.limits = l
	}
}

// WithMaxBufferSize overrides only the advertised allocation limit.
func WithMaxBufferSize(n uint64) HostOption {
	return func(cfg *hostConfig) {
		if n > 0 {
			cfg.limits.MaxBufferSize = n
		}
	}
}

// WithMemoryBudget sets the total memory available to all live buffers.
func WithMemoryBudget(n uint64) HostOption {
	return func(cfg *hostConfig) {
		if n > 0 {
			cfg.memoryBytes = n
		}
	}
}

// WithDeviceName sets the reported device name.
func WithDeviceName(name string) HostOption {
	return func(cfg *hostConfig) {
		if name != "" {
			cfg.name = name
		}
	}
}

// HostBackend is a CPU-backed device backend. It satisfies the device
// interfaces, enforces allocation limits like a real device and keeps count
// of live buffers so leaks are observable.
type HostBackend struct {
	device DeviceInfo

	mu   sync.Mutex
	used uint64
	live atomic.Int64
}

// NewHostBackend returns a host backend with a single device.
func NewHostBackend(opts ...HostOption) *HostBackend {
	cfg := hostConfig{
		name:        "HostDevice",
		limits:      gputypes.DefaultLimits(),
		memoryBytes: DefaultHostMemoryBytes,
	}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	return &HostBackend{
		device: DeviceInfo{
			Name:        cfg.name,
			Vendor:      "algo-sgwt",
			Driver:      "host",
			MemoryBytes: cfg.memoryBytes,
			Limits:      cfg.limits,
		},
	}
}

// RegisterHostBackend registers a host backend as the default backend and
// returns it.
func RegisterHostBackend(opts ...HostOption) *HostBackend {
	b := NewHostBackend(opts...)
	RegisterBackend(b)
	return b
}

func (b *HostBackend) Info() BackendInfo {
	return BackendInfo{
		Name:        "host",
		Version:     "0.1",
		Description: "CPU-backed device backend",
	}
}

func (b *HostBackend) Available() bool {
	return true
}

func (b *HostBackend) Devices() ([]DeviceInfo, error) {
	return []DeviceInfo{b.device}, nil
}

// Live returns the number of buffers currently allocated on the device.
func (b *HostBackend) Live() int {
	return int(b.live.Load())
}

// Used returns the number of bytes currently allocated on the device.
func (b *HostBackend) Used() uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.used
}

func (b *HostBackend) NewContext(deviceIndex int, precision Precision) (Context, error) {
	if deviceIndex != 0 {
		return nil, fmt.Errorf("device: host backend: device index %d out of range", deviceIndex)
	}
	graph.Logger().Debug("device: context opened",
		"device", b.device.Name, "precision", precision, "max_alloc", b.device.MaxAllocBytes())
	switch precision {
	case Float64:
		return newHostContext[float64](b, precision), nil
	case Float32:
		return newHostContext[float32](b, precision), nil
	default:
		return nil, fmt.Errorf("device: precision %s: %w", precision, ErrNotImplemented)
	}
}

// reserve accounts for an allocation of n bytes.
func (b *HostBackend) reserve(n uint64) error {
	if limit := b.device.MaxAllocBytes(); limit > 0 && n > limit {
		return fmt.Errorf("device: %d bytes > limit %d: %w", n, limit, ErrAllocationTooLarge)
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.used+n > b.device.MemoryBytes {
		return fmt.Errorf("device: %d bytes requested, %d of %d in use: %w",
			n, b.used, b.device.MemoryBytes, ErrOutOfMemory)
	}
	b.used += n
	b.live.Add(1)
	return nil
}

func (b *HostBackend) release(n uint64) {
	b.mu.Lock()
	b.used -= n
	b.mu.Unlock()
	b.live.Add(-1)
}
