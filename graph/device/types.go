package device

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// Precision is the element type used on the device.
type Precision uint8

const (
	Float64 Precision = iota
	Float32
)

// Size returns the element size in bytes.
func (p Precision) Size() uint64 {
	if p == Float32 {
		return 4
	}
	return 8
}

// String returns "float64" or "float32".
func (p Precision) String() string {
	switch p {
	case Float64:
		return "float64"
	case Float32:
		return "float32"
	default:
		return fmt.Sprintf("Precision(%d)", int(p))
	}
}

// DeviceInfo describes a compute device.
type DeviceInfo struct {
	Name        string
	Vendor      string
	Driver      string
	MemoryBytes uint64
	Limits      gputypes.Limits
}

// MaxAllocBytes returns the largest single allocation the device advertises.
func (d DeviceInfo) MaxAllocBytes() uint64 {
	return d.Limits.MaxBufferSize
}

// BackendInfo describes a backend implementation.
type BackendInfo struct {
	Name        string
	Version     string
	Description string
}
