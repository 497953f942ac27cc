package engine

import "github.com/cwbudde/algo-sgwt/graph/device"

type acceleratedConfig struct {
	backend   device.Backend
	device    int
	precision device.Precision
}

// Option configures an Accelerated applier.
type Option func(*acceleratedConfig)

// WithBackend selects the device backend. Defaults to device.CurrentBackend.
func WithBackend(b device.Backend) Option {
	return func(cfg *acceleratedConfig) {
		cfg.backend = b
	}
}

// WithDevice selects the device index of the backend. Defaults to 0.
func WithDevice(index int) Option {
	return func(cfg *acceleratedConfig) {
		cfg.device = index
	}
}

// WithPrecision sets the element type used on the device. Defaults to
// device.Float64.
func WithPrecision(p device.Precision) Option {
	return func(cfg *acceleratedConfig) {
		cfg.precision = p
	}
}
