package engine

import (
	"fmt"

	"github.com/cwbudde/algo-sgwt/graph"
	"github.com/cwbudde/algo-sgwt/graph/device"
	"github.com/cwbudde/algo-sgwt/graph/filter"
	"github.com/cwbudde/algo-sgwt/graph/sparse"
)

// Accelerated applies the recurrence on a compute device. Each call opens
// its own device context and releases every allocation before returning.
type Accelerated struct {
	backend   device.Backend
	index     int
	precision device.Precision
	info      device.DeviceInfo
}

// NewAccelerated resolves the backend and device described by opts.
func NewAccelerated(opts ...Option) (*Accelerated, error) {
	cfg := acceleratedConfig{precision: device.Float64}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}
	if cfg.backend == nil {
		cfg.backend = device.CurrentBackend()
	}
	if cfg.backend == nil {
		return nil, device.ErrNoBackend
	}
	if !cfg.backend.Available() {
		return nil, fmt.Errorf("engine: backend %q: %w", cfg.backend.Info().Name, device.ErrBackendUnavailable)
	}
	devs, err := cfg.backend.Devices()
	if err != nil {
		return nil, fmt.Errorf("engine: list devices: %w", err)
	}
	if cfg.device < 0 || cfg.device >= len(devs) {
		return nil, fmt.Errorf("engine: device %d of %d: %w", cfg.device, len(devs), device.ErrBackendUnavailable)
	}
	return &Accelerated{
		backend:   cfg.backend,
		index:     cfg.device,
		precision: cfg.precision,
		info:      devs[cfg.device],
	}, nil
}

// Device returns the device the applier runs on.
func (a *Accelerated) Device() device.DeviceInfo { return a.info }

// Precision returns the element type used on the device.
func (a *Accelerated) Precision() device.Precision { return a.precision }

// FitsInDeviceMemory reports whether inputs of the given sizes fit under
// the device's advertised allocation limit. A device that advertises no
// limit accepts everything.
func (a *Accelerated) FitsInDeviceMemory(matrixBytes, signalBytes uint64) bool {
	limit := a.info.MaxAllocBytes()
	total := matrixBytes + signalBytes
	overflow := total < matrixBytes
	graph.Logger().Debug("engine: device memory check",
		"input_mb", float64(total)/(1<<20), "max_alloc_mb", float64(limit)/(1<<20))
	if limit == 0 {
		return !overflow
	}
	return !overflow && total <= limit
}

// RequiredBytes estimates the device memory used by Apply: the CSR matrix
// with 32-bit indices, and the working vectors together with the
// coefficient table.
func (a *Accelerated) RequiredBytes(l *sparse.CSR, signalLen int, c filter.Coeffs) (matrixBytes, signalBytes uint64) {
	elem := a.precision.Size()
	nnz := uint64(l.NNZ())
	matrixBytes = uint64(l.Rows()+1)*4 + nnz*4 + nnz*elem
	// signal, power vector, its swap buffer, accumulator
	signalBytes = 4 * uint64(signalLen) * elem
	signalBytes += uint64(len(c)) * uint64(tableWidth(c)) * elem
	return matrixBytes, signalBytes
}

// Apply computes the same result as Sequential with the arithmetic done on
// the device. Inputs that do not fit return ErrDeviceMemory; failed copies
// return ErrTransfer. No partial results are returned on failure.
func (a *Accelerated) Apply(l *sparse.CSR, signal []float64, c filter.Coeffs) (out [][]float64, err error) {
	if m, s := a.RequiredBytes(l, len(signal), c); !a.FitsInDeviceMemory(m, s) {
		graph.Logger().Warn("engine: inputs rejected by device memory check",
			"device", a.info.Name, "bytes", m+s, "max_alloc", a.info.MaxAllocBytes())
		return nil, fmt.Errorf("engine: device %s: %w", a.info.Name, ErrDeviceMemory)
	}

	ctx, err := a.backend.NewContext(a.index, a.precision)
	if err != nil {
		return nil, fmt.Errorf("engine: open device context: %w", err)
	}
	defer func() {
		if cerr := ctx.Close(); cerr != nil && err == nil {
			out, err = nil, fmt.Errorf("engine: close device context: %w", cerr)
		}
	}()

	in, err := upload(ctx, l, signal, c)
	if err != nil {
		graph.Logger().Error("engine: upload to device failed",
			"device", a.info.Name, "nodes", len(signal), "scales", len(c), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrTransfer, err)
	}

	out = make([][]float64, len(c))
	for i, row := range c {
		if err := in.scale(ctx, i, len(row)); err != nil {
			return nil, fmt.Errorf("engine: scale %d: %w", i, err)
		}
		if err := ctx.Synchronize(); err != nil {
			return nil, fmt.Errorf("engine: scale %d: %w", i, err)
		}
		res := make([]float64, len(signal))
		if err := in.acc.Download(res); err != nil {
			graph.Logger().Error("engine: download from device failed",
				"device", a.info.Name, "scale", i, "err", err)
			return nil, fmt.Errorf("%w: %w", ErrTransfer, err)
		}
		out[i] = res
	}
	return out, nil
}

// deviceInputs holds the buffers of one Apply call. They belong to the
// context and are released when it closes.
type deviceInputs struct {
	mat    device.Matrix
	signal device.Vector
	v      device.Vector
	next   device.Vector
	acc    device.Vector
	table  device.Dense
}

func upload(ctx device.Context, l *sparse.CSR, signal []float64, c filter.Coeffs) (*deviceInputs, error) {
	n := len(signal)
	in := &deviceInputs{}
	var err error

	if in.mat, err = ctx.NewMatrix(l.Rows(), l.Cols(), l.NNZ()); err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}
	indptr, indices, data := l.Raw()
	if err = in.mat.Upload(indptr, indices, data); err != nil {
		return nil, fmt.Errorf("Laplacian: %w", err)
	}

	for _, p := range []*device.Vector{&in.signal, &in.v, &in.next, &in.acc} {
		if *p, err = ctx.NewVector(n); err != nil {
			return nil, fmt.Errorf("signal: %w", err)
		}
	}
	if err = in.signal.Upload(signal); err != nil {
		return nil, fmt.Errorf("signal: %w", err)
	}

	if w := tableWidth(c); w > 0 {
		if in.table, err = ctx.NewDense(len(c), w); err != nil {
			return nil, fmt.Errorf("coefficients: %w", err)
		}
		if err = in.table.Upload(padRows(c, w)); err != nil {
			return nil, fmt.Errorf("coefficients: %w", err)
		}
	}
	return in, nil
}

// scale runs the recurrence for row i with m coefficients and leaves the
// result in in.acc.
func (in *deviceInputs) scale(ctx device.Context, i, m int) error {
	if err := ctx.Copy(in.v, in.signal); err != nil {
		return err
	}
	if err := ctx.Zero(in.acc); err != nil {
		return err
	}
	for j := 1; j < m; j++ {
		if err := ctx.MulVec(in.next, in.mat, in.v); err != nil {
			return fmt.Errorf("order %d: %w", j, err)
		}
		in.v, in.next = in.next, in.v
		if err := ctx.AddScaled(in.acc, in.table, i, j, in.v); err != nil {
			return fmt.Errorf("order %d: %w", j, err)
		}
	}
	return nil
}

func tableWidth(c filter.Coeffs) int {
	w := 0
	for _, row := range c {
		w = max(w, len(row))
	}
	return w
}

// padRows returns c with every row zero-extended to w entries.
func padRows(c filter.Coeffs, w int) [][]float64 {
	rows := make([][]float64, len(c))
	for i, row := range c {
		if len(row) == w {
			rows[i] = row
			continue
		}
		rows[i] = make([]float64, w)
		copy(rows[i], row)
	}
	return rows
}
