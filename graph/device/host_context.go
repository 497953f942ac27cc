package device

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-sgwt/graph"
)

type scalar interface {
	~float32 | ~float64
}

type hostContext[T scalar] struct {
	backend   *HostBackend
	precision Precision
	buffers   map[releaser]struct{}
	scratch   []float64
	closed    bool
}

type releaser interface {
	release()
}

func newHostContext[T scalar](b *HostBackend, p Precision) *hostContext[T] {
	return &hostContext[T]{
		backend:   b,
		precision: p,
		buffers:   make(map[releaser]struct{}),
	}
}

func (c *hostContext[T]) Device() DeviceInfo   { return c.backend.device }
func (c *hostContext[T]) Precision() Precision { return c.precision }

func (c *hostContext[T]) alloc(n uint64, buf releaser) error {
	if c.closed {
		return ErrClosed
	}
	if err := c.backend.reserve(n); err != nil {
		return err
	}
	c.buffers[buf] = struct{}{}
	return nil
}

func (c *hostContext[T]) NewVector(n int) (Vector, error) {
	if n <= 0 {
		return nil, ErrInvalidLength
	}
	v := &hostVector[T]{ctx: c, data: make([]T, n)}
	if err := c.alloc(v.SizeBytes(), v); err != nil {
		return nil, err
	}
	return v, nil
}

func (c *hostContext[T]) NewMatrix(rows, cols, nnz int) (Matrix, error) {
	if rows <= 0 || cols <= 0 || nnz < 0 {
		return nil, ErrInvalidLength
	}
	m := &hostMatrix[T]{
		ctx:     c,
		rows:    rows,
		cols:    cols,
		indptr:  make([]int32, rows+1),
		indices: make([]int32, nnz),
		data:    make([]T, nnz),
	}
	if err := c.alloc(m.SizeBytes(), m); err != nil {
		return nil, err
	}
	return m, nil
}

func (c *hostContext[T]) NewDense(rows, cols int) (Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidLength
	}
	d := &hostDense[T]{ctx: c, rows: rows, cols: cols, data: make([]T, rows*cols)}
	if err := c.alloc(d.SizeBytes(), d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *hostContext[T]) vector(v Vector) (*hostVector[T], error) {
	hv, ok := v.(*hostVector[T])
	if !ok || hv.ctx != c {
		return nil, ErrForeignBuffer
	}
	if hv.data == nil {
		return nil, ErrClosed
	}
	return hv, nil
}

func (c *hostContext[T]) MulVec(dst Vector, a Matrix, x Vector) error {
	d, err := c.vector(dst)
	if err != nil {
		return err
	}
	xv, err := c.vector(x)
	if err != nil {
		return err
	}
	m, ok := a.(*hostMatrix[T])
	if !ok || m.ctx != c {
		return ErrForeignBuffer
	}
	if m.data == nil {
		return ErrClosed
	}
	if d == xv {
		return fmt.Errorf("device: MulVec: dst aliases x: %w", ErrLengthMismatch)
	}
	if len(xv.data) != m.cols || len(d.data) != m.rows {
		return fmt.Errorf("device: MulVec: %dx%d with x=%d dst=%d: %w",
			m.rows, m.cols, len(xv.data), len(d.data), ErrLengthMismatch)
	}
	for i := 0; i < m.rows; i++ {
		var sum T
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			sum += m.data[p] * xv.data[m.indices[p]]
		}
		d.data[i] = sum
	}
	return nil
}

func (c *hostContext[T]) Copy(dst, src Vector) error {
	d, err := c.vector(dst)
	if err != nil {
		return err
	}
	s, err := c.vector(src)
	if err != nil {
		return err
	}
	if len(d.data) != len(s.data) {
		return ErrLengthMismatch
	}
	copy(d.data, s.data)
	return nil
}

func (c *hostContext[T]) Zero(v Vector) error {
	hv, err := c.vector(v)
	if err != nil {
		return err
	}
	clear(hv.data)
	return nil
}

func (c *hostContext[T]) AddScaled(dst Vector, table Dense, row, col int, x Vector) error {
	d, err := c.vector(dst)
	if err != nil {
		return err
	}
	xv, err := c.vector(x)
	if err != nil {
		return err
	}
	t, ok := table.(*hostDense[T])
	if !ok || t.ctx != c {
		return ErrForeignBuffer
	}
	if t.data == nil {
		return ErrClosed
	}
	if row < 0 || row >= t.rows || col < 0 || col >= t.cols || len(d.data) != len(xv.data) {
		return ErrLengthMismatch
	}
	alpha := t.data[row*t.cols+col]

	if df, ok := any(d.data).([]float64); ok {
		xf := any(xv.data).([]float64)
		if len(c.scratch) < len(xf) {
			c.scratch = make([]float64, len(xf))
		}
		tmp := c.scratch[:len(xf)]
		vecmath.ScaleBlock(tmp, xf, float64(alpha))
		vecmath.AddBlockInPlace(df, tmp)
		return nil
	}
	for i, v := range xv.data {
		d.data[i] += alpha * v
	}
	return nil
}

func (c *hostContext[T]) Synchronize() error {
	if c.closed {
		return ErrClosed
	}
	return nil
}

// Close releases every buffer still allocated by the context.
func (c *hostContext[T]) Close() error {
	if c.closed {
		return nil
	}
	for b := range c.buffers {
		b.release()
	}
	c.buffers = nil
	c.closed = true
	graph.Logger().Debug("device: context closed",
		"device", c.backend.device.Name, "in_use", c.backend.Used())
	return nil
}

// forget drops buf from the context after it was closed directly.
func (c *hostContext[T]) forget(buf releaser) {
	delete(c.buffers, buf)
}

type hostVector[T scalar] struct {
	ctx  *hostContext[T]
	data []T
	size uint64
}

func (v *hostVector[T]) Len() int { return len(v.data) }

func (v *hostVector[T]) SizeBytes() uint64 {
	if v.size == 0 {
		v.size = uint64(len(v.data)) * v.ctx.precision.Size()
	}
	return v.size
}

func (v *hostVector[T]) Upload(src []float64) error {
	if v.data == nil {
		return ErrClosed
	}
	if len(src) != len(v.data) {
		return fmt.Errorf("device: upload %d values into vector of %d: %w", len(src), len(v.data), ErrLengthMismatch)
	}
	for i, x := range src {
		v.data[i] = T(x)
	}
	return nil
}

func (v *hostVector[T]) Download(dst []float64) error {
	if v.data == nil {
		return ErrClosed
	}
	if len(dst) != len(v.data) {
		return fmt.Errorf("device: download vector of %d into %d values: %w", len(v.data), len(dst), ErrLengthMismatch)
	}
	for i, x := range v.data {
		dst[i] = float64(x)
	}
	return nil
}

func (v *hostVector[T]) release() {
	v.ctx.backend.release(v.SizeBytes())
	v.data = nil
}

func (v *hostVector[T]) Close() error {
	if v.data == nil {
		return nil
	}
	v.release()
	v.ctx.forget(v)
	return nil
}

type hostMatrix[T scalar] struct {
	ctx     *hostContext[T]
	rows    int
	cols    int
	indptr  []int32
	indices []int32
	data    []T
	size    uint64
}

func (m *hostMatrix[T]) Len() int  { return len(m.indices) }
func (m *hostMatrix[T]) Rows() int { return m.rows }
func (m *hostMatrix[T]) Cols() int { return m.cols }

func (m *hostMatrix[T]) SizeBytes() uint64 {
	if m.size == 0 {
		m.size = uint64(len(m.indptr)+len(m.indices))*4 + uint64(len(m.indices))*m.ctx.precision.Size()
	}
	return m.size
}

func (m *hostMatrix[T]) Upload(indptr, indices []int, data []float64) error {
	if m.indptr == nil {
		return ErrClosed
	}
	if len(indptr) != len(m.indptr) || len(indices) != len(m.indices) || len(data) != len(m.indices) {
		return fmt.Errorf("device: upload CSR indptr=%d indices=%d data=%d into %dx%d nnz=%d: %w",
			len(indptr), len(indices), len(data), m.rows, m.cols, len(m.indices), ErrLengthMismatch)
	}
	for i, p := range indptr {
		if p < 0 || p > len(indices) || p > math.MaxInt32 {
			return fmt.Errorf("device: row pointer %d at %d: %w", p, i, ErrLengthMismatch)
		}
		m.indptr[i] = int32(p)
	}
	for i, c := range indices {
		if c < 0 || c >= m.cols {
			return fmt.Errorf("device: column %d at %d: %w", c, i, ErrLengthMismatch)
		}
		m.indices[i] = int32(c)
	}
	for i, x := range data {
		m.data[i] = T(x)
	}
	return nil
}

func (m *hostMatrix[T]) release() {
	m.ctx.backend.release(m.SizeBytes())
	m.indptr, m.indices, m.data = nil, nil, nil
}

func (m *hostMatrix[T]) Close() error {
	if m.indptr == nil {
		return nil
	}
	m.release()
	m.ctx.forget(m)
	return nil
}

type hostDense[T scalar] struct {
	ctx  *hostContext[T]
	rows int
	cols int
	data []T
	size uint64
}

func (d *hostDense[T]) Len() int  { return len(d.data) }
func (d *hostDense[T]) Rows() int { return d.rows }
func (d *hostDense[T]) Cols() int { return d.cols }

func (d *hostDense[T]) SizeBytes() uint64 {
	if d.size == 0 {
		d.size = uint64(len(d.data)) * d.ctx.precision.Size()
	}
	return d.size
}

func (d *hostDense[T]) Upload(rows [][]float64) error {
	if d.data == nil {
		return ErrClosed
	}
	if len(rows) != d.rows {
		return fmt.Errorf("device: upload %d rows into table of %d: %w", len(rows), d.rows, ErrLengthMismatch)
	}
	for i, row := range rows {
		if len(row) != d.cols {
			return fmt.Errorf("device: row %d has %d values, want %d: %w", i, len(row), d.cols, ErrLengthMismatch)
		}
		for j, x := range row {
			d.data[i*d.cols+j] = T(x)
		}
	}
	return nil
}

func (d *hostDense[T]) release() {
	d.ctx.backend.release(d.SizeBytes())
	d.data = nil
}

func (d *hostDense[T]) Close() error {
	if d.data == nil {
		return nil
	}
	d.release()
	d.ctx.forget(d)
	return nil
}
