package device

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterHostBackend(t *testing.T) {
	RegisterBackend(nil)
	_, ok := CurrentBackendInfo()
	assert.False(t, ok)

	b := RegisterHostBackend()
	defer RegisterBackend(nil)

	info, ok := CurrentBackendInfo()
	require.True(t, ok)
	assert.Equal(t, "host", info.Name)
	assert.Same(t, b, CurrentBackend())
	assert.True(t, b.Available())

	devs, err := b.Devices()
	require.NoError(t, err)
	require.Len(t, devs, 1)
	assert.Equal(t, gputypes.DefaultLimits().MaxBufferSize, devs[0].MaxAllocBytes())
}

func TestHostContextDeviceIndex(t *testing.T) {
	b := NewHostBackend()
	_, err := b.NewContext(1, Float64)
	require.Error(t, err)
	_, err = b.NewContext(0, Precision(9))
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestHostVectorRoundTrip(t *testing.T) {
	for _, p := range []Precision{Float64, Float32} {
		t.Run(p.String(), func(t *testing.T) {
			b := NewHostBackend()
			ctx, err := b.NewContext(0, p)
			require.NoError(t, err)
			defer func() { _ = ctx.Close() }()

			v, err := ctx.NewVector(3)
			require.NoError(t, err)
			assert.Equal(t, uint64(3)*p.Size(), v.SizeBytes())
			require.NoError(t, v.Upload([]float64{1, 2.5, -3}))

			out := make([]float64, 3)
			require.NoError(t, v.Download(out))
			assert.Equal(t, []float64{1, 2.5, -3}, out)

			require.ErrorIs(t, v.Upload([]float64{1}), ErrLengthMismatch)
			require.ErrorIs(t, v.Download(make([]float64, 4)), ErrLengthMismatch)
		})
	}
}

func TestHostMulVecAndAccumulate(t *testing.T) {
	for _, p := range []Precision{Float64, Float32} {
		t.Run(p.String(), func(t *testing.T) {
			b := NewHostBackend()
			ctx, err := b.NewContext(0, p)
			require.NoError(t, err)
			defer func() { _ = ctx.Close() }()

			// [[2 0 1] [0 -1 0] [4 0.5 0]]
			m, err := ctx.NewMatrix(3, 3, 5)
			require.NoError(t, err)
			require.NoError(t, m.Upload([]int{0, 2, 3, 5}, []int{0, 2, 1, 0, 1}, []float64{2, 1, -1, 4, 0.5}))

			x, err := ctx.NewVector(3)
			require.NoError(t, err)
			y, err := ctx.NewVector(3)
			require.NoError(t, err)
			acc, err := ctx.NewVector(3)
			require.NoError(t, err)
			require.NoError(t, x.Upload([]float64{1, 2, 3}))

			require.NoError(t, ctx.MulVec(y, m, x))
			out := make([]float64, 3)
			require.NoError(t, y.Download(out))
			assert.Equal(t, []float64{5, -2, 5}, out)

			table, err := ctx.NewDense(2, 2)
			require.NoError(t, err)
			require.NoError(t, table.Upload([][]float64{{0, 0.5}, {2, 0}}))

			require.NoError(t, ctx.Zero(acc))
			require.NoError(t, ctx.AddScaled(acc, table, 0, 1, y))
			require.NoError(t, ctx.AddScaled(acc, table, 1, 0, x))
			require.NoError(t, acc.Download(out))
			assert.InDeltaSlice(t, []float64{4.5, 3, 8.5}, out, 1e-6)

			require.NoError(t, ctx.Copy(acc, x))
			require.NoError(t, acc.Download(out))
			assert.Equal(t, []float64{1, 2, 3}, out)

			require.Error(t, ctx.MulVec(x, m, x))
			require.ErrorIs(t, ctx.AddScaled(acc, table, 2, 0, x), ErrLengthMismatch)
			require.NoError(t, ctx.Synchronize())
		})
	}
}

func TestHostForeignBuffers(t *testing.T) {
	b := NewHostBackend()
	c1, err := b.NewContext(0, Float64)
	require.NoError(t, err)
	defer func() { _ = c1.Close() }()
	c2, err := b.NewContext(0, Float32)
	require.NoError(t, err)
	defer func() { _ = c2.Close() }()

	v1, err := c1.NewVector(2)
	require.NoError(t, err)
	v2, err := c2.NewVector(2)
	require.NoError(t, err)
	require.ErrorIs(t, c1.Copy(v1, v2), ErrForeignBuffer)
	require.ErrorIs(t, c2.Zero(v1), ErrForeignBuffer)
}

func TestHostAllocationLimits(t *testing.T) {
	b := NewHostBackend(WithMaxBufferSize(64), WithMemoryBudget(100))
	ctx, err := b.NewContext(0, Float64)
	require.NoError(t, err)
	defer func() { _ = ctx.Close() }()

	_, err = ctx.NewVector(9)
	require.ErrorIs(t, err, ErrAllocationTooLarge)

	v, err := ctx.NewVector(8)
	require.NoError(t, err)
	_, err = ctx.NewVector(8)
	require.ErrorIs(t, err, ErrOutOfMemory)

	require.NoError(t, v.Close())
	require.NoError(t, v.Close())
	assert.Equal(t, 0, b.Live())
	_, err = ctx.NewVector(8)
	require.NoError(t, err)

	_, err = ctx.NewVector(0)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestHostContextCloseReleasesBuffers(t *testing.T) {
	b := NewHostBackend()
	ctx, err := b.NewContext(0, Float32)
	require.NoError(t, err)

	v, err := ctx.NewVector(16)
	require.NoError(t, err)
	_, err = ctx.NewMatrix(4, 4, 8)
	require.NoError(t, err)
	_, err = ctx.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, b.Live())
	assert.Equal(t, uint64(16*4+(5+8)*4+8*4+6*4), b.Used())

	require.NoError(t, ctx.Close())
	require.NoError(t, ctx.Close())
	assert.Equal(t, 0, b.Live())
	assert.Equal(t, uint64(0), b.Used())

	require.ErrorIs(t, v.Upload(make([]float64, 16)), ErrClosed)
	_, err = ctx.NewVector(1)
	require.ErrorIs(t, err, ErrClosed)
	require.ErrorIs(t, ctx.Synchronize(), ErrClosed)
}

func TestPrecision(t *testing.T) {
	assert.Equal(t, uint64(8), Float64.Size())
	assert.Equal(t, uint64(4), Float32.Size())
	assert.Equal(t, "float32", Float32.String())
	assert.Equal(t, "Precision(7)", Precision(7).String())
}
