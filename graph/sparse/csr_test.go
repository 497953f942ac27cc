package sparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCSRValidation(t *testing.T) {
	tests := []struct {
		name    string
		rows    int
		cols    int
		indptr  []int
		indices []int
		data    []float64
		wantErr error
	}{
		{"bad-shape", 0, 2, []int{0}, nil, nil, ErrBadShape},
		{"short-indptr", 2, 2, []int{0, 1}, []int{0}, []float64{1}, ErrMalformed},
		{"non-monotonic", 2, 2, []int{0, 2, 1}, []int{0}, []float64{1}, ErrMalformed},
		{"column-range", 1, 2, []int{0, 1}, []int{5}, []float64{1}, ErrOutOfRange},
		{"unsorted", 1, 3, []int{0, 2}, []int{2, 1}, []float64{1, 1}, ErrMalformed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewCSR(tt.rows, tt.cols, tt.indptr, tt.indices, tt.data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestNewCSRCopiesInput(t *testing.T) {
	data := []float64{1, 2}
	m, err := NewCSR(2, 2, []int{0, 1, 2}, []int{0, 1}, data)
	require.NoError(t, err)
	data[0] = 99

	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

func TestFromTripletsSumsDuplicates(t *testing.T) {
	m, err := FromTriplets(2, 3, []Triplet{
		{Row: 1, Col: 2, Val: 1},
		{Row: 0, Col: 1, Val: 2},
		{Row: 1, Col: 2, Val: 3},
		{Row: 1, Col: 0, Val: -1},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, m.NNZ())

	indptr, indices, data := m.Raw()
	assert.Equal(t, []int{0, 1, 3}, indptr)
	assert.Equal(t, []int{1, 0, 2}, indices)
	assert.Equal(t, []float64{2, -1, 4}, data)

	_, err = FromTriplets(2, 2, []Triplet{{Row: 2, Col: 0, Val: 1}})
	require.ErrorIs(t, err, ErrOutOfRange)
}

func TestMulVec(t *testing.T) {
	m, err := FromTriplets(3, 3, []Triplet{
		{Row: 0, Col: 0, Val: 2}, {Row: 0, Col: 2, Val: 1},
		{Row: 1, Col: 1, Val: -1},
		{Row: 2, Col: 0, Val: 4}, {Row: 2, Col: 1, Val: 0.5},
	})
	require.NoError(t, err)

	dst := make([]float64, 3)
	require.NoError(t, m.MulVec(dst, []float64{1, 2, 3}))
	assert.Equal(t, []float64{5, -2, 5}, dst)

	require.ErrorIs(t, m.MulVec(dst, []float64{1, 2}), ErrDimensionMismatch)
	require.ErrorIs(t, m.MulVec(dst[:2], []float64{1, 2, 3}), ErrDimensionMismatch)
}

func TestIdentityAndDiag(t *testing.T) {
	id, err := Identity(4)
	require.NoError(t, err)
	x := []float64{1, -2, 3, -4}
	dst := make([]float64, 4)
	require.NoError(t, id.MulVec(dst, x))
	assert.Equal(t, x, dst)

	d, err := Diag([]float64{2, 3})
	require.NoError(t, err)
	v, err := d.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
	v, err = d.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0.0, v)

	_, err = d.At(2, 0)
	require.ErrorIs(t, err, ErrOutOfRange)
	_, err = Identity(0)
	require.ErrorIs(t, err, ErrBadShape)
}

func TestIsSymmetric(t *testing.T) {
	sym, err := FromTriplets(2, 2, []Triplet{{Row: 0, Col: 1, Val: 1}, {Row: 1, Col: 0, Val: 1}})
	require.NoError(t, err)
	assert.True(t, sym.IsSymmetric(0))

	asym, err := FromTriplets(2, 2, []Triplet{{Row: 0, Col: 1, Val: 1}})
	require.NoError(t, err)
	assert.False(t, asym.IsSymmetric(1e-12))

	rect, err := FromTriplets(2, 3, nil)
	require.NoError(t, err)
	assert.False(t, rect.IsSymmetric(0))
}

func TestSizeBytes(t *testing.T) {
	m, err := Identity(3)
	require.NoError(t, err)
	assert.Equal(t, uint64(4*4+3*4+3*8), m.SizeBytes())
}
