package sparse

import (
	"fmt"
	"math"
	"sort"
)

// CSR is an immutable sparse matrix in compressed sparse row format.
type CSR struct {
	rows    int
	cols    int
	indptr  []int
	indices []int
	data    []float64
}

// Triplet is a single (row, col, value) entry used to assemble a CSR.
type Triplet struct {
	Row, Col int
	Val      float64
}

// NewCSR builds a matrix from raw CSR arrays. The arrays are copied.
// Column indices inside a row must be strictly increasing.
func NewCSR(rows, cols int, indptr, indices []int, data []float64) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("NewCSR: %dx%d: %w", rows, cols, ErrBadShape)
	}
	if len(indptr) != rows+1 || len(indices) != len(data) || indptr[0] != 0 || indptr[rows] != len(data) {
		return nil, fmt.Errorf("NewCSR: indptr=%d indices=%d data=%d: %w",
			len(indptr), len(indices), len(data), ErrMalformed)
	}
	for i := 0; i < rows; i++ {
		if indptr[i+1] < indptr[i] {
			return nil, fmt.Errorf("NewCSR: indptr not monotonic at row %d: %w", i, ErrMalformed)
		}
		for p := indptr[i]; p < indptr[i+1]; p++ {
			c := indices[p]
			if c < 0 || c >= cols {
				return nil, fmt.Errorf("NewCSR: column %d in row %d: %w", c, i, ErrOutOfRange)
			}
			if p > indptr[i] && indices[p-1] >= c {
				return nil, fmt.Errorf("NewCSR: unsorted columns in row %d: %w", i, ErrMalformed)
			}
		}
	}

	return &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  append([]int(nil), indptr...),
		indices: append([]int(nil), indices...),
		data:    append([]float64(nil), data...),
	}, nil
}

// FromTriplets assembles a matrix from unordered entries. Duplicate
// coordinates are summed and explicit zeros are kept.
func FromTriplets(rows, cols int, entries []Triplet) (*CSR, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("FromTriplets: %dx%d: %w", rows, cols, ErrBadShape)
	}
	sorted := make([]Triplet, len(entries))
	copy(sorted, entries)
	for _, e := range sorted {
		if e.Row < 0 || e.Row >= rows || e.Col < 0 || e.Col >= cols {
			return nil, fmt.Errorf("FromTriplets: (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	m := &CSR{
		rows:    rows,
		cols:    cols,
		indptr:  make([]int, rows+1),
		indices: make([]int, 0, len(sorted)),
		data:    make([]float64, 0, len(sorted)),
	}
	for k, e := range sorted {
		if k > 0 && sorted[k-1].Row == e.Row && sorted[k-1].Col == e.Col {
			m.data[len(m.data)-1] += e.Val
			continue
		}
		m.indices = append(m.indices, e.Col)
		m.data = append(m.data, e.Val)
		m.indptr[e.Row+1]++
	}
	for i := 0; i < rows; i++ {
		m.indptr[i+1] += m.indptr[i]
	}
	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) (*CSR, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Identity: n=%d: %w", n, ErrBadShape)
	}
	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	return Diag(ones)
}

// Diag returns the square diagonal matrix with the given diagonal.
func Diag(values []float64) (*CSR, error) {
	n := len(values)
	if n == 0 {
		return nil, fmt.Errorf("Diag: empty diagonal: %w", ErrBadShape)
	}
	m := &CSR{
		rows:    n,
		cols:    n,
		indptr:  make([]int, n+1),
		indices: make([]int, n),
		data:    append([]float64(nil), values...),
	}
	for i := 0; i < n; i++ {
		m.indptr[i+1] = i + 1
		m.indices[i] = i
	}
	return m, nil
}

// Rows returns the number of rows.
func (m *CSR) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *CSR) Cols() int { return m.cols }

// NNZ returns the number of stored entries.
func (m *CSR) NNZ() int { return len(m.data) }

// IsSquare reports whether the matrix is square.
func (m *CSR) IsSquare() bool { return m.rows == m.cols }

// At returns the entry at (i, j); missing entries are zero.
func (m *CSR) At(i, j int) (float64, error) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		return 0, fmt.Errorf("At(%d,%d): %w", i, j, ErrOutOfRange)
	}
	lo, hi := m.indptr[i], m.indptr[i+1]
	p := lo + sort.SearchInts(m.indices[lo:hi], j)
	if p < hi && m.indices[p] == j {
		return m.data[p], nil
	}
	return 0, nil
}

// Row calls fn for every stored entry of row i in column order.
func (m *CSR) Row(i int, fn func(col int, val float64)) {
	for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
		fn(m.indices[p], m.data[p])
	}
}

// Raw returns the underlying CSR arrays. Callers must not modify them.
func (m *CSR) Raw() (indptr, indices []int, data []float64) {
	return m.indptr, m.indices, m.data
}

// MulVec computes dst = m·x. dst and x must not alias.
func (m *CSR) MulVec(dst, x []float64) error {
	if len(x) != m.cols || len(dst) != m.rows {
		return fmt.Errorf("MulVec: matrix %dx%d, x=%d, dst=%d: %w",
			m.rows, m.cols, len(x), len(dst), ErrDimensionMismatch)
	}
	for i := 0; i < m.rows; i++ {
		var sum float64
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			sum += m.data[p] * x[m.indices[p]]
		}
		dst[i] = sum
	}
	return nil
}

// SizeBytes estimates the memory held by the matrix arrays, using 4-byte
// indices and 8-byte values as a device copy would.
func (m *CSR) SizeBytes() uint64 {
	return uint64(len(m.indptr))*4 + uint64(len(m.indices))*4 + uint64(len(m.data))*8
}

// IsSymmetric reports whether m equals its transpose within eps.
func (m *CSR) IsSymmetric(eps float64) bool {
	if !m.IsSquare() {
		return false
	}
	for i := 0; i < m.rows; i++ {
		for p := m.indptr[i]; p < m.indptr[i+1]; p++ {
			j := m.indices[p]
			v, _ := m.At(j, i)
			if math.Abs(v-m.data[p]) > eps {
				return false
			}
		}
	}
	return true
}
