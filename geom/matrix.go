// Package geom implements the dense row-major matrix used to store and
// transform batches of points before rasterization.
package geom

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Matrix errors.
var (
	ErrDimensionMismatch = errors.New("geom: dimensions do not match")
	ErrOutOfBounds       = errors.New("geom: index out of bounds")
)

// Matrix is a dense row-major rectangular matrix of float64 values.
//
// When used as an edge list, each row represents one point in homogeneous
// coordinates (x, y, z, 1). The backing buffer always holds exactly
// rows*cols values.
type Matrix struct {
	rows, cols int
	data       []float64
}

// New creates a rows × cols matrix backed by data, which must hold exactly
// rows*cols values. The matrix takes ownership of the slice.
func New(rows, cols int, data []float64) (*Matrix, error) {
	if rows < 0 || cols < 0 || rows*cols != len(data) {
		return nil, fmt.Errorf("%w: %d × %d matrix needs %d values, got %d",
			ErrDimensionMismatch, rows, cols, rows*cols, len(data))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// NewFromSlice is like New but copies data instead of taking ownership.
func NewFromSlice(rows, cols int, data []float64) (*Matrix, error) {
	return New(rows, cols, slices.Clone(data))
}

// Ident creates a size × size identity matrix.
func Ident(size int) *Matrix {
	if size < 0 {
		size = 0
	}
	m := &Matrix{rows: size, cols: size, data: make([]float64, size*size)}
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1.0
	}
	return m
}

// Dims returns the row and column count.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

func (m *Matrix) index(row, col int) int {
	return row*m.cols + col
}

// Get returns the value at (row, col). An index at or beyond either
// dimension is not an error: it returns false, mirroring the silent
// out-of-range policy of plotting.
func (m *Matrix) Get(row, col int) (float64, bool) {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return 0, false
	}
	return m.data[m.index(row, col)], true
}

// Set stores a value at (row, col). Unlike Get, an out-of-bounds index is a
// caller contract violation and returns ErrOutOfBounds.
func (m *Matrix) Set(row, col int, v float64) error {
	if row < 0 || col < 0 || row >= m.rows || col >= m.cols {
		return fmt.Errorf("%w: (%d, %d) in %d × %d matrix", ErrOutOfBounds, row, col, m.rows, m.cols)
	}
	m.data[m.index(row, col)] = v
	return nil
}

// AppendRow appends one full row, which must have exactly one value per
// column.
func (m *Matrix) AppendRow(row []float64) error {
	if len(row) != m.cols {
		return fmt.Errorf("%w: row of %d values in %d-column matrix",
			ErrDimensionMismatch, len(row), m.cols)
	}
	m.data = append(m.data, row...)
	m.rows++
	return nil
}

// AppendEdge appends a point as one row, supplying the trailing homogeneous
// coordinate 1.0 itself. The point must have exactly one value less than the
// column count.
func (m *Matrix) AppendEdge(point []float64) error {
	if len(point)+1 != m.cols {
		return fmt.Errorf("%w: point of %d values in %d-column matrix",
			ErrDimensionMismatch, len(point), m.cols)
	}
	m.data = append(m.data, point...)
	m.data = append(m.data, 1.0)
	m.rows++
	return nil
}

// Row iterates over the values of row r. The sequence is restartable; an
// out-of-range row yields nothing.
func (m *Matrix) Row(r int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if r < 0 || r >= m.rows {
			return
		}
		start := r * m.cols
		for _, v := range m.data[start : start+m.cols] {
			if !yield(v) {
				return
			}
		}
	}
}

// Col iterates over the values of column c, striding by the column count.
// The sequence is restartable; an out-of-range column yields nothing.
func (m *Matrix) Col(c int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if c < 0 || c >= m.cols {
			return
		}
		for i := c; i < len(m.data); i += m.cols {
			if !yield(m.data[i]) {
				return
			}
		}
	}
}

// ByRow iterates over the matrix one row at a time. The yielded slices view
// the backing buffer; callers must not grow them.
func (m *Matrix) ByRow() iter.Seq[[]float64] {
	return func(yield func([]float64) bool) {
		if m.cols == 0 {
			return
		}
		for start := 0; start+m.cols <= len(m.data); start += m.cols {
			if !yield(m.data[start : start+m.cols : start+m.cols]) {
				return
			}
		}
	}
}

// Mul returns the matrix product m × other. The column count of m must
// equal the row count of other. Each output cell folds the paired row and
// column values left to right into an accumulator seeded at 0.
func (m *Matrix) Mul(other *Matrix) (*Matrix, error) {
	if m.cols != other.rows {
		return nil, fmt.Errorf("%w: %d × %d times %d × %d",
			ErrDimensionMismatch, m.rows, m.cols, other.rows, other.cols)
	}
	out := &Matrix{
		rows: m.rows,
		cols: other.cols,
		data: make([]float64, m.rows*other.cols),
	}
	for i := range out.data {
		r, c := i/out.cols, i%out.cols
		sum := 0.0
		for k := 0; k < m.cols; k++ {
			sum += m.data[r*m.cols+k] * other.data[k*other.cols+c]
		}
		out.data[i] = sum
	}
	return out, nil
}

// MulInto replaces b with the product a × b.
func MulInto(a, b *Matrix) error {
	p, err := a.Mul(b)
	if err != nil {
		return err
	}
	*b = *p
	return nil
}

// ToIdent overwrites every cell in place: 1.0 where the row index equals the
// column index under the current column count, 0.0 elsewhere. On a
// non-square matrix this produces a generalized identity pattern rather
// than a true identity.
func (m *Matrix) ToIdent() {
	for i := range m.data {
		if i/m.cols == i%m.cols {
			m.data[i] = 1.0
		} else {
			m.data[i] = 0.0
		}
	}
}

// String renders the matrix for diagnostics, traversing column-major with
// two decimal places.
func (m *Matrix) String() string {
	if m.rows == 0 || m.cols == 0 {
		return fmt.Sprintf("Empty matrix (%d by %d)", m.rows, m.cols)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Matrix (%d by %d) {\n", m.rows, m.cols)
	for c := 0; c < m.cols; c++ {
		b.WriteString("  ")
		for i := c; i < len(m.data); i += m.cols {
			fmt.Fprintf(&b, "%.2f ", m.data[i])
		}
		b.WriteByte('\n')
	}
	b.WriteByte('}')
	return b.String()
}
