package raycaster

import (
	"fmt"
	"math"
	"strings"
)

// Matrix is a square matrix stored flat in row-major order.
// Row and column indices wrap around modulo the size, negatives included.
type Matrix struct {
	size int
	data []float64
}

// NewMatrix copies values into a new matrix; len(values) must be a non-zero perfect square.
func NewMatrix(values ...float64) (Matrix, error) {
	n := int(math.Sqrt(float64(len(values))))
	for n*n > len(values) {
		n--
	}
	for (n+1)*(n+1) <= len(values) {
		n++
	}
	if n == 0 || n*n != len(values) {
		return Matrix{}, fmt.Errorf("%d values: %w", len(values), ErrNotSquare)
	}
	data := make([]float64, len(values))
	copy(data, values)
	return Matrix{size: n, data: data}, nil
}

// MustMatrix is NewMatrix for literals; it panics on bad input.
func MustMatrix(values ...float64) Matrix {
	m, err := NewMatrix(values...)
	if err != nil {
		panic(err)
	}
	return m
}

// Identity returns a fresh 4×4 identity matrix.
func Identity() Matrix {
	return MustMatrix(
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	)
}

func (m Matrix) Size() int { return m.size }

func (m Matrix) Clone() Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return Matrix{size: m.size, data: data}
}

func (m Matrix) wrap(i int) int {
	i %= m.size
	if i < 0 {
		i += m.size
	}
	return i
}

func (m Matrix) offset(row, col int) int { return m.wrap(row)*m.size + m.wrap(col) }

// At returns a single element.
func (m Matrix) At(row, col int) float64 { return m.data[m.offset(row, col)] }

// Row returns a copy of row i.
func (m Matrix) Row(i int) []float64 {
	out := make([]float64, m.size)
	copy(out, m.data[m.wrap(i)*m.size:])
	return out
}

// Column returns a copy of column j.
func (m Matrix) Column(j int) []float64 {
	out := make([]float64, m.size)
	for r := range out {
		out[r] = m.data[r*m.size+m.wrap(j)]
	}
	return out
}

// Rows returns the whole matrix as a list of row copies.
func (m Matrix) Rows() [][]float64 {
	out := make([][]float64, m.size)
	for r := range out {
		out[r] = m.Row(r)
	}
	return out
}

func (m *Matrix) Set(row, col int, v float64) { m.data[m.offset(row, col)] = v }

func (m *Matrix) SetRow(i int, vals []float64) error {
	if len(vals) != m.size {
		return fmt.Errorf("row of %d values into %d×%d matrix: %w", len(vals), m.size, m.size, ErrSizeMismatch)
	}
	copy(m.data[m.wrap(i)*m.size:], vals)
	return nil
}

func (m *Matrix) SetColumn(j int, vals []float64) error {
	if len(vals) != m.size {
		return fmt.Errorf("column of %d values into %d×%d matrix: %w", len(vals), m.size, m.size, ErrSizeMismatch)
	}
	c := m.wrap(j)
	for r, v := range vals {
		m.data[r*m.size+c] = v
	}
	return nil
}

// SetRows replaces every row; nothing is written unless all rows fit.
func (m *Matrix) SetRows(rows [][]float64) error {
	if len(rows) != m.size {
		return fmt.Errorf("%d rows into %d×%d matrix: %w", len(rows), m.size, m.size, ErrSizeMismatch)
	}
	for i, row := range rows {
		if len(row) != m.size {
			return fmt.Errorf("row %d has %d values: %w", i, len(row), ErrSizeMismatch)
		}
	}
	for i, row := range rows {
		copy(m.data[i*m.size:], row)
	}
	return nil
}

// Mul returns m*o; both must be 4×4.
func (m Matrix) Mul(o Matrix) Matrix {
	if m.size != 4 || o.size != 4 {
		panic(fmt.Errorf("multiply %d×%d by %d×%d: %w", m.size, m.size, o.size, o.size, ErrSizeMismatch))
	}
	data := make([]float64, 16)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m.data[r*4+k] * o.data[k*4+c]
			}
			data[r*4+c] = sum
		}
	}
	return Matrix{size: 4, data: data}
}

// MulTuple returns m*t, each component being a row dotted with t.
func (m Matrix) MulTuple(t Tuple) Tuple {
	if m.size != 4 {
		panic(fmt.Errorf("multiply %d×%d by tuple: %w", m.size, m.size, ErrSizeMismatch))
	}
	d := m.data
	return Tuple{
		d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}
}

func (m Matrix) Transpose() Matrix {
	data := make([]float64, len(m.data))
	for r := 0; r < m.size; r++ {
		for c := 0; c < m.size; c++ {
			data[r*m.size+c] = m.data[c*m.size+r]
		}
	}
	return Matrix{size: m.size, data: data}
}

// Determinant expands along row 0 down to the 2×2 case. The empty 0×0
// minor of a 1×1 matrix has determinant 1.
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 0:
		return 1
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	det := 0.0
	for col := 0; col < m.size; col++ {
		det += m.Cofactor(0, col) * m.data[col]
	}
	return det
}

// Submatrix drops one row and one column, keeping the order of the rest.
func (m Matrix) Submatrix(row, col int) Matrix {
	row, col = m.wrap(row), m.wrap(col)
	n := m.size - 1
	data := make([]float64, 0, n*n)
	for pos, v := range m.data {
		if pos/m.size != row && pos%m.size != col {
			data = append(data, v)
		}
	}
	return Matrix{size: n, data: data}
}

func (m Matrix) Minor(row, col int) float64 { return m.Submatrix(row, col).Determinant() }

func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (m.wrap(row)+m.wrap(col))%2 != 0 {
		return -minor
	}
	return minor
}

// IsInvertible is an exact zero test; a near-singular matrix still reports true.
func (m Matrix) IsInvertible() bool { return m.Determinant() != 0 }

// Inverse divides each cofactor by the determinant and transposes the result.
func (m Matrix) Inverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, fmt.Errorf("inverse of %d×%d matrix: %w", m.size, m.size, ErrSingular)
	}
	data := make([]float64, 0, len(m.data))
	for row := 0; row < m.size; row++ {
		for col := 0; col < m.size; col++ {
			data = append(data, m.Cofactor(row, col)/det)
		}
	}
	return Matrix{size: m.size, data: data}.Transpose(), nil
}

func (m Matrix) MustInverse() Matrix {
	inv, err := m.Inverse()
	if err != nil {
		panic(err)
	}
	return inv
}

// IsClose compares elementwise within absTol; matrices of different size never match.
func (m Matrix) IsClose(o Matrix, absTol float64) bool {
	if m.size != o.size {
		return false
	}
	for i, v := range m.data {
		if !isClose(v, o.data[i], absTol) {
			return false
		}
	}
	return true
}

func (m Matrix) Equal(o Matrix) bool { return m.IsClose(o, EqualTol) }

func (m Matrix) String() string {
	var sb strings.Builder
	for i, v := range m.data {
		if i%m.size == 0 {
			sb.WriteString("\n ")
		}
		fmt.Fprintf(&sb, "%-7.2f", v)
	}
	return "[" + strings.TrimSpace(sb.String()) + "]"
}
