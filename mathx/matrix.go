package mathx

import (
	"fmt"
	"math"
)

// Matrix is a dense row-major matrix. Every row has the same length.
type Matrix [][]float64

// NewMatrix validates that rows is rectangular and copies it.
func NewMatrix(rows [][]float64) (Matrix, error) {
	if err := Matrix(rows).rectangular(); err != nil {
		return nil, err
	}
	m := make(Matrix, len(rows))
	for i, row := range rows {
		m[i] = append([]float64(nil), row...)
	}
	return m, nil
}

func (m Matrix) rectangular() error {
	for i, row := range m {
		if len(row) != m.Cols() {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrDimensionMismatch, i, len(row), m.Cols())
		}
	}
	return nil
}

func Identity(n int) Matrix {
	m := Zeros(n, n)
	for i := 0; i < n; i++ {
		m[i][i] = 1
	}
	return m
}

func Zeros(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
	}
	return m
}

func (m Matrix) Rows() int { return len(m) }

func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return len(m[0])
}

// Transpose expects a rectangular matrix and panics on ragged rows.
func (m Matrix) Transpose() Matrix {
	t := Zeros(m.Cols(), m.Rows())
	for i, row := range m {
		for j, x := range row {
			t[j][i] = x
		}
	}
	return t
}

// Multiply returns m × n.
func (m Matrix) Multiply(n Matrix) (Matrix, error) {
	if err := m.rectangular(); err != nil {
		return nil, err
	}
	if err := n.rectangular(); err != nil {
		return nil, err
	}
	if m.Cols() != n.Rows() {
		return nil, fmt.Errorf("%w: multiply %dx%d by %dx%d", ErrDimensionMismatch, m.Rows(), m.Cols(), n.Rows(), n.Cols())
	}
	out := Zeros(m.Rows(), n.Cols())
	for i := range m {
		for k, mik := range m[i] {
			for j := range n[k] {
				out[i][j] += mik * n[k][j]
			}
		}
	}
	return out, nil
}

// MultiplyVector returns m × v.
func (m Matrix) MultiplyVector(v Vector) (Vector, error) {
	if err := m.rectangular(); err != nil {
		return nil, err
	}
	if m.Cols() != len(v) {
		return nil, fmt.Errorf("%w: multiply %dx%d by %d-vector", ErrDimensionMismatch, m.Rows(), m.Cols(), len(v))
	}
	out := make(Vector, m.Rows())
	for i, row := range m {
		for j, x := range row {
			out[i] += x * v[j]
		}
	}
	return out, nil
}

// Determinant uses Gaussian elimination with partial pivoting.
func (m Matrix) Determinant() (float64, error) {
	if err := m.rectangular(); err != nil {
		return 0, err
	}
	n := m.Rows()
	if n != m.Cols() {
		return 0, fmt.Errorf("%w: %dx%d", ErrNotSquare, m.Rows(), m.Cols())
	}
	if n == 0 {
		return 1, nil
	}

	a := Zeros(n, n)
	for i := range m {
		copy(a[i], m[i])
	}

	det := 1.0
	for col := 0; col < n; col++ {
		pivot := col
		for r := col + 1; r < n; r++ {
			if math.Abs(a[r][col]) > math.Abs(a[pivot][col]) {
				pivot = r
			}
		}
		if a[pivot][col] == 0 {
			return 0, nil
		}
		if pivot != col {
			a[pivot], a[col] = a[col], a[pivot]
			det = -det
		}
		det *= a[col][col]
		for r := col + 1; r < n; r++ {
			f := a[r][col] / a[col][col]
			for c := col; c < n; c++ {
				a[r][c] -= f * a[col][c]
			}
		}
	}
	return det, nil
}
