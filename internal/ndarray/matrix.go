package ndarray

import "gonum.org/v1/gonum/mat"

// Matrix is a rank-2 view over an array buffer, row-major.
type Matrix struct {
	rows, cols int
	data       []float32
}

// IntoMat reinterprets a rank-2 array as a Matrix. The matrix takes over x's
// buffer: x must not be used afterwards.
// Panics if x does not have exactly two dimensions.
func IntoMat(x *Array) Matrix {
	if len(x.shape) != 2 {
		failf("IntoMat: array must have exactly 2 dimensions, got shape %v", x.shape)
	}
	return Matrix{rows: x.shape[0], cols: x.shape[1], data: x.data}
}

// Rows returns the number of rows.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m Matrix) Cols() int { return m.cols }

// Data returns the row-major element buffer.
func (m Matrix) Data() []float32 { return m.data }

func (m Matrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		failf("Matrix: index (%d, %d) out of bounds for %dx%d", i, j, m.rows, m.cols)
	}
	return i*m.cols + j
}

// At returns the element at row i, column j.
func (m Matrix) At(i, j int) float32 { return m.data[m.index(i, j)] }

// Set sets the element at row i, column j.
func (m Matrix) Set(i, j int, v float32) { m.data[m.index(i, j)] = v }

// Array returns a rank-2 Array sharing the matrix buffer.
func (m Matrix) Array() *Array {
	return &Array{shape: Shape{m.rows, m.cols}, data: m.data}
}

// Dense copies the matrix into a float64 gonum matrix.
// Returns nil for an empty matrix, which gonum cannot represent.
func (m Matrix) Dense() *mat.Dense {
	if m.rows == 0 || m.cols == 0 {
		return nil
	}
	buf := make([]float64, len(m.data))
	for i, v := range m.data {
		buf[i] = float64(v)
	}
	return mat.NewDense(m.rows, m.cols, buf)
}

// FromDense converts a gonum matrix to a Matrix with its own float32 buffer.
func FromDense(d mat.Matrix) Matrix {
	r, c := d.Dims()
	m := Matrix{rows: r, cols: c, data: make([]float32, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = float32(d.At(i, j))
		}
	}
	return m
}
