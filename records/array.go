package records

// Vector is a strided view over float64 storage. The zero value is an empty
// vector.
//
// Views produced by [SplitValsUncs] share storage with their source unless an
// independent copy was requested, so writes through Set are visible on both
// sides. There is no numeric-array dependency behind this; a stride and an
// offset over a plain slice are all the interleaved layout needs.
type Vector struct {
	data   []float64
	offset int
	stride int
	n      int
}

// NewVector wraps data in a contiguous view. The view aliases data.
func NewVector(data []float64) Vector {
	return Vector{data: data, stride: 1, n: len(data)}
}

// Len returns the number of elements visible through the view.
func (v Vector) Len() int {
	return v.n
}

// At returns element i. It panics if i is out of range.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= v.n {
		panic("records: vector index out of range")
	}
	return v.data[v.offset+i*v.stride]
}

// Set stores x at element i, writing through to the backing storage.
// It panics if i is out of range.
func (v Vector) Set(i int, x float64) {
	if i < 0 || i >= v.n {
		panic("records: vector index out of range")
	}
	v.data[v.offset+i*v.stride] = x
}

// Copy returns a compact vector with its own storage.
func (v Vector) Copy() Vector {
	out := make([]float64, v.n)
	for i := 0; i < v.n; i++ {
		out[i] = v.data[v.offset+i*v.stride]
	}
	return Vector{data: out, stride: 1, n: v.n}
}

// Float64s materializes the view as a fresh slice.
func (v Vector) Float64s() []float64 {
	return v.Copy().data
}

// Matrix is a row-major strided view over float64 storage, the 2-D
// counterpart of [Vector]. The zero value is an empty matrix.
type Matrix struct {
	data      []float64
	offset    int
	rows      int
	cols      int
	rowStride int
	colStride int
}

// NewMatrix wraps row-major data in an r-by-c view. The view aliases data.
// It panics if data holds fewer than r*c elements.
func NewMatrix(r, c int, data []float64) Matrix {
	if len(data) < r*c {
		panic("records: matrix storage too short")
	}
	return Matrix{data: data, rows: r, cols: c, rowStride: c, colStride: 1}
}

// Dims returns the row and column counts of the view.
func (m Matrix) Dims() (r, c int) {
	return m.rows, m.cols
}

// At returns the element at row i, column j. It panics if the indices are
// out of range.
func (m Matrix) At(i, j int) float64 {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("records: matrix index out of range")
	}
	return m.data[m.offset+i*m.rowStride+j*m.colStride]
}

// Set stores x at row i, column j, writing through to the backing storage.
// It panics if the indices are out of range.
func (m Matrix) Set(i, j int, x float64) {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic("records: matrix index out of range")
	}
	m.data[m.offset+i*m.rowStride+j*m.colStride] = x
}

// Row returns a view of row i. The view aliases the matrix storage.
func (m Matrix) Row(i int) Vector {
	if i < 0 || i >= m.rows {
		panic("records: matrix row out of range")
	}
	return Vector{data: m.data, offset: m.offset + i*m.rowStride, stride: m.colStride, n: m.cols}
}

// Copy returns a compact row-major matrix with its own storage.
func (m Matrix) Copy() Matrix {
	out := make([]float64, m.rows*m.cols)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out[i*m.cols+j] = m.data[m.offset+i*m.rowStride+j*m.colStride]
		}
	}
	return Matrix{data: out, rows: m.rows, cols: m.cols, rowStride: m.cols, colStride: 1}
}
