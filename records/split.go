package records

// SplitValsUncs splits data into even-indexed expected values and odd-indexed
// relative uncertainties, the interleaved layout SERPENT uses for vectors of
// the form [x1, u1, x2, u2, ...].
//
// The returned vectors are stride-2 views over data unless copy is true, in
// which case both receive independent compact storage. A trailing unpaired
// element is silently dropped, so both results always have len(data)/2
// elements. Empty input yields two empty vectors.
func SplitValsUncs(data []float64, copy bool) (vals, uncs Vector) {
	n := len(data) / 2
	vals = Vector{data: data, offset: 0, stride: 2, n: n}
	uncs = Vector{data: data, offset: 1, stride: 2, n: n}
	if copy {
		vals, uncs = vals.Copy(), uncs.Copy()
	}
	return vals, uncs
}

// SplitValsUncsString converts s with [Str2Vec] before splitting. The views
// alias the freshly parsed storage, so copy only matters if the caller keeps
// both results and mutates one.
func SplitValsUncsString(s string, copy bool) (vals, uncs Vector, err error) {
	data, err := Str2Vec(s)
	if err != nil {
		return Vector{}, Vector{}, err
	}
	vals, uncs = SplitValsUncs(data, copy)
	return vals, uncs, nil
}

// SplitValsUncsMatrix slices the last axis of m into even-indexed value
// columns and odd-indexed uncertainty columns. As with [SplitValsUncs], the
// results are views over m's storage unless copy is true, and a trailing
// unpaired column is dropped.
func SplitValsUncsMatrix(m Matrix, copy bool) (vals, uncs Matrix) {
	c := m.cols / 2
	vals = Matrix{
		data:      m.data,
		offset:    m.offset,
		rows:      m.rows,
		cols:      c,
		rowStride: m.rowStride,
		colStride: m.colStride * 2,
	}
	uncs = Matrix{
		data:      m.data,
		offset:    m.offset + m.colStride,
		rows:      m.rows,
		cols:      c,
		rowStride: m.rowStride,
		colStride: m.colStride * 2,
	}
	if copy {
		vals, uncs = vals.Copy(), uncs.Copy()
	}
	return vals, uncs
}
