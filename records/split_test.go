package records

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitValsUncs(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		wantVals []float64
		wantUncs []float64
	}{
		{
			name:     "even length",
			input:    []float64{1, 2, 3, 4},
			wantVals: []float64{1, 3},
			wantUncs: []float64{2, 4},
		},
		{
			name:     "odd length drops trailing element",
			input:    []float64{1, 2, 3},
			wantVals: []float64{1},
			wantUncs: []float64{2},
		},
		{
			name:     "single element drops everything",
			input:    []float64{1},
			wantVals: []float64{},
			wantUncs: []float64{},
		},
		{
			name:     "empty input",
			input:    nil,
			wantVals: []float64{},
			wantUncs: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vals, uncs := SplitValsUncs(tt.input, false)
			assert.Equal(t, tt.wantVals, vals.Float64s())
			assert.Equal(t, tt.wantUncs, uncs.Float64s())
			assert.Equal(t, vals.Len(), uncs.Len())
		})
	}
}

func TestSplitValsUncsAliasing(t *testing.T) {
	t.Run("views write through to the source", func(t *testing.T) {
		data := []float64{1, 2, 3, 4}
		vals, uncs := SplitValsUncs(data, false)

		vals.Set(1, 30)
		uncs.Set(0, 20)

		assert.Equal(t, []float64{1, 20, 30, 4}, data)
	})

	t.Run("source writes are visible through views", func(t *testing.T) {
		data := []float64{1, 2, 3, 4}
		vals, _ := SplitValsUncs(data, false)

		data[2] = 99
		assert.Equal(t, 99.0, vals.At(1))
	})

	t.Run("copies are independent", func(t *testing.T) {
		data := []float64{1, 2, 3, 4}
		vals, uncs := SplitValsUncs(data, true)

		vals.Set(0, -1)
		uncs.Set(1, -1)

		assert.Equal(t, []float64{1, 2, 3, 4}, data)
	})
}

func TestSplitValsUncsString(t *testing.T) {
	t.Run("parses then splits", func(t *testing.T) {
		vals, uncs, err := SplitValsUncsString("1.29362E+00 0.00087 6.50000E-01 0.00123", false)
		require.NoError(t, err)
		assert.Equal(t, []float64{1.29362, 0.65}, vals.Float64s())
		assert.Equal(t, []float64{0.00087, 0.00123}, uncs.Float64s())
	})

	t.Run("conversion failure propagates", func(t *testing.T) {
		_, _, err := SplitValsUncsString("1.0 bad", false)
		require.Error(t, err)
	})
}

func TestSplitValsUncsMatrix(t *testing.T) {
	// Two energy groups, two value/uncertainty pairs per row.
	m := NewMatrix(2, 4, []float64{
		1, 0.1, 2, 0.2,
		3, 0.3, 4, 0.4,
	})

	t.Run("slices the last axis", func(t *testing.T) {
		vals, uncs := SplitValsUncsMatrix(m, false)

		r, c := vals.Dims()
		assert.Equal(t, 2, r)
		assert.Equal(t, 2, c)

		assert.Equal(t, []float64{1, 2}, vals.Row(0).Float64s())
		assert.Equal(t, []float64{3, 4}, vals.Row(1).Float64s())
		assert.Equal(t, []float64{0.1, 0.2}, uncs.Row(0).Float64s())
		assert.Equal(t, []float64{0.3, 0.4}, uncs.Row(1).Float64s())
	})

	t.Run("views alias the matrix storage", func(t *testing.T) {
		data := []float64{1, 0.1, 2, 0.2}
		src := NewMatrix(1, 4, data)
		vals, _ := SplitValsUncsMatrix(src, false)

		vals.Set(0, 1, 42)
		assert.Equal(t, 42.0, src.At(0, 2))
		assert.Equal(t, 42.0, data[2])
	})

	t.Run("copies are independent", func(t *testing.T) {
		data := []float64{1, 0.1, 2, 0.2}
		src := NewMatrix(1, 4, data)
		vals, uncs := SplitValsUncsMatrix(src, true)

		vals.Set(0, 0, -1)
		uncs.Set(0, 0, -1)
		assert.Equal(t, []float64{1, 0.1, 2, 0.2}, data)
	})

	t.Run("odd column count drops the trailing column", func(t *testing.T) {
		src := NewMatrix(2, 3, []float64{1, 0.1, 9, 2, 0.2, 9})
		vals, uncs := SplitValsUncsMatrix(src, false)

		_, c := vals.Dims()
		assert.Equal(t, 1, c)
		assert.Equal(t, []float64{1}, vals.Row(0).Float64s())
		assert.Equal(t, []float64{0.2}, uncs.Row(1).Float64s())
	})
}
