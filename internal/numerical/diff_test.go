package numerical

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func TestDiffFirstOrder(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 4, 7})

	out, err := Diff(a, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, toFloats(out))
	assert.Equal(t, a.DType(), out.DType())
}

func TestDiffSecondOrder(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 4, 7})

	out, err := Diff(a, 2, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, toFloats(out))
}

func TestDiffZeroOrderCopies(t *testing.T) {
	a := floatArray(t, []float64{3, 1, 4})

	out, err := Diff(a, 0, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 4}, toFloats(out))
	assert.False(t, out.Shared(a))
}

func TestDiffPolynomialAnnihilation(t *testing.T) {
	// third differences of a cubic are constant, fourth are zero
	cube := make([]float64, 8)
	for i := range cube {
		x := float64(i)
		cube[i] = x * x * x
	}
	a := floatArray(t, cube)

	third, err := Diff(a, 3, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{6, 6, 6, 6, 6}, toFloats(third))

	fourth, err := Diff(a, 4, -1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0, 0, 0}, toFloats(fourth))
}

func TestDiffAlongAxes(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 4, 3, 5, 9}, 2, 3)

	rows, err := Diff(a, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.ShapeOf(2, 2), rows.Shape())
	assert.Equal(t, []float64{1, 2, 2, 4}, toFloats(rows))

	cols, err := Diff(a, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, ndarray.ShapeOf(1, 3), cols.Shape())
	assert.Equal(t, []float64{2, 3, 5}, toFloats(cols))
}

func TestDiffIntegerDType(t *testing.T) {
	a, err := ndarray.FromSlice([]int16{10, 7, 3})
	require.NoError(t, err)

	out, err := Diff(a, 1, -1)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Int16, out.DType())
	assert.Equal(t, []int16{-3, -4}, ndarray.Buffer[int16](out))
}

func TestDiffOrderOutOfRange(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3})

	for _, n := range []int{-1, 3, 10} {
		_, err := Diff(a, n, -1)
		assert.True(t, errors.Is(err, ndarray.ErrValue), "n=%d", n)
	}
}

func TestDiffAxisOutOfRange(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3})

	_, err := Diff(a, 1, 1)
	assert.True(t, errors.Is(err, ndarray.ErrValue))
}
