package numerical

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func TestMinMaxFlattened(t *testing.T) {
	a := floatArray(t, []float64{3, 1, 1, 5})

	lo, err := Min(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, lo)

	hi, err := Max(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 5.0, hi)
}

func TestArgMinMaxFirstTieWins(t *testing.T) {
	a := floatArray(t, []float64{3, 1, 1, 5})

	pos, err := ArgMin(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, pos)

	pos, err = ArgMax(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, pos)
}

func TestMinMaxIntegerScalars(t *testing.T) {
	a, err := ndarray.FromSlice([]int8{-7, 4, 0})
	require.NoError(t, err)

	lo, err := Min(a, nil)
	require.NoError(t, err)
	assert.Equal(t, -7, lo)

	hi, err := Max(a, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, hi)
}

func TestMinMaxAxis(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 6, 5, 4}, 2, 3)

	lo, err := Min(a, 0)
	require.NoError(t, err)
	out := lo.(*ndarray.NDArray)
	assert.Equal(t, a.DType(), out.DType())
	assert.Equal(t, []float64{1, 2, 3}, toFloats(out))

	hi, err := Max(a, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 6}, toFloats(hi.(*ndarray.NDArray)))
}

func TestArgMinMaxAxisDType(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 6, 5, 4}, 2, 3)

	pos, err := ArgMax(a, 1)
	require.NoError(t, err)
	out := pos.(*ndarray.NDArray)
	assert.Equal(t, ndarray.Int16, out.DType())
	assert.Equal(t, []int16{2, 0}, ndarray.Buffer[int16](out))
}

func TestArgMinAxisTies(t *testing.T) {
	a := floatArray(t, []float64{2, 2, 1, 1}, 2, 2)

	pos, err := ArgMin(a, 1)
	require.NoError(t, err)
	out := pos.(*ndarray.NDArray)
	assert.Equal(t, []int16{0, 0}, ndarray.Buffer[int16](out))
}

func TestMinMaxRank1AxisUnwrapsScalar(t *testing.T) {
	a := floatArray(t, []float64{4, 2, 9})

	lo, err := Min(a, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, lo)

	pos, err := ArgMax(a, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, pos)
}

func TestMinMaxAxisOutOfRange(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4}, 2, 2)

	_, err := Max(a, 2)
	assert.True(t, errors.Is(err, ndarray.ErrValue))
}
