package numerical

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func TestRollFlattened(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4, 5})

	out, err := Roll(a, 2, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 1, 2, 3}, toFloats(out))
	assert.False(t, out.Shared(a))
}

func TestRollNegativeDistance(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4, 5})

	out, err := Roll(a, -1, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 4, 5, 1}, toFloats(out))
}

func TestRollFullPeriodIdentity(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4})

	for _, d := range []int{0, 4, -4, 8} {
		out, err := Roll(a, d, nil)
		require.NoError(t, err)
		assert.Equal(t, []float64{1, 2, 3, 4}, toFloats(out), "distance %d", d)
	}
}

func TestRollInverseComposition(t *testing.T) {
	a := floatArray(t, []float64{7, 1, 4, 9, 2})

	fwd, err := Roll(a, 3, nil)
	require.NoError(t, err)
	back, err := Roll(fwd, -3, nil)
	require.NoError(t, err)
	assert.Equal(t, toFloats(a), toFloats(back))
}

func TestRollAxis(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	rows, err := Roll(a, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, a.Shape(), rows.Shape())
	assert.Equal(t, []float64{3, 1, 2, 6, 4, 5}, toFloats(rows))

	cols, err := Roll(a, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, []float64{4, 5, 6, 1, 2, 3}, toFloats(cols))
}

func TestRollAxisNegativeDistance(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3, 4, 5, 6}, 2, 3)

	out, err := Roll(a, -1, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 1, 5, 6, 4}, toFloats(out))
}

func TestRollFlipsDType(t *testing.T) {
	a, err := ndarray.FromSlice([]uint16{10, 20, 30})
	require.NoError(t, err)

	out, err := Roll(a, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, ndarray.Uint16, out.DType())
	assert.Equal(t, []uint16{30, 10, 20}, ndarray.Buffer[uint16](out))
}

func TestRollOverView(t *testing.T) {
	// rolling a flipped view reads it in its logical (reversed) order
	a := floatArray(t, []float64{1, 2, 3, 4})
	rev, err := Flip(a, 0)
	require.NoError(t, err)

	out, err := Roll(rev, 1, nil)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 4, 3, 2}, toFloats(out))
}

func TestRollErrors(t *testing.T) {
	a := floatArray(t, []float64{1, 2, 3})

	_, err := Roll(a, 1, 1)
	assert.True(t, errors.Is(err, ndarray.ErrValue))

	_, err = Roll(a, 1, "x")
	assert.True(t, errors.Is(err, ndarray.ErrType))
}

func TestModShift(t *testing.T) {
	tests := []struct {
		d, extent, want int
	}{
		{0, 5, 0},
		{2, 5, 2},
		{7, 5, 2},
		{-1, 5, 4},
		{-6, 5, 4},
		{5, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, modShift(tt.d, tt.extent), "modShift(%d, %d)", tt.d, tt.extent)
	}
}
