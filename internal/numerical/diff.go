package numerical

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Diff returns the n-th order finite difference of a along the given axis.
// The output shape equals the input shape with the chosen axis's extent
// reduced by n; the dtype is preserved. n must lie in [0, 9] and be
// strictly less than the axis's extent.
func Diff(a *ndarray.NDArray, n, axis int) (*ndarray.NDArray, error) {
	index, err := normalizeAxis(a, axis)
	if err != nil {
		return nil, err
	}
	if n < 0 || n > 9 || n >= a.Shape()[index] {
		return nil, errors.Wrap(ndarray.ErrValue, "differentiation order out of range")
	}

	// Binomial stencil with alternating signs; coefficients for n <= 9
	// fit an int8.
	stencil := make([]int8, n+1)
	stencil[0] = 1
	for i := 1; i <= n; i++ {
		stencil[i] = int8(-int(stencil[i-1]) * (n - i + 1) / i)
	}

	shape := a.Shape()
	shape[index] -= n
	out, err := ndarray.NewDense(a.NDim(), shape, a.DType())
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case ndarray.Uint8:
		diffKernel[uint8](a, out, shape, index, stencil)
	case ndarray.Int8:
		diffKernel[int8](a, out, shape, index, stencil)
	case ndarray.Uint16:
		diffKernel[uint16](a, out, shape, index, stencil)
	case ndarray.Int16:
		diffKernel[int16](a, out, shape, index, stencil)
	default:
		diffKernel[float64](a, out, shape, index, stencil)
	}
	return out, nil
}

// diffKernel walks the output index space with the source's strides, so
// each output element sees its shifted source window along the diff axis.
// stencil[k] weights the window element n-k positions in, which makes the
// n-th difference come out with the conventional sign for every order.
func diffKernel[T ndarray.Element](a, out *ndarray.NDArray, oshape ndarray.Shape, index int, stencil []int8) {
	in := ndarray.Buffer[T](a)
	res := ndarray.Buffer[T](out)
	stride := a.Strides()[index]
	n := len(stencil) - 1

	it := ndarray.NewDescIter(oshape, a.Strides(), a.Offset())
	for i := 0; ; i++ {
		var acc T
		p := it.Ptr()
		for k, c := range stencil {
			acc += T(c) * in[p+(n-k)*stride]
		}
		res[i] = acc
		if !it.Next() {
			break
		}
	}
}
