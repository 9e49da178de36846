package numerical

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Flip reverses element order. With an integer axis the result is a view
// sharing a's buffer: the axis's stride is negated and the base offset
// advanced to the last valid position along that axis, so forward
// traversal visits elements in reverse source order without copying. With
// axis nil the whole flattened array is reversed: a fresh dense 1-D copy
// is made first, then read backwards through a negated final stride.
func Flip(a *ndarray.NDArray, axis any) (*ndarray.NDArray, error) {
	switch ax := axis.(type) {
	case nil:
		c, err := ndarray.Copy(a)
		if err != nil {
			return nil, err
		}
		var strides ndarray.Strides
		strides[ndarray.MaxDims-1] = -1
		out := ndarray.NewView(c, 1, ndarray.ShapeOf(c.Len()), strides, c.Len()-1)
		c.Release()
		return out, nil
	case int:
		index, err := normalizeAxis(a, ax)
		if err != nil {
			return nil, err
		}
		shape := a.Shape()
		strides := a.Strides()
		offset := (shape[index] - 1) * strides[index]
		strides[index] = -strides[index]
		return ndarray.NewView(a, a.NDim(), shape, strides, offset), nil
	default:
		return nil, errors.Wrap(ndarray.ErrType, "wrong axis index")
	}
}
