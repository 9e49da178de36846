package ndarray

import "github.com/pkg/errors"

// FromSlice builds a dense array from a flat Go slice. With no extents the
// result is 1-D over the whole slice; otherwise the extents must multiply
// to len(data). The slice is copied into fresh storage.
func FromSlice[T Element](data []T, extents ...int) (*NDArray, error) {
	if len(extents) == 0 {
		extents = []int{len(data)}
	}
	if len(extents) > MaxDims {
		return nil, errors.Wrapf(ErrValue, "rank %d exceeds the %d-dimension cap", len(extents), MaxDims)
	}
	shape := ShapeOf(extents...)
	if shape.NumElements() != len(data) {
		return nil, errors.Wrapf(ErrValue, "shape %v requires %d elements, got %d", extents, shape.NumElements(), len(data))
	}
	a, err := NewDense(len(extents), shape, DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	copy(Buffer[T](a), data)
	return a, nil
}

// FromBools builds a logical array: uint8 storage carrying the boolean
// flag. Bool itself is never a stored dtype.
func FromBools(data []bool, extents ...int) (*NDArray, error) {
	raw := make([]uint8, len(data))
	for i, v := range data {
		if v {
			raw[i] = 1
		}
	}
	a, err := FromSlice(raw, extents...)
	if err != nil {
		return nil, err
	}
	a.boolean = true
	return a, nil
}

// Full builds a dense array with every element set to value.
func Full[T Element](value T, extents ...int) (*NDArray, error) {
	shape := ShapeOf(extents...)
	a, err := NewDense(len(extents), shape, DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Buffer[T](a)
	for i := range data {
		data[i] = value
	}
	return a, nil
}

// Arange builds a 1-D dense array with values start, start+1, .. up to but
// excluding stop.
func Arange[T Element](start, stop T) (*NDArray, error) {
	n := int(float64(stop) - float64(start))
	if n <= 0 {
		return nil, errors.Wrap(ErrValue, "stop must be greater than start")
	}
	a, err := NewDense(1, ShapeOf(n), DTypeOf[T]())
	if err != nil {
		return nil, err
	}
	data := Buffer[T](a)
	for i := range data {
		data[i] = start + T(i)
	}
	return a, nil
}
