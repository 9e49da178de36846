package ndarray

import "fmt"

// Shape holds per-axis extents, right-aligned into MaxDims slots.
// Slots left of the logical axes are fixed at 1, so that dimension-generic
// code never branches on the actual rank.
type Shape [MaxDims]int

// Strides holds per-axis element steps, right-aligned like Shape.
// Strides are signed: a negative stride expresses a reversed view.
type Strides [MaxDims]int

// ShapeOf builds a right-aligned Shape from logical extents.
// Panics if more than MaxDims extents are given.
func ShapeOf(extents ...int) Shape {
	if len(extents) > MaxDims {
		panic(fmt.Sprintf("ShapeOf: %d extents exceed the %d-dimension cap", len(extents), MaxDims))
	}
	s := Shape{1, 1, 1, 1}
	copy(s[MaxDims-len(extents):], extents)
	return s
}

// NumElements returns the total element count, the product over all slots.
// Unused leading slots hold 1 and do not affect the result.
func (s Shape) NumElements() int {
	n := 1
	for _, dim := range s {
		n *= dim
	}
	return n
}

// Equal checks if two shapes are equal slot for slot.
func (s Shape) Equal(other Shape) bool {
	return s == other
}

// Extents returns the logical extents of the rightmost ndim slots.
func (s Shape) Extents(ndim int) []int {
	out := make([]int, ndim)
	copy(out, s[MaxDims-ndim:])
	return out
}

// validate checks that the rightmost ndim slots are positive and the
// leading slots are 1.
func (s Shape) validate(ndim int) error {
	if ndim < 1 || ndim > MaxDims {
		return fmt.Errorf("rank %d outside [1, %d]", ndim, MaxDims)
	}
	for i := 0; i < MaxDims; i++ {
		if i < MaxDims-ndim {
			if s[i] != 1 {
				return fmt.Errorf("leading slot %d must be 1, got %d", i, s[i])
			}
		} else if s[i] <= 0 {
			return fmt.Errorf("invalid extent at slot %d: %d (must be > 0)", i, s[i])
		}
	}
	return nil
}

// DenseStrides computes canonical row-major element strides for a shape:
// the rightmost axis steps by 1, each next axis by the previous axis's
// stride times its extent. Slots left of the logical axes get stride 0.
func DenseStrides(ndim int, shape Shape) Strides {
	var strides Strides
	strides[MaxDims-1] = 1
	for i := MaxDims - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	for i := 0; i < MaxDims-ndim; i++ {
		strides[i] = 0
	}
	return strides
}

// isDense reports whether strides form the canonical row-major layout for
// shape: no gaps, no reversed axes. Only dense arrays are eligible for
// contiguous-copy fast paths.
func isDense(ndim int, shape Shape, strides Strides) bool {
	want := 1
	for i := MaxDims - 1; i >= MaxDims-ndim; i-- {
		if shape[i] > 1 && strides[i] != want {
			return false
		}
		want *= shape[i]
	}
	return true
}
