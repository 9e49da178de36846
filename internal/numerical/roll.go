package numerical

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Roll circularly shifts a by the given distance, over the flattened array
// when axis is nil or along one axis. The sign of distance sets the
// direction; the effective shift is distance mod the rolled extent. The
// result is always a fresh dense array.
func Roll(a *ndarray.NDArray, distance int, axis any) (*ndarray.NDArray, error) {
	out, err := ndarray.NewDense(a.NDim(), a.Shape(), a.DType())
	if err != nil {
		return nil, err
	}

	switch ax := axis.(type) {
	case nil:
		eff := modShift(distance, a.Len())
		switch a.DType() {
		case ndarray.Uint8:
			rollFlat[uint8](a, out, eff)
		case ndarray.Int8:
			rollFlat[int8](a, out, eff)
		case ndarray.Uint16:
			rollFlat[uint16](a, out, eff)
		case ndarray.Int16:
			rollFlat[int16](a, out, eff)
		default:
			rollFlat[float64](a, out, eff)
		}
		return out, nil
	case int:
		index, err := normalizeAxis(a, ax)
		if err != nil {
			out.Release()
			return nil, err
		}
		eff := modShift(distance, a.Shape()[index])
		switch a.DType() {
		case ndarray.Uint8:
			rollAxis[uint8](a, out, index, eff)
		case ndarray.Int8:
			rollAxis[int8](a, out, index, eff)
		case ndarray.Uint16:
			rollAxis[uint16](a, out, index, eff)
		case ndarray.Int16:
			rollAxis[int16](a, out, index, eff)
		default:
			rollAxis[float64](a, out, index, eff)
		}
		return out, nil
	default:
		out.Release()
		return nil, errors.Wrap(ndarray.ErrType, "wrong axis index")
	}
}

// modShift folds a signed distance into [0, extent).
func modShift(distance, extent int) int {
	return ((distance % extent) + extent) % extent
}

// rollFlat copies in source traversal order while the destination cursor
// starts at the effective shift and wraps to the start once the flattened
// extent is exhausted.
func rollFlat[T ndarray.Element](a, out *ndarray.NDArray, eff int) {
	in := ndarray.Buffer[T](a)
	res := ndarray.Buffer[T](out)
	length := a.Len()

	w := eff
	it := ndarray.NewIter(a)
	for {
		res[w] = in[it.Ptr()]
		w++
		if w == length {
			w = 0
		}
		if !it.Next() {
			break
		}
	}
}

// rollAxis runs the same circular write per lane of the rolled axis,
// walking source and destination kept-axes descriptors in lock-step.
func rollAxis[T ndarray.Element](a, out *ndarray.NDArray, index, eff int) {
	in := ndarray.Buffer[T](a)
	res := ndarray.Buffer[T](out)
	extent := a.Shape()[index]
	sstride := a.Strides()[index]
	dstride := out.Strides()[index]

	kshape, kstrides := reduceAxes(a, index)
	_, dkstrides := reduceAxes(out, index)

	its := ndarray.NewDescIter(kshape, kstrides, a.Offset())
	itd := ndarray.NewDescIter(kshape, dkstrides, 0)
	for {
		sp := its.Ptr()
		dbase := itd.Ptr()
		w := eff
		for l := 0; l < extent; l++ {
			res[dbase+w*dstride] = in[sp]
			sp += sstride
			w++
			if w == extent {
				w = 0
			}
		}
		if !its.Next() {
			break
		}
		itd.Next()
	}
}
