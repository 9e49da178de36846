package numerical

import (
	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

func minMaxArray(a *ndarray.NDArray, ax int, hasAxis bool, op opKind) (any, error) {
	if a.Len() == 0 {
		return nil, errors.Wrap(ndarray.ErrValue, "attempt to get (arg)min/(arg)max of empty sequence")
	}

	if !hasAxis {
		switch a.DType() {
		case ndarray.Uint8:
			return flatScalar(minMaxFlat[uint8](a, op))
		case ndarray.Int8:
			return flatScalar(minMaxFlat[int8](a, op))
		case ndarray.Uint16:
			return flatScalar(minMaxFlat[uint16](a, op))
		case ndarray.Int16:
			return flatScalar(minMaxFlat[int16](a, op))
		default:
			return flatScalar(minMaxFlat[float64](a, op))
		}
	}

	index, err := normalizeAxis(a, ax)
	if err != nil {
		return nil, err
	}
	shape, strides := reduceAxes(a, index)

	// Positional results use a fixed compact integer width; the extreme
	// values keep the source dtype.
	outDtype := a.DType()
	if op == opArgMin || op == opArgMax {
		outDtype = ndarray.Int16
	}
	out, err := ndarray.NewDense(maxInt(1, a.NDim()-1), shape, outDtype)
	if err != nil {
		return nil, err
	}

	switch a.DType() {
	case ndarray.Uint8:
		minMaxAxis[uint8](a, shape, strides, index, out, op)
	case ndarray.Int8:
		minMaxAxis[int8](a, shape, strides, index, out, op)
	case ndarray.Uint16:
		minMaxAxis[uint16](a, shape, strides, index, out, op)
	case ndarray.Int16:
		minMaxAxis[int16](a, shape, strides, index, out, op)
	default:
		minMaxAxis[float64](a, shape, strides, index, out, op)
	}

	if out.Len() == 1 {
		defer out.Release()
		return ndarray.Scalar(out), nil
	}
	return out, nil
}

// minMaxFlat scans the whole array in traversal order, tracking the best
// value and its first-seen position.
func minMaxFlat[T ndarray.Element](a *ndarray.NDArray, op opKind) (T, int, opKind) {
	data := ndarray.Buffer[T](a)
	it := ndarray.NewIter(a)
	best := data[it.Ptr()]
	bestIdx := 0
	wantMax := op == opMax || op == opArgMax
	for i := 1; it.Next(); i++ {
		v := data[it.Ptr()]
		if (wantMax && v > best) || (!wantMax && v < best) {
			best = v
			bestIdx = i
		}
	}
	return best, bestIdx, op
}

// flatScalar unwraps a flattened min/max result into a host scalar: the
// value for min/max, the position for the arg variants.
func flatScalar[T ndarray.Element](best T, bestIdx int, op opKind) (any, error) {
	if op == opArgMin || op == opArgMax {
		return bestIdx, nil
	}
	switch v := any(best).(type) {
	case float64:
		return v, nil
	case uint8:
		return int(v), nil
	case int8:
		return int(v), nil
	case uint16:
		return int(v), nil
	case int16:
		return int(v), nil
	default:
		return nil, errors.Wrap(ndarray.ErrNotImplemented, "unsupported element type")
	}
}

// minMaxAxis scans the reduced axis for every fixed index of the kept
// axes. Ties keep the earliest position along the axis.
func minMaxAxis[T ndarray.Element](a *ndarray.NDArray, kshape ndarray.Shape, kstrides ndarray.Strides, index int, out *ndarray.NDArray, op opKind) {
	in := ndarray.Buffer[T](a)
	extent := a.Shape()[index]
	stride := a.Strides()[index]
	wantMax := op == opMax || op == opArgMax
	wantArg := op == opArgMin || op == opArgMax

	var vres []T
	var ares []int16
	if wantArg {
		ares = ndarray.Buffer[int16](out)
	} else {
		vres = ndarray.Buffer[T](out)
	}

	it := ndarray.NewDescIter(kshape, kstrides, a.Offset())
	for i := 0; ; i++ {
		p := it.Ptr()
		best := in[p]
		bestIdx := 0
		for l := 1; l < extent; l++ {
			p += stride
			v := in[p]
			if (wantMax && v > best) || (!wantMax && v < best) {
				best = v
				bestIdx = l
			}
		}
		if wantArg {
			ares[i] = int16(bestIdx)
		} else {
			vres[i] = best
		}
		if !it.Next() {
			break
		}
	}
}
