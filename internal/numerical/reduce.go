package numerical

import (
	"math"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// reduceAxes removes the axis at physical slot index from a's descriptor,
// shifting the axes left of it one slot toward the interior and leaving
// slot 0 at extent 1 / stride 0. The result describes the iteration space
// of the kept axes. A rank-1 source collapses to the degenerate
// single-element descriptor.
func reduceAxes(a *ndarray.NDArray, index int) (ndarray.Shape, ndarray.Strides) {
	shape := ndarray.Shape{1, 1, 1, 1}
	var strides ndarray.Strides
	if a.NDim() == 1 {
		return shape, strides
	}
	ashape, astrides := a.Shape(), a.Strides()
	for i := ndarray.MaxDims - 1; i > 0; i-- {
		if i > index {
			shape[i] = ashape[i]
			strides[i] = astrides[i]
		} else {
			shape[i] = ashape[i-1]
			strides[i] = astrides[i-1]
		}
	}
	return shape, strides
}

// welford is the streaming mean/deviation accumulator: one pass, no
// catastrophic cancellation. s is the running sum of squared deviations.
type welford struct {
	count int
	mean  float64
	s     float64
}

func (w *welford) add(v float64) {
	w.count++
	next := w.mean + (v-w.mean)/float64(w.count)
	w.s += (v - w.mean) * (v - next)
	w.mean = next
}

// std finalizes the deviation with ddof subtracted from the count in the
// denominator; 0 when the count does not exceed ddof.
func (w *welford) std(ddof int) float64 {
	if w.count <= ddof {
		return 0
	}
	return math.Sqrt(w.s / float64(w.count-ddof))
}

func sumMeanStdArray(a *ndarray.NDArray, ax int, hasAxis bool, op opKind, ddof int) (any, error) {
	if !hasAxis {
		if op == opSum {
			return flatSum(a), nil
		}
		var w welford
		it := ndarray.NewIter(a)
		for {
			w.add(ndarray.FloatAt(a, it.Ptr()))
			if !it.Next() {
				break
			}
		}
		if op == opMean {
			return w.mean, nil
		}
		return w.std(ddof), nil
	}

	index, err := normalizeAxis(a, ax)
	if err != nil {
		return nil, err
	}
	shape, strides := reduceAxes(a, index)

	outDtype := ndarray.Float
	if op == opSum {
		outDtype = a.DType()
	}
	out, err := ndarray.NewDense(maxInt(1, a.NDim()-1), shape, outDtype)
	if err != nil {
		return nil, err
	}

	if op == opSum {
		switch a.DType() {
		case ndarray.Uint8:
			sumAxis[uint8](a, shape, strides, index, out)
		case ndarray.Int8:
			sumAxis[int8](a, shape, strides, index, out)
		case ndarray.Uint16:
			sumAxis[uint16](a, shape, strides, index, out)
		case ndarray.Int16:
			sumAxis[int16](a, shape, strides, index, out)
		default:
			sumAxis[float64](a, shape, strides, index, out)
		}
	} else {
		meanStdAxis(a, shape, strides, index, out, op, ddof)
	}

	if out.Len() == 1 {
		defer out.Release()
		return ndarray.Scalar(out), nil
	}
	return out, nil
}

// flatSum folds the whole array in traversal order, accumulating in the
// array's own element type. Integer dtypes deliberately keep their narrow
// accumulator; overflow wraps.
func flatSum(a *ndarray.NDArray) any {
	switch a.DType() {
	case ndarray.Uint8:
		return int(sumFlat[uint8](a))
	case ndarray.Int8:
		return int(sumFlat[int8](a))
	case ndarray.Uint16:
		return int(sumFlat[uint16](a))
	case ndarray.Int16:
		return int(sumFlat[int16](a))
	default:
		return sumFlat[float64](a)
	}
}

func sumFlat[T ndarray.Element](a *ndarray.NDArray) T {
	data := ndarray.Buffer[T](a)
	it := ndarray.NewIter(a)
	var acc T
	for {
		acc += data[it.Ptr()]
		if !it.Next() {
			break
		}
	}
	return acc
}

// sumAxis folds the reduced axis for every fixed index of the kept axes,
// writing results in row-major order into the dense output.
func sumAxis[T ndarray.Element](a *ndarray.NDArray, kshape ndarray.Shape, kstrides ndarray.Strides, index int, out *ndarray.NDArray) {
	in := ndarray.Buffer[T](a)
	res := ndarray.Buffer[T](out)
	extent := a.Shape()[index]
	stride := a.Strides()[index]

	it := ndarray.NewDescIter(kshape, kstrides, a.Offset())
	for i := 0; ; i++ {
		var acc T
		p := it.Ptr()
		for l := 0; l < extent; l++ {
			acc += in[p]
			p += stride
		}
		res[i] = acc
		if !it.Next() {
			break
		}
	}
}

// meanStdAxis runs the streaming update along the reduced axis for every
// fixed index of the kept axes. The output is always Float.
func meanStdAxis(a *ndarray.NDArray, kshape ndarray.Shape, kstrides ndarray.Strides, index int, out *ndarray.NDArray, op opKind, ddof int) {
	res := ndarray.Buffer[float64](out)
	extent := a.Shape()[index]
	stride := a.Strides()[index]

	it := ndarray.NewDescIter(kshape, kstrides, a.Offset())
	for i := 0; ; i++ {
		var w welford
		p := it.Ptr()
		for l := 0; l < extent; l++ {
			w.add(ndarray.FloatAt(a, p))
			p += stride
		}
		if op == opMean {
			res[i] = w.mean
		} else {
			res[i] = w.std(ddof)
		}
		if !it.Next() {
			break
		}
	}
}
