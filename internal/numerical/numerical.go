// Package numerical implements the axis-parametrized reductions and shape
// transforms of ndkit: sum, mean, standard deviation, min/max,
// argmin/argmax, finite differences, flip and circular roll.
//
// Most operations take an "axis" argument, which selects between the
// flattened array (nil) and a particular axis (integer). The reduction
// family additionally accepts plain Go slices, which are folded by a
// straightforward linear scan instead of the strided engine.
package numerical

import (
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/ndkit/ndkit/internal/ndarray"
)

type opKind uint8

const (
	opMin opKind = iota
	opMax
	opArgMin
	opArgMax
	opSum
	opMean
	opStd
)

func (op opKind) String() string {
	switch op {
	case opMin:
		return "min"
	case opMax:
		return "max"
	case opArgMin:
		return "argmin"
	case opArgMax:
		return "argmax"
	case opSum:
		return "sum"
	case opMean:
		return "mean"
	default:
		return "std"
	}
}

// Sum returns the sum of the elements, over the flattened input when axis
// is nil or along the given axis. Integer arrays accumulate in their own
// element type; the result dtype matches the input.
func Sum(in any, axis any) (any, error) {
	return reduce(in, axis, opSum, 0)
}

// Mean returns the arithmetic mean as a float scalar or Float array.
func Mean(in any, axis any) (any, error) {
	return reduce(in, axis, opMean, 0)
}

// Std returns the standard deviation, computed with a single-pass
// streaming update. ddof is subtracted from the element count in the
// variance denominator; when the count does not exceed ddof the result is
// defined as 0.
func Std(in any, axis any, ddof int) (any, error) {
	if ddof < 0 {
		return nil, errors.Wrap(ndarray.ErrValue, "ddof must be non-negative")
	}
	return reduce(in, axis, opStd, ddof)
}

// Min returns the smallest element.
func Min(in any, axis any) (any, error) {
	return reduce(in, axis, opMin, 0)
}

// Max returns the largest element.
func Max(in any, axis any) (any, error) {
	return reduce(in, axis, opMax, 0)
}

// ArgMin returns the position of the smallest element; ties keep the
// earliest position.
func ArgMin(in any, axis any) (any, error) {
	return reduce(in, axis, opArgMin, 0)
}

// ArgMax returns the position of the largest element; ties keep the
// earliest position.
func ArgMax(in any, axis any) (any, error) {
	return reduce(in, axis, opArgMax, 0)
}

// reduce validates the shared argument contract and dispatches to the
// strided engine or the sequence fallback.
func reduce(in any, axis any, op opKind, ddof int) (any, error) {
	ax, hasAxis, err := axisArg(axis, "axis must be None, or an integer")
	if err != nil {
		return nil, err
	}

	switch v := in.(type) {
	case *ndarray.NDArray:
		klog.V(2).Infof("numerical: %s over %s array, axis given: %v", op, v.DType(), hasAxis)
		switch op {
		case opMin, opMax, opArgMin, opArgMax:
			return minMaxArray(v, ax, hasAxis, op)
		case opSum, opMean, opStd:
			return sumMeanStdArray(v, ax, hasAxis, op, ddof)
		default:
			return nil, errors.Wrap(ndarray.ErrNotImplemented, "operation is not implemented on ndarrays")
		}
	default:
		seq, ok := asSequence(in)
		if !ok {
			return nil, errors.Wrap(ndarray.ErrType, "input must be a slice or ndarray")
		}
		switch op {
		case opMin, opMax, opArgMin, opArgMax:
			return minMaxSequence(seq, op)
		case opSum, opMean, opStd:
			return sumMeanStdSequence(seq, op, ddof), nil
		default:
			return nil, errors.Wrap(ndarray.ErrNotImplemented, "operation is not implemented on iterables")
		}
	}
}

// axisArg checks the axis argument category: nil or a plain int. The
// failure message varies by call site, matching the host's wording.
func axisArg(axis any, msg string) (ax int, hasAxis bool, err error) {
	switch v := axis.(type) {
	case nil:
		return 0, false, nil
	case int:
		return v, true, nil
	default:
		return 0, false, errors.Wrap(ndarray.ErrType, msg)
	}
}

// normalizeAxis maps a signed axis index in [-ndim, ndim) to its physical
// right-aligned slot MaxDims - ndim + axis.
func normalizeAxis(a *ndarray.NDArray, axis int) (int, error) {
	ax := axis
	if ax < 0 {
		ax += a.NDim()
	}
	if ax < 0 || ax > a.NDim()-1 {
		return 0, errors.Wrap(ndarray.ErrValue, "index out of range")
	}
	return ndarray.MaxDims - a.NDim() + ax, nil
}

// maxInt returns the maximum of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
