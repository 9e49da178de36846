// Copyright 2025 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package numerical exposes ndkit's reduction and shape-transform
// operations: sum, mean, standard deviation, min/max, argmin/argmax,
// finite differences, flip and circular roll.
//
// Reductions take the input as any, accepting either *ndarray.NDArray or a
// plain Go slice ([]float64, []float32, []int), and an axis that is nil
// (flatten) or an int. Single-element results unwrap to bare scalars.
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	v, _ := numerical.Sum(a, 0)   // *NDArray [5 7 9]
//	s, _ := numerical.Sum(a, nil) // float64 21
package numerical

import (
	"github.com/ndkit/ndkit/internal/numerical"
	"github.com/ndkit/ndkit/ndarray"
)

// Sum returns the sum of the elements; the result dtype matches the input.
func Sum(in any, axis any) (any, error) { return numerical.Sum(in, axis) }

// Mean returns the arithmetic mean as a float scalar or Float array.
func Mean(in any, axis any) (any, error) { return numerical.Mean(in, axis) }

// Std returns the standard deviation with ddof delta degrees of freedom.
func Std(in any, axis any, ddof int) (any, error) { return numerical.Std(in, axis, ddof) }

// Min returns the smallest element.
func Min(in any, axis any) (any, error) { return numerical.Min(in, axis) }

// Max returns the largest element.
func Max(in any, axis any) (any, error) { return numerical.Max(in, axis) }

// ArgMin returns the position of the smallest element, earliest tie first.
func ArgMin(in any, axis any) (any, error) { return numerical.ArgMin(in, axis) }

// ArgMax returns the position of the largest element, earliest tie first.
func ArgMax(in any, axis any) (any, error) { return numerical.ArgMax(in, axis) }

// Diff returns the n-th order finite difference along the given axis.
func Diff(a *ndarray.NDArray, n, axis int) (*ndarray.NDArray, error) {
	return numerical.Diff(a, n, axis)
}

// Flip reverses element order along one axis (zero-copy view) or over the
// flattened array (dense copy).
func Flip(a *ndarray.NDArray, axis any) (*ndarray.NDArray, error) {
	return numerical.Flip(a, axis)
}

// Roll circularly shifts the array by distance positions.
func Roll(a *ndarray.NDArray, distance int, axis any) (*ndarray.NDArray, error) {
	return numerical.Roll(a, distance, axis)
}
