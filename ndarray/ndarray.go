// Copyright 2025 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package ndarray

import (
	"github.com/ndkit/ndkit/internal/ndarray"
)

// MaxDims is the hard cap on array rank.
const MaxDims = ndarray.MaxDims

// NDArray is a strided, typed, rank-capped multi-dimensional array.
type NDArray = ndarray.NDArray

// DType identifies the storage type of an array's elements.
type DType = ndarray.DType

// Supported storage types.
const (
	Uint8  = ndarray.Uint8
	Int8   = ndarray.Int8
	Uint16 = ndarray.Uint16
	Int16  = ndarray.Int16
	Float  = ndarray.Float
)

// Shape holds per-axis extents, right-aligned into MaxDims slots.
type Shape = ndarray.Shape

// Strides holds signed per-axis element steps, right-aligned like Shape.
type Strides = ndarray.Strides

// Iter walks every valid index tuple of a descriptor in lexicographic
// order without recursion.
type Iter = ndarray.Iter

// Element is the constraint satisfied by every storable element type.
type Element = ndarray.Element

// Error kinds reported by the engine, matchable with errors.Is.
var (
	ErrType           = ndarray.ErrType
	ErrValue          = ndarray.ErrValue
	ErrAllocation     = ndarray.ErrAllocation
	ErrNotImplemented = ndarray.ErrNotImplemented
)

// NewDense allocates a zero-offset, row-major array.
func NewDense(ndim int, shape Shape, dtype DType) (*NDArray, error) {
	return ndarray.NewDense(ndim, shape, dtype)
}

// NewView creates an array sharing src's buffer with its own descriptor.
func NewView(src *NDArray, ndim int, shape Shape, strides Strides, offsetDelta int) *NDArray {
	return ndarray.NewView(src, ndim, shape, strides, offsetDelta)
}

// Copy returns a dense deep copy of a.
func Copy(a *NDArray) (*NDArray, error) { return ndarray.Copy(a) }

// Scalar unwraps a single-element array into a host scalar.
func Scalar(a *NDArray) any { return ndarray.Scalar(a) }

// FloatAt returns the element at absolute buffer position elem as a float.
func FloatAt(a *NDArray, elem int) float64 { return ndarray.FloatAt(a, elem) }

// ShapeOf builds a right-aligned Shape from logical extents.
func ShapeOf(extents ...int) Shape { return ndarray.ShapeOf(extents...) }

// DenseStrides computes canonical row-major element strides for a shape.
func DenseStrides(ndim int, shape Shape) Strides { return ndarray.DenseStrides(ndim, shape) }

// NewIter starts a traversal over a's descriptor at its base offset.
func NewIter(a *NDArray) *Iter { return ndarray.NewIter(a) }

// NewDescIter starts a traversal over a bare shape/strides descriptor.
func NewDescIter(shape Shape, strides Strides, offset int) *Iter {
	return ndarray.NewDescIter(shape, strides, offset)
}

// Buffer interprets the whole backing buffer as a []T.
func Buffer[T Element](a *NDArray) []T { return ndarray.Buffer[T](a) }

// FromSlice builds a dense array from a flat Go slice.
func FromSlice[T Element](data []T, extents ...int) (*NDArray, error) {
	return ndarray.FromSlice(data, extents...)
}

// FromBools builds a logical array over uint8 storage.
func FromBools(data []bool, extents ...int) (*NDArray, error) {
	return ndarray.FromBools(data, extents...)
}

// Full builds a dense array with every element set to value.
func Full[T Element](value T, extents ...int) (*NDArray, error) {
	return ndarray.Full(value, extents...)
}

// Arange builds a 1-D dense array with values start, start+1, .. stop-1.
func Arange[T Element](start, stop T) (*NDArray, error) {
	return ndarray.Arange(start, stop)
}
