// Copyright 2025 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package ndarray provides the strided multi-dimensional array type at the
// core of ndkit.
//
// # Overview
//
// An NDArray is a typed, rank-capped (up to 4 axes) view over a shared,
// reference-counted buffer:
//   - fixed-size, right-aligned shape and stride descriptors
//   - signed strides, so views can walk their source backwards
//   - zero-copy views (flip, slicing) with shared buffer ownership
//   - dense row-major allocation for every operation output
//
// # Basic Usage
//
//	a, _ := ndarray.FromSlice([]float64{1, 2, 3, 4, 5, 6}, 2, 3)
//	fmt.Println(a.Shape().Extents(a.NDim())) // [2 3]
//
// # Supported Storage Types
//
//   - Uint8, Int8, Uint16, Int16 (integer storage)
//   - Float (float64)
//
// A boolean-valued array is Uint8 storage carrying the Boolean flag; Bool
// is never a stored dtype.
//
// # Memory Management
//
// Buffers are reference-counted: a view bumps the count on creation and a
// Release drops it, so no view can outlive its backing storage.
package ndarray
