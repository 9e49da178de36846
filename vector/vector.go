// Copyright 2025 The ndkit Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vector exposes ndkit's element-by-element math functions. Each
// function accepts a bare numeric scalar or an *ndarray.NDArray of any
// storage type and returns a float scalar or a fresh dense Float array of
// the same shape.
package vector

import (
	"github.com/ndkit/ndkit/internal/vector"
)

// Apply maps an arbitrary float function over a scalar or array.
func Apply(in any, f func(float64) float64) (any, error) { return vector.Apply(in, f) }

// Acos computes the inverse cosine.
func Acos(in any) (any, error) { return vector.Acos(in) }

// Acosh computes the inverse hyperbolic cosine.
func Acosh(in any) (any, error) { return vector.Acosh(in) }

// Asin computes the inverse sine.
func Asin(in any) (any, error) { return vector.Asin(in) }

// Asinh computes the inverse hyperbolic sine.
func Asinh(in any) (any, error) { return vector.Asinh(in) }

// Atan computes the inverse tangent.
func Atan(in any) (any, error) { return vector.Atan(in) }

// Atanh computes the inverse hyperbolic tangent.
func Atanh(in any) (any, error) { return vector.Atanh(in) }

// Ceil rounds up to the nearest integer.
func Ceil(in any) (any, error) { return vector.Ceil(in) }

// Cos computes the cosine.
func Cos(in any) (any, error) { return vector.Cos(in) }

// Cosh computes the hyperbolic cosine.
func Cosh(in any) (any, error) { return vector.Cosh(in) }

// Degrees converts radians to degrees.
func Degrees(in any) (any, error) { return vector.Degrees(in) }

// Erf computes the error function.
func Erf(in any) (any, error) { return vector.Erf(in) }

// Erfc computes the complementary error function.
func Erfc(in any) (any, error) { return vector.Erfc(in) }

// Exp computes the exponential.
func Exp(in any) (any, error) { return vector.Exp(in) }

// Expm1 computes exp(x) - 1 accurately near zero.
func Expm1(in any) (any, error) { return vector.Expm1(in) }

// Floor rounds down to the nearest integer.
func Floor(in any) (any, error) { return vector.Floor(in) }

// Gamma computes the gamma function.
func Gamma(in any) (any, error) { return vector.Gamma(in) }

// Lgamma computes the natural log of the absolute gamma function.
func Lgamma(in any) (any, error) { return vector.Lgamma(in) }

// Log computes the natural logarithm.
func Log(in any) (any, error) { return vector.Log(in) }

// Log10 computes the base-10 logarithm.
func Log10(in any) (any, error) { return vector.Log10(in) }

// Log2 computes the base-2 logarithm.
func Log2(in any) (any, error) { return vector.Log2(in) }

// Radians converts degrees to radians.
func Radians(in any) (any, error) { return vector.Radians(in) }

// Sin computes the sine.
func Sin(in any) (any, error) { return vector.Sin(in) }

// Sinh computes the hyperbolic sine.
func Sinh(in any) (any, error) { return vector.Sinh(in) }

// Sqrt computes the square root.
func Sqrt(in any) (any, error) { return vector.Sqrt(in) }

// Tan computes the tangent.
func Tan(in any) (any, error) { return vector.Tan(in) }

// Tanh computes the hyperbolic tangent.
func Tanh(in any) (any, error) { return vector.Tanh(in) }

// Around rounds every element to the given number of decimals.
func Around(in any, decimals int) (any, error) { return vector.Around(in, decimals) }
