// Package vector applies element-by-element math functions to arrays and
// bare scalars. The result of an array application is always a fresh dense
// Float array over the source's shape, whatever the source dtype.
package vector

import (
	"math"

	"github.com/pkg/errors"

	"github.com/ndkit/ndkit/internal/ndarray"
)

// Apply maps f over in. A bare numeric scalar yields a float scalar; an
// array yields a dense Float array of the same shape, visiting the source
// in traversal order so views and flipped arrays work unchanged.
func Apply(in any, f func(float64) float64) (any, error) {
	switch v := in.(type) {
	case float64:
		return f(v), nil
	case int:
		return f(float64(v)), nil
	case *ndarray.NDArray:
		out, err := ndarray.NewDense(v.NDim(), v.Shape(), ndarray.Float)
		if err != nil {
			return nil, err
		}
		res := ndarray.Buffer[float64](out)
		it := ndarray.NewIter(v)
		for i := 0; ; i++ {
			res[i] = f(ndarray.FloatAt(v, it.Ptr()))
			if !it.Next() {
				break
			}
		}
		return out, nil
	default:
		return nil, errors.Wrap(ndarray.ErrType, "input must be a scalar or ndarray")
	}
}

// Acos computes the inverse cosine.
func Acos(in any) (any, error) { return Apply(in, math.Acos) }

// Acosh computes the inverse hyperbolic cosine.
func Acosh(in any) (any, error) { return Apply(in, math.Acosh) }

// Asin computes the inverse sine.
func Asin(in any) (any, error) { return Apply(in, math.Asin) }

// Asinh computes the inverse hyperbolic sine.
func Asinh(in any) (any, error) { return Apply(in, math.Asinh) }

// Atan computes the inverse tangent.
func Atan(in any) (any, error) { return Apply(in, math.Atan) }

// Atanh computes the inverse hyperbolic tangent.
func Atanh(in any) (any, error) { return Apply(in, math.Atanh) }

// Ceil rounds up to the nearest integer.
func Ceil(in any) (any, error) { return Apply(in, math.Ceil) }

// Cos computes the cosine.
func Cos(in any) (any, error) { return Apply(in, math.Cos) }

// Cosh computes the hyperbolic cosine.
func Cosh(in any) (any, error) { return Apply(in, math.Cosh) }

// Degrees converts radians to degrees.
func Degrees(in any) (any, error) {
	return Apply(in, func(x float64) float64 { return x * 180 / math.Pi })
}

// Erf computes the error function.
func Erf(in any) (any, error) { return Apply(in, math.Erf) }

// Erfc computes the complementary error function.
func Erfc(in any) (any, error) { return Apply(in, math.Erfc) }

// Exp computes the exponential.
func Exp(in any) (any, error) { return Apply(in, math.Exp) }

// Expm1 computes exp(x) - 1 accurately near zero.
func Expm1(in any) (any, error) { return Apply(in, math.Expm1) }

// Floor rounds down to the nearest integer.
func Floor(in any) (any, error) { return Apply(in, math.Floor) }

// Gamma computes the gamma function.
func Gamma(in any) (any, error) { return Apply(in, math.Gamma) }

// Lgamma computes the natural log of the absolute gamma function.
func Lgamma(in any) (any, error) {
	return Apply(in, func(x float64) float64 { v, _ := math.Lgamma(x); return v })
}

// Log computes the natural logarithm.
func Log(in any) (any, error) { return Apply(in, math.Log) }

// Log10 computes the base-10 logarithm.
func Log10(in any) (any, error) { return Apply(in, math.Log10) }

// Log2 computes the base-2 logarithm.
func Log2(in any) (any, error) { return Apply(in, math.Log2) }

// Radians converts degrees to radians.
func Radians(in any) (any, error) {
	return Apply(in, func(x float64) float64 { return x * math.Pi / 180 })
}

// Sin computes the sine.
func Sin(in any) (any, error) { return Apply(in, math.Sin) }

// Sinh computes the hyperbolic sine.
func Sinh(in any) (any, error) { return Apply(in, math.Sinh) }

// Sqrt computes the square root.
func Sqrt(in any) (any, error) { return Apply(in, math.Sqrt) }

// Tan computes the tangent.
func Tan(in any) (any, error) { return Apply(in, math.Tan) }

// Tanh computes the hyperbolic tangent.
func Tanh(in any) (any, error) { return Apply(in, math.Tanh) }

// Around rounds every element to the given number of decimals.
func Around(in any, decimals int) (any, error) {
	mul := math.Pow(10, float64(decimals))
	return Apply(in, func(x float64) float64 { return math.Round(x*mul) / mul })
}
