// Package scalar provides the real-valued primitives the complex engine is
// built on.
//
// Sin and Cos delegate to the platform routines. Hypot delegates to
// math.Hypot, which rescales its arguments so that sqrt(x*x + y*y) neither
// overflows when one component is huge nor underflows when both are tiny.
package scalar

import stdmath "math"

// Sin returns the sine of x (radians).
func Sin(x float64) float64 {
	return stdmath.Sin(x)
}

// Cos returns the cosine of x (radians).
func Cos(x float64) float64 {
	return stdmath.Cos(x)
}

// Hypot returns sqrt(x*x + y*y) without intermediate overflow or underflow.
func Hypot(x, y float64) float64 {
	return stdmath.Hypot(x, y)
}

// Sqr returns x*x.
func Sqr(x float64) float64 {
	return x * x
}
