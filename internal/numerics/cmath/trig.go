package cmath

import (
	stdmath "math"

	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/numerics/scalar"
)

// Above this |Im(z)| Tan divides through by cosh(2y) before sinh and cosh
// can overflow.
const tanRearrangeThreshold = 4.0

// sinhCosh evaluates sinh(y) and cosh(y) from a single exponential.
func sinhCosh(y float64) (sinh, cosh float64) {
	p := stdmath.Exp(y)
	q := 1 / p
	return (p - q) / 2, (p + q) / 2
}

// Sin returns the sine of z.
func Sin(z complexnum.Complex) complexnum.Complex {
	sinh, cosh := sinhCosh(z.Im())
	return complexnum.New(scalar.Sin(z.Re())*cosh, scalar.Cos(z.Re())*sinh)
}

// Cos returns the cosine of z.
func Cos(z complexnum.Complex) complexnum.Complex {
	sinh, cosh := sinhCosh(z.Im())
	return complexnum.New(scalar.Cos(z.Re())*cosh, -scalar.Sin(z.Re())*sinh)
}

// Tan returns the tangent of z using
//
//	tan z = [sin(2x) + i sinh(2y)] / [cos(2x) + cosh(2y)]
func Tan(z complexnum.Complex) complexnum.Complex {
	x2 := 2 * z.Re()
	y2 := 2 * z.Im()
	sinh, cosh := sinhCosh(y2)
	if stdmath.Abs(z.Im()) < tanRearrangeThreshold {
		d := scalar.Cos(x2) + cosh
		return complexnum.New(scalar.Sin(x2)/d, sinh/d)
	}
	// sinh and cosh blow up separately but their ratio stays near 1.
	f := 1 + scalar.Cos(x2)/cosh
	return complexnum.New(scalar.Sin(x2)/cosh/f, stdmath.Tanh(y2)/f)
}

// mulI returns i·z.
func mulI(z complexnum.Complex) complexnum.Complex {
	return complexnum.New(-z.Im(), z.Re())
}

// mulNegI returns -i·z.
func mulNegI(z complexnum.Complex) complexnum.Complex {
	return complexnum.New(z.Im(), -z.Re())
}

// Sinh returns the hyperbolic sine of z, as -i·sin(iz).
func Sinh(z complexnum.Complex) complexnum.Complex {
	return mulNegI(Sin(mulI(z)))
}

// Cosh returns the hyperbolic cosine of z, as cos(iz).
func Cosh(z complexnum.Complex) complexnum.Complex {
	return Cos(mulI(z))
}

// Tanh returns the hyperbolic tangent of z, as -i·tan(iz).
func Tanh(z complexnum.Complex) complexnum.Complex {
	return mulNegI(Tan(mulI(z)))
}
