package cmath

import (
	stdmath "math"

	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/numerics/scalar"
)

// Abs returns |z|.
func Abs(z complexnum.Complex) float64 {
	return scalar.Hypot(z.Re(), z.Im())
}

// Arg returns the phase of z: in [0, π] for Im(z) >= 0 and in (-π, 0) for
// Im(z) < 0. Positive reals have phase exactly 0.
func Arg(z complexnum.Complex) float64 {
	return stdmath.Atan2(z.Im(), z.Re())
}

// Polar returns |z| and Arg(z).
func Polar(z complexnum.Complex) (r, theta float64) {
	return Abs(z), Arg(z)
}

// Exp returns e raised to z.
func Exp(z complexnum.Complex) complexnum.Complex {
	m := stdmath.Exp(z.Re())
	return complexnum.New(m*scalar.Cos(z.Im()), m*scalar.Sin(z.Im()))
}

// Log returns the principal natural logarithm of z. Log(0) has a real part
// of -Inf.
func Log(z complexnum.Complex) complexnum.Complex {
	return complexnum.New(stdmath.Log(Abs(z)), Arg(z))
}

// Sqr returns z².
func Sqr(z complexnum.Complex) complexnum.Complex {
	return z.Mul(z)
}
