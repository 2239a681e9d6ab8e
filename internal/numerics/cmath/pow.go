package cmath

import (
	stdmath "math"

	"github.com/GriffinCanCode/numerics/internal/numerics"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/numerics/scalar"
)

// Pow returns z raised to the real power p on the principal branch.
func Pow(z complexnum.Complex, p float64) complexnum.Complex {
	m := stdmath.Pow(Abs(z), p)
	t := Arg(z) * p
	return complexnum.New(m*scalar.Cos(t), m*scalar.Sin(t))
}

// RealPow returns x raised to the complex power z. The base must be
// non-negative; 0^0 is 1.
func RealPow(x float64, z complexnum.Complex) (complexnum.Complex, error) {
	if x < 0 {
		return complexnum.Complex{}, &numerics.DomainError{Arg: "x", Value: x}
	}
	if z.Equal(complexnum.Zero) {
		return complexnum.One, nil
	}
	if x == 0 {
		return complexnum.Zero, nil
	}
	m := stdmath.Pow(x, z.Re())
	t := stdmath.Log(x) * z.Im()
	return complexnum.New(m*scalar.Cos(t), m*scalar.Sin(t)), nil
}

// PowInt returns z raised to the integer power n. Exponents up to 10 use a
// fixed multiplication chain; larger ones go through Pow. 0^0 is 1.
func PowInt(z complexnum.Complex, n int) complexnum.Complex {
	if n < 0 {
		if n == stdmath.MinInt {
			return Pow(z, float64(n))
		}
		return PowInt(z, -n).Reciprocal()
	}

	switch n {
	case 0:
		return complexnum.One
	case 1:
		return z
	case 2:
		return z.Mul(z)
	case 3:
		return z.Mul(z).Mul(z)
	case 4:
		z2 := z.Mul(z)
		return z2.Mul(z2)
	case 5:
		z2 := z.Mul(z)
		return z2.Mul(z2).Mul(z)
	case 6:
		z2 := z.Mul(z)
		return z2.Mul(z2).Mul(z2)
	case 7:
		z3 := z.Mul(z).Mul(z)
		return z3.Mul(z3).Mul(z)
	case 8:
		z2 := z.Mul(z)
		z4 := z2.Mul(z2)
		return z4.Mul(z4)
	case 9:
		z3 := z.Mul(z).Mul(z)
		return z3.Mul(z3).Mul(z3)
	case 10:
		z2 := z.Mul(z)
		z4 := z2.Mul(z2)
		return z4.Mul(z4).Mul(z2)
	default:
		return Pow(z, float64(n))
	}
}
