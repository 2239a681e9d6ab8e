// Package complexnum defines the immutable complex value used by the engine.
//
// A Complex is a plain value: every operation returns a new Complex and never
// touches its operands. No normalization is applied beyond what IEEE-754
// arithmetic produces, so signed zeros, infinities and NaN flow through
// unchanged.
package complexnum

import (
	"fmt"
	stdmath "math"
)

// Complex is a complex number with float64 components.
type Complex struct {
	re float64
	im float64
}

var (
	// Zero is the additive identity.
	Zero = Complex{}
	// One is the multiplicative identity.
	One = Complex{re: 1}
	// I is the imaginary unit.
	I = Complex{im: 1}
)

// New returns re + im·i.
func New(re, im float64) Complex {
	return Complex{re: re, im: im}
}

// FromReal returns x + 0i.
func FromReal(x float64) Complex {
	return Complex{re: x}
}

// FromComplex128 converts a builtin complex128.
func FromComplex128(c complex128) Complex {
	return Complex{re: real(c), im: imag(c)}
}

// Complex128 converts z to the builtin type.
func (z Complex) Complex128() complex128 {
	return complex(z.re, z.im)
}

// Re returns the real part.
func (z Complex) Re() float64 { return z.re }

// Im returns the imaginary part.
func (z Complex) Im() float64 { return z.im }

// Add returns z + w.
func (z Complex) Add(w Complex) Complex {
	return Complex{re: z.re + w.re, im: z.im + w.im}
}

// Sub returns z - w.
func (z Complex) Sub(w Complex) Complex {
	return Complex{re: z.re - w.re, im: z.im - w.im}
}

// Mul returns z * w.
func (z Complex) Mul(w Complex) Complex {
	return Complex{
		re: z.re*w.re - z.im*w.im,
		im: z.re*w.im + z.im*w.re,
	}
}

// Div returns z / w.
//
// Smith's algorithm: scaling by the larger component of w keeps
// |w|² from overflowing when w is large.
func (z Complex) Div(w Complex) Complex {
	if stdmath.Abs(w.im) <= stdmath.Abs(w.re) {
		r := w.im / w.re
		d := w.re + w.im*r
		return Complex{re: (z.re + z.im*r) / d, im: (z.im - z.re*r) / d}
	}
	r := w.re / w.im
	d := w.re*r + w.im
	return Complex{re: (z.re*r + z.im) / d, im: (z.im*r - z.re) / d}
}

// AddReal returns z + x.
func (z Complex) AddReal(x float64) Complex {
	return Complex{re: z.re + x, im: z.im}
}

// SubReal returns z - x.
func (z Complex) SubReal(x float64) Complex {
	return Complex{re: z.re - x, im: z.im}
}

// MulReal returns z * x.
func (z Complex) MulReal(x float64) Complex {
	return Complex{re: z.re * x, im: z.im * x}
}

// DivReal returns z / x.
func (z Complex) DivReal(x float64) Complex {
	return Complex{re: z.re / x, im: z.im / x}
}

// RealDiv returns x / z.
func RealDiv(x float64, z Complex) Complex {
	return FromReal(x).Div(z)
}

// Reciprocal returns 1 / z.
func (z Complex) Reciprocal() Complex {
	return RealDiv(1, z)
}

// Neg returns -z.
func (z Complex) Neg() Complex {
	return Complex{re: -z.re, im: -z.im}
}

// Conj returns the complex conjugate of z.
func (z Complex) Conj() Complex {
	return Complex{re: z.re, im: -z.im}
}

// Equal reports whether both components compare equal with ==.
// There is no tolerance; NaN is never equal to anything.
func (z Complex) Equal(w Complex) bool {
	return z.re == w.re && z.im == w.im
}

// IsNaN reports whether either component is NaN and neither is infinite.
func (z Complex) IsNaN() bool {
	if z.IsInf() {
		return false
	}
	return stdmath.IsNaN(z.re) || stdmath.IsNaN(z.im)
}

// IsInf reports whether either component is infinite.
func (z Complex) IsInf() bool {
	return stdmath.IsInf(z.re, 0) || stdmath.IsInf(z.im, 0)
}

// String formats z as "(re, im)".
func (z Complex) String() string {
	return fmt.Sprintf("(%g, %g)", z.re, z.im)
}
