package cmath

import (
	stdmath "math"
	"math/cmplx"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/assert"

	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
)

// assertClose checks |got - want| <= tol * max(|want|, 1e-300).
func assertClose(t *testing.T, want, got complexnum.Complex, tol float64, msgAndArgs ...interface{}) bool {
	t.Helper()
	scale := stdmath.Max(Abs(want), 1e-300)
	diff := Abs(got.Sub(want))
	return assert.LessOrEqual(t, diff, tol*scale, msgAndArgs...)
}

func fromBuiltin(c complex128) complexnum.Complex {
	return complexnum.FromComplex128(c)
}

func toBuiltin(z complexnum.Complex) complex128 {
	return z.Complex128()
}

func cmplxSqrt(c complex128) complex128 { return cmplx.Sqrt(c) }

// newFuzzer spreads components over many orders of magnitude, with both
// signs, so that the tiny-imaginary-part branches get exercised.
func newFuzzer(seed int64) *fuzz.Fuzzer {
	return fuzz.NewWithSeed(seed).NilChance(0).Funcs(
		func(z *complexnum.Complex, c fuzz.Continue) {
			component := func() float64 {
				v := stdmath.Pow(10, -12+24*c.Float64())
				if c.RandBool() {
					v = -v
				}
				return v
			}
			*z = complexnum.New(component(), component())
		},
	)
}
