// Package cmath computes elementary functions of complex arguments.
//
// Every function is pure and safe for concurrent use. Results follow the
// principal branch selected by Arg, whose range is (-π, π]; the branch cuts
// of Log and Sqrt therefore lie along the negative real axis.
//
// Functions:
//   - Abs, Arg, Polar: magnitude and phase
//   - Exp, Log, Sqr, Sqrt
//   - Sin, Cos, Tan and Sinh, Cosh, Tanh
//   - Pow (complex base, real power), RealPow (real base, complex power),
//     PowInt (complex base, integer power)
//
// Two conditions are reported as errors. Sqrt returns a
// *numerics.NonconvergenceError if its cancellation-avoiding series does not
// settle within the engine's series limit, and RealPow returns a
// *numerics.DomainError for a negative base. All other inputs, including
// zero, infinities and NaN, produce IEEE-propagated values.
//
// Example Usage:
//
//	engine := cmath.New(cmath.Options{SeriesMax: cfg.Numerics.SeriesMax})
//	w, err := engine.Sqrt(complexnum.New(-4, 1e-12))
//	if err != nil {
//	    return err
//	}
package cmath
