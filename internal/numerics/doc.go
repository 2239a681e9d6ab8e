// Package numerics holds the error values shared by the numerical packages.
//
// The numerical code is split into small packages:
//   - scalar: real-valued primitives (sin, cos, hypot)
//   - complexnum: the immutable complex value type and its arithmetic
//   - cmath: elementary functions of complex arguments
//
// Only two conditions are ever reported as errors by the complex engine:
// a bounded series that fails to converge, and a real base below zero
// passed to the real-to-complex power. Everything else propagates IEEE
// special values (Inf, NaN) instead of failing.
package numerics
