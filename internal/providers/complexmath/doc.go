// Package complexmath provides the "complex" service: elementary functions
// over complex numbers backed by the cmath engine.
//
// Tools:
//   - complex.abs, complex.arg, complex.polar: real-valued results
//   - complex.exp, complex.log, complex.sqr, complex.sqrt
//   - complex.sin, complex.cos, complex.tan
//   - complex.sinh, complex.cosh, complex.tanh
//   - complex.pow (real exponent), complex.powReal (real base), complex.powInt
//
// Complex parameters are objects of the form {"re": 1.5, "im": -2}; a plain
// number is accepted as a real value. Non-finite components are encoded as
// the strings "NaN", "+Inf" and "-Inf" since JSON has no literal for them.
package complexmath
