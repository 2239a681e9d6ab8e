package complexmath

import (
	"context"

	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// ElementaryOps handles magnitude, phase, exponential, logarithm and roots
type ElementaryOps struct {
	*ComplexOps
}

// GetTools returns elementary tool definitions
func (e *ElementaryOps) GetTools() []types.Tool {
	return []types.Tool{
		{ID: "complex.abs", Name: "Magnitude", Description: "Overflow-safe magnitude |z|", Parameters: zParam(), Returns: "number"},
		{ID: "complex.arg", Name: "Phase", Description: "Principal argument of z in (-pi, pi]", Parameters: zParam(), Returns: "number"},
		{ID: "complex.polar", Name: "Polar Form", Description: "Magnitude and phase of z", Parameters: zParam(), Returns: "object"},
		{ID: "complex.exp", Name: "Exponential", Description: "Complex exponential e^z", Parameters: zParam(), Returns: "complex"},
		{ID: "complex.log", Name: "Logarithm", Description: "Principal natural logarithm of z", Parameters: zParam(), Returns: "complex"},
		{ID: "complex.sqr", Name: "Square", Description: "z squared", Parameters: zParam(), Returns: "complex"},
		{ID: "complex.sqrt", Name: "Square Root", Description: "Principal square root of z, accurate near the real axis", Parameters: zParam(), Returns: "complex"},
	}
}

// Abs returns |z|
func (e *ElementaryOps) Abs(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	return Success(realData(cmath.Abs(z)))
}

// Arg returns the principal argument of z
func (e *ElementaryOps) Arg(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	return Success(realData(cmath.Arg(z)))
}

// Polar returns magnitude and phase together
func (e *ElementaryOps) Polar(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	r, theta := cmath.Polar(z)
	return Success(map[string]interface{}{
		"r":     types.JSONFloat(r),
		"theta": types.JSONFloat(theta),
	})
}

// Exp returns e^z
func (e *ElementaryOps) Exp(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, cmath.Exp)
}

// Log returns the principal logarithm of z
func (e *ElementaryOps) Log(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, cmath.Log)
}

// Sqr returns z*z
func (e *ElementaryOps) Sqr(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	return unary(params, cmath.Sqr)
}

// Sqrt returns the principal square root of z
func (e *ElementaryOps) Sqrt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	root, err := e.Engine.Sqrt(z)
	if err != nil {
		return e.fromError("complex.sqrt", err)
	}
	return Success(complexData(root))
}

func unary(params map[string]interface{}, f func(complexnum.Complex) complexnum.Complex) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	return Success(complexData(f(z)))
}
