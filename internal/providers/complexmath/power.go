package complexmath

import (
	"context"

	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// PowerOps handles the three power forms
type PowerOps struct {
	*ComplexOps
}

// GetTools returns power tool definitions
func (p *PowerOps) GetTools() []types.Tool {
	return []types.Tool{
		{
			ID:          "complex.pow",
			Name:        "Real Power",
			Description: "z raised to a real exponent on the principal branch",
			Parameters: []types.Parameter{
				complexParam("z", "Complex base {re, im}"),
				{Name: "p", Type: "number", Description: "Real exponent", Required: true},
			},
			Returns: "complex",
		},
		{
			ID:          "complex.powReal",
			Name:        "Real Base Power",
			Description: "Non-negative real x raised to a complex exponent",
			Parameters: []types.Parameter{
				{Name: "x", Type: "number", Description: "Real base, must be >= 0", Required: true},
				complexParam("z", "Complex exponent {re, im}"),
			},
			Returns: "complex",
		},
		{
			ID:          "complex.powInt",
			Name:        "Integer Power",
			Description: "z raised to an integer exponent",
			Parameters: []types.Parameter{
				complexParam("z", "Complex base {re, im}"),
				{Name: "n", Type: "integer", Description: "Integer exponent", Required: true},
			},
			Returns: "complex",
		},
	}
}

// Pow raises z to a real power
func (p *PowerOps) Pow(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	exp, ok := GetNumber(params, "p")
	if !ok {
		return Failure(types.KindInvalidParams, "p must be a number")
	}
	return Success(complexData(cmath.Pow(z, exp)))
}

// PowReal raises a non-negative real base to a complex power
func (p *PowerOps) PowReal(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	x, ok := GetNumber(params, "x")
	if !ok {
		return Failure(types.KindInvalidParams, "x must be a number")
	}
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	w, err := cmath.RealPow(x, z)
	if err != nil {
		return p.fromError("complex.powReal", err)
	}
	return Success(complexData(w))
}

// PowInt raises z to an integer power
func (p *PowerOps) PowInt(ctx context.Context, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	z, ok := GetComplex(params, "z")
	if !ok {
		return invalidComplex("z")
	}
	n, ok := GetInt(params, "n")
	if !ok {
		return Failure(types.KindInvalidParams, "n must be an integer")
	}
	return Success(complexData(cmath.PowInt(z, n)))
}
