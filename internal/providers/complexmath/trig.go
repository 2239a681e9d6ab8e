package complexmath

import (
	"context"

	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// TrigOps handles circular and hyperbolic functions. Each takes z and
// returns a complex value, so the module is a table.
type TrigOps struct {
	*ComplexOps
}

type trigFunc struct {
	id   string
	name string
	desc string
	fn   func(complexnum.Complex) complexnum.Complex
}

var trigFuncs = []trigFunc{
	{"complex.sin", "Sine", "Complex sine", cmath.Sin},
	{"complex.cos", "Cosine", "Complex cosine", cmath.Cos},
	{"complex.tan", "Tangent", "Complex tangent, finite for large imaginary parts", cmath.Tan},
	{"complex.sinh", "Hyperbolic Sine", "Complex hyperbolic sine", cmath.Sinh},
	{"complex.cosh", "Hyperbolic Cosine", "Complex hyperbolic cosine", cmath.Cosh},
	{"complex.tanh", "Hyperbolic Tangent", "Complex hyperbolic tangent, finite for large real parts", cmath.Tanh},
}

// GetTools returns trig tool definitions
func (t *TrigOps) GetTools() []types.Tool {
	tools := make([]types.Tool, len(trigFuncs))
	for i, f := range trigFuncs {
		tools[i] = types.Tool{ID: f.id, Name: f.name, Description: f.desc, Parameters: zParam(), Returns: "complex"}
	}
	return tools
}

// Handles reports whether toolID is one of the trig tools
func (t *TrigOps) Handles(toolID string) bool {
	_, ok := t.lookup(toolID)
	return ok
}

// Eval evaluates the trig tool named by toolID
func (t *TrigOps) Eval(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	f, ok := t.lookup(toolID)
	if !ok {
		return unknownTool(toolID)
	}
	return unary(params, f.fn)
}

func (t *TrigOps) lookup(toolID string) (trigFunc, bool) {
	for _, f := range trigFuncs {
		if f.id == toolID {
			return f, true
		}
	}
	return trigFunc{}, false
}
