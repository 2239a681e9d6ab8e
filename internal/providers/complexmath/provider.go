package complexmath

import (
	"context"

	"github.com/GriffinCanCode/numerics/internal/logging"
	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// Provider implements complex elementary functions
type Provider struct {
	elementary *ElementaryOps
	trig       *TrigOps
	power      *PowerOps
}

// NewProvider creates a complex math provider. A nil engine selects the
// default engine and a nil logger discards output.
func NewProvider(engine *cmath.Engine, logger *logging.Logger) *Provider {
	if engine == nil {
		engine = cmath.Default()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	ops := &ComplexOps{Engine: engine, Logger: logger.Named("complex")}

	return &Provider{
		elementary: &ElementaryOps{ComplexOps: ops},
		trig:       &TrigOps{ComplexOps: ops},
		power:      &PowerOps{ComplexOps: ops},
	}
}

// Definition returns service metadata with all module tools
func (p *Provider) Definition() types.Service {
	tools := []types.Tool{}
	tools = append(tools, p.elementary.GetTools()...)
	tools = append(tools, p.trig.GetTools()...)
	tools = append(tools, p.power.GetTools()...)

	return types.Service{
		ID:          "complex",
		Name:        "Complex Math Service",
		Description: "Elementary functions over complex numbers (magnitude, phase, exponential, logarithm, square root, trig, hyperbolic, powers)",
		Category:    types.CategoryComplex,
		Capabilities: []string{
			"magnitude",
			"logarithm",
			"square_root",
			"trigonometry",
			"hyperbolic",
			"powers",
		},
		Tools: tools,
		DataModels: []types.DataModel{
			{Name: "Complex", Fields: map[string]string{"re": "number", "im": "number"}},
		},
	}
}

// Execute routes to appropriate module
func (p *Provider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if p.trig.Handles(toolID) {
		return p.trig.Eval(ctx, toolID, params, appCtx)
	}

	switch toolID {
	// Elementary
	case "complex.abs":
		return p.elementary.Abs(ctx, params, appCtx)
	case "complex.arg":
		return p.elementary.Arg(ctx, params, appCtx)
	case "complex.polar":
		return p.elementary.Polar(ctx, params, appCtx)
	case "complex.exp":
		return p.elementary.Exp(ctx, params, appCtx)
	case "complex.log":
		return p.elementary.Log(ctx, params, appCtx)
	case "complex.sqr":
		return p.elementary.Sqr(ctx, params, appCtx)
	case "complex.sqrt":
		return p.elementary.Sqrt(ctx, params, appCtx)

	// Powers
	case "complex.pow":
		return p.power.Pow(ctx, params, appCtx)
	case "complex.powReal":
		return p.power.PowReal(ctx, params, appCtx)
	case "complex.powInt":
		return p.power.PowInt(ctx, params, appCtx)

	default:
		return unknownTool(toolID)
	}
}
