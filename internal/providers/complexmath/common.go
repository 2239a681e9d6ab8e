package complexmath

import (
	"errors"
	"fmt"
	stdmath "math"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/numerics/internal/logging"
	"github.com/GriffinCanCode/numerics/internal/numerics"
	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/numerics/complexnum"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// ComplexOps carries the engine and logger shared by every tool module
type ComplexOps struct {
	Engine *cmath.Engine
	Logger *logging.Logger
}

// Success creates a successful result
func Success(data map[string]interface{}) (*types.Result, error) {
	return types.Succeeded(data), nil
}

// Failure creates a failed result tagged with its failure kind
func Failure(kind, message string) (*types.Result, error) {
	return types.Failed(kind, message), nil
}

func unknownTool(toolID string) (*types.Result, error) {
	return Failure(types.KindUnknownTool, fmt.Sprintf("unknown tool: %s", toolID))
}

// fromError converts an engine error into a failed result
func (o *ComplexOps) fromError(toolID string, err error) (*types.Result, error) {
	switch {
	case errors.Is(err, numerics.ErrNonconvergence):
		o.Logger.Warn("Series did not converge",
			zap.String("tool", toolID),
			zap.Int("series_max", o.Engine.SeriesMax()),
			zap.Error(err),
		)
		return Failure(types.KindNonconvergence, err.Error())
	case errors.Is(err, numerics.ErrDomain):
		o.Logger.Debug("Argument out of range",
			zap.String("tool", toolID),
			zap.Error(err),
		)
		return Failure(types.KindDomain, err.Error())
	default:
		return nil, fmt.Errorf("%s: %w", toolID, err)
	}
}

// GetNumber extracts float64 from params with validation
func GetNumber(params map[string]interface{}, key string) (float64, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}
	return toNumber(val)
}

// GetInt extracts an integer, accepting floats with no fractional part
func GetInt(params map[string]interface{}, key string) (int, bool) {
	val, ok := params[key]
	if !ok {
		return 0, false
	}

	switch v := val.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	default:
		f, ok := toNumber(val)
		if !ok || f != stdmath.Trunc(f) || stdmath.Abs(f) > 1<<53 {
			return 0, false
		}
		return int(f), true
	}
}

// GetComplex extracts a complex value given as {"re": x, "im": y} or as a
// plain real number. A missing "im" reads as zero.
func GetComplex(params map[string]interface{}, key string) (complexnum.Complex, bool) {
	val, ok := params[key]
	if !ok {
		return complexnum.Complex{}, false
	}

	if x, ok := toNumber(val); ok {
		return complexnum.FromReal(x), true
	}

	obj, ok := val.(map[string]interface{})
	if !ok {
		return complexnum.Complex{}, false
	}
	re, ok := GetNumber(obj, "re")
	if !ok {
		return complexnum.Complex{}, false
	}
	im := 0.0
	if _, present := obj["im"]; present {
		if im, ok = GetNumber(obj, "im"); !ok {
			return complexnum.Complex{}, false
		}
	}
	return complexnum.New(re, im), true
}

func toNumber(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case float32:
		return float64(v), true
	case string:
		return types.ParseNonFinite(v)
	default:
		return 0, false
	}
}

func complexData(z complexnum.Complex) map[string]interface{} {
	return map[string]interface{}{
		"re":   types.JSONFloat(z.Re()),
		"im":   types.JSONFloat(z.Im()),
		"text": z.String(),
	}
}

func realData(x float64) map[string]interface{} {
	return map[string]interface{}{"result": types.JSONFloat(x)}
}

func complexParam(name, description string) types.Parameter {
	return types.Parameter{Name: name, Type: "complex", Description: description, Required: true}
}

func zParam() []types.Parameter {
	return []types.Parameter{complexParam("z", "Complex argument {re, im}")}
}

func invalidComplex(key string) (*types.Result, error) {
	return Failure(types.KindInvalidParams, fmt.Sprintf("%s must be a complex value {re, im}", key))
}
