package complexmath

import (
	"context"
	stdmath "math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/types"
)

func z(re, im float64) map[string]interface{} {
	return map[string]interface{}{"re": re, "im": im}
}

func execute(t *testing.T, p *Provider, toolID string, params map[string]interface{}) *types.Result {
	t.Helper()
	result, err := p.Execute(context.Background(), toolID, params, nil)
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func complexResult(t *testing.T, result *types.Result) (float64, float64) {
	t.Helper()
	require.True(t, result.Success, "unexpected failure: %v", result.Error)
	re, ok := result.Data["re"].(float64)
	require.True(t, ok, "re = %v", result.Data["re"])
	im, ok := result.Data["im"].(float64)
	require.True(t, ok, "im = %v", result.Data["im"])
	return re, im
}

func TestDefinition(t *testing.T) {
	p := NewProvider(nil, nil)
	def := p.Definition()

	assert.Equal(t, "complex", def.ID)
	assert.Equal(t, types.CategoryComplex, def.Category)
	assert.Len(t, def.Tools, 16)

	// every advertised tool must be routable
	for _, tool := range def.Tools {
		result := execute(t, p, tool.ID, map[string]interface{}{
			"z": z(1, 1), "p": 2.0, "n": 3.0, "x": 2.0,
		})
		assert.True(t, result.Success, tool.ID)
	}
}

func TestComplexValuedTools(t *testing.T) {
	p := NewProvider(nil, nil)

	tests := []struct {
		tool   string
		params map[string]interface{}
		re, im float64
	}{
		{"complex.exp", map[string]interface{}{"z": z(0, stdmath.Pi)}, -1, 0},
		{"complex.log", map[string]interface{}{"z": z(-1, 0)}, 0, stdmath.Pi},
		{"complex.sqr", map[string]interface{}{"z": z(1, 2)}, -3, 4},
		{"complex.sqrt", map[string]interface{}{"z": z(-4, 0)}, 0, 2},
		{"complex.sqrt", map[string]interface{}{"z": z(3, 4)}, 2, 1},
		{"complex.sin", map[string]interface{}{"z": 0.0}, 0, 0},
		{"complex.cos", map[string]interface{}{"z": z(0, 0)}, 1, 0},
		{"complex.tan", map[string]interface{}{"z": z(0, 1000)}, 0, 1},
		{"complex.tanh", map[string]interface{}{"z": z(1000, 0)}, 1, 0},
		{"complex.cosh", map[string]interface{}{"z": z(0, 0)}, 1, 0},
		{"complex.sinh", map[string]interface{}{"z": z(0, stdmath.Pi / 2)}, 0, 1},
		{"complex.pow", map[string]interface{}{"z": z(0, 1), "p": 2.0}, -1, 0},
		{"complex.powInt", map[string]interface{}{"z": z(0, 1), "n": 4.0}, 1, 0},
		{"complex.powInt", map[string]interface{}{"z": z(0, 0), "n": 0}, 1, 0},
		{"complex.powInt", map[string]interface{}{"z": z(2, 0), "n": -2.0}, 0.25, 0},
		{"complex.powReal", map[string]interface{}{"x": 0.0, "z": z(0, 0)}, 1, 0},
		{"complex.powReal", map[string]interface{}{"x": stdmath.E, "z": z(1, 0)}, stdmath.E, 0},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			re, im := complexResult(t, execute(t, p, tt.tool, tt.params))
			assert.InDelta(t, tt.re, re, 1e-12)
			assert.InDelta(t, tt.im, im, 1e-12)
		})
	}
}

func TestRealValuedTools(t *testing.T) {
	p := NewProvider(nil, nil)

	result := execute(t, p, "complex.abs", map[string]interface{}{"z": z(3, -4)})
	require.True(t, result.Success)
	assert.Equal(t, 5.0, result.Data["result"])

	result = execute(t, p, "complex.arg", map[string]interface{}{"z": z(0, 1)})
	require.True(t, result.Success)
	assert.InDelta(t, stdmath.Pi/2, result.Data["result"].(float64), 1e-15)

	result = execute(t, p, "complex.polar", map[string]interface{}{"z": z(-2, 0)})
	require.True(t, result.Success)
	assert.Equal(t, 2.0, result.Data["r"])
	assert.InDelta(t, stdmath.Pi, result.Data["theta"].(float64), 1e-15)
}

func TestFailures(t *testing.T) {
	p := NewProvider(cmath.New(cmath.Options{SeriesMax: 2}), nil)

	tests := []struct {
		name   string
		tool   string
		params map[string]interface{}
		kind   string
	}{
		{"nonconvergence", "complex.sqrt", map[string]interface{}{"z": z(1, 0.2)}, types.KindNonconvergence},
		{"negative real base", "complex.powReal", map[string]interface{}{"x": -1.0, "z": z(1, 1)}, types.KindDomain},
		{"missing z", "complex.exp", map[string]interface{}{}, types.KindInvalidParams},
		{"malformed z", "complex.exp", map[string]interface{}{"z": "abc"}, types.KindInvalidParams},
		{"missing re", "complex.exp", map[string]interface{}{"z": map[string]interface{}{"im": 1.0}}, types.KindInvalidParams},
		{"fractional n", "complex.powInt", map[string]interface{}{"z": z(1, 1), "n": 1.5}, types.KindInvalidParams},
		{"missing p", "complex.pow", map[string]interface{}{"z": z(1, 1)}, types.KindInvalidParams},
		{"missing x", "complex.powReal", map[string]interface{}{"z": z(1, 1)}, types.KindInvalidParams},
		{"unknown tool", "complex.asin", map[string]interface{}{"z": z(1, 1)}, types.KindUnknownTool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := execute(t, p, tt.tool, tt.params)
			assert.False(t, result.Success)
			require.NotNil(t, result.Error)
			assert.NotEmpty(t, *result.Error)
			assert.Equal(t, tt.kind, result.Data[types.ErrorKindKey])
		})
	}
}

func TestNonFiniteEncoding(t *testing.T) {
	p := NewProvider(nil, nil)
	result := execute(t, p, "complex.exp", map[string]interface{}{"z": z(1000, 0)})
	require.True(t, result.Success)
	assert.Equal(t, "+Inf", result.Data["re"])

	result = execute(t, p, "complex.abs", map[string]interface{}{"z": map[string]interface{}{"re": "NaN", "im": 0.0}})
	require.True(t, result.Success)
	assert.Equal(t, "NaN", result.Data["result"])
}

func TestGetComplex(t *testing.T) {
	c, ok := GetComplex(map[string]interface{}{"z": 2}, "z")
	require.True(t, ok)
	assert.Equal(t, 2.0, c.Re())
	assert.Equal(t, 0.0, c.Im())

	c, ok = GetComplex(map[string]interface{}{"z": map[string]interface{}{"re": 1.0}}, "z")
	require.True(t, ok)
	assert.Equal(t, 0.0, c.Im())

	_, ok = GetComplex(map[string]interface{}{"z": map[string]interface{}{"re": 1.0, "im": true}}, "z")
	assert.False(t, ok)
}
