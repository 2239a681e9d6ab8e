package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numerics/internal/monitoring"
	"github.com/GriffinCanCode/numerics/internal/types"
)

type mockProvider struct {
	id       string
	category types.Category
	result   *types.Result
	err      error
}

func (m *mockProvider) Definition() types.Service {
	category := m.category
	if category == "" {
		category = types.CategoryComplex
	}
	return types.Service{
		ID:           m.id,
		Name:         "Mock Service",
		Description:  "A mock service for testing",
		Category:     category,
		Capabilities: []string{"square_root"},
		Tools: []types.Tool{
			{
				ID:          m.id + ".test",
				Name:        "Test Tool",
				Description: "A test tool",
				Returns:     "string",
			},
		},
	}
}

func (m *mockProvider) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	if m.result != nil || m.err != nil {
		return m.result, m.err
	}
	return &types.Result{
		Success: true,
		Data:    map[string]interface{}{"result": "success"},
	}, nil
}

func TestRegister(t *testing.T) {
	r := NewRegistry(nil, nil)
	require.NoError(t, r.Register(&mockProvider{id: "test"}))

	_, ok := r.Get("test")
	assert.True(t, ok)

	assert.ErrorContains(t, r.Register(&mockProvider{id: "test"}), "already registered")
	assert.Error(t, r.Register(&mockProvider{id: ""}))
	assert.Error(t, r.Register(&mockProvider{id: "a.b"}))
	assert.ErrorContains(t, r.Register(&badToolProvider{}), "not namespaced")
}

// badToolProvider declares a tool outside its own namespace
type badToolProvider struct{ mockProvider }

func (b *badToolProvider) Definition() types.Service {
	return types.Service{ID: "x", Tools: []types.Tool{{ID: "y.tool"}}}
}

func TestListAndStats(t *testing.T) {
	r := NewRegistry(nil, nil)
	require.NoError(t, r.Register(&mockProvider{id: "b"}))
	require.NoError(t, r.Register(&mockProvider{id: "a", category: types.CategoryStatistics}))

	services := r.List(nil)
	require.Len(t, services, 2)
	assert.Equal(t, "a", services[0].ID)

	cat := types.CategoryStatistics
	services = r.List(&cat)
	require.Len(t, services, 1)
	assert.Equal(t, "a", services[0].ID)

	stats := r.Stats()
	assert.Equal(t, 2, stats["total_services"])
	assert.Equal(t, 2, stats["total_tools"])
	assert.Equal(t, map[string]int{string(types.CategoryComplex): 1, string(types.CategoryStatistics): 1}, stats["categories"])
}

func TestDiscover(t *testing.T) {
	r := NewRegistry(nil, nil)
	require.NoError(t, r.Register(&mockProvider{id: "samples", category: types.CategoryStatistics}))
	require.NoError(t, r.Register(&mockProvider{id: "complex"}))

	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"id outranks shared capability", "complex square root", 5, []string{"complex", "samples"}},
		{"capability words match both, id order", "square-root", 5, []string{"complex", "samples"}},
		{"category", "statistics", 5, []string{"samples"}},
		{"tool name", "test tool", 1, []string{"complex"}},
		{"no match", "zzz", 5, nil},
		{"zero limit", "complex", 0, nil},
		{"punctuation only", "?!", 5, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var ids []string
			for _, s := range r.Discover(tt.query, tt.limit) {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestExecute(t *testing.T) {
	metrics := monitoring.NewMetrics(prometheus.NewRegistry())
	r := NewRegistry(metrics, nil)

	msg := "did not converge"
	require.NoError(t, r.Register(&mockProvider{id: "ok"}))
	require.NoError(t, r.Register(&mockProvider{id: "fails", result: &types.Result{
		Success: false,
		Error:   &msg,
		Data:    map[string]interface{}{types.ErrorKindKey: types.KindNonconvergence},
	}}))
	require.NoError(t, r.Register(&mockProvider{id: "broken", err: errors.New("boom")}))

	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		result, err := r.Execute(ctx, "ok.test", nil, nil)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolCalls.WithLabelValues("ok", "ok.test", "success")))
	})

	t.Run("failure result", func(t *testing.T) {
		result, err := r.Execute(ctx, "fails.test", nil, nil)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolErrors.WithLabelValues("fails", "fails.test", types.KindNonconvergence)))
	})

	t.Run("provider error", func(t *testing.T) {
		_, err := r.Execute(ctx, "broken.test", nil, nil)
		assert.Error(t, err)
	})

	t.Run("invalid tool id", func(t *testing.T) {
		result, err := r.Execute(ctx, "nodot", nil, nil)
		assert.Error(t, err)
		assert.False(t, result.Success)
	})

	t.Run("failure without kind", func(t *testing.T) {
		noKind := &mockProvider{id: "bare", result: &types.Result{Success: false, Error: &msg}}
		require.NoError(t, r.Register(noKind))
		_, err := r.Execute(ctx, "bare.test", nil, nil)
		require.NoError(t, err)
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolErrors.WithLabelValues("bare", "bare.test", "unknown")))
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.ToolCalls.WithLabelValues("bare", "bare.test", "failure")))
	})

	t.Run("unknown service", func(t *testing.T) {
		result, err := r.Execute(ctx, "missing.tool", nil, nil)
		assert.Error(t, err)
		assert.Contains(t, *result.Error, "service not found")
	})
}
