package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/GriffinCanCode/numerics/internal/logging"
	"github.com/GriffinCanCode/numerics/internal/monitoring"
	"github.com/GriffinCanCode/numerics/internal/types"
)

// Provider interface for service implementations
type Provider interface {
	Definition() types.Service
	Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error)
}

// Registry routes "<service>.<tool>" IDs to providers. Providers are
// registered once at startup; definitions are cached at registration.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
	defs      map[string]types.Service

	metrics *monitoring.Metrics
	logger  *logging.Logger
}

// NewRegistry creates a new service registry. Both arguments may be nil.
func NewRegistry(metrics *monitoring.Metrics, logger *logging.Logger) *Registry {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Registry{
		providers: make(map[string]Provider),
		defs:      make(map[string]types.Service),
		metrics:   metrics,
		logger:    logger,
	}
}

// Register adds a provider. IDs must be unique and every tool ID must be
// namespaced by its service ID.
func (r *Registry) Register(provider Provider) error {
	def := provider.Definition()
	if def.ID == "" {
		return fmt.Errorf("service ID cannot be empty")
	}
	if strings.Contains(def.ID, ".") {
		return fmt.Errorf("service ID %q must not contain '.'", def.ID)
	}
	for _, tool := range def.Tools {
		if !strings.HasPrefix(tool.ID, def.ID+".") {
			return fmt.Errorf("tool %q is not namespaced by service %q", tool.ID, def.ID)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.providers[def.ID]; exists {
		return fmt.Errorf("service %q already registered", def.ID)
	}
	r.providers[def.ID] = provider
	r.defs[def.ID] = def
	return nil
}

// Get retrieves a service by ID
func (r *Registry) Get(serviceID string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[serviceID]
	return p, ok
}

// definitions returns cached definitions ordered by ID
func (r *Registry) definitions() []types.Service {
	r.mu.RLock()
	defs := make([]types.Service, 0, len(r.defs))
	for _, def := range r.defs {
		defs = append(defs, def)
	}
	r.mu.RUnlock()

	sort.Slice(defs, func(i, j int) bool { return defs[i].ID < defs[j].ID })
	return defs
}

// List returns registered services ordered by ID, optionally filtered by
// category
func (r *Registry) List(category *types.Category) []types.Service {
	var services []types.Service
	for _, def := range r.definitions() {
		if category == nil || def.Category == *category {
			services = append(services, def)
		}
	}
	return services
}

// Discover ranks services by how well their ID, name, capabilities, tools
// and description match the words of query. Services with no match are
// left out; ties keep ID order.
func (r *Registry) Discover(query string, limit int) []types.Service {
	words := queryWords(query)
	if len(words) == 0 || limit <= 0 {
		return nil
	}

	type ranked struct {
		def   types.Service
		score int
	}
	var hits []ranked
	for _, def := range r.definitions() {
		if score := relevance(words, def); score > 0 {
			hits = append(hits, ranked{def, score})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	if len(hits) > limit {
		hits = hits[:limit]
	}
	out := make([]types.Service, len(hits))
	for i, h := range hits {
		out[i] = h.def
	}
	return out
}

// Field weights for Discover
const (
	weightID          = 10
	weightName        = 6
	weightCapability  = 4
	weightTool        = 3
	weightCategory    = 2
	weightDescription = 1
)

func queryWords(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= '0' && r <= '9')
	})
}

func relevance(words []string, def types.Service) int {
	fields := []struct {
		weight int
		words  map[string]bool
	}{
		{weightID, wordSet(def.ID)},
		{weightName, wordSet(def.Name)},
		{weightCapability, wordSet(def.Capabilities...)},
		{weightTool, toolWords(def.Tools)},
		{weightCategory, wordSet(string(def.Category))},
		{weightDescription, wordSet(def.Description)},
	}

	score := 0
	for _, w := range words {
		if len(w) < 2 {
			continue
		}
		for _, f := range fields {
			if f.words[w] {
				score += f.weight
			}
		}
	}
	return score
}

func wordSet(texts ...string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range texts {
		for _, w := range queryWords(t) {
			set[w] = true
		}
	}
	return set
}

func toolWords(tools []types.Tool) map[string]bool {
	texts := make([]string, 0, 2*len(tools))
	for _, t := range tools {
		texts = append(texts, t.ID, t.Name)
	}
	return wordSet(texts...)
}

// Execute runs a service tool. Tool failures come back as unsuccessful
// results; a Go error means the tool could not be routed or the provider
// itself broke.
func (r *Registry) Execute(ctx context.Context, toolID string, params map[string]interface{}, appCtx *types.Context) (*types.Result, error) {
	serviceID, _, ok := strings.Cut(toolID, ".")
	if !ok {
		return routeFailure(fmt.Sprintf("invalid tool ID format: %s", toolID))
	}
	provider, found := r.Get(serviceID)
	if !found {
		return routeFailure(fmt.Sprintf("service not found: %s", serviceID))
	}

	done := r.metrics.StartTool(serviceID, toolID)
	result, err := provider.Execute(ctx, toolID, params, appCtx)
	switch {
	case err != nil:
		done(monitoring.ToolError, "")
		r.logger.Error("Tool execution failed",
			zap.String("tool", toolID),
			zap.Error(err),
		)
		return result, err
	case result.Success:
		done(monitoring.ToolSuccess, "")
	default:
		done(monitoring.ToolFailure, result.Kind())
	}
	return result, nil
}

func routeFailure(msg string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &msg}, errors.New(msg)
}

// Stats returns registry statistics
func (r *Registry) Stats() map[string]interface{} {
	defs := r.definitions()
	tools := 0
	categories := make(map[string]int)
	for _, def := range defs {
		tools += len(def.Tools)
		categories[string(def.Category)]++
	}
	return map[string]interface{}{
		"total_services": len(defs),
		"total_tools":    tools,
		"categories":     categories,
	}
}
