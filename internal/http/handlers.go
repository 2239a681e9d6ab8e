package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/GriffinCanCode/numerics/internal/logging"
	"github.com/GriffinCanCode/numerics/internal/middleware"
	"github.com/GriffinCanCode/numerics/internal/monitoring"
	"github.com/GriffinCanCode/numerics/internal/numerics/cmath"
	"github.com/GriffinCanCode/numerics/internal/service"
	"github.com/GriffinCanCode/numerics/internal/shared/utils"
	"github.com/GriffinCanCode/numerics/internal/types"
)

const (
	version             = "0.1.0"
	defaultDiscoverSize = 5
	maxDiscoverSize     = 20
)

// Handlers serves the registry and the engine over HTTP
type Handlers struct {
	registry *service.Registry
	engine   *cmath.Engine
	metrics  *monitoring.Metrics
	logger   *logging.Logger
}

// NewHandlers creates a new handler set. metrics and logger may be nil.
func NewHandlers(registry *service.Registry, engine *cmath.Engine, metrics *monitoring.Metrics, logger *logging.Logger) *Handlers {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{
		registry: registry,
		engine:   engine,
		metrics:  metrics,
		logger:   logger,
	}
}

// Root identifies the server
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "online", "service": "numerics", "version": version})
}

// Health reports the registry counts and the engine's series cap
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":           "healthy",
		"service_registry": h.registry.Stats(),
		"engine":           gin.H{"series_max": h.engine.SeriesMax()},
	})
}

// ListServices lists services, optionally filtered by ?category=
func (h *Handlers) ListServices(c *gin.Context) {
	raw := c.Query("category")
	if err := utils.ValidateCategory(raw, false); err != nil {
		reject(c, err)
		return
	}

	var filter *types.Category
	if raw != "" {
		category := types.Category(raw)
		filter = &category
	}
	c.JSON(http.StatusOK, gin.H{
		"services": h.registry.List(filter),
		"stats":    h.registry.Stats(),
	})
}

// DiscoverServices ranks services against a free text query
func (h *Handlers) DiscoverServices(c *gin.Context) {
	var req types.DiscoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, err)
		return
	}
	if err := utils.ValidateQuery(req.Query); err != nil {
		reject(c, err)
		return
	}

	limit := req.Limit
	switch {
	case limit <= 0:
		limit = defaultDiscoverSize
	case limit > maxDiscoverSize:
		limit = maxDiscoverSize
	}
	c.JSON(http.StatusOK, gin.H{
		"query":    req.Query,
		"services": h.registry.Discover(req.Query, limit),
	})
}

// ExecuteService runs any registered tool. Tool failures are still 200;
// the caller reads success and error_kind from the body.
func (h *Handlers) ExecuteService(c *gin.Context) {
	var req types.ExecuteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, err)
		return
	}
	if err := utils.ValidateToolID(req.ToolID, "tool_id", true); err != nil {
		reject(c, err)
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), req.ToolID, req.Params, requestContext(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// EvaluateComplex evaluates one complex function, POST /complex/:fn. Unlike
// ExecuteService the status reflects the failure kind.
func (h *Handlers) EvaluateComplex(c *gin.Context) {
	fn := c.Param("fn")
	if err := utils.ValidateID(fn, "fn", true); err != nil {
		reject(c, err)
		return
	}
	var req types.EvaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		reject(c, err)
		return
	}

	result, err := h.registry.Execute(c.Request.Context(), "complex."+fn, req.Params(), requestContext(c))
	if err != nil {
		h.logger.Error("Complex evaluation failed",
			zap.String("fn", fn),
			zap.String("request_id", middleware.GetRequestID(c)),
			zap.Error(err),
		)
		fail(c, err)
		return
	}
	c.JSON(statusFor(result), result)
}

// MetricsSnapshot returns tool and request counters as JSON
func (h *Handlers) MetricsSnapshot(c *gin.Context) {
	if h.metrics == nil {
		c.JSON(http.StatusServiceUnavailable, types.Failed(types.KindInternal, "metrics disabled"))
		return
	}
	c.JSON(http.StatusOK, h.metrics.Snapshot())
}

// reject answers a malformed request
func reject(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, types.Failed(types.KindInvalidParams, err.Error()))
}

// fail answers a call the registry could not route or a provider that broke
func fail(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, types.Failed(types.KindInternal, err.Error()))
}

// statusFor maps a failed result's kind onto an HTTP status
func statusFor(result *types.Result) int {
	if result.Success {
		return http.StatusOK
	}
	switch result.Kind() {
	case types.KindUnknownTool:
		return http.StatusNotFound
	case types.KindInvalidParams:
		return http.StatusBadRequest
	default:
		return http.StatusUnprocessableEntity
	}
}

func requestContext(c *gin.Context) *types.Context {
	ctx := &types.Context{}
	if rid := middleware.GetRequestID(c); rid != "" {
		ctx.RequestID = &rid
	}
	if ip := c.ClientIP(); ip != "" {
		ctx.ClientIP = &ip
	}
	return ctx
}
