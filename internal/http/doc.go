// Package http provides HTTP handlers for the numerics REST API.
//
// Endpoints:
//   - Health: / and /health
//   - Services: /services, /services/discover, /services/execute
//   - Complex functions: POST /complex/:fn
//   - Metrics: /metrics/json (the Prometheus endpoint is mounted by the server)
//
// Service execution always answers 200 with a Result; a tool failure is a
// Result with success=false. /complex/:fn maps failures onto status codes:
// 400 for bad parameters, 404 for unknown functions and 422 for domain or
// convergence failures.
//
// Example Usage:
//
//	handlers := http.NewHandlers(registry, engine, metrics, logger)
//	router.GET("/health", handlers.Health)
//	router.POST("/complex/:fn", handlers.EvaluateComplex)
package http
