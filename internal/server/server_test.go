package server

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/numerics/internal/config"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := config.Default()
	cfg.Logging.Level = "error"
	cfg.Logging.Development = true
	cfg.RateLimit.Enabled = false

	srv, err := NewServer(cfg)
	require.NoError(t, err)
	return srv
}

func TestNewServerRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Numerics.SeriesMax = 0

	_, err := NewServer(cfg)
	assert.Error(t, err)
}

func TestRoutes(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	tests := []struct {
		method string
		path   string
		body   string
		status int
	}{
		{"GET", "/", "", http.StatusOK},
		{"GET", "/health", "", http.StatusOK},
		{"GET", "/services", "", http.StatusOK},
		{"POST", "/complex/sqrt", `{"z":{"re":3,"im":4}}`, http.StatusOK},
		{"GET", "/metrics/json", "", http.StatusOK},
		{"GET", "/missing", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestPrometheusEndpoint(t *testing.T) {
	srv := newTestServer(t)
	handler := srv.Handler()

	req := httptest.NewRequest("POST", "/complex/exp", strings.NewReader(`{"z":{"re":0,"im":0}}`))
	req.Header.Set("Content-Type", "application/json")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "numerics_tool_calls_total")
	assert.Contains(t, w.Body.String(), "numerics_http_requests_total")
}
