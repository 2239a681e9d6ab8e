package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets keys for the duration of the test
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaultMatchesEnvDefaults(t *testing.T) {
	clearEnv(t, "PORT", "HOST", "CORS_ORIGINS", "LOG_LEVEL", "LOG_DEV",
		"RATE_LIMIT_RPS", "RATE_LIMIT_BURST", "RATE_LIMIT_ENABLED", "RATE_LIMIT_GLOBAL", "SERIES_MAX")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, DefaultSeriesMax, cfg.Numerics.SeriesMax)
	assert.False(t, cfg.RateLimit.Global)
}

func TestCORSOrigins(t *testing.T) {
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://plots.example.org")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "https://plots.example.org"}, cfg.Server.CORSOrigins)
}

func TestSeriesMax(t *testing.T) {
	tests := []struct {
		name      string
		seriesMax string
		want      int
		wantErr   string
	}{
		{name: "custom cap", seriesMax: "1000", want: 1000},
		{name: "minimum cap", seriesMax: "1", want: 1},
		{name: "zero cap", seriesMax: "0", wantErr: "SERIES_MAX must be at least 1"},
		{name: "negative cap", seriesMax: "-5", wantErr: "SERIES_MAX must be at least 1"},
		{name: "not a number", seriesMax: "many", wantErr: "failed to load config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SERIES_MAX", tt.seriesMax)

			cfg, err := Load()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				assert.Equal(t, DefaultSeriesMax, LoadOrDefault().Numerics.SeriesMax)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Numerics.SeriesMax)
		})
	}
}

func TestRateLimitValidation(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		wantErr string
	}{
		{name: "global bucket", env: map[string]string{"RATE_LIMIT_GLOBAL": "true"}},
		{name: "zero rate while enabled", env: map[string]string{"RATE_LIMIT_RPS": "0"}, wantErr: "RATE_LIMIT_RPS"},
		{name: "zero burst while enabled", env: map[string]string{"RATE_LIMIT_BURST": "0"}, wantErr: "RATE_LIMIT_BURST"},
		{name: "zero rate while disabled", env: map[string]string{"RATE_LIMIT_RPS": "0", "RATE_LIMIT_ENABLED": "false"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.env["RATE_LIMIT_GLOBAL"] == "true", cfg.RateLimit.Global)
		})
	}
}
