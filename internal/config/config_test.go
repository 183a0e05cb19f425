package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/noah-isme/backend-rental/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":           "",
		"PORT":              "",
		"RATE_LIMIT_WINDOW": "",
		"RATE_LIMIT_MAX":    "",
	})
	require.NoError(t, err)
	require.Equal(t, "development", cfg.AppEnv)
	require.Equal(t, ":8080", cfg.HTTPAddr())
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 120, cfg.RateLimitMax)
	require.Equal(t, "rental", cfg.MetricsNamespace)
	require.True(t, cfg.MetricsEnabled)
	require.False(t, cfg.TracingEnabled)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"APP_ENV":               "production",
		"PORT":                  "9090",
		"CORS_ALLOWED_ORIGINS":  "https://a.example, https://b.example",
		"OBS_ENABLE_PROMETHEUS": "off",
		"RATE_LIMIT_WINDOW":     "30s",
		"RATE_LIMIT_MAX":        "10",
	})
	require.NoError(t, err)
	require.Equal(t, "production", cfg.AppEnv)
	require.Equal(t, ":9090", cfg.HTTPAddr())
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	require.False(t, cfg.MetricsEnabled)
	require.Equal(t, 30*time.Second, cfg.RateLimitWindow)
	require.Equal(t, 10, cfg.RateLimitMax)
}

func TestInvalidValuesFallBack(t *testing.T) {
	cfg, err := config.LoadForTests(map[string]string{
		"RATE_LIMIT_WINDOW":          "nonsense",
		"RATE_LIMIT_MAX":             "not-a-number",
		"OBS_TRACING_SAMPLING_RATIO": "oops",
	})
	require.NoError(t, err)
	require.Equal(t, time.Minute, cfg.RateLimitWindow)
	require.Equal(t, 120, cfg.RateLimitMax)
	require.Equal(t, 1.0, cfg.TracingSamplingRatio)
}
