package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()
	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Equal(t, "yahoo", cfg.QuoteSource)
	assert.Equal(t, DefaultAlphaVantageKey, cfg.AlphaVantageAPIKey)
	assert.Equal(t, 10, cfg.HTTPTimeoutSec)
	assert.Equal(t, 3600, cfg.CacheTTLSec)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("QUOTE_SOURCE", "alphavantage")
	t.Setenv("ALPHA_VANTAGE_API_KEY", "secret")
	t.Setenv("CACHE_TTL_SEC", "60")

	cfg := LoadConfig()
	assert.Equal(t, "9000", cfg.HTTPPort)
	assert.Equal(t, "alphavantage", cfg.QuoteSource)
	assert.Equal(t, "secret", cfg.AlphaVantageAPIKey)
	assert.Equal(t, 60, cfg.CacheTTLSec)
}

func TestLoadConfigBadIntFallsBack(t *testing.T) {
	t.Setenv("HTTP_TIMEOUT_SEC", "not-a-number")
	cfg := LoadConfig()
	assert.Equal(t, 10, cfg.HTTPTimeoutSec)
}
