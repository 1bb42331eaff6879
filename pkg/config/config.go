package config

import (
	"os"
	"strconv"
)

// DefaultAlphaVantageKey is the documented fallback key; it only works for
// Alpha Vantage's demo symbols and should be overridden in any real run.
const DefaultAlphaVantageKey = "demo"

// Config holds service configuration.
type Config struct {
	HTTPPort           string
	QuoteSource        string
	AlphaVantageAPIKey string
	HTTPTimeoutSec     int
	CacheTTLSec        int
	LogFile            string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() Config {
	return Config{
		HTTPPort:           getEnv("PORT", "8080"),
		QuoteSource:        getEnv("QUOTE_SOURCE", "yahoo"),
		AlphaVantageAPIKey: getEnv("ALPHA_VANTAGE_API_KEY", DefaultAlphaVantageKey),
		HTTPTimeoutSec:     getEnvInt("HTTP_TIMEOUT_SEC", 10),
		CacheTTLSec:        getEnvInt("CACHE_TTL_SEC", 3600),
		LogFile:            getEnv("LOG_FILE", "stockquote.log"),
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if value, exists := os.LookupEnv(key); exists {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultVal
}
