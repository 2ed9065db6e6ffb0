// Package config provides configuration loading and validation for the application.
package config

import (
	"os"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Config holds all application configuration.
type Config struct {
	Env      string
	Port     string
	LogLevel string
	OSRM     OSRMConfig
	Limits   LimitsConfig
}

// OSRMConfig configures the travel-time service's OSRM backend.
type OSRMConfig struct {
	URL     string
	Timeout time.Duration
	Enabled bool
}

// LimitsConfig holds the advisory catalog paging limits. Nothing
// outside Load's clamp reads them.
type LimitsConfig struct {
	DefaultLimit int
	MaxLimit     int
}

// Load reads configuration from environment variables.
func Load() *Config {
	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnv("PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "debug"),
		OSRM: OSRMConfig{
			URL:     getEnv("OSRM_URL", "http://localhost:5000"),
			Timeout: parseDuration(getEnv("OSRM_TIMEOUT", "5s")),
			Enabled: parseBool(getEnv("USE_OSRM", "true")),
		},
		Limits: LimitsConfig{
			DefaultLimit: parseInt(getEnv("DEFAULT_LIMIT", "20")),
			MaxLimit:     parseInt(getEnv("MAX_LIMIT", "100")),
		},
	}

	if cfg.Limits.DefaultLimit > cfg.Limits.MaxLimit {
		log.Warn().Msg("DEFAULT_LIMIT exceeds MAX_LIMIT, clamping")
		cfg.Limits.DefaultLimit = cfg.Limits.MaxLimit
	}

	return cfg
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func parseDuration(s string) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Str("value", s).Msg("invalid duration, using default 5s")
		return 5 * time.Second
	}
	return d
}

func parseBool(s string) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		log.Warn().Str("value", s).Msg("invalid bool, defaulting to true")
		return true
	}
	return b
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		log.Warn().Str("value", s).Msg("invalid int, defaulting to 20")
		return 20
	}
	return n
}
