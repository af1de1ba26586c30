// Package config holds service configuration loaded from environment
// variables with sensible defaults.
package config

import (
	"os"
	"time"
)

// Config holds service configuration
type Config struct {
	// Port is the HTTP listen port
	Port string
	// ReadTimeout bounds reading an incoming request
	ReadTimeout time.Duration
	// WriteTimeout bounds writing a response; scrapes with competitors can
	// take minutes, so this is generous
	WriteTimeout time.Duration
	// ShutdownTimeout bounds graceful shutdown
	ShutdownTimeout time.Duration
	// ScrapeTimeout bounds one full scrape at the request boundary
	ScrapeTimeout time.Duration
	// FetchTimeout is the per-request timeout for storefront page fetches
	FetchTimeout time.Duration
	// DatabasePath is the sqlite database file location
	DatabasePath string
	// GroqAPIKey authenticates the enhancement tier; empty disables the
	// service call and runs fallback-only extraction
	GroqAPIKey string
	// GroqModel is the completion model identifier; empty uses the default
	GroqModel string
	// GroqTimeout bounds a single completion call
	GroqTimeout time.Duration
}

// New creates a new configuration from environment variables
func New() *Config {
	return &Config{
		Port:            getEnv("DEEPSOLV_PORT", "8080"),
		ReadTimeout:     getDurationEnv("DEEPSOLV_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    getDurationEnv("DEEPSOLV_WRITE_TIMEOUT", 180*time.Second),
		ShutdownTimeout: getDurationEnv("DEEPSOLV_SHUTDOWN_TIMEOUT", 30*time.Second),
		ScrapeTimeout:   getDurationEnv("DEEPSOLV_SCRAPE_TIMEOUT", 120*time.Second),
		FetchTimeout:    getDurationEnv("DEEPSOLV_FETCH_TIMEOUT", 15*time.Second),
		DatabasePath:    getEnv("DEEPSOLV_DB_PATH", "deepsolv.db"),
		GroqAPIKey:      getEnv("DEEPSOLV_GROQ_API_KEY", ""),
		GroqModel:       getEnv("DEEPSOLV_GROQ_MODEL", ""),
		GroqTimeout:     getDurationEnv("DEEPSOLV_GROQ_TIMEOUT", 30*time.Second),
	}
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

// getDurationEnv gets a duration environment variable with a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}

	return defaultValue
}
