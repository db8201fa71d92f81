// Package config provides application configuration management.
// It loads settings from environment variables and provides defaults for
// server mode, provider endpoints, timeouts, and dataset locations.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Completion Provider Configuration (Upstage Solar, OpenAI-compatible)
	UpstageAPIKey  string // Required: credential for the completion provider
	UpstageBaseURL string // Base URL for the Solar chat completions API
	SolarModel     string // Model name (default: "solar-pro")

	// Fallback Completion Provider (optional)
	GeminiAPIKey string // Gemini API key; empty disables provider fallback
	GeminiModel  string // Gemini model name (default: "gemini-2.5-flash")

	// Weather Provider Configuration
	WeatherBaseURL    string // wttr.in-style endpoint (format+lang query style)
	OpenWeatherAPIKey string // Optional: switches to API-key + units + lang style
	WeatherTimeout    time.Duration

	// Observability
	BetterstackToken    string // Better Stack log source token (empty = stdout only)
	BetterstackEndpoint string // Better Stack ingesting host
	SentryToken         string // Better Stack Errors token (empty = disabled)
	SentryHost          string // Better Stack Errors ingesting host
	Environment         string // Deployment environment name

	// Server Configuration
	Port            string
	LogLevel        string
	ShutdownTimeout time.Duration

	// Festival Dataset Configuration
	FestivalCSVPath string // Local path to the festival CSV (plain or .zst)

	// Optional R2 snapshot source for the festival dataset.
	// When all fields are set, the snapshot is downloaded to FestivalCSVPath
	// at startup before the index is populated.
	R2Endpoint    string
	R2AccessKeyID string
	R2SecretKey   string
	R2Bucket      string
	R2SnapshotKey string

	// LLM retry budget
	LLMMaxAttempts int // Attempts per provider including the first (default: 2)

	// Per-client request budget for the generate endpoint.
	// Zero disables rate limiting.
	GenerateRateLimit int // Requests per minute per client IP (default: 20)
}

// Load reads configuration from environment variables
// It attempts to load .env file first, then reads from env vars
func Load() (*Config, error) {
	// Try to load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	cfg := &Config{
		UpstageAPIKey:  getEnv("UPSTAGE_API_KEY", ""),
		UpstageBaseURL: getEnv("UPSTAGE_BASE_URL", "https://api.upstage.ai/v1"),
		SolarModel:     getEnv("SOLAR_MODEL", "solar-pro"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),

		WeatherBaseURL:    getEnv("WEATHER_BASE_URL", "https://wttr.in"),
		OpenWeatherAPIKey: getEnv("OPENWEATHER_API_KEY", ""),
		WeatherTimeout:    getDurationEnv("WEATHER_TIMEOUT", WeatherRequest),

		BetterstackToken:    getEnv("BETTERSTACK_TOKEN", ""),
		BetterstackEndpoint: getEnv("BETTERSTACK_ENDPOINT", ""),
		SentryToken:         getEnv("SENTRY_TOKEN", ""),
		SentryHost:          getEnv("SENTRY_HOST", "errors.betterstack.com"),
		Environment:         getEnv("ENVIRONMENT", "production"),

		Port:            getEnv("PORT", "10000"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", GracefulShutdown),

		FestivalCSVPath: getEnv("FESTIVAL_CSV_PATH", "data/busan_festival.csv"),

		R2Endpoint:    getEnv("R2_ENDPOINT", ""),
		R2AccessKeyID: getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretKey:   getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2Bucket:      getEnv("R2_BUCKET", ""),
		R2SnapshotKey: getEnv("R2_SNAPSHOT_KEY", "busan_festival.csv.zst"),

		LLMMaxAttempts: getIntEnv("LLM_MAX_ATTEMPTS", 2),

		GenerateRateLimit: getIntEnv("GENERATE_RATE_LIMIT", 20),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	var errs []error

	if c.UpstageAPIKey == "" {
		errs = append(errs, errors.New("UPSTAGE_API_KEY is required"))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.FestivalCSVPath == "" {
		errs = append(errs, errors.New("FESTIVAL_CSV_PATH is required"))
	}
	if c.WeatherTimeout <= 0 {
		errs = append(errs, fmt.Errorf("WEATHER_TIMEOUT must be positive, got %v", c.WeatherTimeout))
	}
	if c.LLMMaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("LLM_MAX_ATTEMPTS must be at least 1, got %d", c.LLMMaxAttempts))
	}
	if c.GenerateRateLimit < 0 {
		errs = append(errs, fmt.Errorf("GENERATE_RATE_LIMIT must not be negative, got %d", c.GenerateRateLimit))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// HasGeminiFallback returns true if the fallback completion provider is configured.
func (c *Config) HasGeminiFallback() bool {
	return c.GeminiAPIKey != ""
}

// HasR2Snapshot returns true if a remote dataset snapshot source is configured.
func (c *Config) HasR2Snapshot() bool {
	return c.R2Endpoint != "" && c.R2AccessKeyID != "" && c.R2SecretKey != "" && c.R2Bucket != ""
}

// getEnv retrieves environment variable with fallback to default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getIntEnv retrieves integer environment variable with fallback to default value
func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getDurationEnv retrieves duration environment variable with fallback to default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
