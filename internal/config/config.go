package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds platform-service configuration.
type Config struct {
	AppEnv   string // APP_ENV
	AppHost  string // APP_HOST
	HTTPPort string // APP_PORT or HTTP_PORT
	LogLevel string // LOG_LEVEL

	// Auth tokens
	TokenSecret string        // TOKEN_SECRET
	TokenTTL    time.Duration // TOKEN_TTL_MINUTES

	// Streaming
	StreamMaxConcurrent int           // STREAM_MAX_CONCURRENT, active sessions per user
	SessionGracePeriod  time.Duration // SESSION_GRACE_SECONDS, ended-session retention

	// Listing
	DefaultPageSize int // DEFAULT_PAGE_SIZE

	// Simulated backend latency applied to every service call.
	SimLatency time.Duration // SIM_LATENCY_MS

	// WebSocket URL advertised for notification push (e.g. wss://host).
	WSBaseURL string // WS_BASE_URL
}

// Load loads config from environment (.env if present).
func Load() (*Config, error) {
	_ = godotenv.Load()

	ttlMin, _ := strconv.Atoi(getEnv("TOKEN_TTL_MINUTES", "60"))
	maxStreams, _ := strconv.Atoi(getEnv("STREAM_MAX_CONCURRENT", "2"))
	graceSec, _ := strconv.Atoi(getEnv("SESSION_GRACE_SECONDS", "5"))
	pageSize, _ := strconv.Atoi(getEnv("DEFAULT_PAGE_SIZE", "10"))
	latencyMS, _ := strconv.Atoi(getEnv("SIM_LATENCY_MS", "0"))

	cfg := &Config{
		AppEnv:              getEnv("APP_ENV", "development"),
		AppHost:             getEnv("APP_HOST", "0.0.0.0"),
		HTTPPort:            firstEnv("APP_PORT", "HTTP_PORT", "8080"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		TokenSecret:         getEnv("TOKEN_SECRET", "dev-secret"),
		TokenTTL:            time.Duration(ttlMin) * time.Minute,
		StreamMaxConcurrent: maxStreams,
		SessionGracePeriod:  time.Duration(graceSec) * time.Second,
		DefaultPageSize:     pageSize,
		SimLatency:          time.Duration(latencyMS) * time.Millisecond,
		WSBaseURL:           getEnv("WS_BASE_URL", ""),
	}
	return cfg, nil
}

// Validate checks required fields and production safety.
func (c *Config) Validate() error {
	if c.StreamMaxConcurrent < 1 {
		return errors.New("config: STREAM_MAX_CONCURRENT must be at least 1")
	}
	if c.DefaultPageSize < 1 {
		return errors.New("config: DEFAULT_PAGE_SIZE must be at least 1")
	}
	if c.AppEnv == "production" && c.TokenSecret == "dev-secret" {
		return errors.New("config: in production TOKEN_SECRET is required")
	}
	return nil
}

// Addr returns listen address for HTTP server.
func (c *Config) Addr() string {
	return c.AppHost + ":" + c.HTTPPort
}

func firstEnv(keysAndDef ...string) string {
	if len(keysAndDef) == 0 {
		return ""
	}
	def := keysAndDef[len(keysAndDef)-1]
	keys := keysAndDef[:len(keysAndDef)-1]
	for _, k := range keys {
		if v := os.Getenv(k); v != "" {
			return v
		}
	}
	return def
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
