package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration
type Config struct {
	Queue  QueueConfig
	API    APIConfig
	Worker WorkerConfig
	Export ExportConfig
	Log    LogConfig
}

// QueueConfig holds queue configuration (Redis)
type QueueConfig struct {
	RedisURL  string
	QueueName string
}

// Enabled reports whether a Redis URL was configured
func (q QueueConfig) Enabled() bool {
	return q.RedisURL != ""
}

// APIConfig holds API server configuration
type APIConfig struct {
	Port            int
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	Concurrency int
}

// ExportConfig holds export and localisation settings
type ExportConfig struct {
	Dir             string
	DefaultLanguage string
	PDFFontPath     string // optional TTF used for non-Latin PDF text
}

// LogConfig controls structured logging
type LogConfig struct {
	Level  string
	Format string // json|text
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	apiPort, err := strconv.Atoi(getEnv("API_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid API_PORT: %w", err)
	}
	if apiPort <= 0 || apiPort > 65535 {
		return nil, fmt.Errorf("API_PORT %d is out of range", apiPort)
	}

	workerConcurrency, err := strconv.Atoi(getEnv("WORKER_CONCURRENCY", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid WORKER_CONCURRENCY: %w", err)
	}
	if workerConcurrency < 1 {
		return nil, fmt.Errorf("WORKER_CONCURRENCY must be at least 1, got %d", workerConcurrency)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "30s"))
	if err != nil {
		return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	return &Config{
		Queue: QueueConfig{
			RedisURL:  os.Getenv("REDIS_URL"),
			QueueName: getEnv("QUEUE_NAME", "customer_exports"),
		},
		API: APIConfig{
			Port:            apiPort,
			ShutdownTimeout: shutdownTimeout,
			AllowedOrigins:  splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Worker: WorkerConfig{
			Concurrency: workerConcurrency,
		},
		Export: ExportConfig{
			Dir:             getEnv("EXPORT_DIR", "exports"),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "el"),
			PDFFontPath:     os.Getenv("EXPORT_PDF_FONT"),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
	}, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// splitList parses a comma separated list, dropping blank entries
func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
