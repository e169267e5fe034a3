package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"growth-dashboard/internal/logging"
)

var (
	ErrInvalidDataSource = errors.New("invalid DATA_SOURCE")
	ErrMissingDSN        = errors.New("POSTGRES_DSN is required for DATA_SOURCE=postgres")
	ErrInvalidDuration   = errors.New("invalid duration")
)

type DataSource string

const (
	SourceCSV      DataSource = "csv"
	SourceXLSX     DataSource = "xlsx"
	SourcePostgres DataSource = "postgres"
)

// Config is the complete service configuration, read from the environment.
type Config struct {
	HTTPAddr        string
	DataSource      DataSource
	DataPath        string
	PostgresDSN     string
	LogLevel        logging.Level
	ShutdownTimeout time.Duration
}

// UsePostgres reports whether a database is configured at all.
func (c *Config) UsePostgres() bool {
	return c.PostgresDSN != ""
}

// Load reads configuration from environment variables and validates it.
// Callers load .env beforehand if they want one.
func Load() (*Config, error) {
	cfg := &Config{
		HTTPAddr:    getEnvOrDefault("HTTP_ADDR", ":8080"),
		DataSource:  DataSource(getEnvOrDefault("DATA_SOURCE", string(SourceCSV))),
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		LogLevel:    logging.ParseLevel(os.Getenv("LOG_LEVEL")),
	}

	switch cfg.DataSource {
	case SourceCSV:
		cfg.DataPath = getEnvOrDefault("DATA_PATH", "data/data.csv")
	case SourceXLSX:
		cfg.DataPath = getEnvOrDefault("DATA_PATH", "data/data.xlsx")
	case SourcePostgres:
		if cfg.PostgresDSN == "" {
			return nil, ErrMissingDSN
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidDataSource, cfg.DataSource)
	}

	timeout, err := getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}
	cfg.ShutdownTimeout = timeout

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidDuration, key, value)
	}
	return d, nil
}
