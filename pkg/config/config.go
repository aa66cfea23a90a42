package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application. Environment
// variables are read only here.
type Config struct {
	Env string // development, staging, production

	// Snapshot supply
	Snapshot SnapshotConfig

	// Database
	Database DatabaseConfig

	// Analytics
	Analytics AnalyticsConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// SnapshotConfig configures where stock snapshots come from and how long
// a loaded batch stays valid.
type SnapshotConfig struct {
	Path string        // snapshot file (.json or .csv)
	TTL  time.Duration // batch validity window
}

// DatabaseConfig holds PostgreSQL configuration.
type DatabaseConfig struct {
	URL string

	// Connection pool
	MaxConns        int
	MinConns        int
	MaxConnLifetime time.Duration
	MaxConnIdleTime time.Duration
}

// AnalyticsConfig holds tunables for the analytics engine.
type AnalyticsConfig struct {
	RiskFreeRate float64 // annual, decimal (0.05 = 5%)
	ClusterSize  int     // correlation cluster size
}

// Load reads configuration from environment variables. Only this function
// calls os.Getenv.
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Env: getEnv("ENV", "development"),

		Snapshot: SnapshotConfig{
			Path: getEnv("SNAPSHOT_PATH", "data/scrynt_data_latest.json"),
			TTL:  getEnvAsDuration("SNAPSHOT_TTL", "24h"),
		},

		Database: DatabaseConfig{
			URL:             getEnv("DATABASE_URL", ""),
			MaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
			MinConns:        getEnvAsInt("DB_MIN_CONNS", 2),
			MaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", "1h"),
			MaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", "30m"),
		},

		Analytics: AnalyticsConfig{
			RiskFreeRate: getEnvAsFloat("RISK_FREE_RATE", 0.05),
			ClusterSize:  getEnvAsInt("CLUSTER_SIZE", 5),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks configuration invariants. DATABASE_URL is optional:
// most commands work straight off the snapshot file.
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}
	if c.Snapshot.TTL <= 0 {
		return fmt.Errorf("SNAPSHOT_TTL must be positive")
	}
	if c.Analytics.ClusterSize < 2 {
		return fmt.Errorf("CLUSTER_SIZE must be at least 2")
	}
	if c.Analytics.RiskFreeRate < 0 {
		return fmt.Errorf("RISK_FREE_RATE must not be negative")
	}
	return nil
}

// loadEnvFile tries to load .env from a few likely locations.
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
