package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "development" {
		t.Errorf("Expected Env to be development, got %s", cfg.Env)
	}
	if cfg.Snapshot.TTL != 24*time.Hour {
		t.Errorf("Expected Snapshot.TTL to be 24h, got %s", cfg.Snapshot.TTL)
	}
	if cfg.Analytics.RiskFreeRate != 0.05 {
		t.Errorf("Expected RiskFreeRate to be 0.05, got %f", cfg.Analytics.RiskFreeRate)
	}
	if cfg.Analytics.ClusterSize != 5 {
		t.Errorf("Expected ClusterSize to be 5, got %d", cfg.Analytics.ClusterSize)
	}
}

func TestLoadWithCustomValues(t *testing.T) {
	os.Setenv("ENV", "production")
	os.Setenv("SNAPSHOT_TTL", "1h")
	os.Setenv("RISK_FREE_RATE", "0.03")
	os.Setenv("DB_MAX_CONNS", "50")

	defer func() {
		os.Unsetenv("ENV")
		os.Unsetenv("SNAPSHOT_TTL")
		os.Unsetenv("RISK_FREE_RATE")
		os.Unsetenv("DB_MAX_CONNS")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Env != "production" {
		t.Errorf("Expected Env to be production, got %s", cfg.Env)
	}
	if cfg.Snapshot.TTL != time.Hour {
		t.Errorf("Expected Snapshot.TTL to be 1h, got %s", cfg.Snapshot.TTL)
	}
	if cfg.Analytics.RiskFreeRate != 0.03 {
		t.Errorf("Expected RiskFreeRate to be 0.03, got %f", cfg.Analytics.RiskFreeRate)
	}
	if cfg.Database.MaxConns != 50 {
		t.Errorf("Expected DB MaxConns to be 50, got %d", cfg.Database.MaxConns)
	}
}

func TestLoadRejectsBadEnv(t *testing.T) {
	os.Setenv("ENV", "sandbox")
	defer os.Unsetenv("ENV")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject unknown ENV values")
	}
}

func TestLoadRejectsBadClusterSize(t *testing.T) {
	os.Setenv("CLUSTER_SIZE", "1")
	defer os.Unsetenv("CLUSTER_SIZE")

	if _, err := Load(); err == nil {
		t.Error("Load() should reject CLUSTER_SIZE below 2")
	}
}
