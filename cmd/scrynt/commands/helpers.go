package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/internal/snapshot"
	"github.com/scrynt/backend/pkg/config"
	"github.com/scrynt/backend/pkg/logger"
)

// setup loads config and builds the logger. Every command starts here.
func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if snapshotPath != "" {
		cfg.Snapshot.Path = snapshotPath
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	log := logger.New(level, cfg.LogFormat)

	return cfg, log, nil
}

// loadBatch reads the configured snapshot file through the caching
// store.
func loadBatch(ctx context.Context, cfg *config.Config, log *logger.Logger) (*contracts.Batch, error) {
	source := snapshot.NewFileSource(cfg.Snapshot.Path, log)
	store := snapshot.NewStore(source, cfg.Snapshot.TTL, log)
	batch, err := store.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	return batch, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a tabwriter for aligned column output.
func newTable() *tabwriter.Writer {
	return tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
}

// fmtOpt formats an optional float, "-" when absent.
func fmtOpt(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%.2f", *v)
}
