package commands

import (
	"github.com/spf13/cobra"
)

var (
	// Global flags
	snapshotPath string
	jsonOutput   bool
	verbose      bool
)

// rootCmd is the base command when called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "scrynt",
	Short: "Scrynt - stock screening and analytics",
	Long: `Scrynt stock screening and analytics CLI.

Scores a snapshot of stock records into cohort-relative factor rankings,
correlation clusters and sector aggregates.

Examples:
  go run ./cmd/scrynt score --snapshot data/scrynt_data_latest.json
  go run ./cmd/scrynt screen --sectors Technology --min-roe 15
  go run ./cmd/scrynt clusters --json
  go run ./cmd/scrynt import --init`,
}

// Execute runs the root command. Called once from main.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&snapshotPath, "snapshot", "", "snapshot file (overrides SNAPSHOT_PATH)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of a table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
