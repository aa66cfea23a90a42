package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/snapshot"
	"github.com/scrynt/backend/pkg/database"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import the snapshot file into Postgres",
	Long: `Loads the snapshot file and stores the raw records as a new snapshot
row set. Derived scores are never persisted; they are recomputed from
the raw batch on every analytics call.`,
	RunE: runImport,
}

var importInit bool

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().BoolVar(&importInit, "init", false, "create the snapshot tables first")
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	db, err := database.New(cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	repo := snapshot.NewRepository(db.Pool)
	if importInit {
		if err := repo.InitSchema(ctx); err != nil {
			return err
		}
		log.Info("Snapshot schema ready")
	}

	batch, err := snapshot.NewFileSource(cfg.Snapshot.Path, log).Load(ctx)
	if err != nil {
		return fmt.Errorf("load snapshot: %w", err)
	}

	id, err := repo.SaveSnapshot(ctx, batch)
	if err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}

	log.WithFields(map[string]interface{}{
		"snapshot_id": id,
		"records":     batch.Count(),
	}).Info("Snapshot imported")

	fmt.Printf("Imported snapshot %d (%d records)\n", id, batch.Count())
	return nil
}
