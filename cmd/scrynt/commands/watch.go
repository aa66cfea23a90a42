package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/scheduler"
	"github.com/scrynt/backend/internal/scheduler/jobs"
	"github.com/scrynt/backend/internal/snapshot"
	"github.com/scrynt/backend/pkg/database"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the snapshot refresh scheduler",
	Long: `Starts the cron scheduler with the snapshot refresh job. The job
reloads the snapshot on its schedule; when a DATABASE_URL is configured
the refreshed batch is also persisted.`,
	RunE: runWatch,
}

var watchSchedule string

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&watchSchedule, "schedule", "0 0 6 * * *", "cron schedule for the refresh job")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	source := snapshot.NewFileSource(cfg.Snapshot.Path, log)
	store := snapshot.NewStore(source, cfg.Snapshot.TTL, log)

	var repo *snapshot.Repository
	if cfg.Database.URL != "" {
		db, err := database.New(cfg)
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		defer db.Close()
		repo = snapshot.NewRepository(db.Pool)
		log.Info("Persisting refreshed snapshots to database")
	}

	sched := scheduler.New(log)
	job := jobs.NewSnapshotRefreshJob(store, repo, watchSchedule, log)
	if err := sched.AddJob(job); err != nil {
		return err
	}

	sched.Start()
	defer sched.Stop()

	fmt.Printf("Watching %s (schedule %q). Press Ctrl+C to stop.\n", cfg.Snapshot.Path, watchSchedule)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	return nil
}
