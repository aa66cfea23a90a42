package jobs

import (
	"context"
	"fmt"

	"github.com/scrynt/backend/internal/snapshot"
	"github.com/scrynt/backend/pkg/logger"
)

// SnapshotRefreshJob reloads the snapshot store on a schedule so the
// next analytics call scores against fresh data. Derived scores are not
// precomputed here: every view recomputes from the batch on demand.
type SnapshotRefreshJob struct {
	store    *snapshot.Store
	repo     *snapshot.Repository // optional: persists the refreshed batch
	schedule string
	logger   *logger.Logger
}

// NewSnapshotRefreshJob creates the refresh job. repo may be nil when no
// database is configured.
func NewSnapshotRefreshJob(store *snapshot.Store, repo *snapshot.Repository, schedule string, log *logger.Logger) *SnapshotRefreshJob {
	if schedule == "" {
		schedule = "0 0 6 * * *" // daily, 06:00
	}
	return &SnapshotRefreshJob{
		store:    store,
		repo:     repo,
		schedule: schedule,
		logger:   log,
	}
}

// Name returns the job name.
func (j *SnapshotRefreshJob) Name() string {
	return "snapshot_refresh"
}

// Schedule returns the cron expression.
func (j *SnapshotRefreshJob) Schedule() string {
	return j.schedule
}

// Run reloads the batch and, when a repository is wired, stores it.
func (j *SnapshotRefreshJob) Run(ctx context.Context) error {
	batch, err := j.store.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("snapshot refresh failed: %w", err)
	}

	j.logger.WithFields(map[string]interface{}{
		"records":    batch.Count(),
		"fetched_at": batch.FetchedAt,
	}).Info("Snapshot refreshed")

	if j.repo != nil {
		if _, err := j.repo.SaveSnapshot(ctx, batch); err != nil {
			return fmt.Errorf("snapshot persist failed: %w", err)
		}
	}

	return nil
}
