package snapshot

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/scrynt/backend/internal/contracts"
)

// Repository persists raw stock snapshots. Only raw records are stored;
// derived scores are cohort-relative projections and are always
// recomputed, never written.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a snapshot repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// SaveSnapshot stores a batch inside one transaction. Record position is
// persisted so LatestSnapshot can restore file order.
func (r *Repository) SaveSnapshot(ctx context.Context, batch *contracts.Batch) (int64, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var snapshotID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO snapshots (fetched_at, record_count)
		VALUES ($1, $2)
		RETURNING id
	`, batch.FetchedAt, len(batch.Records)).Scan(&snapshotID)
	if err != nil {
		return 0, fmt.Errorf("failed to insert snapshot: %w", err)
	}

	rows := make([][]interface{}, 0, len(batch.Records))
	for i := range batch.Records {
		rec := &batch.Records[i]
		rows = append(rows, []interface{}{
			snapshotID, i, rec.Ticker, rec.Sector,
			rec.Price, rec.MarketCap,
			rec.Change1W, rec.Change1M, rec.Change6M,
			rec.ChangeYTD, rec.Change1Y, rec.Change3Y,
			rec.DividendYield, rec.DividendGrowth, rec.PayoutRatio,
			rec.PEGRatio, rec.PEForward, rec.PBRatio,
			rec.EPSGrowth3Y, rec.RevenueGrowth3Y,
			rec.ROE, rec.ROA, rec.Beta,
		})
	}

	_, err = tx.CopyFrom(ctx,
		pgx.Identifier{"snapshot_records"},
		[]string{
			"snapshot_id", "position", "ticker", "sector",
			"price", "market_cap",
			"change_1w", "change_1m", "change_6m",
			"change_ytd", "change_1y", "change_3y",
			"dividend_yield", "dividend_growth", "payout_ratio",
			"peg_ratio", "pe_forward", "pb_ratio",
			"eps_growth_3y", "revenue_growth_3y",
			"roe", "roa", "beta",
		},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to copy snapshot records: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snapshotID, nil
}

// LatestSnapshot loads the most recent stored batch in original record
// order. Returns pgx.ErrNoRows when nothing has been imported yet.
func (r *Repository) LatestSnapshot(ctx context.Context) (*contracts.Batch, error) {
	var snapshotID int64
	var fetchedAt time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT id, fetched_at FROM snapshots
		ORDER BY fetched_at DESC, id DESC
		LIMIT 1
	`).Scan(&snapshotID, &fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to find latest snapshot: %w", err)
	}

	rows, err := r.pool.Query(ctx, `
		SELECT
			ticker, sector, price, market_cap,
			change_1w, change_1m, change_6m,
			change_ytd, change_1y, change_3y,
			dividend_yield, dividend_growth, payout_ratio,
			peg_ratio, pe_forward, pb_ratio,
			eps_growth_3y, revenue_growth_3y,
			roe, roa, beta
		FROM snapshot_records
		WHERE snapshot_id = $1
		ORDER BY position
	`, snapshotID)
	if err != nil {
		return nil, fmt.Errorf("failed to query snapshot records: %w", err)
	}
	defer rows.Close()

	records := make([]contracts.StockRecord, 0)
	for rows.Next() {
		var rec contracts.StockRecord
		err := rows.Scan(
			&rec.Ticker, &rec.Sector, &rec.Price, &rec.MarketCap,
			&rec.Change1W, &rec.Change1M, &rec.Change6M,
			&rec.ChangeYTD, &rec.Change1Y, &rec.Change3Y,
			&rec.DividendYield, &rec.DividendGrowth, &rec.PayoutRatio,
			&rec.PEGRatio, &rec.PEForward, &rec.PBRatio,
			&rec.EPSGrowth3Y, &rec.RevenueGrowth3Y,
			&rec.ROE, &rec.ROA, &rec.Beta,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan snapshot record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read snapshot records: %w", err)
	}

	return &contracts.Batch{Records: records, FetchedAt: fetchedAt}, nil
}

// SnapshotInfo summarizes one stored snapshot.
type SnapshotInfo struct {
	ID          int64     `json:"id"`
	FetchedAt   time.Time `json:"fetched_at"`
	RecordCount int       `json:"record_count"`
}

// ListSnapshots returns the newest snapshots first, up to limit.
func (r *Repository) ListSnapshots(ctx context.Context, limit int) ([]SnapshotInfo, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, fetched_at, record_count FROM snapshots
		ORDER BY fetched_at DESC, id DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	infos := make([]SnapshotInfo, 0)
	for rows.Next() {
		var info SnapshotInfo
		if err := rows.Scan(&info.ID, &info.FetchedAt, &info.RecordCount); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot info: %w", err)
		}
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// Schema is the DDL for the snapshot tables, applied by the import
// command with --init.
const Schema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id           BIGSERIAL PRIMARY KEY,
	fetched_at   TIMESTAMPTZ NOT NULL,
	record_count INT NOT NULL,
	created_at   TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS snapshot_records (
	snapshot_id       BIGINT NOT NULL REFERENCES snapshots(id) ON DELETE CASCADE,
	position          INT NOT NULL,
	ticker            TEXT NOT NULL,
	sector            TEXT NOT NULL DEFAULT '',
	price             DOUBLE PRECISION,
	market_cap        DOUBLE PRECISION,
	change_1w         DOUBLE PRECISION,
	change_1m         DOUBLE PRECISION,
	change_6m         DOUBLE PRECISION,
	change_ytd        DOUBLE PRECISION,
	change_1y         DOUBLE PRECISION,
	change_3y         DOUBLE PRECISION,
	dividend_yield    DOUBLE PRECISION,
	dividend_growth   DOUBLE PRECISION,
	payout_ratio      DOUBLE PRECISION,
	peg_ratio         DOUBLE PRECISION,
	pe_forward        DOUBLE PRECISION,
	pb_ratio          DOUBLE PRECISION,
	eps_growth_3y     DOUBLE PRECISION,
	revenue_growth_3y DOUBLE PRECISION,
	roe               DOUBLE PRECISION,
	roa               DOUBLE PRECISION,
	beta              DOUBLE PRECISION,
	PRIMARY KEY (snapshot_id, position)
);

CREATE INDEX IF NOT EXISTS idx_snapshot_records_ticker
	ON snapshot_records (ticker);
`

// InitSchema creates the snapshot tables when missing.
func (r *Repository) InitSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to create snapshot schema: %w", err)
	}
	return nil
}
