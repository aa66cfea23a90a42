package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/screening"
	"github.com/scrynt/backend/internal/scoring"
	"github.com/scrynt/backend/pkg/database"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Snapshot and database status",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	batch, err := loadBatch(ctx, cfg, log)
	if err != nil {
		return err
	}

	eligible := 0
	for i := range batch.Records {
		if scoring.Eligible(&batch.Records[i]) {
			eligible++
		}
	}
	sectors := screening.NewScreener(log).AvailableSectors(batch.Records)

	fmt.Printf("Snapshot:  %s\n", cfg.Snapshot.Path)
	fmt.Printf("Fetched:   %s\n", batch.FetchedAt.Format("2006-01-02 15:04:05"))
	fmt.Printf("Records:   %d (%d eligible for composite scoring)\n", batch.Count(), eligible)
	fmt.Printf("Sectors:   %s\n", strings.Join(sectors, ", "))

	if cfg.Database.URL == "" {
		fmt.Println("Database:  not configured")
		return nil
	}

	db, err := database.New(cfg)
	if err != nil {
		fmt.Printf("Database:  unreachable (%v)\n", err)
		return nil
	}
	defer db.Close()

	health, err := db.HealthCheck(ctx)
	if err != nil {
		fmt.Printf("Database:  unhealthy (%v)\n", err)
		return nil
	}
	fmt.Printf("Database:  ok (%s ping, %d/%d conns)\n",
		health.ResponseTime, health.TotalConns, health.MaxConns)
	return nil
}
