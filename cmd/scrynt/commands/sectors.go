package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/scoring"
	"github.com/scrynt/backend/internal/sector"
)

var sectorsCmd = &cobra.Command{
	Use:   "sectors",
	Short: "Sector aggregate scores",
	Long: `Scores the snapshot, then reduces the composite scores to one row per
sector: the unweighted mean of each factor plus the member count.`,
	RunE: runSectors,
}

func init() {
	rootCmd.AddCommand(sectorsCmd)
}

func runSectors(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	scorer := scoring.NewCompositeScorer(scoring.DefaultWeights(), scoring.CompositeValueStrategy{}, log)
	scores := scorer.ScoreBatch(batch.Records)
	aggregates := sector.Aggregate(sector.FromScores(scores))

	if jsonOutput {
		return printJSON(aggregates)
	}

	w := newTable()
	fmt.Fprintln(w, "SECTOR\tSTOCKS\tTOTAL\tVALUE\tGROWTH\tQUALITY\tMOMENTUM\tSTABILITY")
	for _, a := range aggregates {
		fmt.Fprintf(w, "%s\t%d\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			a.Sector, a.StockCount,
			a.Averages["total_score"], a.Averages["value"], a.Averages["growth"],
			a.Averages["quality"], a.Averages["momentum"], a.Averages["stability"])
	}
	return w.Flush()
}
