package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Composite factor ranking",
	Long: `Scores every eligible record in the snapshot against its cohort and
prints the descending composite ranking.

The five factors (value, growth, quality, momentum, stability) are
min/max normalized against the batch being scored, so the ranking is
relative to this snapshot, not an absolute scale.`,
	RunE: runScore,
}

var (
	scoreLimit         int
	scoreValueStrategy string
)

func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().IntVar(&scoreLimit, "limit", 25, "number of rows to print (0 = all)")
	scoreCmd.Flags().StringVar(&scoreValueStrategy, "value-strategy", "composite", "value formula: composite|standalone")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	var strategy scoring.ValueStrategy
	switch scoreValueStrategy {
	case "composite":
		strategy = scoring.CompositeValueStrategy{}
	case "standalone":
		strategy = scoring.StandaloneValueStrategy{}
	default:
		return fmt.Errorf("unknown value strategy %q", scoreValueStrategy)
	}

	weights := scoring.DefaultWeights()
	if err := weights.Validate(); err != nil {
		return err
	}

	scorer := scoring.NewCompositeScorer(weights, strategy, log)
	scores := scorer.ScoreBatch(batch.Records)

	if scoreLimit > 0 && len(scores) > scoreLimit {
		scores = scores[:scoreLimit]
	}

	if jsonOutput {
		return printJSON(scores)
	}

	w := newTable()
	fmt.Fprintln(w, "RANK\tTICKER\tSECTOR\tTOTAL\tVALUE\tGROWTH\tQUALITY\tMOMENTUM\tSTABILITY")
	for _, s := range scores {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			s.Rank, s.Ticker, s.Sector, s.TotalScore,
			s.Components.Value, s.Components.Growth, s.Components.Quality,
			s.Components.Momentum, s.Components.Stability)
	}
	return w.Flush()
}
