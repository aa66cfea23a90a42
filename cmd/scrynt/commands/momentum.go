package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/scoring"
)

var momentumCmd = &cobra.Command{
	Use:   "momentum",
	Short: "Standalone momentum view",
	Long: `Ranks stocks by the standalone momentum blend:
0.35*change1M + 0.35*change6M + 0.20*change1Y + 0.10*betaStability.

This is a different formula from the momentum factor inside the
composite score, which uses normalized 1-year change alone.`,
	RunE: runMomentum,
}

var momentumLimit int

func init() {
	rootCmd.AddCommand(momentumCmd)
	momentumCmd.Flags().IntVar(&momentumLimit, "limit", 25, "number of rows to print (0 = all)")
}

func runMomentum(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	rows := scoring.NewMomentumView(log).Score(batch.Records)
	if momentumLimit > 0 && len(rows) > momentumLimit {
		rows = rows[:momentumLimit]
	}

	if jsonOutput {
		return printJSON(rows)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tSECTOR\tSCORE\t1M%\t6M%\t1Y%\tBETA STAB")
	for _, r := range rows {
		fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.2f\t%.2f\t%.2f\n",
			r.Ticker, r.Sector, r.Score, r.Change1M, r.Change6M, r.Change1Y, r.BetaStability)
	}
	return w.Flush()
}
