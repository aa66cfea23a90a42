package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/risk"
)

var sharpeCmd = &cobra.Command{
	Use:   "sharpe",
	Short: "Per-ticker risk metrics",
	Long: `Computes the proxy Sharpe ratio (from the 1M/6M/1Y change vector) and
the beta-adjusted annual return for every ticker. Metrics with missing
or degenerate inputs print as "-" rather than zero.`,
	RunE: runSharpe,
}

var sharpeRiskFree float64

func init() {
	rootCmd.AddCommand(sharpeCmd)
	sharpeCmd.Flags().Float64Var(&sharpeRiskFree, "risk-free", -1, "annual risk-free rate (overrides RISK_FREE_RATE)")
}

func runSharpe(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	rate := cfg.Analytics.RiskFreeRate
	if cmd.Flags().Changed("risk-free") {
		rate = sharpeRiskFree
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	profiles := risk.NewEngine(cfg.Analytics.ClusterSize, log).Profiles(batch.Records, rate)

	if jsonOutput {
		return printJSON(profiles)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tSECTOR\tSHARPE\tRISK-ADJ RETURN")
	for _, p := range profiles {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.Ticker, p.Sector, fmtOpt(p.Sharpe), fmtOpt(p.RiskAdjustedReturn))
	}
	return w.Flush()
}
