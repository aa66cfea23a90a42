package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/internal/screening"
)

// The three shortcut views from the screener: top gainers, dividend
// leaders and undervalued growth.

var gainersCmd = &cobra.Command{
	Use:   "gainers",
	Short: "Top gaining stocks for a period",
	RunE:  runGainers,
}

var dividendsCmd = &cobra.Command{
	Use:   "dividends",
	Short: "Highest dividend yields",
	Long: `Ranks stocks by dividend yield. Stocks with a zero or unknown yield
are excluded entirely.`,
	RunE: runDividends,
}

var growthCmd = &cobra.Command{
	Use:   "growth",
	Short: "Undervalued growth stocks",
	Long: `Ranks stocks by combined growth-vs-multiples score:
(epsGrowth3Y + revenueGrowth3Y) / (peForward + pbRatio).`,
	RunE: runGrowth,
}

var (
	gainersPeriod string
	viewLimit     int
)

func init() {
	rootCmd.AddCommand(gainersCmd)
	rootCmd.AddCommand(dividendsCmd)
	rootCmd.AddCommand(growthCmd)

	gainersCmd.Flags().StringVar(&gainersPeriod, "period", "1w", "period: 1w|1m|6m|ytd|1y|3y")
	for _, c := range []*cobra.Command{gainersCmd, dividendsCmd, growthCmd} {
		c.Flags().IntVar(&viewLimit, "limit", 10, "number of stocks to return")
	}
}

func runGainers(cmd *cobra.Command, args []string) error {
	return runView(cmd, func(s *screening.Screener, records []contracts.StockRecord) []contracts.StockRecord {
		return s.TopGainers(records, gainersPeriod, viewLimit)
	})
}

func runDividends(cmd *cobra.Command, args []string) error {
	return runView(cmd, func(s *screening.Screener, records []contracts.StockRecord) []contracts.StockRecord {
		return s.DividendLeaders(records, viewLimit)
	})
}

func runGrowth(cmd *cobra.Command, args []string) error {
	return runView(cmd, func(s *screening.Screener, records []contracts.StockRecord) []contracts.StockRecord {
		return s.UndervaluedGrowth(records, viewLimit)
	})
}

func runView(cmd *cobra.Command, view func(*screening.Screener, []contracts.StockRecord) []contracts.StockRecord) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	results := view(screening.NewScreener(log), batch.Records)

	if jsonOutput {
		return printJSON(results)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tSECTOR\tPRICE\t1W%\t1M%\t1Y%\tYIELD%\tPE(F)")
	for i := range results {
		r := &results[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Ticker, r.Sector, fmtOpt(r.Price),
			fmtOpt(r.Change1W), fmtOpt(r.Change1M), fmtOpt(r.Change1Y),
			fmtOpt(r.DividendYield), fmtOpt(r.PEForward))
	}
	return w.Flush()
}
