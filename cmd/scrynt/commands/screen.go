package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/screening"
)

var screenCmd = &cobra.Command{
	Use:   "screen",
	Short: "Filter the snapshot by criteria",
	Long: `Applies the screen filters and prints matching records. Records
missing a compared field fail that filter and are dropped.`,
	RunE: runScreen,
}

var (
	screenTicker   string
	screenSectors  []string
	screenMinCap   float64
	screenMaxCap   float64
	screenMinYield float64
	screenMaxYield float64
	screenMinPEG   float64
	screenMaxPEG   float64
	screenMinPB    float64
	screenMaxPB    float64
	screenMinPE    float64
	screenMaxPE    float64
	screenMinEPSG  float64
	screenMinRevG  float64
	screenMinROE   float64
	screenMinROA   float64
	screenSortBy   string
	screenSortAsc  bool
	screenLimit    int
)

func init() {
	rootCmd.AddCommand(screenCmd)

	f := screenCmd.Flags()
	f.StringVar(&screenTicker, "ticker", "", "ticker substring")
	f.StringSliceVar(&screenSectors, "sectors", nil, "sectors to include")
	f.Float64Var(&screenMinCap, "min-market-cap", -1, "minimum market cap")
	f.Float64Var(&screenMaxCap, "max-market-cap", -1, "maximum market cap")
	f.Float64Var(&screenMinYield, "min-dividend-yield", -1, "minimum dividend yield")
	f.Float64Var(&screenMaxYield, "max-dividend-yield", -1, "maximum dividend yield")
	f.Float64Var(&screenMinPEG, "min-peg", -1, "minimum PEG ratio")
	f.Float64Var(&screenMaxPEG, "max-peg", -1, "maximum PEG ratio")
	f.Float64Var(&screenMinPB, "min-pb", -1, "minimum P/B ratio")
	f.Float64Var(&screenMaxPB, "max-pb", -1, "maximum P/B ratio")
	f.Float64Var(&screenMinPE, "min-pe", -1, "minimum forward P/E")
	f.Float64Var(&screenMaxPE, "max-pe", -1, "maximum forward P/E")
	f.Float64Var(&screenMinEPSG, "min-eps-growth", -1, "minimum 3Y EPS growth")
	f.Float64Var(&screenMinRevG, "min-revenue-growth", -1, "minimum 3Y revenue growth")
	f.Float64Var(&screenMinROE, "min-roe", -1, "minimum ROE")
	f.Float64Var(&screenMinROA, "min-roa", -1, "minimum ROA")
	f.StringVar(&screenSortBy, "sort-by", "", "field to sort by (e.g. market_cap, dividend_yield)")
	f.BoolVar(&screenSortAsc, "asc", false, "sort ascending instead of descending")
	f.IntVar(&screenLimit, "limit", 50, "number of rows to print (0 = all)")
}

// optFlag turns the -1 "unset" sentinel of an optional flag into a nil
// pointer.
func optFlag(cmd *cobra.Command, name string, v float64) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	return &v
}

func runScreen(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	criteria := screening.Criteria{
		Ticker:           screenTicker,
		Sectors:          screenSectors,
		MinMarketCap:     optFlag(cmd, "min-market-cap", screenMinCap),
		MaxMarketCap:     optFlag(cmd, "max-market-cap", screenMaxCap),
		MinDividendYield: optFlag(cmd, "min-dividend-yield", screenMinYield),
		MaxDividendYield: optFlag(cmd, "max-dividend-yield", screenMaxYield),
		MinPEG:           optFlag(cmd, "min-peg", screenMinPEG),
		MaxPEG:           optFlag(cmd, "max-peg", screenMaxPEG),
		MinPB:            optFlag(cmd, "min-pb", screenMinPB),
		MaxPB:            optFlag(cmd, "max-pb", screenMaxPB),
		MinPE:            optFlag(cmd, "min-pe", screenMinPE),
		MaxPE:            optFlag(cmd, "max-pe", screenMaxPE),
		MinEPSGrowth:     optFlag(cmd, "min-eps-growth", screenMinEPSG),
		MinRevenueGrowth: optFlag(cmd, "min-revenue-growth", screenMinRevG),
		MinROE:           optFlag(cmd, "min-roe", screenMinROE),
		MinROA:           optFlag(cmd, "min-roa", screenMinROA),
	}
	if err := criteria.Validate(); err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	results := screening.NewScreener(log).Screen(batch.Records, criteria, screenSortBy, !screenSortAsc)
	if screenLimit > 0 && len(results) > screenLimit {
		results = results[:screenLimit]
	}

	if jsonOutput {
		return printJSON(results)
	}

	w := newTable()
	fmt.Fprintln(w, "TICKER\tSECTOR\tPRICE\tMKT CAP\tPE(F)\tP/B\tPEG\tYIELD%\tROE\tROA")
	for i := range results {
		r := &results[i]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			r.Ticker, r.Sector, fmtOpt(r.Price), fmtOpt(r.MarketCap),
			fmtOpt(r.PEForward), fmtOpt(r.PBRatio), fmtOpt(r.PEGRatio),
			fmtOpt(r.DividendYield), fmtOpt(r.ROE), fmtOpt(r.ROA))
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d match(es)\n", len(results))
	return nil
}
