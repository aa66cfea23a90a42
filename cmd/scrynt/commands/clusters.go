package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/scrynt/backend/internal/risk"
)

var clustersCmd = &cobra.Command{
	Use:   "clusters",
	Short: "Sector correlation clusters",
	Long: `Groups each sector's tickers into clusters of five (input order) and
scores the average pairwise Pearson correlation of their 5-point return
vectors, then rolls clusters up to a per-sector average.`,
	RunE: runClusters,
}

func init() {
	rootCmd.AddCommand(clustersCmd)
}

func runClusters(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	batch, err := loadBatch(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}

	engine := risk.NewEngine(cfg.Analytics.ClusterSize, log)
	clusters := engine.Clusters(batch.Records)
	sectors := engine.SectorRisk(clusters)

	if jsonOutput {
		return printJSON(map[string]interface{}{
			"clusters": clusters,
			"sectors":  sectors,
		})
	}

	w := newTable()
	fmt.Fprintln(w, "SECTOR\tTICKERS\tAVG CORR\tRISK")
	for _, c := range clusters {
		fmt.Fprintf(w, "%s\t%s\t%.4f\t%.2f\n",
			c.Sector, strings.Join(c.Tickers, ","), c.AvgCorrelation, c.RiskScore)
	}
	fmt.Fprintln(w, "\nSECTOR ROLLUP\tCLUSTERS\tAVG CORR\tRISK")
	for _, s := range sectors {
		fmt.Fprintf(w, "%s\t%d\t%.4f\t%.2f\n",
			s.Sector, s.ClusterCount, s.AvgCorrelation, s.RiskScore)
	}
	return w.Flush()
}
