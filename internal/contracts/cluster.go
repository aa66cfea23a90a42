package contracts

// Cluster is a sector-scoped grouping of at most five tickers, taken in
// input order, evaluated for average pairwise return correlation.
// AvgCorrelation is the mean over i<j pairs only. RiskScore is
// min(100, AvgCorrelation*100); negative correlation stays negative.
type Cluster struct {
	Sector         string   `json:"sector"`
	Tickers        []string `json:"tickers"`
	AvgCorrelation float64  `json:"avg_correlation"`
	RiskScore      float64  `json:"risk_score"`
}

// Size returns the number of tickers in the cluster.
func (c *Cluster) Size() int {
	return len(c.Tickers)
}

// SectorRisk is the per-sector rollup of that sector's clusters. Both
// figures are averages of the cluster-level averages, not recomputed from
// raw pairwise data.
type SectorRisk struct {
	Sector         string  `json:"sector"`
	ClusterCount   int     `json:"cluster_count"`
	AvgCorrelation float64 `json:"avg_correlation"`
	RiskScore      float64 `json:"risk_score"`
}
