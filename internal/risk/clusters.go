package risk

import (
	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

// DefaultClusterSize is how many same-sector tickers form one
// correlation cluster.
const DefaultClusterSize = 5

// minClusterSize is the smallest group worth correlating: a trailing
// remainder with a single ticker has no pairs and is dropped.
const minClusterSize = 2

// Engine groups same-sector tickers into fixed-size clusters and scores
// their average pairwise return correlation.
type Engine struct {
	clusterSize int
	logger      *logger.Logger
}

// NewEngine creates a correlation engine. A clusterSize below 2 falls
// back to the default.
func NewEngine(clusterSize int, log *logger.Logger) *Engine {
	if clusterSize < minClusterSize {
		clusterSize = DefaultClusterSize
	}
	return &Engine{
		clusterSize: clusterSize,
		logger:      log,
	}
}

// returnVector builds the 5-point return vector {1w, 1m, 6m, ytd, 1y}.
// Records missing any of the five fields are excluded from clustering
// entirely (missing-field exclusion, never coerced to zero).
func returnVector(r *contracts.StockRecord) ([]float64, bool) {
	fields := []*float64{r.Change1W, r.Change1M, r.Change6M, r.ChangeYTD, r.Change1Y}
	vec := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f == nil {
			return nil, false
		}
		vec = append(vec, *f)
	}
	return vec, true
}

// Clusters partitions the batch by sector, walks each sector's tickers in
// input order slicing consecutive groups of clusterSize, and scores each
// group's average pairwise Pearson correlation. A trailing partial group
// is kept when it still has at least two members, dropped otherwise.
// The cluster risk score is min(100, avgCorrelation*100); negative
// correlation yields a negative risk score and is not clamped at zero.
func (e *Engine) Clusters(records []contracts.StockRecord) []contracts.Cluster {
	type member struct {
		ticker string
		vec    []float64
	}

	// Sector partition, first-seen sector order, input order within.
	bySector := make(map[string][]member)
	sectorOrder := make([]string, 0)
	skipped := 0
	for i := range records {
		r := &records[i]
		if r.Sector == "" {
			skipped++
			continue
		}
		vec, ok := returnVector(r)
		if !ok {
			skipped++
			continue
		}
		if _, seen := bySector[r.Sector]; !seen {
			sectorOrder = append(sectorOrder, r.Sector)
		}
		bySector[r.Sector] = append(bySector[r.Sector], member{ticker: r.Ticker, vec: vec})
	}

	clusters := make([]contracts.Cluster, 0)
	for _, sector := range sectorOrder {
		members := bySector[sector]
		for start := 0; start < len(members); start += e.clusterSize {
			end := start + e.clusterSize
			if end > len(members) {
				end = len(members)
			}
			group := members[start:end]
			if len(group) < minClusterSize {
				continue
			}

			var sum float64
			pairs := 0
			for i := 0; i < len(group); i++ {
				for j := i + 1; j < len(group); j++ {
					sum += Pearson(group[i].vec, group[j].vec)
					pairs++
				}
			}
			avg := sum / float64(pairs)

			score := avg * 100
			if score > 100 {
				score = 100
			}

			tickers := make([]string, len(group))
			for i, m := range group {
				tickers[i] = m.ticker
			}

			clusters = append(clusters, contracts.Cluster{
				Sector:         sector,
				Tickers:        tickers,
				AvgCorrelation: avg,
				RiskScore:      score,
			})
		}
	}

	e.logger.WithFields(map[string]interface{}{
		"input":    len(records),
		"skipped":  skipped,
		"sectors":  len(sectorOrder),
		"clusters": len(clusters),
	}).Debug("Correlation clustering completed")

	return clusters
}

// SectorRisk rolls clusters up to one row per sector by averaging the
// cluster-level avg_correlation and risk_score. This is an average of
// averages, never a recomputation from raw pairwise data; the two agree
// only when every cluster has the same pair count.
func (e *Engine) SectorRisk(clusters []contracts.Cluster) []contracts.SectorRisk {
	type acc struct {
		corr  float64
		score float64
		n     int
	}
	bySector := make(map[string]*acc)
	order := make([]string, 0)

	for _, c := range clusters {
		a, seen := bySector[c.Sector]
		if !seen {
			a = &acc{}
			bySector[c.Sector] = a
			order = append(order, c.Sector)
		}
		a.corr += c.AvgCorrelation
		a.score += c.RiskScore
		a.n++
	}

	rollup := make([]contracts.SectorRisk, 0, len(order))
	for _, sector := range order {
		a := bySector[sector]
		rollup = append(rollup, contracts.SectorRisk{
			Sector:         sector,
			ClusterCount:   a.n,
			AvgCorrelation: a.corr / float64(a.n),
			RiskScore:      a.score / float64(a.n),
		})
	}
	return rollup
}

// Profiles computes the per-ticker risk metrics: the proxy Sharpe ratio
// from {1M, 6M, 1Y}/100 and the beta-adjusted annual return. Either
// metric is nil when its inputs are missing or degenerate.
func (e *Engine) Profiles(records []contracts.StockRecord, annualRiskFree float64) []contracts.RiskProfile {
	profiles := make([]contracts.RiskProfile, 0, len(records))

	for i := range records {
		r := &records[i]
		p := contracts.RiskProfile{Ticker: r.Ticker, Sector: r.Sector}

		if r.Change1M != nil && r.Change6M != nil && r.Change1Y != nil {
			returns := []float64{*r.Change1M / 100, *r.Change6M / 100, *r.Change1Y / 100}
			if sharpe, ok := SharpeRatio(returns, annualRiskFree); ok {
				p.Sharpe = &sharpe
			}
		}

		if r.Change1Y != nil && r.Beta != nil {
			if rar, ok := RiskAdjustedReturn(*r.Change1Y, *r.Beta); ok {
				p.RiskAdjustedReturn = &rar
			}
		}

		profiles = append(profiles, p)
	}

	return profiles
}
