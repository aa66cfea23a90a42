package contracts

// ScoreComponents holds the five factor scores for one ticker. Each is
// nominally in [0,100] but not clamped: min/max normalization is relative
// to the scoring cohort, and the stability formula is unbounded below.
type ScoreComponents struct {
	Value     float64 `json:"value"`
	Growth    float64 `json:"growth"`
	Quality   float64 `json:"quality"`
	Momentum  float64 `json:"momentum"`
	Stability float64 `json:"stability"`
}

// CompositeScore is the ranked result for one ticker. It is a pure
// projection of the current batch: recomputed from scratch on every call,
// never persisted, and only meaningful relative to the cohort it was
// scored against.
type CompositeScore struct {
	Ticker     string          `json:"ticker"`
	Sector     string          `json:"sector"`
	Rank       int             `json:"rank"` // 1-based
	TotalScore float64         `json:"total_score"`
	Components ScoreComponents `json:"components"`
}

// IsTopRanked reports whether the ticker is within the top n ranks.
func (c *CompositeScore) IsTopRanked(n int) bool {
	return c.Rank > 0 && c.Rank <= n
}

// MomentumScore is one row of the standalone momentum view.
type MomentumScore struct {
	Ticker        string  `json:"ticker"`
	Sector        string  `json:"sector"`
	Score         float64 `json:"score"`
	Change1M      float64 `json:"change_1m"`
	Change6M      float64 `json:"change_6m"`
	Change1Y      float64 `json:"change_1y"`
	BetaStability float64 `json:"beta_stability"`
}

// RiskProfile carries the per-ticker risk metrics. Sharpe and
// RiskAdjustedReturn are sentinel-absent when the statistics degenerate
// (near-zero variance, missing or zero beta).
type RiskProfile struct {
	Ticker             string   `json:"ticker"`
	Sector             string   `json:"sector"`
	Sharpe             *float64 `json:"sharpe"`
	RiskAdjustedReturn *float64 `json:"risk_adjusted_return"`
}
