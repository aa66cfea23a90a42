package contracts

import "time"

// StockRecord is one immutable per-ticker snapshot row as delivered by the
// upstream screener feed. Every numeric field is a pointer: nil means
// "insufficient data", which is never the same thing as zero. Scorers that
// coerce absent fields to zero would bias rankings, so they must exclude
// the record instead (see scoring package eligibility rules).
type StockRecord struct {
	Ticker string `json:"ticker"`
	Sector string `json:"sector"`

	Price     *float64 `json:"price"`
	MarketCap *float64 `json:"market_cap"`

	// Period price changes, percent
	Change1W  *float64 `json:"change_1w"`
	Change1M  *float64 `json:"change_1m"`
	Change6M  *float64 `json:"change_6m"`
	ChangeYTD *float64 `json:"change_ytd"`
	Change1Y  *float64 `json:"change_1y"`
	Change3Y  *float64 `json:"change_3y"`

	// Dividend
	DividendYield  *float64 `json:"dividend_yield"`
	DividendGrowth *float64 `json:"dividend_growth"`
	PayoutRatio    *float64 `json:"payout_ratio"`

	// Valuation
	PEGRatio  *float64 `json:"peg_ratio"`
	PEForward *float64 `json:"pe_forward"`
	PBRatio   *float64 `json:"pb_ratio"`

	// Growth
	EPSGrowth3Y     *float64 `json:"eps_growth_3y"`
	RevenueGrowth3Y *float64 `json:"revenue_growth_3y"`

	// Profitability
	ROE *float64 `json:"roe"`
	ROA *float64 `json:"roa"`

	// Market sensitivity (input, not derived)
	Beta *float64 `json:"beta"`
}

// Batch is an ordered set of records plus the moment it was taken.
// Order matters: ranking ties and correlation cluster slicing both follow
// input order.
type Batch struct {
	Records   []StockRecord `json:"records"`
	FetchedAt time.Time     `json:"fetched_at"`
}

// Count returns the number of records in the batch.
func (b *Batch) Count() int {
	return len(b.Records)
}

// Sectors returns the distinct non-empty sectors in first-seen order.
func (b *Batch) Sectors() []string {
	seen := make(map[string]bool)
	sectors := make([]string, 0)
	for _, r := range b.Records {
		if r.Sector == "" || seen[r.Sector] {
			continue
		}
		seen[r.Sector] = true
		sectors = append(sectors, r.Sector)
	}
	return sectors
}

// Float is a convenience constructor for optional numeric fields,
// mostly used by tests and the snapshot decoders.
func Float(v float64) *float64 {
	return &v
}
