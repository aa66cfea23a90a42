package screening

import (
	"sort"
	"strings"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/internal/scoring"
	"github.com/scrynt/backend/pkg/logger"
)

// Screener applies screen criteria and the fixed shortcut views
// (top gainers, dividend leaders, undervalued growth) to a batch.
// It never mutates the input batch.
type Screener struct {
	logger *logger.Logger
}

// NewScreener creates a screener.
func NewScreener(log *logger.Logger) *Screener {
	return &Screener{logger: log}
}

// Screen applies every set filter, then optionally sorts by a field name.
// sortBy must be one of the scoring field names ("pe_forward",
// "dividend_yield", ...); records missing the sort field sort last.
// Sorting is stable: ties keep input order.
func (s *Screener) Screen(records []contracts.StockRecord, criteria Criteria, sortBy string, desc bool) []contracts.StockRecord {
	out := make([]contracts.StockRecord, 0, len(records))
	for i := range records {
		if s.matches(&records[i], &criteria) {
			out = append(out, records[i])
		}
	}

	if sortBy != "" {
		field := scoring.Field(sortBy)
		sort.SliceStable(out, func(i, j int) bool {
			a := scoring.FieldValue(&out[i], field)
			b := scoring.FieldValue(&out[j], field)
			switch {
			case a == nil && b == nil:
				return false
			case a == nil:
				return false
			case b == nil:
				return true
			case desc:
				return *a > *b
			default:
				return *a < *b
			}
		})
	}

	s.logger.WithFields(map[string]interface{}{
		"input":   len(records),
		"passed":  len(out),
		"sort_by": sortBy,
	}).Debug("Screening completed")

	return out
}

// matches checks every set filter; a missing compared field fails.
func (s *Screener) matches(r *contracts.StockRecord, c *Criteria) bool {
	if c.Ticker != "" && !strings.Contains(strings.ToUpper(r.Ticker), strings.ToUpper(c.Ticker)) {
		return false
	}
	if len(c.Sectors) > 0 {
		found := false
		for _, sec := range c.Sectors {
			if r.Sector == sec {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	bounds := []struct {
		v        *float64
		min, max *float64
	}{
		{r.MarketCap, c.MinMarketCap, c.MaxMarketCap},
		{r.DividendYield, c.MinDividendYield, c.MaxDividendYield},
		{r.PEGRatio, c.MinPEG, c.MaxPEG},
		{r.PBRatio, c.MinPB, c.MaxPB},
		{r.PEForward, c.MinPE, c.MaxPE},
		{r.EPSGrowth3Y, c.MinEPSGrowth, nil},
		{r.RevenueGrowth3Y, c.MinRevenueGrowth, nil},
		{r.ROE, c.MinROE, nil},
		{r.ROA, c.MinROA, nil},
	}
	for _, b := range bounds {
		if b.min == nil && b.max == nil {
			continue
		}
		if b.v == nil {
			return false
		}
		if b.min != nil && *b.v < *b.min {
			return false
		}
		if b.max != nil && *b.v > *b.max {
			return false
		}
	}
	return true
}

// periodFields maps period labels to change fields. Unknown labels fall
// back to 1w, matching the upstream behavior.
var periodFields = map[string]scoring.Field{
	"1w":  scoring.FieldChange1W,
	"1m":  scoring.FieldChange1M,
	"6m":  scoring.FieldChange6M,
	"ytd": scoring.FieldChangeYTD,
	"1y":  scoring.FieldChange1Y,
	"3y":  scoring.FieldChange3Y,
}

// TopGainers returns the limit best performers for the period: records
// with a positive known price, a present and strictly positive change,
// sorted descending by that change.
func (s *Screener) TopGainers(records []contracts.StockRecord, period string, limit int) []contracts.StockRecord {
	field, ok := periodFields[period]
	if !ok {
		field = scoring.FieldChange1W
	}

	out := make([]contracts.StockRecord, 0)
	for i := range records {
		r := &records[i]
		if r.Price == nil || *r.Price <= 0 {
			continue
		}
		ch := scoring.FieldValue(r, field)
		if ch == nil || *ch <= 0 {
			continue
		}
		out = append(out, records[i])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *scoring.FieldValue(&out[i], field) > *scoring.FieldValue(&out[j], field)
	})

	return head(out, limit)
}

// DividendLeaders returns the limit highest dividend yields. Both a nil
// yield and a zero yield exclude the record: only yield > 0 qualifies.
func (s *Screener) DividendLeaders(records []contracts.StockRecord, limit int) []contracts.StockRecord {
	out := make([]contracts.StockRecord, 0)
	for i := range records {
		if y := records[i].DividendYield; y != nil && *y > 0 {
			out = append(out, records[i])
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return *out[i].DividendYield > *out[j].DividendYield
	})

	return head(out, limit)
}

// UndervaluedGrowth ranks by combined = (epsGrowth3Y + revenueGrowth3Y) *
// 1/(peForward + pbRatio): high growth against low multiples. Requires
// all four inputs present and a non-zero multiple sum.
func (s *Screener) UndervaluedGrowth(records []contracts.StockRecord, limit int) []contracts.StockRecord {
	type scored struct {
		record   contracts.StockRecord
		combined float64
	}

	candidates := make([]scored, 0)
	for i := range records {
		r := &records[i]
		if r.EPSGrowth3Y == nil || r.RevenueGrowth3Y == nil || r.PEForward == nil || r.PBRatio == nil {
			continue
		}
		multiples := *r.PEForward + *r.PBRatio
		if multiples == 0 {
			continue
		}
		growth := *r.EPSGrowth3Y + *r.RevenueGrowth3Y
		candidates = append(candidates, scored{
			record:   records[i],
			combined: growth / multiples,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].combined > candidates[j].combined
	})

	out := make([]contracts.StockRecord, 0, limit)
	for i := 0; i < len(candidates) && i < limit; i++ {
		out = append(out, candidates[i].record)
	}
	return out
}

// AvailableSectors returns the sorted distinct non-empty sectors.
func (s *Screener) AvailableSectors(records []contracts.StockRecord) []string {
	seen := make(map[string]bool)
	sectors := make([]string, 0)
	for i := range records {
		sec := records[i].Sector
		if sec == "" || seen[sec] {
			continue
		}
		seen[sec] = true
		sectors = append(sectors, sec)
	}
	sort.Strings(sectors)
	return sectors
}

func head(records []contracts.StockRecord, limit int) []contracts.StockRecord {
	if limit > 0 && len(records) > limit {
		return records[:limit]
	}
	return records
}
