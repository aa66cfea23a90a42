package scoring

import "github.com/scrynt/backend/internal/contracts"

// Field names a normalizable StockRecord field.
type Field string

const (
	FieldPrice           Field = "price"
	FieldMarketCap       Field = "market_cap"
	FieldChange1W        Field = "change_1w"
	FieldChange1M        Field = "change_1m"
	FieldChange6M        Field = "change_6m"
	FieldChangeYTD       Field = "change_ytd"
	FieldChange1Y        Field = "change_1y"
	FieldChange3Y        Field = "change_3y"
	FieldDividendYield   Field = "dividend_yield"
	FieldDividendGrowth  Field = "dividend_growth"
	FieldPayoutRatio     Field = "payout_ratio"
	FieldPEGRatio        Field = "peg_ratio"
	FieldPEForward       Field = "pe_forward"
	FieldPBRatio         Field = "pb_ratio"
	FieldEPSGrowth3Y     Field = "eps_growth_3y"
	FieldRevenueGrowth3Y Field = "revenue_growth_3y"
	FieldROE             Field = "roe"
	FieldROA             Field = "roa"
	FieldBeta            Field = "beta"
)

// Range is the observed min/max of one field across a cohort.
type Range struct {
	Min float64
	Max float64
}

// CohortStats is the per-field min/max table for one scoring cohort.
// It is computed exactly once per batch and passed explicitly into every
// scorer, so the cohort a score is relative to is always visible in the
// call, never ambient state. Scores are therefore cohort-relative by
// construction: rescoring the same ticker against a different batch is
// expected to produce a different number.
type CohortStats struct {
	ranges map[Field]Range
}

// NewCohortStats scans the batch and records min/max for every field that
// at least one record carries. Absent fields do not contribute; they are
// not treated as zero.
func NewCohortStats(records []contracts.StockRecord) *CohortStats {
	stats := &CohortStats{ranges: make(map[Field]Range)}
	for i := range records {
		for _, f := range allFields {
			v := FieldValue(&records[i], f)
			if v == nil {
				continue
			}
			r, seen := stats.ranges[f]
			if !seen {
				stats.ranges[f] = Range{Min: *v, Max: *v}
				continue
			}
			if *v < r.Min {
				r.Min = *v
			}
			if *v > r.Max {
				r.Max = *v
			}
			stats.ranges[f] = r
		}
	}
	return stats
}

// Range returns the cohort range for a field and whether any record
// carried it.
func (s *CohortStats) Range(f Field) (Range, bool) {
	r, ok := s.ranges[f]
	return r, ok
}

// Normalize maps a raw value onto the cohort's 0..100 scale for the field.
// Fields nobody in the cohort carries degenerate to the midpoint.
func (s *CohortStats) Normalize(f Field, v float64) float64 {
	r, ok := s.ranges[f]
	if !ok {
		return DegenerateScore
	}
	return Normalize(v, r.Min, r.Max)
}

var allFields = []Field{
	FieldPrice, FieldMarketCap,
	FieldChange1W, FieldChange1M, FieldChange6M,
	FieldChangeYTD, FieldChange1Y, FieldChange3Y,
	FieldDividendYield, FieldDividendGrowth, FieldPayoutRatio,
	FieldPEGRatio, FieldPEForward, FieldPBRatio,
	FieldEPSGrowth3Y, FieldRevenueGrowth3Y,
	FieldROE, FieldROA, FieldBeta,
}

// FieldValue returns the pointer behind a named field, nil when the record
// does not carry it.
func FieldValue(r *contracts.StockRecord, f Field) *float64 {
	switch f {
	case FieldPrice:
		return r.Price
	case FieldMarketCap:
		return r.MarketCap
	case FieldChange1W:
		return r.Change1W
	case FieldChange1M:
		return r.Change1M
	case FieldChange6M:
		return r.Change6M
	case FieldChangeYTD:
		return r.ChangeYTD
	case FieldChange1Y:
		return r.Change1Y
	case FieldChange3Y:
		return r.Change3Y
	case FieldDividendYield:
		return r.DividendYield
	case FieldDividendGrowth:
		return r.DividendGrowth
	case FieldPayoutRatio:
		return r.PayoutRatio
	case FieldPEGRatio:
		return r.PEGRatio
	case FieldPEForward:
		return r.PEForward
	case FieldPBRatio:
		return r.PBRatio
	case FieldEPSGrowth3Y:
		return r.EPSGrowth3Y
	case FieldRevenueGrowth3Y:
		return r.RevenueGrowth3Y
	case FieldROE:
		return r.ROE
	case FieldROA:
		return r.ROA
	case FieldBeta:
		return r.Beta
	default:
		return nil
	}
}

// HasFields reports whether the record carries every listed field.
func HasFields(r *contracts.StockRecord, fields ...Field) bool {
	for _, f := range fields {
		if FieldValue(r, f) == nil {
			return false
		}
	}
	return true
}
