package screening

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Criteria is the full set of optional screen filters, mirroring the
// upstream screener's query surface. Nil bounds are "not set". A record
// missing a field some set filter compares against fails that filter and
// drops out of the result.
type Criteria struct {
	Ticker  string   `validate:"omitempty,alphanum,max=10"`
	Sectors []string `validate:"dive,min=1"`

	MinMarketCap *float64 `validate:"omitempty,gte=0"`
	MaxMarketCap *float64 `validate:"omitempty,gte=0"`

	MinDividendYield *float64 `validate:"omitempty,gte=0"`
	MaxDividendYield *float64 `validate:"omitempty,gte=0"`

	MinPEG *float64
	MaxPEG *float64

	MinPB *float64
	MaxPB *float64

	MinPE *float64
	MaxPE *float64

	MinEPSGrowth     *float64
	MinRevenueGrowth *float64
	MinROE           *float64
	MinROA           *float64
}

var validate = validator.New()

// Validate checks criteria consistency: tag-level constraints first, then
// that no max bound sits below its min bound.
func (c *Criteria) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid screen criteria: %w", err)
	}

	ranges := []struct {
		name     string
		min, max *float64
	}{
		{"market_cap", c.MinMarketCap, c.MaxMarketCap},
		{"dividend_yield", c.MinDividendYield, c.MaxDividendYield},
		{"peg_ratio", c.MinPEG, c.MaxPEG},
		{"pb_ratio", c.MinPB, c.MaxPB},
		{"pe_forward", c.MinPE, c.MaxPE},
	}
	for _, r := range ranges {
		if r.min != nil && r.max != nil && *r.max < *r.min {
			return fmt.Errorf("invalid screen criteria: %s max %.4f below min %.4f", r.name, *r.max, *r.min)
		}
	}
	return nil
}

// IsEmpty reports whether no filter is set at all.
func (c *Criteria) IsEmpty() bool {
	return c.Ticker == "" && len(c.Sectors) == 0 &&
		c.MinMarketCap == nil && c.MaxMarketCap == nil &&
		c.MinDividendYield == nil && c.MaxDividendYield == nil &&
		c.MinPEG == nil && c.MaxPEG == nil &&
		c.MinPB == nil && c.MaxPB == nil &&
		c.MinPE == nil && c.MaxPE == nil &&
		c.MinEPSGrowth == nil && c.MinRevenueGrowth == nil &&
		c.MinROE == nil && c.MinROA == nil
}
