package scoring

import (
	"math"

	"github.com/scrynt/backend/internal/contracts"
)

// GrowthScore averages normalized 3-year EPS growth and normalized 3-year
// revenue growth. A missing revenue growth falls back to a raw value of 0
// before normalization; this is the single deliberate exception to the
// missing-field exclusion rule and is specific to this scorer.
func GrowthScore(r *contracts.StockRecord, stats *CohortStats) (float64, bool) {
	if r.EPSGrowth3Y == nil {
		return 0, false
	}
	eps := stats.Normalize(FieldEPSGrowth3Y, *r.EPSGrowth3Y)

	revRaw := 0.0
	if r.RevenueGrowth3Y != nil {
		revRaw = *r.RevenueGrowth3Y
	}
	rev := stats.Normalize(FieldRevenueGrowth3Y, revRaw)

	return (eps + rev) / 2, true
}

// QualityScore averages normalized ROE and normalized ROA.
func QualityScore(r *contracts.StockRecord, stats *CohortStats) (float64, bool) {
	if !HasFields(r, FieldROE, FieldROA) {
		return 0, false
	}
	roe := stats.Normalize(FieldROE, *r.ROE)
	roa := stats.Normalize(FieldROA, *r.ROA)
	return (roe + roa) / 2, true
}

// MomentumScore is the composite-score momentum variant: normalized 1-year
// change, nothing else. The standalone momentum view uses a different
// weighted formula (see momentum.go).
func MomentumScore(r *contracts.StockRecord, stats *CohortStats) (float64, bool) {
	if r.Change1Y == nil {
		return 0, false
	}
	return stats.Normalize(FieldChange1Y, *r.Change1Y), true
}

// StabilityScore is 100 - |beta-1|*50. It is a direct formula, not cohort
// normalized, and is deliberately not clamped: a beta far from 1 pushes
// the score below zero and that penalty must survive into the composite.
func StabilityScore(r *contracts.StockRecord) (float64, bool) {
	if r.Beta == nil {
		return 0, false
	}
	return 100 - math.Abs(*r.Beta-1)*50, true
}

// BetaStability maps beta onto (1-|beta-1|)*100, the stability term used
// by the standalone momentum view.
func BetaStability(beta float64) float64 {
	return (1 - math.Abs(beta-1)) * 100
}
