package scoring

import (
	"sort"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

// MomentumView computes the standalone momentum ranking. Unlike the
// composite momentum factor (normalized 1-year change), this view blends
// raw period changes with a beta-stability term:
//
//	0.35*change1M + 0.35*change6M + 0.20*change1Y + 0.10*betaStability
//
// where betaStability = (1-|beta-1|)*100.
type MomentumView struct {
	logger *logger.Logger
}

// NewMomentumView creates the standalone momentum scorer.
func NewMomentumView(log *logger.Logger) *MomentumView {
	return &MomentumView{logger: log}
}

var momentumFields = []Field{FieldChange1M, FieldChange6M, FieldChange1Y, FieldBeta}

// Score returns momentum rows for every eligible record, sorted
// descending by score, stable on ties. Records missing any input field
// are excluded.
func (v *MomentumView) Score(records []contracts.StockRecord) []contracts.MomentumScore {
	rows := make([]contracts.MomentumScore, 0, len(records))

	for i := range records {
		r := &records[i]
		if !HasFields(r, momentumFields...) {
			continue
		}
		stability := BetaStability(*r.Beta)
		score := 0.35*(*r.Change1M) + 0.35*(*r.Change6M) + 0.20*(*r.Change1Y) + 0.10*stability

		rows = append(rows, contracts.MomentumScore{
			Ticker:        r.Ticker,
			Sector:        r.Sector,
			Score:         score,
			Change1M:      *r.Change1M,
			Change6M:      *r.Change6M,
			Change1Y:      *r.Change1Y,
			BetaStability: stability,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Score > rows[j].Score
	})

	v.logger.WithFields(map[string]interface{}{
		"input":  len(records),
		"scored": len(rows),
	}).Debug("Momentum view completed")

	return rows
}
