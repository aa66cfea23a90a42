package scoring

import "github.com/scrynt/backend/internal/contracts"

// ValueStrategy scores how cheap a stock looks relative to its cohort.
// Two divergent formulas shipped in the original views and neither was
// ever declared canonical, so both live here behind one interface and the
// caller picks. They differ only in the treatment of PEG.
type ValueStrategy interface {
	// Name identifies the strategy in logs and output.
	Name() string

	// Score returns the value score for one record against the cohort.
	// ok is false when the record is missing a required field; such
	// records are excluded from value output, never scored as zero.
	Score(r *contracts.StockRecord, stats *CohortStats) (score float64, ok bool)
}

var valueFields = []Field{FieldPEForward, FieldPBRatio, FieldPEGRatio}

// CompositeValueStrategy is the formula used inside the composite score:
// the mean of three inverted-normalized ratios (forward P/E, P/B, PEG),
// so a lower raw ratio always means a higher score.
type CompositeValueStrategy struct{}

func (CompositeValueStrategy) Name() string { return "composite" }

func (CompositeValueStrategy) Score(r *contracts.StockRecord, stats *CohortStats) (float64, bool) {
	if !HasFields(r, valueFields...) {
		return 0, false
	}
	pe := Invert(stats.Normalize(FieldPEForward, *r.PEForward))
	pb := Invert(stats.Normalize(FieldPBRatio, *r.PBRatio))
	peg := Invert(stats.Normalize(FieldPEGRatio, *r.PEGRatio))
	return (pe + pb + peg) / 3, true
}

// StandaloneValueStrategy is the formula from the value/growth view:
// P/E and P/B are inverted but PEG is normalized directly. Kept verbatim
// for parity with the original view even though the un-inverted PEG looks
// like an upstream oversight.
type StandaloneValueStrategy struct{}

func (StandaloneValueStrategy) Name() string { return "standalone" }

func (StandaloneValueStrategy) Score(r *contracts.StockRecord, stats *CohortStats) (float64, bool) {
	if !HasFields(r, valueFields...) {
		return 0, false
	}
	pe := Invert(stats.Normalize(FieldPEForward, *r.PEForward))
	pb := Invert(stats.Normalize(FieldPBRatio, *r.PBRatio))
	peg := stats.Normalize(FieldPEGRatio, *r.PEGRatio)
	return (pe + pb + peg) / 3, true
}
