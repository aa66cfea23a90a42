package scoring

import (
	"fmt"
	"sort"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

// Weights defines the factor weights for the composite score.
type Weights struct {
	Value     float64
	Growth    float64
	Quality   float64
	Momentum  float64
	Stability float64
}

// DefaultWeights returns the shipped weight configuration.
func DefaultWeights() Weights {
	return Weights{
		Value:     0.25,
		Growth:    0.25,
		Quality:   0.20,
		Momentum:  0.15,
		Stability: 0.15,
	}
}

// Validate checks that the weights sum to 1.0, within float tolerance.
func (w Weights) Validate() error {
	sum := w.Value + w.Growth + w.Quality + w.Momentum + w.Stability
	if sum < 0.99 || sum > 1.01 {
		return fmt.Errorf("weights must sum to 1.0, got %.4f", sum)
	}
	return nil
}

// CompositeScorer turns a batch of records into a descending ranking of
// weighted factor scores. The normalization cohort is always the batch
// being scored, so the output is a batch-relative ranking, not a
// ticker-intrinsic scale.
type CompositeScorer struct {
	weights Weights
	value   ValueStrategy
	logger  *logger.Logger
}

// NewCompositeScorer creates a scorer with the given weights and value
// strategy.
func NewCompositeScorer(weights Weights, value ValueStrategy, log *logger.Logger) *CompositeScorer {
	return &CompositeScorer{
		weights: weights,
		value:   value,
		logger:  log,
	}
}

// compositeFields is the eligibility set for the composite score: every
// field some factor reads, minus revenue growth, which has its own
// fallback inside GrowthScore.
var compositeFields = []Field{
	FieldPEForward, FieldPBRatio, FieldPEGRatio,
	FieldEPSGrowth3Y, FieldROE, FieldROA,
	FieldChange1Y, FieldBeta,
}

// Eligible reports whether a record carries every field the composite
// score reads.
func Eligible(r *contracts.StockRecord) bool {
	return HasFields(r, compositeFields...)
}

// Score computes all five factors for every eligible record against the
// supplied cohort stats and returns the results sorted descending by
// total score. Ties keep input order; ranks are 1-based. Ineligible
// records are excluded, never defaulted.
func (s *CompositeScorer) Score(records []contracts.StockRecord, stats *CohortStats) []contracts.CompositeScore {
	scored := make([]contracts.CompositeScore, 0, len(records))
	excluded := 0

	for i := range records {
		r := &records[i]
		if !Eligible(r) {
			excluded++
			continue
		}

		value, _ := s.value.Score(r, stats)
		growth, _ := GrowthScore(r, stats)
		quality, _ := QualityScore(r, stats)
		momentum, _ := MomentumScore(r, stats)
		stability, _ := StabilityScore(r)

		components := contracts.ScoreComponents{
			Value:     value,
			Growth:    growth,
			Quality:   quality,
			Momentum:  momentum,
			Stability: stability,
		}

		scored = append(scored, contracts.CompositeScore{
			Ticker:     r.Ticker,
			Sector:     r.Sector,
			TotalScore: s.total(components),
			Components: components,
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].TotalScore > scored[j].TotalScore
	})
	for i := range scored {
		scored[i].Rank = i + 1
	}

	s.logger.WithFields(map[string]interface{}{
		"input":    len(records),
		"scored":   len(scored),
		"excluded": excluded,
		"strategy": s.value.Name(),
	}).Debug("Composite scoring completed")

	return scored
}

// ScoreBatch computes cohort stats from the batch itself and scores it.
// This is the usual entry point: the cohort is whatever is currently in
// scope, recomputed on every call.
func (s *CompositeScorer) ScoreBatch(records []contracts.StockRecord) []contracts.CompositeScore {
	return s.Score(records, NewCohortStats(records))
}

// total applies the weights to one component set.
func (s *CompositeScorer) total(c contracts.ScoreComponents) float64 {
	return c.Value*s.weights.Value +
		c.Growth*s.weights.Growth +
		c.Quality*s.weights.Quality +
		c.Momentum*s.weights.Momentum +
		c.Stability*s.weights.Stability
}
