package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

func momentumRecord(ticker string, ch1m, ch6m, ch1y, beta float64) contracts.StockRecord {
	return contracts.StockRecord{
		Ticker:   ticker,
		Sector:   "Technology",
		Change1M: contracts.Float(ch1m),
		Change6M: contracts.Float(ch6m),
		Change1Y: contracts.Float(ch1y),
		Beta:     contracts.Float(beta),
	}
}

func TestMomentumViewBlend(t *testing.T) {
	view := NewMomentumView(logger.Nop())
	rows := view.Score([]contracts.StockRecord{
		momentumRecord("A", 10, 20, 30, 1.0),
	})

	require.Len(t, rows, 1)
	// 0.35*10 + 0.35*20 + 0.20*30 + 0.10*100
	assert.InDelta(t, 3.5+7.0+6.0+10.0, rows[0].Score, 1e-9)
	assert.InDelta(t, 100.0, rows[0].BetaStability, 1e-9)
}

func TestMomentumViewOrdering(t *testing.T) {
	view := NewMomentumView(logger.Nop())
	rows := view.Score([]contracts.StockRecord{
		momentumRecord("SLOW", 1, 1, 1, 1.0),
		momentumRecord("FAST", 30, 40, 50, 1.0),
		momentumRecord("TIE1", 5, 5, 5, 1.0),
		momentumRecord("TIE2", 5, 5, 5, 1.0),
	})

	require.Len(t, rows, 4)
	assert.Equal(t, "FAST", rows[0].Ticker)
	// Ties keep input order.
	assert.Equal(t, "TIE1", rows[1].Ticker)
	assert.Equal(t, "TIE2", rows[2].Ticker)
	assert.Equal(t, "SLOW", rows[3].Ticker)
}

func TestMomentumViewExcludesIncomplete(t *testing.T) {
	view := NewMomentumView(logger.Nop())
	incomplete := momentumRecord("X", 10, 20, 30, 1.0)
	incomplete.Beta = nil

	rows := view.Score([]contracts.StockRecord{incomplete})
	assert.Empty(t, rows)
}
