package risk

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

func clusterRecord(ticker, sector string, changes [5]float64) contracts.StockRecord {
	return contracts.StockRecord{
		Ticker:    ticker,
		Sector:    sector,
		Change1W:  contracts.Float(changes[0]),
		Change1M:  contracts.Float(changes[1]),
		Change6M:  contracts.Float(changes[2]),
		ChangeYTD: contracts.Float(changes[3]),
		Change1Y:  contracts.Float(changes[4]),
	}
}

func sectorRecords(sector string, n int) []contracts.StockRecord {
	records := make([]contracts.StockRecord, 0, n)
	for i := 0; i < n; i++ {
		base := float64(i)
		records = append(records, clusterRecord(
			fmt.Sprintf("%s%02d", sector[:1], i), sector,
			[5]float64{base + 1, base + 2, base + 3, base + 4, base + 5},
		))
	}
	return records
}

func TestClustersSevenTickerSector(t *testing.T) {
	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(sectorRecords("Technology", 7))

	// 7 tickers slice into one full cluster of 5 and a kept remainder
	// of 2.
	require.Len(t, clusters, 2)
	assert.Len(t, clusters[0].Tickers, 5)
	assert.Len(t, clusters[1].Tickers, 2)
	assert.Equal(t, []string{"T00", "T01", "T02", "T03", "T04"}, clusters[0].Tickers)
	assert.Equal(t, []string{"T05", "T06"}, clusters[1].Tickers)
}

func TestClustersDropSingletonRemainder(t *testing.T) {
	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(sectorRecords("Technology", 6))

	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Tickers, 5)
}

func TestClustersSmallSectorKept(t *testing.T) {
	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(sectorRecords("Energy", 4))

	require.Len(t, clusters, 1)
	assert.Len(t, clusters[0].Tickers, 4)
}

func TestClustersPerfectCorrelation(t *testing.T) {
	// Shifted copies of the same series correlate at exactly 1.0, so
	// the risk score saturates at the 100 cap.
	records := []contracts.StockRecord{
		clusterRecord("A", "Technology", [5]float64{1, 2, 3, 4, 5}),
		clusterRecord("B", "Technology", [5]float64{2, 3, 4, 5, 6}),
		clusterRecord("C", "Technology", [5]float64{3, 4, 5, 6, 7}),
	}

	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(records)

	require.Len(t, clusters, 1)
	assert.InDelta(t, 1.0, clusters[0].AvgCorrelation, 1e-12)
	assert.InDelta(t, 100.0, clusters[0].RiskScore, 1e-9)
}

func TestClustersNegativeCorrelationNotClamped(t *testing.T) {
	records := []contracts.StockRecord{
		clusterRecord("UP", "Energy", [5]float64{1, 2, 3, 4, 5}),
		clusterRecord("DN", "Energy", [5]float64{5, 4, 3, 2, 1}),
	}

	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(records)

	require.Len(t, clusters, 1)
	assert.InDelta(t, -1.0, clusters[0].AvgCorrelation, 1e-12)
	assert.InDelta(t, -100.0, clusters[0].RiskScore, 1e-9)
}

func TestClustersExcludeIncompleteRecords(t *testing.T) {
	incomplete := clusterRecord("BAD", "Technology", [5]float64{1, 2, 3, 4, 5})
	incomplete.ChangeYTD = nil

	records := append(sectorRecords("Technology", 2), incomplete)

	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(records)

	require.Len(t, clusters, 1)
	assert.Equal(t, []string{"T00", "T01"}, clusters[0].Tickers)
}

func TestClustersSectorOrderFirstSeen(t *testing.T) {
	records := append(sectorRecords("Energy", 2), sectorRecords("Technology", 2)...)

	engine := NewEngine(5, logger.Nop())
	clusters := engine.Clusters(records)

	require.Len(t, clusters, 2)
	assert.Equal(t, "Energy", clusters[0].Sector)
	assert.Equal(t, "Technology", clusters[1].Sector)
}

func TestNewEngineRejectsTinyClusterSize(t *testing.T) {
	engine := NewEngine(1, logger.Nop())
	assert.Equal(t, DefaultClusterSize, engine.clusterSize)

	engine = NewEngine(3, logger.Nop())
	assert.Equal(t, 3, engine.clusterSize)
}

func TestSectorRiskRollup(t *testing.T) {
	clusters := []contracts.Cluster{
		{Sector: "Technology", AvgCorrelation: 0.8, RiskScore: 80},
		{Sector: "Technology", AvgCorrelation: 0.4, RiskScore: 40},
		{Sector: "Energy", AvgCorrelation: 0.5, RiskScore: 50},
	}

	engine := NewEngine(5, logger.Nop())
	rollup := engine.SectorRisk(clusters)

	require.Len(t, rollup, 2)
	assert.Equal(t, "Technology", rollup[0].Sector)
	assert.Equal(t, 2, rollup[0].ClusterCount)
	assert.InDelta(t, 0.6, rollup[0].AvgCorrelation, 1e-12)
	assert.InDelta(t, 60.0, rollup[0].RiskScore, 1e-9)

	assert.Equal(t, "Energy", rollup[1].Sector)
	assert.Equal(t, 1, rollup[1].ClusterCount)
}

func TestProfiles(t *testing.T) {
	records := []contracts.StockRecord{
		{
			Ticker:   "FULL",
			Sector:   "Technology",
			Change1M: contracts.Float(2),
			Change6M: contracts.Float(8),
			Change1Y: contracts.Float(24),
			Beta:     contracts.Float(1.2),
		},
		{
			// Flat returns: Sharpe undefined, adjusted return still set.
			Ticker:   "FLAT",
			Sector:   "Technology",
			Change1M: contracts.Float(5),
			Change6M: contracts.Float(5),
			Change1Y: contracts.Float(5),
			Beta:     contracts.Float(1.0),
		},
		{
			Ticker: "BARE",
			Sector: "Energy",
		},
	}

	engine := NewEngine(5, logger.Nop())
	profiles := engine.Profiles(records, DefaultRiskFreeRate)

	require.Len(t, profiles, 3)

	full := profiles[0]
	require.NotNil(t, full.Sharpe)
	require.NotNil(t, full.RiskAdjustedReturn)
	assert.InDelta(t, 20.0, *full.RiskAdjustedReturn, 1e-9)

	flat := profiles[1]
	assert.Nil(t, flat.Sharpe)
	require.NotNil(t, flat.RiskAdjustedReturn)
	assert.InDelta(t, 5.0, *flat.RiskAdjustedReturn, 1e-9)

	bare := profiles[2]
	assert.Nil(t, bare.Sharpe)
	assert.Nil(t, bare.RiskAdjustedReturn)
}
