package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrynt/backend/pkg/logger"
)

const screenerPayload = `{
  "data": {
    "data": {
      "ZZZ": {"sector": "Energy", "price": 50.5, "ch1w": 1.5, "dividendYield": 3.2},
      "AAA": {"sector": "Technology", "price": 180, "peForward": 28.4, "beta": 1.2},
      "MMM": {"sector": "Industrials", "price": 101.25, "roe": 32.1}
    }
  }
}`

func TestDecodeScreenerJSONPreservesOrder(t *testing.T) {
	records, err := decodeScreenerJSON([]byte(screenerPayload))
	require.NoError(t, err)
	require.Len(t, records, 3)

	// File order, not lexical order.
	assert.Equal(t, "ZZZ", records[0].Ticker)
	assert.Equal(t, "AAA", records[1].Ticker)
	assert.Equal(t, "MMM", records[2].Ticker)
}

func TestDecodeScreenerJSONFields(t *testing.T) {
	records, err := decodeScreenerJSON([]byte(screenerPayload))
	require.NoError(t, err)

	zzz := records[0]
	assert.Equal(t, "Energy", zzz.Sector)
	require.NotNil(t, zzz.Price)
	assert.Equal(t, 50.5, *zzz.Price)
	require.NotNil(t, zzz.Change1W)
	assert.Equal(t, 1.5, *zzz.Change1W)
	require.NotNil(t, zzz.DividendYield)
	assert.Equal(t, 3.2, *zzz.DividendYield)

	// Fields absent from the payload stay nil.
	assert.Nil(t, zzz.PEForward)
	assert.Nil(t, zzz.Beta)

	aaa := records[1]
	require.NotNil(t, aaa.PEForward)
	assert.Equal(t, 28.4, *aaa.PEForward)
	require.NotNil(t, aaa.Beta)
	assert.Equal(t, 1.2, *aaa.Beta)
}

func TestDecodeScreenerJSONBadPayload(t *testing.T) {
	_, err := decodeScreenerJSON([]byte(`{"data": {}}`))
	assert.Error(t, err)

	_, err = decodeScreenerJSON([]byte(`not json`))
	assert.Error(t, err)

	_, err = decodeScreenerJSON([]byte(`{"data": {"data": [1, 2]}}`))
	assert.Error(t, err)
}

func TestDecodeCSV(t *testing.T) {
	csvData := `ticker,sector,price,pe_forward,dividend_yield,beta
AAPL,Technology,180.5,28.4,0.5,1.2
XOM,Energy,110,,3.4,
,Ghost,1,2,3,4
T,Communication Services,17.25,7.1,6.5,0.7
`
	records, err := decodeCSV(strings.NewReader(csvData))
	require.NoError(t, err)
	// The ticker-less row is skipped.
	require.Len(t, records, 3)

	assert.Equal(t, "AAPL", records[0].Ticker)
	assert.Equal(t, "Technology", records[0].Sector)
	require.NotNil(t, records[0].Price)
	assert.Equal(t, 180.5, *records[0].Price)

	// Empty cells decode to nil, never zero.
	xom := records[1]
	assert.Nil(t, xom.PEForward)
	assert.Nil(t, xom.Beta)
	require.NotNil(t, xom.DividendYield)
	assert.Equal(t, 3.4, *xom.DividendYield)
}

func TestDecodeCSVMissingTickerColumn(t *testing.T) {
	_, err := decodeCSV(strings.NewReader("sector,price\nEnergy,10\n"))
	assert.Error(t, err)
}

func TestFileSourceLoadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snapshot.json")
	require.NoError(t, os.WriteFile(path, []byte(screenerPayload), 0o644))

	source := NewFileSource(path, logger.Nop())
	batch, err := source.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, batch.Count())
	assert.False(t, batch.FetchedAt.IsZero())
}

func TestFileSourceLoadMissingFile(t *testing.T) {
	source := NewFileSource(filepath.Join(t.TempDir(), "nope.json"), logger.Nop())
	_, err := source.Load(context.Background())
	assert.Error(t, err)
}

func TestFileSourceCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewFileSource("anything.json", logger.Nop())
	_, err := source.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
