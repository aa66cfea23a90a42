package snapshot

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/scrynt/backend/internal/contracts"
	"github.com/scrynt/backend/pkg/logger"
)

// Source supplies one full batch of stock records. Implementations must
// return either a complete batch or an error, never a partial one: the
// analytics engine has no notion of degraded input.
type Source interface {
	Load(ctx context.Context) (*contracts.Batch, error)
}

// FileSource reads a snapshot from a local file. Two layouts are
// understood: the upstream screener JSON payload (records keyed by ticker
// under data.data) and the exported CSV with one header row. Ticker order
// in the file is preserved; ranking tie-breaks and correlation cluster
// slicing depend on it.
type FileSource struct {
	path   string
	logger *logger.Logger
}

// NewFileSource creates a file-backed source.
func NewFileSource(path string, log *logger.Logger) *FileSource {
	return &FileSource{path: path, logger: log}
}

// Load reads and decodes the snapshot file. The batch timestamp is the
// file's modification time.
func (f *FileSource) Load(ctx context.Context) (*contracts.Batch, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	info, err := os.Stat(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat snapshot %s: %w", f.path, err)
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", f.path, err)
	}

	var records []contracts.StockRecord
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".csv":
		records, err = decodeCSV(bytes.NewReader(data))
	default:
		records, err = decodeScreenerJSON(data)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", f.path, err)
	}

	f.logger.WithFields(map[string]interface{}{
		"path":    f.path,
		"records": len(records),
	}).Info("Loaded snapshot file")

	return &contracts.Batch{Records: records, FetchedAt: info.ModTime()}, nil
}

// rawStock mirrors the upstream screener field names.
type rawStock struct {
	Price           *float64    `json:"price"`
	MarketCap       *float64    `json:"marketCap"`
	PEGRatio        *float64    `json:"pegRatio"`
	ROE             *float64    `json:"roe"`
	ROA             *float64    `json:"roa"`
	Sector          string      `json:"sector"`
	PEForward       *float64    `json:"peForward"`
	PBRatio         *float64    `json:"pbRatio"`
	EPSGrowth3Y     *float64    `json:"epsGrowth3Y"`
	RevenueGrowth3Y *float64    `json:"revenueGrowth3Y"`
	Beta            *float64    `json:"beta"`
	DividendYield   *float64    `json:"dividendYield"`
	PayoutRatio     *float64    `json:"payoutRatio"`
	DividendGrowth  *float64    `json:"dividendGrowth"`
	Ch1W            *float64    `json:"ch1w"`
	Ch1M            *float64    `json:"ch1m"`
	Ch6M            *float64    `json:"ch6m"`
	ChYTD           *float64    `json:"chYTD"`
	Ch1Y            *float64    `json:"ch1y"`
	Ch3Y            *float64    `json:"ch3y"`
}

func (s *rawStock) toRecord(ticker string) contracts.StockRecord {
	return contracts.StockRecord{
		Ticker:          ticker,
		Sector:          s.Sector,
		Price:           s.Price,
		MarketCap:       s.MarketCap,
		Change1W:        s.Ch1W,
		Change1M:        s.Ch1M,
		Change6M:        s.Ch6M,
		ChangeYTD:       s.ChYTD,
		Change1Y:        s.Ch1Y,
		Change3Y:        s.Ch3Y,
		DividendYield:   s.DividendYield,
		DividendGrowth:  s.DividendGrowth,
		PayoutRatio:     s.PayoutRatio,
		PEGRatio:        s.PEGRatio,
		PEForward:       s.PEForward,
		PBRatio:         s.PBRatio,
		EPSGrowth3Y:     s.EPSGrowth3Y,
		RevenueGrowth3Y: s.RevenueGrowth3Y,
		ROE:             s.ROE,
		ROA:             s.ROA,
		Beta:            s.Beta,
	}
}

// decodeScreenerJSON decodes the upstream payload. The record map is
// decoded with a token stream instead of a Go map so the ticker order in
// the file survives.
func decodeScreenerJSON(data []byte) ([]contracts.StockRecord, error) {
	var envelope struct {
		Data struct {
			Data json.RawMessage `json:"data"`
		} `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("invalid payload envelope: %w", err)
	}
	if len(envelope.Data.Data) == 0 {
		return nil, fmt.Errorf("payload has no data.data object")
	}

	dec := json.NewDecoder(bytes.NewReader(envelope.Data.Data))

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("data.data is not an object")
	}

	records := make([]contracts.StockRecord, 0)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		ticker, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected token %v in data.data", keyTok)
		}

		var raw rawStock
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("record %s: %w", ticker, err)
		}
		records = append(records, raw.toRecord(ticker))
	}

	return records, nil
}

// decodeCSV decodes the exported CSV layout. Columns are located by
// header name; extra columns are ignored and empty cells become nil
// fields.
func decodeCSV(r io.Reader) ([]contracts.StockRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.TrimSpace(name)] = i
	}
	if _, ok := col["ticker"]; !ok {
		return nil, fmt.Errorf("CSV has no ticker column")
	}

	cell := func(row []string, name string) *float64 {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return nil
		}
		s := strings.TrimSpace(row[idx])
		if s == "" {
			return nil
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		return &v
	}
	text := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	records := make([]contracts.StockRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row: %w", err)
		}
		ticker := text(row, "ticker")
		if ticker == "" {
			continue
		}
		records = append(records, contracts.StockRecord{
			Ticker:          ticker,
			Sector:          text(row, "sector"),
			Price:           cell(row, "price"),
			MarketCap:       cell(row, "market_cap"),
			Change1W:        cell(row, "change_1w"),
			Change1M:        cell(row, "change_1m"),
			Change6M:        cell(row, "change_6m"),
			ChangeYTD:       cell(row, "change_ytd"),
			Change1Y:        cell(row, "change_1y"),
			Change3Y:        cell(row, "change_3y"),
			DividendYield:   cell(row, "dividend_yield"),
			DividendGrowth:  cell(row, "dividend_growth"),
			PayoutRatio:     cell(row, "payout_ratio"),
			PEGRatio:        cell(row, "peg_ratio"),
			PEForward:       cell(row, "pe_forward"),
			PBRatio:         cell(row, "pb_ratio"),
			EPSGrowth3Y:     cell(row, "eps_growth_3y"),
			RevenueGrowth3Y: cell(row, "revenue_growth_3y"),
			ROE:             cell(row, "roe"),
			ROA:             cell(row, "roa"),
			Beta:            cell(row, "beta"),
		})
	}

	return records, nil
}

// staticSource wraps a fixed batch, used by tests and the scheduler.
type staticSource struct {
	batch *contracts.Batch
	err   error
}

func (s *staticSource) Load(ctx context.Context) (*contracts.Batch, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.batch, nil
}

// NewStaticSource returns a Source that always yields the given records
// stamped with the current time.
func NewStaticSource(records []contracts.StockRecord) Source {
	return &staticSource{batch: &contracts.Batch{Records: records, FetchedAt: time.Now()}}
}
