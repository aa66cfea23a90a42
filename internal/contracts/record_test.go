package contracts

import (
	"encoding/json"
	"testing"
	"time"
)

func TestBatch_Sectors(t *testing.T) {
	batch := &Batch{
		Records: []StockRecord{
			{Ticker: "AAPL", Sector: "Technology"},
			{Ticker: "MSFT", Sector: "Technology"},
			{Ticker: "XOM", Sector: "Energy"},
			{Ticker: "ZZZZ", Sector: ""},
			{Ticker: "JPM", Sector: "Financials"},
		},
		FetchedAt: time.Now(),
	}

	sectors := batch.Sectors()
	want := []string{"Technology", "Energy", "Financials"}

	if len(sectors) != len(want) {
		t.Fatalf("Sectors() returned %d sectors, want %d", len(sectors), len(want))
	}
	for i, s := range want {
		if sectors[i] != s {
			t.Errorf("Sectors()[%d] = %s, want %s (first-seen order)", i, sectors[i], s)
		}
	}
}

func TestStockRecord_JSON(t *testing.T) {
	original := StockRecord{
		Ticker:    "AAPL",
		Sector:    "Technology",
		Price:     Float(189.95),
		Change1Y:  Float(12.4),
		PEForward: Float(27.1),
		Beta:      Float(1.29),
		// DividendYield deliberately absent
	}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var decoded StockRecord
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	if decoded.Ticker != "AAPL" {
		t.Errorf("Ticker = %s, want AAPL", decoded.Ticker)
	}
	if decoded.Price == nil || *decoded.Price != 189.95 {
		t.Errorf("Price = %v, want 189.95", decoded.Price)
	}
	if decoded.DividendYield != nil {
		t.Errorf("DividendYield = %v, want nil (absent stays absent)", *decoded.DividendYield)
	}
}

func TestCompositeScore_IsTopRanked(t *testing.T) {
	tests := []struct {
		name string
		rank int
		n    int
		want bool
	}{
		{name: "first place in top 10", rank: 1, n: 10, want: true},
		{name: "exactly at cutoff", rank: 10, n: 10, want: true},
		{name: "below cutoff", rank: 11, n: 10, want: false},
		{name: "unranked", rank: 0, n: 10, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := &CompositeScore{Rank: tt.rank}
			if got := score.IsTopRanked(tt.n); got != tt.want {
				t.Errorf("IsTopRanked(%d) = %v, want %v", tt.n, got, tt.want)
			}
		})
	}
}
