// Package sector implements the shared group-by-sector mean reduction
// used by every aggregate view.
package sector

import "github.com/scrynt/backend/internal/contracts"

// Aggregate reduces tagged rows to one row per distinct sector: the
// unweighted arithmetic mean of every numeric field across members, plus
// the member count. Sectors are emitted in first-seen input order. A
// field contributes to a sector's mean only for the members that carry
// it.
func Aggregate(rows []contracts.SectorRow) []contracts.SectorAverage {
	type acc struct {
		count  int
		sums   map[string]float64
		counts map[string]int
	}

	bySector := make(map[string]*acc)
	order := make([]string, 0)

	for _, row := range rows {
		if row.Sector == "" {
			continue
		}
		a, seen := bySector[row.Sector]
		if !seen {
			a = &acc{sums: make(map[string]float64), counts: make(map[string]int)}
			bySector[row.Sector] = a
			order = append(order, row.Sector)
		}
		a.count++
		for field, v := range row.Values {
			a.sums[field] += v
			a.counts[field]++
		}
	}

	out := make([]contracts.SectorAverage, 0, len(order))
	for _, s := range order {
		a := bySector[s]
		averages := make(map[string]float64, len(a.sums))
		for field, sum := range a.sums {
			averages[field] = sum / float64(a.counts[field])
		}
		out = append(out, contracts.SectorAverage{
			Sector:     s,
			StockCount: a.count,
			Averages:   averages,
		})
	}
	return out
}

// FromScores adapts composite scores into aggregator rows, one numeric
// field per score component plus the total.
func FromScores(scores []contracts.CompositeScore) []contracts.SectorRow {
	rows := make([]contracts.SectorRow, 0, len(scores))
	for _, s := range scores {
		rows = append(rows, contracts.SectorRow{
			Sector: s.Sector,
			Values: map[string]float64{
				"total_score": s.TotalScore,
				"value":       s.Components.Value,
				"growth":      s.Components.Growth,
				"quality":     s.Components.Quality,
				"momentum":    s.Components.Momentum,
				"stability":   s.Components.Stability,
			},
		})
	}
	return rows
}

// FromRecords adapts raw records into aggregator rows over a chosen set
// of fields. Absent fields are omitted from the row, so they are excluded
// from that sector's mean rather than dragged to zero. Dividend yield is
// special-cased per the dividend views: a zero yield excludes the field
// the same way a missing one does.
func FromRecords(records []contracts.StockRecord, fields map[string]func(*contracts.StockRecord) *float64) []contracts.SectorRow {
	rows := make([]contracts.SectorRow, 0, len(records))
	for i := range records {
		r := &records[i]
		values := make(map[string]float64)
		for name, get := range fields {
			v := get(r)
			if v == nil {
				continue
			}
			if name == "dividend_yield" && *v == 0 {
				continue
			}
			values[name] = *v
		}
		rows = append(rows, contracts.SectorRow{Sector: r.Sector, Values: values})
	}
	return rows
}
