package contracts

// SectorRow is one input row to the sector aggregator: a sector tag plus
// the numeric fields to be averaged.
type SectorRow struct {
	Sector string
	Values map[string]float64
}

// SectorAverage is one aggregate row per distinct sector: the unweighted
// arithmetic mean of each field across members plus the member count.
type SectorAverage struct {
	Sector     string             `json:"sector"`
	StockCount int                `json:"stock_count"`
	Averages   map[string]float64 `json:"averages"`
}

// Average returns the mean for a field and whether it was present.
func (s *SectorAverage) Average(field string) (float64, bool) {
	v, ok := s.Averages[field]
	return v, ok
}
