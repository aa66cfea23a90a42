package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPearson(t *testing.T) {
	tests := []struct {
		name string
		x, y []float64
		want float64
	}{
		{"self correlation", []float64{1, 2, 3, 4, 5}, []float64{1, 2, 3, 4, 5}, 1},
		{"shifted series", []float64{1, 2, 3, 4, 5}, []float64{11, 12, 13, 14, 15}, 1},
		{"perfect inverse", []float64{1, 2, 3, 4, 5}, []float64{5, 4, 3, 2, 1}, -1},
		{"constant series", []float64{1, 2, 3, 4, 5}, []float64{7, 7, 7, 7, 7}, 0},
		{"both constant", []float64{3, 3, 3}, []float64{7, 7, 7}, 0},
		{"too short", []float64{1}, []float64{2}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Pearson(tt.x, tt.y), 1e-12)
		})
	}
}

func TestPearsonTruncatesToShorter(t *testing.T) {
	// Trailing elements of the longer series must not contribute.
	full := Pearson([]float64{1, 2, 3}, []float64{2, 4, 6})
	truncated := Pearson([]float64{1, 2, 3, 99}, []float64{2, 4, 6})
	assert.Equal(t, full, truncated)
}

func TestPearsonBounded(t *testing.T) {
	x := []float64{1.2, -0.4, 3.3, 0.0, 2.1}
	y := []float64{0.5, 1.5, -2.0, 0.3, 4.4}
	r := Pearson(x, y)
	assert.GreaterOrEqual(t, r, -1.0)
	assert.LessOrEqual(t, r, 1.0)
}
