package moea

import (
	"testing"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name       string
		objectives [3]float64
		size       int
		want       schema.NormalizedPoint
		wantErr    error
	}{
		{
			name:       "typical point",
			objectives: [3]float64{100, 50, 25},
			size:       250,
			want:       schema.NormalizedPoint{-0.004, -0.002, -0.001},
		},
		{
			name:       "at theoretical maximum",
			objectives: [3]float64{25000, 0, 12500},
			size:       250,
			want:       schema.NormalizedPoint{-1, 0, -0.5},
		},
		{
			name:       "zero size",
			objectives: [3]float64{1, 2, 3},
			size:       0,
			wantErr:    schema.ErrInvalidRecord,
		},
		{
			name:       "negative size",
			objectives: [3]float64{1, 2, 3},
			size:       -250,
			wantErr:    schema.ErrInvalidRecord,
		},
		{
			name:       "negative objective",
			objectives: [3]float64{100, -1, 25},
			size:       250,
			wantErr:    schema.ErrInvalidRecord,
		},
		{
			name:       "objective above maximum",
			objectives: [3]float64{100, 50, 25000.5},
			size:       250,
			wantErr:    schema.ErrInvalidRecord,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Normalize(tc.objectives, tc.size)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			for i := range got {
				assert.InDelta(t, tc.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestNormalizeRecords(t *testing.T) {
	records := []schema.ObjectiveRecord{
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Objectives: [3]float64{100, 50, 25}},
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Objectives: [3]float64{50, 100, 25}},
	}
	points, err := NormalizeRecords(records)
	assert.NoError(t, err)
	assert.Len(t, points, 2)
	assert.InDelta(t, -0.004, points[0][0], 1e-12)
	assert.InDelta(t, -0.004, points[1][1], 1e-12)
}

func TestNormalizeRecordsInvalid(t *testing.T) {
	records := []schema.ObjectiveRecord{
		{Size: 250, Selection: schema.TournamentSelection, Run: 3, Objectives: [3]float64{100, 50, 25}},
		{Size: 250, Selection: schema.TournamentSelection, Run: 3, Objectives: [3]float64{-5, 50, 25}},
	}
	points, err := NormalizeRecords(records)
	assert.ErrorIs(t, err, schema.ErrInvalidRecord)
	assert.ErrorContains(t, err, "run 3")
	assert.Nil(t, points)
}
