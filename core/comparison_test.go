package core

import (
	"testing"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareWithReference(t *testing.T) {
	stats := []schema.GroupStats{
		{Key: schema.GroupKey{Size: 250, Selection: schema.RouletteSelection}, Runs: 30, Min: 0.02, Max: 0.1, Mean: 0.08},
		{Key: schema.GroupKey{Size: 500, Selection: schema.RouletteSelection}, Runs: 30, Min: 0.01, Max: 0.04, Mean: 0.02},
	}
	rows, err := CompareWithReference(stats, schema.DefaultReferenceTable)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.InDelta(t, 0.076, rows[0].Reference.Mean, 1e-12)
	assert.InDelta(t, 0.004, rows[0].MeanDelta(), 1e-12)
	assert.InDelta(t, -0.008, rows[1].MeanDelta(), 1e-12)
}

func TestCompareWithReferenceMissingSize(t *testing.T) {
	stats := []schema.GroupStats{
		{Key: schema.GroupKey{Size: 300, Selection: schema.RouletteSelection}, Runs: 5, Mean: 0.05},
	}
	_, err := CompareWithReference(stats, schema.DefaultReferenceTable)
	assert.ErrorIs(t, err, schema.ErrMissingReference)
	assert.ErrorContains(t, err, "size 300")
}

func TestCheckViolations(t *testing.T) {
	rows := []schema.ComparisonRow{
		{
			Key:       schema.GroupKey{Size: 250, Selection: schema.RouletteSelection},
			Computed:  schema.GroupStats{Mean: 0.08},
			Reference: schema.ReferenceStats{Mean: 0.076},
		},
		{
			Key:       schema.GroupKey{Size: 500, Selection: schema.RouletteSelection},
			Computed:  schema.GroupStats{Mean: 0.010},
			Reference: schema.ReferenceStats{Mean: 0.028},
		},
	}

	violations := checkViolations(rows, 0.5)
	require.Len(t, violations, 1)
	assert.Equal(t, 500, violations[0].Key.Size)
	assert.InDelta(t, 0.014, violations[0].Required, 1e-12)

	assert.Empty(t, checkViolations(rows, 0.1))
	assert.Len(t, checkViolations(rows, 1.5), 2)
}

func TestRankRunScores(t *testing.T) {
	scores := []schema.RunScore{
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1}, Hypervolume: 0.02},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 2}, Hypervolume: 0.09},
		{Key: schema.RunKey{Size: 250, Selection: schema.TournamentSelection, Run: 1}, Hypervolume: 0.09},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 3}, Hypervolume: 0.05},
	}

	ranked := rankRunScores(scores, 3)
	require.Len(t, ranked, 3)
	// Ties break by canonical run order.
	assert.Equal(t, schema.RouletteSelection, ranked[0].Key.Selection)
	assert.Equal(t, 2, ranked[0].Key.Run)
	assert.Equal(t, schema.TournamentSelection, ranked[1].Key.Selection)
	assert.InDelta(t, 0.05, ranked[2].Hypervolume, 1e-12)

	// The input slice is untouched.
	assert.InDelta(t, 0.02, scores[0].Hypervolume, 1e-12)
}
