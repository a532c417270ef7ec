package agg

import (
	"testing"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
)

func TestAggregate(t *testing.T) {
	scores := []schema.RunScore{
		{Key: schema.RunKey{Size: 500, Selection: schema.TournamentSelection, Run: 1}, Hypervolume: 0.030},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1}, Hypervolume: 0.02},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 2}, Hypervolume: 0.08},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 3}, Hypervolume: 0.05},
		{Key: schema.RunKey{Size: 250, Selection: schema.TournamentSelection, Run: 1}, Hypervolume: 0.10},
	}

	rows := Aggregate(scores)
	assert.Len(t, rows, 3)

	// Canonical order: size ascending, roulette before tournament.
	assert.Equal(t, schema.GroupKey{Size: 250, Selection: schema.RouletteSelection}, rows[0].Key)
	assert.Equal(t, schema.GroupKey{Size: 250, Selection: schema.TournamentSelection}, rows[1].Key)
	assert.Equal(t, schema.GroupKey{Size: 500, Selection: schema.TournamentSelection}, rows[2].Key)

	assert.Equal(t, 3, rows[0].Runs)
	assert.InDelta(t, 0.02, rows[0].Min, 1e-12)
	assert.InDelta(t, 0.08, rows[0].Max, 1e-12)
	assert.InDelta(t, 0.05, rows[0].Mean, 1e-12)

	assert.Equal(t, 1, rows[1].Runs)
	assert.InDelta(t, 0.10, rows[1].Mean, 1e-12)
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil))
}

func TestObjectiveSummaries(t *testing.T) {
	records := []schema.ObjectiveRecord{
		// Run 1: bests are (100, 60, 30).
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Objectives: [3]float64{100, 50, 25}},
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Objectives: [3]float64{80, 60, 30}},
		// Run 2: bests are (90, 40, 50).
		{Size: 250, Selection: schema.RouletteSelection, Run: 2, Objectives: [3]float64{90, 40, 50}},
	}

	rows := ObjectiveSummaries(records)
	assert.Len(t, rows, 3)

	assert.Equal(t, 1, rows[0].Objective)
	assert.Equal(t, 2, rows[0].Runs)
	assert.InDelta(t, 95, rows[0].Mean, 1e-12)

	assert.Equal(t, 2, rows[1].Objective)
	assert.InDelta(t, 50, rows[1].Mean, 1e-12)

	assert.Equal(t, 3, rows[2].Objective)
	assert.InDelta(t, 40, rows[2].Mean, 1e-12)
}

func TestObjectiveSummariesSingleRunStd(t *testing.T) {
	records := []schema.ObjectiveRecord{
		{Size: 500, Selection: schema.TournamentSelection, Run: 1, Objectives: [3]float64{10, 20, 30}},
	}
	rows := ObjectiveSummaries(records)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.Equal(t, 1, row.Runs)
		assert.Zero(t, row.Std)
	}
}

func TestConvergence(t *testing.T) {
	records := []schema.EvolutionRecord{
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Generation: 10, BestFit: 100, AvgFit: 50},
		{Size: 250, Selection: schema.RouletteSelection, Run: 2, Generation: 10, BestFit: 120, AvgFit: 70},
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Generation: 15, BestFit: 130, AvgFit: 80},
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Generation: 20, BestFit: 150, AvgFit: 90},
	}

	rows := Convergence(records, 10)
	// Generation 15 is off-stride and not final for the group, so it drops.
	assert.Len(t, rows, 2)

	assert.Equal(t, 10, rows[0].Generation)
	assert.Equal(t, 2, rows[0].Runs)
	assert.InDelta(t, 110, rows[0].MeanBest, 1e-12)
	assert.InDelta(t, 60, rows[0].MeanAvg, 1e-12)

	assert.Equal(t, 20, rows[1].Generation)
	assert.Equal(t, 1, rows[1].Runs)
}

func TestConvergenceKeepsFinalGeneration(t *testing.T) {
	records := []schema.EvolutionRecord{
		{Size: 250, Selection: schema.RouletteSelection, Run: 1, Generation: 7, BestFit: 1, AvgFit: 1},
	}
	rows := Convergence(records, 10)
	assert.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Generation)
}
