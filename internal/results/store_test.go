package results

import (
	"testing"
	"time"

	"github.com/huangsam/pareval/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultStore_NoneBackend(t *testing.T) {
	store, err := NewResultStore(schema.NoneBackend, "")
	require.NoError(t, err)
	require.NotNil(t, store)

	// BeginEvaluation should return 0 for NoneBackend
	evaluationID, err := store.BeginEvaluation(time.Now(), map[string]any{"test": "value"})
	assert.NoError(t, err)
	assert.Equal(t, int64(0), evaluationID)

	// Other operations should not error
	err = store.EndEvaluation(1, time.Now(), 10)
	assert.NoError(t, err)

	err = store.RecordRunScore(1, schema.RunScore{})
	assert.NoError(t, err)

	err = store.Close()
	assert.NoError(t, err)
}

func TestResultStore_SQLite(t *testing.T) {
	// Use in-memory SQLite for testing
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Test BeginEvaluation
	startTime := time.Now()
	configParams := map[string]any{
		"input":      "front.csv",
		"selections": "roulette,tournament",
		"workers":    4,
	}
	evaluationID, err := store.BeginEvaluation(startTime, configParams)
	require.NoError(t, err)
	assert.Greater(t, evaluationID, int64(0))

	// Test RecordRunScore
	score := schema.RunScore{
		Key:            schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1},
		Hypervolume:    0.0123,
		FrontSize:      40,
		PopulationSize: 100,
	}
	err = store.RecordRunScore(evaluationID, score)
	assert.NoError(t, err)

	// Test EndEvaluation
	endTime := time.Now()
	err = store.EndEvaluation(evaluationID, endTime, 1)
	assert.NoError(t, err)
}

func TestResultStore_ListRoundTrip(t *testing.T) {
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	evaluationID, err := store.BeginEvaluation(time.Now(), map[string]any{"test": "roundtrip"})
	require.NoError(t, err)

	scores := []schema.RunScore{
		{Key: schema.RunKey{Size: 500, Selection: schema.TournamentSelection, Run: 2}, Hypervolume: 0.031, FrontSize: 55, PopulationSize: 100},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1}, Hypervolume: 0.082, FrontSize: 40, PopulationSize: 100},
		{Key: schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 2}, Hypervolume: 0.079, FrontSize: 38, PopulationSize: 100},
	}
	for _, score := range scores {
		require.NoError(t, store.RecordRunScore(evaluationID, score))
	}
	require.NoError(t, store.EndEvaluation(evaluationID, time.Now().Add(time.Second), len(scores)))

	// List evaluations
	evaluations, err := store.ListEvaluations(10)
	require.NoError(t, err)
	require.Len(t, evaluations, 1)
	assert.Equal(t, evaluationID, evaluations[0].ID)
	assert.Equal(t, len(scores), evaluations[0].TotalRuns)
	assert.False(t, evaluations[0].EndTime.IsZero())
	assert.Contains(t, evaluations[0].ConfigParams, "roundtrip")

	// List scores comes back in canonical run order
	stored, err := store.ListRunScores(evaluationID)
	require.NoError(t, err)
	require.Len(t, stored, 3)
	assert.Equal(t, schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1}, stored[0].Key)
	assert.Equal(t, schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 2}, stored[1].Key)
	assert.Equal(t, schema.RunKey{Size: 500, Selection: schema.TournamentSelection, Run: 2}, stored[2].Key)
	assert.InDelta(t, 0.082, stored[0].Hypervolume, 1e-12)
}

func TestResultStore_MultipleEvaluations(t *testing.T) {
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Create multiple evaluations
	var evaluationIDs []int64
	for i := range 3 {
		id, err := store.BeginEvaluation(time.Now(), map[string]any{"run": i})
		require.NoError(t, err)
		evaluationIDs = append(evaluationIDs, id)

		score := schema.RunScore{
			Key:            schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1},
			Hypervolume:    0.05 + float64(i)*0.01,
			FrontSize:      30 + i,
			PopulationSize: 100,
		}
		require.NoError(t, store.RecordRunScore(id, score))
		require.NoError(t, store.EndEvaluation(id, time.Now(), 1))
	}

	// Verify all IDs are unique
	assert.Equal(t, 3, len(evaluationIDs))
	assert.NotEqual(t, evaluationIDs[0], evaluationIDs[1])
	assert.NotEqual(t, evaluationIDs[1], evaluationIDs[2])

	// Newest evaluation comes first
	evaluations, err := store.ListEvaluations(10)
	require.NoError(t, err)
	require.Len(t, evaluations, 3)
	assert.Equal(t, evaluationIDs[2], evaluations[0].ID)

	// Limit is honored
	evaluations, err = store.ListEvaluations(1)
	require.NoError(t, err)
	assert.Len(t, evaluations, 1)
}

func TestResultStore_DurationCapture(t *testing.T) {
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	t.Run("duration calculation", func(t *testing.T) {
		startTime := time.Now().Add(-100 * time.Millisecond)
		evaluationID, err := store.BeginEvaluation(startTime, map[string]any{"test": "duration"})
		require.NoError(t, err)

		err = store.EndEvaluation(evaluationID, time.Now(), 1)
		assert.NoError(t, err)

		evaluations, err := store.ListEvaluations(1)
		require.NoError(t, err)
		require.Len(t, evaluations, 1)
		assert.GreaterOrEqual(t, evaluations[0].RunDurationMS, int64(100))
		assert.LessOrEqual(t, evaluations[0].RunDurationMS, int64(500))
	})

	t.Run("zero duration edge case", func(t *testing.T) {
		startTime := time.Now()
		evaluationID, err := store.BeginEvaluation(startTime, map[string]any{"test": "zero_duration"})
		require.NoError(t, err)

		// End immediately with the same time
		err = store.EndEvaluation(evaluationID, startTime, 1)
		assert.NoError(t, err)

		evaluations, err := store.ListEvaluations(1)
		require.NoError(t, err)
		require.Len(t, evaluations, 1)
		assert.Equal(t, int64(0), evaluations[0].RunDurationMS)
	})
}

func TestResultStore_Status(t *testing.T) {
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	// Empty store
	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, string(schema.SQLiteBackend), status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, 0, status.TotalEvaluations)

	// Add an evaluation with two scores
	evaluationID, err := store.BeginEvaluation(time.Now(), map[string]any{"test": "status"})
	require.NoError(t, err)
	for run := 1; run <= 2; run++ {
		score := schema.RunScore{
			Key:            schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: run},
			Hypervolume:    0.05,
			FrontSize:      30,
			PopulationSize: 100,
		}
		require.NoError(t, store.RecordRunScore(evaluationID, score))
	}
	require.NoError(t, store.EndEvaluation(evaluationID, time.Now(), 2))

	status, err = store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalEvaluations)
	assert.Equal(t, evaluationID, status.LastEvaluationID)
	assert.Equal(t, 2, status.TotalRunsScored)
	assert.Equal(t, int64(1), status.TableSizes[evaluationsTable])
	assert.Equal(t, int64(2), status.TableSizes[runScoresTable])
	assert.False(t, status.LastRunTime.IsZero())
	assert.False(t, status.OldestRunTime.IsZero())
}

func TestResultStore_Clear(t *testing.T) {
	store, err := NewResultStore(schema.SQLiteBackend, ":memory:")
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() { _ = store.Close() }()

	evaluationID, err := store.BeginEvaluation(time.Now(), map[string]any{"test": "clear"})
	require.NoError(t, err)
	score := schema.RunScore{
		Key:            schema.RunKey{Size: 250, Selection: schema.RouletteSelection, Run: 1},
		Hypervolume:    0.05,
		FrontSize:      30,
		PopulationSize: 100,
	}
	require.NoError(t, store.RecordRunScore(evaluationID, score))

	require.NoError(t, store.Clear())

	status, err := store.GetStatus()
	require.NoError(t, err)
	assert.Equal(t, 0, status.TotalEvaluations)
	assert.Equal(t, int64(0), status.TableSizes[runScoresTable])
}

func TestResultStore_UnsupportedBackend(t *testing.T) {
	_, err := NewResultStore(schema.DatabaseBackend("bogus"), "")
	assert.Error(t, err)
}
