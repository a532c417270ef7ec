// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/huangsam/pareval/schema"
)

// RecordSource defines the operations for loading optimizer output.
// This allows the core pipeline to be tested without real CSV files on disk.
type RecordSource interface {
	// LoadFrontier returns the final-population objective records for one
	// selection operator.
	LoadFrontier(ctx context.Context, selection schema.Selection) ([]schema.ObjectiveRecord, error)

	// LoadEvolution returns the per-generation fitness log for one
	// selection operator.
	LoadEvolution(ctx context.Context, selection schema.Selection) ([]schema.EvolutionRecord, error)
}

// StoreManager defines the interface for managing result stores.
// This allows the storage layer to be mocked for testing.
type StoreManager interface {
	GetResultStore() ResultStore
}

// ResultStore defines the interface for tracking evaluations and storing
// per-run scores.
type ResultStore interface {
	// BeginEvaluation creates a new evaluation row and returns its unique ID
	BeginEvaluation(startTime time.Time, configParams map[string]any) (int64, error)

	// EndEvaluation updates the evaluation row with completion data
	EndEvaluation(evaluationID int64, endTime time.Time, totalRuns int) error

	// RecordRunScore stores the hypervolume score of a single run
	RecordRunScore(evaluationID int64, score schema.RunScore) error

	// ListEvaluations returns the most recent evaluations, newest first
	ListEvaluations(limit int) ([]schema.EvaluationRecord, error)

	// ListRunScores returns the stored scores of one evaluation
	ListRunScores(evaluationID int64) ([]schema.RunScore, error)

	// GetStatus returns status information about the result store
	GetStatus() (schema.ResultsStatus, error)

	// Clear removes all stored evaluations and run scores
	Clear() error

	// Close closes the underlying connection
	Close() error
}
