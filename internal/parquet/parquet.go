// Package parquet provides data structures and functions for exporting
// evaluation data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"io"
	"time"

	"github.com/huangsam/pareval/schema"
	"github.com/parquet-go/parquet-go"
)

// EvaluationRun represents a single tracked evaluation with metadata.
// This struct maps to the pareval_evaluations database table.
type EvaluationRun struct {
	// EvaluationID is the unique identifier for this evaluation
	EvaluationID int64 `parquet:"evaluation_id,snappy"`

	// StartTime is when the evaluation began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the evaluation completed (nullable, stored as TIMESTAMP with nanosecond precision)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// RunDurationMs is the duration of the evaluation in milliseconds (nullable)
	RunDurationMs *int32 `parquet:"run_duration_ms,optional,snappy"`

	// TotalRunsScored is the number of optimizer runs scored in this evaluation
	TotalRunsScored int32 `parquet:"total_runs_scored,snappy"`

	// ConfigParams contains the JSON-encoded configuration parameters (nullable)
	ConfigParams *string `parquet:"config_params,optional,snappy"`
}

// RunScoreRow represents the hypervolume score of a single optimizer run.
// This struct maps to the pareval_run_scores database table.
type RunScoreRow struct {
	// EvaluationID references the parent evaluation
	EvaluationID int64 `parquet:"evaluation_id,snappy"`

	// Size is the problem size of the run
	Size int32 `parquet:"size,snappy"`

	// Selection is the selection operator label
	Selection string `parquet:"selection,snappy"`

	// Run is the 1-based run index
	Run int32 `parquet:"run,snappy"`

	// Hypervolume is the normalized hypervolume score
	Hypervolume float64 `parquet:"hypervolume,snappy"`

	// FrontSize is the number of points on the first Pareto front
	FrontSize int32 `parquet:"front_size,snappy"`

	// PopulationSize is the number of points in the run's final population
	PopulationSize int32 `parquet:"population_size,snappy"`
}

// ComparisonRow represents one condition of the baseline comparison.
type ComparisonRow struct {
	Size      int32   `parquet:"size,snappy"`
	Selection string  `parquet:"selection,snappy"`
	Runs      int32   `parquet:"runs,snappy"`
	Min       float64 `parquet:"min,snappy"`
	Max       float64 `parquet:"max,snappy"`
	Mean      float64 `parquet:"mean,snappy"`
	RefMin    float64 `parquet:"ref_min,snappy"`
	RefMax    float64 `parquet:"ref_max,snappy"`
	RefMean   float64 `parquet:"ref_mean,snappy"`
	DeltaMean float64 `parquet:"delta_mean,snappy"`
}

// WriteEvaluationRuns writes evaluation metadata rows to a Parquet stream.
// The schema is automatically derived from the EvaluationRun struct tags.
func WriteEvaluationRuns(w io.Writer, data []EvaluationRun) error {
	writer := parquet.NewGenericWriter[EvaluationRun](w)
	if _, err := writer.Write(data); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}

// WriteRunScores writes per-run scores to a Parquet stream.
func WriteRunScores(w io.Writer, scores []schema.RunScore) error {
	return WriteRunScoreRows(w, ConvertRunScores(0, scores))
}

// WriteRunScoreRows writes already-converted run score rows to a Parquet stream.
func WriteRunScoreRows(w io.Writer, rows []RunScoreRow) error {
	writer := parquet.NewGenericWriter[RunScoreRow](w)
	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}

// WriteComparisonRows writes baseline comparison rows to a Parquet stream.
func WriteComparisonRows(w io.Writer, rows []schema.ComparisonRow) error {
	writer := parquet.NewGenericWriter[ComparisonRow](w)
	if _, err := writer.Write(ConvertComparisonRows(rows)); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return writer.Close()
}

// ConvertEvaluationRecords converts schema.EvaluationRecord to EvaluationRun for Parquet export.
func ConvertEvaluationRecords(records []schema.EvaluationRecord) []EvaluationRun {
	result := make([]EvaluationRun, len(records))
	for i, record := range records {
		run := EvaluationRun{
			EvaluationID:    record.ID,
			StartTime:       record.StartTime,
			TotalRunsScored: int32(record.TotalRuns),
		}
		if !record.EndTime.IsZero() {
			endTime := record.EndTime
			run.EndTime = &endTime
			durationMs := int32(record.RunDurationMS)
			run.RunDurationMs = &durationMs
		}
		if record.ConfigParams != "" {
			params := record.ConfigParams
			run.ConfigParams = &params
		}
		result[i] = run
	}
	return result
}

// ConvertRunScores converts schema.RunScore to RunScoreRow for Parquet export.
func ConvertRunScores(evaluationID int64, scores []schema.RunScore) []RunScoreRow {
	result := make([]RunScoreRow, len(scores))
	for i, score := range scores {
		result[i] = RunScoreRow{
			EvaluationID:   evaluationID,
			Size:           int32(score.Key.Size),
			Selection:      string(score.Key.Selection),
			Run:            int32(score.Key.Run),
			Hypervolume:    score.Hypervolume,
			FrontSize:      int32(score.FrontSize),
			PopulationSize: int32(score.PopulationSize),
		}
	}
	return result
}

// ConvertComparisonRows converts schema.ComparisonRow to ComparisonRow for Parquet export.
func ConvertComparisonRows(rows []schema.ComparisonRow) []ComparisonRow {
	result := make([]ComparisonRow, len(rows))
	for i, row := range rows {
		result[i] = ComparisonRow{
			Size:      int32(row.Key.Size),
			Selection: string(row.Key.Selection),
			Runs:      int32(row.Computed.Runs),
			Min:       row.Computed.Min,
			Max:       row.Computed.Max,
			Mean:      row.Computed.Mean,
			RefMin:    row.Reference.Min,
			RefMax:    row.Reference.Max,
			RefMean:   row.Reference.Mean,
			DeltaMean: row.MeanDelta(),
		}
	}
	return result
}
