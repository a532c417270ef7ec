package schema

import "time"

// ResultsStatus represents the status of the result store.
type ResultsStatus struct {
	Backend          string           `json:"backend"`
	Connected        bool             `json:"connected"`
	TotalEvaluations int              `json:"total_evaluations"`
	LastEvaluationID int64            `json:"last_evaluation_id"`
	LastRunTime      time.Time        `json:"last_run_time"`
	OldestRunTime    time.Time        `json:"oldest_run_time"`
	TotalRunsScored  int              `json:"total_runs_scored"`
	TableSizes       map[string]int64 `json:"table_sizes"`
}

// EvaluationRecord represents a row from the pareval_evaluations table.
type EvaluationRecord struct {
	ID            int64
	StartTime     time.Time
	EndTime       time.Time
	RunDurationMS int64
	TotalRuns     int
	ConfigParams  string
}
