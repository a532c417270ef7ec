package results

import (
	"errors"
	"fmt"
	"os"

	"github.com/huangsam/pareval/internal/parquet"
)

// ExecuteResultsExport performs the actual export of result data to Parquet files.
func ExecuteResultsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the result store
	store := Manager.GetResultStore()
	if store == nil {
		return errors.New("result tracking is disabled")
	}

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get results status: %w", err)
	}

	if status.TotalEvaluations == 0 {
		return errors.New("no evaluation data found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total evaluations: %d\n", status.TotalEvaluations)
	fmt.Printf("Total run scores: %d\n", status.TableSizes[runScoresTable])

	// Retrieve all evaluations
	evaluations, err := store.ListEvaluations(status.TotalEvaluations)
	if err != nil {
		return fmt.Errorf("failed to retrieve evaluations: %w", err)
	}

	// Retrieve the scores of every evaluation
	var scoreRows []parquet.RunScoreRow
	for _, evaluation := range evaluations {
		scores, err := store.ListRunScores(evaluation.ID)
		if err != nil {
			return fmt.Errorf("failed to retrieve run scores for evaluation %d: %w", evaluation.ID, err)
		}
		scoreRows = append(scoreRows, parquet.ConvertRunScores(evaluation.ID, scores)...)
	}

	// Write evaluations to Parquet
	evaluationsFile := outputFile + ".evaluations.parquet"
	evaluationRows := parquet.ConvertEvaluationRecords(evaluations)
	if err := writeParquetFile(evaluationsFile, func(f *os.File) error {
		return parquet.WriteEvaluationRuns(f, evaluationRows)
	}); err != nil {
		return fmt.Errorf("failed to write evaluations: %w", err)
	}
	fmt.Printf("Exported %d evaluations to: %s\n", len(evaluationRows), evaluationsFile)

	// Write run scores to Parquet
	scoresFile := outputFile + ".run_scores.parquet"
	if err := writeParquetFile(scoresFile, func(f *os.File) error {
		return parquet.WriteRunScoreRows(f, scoreRows)
	}); err != nil {
		return fmt.Errorf("failed to write run scores: %w", err)
	}
	fmt.Printf("Exported %d run scores to: %s\n", len(scoreRows), scoresFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}

// writeParquetFile creates the target file and hands it to the writer callback.
func writeParquetFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
