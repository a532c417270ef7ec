package results

import (
	"fmt"

	"github.com/huangsam/pareval/schema"
)

// PrintResultsStatus prints result tracking status information.
func PrintResultsStatus(status schema.ResultsStatus) {
	fmt.Printf("Results Backend: %s\n", status.Backend)
	fmt.Printf("Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	fmt.Printf("Total Evaluations: %d\n", status.TotalEvaluations)
	if status.TotalEvaluations > 0 {
		fmt.Printf("Last Evaluation ID: %d\n", status.LastEvaluationID)
		fmt.Printf("Last Evaluation: %s\n", status.LastRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Oldest Evaluation: %s\n", status.OldestRunTime.Format("2006-01-02 15:04:05"))
		fmt.Printf("Total Runs Scored: %d\n", status.TotalRunsScored)
	}
	fmt.Println("Table Sizes:")
	for table, size := range status.TableSizes {
		fmt.Printf("  %s: %d rows\n", table, size)
	}
}
