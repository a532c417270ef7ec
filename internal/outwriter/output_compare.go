package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/parquet"
	"github.com/huangsam/pareval/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintEvaluationResult outputs the baseline comparison, dispatching based on
// the output format configured.
func PrintEvaluationResult(result *schema.EvaluationResult, cfg *contract.Config, duration time.Duration) error {
	// Create formatters using helper
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	// Dispatcher: Handle different output formats
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, result)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForComparison(w, result, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteComparisonRows(w, result.Rows)
		}, "Wrote Parquet")
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeComparisonTable(result, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeComparisonTable writes the computed stats next to the baseline.
func writeComparisonTable(result *schema.EvaluationResult, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	// --- 1. Define Headers (Comparison Mode) ---
	headers := []string{
		"Size",
		"Selection",
		"Runs",
		"Mean",
		"Ref Mean",
		"Δ Mean",
		"Verdict",
	}
	detail := showDetailColumns(cfg)
	if detail {
		headers = append(headers, "Min", "Max", "Ref Min", "Ref Max")
	}
	table.Header(headers)

	// 2. Configure Alignment
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	// --- 3. Prepare Data Rows ---
	var data [][]string
	var red, green, yellow func(...any) string
	if cfg.UseColors {
		red = color.New(color.FgRed).SprintFunc()
		green = color.New(color.FgGreen).SprintFunc()
		yellow = color.New(color.FgYellow).SprintFunc()
	} else {
		red = fmt.Sprint
		green = fmt.Sprint
		yellow = fmt.Sprint
	}
	for _, r := range result.Rows {
		var deltaStr string
		deltaValue := r.MeanDelta()
		switch {
		case deltaValue > 0:
			// Explicitly add + sign
			deltaStr = green(fmt.Sprintf("+%.*f ▲", cfg.Precision, deltaValue))
		case deltaValue < 0:
			// Keeps the - sign from the float
			deltaStr = red(fmt.Sprintf("%.*f ▼", cfg.Precision, deltaValue))
		default:
			// For 0.0 deltas, format simply without an indicator
			deltaStr = yellow(fmt.Sprintf("%.*f", cfg.Precision, 0.0))
		}

		var verdict string
		if cfg.UseColors {
			verdict = contract.GetColorVerdict(deltaValue)
		} else {
			verdict = contract.GetPlainVerdict(deltaValue)
		}

		// Prepare the row data as a slice of strings
		row := []string{
			strconv.Itoa(r.Key.Size),
			string(r.Key.Selection),
			fmt.Sprintf(intFmt, r.Computed.Runs),
			fmtFloat(r.Computed.Mean),
			fmtFloat(r.Reference.Mean),
			deltaStr,
			verdict,
		}
		if detail {
			row = append(row,
				fmtFloat(r.Computed.Min),
				fmtFloat(r.Computed.Max),
				fmtFloat(r.Reference.Min),
				fmtFloat(r.Reference.Max),
			)
		}
		data = append(data, row)
	}

	// --- 4. Render the table ---
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	// Compute summary stats
	if err := writeFailureSummary(writer, result.Failures); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Scored %d runs across %d conditions\n", result.TotalRuns, len(result.Rows)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v with %d workers. Results backend: %s\n", duration, cfg.Workers, cfg.ResultsBackend); err != nil {
		return err
	}
	return nil
}

// writeFailureSummary lists unscorable run groups below the table so they
// never vanish silently.
func writeFailureSummary(writer io.Writer, failures []schema.RunFailure) error {
	if len(failures) == 0 {
		return nil
	}
	if _, err := fmt.Fprintf(writer, "%d run(s) could not be scored:\n", len(failures)); err != nil {
		return err
	}
	for _, f := range failures {
		if _, err := fmt.Fprintf(writer, "  - size %d %s run %d: %s\n", f.Key.Size, f.Key.Selection, f.Key.Run, f.Reason); err != nil {
			return err
		}
	}
	return nil
}

// writeCSVResultsForComparison writes the comparison rows to CSV.
func writeCSVResultsForComparison(w io.Writer, result *schema.EvaluationResult, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"size",
		"selection",
		"runs",
		"min",
		"max",
		"mean",
		"ref_min",
		"ref_max",
		"ref_mean",
		"delta_mean",
		"verdict",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range result.Rows {
			row := []string{
				strconv.Itoa(r.Key.Size),
				string(r.Key.Selection),
				fmt.Sprintf(intFmt, r.Computed.Runs),
				fmtFloat(r.Computed.Min),
				fmtFloat(r.Computed.Max),
				fmtFloat(r.Computed.Mean),
				fmtFloat(r.Reference.Min),
				fmtFloat(r.Reference.Max),
				fmtFloat(r.Reference.Mean),
				fmtFloat(r.MeanDelta()),
				contract.GetPlainVerdict(r.MeanDelta()),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
