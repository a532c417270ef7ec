package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/parquet"
	"github.com/huangsam/pareval/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintRunScores outputs the per-run ranking, dispatching based on the output
// format configured.
func PrintRunScores(scores []schema.RunScore, failures []schema.RunFailure, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, map[string]any{
				"scores":   scores,
				"failures": failures,
			})
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForRuns(w, scores, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires --output-file")
		}
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return parquet.WriteRunScores(w, scores)
		}, "Wrote Parquet")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRunsTable(scores, failures, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeRunsTable generates and writes the human-readable ranking table.
func writeRunsTable(scores []schema.RunScore, failures []schema.RunFailure, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	headers := []string{
		"Rank",
		"Size",
		"Selection",
		"Run",
		"Hypervolume",
	}
	detail := showDetailColumns(cfg)
	if detail {
		headers = append(headers, "Front", "Points")
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for i, s := range scores {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(s.Key.Size),
			string(s.Key.Selection),
			fmt.Sprintf(intFmt, s.Key.Run),
			fmtFloat(s.Hypervolume),
		}
		if detail {
			row = append(row,
				fmt.Sprintf(intFmt, s.FrontSize),
				fmt.Sprintf(intFmt, s.PopulationSize),
			)
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if err := writeFailureSummary(writer, failures); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Showing top %d runs\n", len(scores)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Evaluation completed in %v with %d workers\n", duration, cfg.Workers); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRuns writes the run scores to CSV.
func writeCSVResultsForRuns(w io.Writer, scores []schema.RunScore, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"rank",
		"size",
		"selection",
		"run",
		"hypervolume",
		"front_size",
		"population_size",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for i, s := range scores {
			row := []string{
				strconv.Itoa(i + 1),
				strconv.Itoa(s.Key.Size),
				string(s.Key.Selection),
				fmt.Sprintf(intFmt, s.Key.Run),
				fmtFloat(s.Hypervolume),
				fmt.Sprintf(intFmt, s.FrontSize),
				fmt.Sprintf(intFmt, s.PopulationSize),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
