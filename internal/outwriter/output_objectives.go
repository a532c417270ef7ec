package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintObjectiveSummaries outputs per-objective best-profit statistics,
// dispatching based on the output format configured.
func PrintObjectiveSummaries(rows []schema.ObjectiveSummary, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForObjectives(w, rows, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for objectives")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeObjectivesTable(rows, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeObjectivesTable generates and writes the human-readable table.
func writeObjectivesTable(rows []schema.ObjectiveSummary, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{
		"Size",
		"Selection",
		"Objective",
		"Runs",
		"Mean Best",
		"Std Dev",
	})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Key.Size),
			string(r.Key.Selection),
			fmt.Sprintf("Obj%d", r.Objective),
			fmt.Sprintf(intFmt, r.Runs),
			fmtFloat(r.Mean),
			fmtFloat(r.Std),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Summarized %d objective series in %v\n", len(rows), duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForObjectives writes the objective summaries to CSV.
func writeCSVResultsForObjectives(w io.Writer, rows []schema.ObjectiveSummary, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"size",
		"selection",
		"objective",
		"runs",
		"mean_best",
		"std_dev",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			row := []string{
				strconv.Itoa(r.Key.Size),
				string(r.Key.Selection),
				strconv.Itoa(r.Objective),
				fmt.Sprintf(intFmt, r.Runs),
				fmtFloat(r.Mean),
				fmtFloat(r.Std),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
