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

// PrintConvergence outputs the sampled convergence curves, dispatching based
// on the output format configured.
func PrintConvergence(rows []schema.ConvergencePoint, cfg *contract.Config, duration time.Duration) error {
	fmtFloat, intFmt := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, rows)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForConvergence(w, rows, fmtFloat, intFmt)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for convergence")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeConvergenceTable(rows, cfg, fmtFloat, intFmt, duration, w)
		}, "Wrote table")
	}
}

// writeConvergenceTable generates and writes the human-readable table.
func writeConvergenceTable(rows []schema.ConvergencePoint, cfg *contract.Config, fmtFloat func(float64) string, intFmt string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{
		"Size",
		"Selection",
		"Generation",
		"Runs",
		"Mean Best",
		"Mean Avg",
	})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			strconv.Itoa(r.Key.Size),
			string(r.Key.Selection),
			fmt.Sprintf(intFmt, r.Generation),
			fmt.Sprintf(intFmt, r.Runs),
			fmtFloat(r.MeanBest),
			fmtFloat(r.MeanAvg),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Sampled %d convergence points in %v\n", len(rows), duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForConvergence writes the convergence points to CSV.
func writeCSVResultsForConvergence(w io.Writer, rows []schema.ConvergencePoint, fmtFloat func(float64) string, intFmt string) error {
	header := []string{
		"size",
		"selection",
		"generation",
		"runs",
		"mean_best",
		"mean_avg",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, r := range rows {
			row := []string{
				strconv.Itoa(r.Key.Size),
				string(r.Key.Selection),
				fmt.Sprintf(intFmt, r.Generation),
				fmt.Sprintf(intFmt, r.Runs),
				fmtFloat(r.MeanBest),
				fmtFloat(r.MeanAvg),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
