package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintReferenceTable outputs the active baseline table, dispatching based on
// the output format configured.
func PrintReferenceTable(table schema.ReferenceTable, cfg *contract.Config) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, table)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForReference(w, table, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is not supported for reference")
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReferenceTable(table, cfg, fmtFloat, w)
		}, "Wrote table")
	}
}

// writeReferenceTable generates and writes the human-readable table.
func writeReferenceTable(refTable schema.ReferenceTable, cfg *contract.Config, fmtFloat func(float64) string, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)
	defer func() { _ = table.Close() }()

	table.Header([]string{
		"Size",
		"Ref Min",
		"Ref Max",
		"Ref Mean",
	})

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, size := range refTable.Sizes() {
		stats := refTable[size]
		data = append(data, []string{
			strconv.Itoa(size),
			fmtFloat(stats.Min),
			fmtFloat(stats.Max),
			fmtFloat(stats.Mean),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Baseline covers %d problem sizes\n", len(refTable)); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForReference writes the baseline table to CSV.
func writeCSVResultsForReference(w io.Writer, refTable schema.ReferenceTable, fmtFloat func(float64) string) error {
	header := []string{
		"size",
		"ref_min",
		"ref_max",
		"ref_mean",
	}
	return writeCSVWithHeader(w, header, func(csvWriter *csv.Writer) error {
		for _, size := range refTable.Sizes() {
			stats := refTable[size]
			row := []string{
				strconv.Itoa(size),
				fmtFloat(stats.Min),
				fmtFloat(stats.Max),
				fmtFloat(stats.Mean),
			}
			if err := csvWriter.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}
