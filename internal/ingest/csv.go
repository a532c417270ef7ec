// Package ingest loads optimizer output from CSV files into typed records.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/pareval/schema"
)

// Expected header columns, in order.
var (
	frontierHeader  = []string{"Size", "Selection", "Run", "Obj1", "Obj2", "Obj3"}
	evolutionHeader = []string{"Size", "Selection", "Run", "Generation", "BestFit", "AvgFit"}
)

// CSVSource reads frontier and evolution records from CSV files. The file
// formats match what the benchmark binaries emit: a header row followed by
// one row per point (frontier) or per generation (evolution). Selection
// labels are matched case-insensitively and legacy Portuguese labels are
// accepted.
type CSVSource struct {
	FrontierPath  string
	EvolutionPath string
}

// NewCSVSource creates a source for the given file paths. The evolution path
// may be empty when only frontier operations are used.
func NewCSVSource(frontierPath, evolutionPath string) *CSVSource {
	return &CSVSource{FrontierPath: frontierPath, EvolutionPath: evolutionPath}
}

// LoadFrontier returns all objective records for one selection operator.
// Rows for other operators are skipped, not errors. A malformed row fails the
// whole load with its line number; value-range checks are left to the scoring
// pipeline so that one bad run does not block its siblings.
func (s *CSVSource) LoadFrontier(ctx context.Context, selection schema.Selection) ([]schema.ObjectiveRecord, error) {
	var records []schema.ObjectiveRecord
	err := readRows(ctx, s.FrontierPath, frontierHeader, func(line int, fields []string) error {
		rowSelection, ok := schema.CanonicalSelection(strings.ToLower(strings.TrimSpace(fields[1])))
		if !ok {
			return fmt.Errorf("unknown selection label %q", fields[1])
		}
		if rowSelection != selection {
			return nil
		}
		size, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", fields[0], err)
		}
		run, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("bad run %q: %w", fields[2], err)
		}
		var objectives [schema.NumObjectives]float64
		for i := 0; i < schema.NumObjectives; i++ {
			objectives[i], err = strconv.ParseFloat(strings.TrimSpace(fields[3+i]), 64)
			if err != nil {
				return fmt.Errorf("bad objective %d %q: %w", i+1, fields[3+i], err)
			}
		}
		records = append(records, schema.ObjectiveRecord{
			Size:       size,
			Selection:  rowSelection,
			Run:        run,
			Objectives: objectives,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// LoadEvolution returns the per-generation fitness log for one selection
// operator.
func (s *CSVSource) LoadEvolution(ctx context.Context, selection schema.Selection) ([]schema.EvolutionRecord, error) {
	if s.EvolutionPath == "" {
		return nil, fmt.Errorf("no evolution log configured")
	}
	var records []schema.EvolutionRecord
	err := readRows(ctx, s.EvolutionPath, evolutionHeader, func(line int, fields []string) error {
		rowSelection, ok := schema.CanonicalSelection(strings.ToLower(strings.TrimSpace(fields[1])))
		if !ok {
			return fmt.Errorf("unknown selection label %q", fields[1])
		}
		if rowSelection != selection {
			return nil
		}
		size, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil {
			return fmt.Errorf("bad size %q: %w", fields[0], err)
		}
		run, err := strconv.Atoi(strings.TrimSpace(fields[2]))
		if err != nil {
			return fmt.Errorf("bad run %q: %w", fields[2], err)
		}
		generation, err := strconv.Atoi(strings.TrimSpace(fields[3]))
		if err != nil {
			return fmt.Errorf("bad generation %q: %w", fields[3], err)
		}
		best, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
		if err != nil {
			return fmt.Errorf("bad best fitness %q: %w", fields[4], err)
		}
		avg, err := strconv.ParseFloat(strings.TrimSpace(fields[5]), 64)
		if err != nil {
			return fmt.Errorf("bad average fitness %q: %w", fields[5], err)
		}
		records = append(records, schema.EvolutionRecord{
			Size:       size,
			Selection:  rowSelection,
			Run:        run,
			Generation: generation,
			BestFit:    best,
			AvgFit:     avg,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}

// readRows streams a CSV file row by row, validating the header first and
// decorating row errors with file and line context.
func readRows(ctx context.Context, path string, wantHeader []string, handle func(line int, fields []string) error) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = len(wantHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return fmt.Errorf("%s: read header: %w", path, err)
	}
	if !headerMatches(header, wantHeader) {
		return fmt.Errorf("%s: unexpected header %v, want %v", path, header, wantHeader)
	}

	for line := 2; ; line++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		fields, err := reader.Read()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
		if err := handle(line, fields); err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
}

func headerMatches(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range want {
		if !strings.EqualFold(strings.TrimSpace(got[i]), want[i]) {
			return false
		}
	}
	return true
}
