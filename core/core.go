// Package core has core logic for scoring, aggregation and comparison.
package core

import (
	"context"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/huangsam/pareval/core/agg"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/ingest"
	"github.com/huangsam/pareval/internal/outwriter"
	"github.com/huangsam/pareval/schema"
)

// ExecutorFunc defines the function signature for executing different evaluation modes.
type ExecutorFunc func(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error

// ExecuteEvaluate runs the full evaluation pipeline and prints the baseline
// comparison. It serves as the main entry point for the 'evaluate' mode.
func ExecuteEvaluate(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	result, err := runEvaluationCore(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	duration := time.Since(start)
	return outwriter.PrintEvaluationResult(result, cfg, duration)
}

// ExecuteRuns scores every run and prints a per-run ranking by hypervolume.
// It serves as the main entry point for the 'runs' mode.
func ExecuteRuns(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	result, err := runEvaluationCore(ctx, cfg, source, mgr)
	if err != nil {
		return err
	}
	ranked := rankRunScores(result.Scores, cfg.ResultLimit)
	duration := time.Since(start)
	return outwriter.PrintRunScores(ranked, result.Failures, cfg, duration)
}

// ExecuteObjectives prints per-objective best-profit statistics for each
// experimental condition. No scoring is involved, so invalid records only
// fail this mode if they cannot be parsed at all.
func ExecuteObjectives(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogEvaluationHeader(cfg)
	}
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	records, err := loadFrontierRecords(ctx, cfg, source)
	if err != nil {
		return err
	}
	rows := agg.ObjectiveSummaries(records)
	duration := time.Since(start)
	return outwriter.PrintObjectiveSummaries(rows, cfg, duration)
}

// ExecuteConvergence prints the sampled convergence curves from the
// per-generation fitness log.
func ExecuteConvergence(ctx context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogEvaluationHeader(cfg)
	}
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	records, err := loadEvolutionRecords(ctx, cfg, source)
	if err != nil {
		return err
	}
	rows := agg.Convergence(records, cfg.Stride)
	duration := time.Since(start)
	return outwriter.PrintConvergence(rows, cfg, duration)
}

// ExecuteReference displays the active baseline table, with any config-file
// overrides applied. This is a static display that does not require input data.
func ExecuteReference(_ context.Context, cfg *contract.Config, _ contract.StoreManager) error {
	return outwriter.PrintReferenceTable(cfg.ReferenceTable, cfg)
}

// ExecuteCheck runs the check command for CI/CD gating. Each evaluated
// condition must reach at least MinRatio of the baseline mean hypervolume
// for its size; any violation exits non-zero.
func ExecuteCheck(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	result, err := runEvaluationCore(withSuppressHeader(ctx), cfg, source, mgr)
	if err != nil {
		return err
	}

	violations := checkViolations(result.Rows, cfg.MinRatio)
	printCheckResult(result, violations, cfg, time.Since(start))
	if len(violations) > 0 {
		fmt.Printf("%d violation(s) found\n", len(violations))
		os.Exit(1)
	}
	return nil
}

// checkViolation describes one condition that failed the baseline gate.
type checkViolation struct {
	Key      schema.GroupKey
	Computed float64
	Required float64
}

// checkViolations applies the gate to each comparison row. Rows without
// baseline data were already rejected by the comparison step, so every row
// here has a reference mean to gate against.
func checkViolations(rows []schema.ComparisonRow, minRatio float64) []checkViolation {
	var violations []checkViolation
	for _, row := range rows {
		required := minRatio * row.Reference.Mean
		if row.Computed.Mean < required {
			violations = append(violations, checkViolation{
				Key:      row.Key,
				Computed: row.Computed.Mean,
				Required: required,
			})
		}
	}
	return violations
}

// printCheckResult prints the check result in a concise format suitable for CI/CD.
func printCheckResult(result *schema.EvaluationResult, violations []checkViolation, cfg *contract.Config, duration time.Duration) {
	fmt.Println("Baseline Check Results:")
	fmt.Printf("  Conditions: %d\n", len(result.Rows))
	fmt.Printf("  Runs scored: %d\n", result.TotalRuns)
	fmt.Printf("  Min ratio: %.*f\n", cfg.Precision, cfg.MinRatio)
	fmt.Printf("  Duration: %v\n", duration)

	if len(violations) == 0 {
		fmt.Println("✅ All conditions meet the baseline threshold")
		return
	}
	fmt.Println("❌ Conditions below the baseline threshold:")
	for _, v := range violations {
		fmt.Printf("  - size %d %s: mean %.*f < required %.*f\n",
			v.Key.Size, v.Key.Selection, cfg.Precision, v.Computed, cfg.Precision, v.Required)
	}
}

// rankRunScores orders scores by descending hypervolume, breaking ties with
// the canonical run order, and truncates to the result limit.
func rankRunScores(scores []schema.RunScore, limit int) []schema.RunScore {
	ranked := make([]schema.RunScore, len(scores))
	copy(ranked, scores)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Hypervolume != ranked[j].Hypervolume {
			return ranked[i].Hypervolume > ranked[j].Hypervolume
		}
		return ranked[i].Key.Less(ranked[j].Key)
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
