package core

import (
	"context"

	"github.com/huangsam/pareval/core/agg"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/ingest"
	"github.com/huangsam/pareval/schema"
)

// WithSuppressHeader returns a context that disables the evaluation header.
// Programmatic consumers such as the MCP server use this to keep output clean.
func WithSuppressHeader(ctx context.Context) context.Context {
	return withSuppressHeader(ctx)
}

// GetEvaluationResults runs the evaluation pipeline and returns the baseline
// comparison without printing it.
func GetEvaluationResults(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) (*schema.EvaluationResult, error) {
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	return runEvaluationCore(ctx, cfg, source, mgr)
}

// GetRankedRunScores runs the evaluation pipeline and returns per-run scores
// ranked by descending hypervolume.
func GetRankedRunScores(ctx context.Context, cfg *contract.Config, mgr contract.StoreManager) ([]schema.RunScore, []schema.RunFailure, error) {
	result, err := GetEvaluationResults(ctx, cfg, mgr)
	if err != nil {
		return nil, nil, err
	}
	return rankRunScores(result.Scores, cfg.ResultLimit), result.Failures, nil
}

// GetObjectiveSummaries returns per-objective best-profit statistics for each
// experimental condition.
func GetObjectiveSummaries(ctx context.Context, cfg *contract.Config) ([]schema.ObjectiveSummary, error) {
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	records, err := loadFrontierRecords(ctx, cfg, source)
	if err != nil {
		return nil, err
	}
	return agg.ObjectiveSummaries(records), nil
}

// GetConvergenceCurves returns the sampled convergence curves from the
// per-generation fitness log.
func GetConvergenceCurves(ctx context.Context, cfg *contract.Config) ([]schema.ConvergencePoint, error) {
	source := ingest.NewCSVSource(cfg.InputPath, cfg.EvolutionPath)
	records, err := loadEvolutionRecords(ctx, cfg, source)
	if err != nil {
		return nil, err
	}
	return agg.Convergence(records, cfg.Stride), nil
}
