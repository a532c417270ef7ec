package core

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/huangsam/pareval/core/agg"
	"github.com/huangsam/pareval/core/moea"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/outwriter"
	"github.com/huangsam/pareval/schema"
)

// runEvaluationCore performs the common Load, Score, Track and Compare steps.
func runEvaluationCore(ctx context.Context, cfg *contract.Config, source contract.RecordSource, mgr contract.StoreManager) (*schema.EvaluationResult, error) {
	if !shouldSuppressHeader(ctx) {
		outwriter.LogEvaluationHeader(cfg)
	}

	// --- 0. Begin Evaluation Tracking (if configured) ---
	var evaluationID int64
	resultStore := mgr.GetResultStore()
	if resultStore != nil {
		var err error
		evaluationID, err = resultStore.BeginEvaluation(time.Now(), cfg.ConfigParams())
		if err != nil {
			contract.LogWarn("Evaluation tracking initialization failed", err)
		} else if evaluationID > 0 {
			ctx = withEvaluationID(ctx, evaluationID)
		}
	}

	// --- 1. Load Phase ---
	records, err := loadFrontierRecords(ctx, cfg, source)
	if err != nil {
		return nil, err
	}

	// --- 2. Grouping and Scoring ---
	groups := GroupRecords(records)
	scores, failures := scoreRunGroups(ctx, cfg, groups, resultStore)

	// --- 3. Aggregation and Comparison ---
	stats := agg.Aggregate(scores)
	rows, err := CompareWithReference(stats, cfg.ReferenceTable)
	if err != nil {
		return nil, err
	}

	// --- 4. End Evaluation Tracking ---
	if resultStore != nil && evaluationID > 0 {
		if err := resultStore.EndEvaluation(evaluationID, time.Now(), len(scores)); err != nil {
			contract.LogWarn("Failed to finalize evaluation tracking", err)
		}
	}

	return &schema.EvaluationResult{
		Rows:      rows,
		Scores:    scores,
		Failures:  failures,
		TotalRuns: len(scores),
	}, nil
}

// loadFrontierRecords loads objective records for every configured selection
// operator. A selection that yields no records at all is a hard error; the
// original tooling silently reused another operator's data in that case,
// which poisoned whole comparisons.
func loadFrontierRecords(ctx context.Context, cfg *contract.Config, source contract.RecordSource) ([]schema.ObjectiveRecord, error) {
	var records []schema.ObjectiveRecord
	for _, selection := range cfg.Selections {
		loaded, err := source.LoadFrontier(ctx, selection)
		if err != nil {
			return nil, err
		}
		if len(loaded) == 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrMissingSelection, selection)
		}
		records = append(records, loaded...)
	}
	return records, nil
}

// loadEvolutionRecords loads the fitness log for every configured selection
// operator, with the same missing-selection contract as the frontier path.
func loadEvolutionRecords(ctx context.Context, cfg *contract.Config, source contract.RecordSource) ([]schema.EvolutionRecord, error) {
	var records []schema.EvolutionRecord
	for _, selection := range cfg.Selections {
		loaded, err := source.LoadEvolution(ctx, selection)
		if err != nil {
			return nil, err
		}
		if len(loaded) == 0 {
			return nil, fmt.Errorf("%w: %s", schema.ErrMissingSelection, selection)
		}
		records = append(records, loaded...)
	}
	return records, nil
}

// GroupRecords partitions records by run key. Ordering within a group follows
// the input file, which scoring does not depend on.
func GroupRecords(records []schema.ObjectiveRecord) map[schema.RunKey][]schema.ObjectiveRecord {
	groups := make(map[schema.RunKey][]schema.ObjectiveRecord)
	for _, rec := range records {
		key := schema.RunKey{Size: rec.Size, Selection: rec.Selection, Run: rec.Run}
		groups[key] = append(groups[key], rec)
	}
	return groups
}

// runOutcome carries one scored or failed run group out of the worker pool.
type runOutcome struct {
	score   *schema.RunScore
	failure *schema.RunFailure
}

// scoreRunGroups scores every run group on a worker pool. Failures are
// isolated per group: one bad run is reported and the rest keep going.
// Scores and failures come back in the canonical run order regardless of
// which worker finished first.
func scoreRunGroups(ctx context.Context, cfg *contract.Config, groups map[schema.RunKey][]schema.ObjectiveRecord, resultStore contract.ResultStore) ([]schema.RunScore, []schema.RunFailure) {
	keys := make([]schema.RunKey, 0, len(groups))
	for key := range groups {
		keys = append(keys, key)
	}

	keyCh := make(chan schema.RunKey, len(keys))
	outcomeCh := make(chan runOutcome, len(keys))
	var wg sync.WaitGroup

	// Start worker pool
	for range cfg.Workers {
		wg.Go(func() {
			for key := range keyCh {
				score, err := ScoreRun(key, groups[key])
				if err != nil {
					outcomeCh <- runOutcome{failure: &schema.RunFailure{Key: key, Reason: err.Error()}}
					continue
				}
				recordRunScore(ctx, resultStore, score)
				outcomeCh <- runOutcome{score: &score}
			}
		})
	}

	// Send run keys to worker channel
	for _, key := range keys {
		keyCh <- key
	}
	close(keyCh)

	// Wait for all workers to finish processing
	wg.Wait()
	close(outcomeCh)

	scores := make([]schema.RunScore, 0, len(keys))
	var failures []schema.RunFailure
	for outcome := range outcomeCh {
		if outcome.score != nil {
			scores = append(scores, *outcome.score)
		} else {
			failures = append(failures, *outcome.failure)
		}
	}
	sort.Slice(scores, func(i, j int) bool { return scores[i].Key.Less(scores[j].Key) })
	sort.Slice(failures, func(i, j int) bool { return failures[i].Key.Less(failures[j].Key) })
	return scores, failures
}

// ScoreRun computes the hypervolume score of a single run group: normalize
// the raw objectives, reduce to the first Pareto front, then measure the
// dominated volume against the origin.
func ScoreRun(key schema.RunKey, records []schema.ObjectiveRecord) (schema.RunScore, error) {
	if len(records) == 0 {
		return schema.RunScore{}, fmt.Errorf("%w: run %d (size %d, %s)",
			schema.ErrEmptyRunGroup, key.Run, key.Size, key.Selection)
	}
	points, err := moea.NormalizeRecords(records)
	if err != nil {
		return schema.RunScore{}, err
	}
	front := moea.FirstFront(points)
	return schema.RunScore{
		Key:            key,
		Hypervolume:    moea.Hypervolume(front),
		FrontSize:      len(front),
		PopulationSize: len(records),
	}, nil
}
