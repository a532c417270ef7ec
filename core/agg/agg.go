// Package agg has aggregation logic for run scores and fitness logs.
package agg

import (
	"sort"

	"github.com/huangsam/pareval/schema"
	"gonum.org/v1/gonum/stat"
)

// Aggregate reduces per-run hypervolume scores to per-condition statistics.
// A condition is one (size, selection) pair; its stats cover exactly the runs
// that were scored, so a group with failures reports a lower run count rather
// than padding with zeros. Rows come back in the canonical reporting order.
func Aggregate(scores []schema.RunScore) []schema.GroupStats {
	grouped := make(map[schema.GroupKey][]float64)
	for _, score := range scores {
		key := score.Key.Group()
		grouped[key] = append(grouped[key], score.Hypervolume)
	}

	rows := make([]schema.GroupStats, 0, len(grouped))
	for key, values := range grouped {
		rows = append(rows, schema.GroupStats{
			Key:  key,
			Runs: len(values),
			Min:  minOf(values),
			Max:  maxOf(values),
			Mean: stat.Mean(values, nil),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Key.Less(rows[j].Key) })
	return rows
}

// ObjectiveSummaries reduces raw records to per-condition, per-objective
// best-profit statistics: for each run, the best value it achieved on each
// objective, then the mean and standard deviation of those bests across runs.
func ObjectiveSummaries(records []schema.ObjectiveRecord) []schema.ObjectiveSummary {
	// Best value per run per objective.
	bests := make(map[schema.RunKey][schema.NumObjectives]float64)
	for _, rec := range records {
		key := schema.RunKey{Size: rec.Size, Selection: rec.Selection, Run: rec.Run}
		best, seen := bests[key]
		for i, obj := range rec.Objectives {
			if !seen || obj > best[i] {
				best[i] = obj
			}
		}
		bests[key] = best
	}

	// Collect per-condition series of run bests.
	series := make(map[schema.GroupKey][schema.NumObjectives][]float64)
	for key, best := range bests {
		group := key.Group()
		entry := series[group]
		for i := range entry {
			entry[i] = append(entry[i], best[i])
		}
		series[group] = entry
	}

	rows := make([]schema.ObjectiveSummary, 0, len(series)*schema.NumObjectives)
	for group, entry := range series {
		for i, values := range entry {
			mean, std := stat.MeanStdDev(values, nil)
			if len(values) < 2 {
				std = 0
			}
			rows = append(rows, schema.ObjectiveSummary{
				Key:       group,
				Objective: i + 1,
				Runs:      len(values),
				Mean:      mean,
				Std:       std,
			})
		}
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Key != rows[j].Key {
			return rows[i].Key.Less(rows[j].Key)
		}
		return rows[i].Objective < rows[j].Objective
	})
	return rows
}

// Convergence reduces per-generation fitness logs to a sampled convergence
// curve per condition. Generations are sampled every stride steps, always
// including the final generation of each group; best and average fitness are
// averaged across the runs that reached that generation.
func Convergence(records []schema.EvolutionRecord, stride int) []schema.ConvergencePoint {
	if stride < 1 {
		stride = 1
	}

	type genKey struct {
		group      schema.GroupKey
		generation int
	}
	bestSeries := make(map[genKey][]float64)
	avgSeries := make(map[genKey][]float64)
	lastGen := make(map[schema.GroupKey]int)
	for _, rec := range records {
		group := schema.GroupKey{Size: rec.Size, Selection: rec.Selection}
		key := genKey{group: group, generation: rec.Generation}
		bestSeries[key] = append(bestSeries[key], rec.BestFit)
		avgSeries[key] = append(avgSeries[key], rec.AvgFit)
		if rec.Generation > lastGen[group] {
			lastGen[group] = rec.Generation
		}
	}

	rows := make([]schema.ConvergencePoint, 0, len(bestSeries))
	for key, bests := range bestSeries {
		if key.generation%stride != 0 && key.generation != lastGen[key.group] {
			continue
		}
		rows = append(rows, schema.ConvergencePoint{
			Key:        key.group,
			Generation: key.generation,
			Runs:       len(bests),
			MeanBest:   stat.Mean(bests, nil),
			MeanAvg:    stat.Mean(avgSeries[key], nil),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Key != rows[j].Key {
			return rows[i].Key.Less(rows[j].Key)
		}
		return rows[i].Generation < rows[j].Generation
	})
	return rows
}

func minOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}
	return m
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}
	return m
}
