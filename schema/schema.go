// Package schema has configs, models and global variables for all parts of pareval.
package schema

// ObjectiveRecord is a single solution emitted by the optimizer under
// evaluation: one point of the final population of one run. Records are
// immutable once ingested. Each objective is a raw profit value bounded by
// the theoretical maximum for the problem size (Size * MaxProfitPerItem).
type ObjectiveRecord struct {
	Size       int        // Problem size (number of knapsack items)
	Selection  Selection  // Selection operator used by the run
	Run        int        // 1-based run index within the experiment
	Objectives [3]float64 // Raw profit values, one per objective
}

// RunKey identifies one optimizer execution.
type RunKey struct {
	Size      int       `json:"size"`
	Selection Selection `json:"selection"`
	Run       int       `json:"run"`
}

// GroupKey identifies one experimental condition, i.e. all runs that share
// a problem size and a selection operator.
type GroupKey struct {
	Size      int       `json:"size"`
	Selection Selection `json:"selection"`
}

// Group returns the condition key for the run.
func (k RunKey) Group() GroupKey {
	return GroupKey{Size: k.Size, Selection: k.Selection}
}

// NormalizedPoint is an objective vector rescaled into [-1, 0] per component
// and sign-inverted, so that dominance and hypervolume work in the usual
// minimization convention with reference point (0, 0, 0).
type NormalizedPoint [3]float64

// RunScore is the scalar evaluation of one run: the hypervolume of the
// run's first Pareto front relative to the origin. Given the normalization,
// the value always lies in [0, 1].
type RunScore struct {
	Key            RunKey  `json:"key"`
	Hypervolume    float64 `json:"hypervolume"`
	FrontSize      int     `json:"front_size"`      // Points on the first front
	PopulationSize int     `json:"population_size"` // Points in the run's output
}

// RunFailure reports a run group that could not be scored. Failures are
// surfaced next to successful scores so that a bad group never silently
// disappears or turns into a zero.
type RunFailure struct {
	Key    RunKey `json:"key"`
	Reason string `json:"reason"`
}

// GroupStats is the reduction of all scored runs of one condition.
type GroupStats struct {
	Key  GroupKey `json:"key"`
	Runs int      `json:"runs"`
	Min  float64  `json:"min"`
	Max  float64  `json:"max"`
	Mean float64  `json:"mean"`
}

// ReferenceStats is one row of the published baseline table.
type ReferenceStats struct {
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	Mean float64 `json:"mean"`
}

// ReferenceTable maps a problem size to its published baseline stats.
// The table is a fixed external input: it is supplied at initialization and
// never derived from the records under evaluation.
type ReferenceTable map[int]ReferenceStats

// ComparisonRow pairs computed stats with the baseline for the same size,
// ready for tabular or machine-readable consumption.
type ComparisonRow struct {
	Key       GroupKey       `json:"key"`
	Computed  GroupStats     `json:"computed"`
	Reference ReferenceStats `json:"reference"`
}

// MeanDelta is the computed mean minus the reference mean. Positive means
// the evaluated optimizer beat the baseline on average.
func (r ComparisonRow) MeanDelta() float64 {
	return r.Computed.Mean - r.Reference.Mean
}

// EvaluationResult is the full output of one evaluate pipeline execution.
type EvaluationResult struct {
	Rows      []ComparisonRow `json:"rows"`
	Scores    []RunScore      `json:"scores"`
	Failures  []RunFailure    `json:"failures,omitempty"`
	TotalRuns int             `json:"total_runs"`
}

// EvolutionRecord is one row of the optimizer's per-generation fitness log,
// used by the convergence report.
type EvolutionRecord struct {
	Size       int
	Selection  Selection
	Run        int
	Generation int
	BestFit    float64
	AvgFit     float64
}

// ObjectiveSummary is the per-objective best-profit reduction of one
// condition: the mean and standard deviation, across runs, of the best value
// each run achieved for one objective.
type ObjectiveSummary struct {
	Key       GroupKey `json:"key"`
	Objective int      `json:"objective"` // 1-based objective index
	Runs      int      `json:"runs"`
	Mean      float64  `json:"mean"`
	Std       float64  `json:"std"`
}

// ConvergencePoint is one sampled generation of the convergence report:
// best and average fitness at that generation, averaged across runs.
type ConvergencePoint struct {
	Key        GroupKey `json:"key"`
	Generation int      `json:"generation"`
	Runs       int      `json:"runs"`
	MeanBest   float64  `json:"mean_best"`
	MeanAvg    float64  `json:"mean_avg"`
}
