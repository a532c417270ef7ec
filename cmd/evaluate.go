package cmd

import (
	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// evaluateCmd performs the full baseline comparison.
var evaluateCmd = &cobra.Command{
	Use:   "evaluate <frontier-csv>",
	Short: "Score optimizer runs and compare each condition to the published baseline.",
	Long: `Score every optimizer run by normalized hypervolume and compare each
experimental condition (problem size x selection operator) to its published
baseline statistics.

Each run's final population is normalized, reduced to its first Pareto front
and scored with the 3-D hypervolume indicator. Scores are then aggregated per
condition into min/max/mean and set against the baseline table, so you can
tell at a glance whether a reimplementation matches the published results.

Examples:
  # Compare all selection operators against the baseline
  pareval evaluate frontier.csv

  # Evaluate only tournament selection with more decimal places
  pareval evaluate frontier.csv --selection tournament --precision 8

  # Include per-condition min/max and baseline bounds
  pareval evaluate frontier.csv --detail

  # Export findings to CSV for tracking
  pareval evaluate frontier.csv --output csv --output-file comparison.csv`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteEvaluate(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run evaluation", err)
		}
	},
}
