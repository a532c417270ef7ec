package cmd

import (
	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// objectivesCmd summarizes raw objective values per condition.
var objectivesCmd = &cobra.Command{
	Use:   "objectives <frontier-csv>",
	Short: "Show per-objective best-profit statistics for each condition.",
	Long: `Summarize the raw objective values of each experimental condition.

For every condition, reports the mean and standard deviation of each
objective's per-run best value. This works directly on raw profits, without
normalization or dominance filtering, so it complements the hypervolume view
with per-objective detail.

Examples:
  # Objective statistics for all conditions
  pareval objectives frontier.csv

  # Only tournament selection, as JSON
  pareval objectives frontier.csv --selection tournament --output json`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteObjectives(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot summarize objectives", err)
		}
	},
}
