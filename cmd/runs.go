package cmd

import (
	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// runsCmd ranks individual optimizer runs by hypervolume.
var runsCmd = &cobra.Command{
	Use:   "runs <frontier-csv>",
	Short: "Show individual runs ranked by hypervolume.",
	Long: `Score every optimizer run and rank them from best to worst hypervolume.

Useful for spotting outlier runs within a condition, checking run-to-run
variance, or picking the single best front for further inspection.

Examples:
  # Top runs across all conditions
  pareval runs frontier.csv --limit 20

  # Rank only roulette runs with front sizes shown
  pareval runs frontier.csv --selection roulette --detail`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRuns(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot rank runs", err)
		}
	},
}
