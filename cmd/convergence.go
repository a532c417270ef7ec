package cmd

import (
	"errors"

	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// convergenceCmd samples per-generation fitness curves.
var convergenceCmd = &cobra.Command{
	Use:   "convergence --evolution <evolution-csv>",
	Short: "Show sampled convergence curves from the per-generation fitness log.",
	Long: `Sample the per-generation best and average fitness of each condition.

Generations are sampled at a fixed stride, with the final generation of each
group always kept so the end state is visible even when it falls off-stride.

Examples:
  # Every 10th generation (default stride)
  pareval convergence --evolution evolution.csv

  # Coarser sampling for long runs
  pareval convergence --evolution evolution.csv --stride 50`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if cfg.EvolutionPath == "" {
			contract.LogFatal("Cannot analyze convergence", errors.New("--evolution is required"))
		}
		if err := core.ExecuteConvergence(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot analyze convergence", err)
		}
	},
}
