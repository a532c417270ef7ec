package cmd

import (
	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// checkCmd focused on CI/CD policy enforcement.
var checkCmd = &cobra.Command{
	Use:   "check <frontier-csv>",
	Short: "Enforce baseline thresholds for CI/CD pipelines (fails build on violations)",
	Long: `Score optimizer runs and fail with a non-zero exit code when any condition
falls below the baseline gate.

A condition passes when its mean hypervolume reaches at least --min-ratio of
the baseline mean for its problem size. Output is kept terse for CI logs.

Use cases:
- Pull request gates - block merges that regress optimizer quality
- Release validation - confirm a reimplementation still matches the paper
- Nightly jobs - catch drift in stochastic behavior over time

Examples:
  # Gate at half the baseline mean (default)
  pareval check frontier.csv

  # Stricter gate for release builds
  pareval check frontier.csv --min-ratio 0.9

  # Gate a single operator
  pareval check frontier.csv --selection tournament --min-ratio 0.8`,
	Args:    cobra.ExactArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		// Violation handling is done in ExecuteCheck
		if err := core.ExecuteCheck(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Baseline check failed", err)
		}
	},
}
