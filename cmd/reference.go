package cmd

import (
	"github.com/huangsam/pareval/core"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/spf13/cobra"
)

// referenceCmd displays the active baseline table.
var referenceCmd = &cobra.Command{
	Use:   "reference",
	Short: "Display the active baseline hypervolume table.",
	Long: `Show the baseline hypervolume statistics that evaluations compare against.

The published defaults can be overridden per size in the config file:

  reference:
    "250":
      mean: 0.080

Examples:
  # Show the baseline, including any overrides from .pareval.yaml
  pareval reference`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReference(rootCtx, cfg, storeManager); err != nil {
			contract.LogFatal("Cannot display reference table", err)
		}
	},
}
