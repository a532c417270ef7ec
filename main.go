// main is the entry point for the pareval CLI.
package main

import (
	"os"

	"github.com/huangsam/pareval/cmd"
	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/results"
)

func main() {
	// Wire the global store manager into the command layer before execution.
	cmd.SetStoreManager(results.Manager)
	defer results.CloseStores()

	err := cmd.Execute()

	// Always flush profiles, even when the command failed.
	if profErr := cmd.StopProfiling(); profErr != nil {
		contract.LogWarn("Failed to stop profiling", profErr)
	}

	if err != nil {
		contract.LogWarn("Command failed", err)
		os.Exit(1)
	}
}
