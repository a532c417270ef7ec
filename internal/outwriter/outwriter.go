// Package outwriter has output and writer logic.
package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/pareval/internal/contract"
	"golang.org/x/term"
)

// LogEvaluationHeader prints a concise, 2-line header for each evaluation phase.
func LogEvaluationHeader(cfg *contract.Config) {
	inputName := filepath.Base(cfg.InputPath)
	if inputName == "" || inputName == "." {
		inputName = "stdin"
	}

	labels := make([]string, len(cfg.Selections))
	for i, s := range cfg.Selections {
		labels[i] = string(s)
	}
	selections := strings.Join(labels, ", ")

	// Line 1: The evaluation summary (Input and Selections)
	// Line 2: The baseline sizes in play
	sizes := cfg.ReferenceTable.Sizes()
	if cfg.UseEmojis {
		fmt.Printf("🔎 Input: %s (Selections: %s)\n", inputName, selections)
		fmt.Printf("📊 Baseline sizes: %v\n", sizes)
	} else {
		fmt.Printf("Input: %s (Selections: %s)\n", inputName, selections)
		fmt.Printf("Baseline sizes: %v\n", sizes)
	}
}

// minDetailWidth is the narrowest terminal that still fits the optional
// detail columns without wrapping table borders.
const minDetailWidth = 100

// getTerminalWidth resolves the effective output width. The explicit override
// wins, then the detected terminal size, then a conservative default for
// narrow terminals and CI.
func getTerminalWidth(cfg *contract.Config) int {
	if cfg.Width > 0 {
		return cfg.Width
	}
	detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || detectedWidth <= 0 {
		return 80
	}
	return detectedWidth
}

// showDetailColumns reports whether the optional detail columns are both
// requested and fit within the effective width.
func showDetailColumns(cfg *contract.Config) bool {
	return cfg.Detail && getTerminalWidth(cfg) >= minDetailWidth
}
