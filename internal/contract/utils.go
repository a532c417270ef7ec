package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Verdict label constants for the baseline comparison.
const (
	AboveValue = "Above" // Computed mean beats the baseline mean
	ParValue   = "Par"   // Computed mean is within tolerance of the baseline
	BelowValue = "Below" // Computed mean trails the baseline mean
)

// VerdictTolerance is the absolute mean delta inside which a result counts
// as on par with the baseline.
const VerdictTolerance = 1e-3

// Color variables for console output.
var (
	AboveColor = color.New(color.FgGreen, color.Bold) // aboveColor represents a clear win over the baseline.
	ParColor   = color.New(color.FgYellow)            // parColor represents a statistical tie.
	BelowColor = color.New(color.FgRed, color.Bold)   // belowColor represents a clear loss to the baseline.
)

// GetPlainVerdict returns a plain text label for a mean delta against the
// baseline. This is the core logic used for CSV, JSON, and table printing.
func GetPlainVerdict(meanDelta float64) string {
	switch {
	case meanDelta > VerdictTolerance:
		return AboveValue
	case meanDelta < -VerdictTolerance:
		return BelowValue
	default:
		return ParValue
	}
}

// GetColorVerdict returns a colored text label for console output (table).
// It uses GetPlainVerdict to determine the string, and then applies the
// appropriate color.
func GetColorVerdict(meanDelta float64) string {
	text := GetPlainVerdict(meanDelta)

	switch text {
	case AboveValue:
		return AboveColor.Sprint(text)
	case BelowValue:
		return BelowColor.Sprint(text)
	default: // "Par"
		return ParColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetResultsDBFilePath returns the path to the SQLite DB file for result storage.
func GetResultsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".pareval_results.db"
	}
	return filepath.Join(homeDir, ".pareval_results.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
