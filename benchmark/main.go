// Package main provides a performance benchmarking tool for the pareval CLI.
// It generates synthetic frontier data sets of increasing scale, measures
// execution times across command types, treating the first tracked run as cold
// and averaging the rest as warm, and generates CSV output for performance
// analysis and documentation.
//
// Prerequisites:
// - pareval binary installed and available in PATH
//
// Usage: go run benchmark/main.go [work-dir]
//
//	work-dir: Directory to generate synthetic data sets in
package main

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// BenchmarkResult holds the result of a benchmark run (no-tracking average, cold run and average of warm runs).
type BenchmarkResult struct {
	DataSet     string
	Command     string
	NoTrackTime string
	ColdTime    string
	WarmTime    string
}

// BenchmarkConfig holds configuration for the benchmark run.
type BenchmarkConfig struct {
	WorkDir     string
	Timeout     time.Duration
	Workers     int
	NoTrackRuns int
	TrackRuns   int
	DataSets    map[string]DataSetSpec
}

// DataSetSpec describes one synthetic frontier data set.
type DataSetSpec struct {
	Sizes      []int
	Runs       int
	Population int
}

func main() {
	// Parse command line arguments
	if len(os.Args) != 2 {
		fmt.Printf("Usage: %s [work-dir]\n", os.Args[0])
		os.Exit(1)
	}
	workDir := os.Args[1]

	config := BenchmarkConfig{
		WorkDir:     workDir,
		Timeout:     5 * time.Minute,
		Workers:     14,
		NoTrackRuns: 3,
		TrackRuns:   4,
		DataSets: map[string]DataSetSpec{
			"small":  {Sizes: []int{250}, Runs: 5, Population: 100},
			"medium": {Sizes: []int{250, 500, 750, 1000}, Runs: 30, Population: 100},
			"large":  {Sizes: []int{250, 500, 750, 1000}, Runs: 100, Population: 500},
		},
	}

	if err := checkPrerequisites(); err != nil {
		fmt.Printf("Prerequisites check failed: %v\n", err)
		os.Exit(1)
	}

	// Clear tracked evaluations using pareval results clear
	fmt.Printf("Clearing tracked results...\n")
	clearCmd := exec.Command("pareval", "results", "clear", "--results-backend", "sqlite")
	if output, err := clearCmd.CombinedOutput(); err != nil {
		fmt.Printf("Warning: failed to clear results: %v\nOutput: %s\n", err, string(output))
	} else {
		fmt.Printf("Results cleared successfully\n")
	}

	dataFiles, err := generateDataSets(config)
	if err != nil {
		fmt.Printf("Failed to generate data sets: %v\n", err)
		os.Exit(1)
	}

	results := runBenchmarks(config, dataFiles)

	if err := saveResults(results); err != nil {
		fmt.Printf("Failed to save results: %v\n", err)
		os.Exit(1)
	}

	printSummary(results)
}

// checkPrerequisites verifies that the pareval binary exists.
func checkPrerequisites() error {
	if _, err := exec.LookPath("pareval"); err != nil {
		return fmt.Errorf("pareval binary not found in PATH")
	}
	return nil
}

// generateDataSets writes one synthetic frontier CSV per configured data set
// and returns the file path of each.
func generateDataSets(config BenchmarkConfig) (map[string]string, error) {
	if err := os.MkdirAll(config.WorkDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create work dir: %w", err)
	}

	rng := rand.New(rand.NewSource(42))
	files := make(map[string]string, len(config.DataSets))

	for name, spec := range config.DataSets {
		path := filepath.Join(config.WorkDir, fmt.Sprintf("frontier_%s.csv", name))
		if err := writeFrontierCSV(path, spec, rng); err != nil {
			return nil, fmt.Errorf("failed to write data set %s: %w", name, err)
		}
		files[name] = path
		fmt.Printf("Generated %s data set: %s\n", name, path)
	}

	return files, nil
}

// writeFrontierCSV emits rows in the optimizer's frontier format. Objective
// values stay within the valid profit range for each problem size.
func writeFrontierCSV(path string, spec DataSetSpec, rng *rand.Rand) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write([]string{"Size", "Selection", "Run", "Obj1", "Obj2", "Obj3"}); err != nil {
		return err
	}

	for _, size := range spec.Sizes {
		maxProfit := float64(size) * 100.0
		for _, selection := range []string{"roulette", "tournament"} {
			for run := 1; run <= spec.Runs; run++ {
				for range spec.Population {
					rec := []string{
						strconv.Itoa(size),
						selection,
						strconv.Itoa(run),
						strconv.FormatFloat(rng.Float64()*maxProfit, 'f', 2, 64),
						strconv.FormatFloat(rng.Float64()*maxProfit, 'f', 2, 64),
						strconv.FormatFloat(rng.Float64()*maxProfit, 'f', 2, 64),
					}
					if err := w.Write(rec); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}

// runBenchmarks executes all benchmark tests across configured data sets.
func runBenchmarks(config BenchmarkConfig, dataFiles map[string]string) []BenchmarkResult {
	var results []BenchmarkResult

	fmt.Printf("Starting benchmark: %d data sets, %v timeout, %d workers, no-tracking: %d runs, tracking: %d runs\n",
		len(config.DataSets), config.Timeout, config.Workers, config.NoTrackRuns, config.TrackRuns)

	for _, name := range []string{"small", "medium", "large"} {
		dataFile, ok := dataFiles[name]
		if !ok {
			continue
		}
		fmt.Printf("Benchmarking %s\n", name)

		// Full baseline comparison
		result := runBenchmarkSuite(config, name, dataFile, "evaluate", "baseline comparison")
		results = append(results, result)

		// Per-run ranking
		result = runBenchmarkSuite(config, name, dataFile, "runs", "per-run ranking")
		results = append(results, result)
	}

	return results
}

// runBenchmarkSuite runs both no-tracking and tracking benchmarks for a command.
func runBenchmarkSuite(config BenchmarkConfig, dataSet, dataFile, command, description string) BenchmarkResult {
	fmt.Printf("Running %s on %s\n", description, dataSet)

	// Helper to run a benchmark phase
	runPhase := func(backend string, numRuns int, phaseName string) (coldTime float64, avgTime string) {
		fmt.Printf("  %s phase (%d runs)\n", phaseName, numRuns)
		cold, times := runBenchmark(config, dataFile, command, backend, numRuns)
		if len(times) == 0 {
			avgTime = "TIMEOUT"
		} else {
			var sum float64
			for _, t := range times {
				sum += t
			}
			avg := sum / float64(len(times))
			avgTime = fmt.Sprintf("%.3fs", avg)
		}
		return cold, avgTime
	}

	// Phase 1: No-tracking runs
	_, noTrackAvg := runPhase("none", config.NoTrackRuns, "No-tracking")

	// Phase 2: Tracking runs
	coldTime, warmAvg := runPhase("sqlite", config.TrackRuns, "Tracking")

	coldTimeStr := "TIMEOUT"
	if coldTime > 0 {
		coldTimeStr = fmt.Sprintf("%.3fs", coldTime)
	}

	fmt.Printf("  No-tracking average: %s, Cold time: %s, Warm average: %s\n", noTrackAvg, coldTimeStr, warmAvg)

	return BenchmarkResult{
		DataSet:     dataSet,
		Command:     command,
		NoTrackTime: noTrackAvg,
		ColdTime:    coldTimeStr,
		WarmTime:    warmAvg,
	}
}

// runBenchmark executes a pareval command multiple times with the specified
// results backend and returns cold time and warm times.
func runBenchmark(config BenchmarkConfig, dataFile, command, backend string, numRuns int) (coldTime float64, warmTimes []float64) {
	args := []string{command, dataFile, "--results-backend", backend, "--workers", strconv.Itoa(config.Workers)}

	var times []float64
	for run := 1; run <= numRuns; run++ {
		start := time.Now()

		cmd := exec.Command("pareval", args...)

		done := make(chan bool)
		var output []byte
		var cmdErr error

		go func() {
			output, cmdErr = cmd.CombinedOutput()
			done <- true
		}()

		select {
		case <-done:
			if cmdErr == nil && isSuccess(output) {
				times = append(times, time.Since(start).Seconds())
			}
		case <-time.After(config.Timeout):
			// Timeout - don't add to times
		}
	}

	if len(times) > 0 {
		coldTime = times[0]
		warmTimes = times[1:]
	}
	return
}

// isSuccess checks if command output indicates successful completion.
func isSuccess(output []byte) bool {
	outputStr := string(output)
	return strings.Contains(outputStr, "Evaluation completed in") &&
		strings.Contains(outputStr, "workers")
}

// saveResults writes benchmark results to a timestamped CSV file.
func saveResults(results []BenchmarkResult) error {
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("/tmp/pareval_benchmark_%s.csv", timestamp)

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil {
			fmt.Printf("Warning: failed to close file %s: %v\n", filename, closeErr)
		}
	}()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	// Write header
	if err := writer.Write([]string{"data_set", "cmd", "no_track_avg", "cold_time", "warm_avg"}); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	// Write results
	for _, result := range results {
		if err := writer.Write([]string{result.DataSet, result.Command, result.NoTrackTime, result.ColdTime, result.WarmTime}); err != nil {
			return fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	fmt.Printf("Results saved to %s\n", filename)
	return nil
}

// printSummary displays the final benchmark results summary.
func printSummary(results []BenchmarkResult) {
	fmt.Printf("Benchmark complete\n")

	printCommandSummary(results, "evaluate", "Baseline Comparison:")
	printCommandSummary(results, "runs", "Per-run Ranking:")

	fmt.Printf("Benchmark script completed successfully\n")
}

// printCommandSummary displays results for a specific command type.
func printCommandSummary(results []BenchmarkResult, command, title string) {
	fmt.Printf("%s\n", title)
	for _, result := range results {
		if result.Command == command {
			fmt.Printf("  %-12s: No-tracking: %s, Cold: %s, Warm: %s\n", result.DataSet, result.NoTrackTime, result.ColdTime, result.WarmTime)
		}
	}
}
