package contract

import (
	"fmt"
	"runtime"
	"strconv"
	"strings"

	"github.com/huangsam/pareval/schema"
)

// Default values for configuration.
const (
	DefaultResultLimit = 25
	MaxResultLimit     = 1000
	DefaultPrecision   = 6
	MaxPrecision       = 10
	DefaultStride      = 10
	DefaultMinRatio    = 0.5
)

// DefaultWorkers is the default number of concurrent workers to use.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// ProfileConfig holds profiling settings.
type ProfileConfig struct {
	Enabled bool
	Prefix  string
}

// ProcessProfilingConfig handles the profiling flag and sets up profiling configuration.
func ProcessProfilingConfig(profile *ProfileConfig, profilePrefix string) error {
	if profilePrefix != "" {
		profile.Enabled = true
		profile.Prefix = profilePrefix
	}
	return nil
}

// ReferenceRawInput holds one reference table override from the YAML config
// file. All fields are optional; unset fields keep the published default.
type ReferenceRawInput struct {
	Min  *float64 `mapstructure:"min"`
	Max  *float64 `mapstructure:"max"`
	Mean *float64 `mapstructure:"mean"`
}

// Config holds the runtime configuration for the evaluation.
// This struct remains the "final, validated" config.
type Config struct {
	InputPath     string
	EvolutionPath string
	Selections    []schema.Selection
	ResultLimit   int
	Workers       int
	Precision     int
	Output        schema.OutputMode
	OutputFile    string
	Detail        bool
	Width         int // Terminal width override (0 = auto-detect)
	Stride        int
	MinRatio      float64

	ResultsBackend   schema.DatabaseBackend
	ResultsDBConnect string // Please use env var as this is plaintext

	// ReferenceTable is the baseline used for comparison: the published
	// defaults with any per-size overrides from the config file applied.
	ReferenceTable schema.ReferenceTable

	UseEmojis bool // Enable emojis in output headers
	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	InputPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Selection        string `mapstructure:"selection"`
	Limit            int    `mapstructure:"limit"`
	Workers          int    `mapstructure:"workers"`
	Precision        int    `mapstructure:"precision"`
	Output           string `mapstructure:"output"`
	OutputFile       string `mapstructure:"output-file"`
	Detail           bool   `mapstructure:"detail"`
	Width            int    `mapstructure:"width"`
	ResultsBackend   string `mapstructure:"results-backend"`
	ResultsDBConnect string `mapstructure:"results-db-connect"`
	Emoji            string `mapstructure:"emoji"`
	Color            string `mapstructure:"color"`

	// --- Fields from convergenceCmd.Flags() ---
	Evolution string `mapstructure:"evolution"`
	Stride    int    `mapstructure:"stride"`

	// --- Fields from checkCmd.Flags() ---
	MinRatio float64 `mapstructure:"min-ratio"`

	// --- Reference overrides from config file ---
	// Keys are problem sizes; viper hands them over as strings.
	Reference map[string]ReferenceRawInput `mapstructure:"reference"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	if c.Selections != nil {
		clone.Selections = make([]schema.Selection, len(c.Selections))
		copy(clone.Selections, c.Selections)
	}
	if c.ReferenceTable != nil {
		clone.ReferenceTable = c.ReferenceTable.Clone()
	}
	return &clone
}

// ProcessAndValidate converts the raw input into a validated Config.
func ProcessAndValidate(cfg *Config, input *ConfigRawInput) error {
	// All validation functions read from 'input' and populate 'cfg'.
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	if err := processSelections(cfg, input); err != nil {
		return err
	}
	if err := processReferenceOverrides(cfg, input); err != nil {
		return err
	}
	return nil
}

// ValidateDatabaseConnectionString validates the format of database connection strings
// for MySQL and PostgreSQL backends.
func ValidateDatabaseConnectionString(backend schema.DatabaseBackend, connStr string) error {
	switch backend {
	case schema.MySQLBackend:
		if connStr == "" {
			return fmt.Errorf("results-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "@tcp(") {
			return fmt.Errorf("MySQL connection string must contain '@tcp(' for host:port specification")
		}
		if !strings.Contains(connStr, "/") {
			return fmt.Errorf("MySQL connection string must contain '/' followed by database name")
		}
	case schema.PostgreSQLBackend:
		if connStr == "" {
			return fmt.Errorf("results-db-connect is required when using %s backend", backend)
		}
		if !strings.Contains(connStr, "host=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'host=' parameter")
		}
		if !strings.Contains(connStr, "dbname=") {
			return fmt.Errorf("PostgreSQL connection string must contain 'dbname=' parameter")
		}
	}
	return nil
}

// validateSimpleInputs processes and validates all non-selection fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.InputPath = input.InputPathStr
	cfg.EvolutionPath = input.Evolution
	cfg.OutputFile = input.OutputFile
	cfg.Detail = input.Detail
	cfg.Width = input.Width

	// Parse emoji flag
	emojis, err := ParseBoolString(input.Emoji)
	if err != nil {
		return fmt.Errorf("invalid --emoji value: %w", err)
	}
	cfg.UseEmojis = emojis

	// Parse color flag
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 1. ResultLimit Validation ---
	if input.Limit <= 0 || input.Limit > MaxResultLimit {
		return fmt.Errorf("limit must be greater than 0 and cannot exceed %d (received %d)", MaxResultLimit, input.Limit)
	}
	cfg.ResultLimit = input.Limit

	// --- 2. Workers Validation ---
	if input.Workers <= 0 {
		return fmt.Errorf("workers must be greater than 0 (received %d)", input.Workers)
	}
	cfg.Workers = input.Workers

	// --- 3. Precision and Output Validation ---
	if input.Precision < 1 || input.Precision > MaxPrecision {
		return fmt.Errorf("precision must be between 1 and %d (received %d)", MaxPrecision, input.Precision)
	}
	cfg.Precision = input.Precision

	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", cfg.Output)
	}

	// --- 4. Stride and MinRatio Validation ---
	if input.Stride <= 0 {
		return fmt.Errorf("stride must be greater than 0 (received %d)", input.Stride)
	}
	cfg.Stride = input.Stride

	if input.MinRatio <= 0 {
		return fmt.Errorf("min-ratio must be greater than 0 (received %g)", input.MinRatio)
	}
	cfg.MinRatio = input.MinRatio

	// --- 5. Backend Validation ---
	// An empty backend means result tracking is disabled entirely.
	cfg.ResultsBackend = schema.DatabaseBackend(strings.ToLower(input.ResultsBackend))
	if cfg.ResultsBackend != "" {
		if _, ok := schema.ValidDatabaseBackends[cfg.ResultsBackend]; !ok {
			return fmt.Errorf("invalid results backend '%s'. must be sqlite, mysql, postgresql, none", input.ResultsBackend)
		}
		cfg.ResultsDBConnect = input.ResultsDBConnect
		if err := ValidateDatabaseConnectionString(cfg.ResultsBackend, cfg.ResultsDBConnect); err != nil {
			return err
		}
	}

	return nil
}

// processSelections resolves the --selection flag into a validated slice.
// Aliases from the original Portuguese-labeled data sets are accepted; "all"
// expands to every known operator in canonical order.
func processSelections(cfg *Config, input *ConfigRawInput) error {
	raw := strings.ToLower(strings.TrimSpace(input.Selection))
	if raw == "" || raw == "all" {
		cfg.Selections = make([]schema.Selection, len(schema.AllSelections))
		copy(cfg.Selections, schema.AllSelections)
		return nil
	}

	seen := make(map[schema.Selection]struct{})
	for part := range strings.SplitSeq(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		selection, ok := schema.CanonicalSelection(part)
		if !ok {
			return fmt.Errorf("invalid selection '%s'. must be roulette, tournament or all", part)
		}
		if _, dup := seen[selection]; dup {
			continue
		}
		seen[selection] = struct{}{}
		cfg.Selections = append(cfg.Selections, selection)
	}
	if len(cfg.Selections) == 0 {
		return fmt.Errorf("no selection operators specified")
	}
	return nil
}

// processReferenceOverrides layers config-file overrides on top of the
// published baseline table. Overrides are per size and per field; a size not
// mentioned keeps its published row entirely, and a size absent from the
// published table must provide min, max and mean together.
func processReferenceOverrides(cfg *Config, input *ConfigRawInput) error {
	table := schema.DefaultReferenceTable.Clone()
	for sizeStr, raw := range input.Reference {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return fmt.Errorf("invalid reference override size %q", sizeStr)
		}
		stats, known := table[size]
		if !known && (raw.Min == nil || raw.Max == nil || raw.Mean == nil) {
			return fmt.Errorf("reference override for new size %d must set min, max and mean", size)
		}
		if raw.Min != nil {
			stats.Min = *raw.Min
		}
		if raw.Max != nil {
			stats.Max = *raw.Max
		}
		if raw.Mean != nil {
			stats.Mean = *raw.Mean
		}
		if stats.Min > stats.Mean || stats.Mean > stats.Max {
			return fmt.Errorf("reference override for size %d violates min <= mean <= max", size)
		}
		table[size] = stats
	}
	cfg.ReferenceTable = table
	return nil
}

// RevalidateSelections re-resolves a selection string on an already-validated
// config. Used by programmatic entry points that override selections per call.
func RevalidateSelections(cfg *Config, selectionStr string) error {
	cfg.Selections = nil
	return processSelections(cfg, &ConfigRawInput{Selection: selectionStr})
}

// ConfigParams flattens the config into a serializable parameter map for
// evaluation tracking.
func (c *Config) ConfigParams() map[string]any {
	selections := make([]string, len(c.Selections))
	for i, s := range c.Selections {
		selections[i] = string(s)
	}
	return map[string]any{
		"input":      c.InputPath,
		"selections": strings.Join(selections, ","),
		"workers":    c.Workers,
		"precision":  c.Precision,
		"output":     string(c.Output),
	}
}
