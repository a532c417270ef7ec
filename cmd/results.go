package cmd

import (
	"fmt"

	"github.com/huangsam/pareval/internal/contract"
	"github.com/huangsam/pareval/internal/results"
	"github.com/huangsam/pareval/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// resultsSetup loads minimal configuration needed for results operations.
// This is used by commands that need store access without full shared setup.
func resultsSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get results-related config values
	backendStr := viper.GetString("results-backend")
	connStr := viper.GetString("results-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// Get output-related config values (used by export command)
	outputFile := viper.GetString("output-file")

	// Initialize the store with the loaded config
	if err := results.InitStores(backend, connStr); err != nil {
		return fmt.Errorf("failed to initialize result store: %w", err)
	}

	cfg.ResultsBackend = backend
	cfg.ResultsDBConnect = connStr
	cfg.OutputFile = outputFile

	return nil
}

// resultsSetupWrapper wraps resultsSetup to provide PreRunE for results commands.
func resultsSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsSetup()
}

// resultsMigrateSetup loads minimal configuration needed for migrate operations.
// This is a specialized setup that does NOT initialize stores or create tables,
// allowing migrations to run on a fresh database.
func resultsMigrateSetup() error {
	if err := loadConfigFile(); err != nil {
		return err
	}

	// Get results-related config values
	backendStr := viper.GetString("results-backend")
	connStr := viper.GetString("results-db-connect")

	// Handle empty backend as NoneBackend
	var backend schema.DatabaseBackend
	if backendStr == "" {
		backend = schema.NoneBackend
	} else {
		backend = schema.DatabaseBackend(backendStr)
	}

	// Basic validation for database backends
	if err := contract.ValidateDatabaseConnectionString(backend, connStr); err != nil {
		return err
	}

	// For SQLite backend with empty connection string, use default path
	if backend == schema.SQLiteBackend && connStr == "" {
		connStr = contract.GetResultsDBFilePath()
	}

	cfg.ResultsBackend = backend
	cfg.ResultsDBConnect = connStr

	return nil
}

// resultsMigrateSetupWrapper wraps resultsMigrateSetup to provide PreRunE for migrate command.
func resultsMigrateSetupWrapper(_ *cobra.Command, _ []string) error {
	return resultsMigrateSetup()
}

// resultsCmd focused on evaluation history management.
//
// Note: Results subcommands use minimal initialization (resultsSetup) instead of
// the full sharedSetup used by evaluation commands. This avoids input validation
// and complex config processing for simple store operations.
var resultsCmd = &cobra.Command{
	Use:   "results",
	Short: "Manage historical evaluation tracking and exports",
	Long: `Manage historical evaluation data used for trend tracking and reporting.

When enabled, pareval tracks every evaluation, storing:
- Evaluation metadata (timestamp, configuration, duration)
- Per-run hypervolume scores with front and population sizes

This enables longitudinal analysis of optimizer quality and data export for
BI tools.

Supported backends: SQLite (default), MySQL, PostgreSQL, or None (disabled)

Subcommands:
  status  - Show evaluation tracking statistics
  export  - Export data to Parquet for analytics
  clear   - Remove all tracking data
  migrate - Run database schema migrations

Examples:
  # Check tracking status
  pareval results status

  # Export for analysis in pandas/DuckDB
  pareval results export --output-file eval-data.parquet`,
}

// resultsClearCmd clears the stored evaluation data.
var resultsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all historical evaluation tracking data",
	Long: `Delete all stored evaluations and run score history.

WARNING: This action cannot be undone. Consider exporting data first.

Examples:
  # Export before clearing
  pareval results export --output-file backup.parquet
  pareval results clear`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := results.ClearResults(cfg.ResultsBackend, contract.GetResultsDBFilePath(), cfg.ResultsDBConnect); err != nil {
			contract.LogFatal("Failed to clear result data", err)
		}
		fmt.Println("Result data cleared successfully.")
	},
}

// resultsStatusCmd shows result store status.
var resultsStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display evaluation tracking statistics and connection details",
	Long: `Show detailed information about historical evaluation tracking.

Displays:
- Backend type and connection status
- Total number of evaluations stored
- Last and oldest evaluation timestamps
- Total runs scored across all evaluations
- Database table sizes

Examples:
  # Check evaluation tracking status
  pareval results status`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		status, err := results.Manager.GetResultStore().GetStatus()
		if err != nil {
			contract.LogFatal("Failed to get results status", err)
		}
		results.PrintResultsStatus(status)
	},
}

// resultsExportCmd exports evaluation data to Parquet files.
var resultsExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export historical data to Parquet for BI tools and analytics",
	Long: `Export all stored evaluation data to Parquet format for use with analytics tools.

Exports two datasets:
- Evaluations - metadata about each evaluation execution
- Run scores - per-run hypervolume scores across all evaluations

Requires: --output-file parameter

Examples:
  # Export all data
  pareval results export --output-file pareval-data.parquet

  # Use with DuckDB for analysis
  pareval results export --output-file data.parquet
  duckdb -c "SELECT * FROM read_parquet('data.parquet.run_scores.parquet') LIMIT 10"`,
	PreRunE: resultsSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := results.ExecuteResultsExport(cfg.OutputFile); err != nil {
			contract.LogFatal("Failed to export result data", err)
		}
	},
}

// resultsMigrateCmd runs database migrations for the result store.
var resultsMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database schema migrations (upgrades/downgrades)",
	Long: `Manage database schema versions for the evaluation tracking store.

By default, migrates to the latest version. Use --target-version for specific versions.

Examples:
  # Migrate to latest version (default)
  pareval results migrate

  # Migrate to specific version
  pareval results migrate --target-version 2

  # Rollback to previous version
  pareval results migrate --target-version 0`,
	PreRunE: resultsMigrateSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		targetVersion := viper.GetInt("target-version")
		if err := results.MigrateResults(cfg.ResultsBackend, cfg.ResultsDBConnect, targetVersion); err != nil {
			contract.LogFatal("Failed to run migrations", err)
		}
	},
}
