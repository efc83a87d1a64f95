package runstore

import (
	"errors"
	"fmt"

	"github.com/Nemesis2003/smartci-backend/internal/parquet"
)

// ExecuteRunsExport performs the actual export of run history to Parquet files.
func ExecuteRunsExport(outputFile string) error {
	// Validate that output file is specified
	if outputFile == "" {
		return errors.New("--output-file is required for export command")
	}

	// Get the run store
	store := Manager.GetRunStore()

	// Check if there's any data to export
	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get runs status: %w", err)
	}

	if status.TotalRuns == 0 {
		return errors.New("no run history found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total runs: %d\n", status.TotalRuns)
	fmt.Printf("Total pair records: %d\n", status.TableSizes[runPairsTable])

	// Retrieve all runs
	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve runs: %w", err)
	}

	// Retrieve all per-pair metrics
	runPairs, err := store.GetAllRunPairs()
	if err != nil {
		return fmt.Errorf("failed to retrieve run pairs: %w", err)
	}

	// Convert to Parquet format
	parquetRuns := parquet.ConvertRunRecords(runs)
	parquetPairs := parquet.ConvertRunPairRecords(runPairs)

	// Write runs to Parquet
	runsFile := outputFile + ".runs.parquet"
	if err := parquet.WriteRunsParquet(parquetRuns, runsFile); err != nil {
		return fmt.Errorf("failed to write runs: %w", err)
	}
	fmt.Printf("Exported %d runs to: %s\n", len(parquetRuns), runsFile)

	// Write per-pair metrics to Parquet
	pairsFile := outputFile + ".run_pairs.parquet"
	if err := parquet.WriteRunPairsParquet(parquetPairs, pairsFile); err != nil {
		return fmt.Errorf("failed to write run pairs: %w", err)
	}
	fmt.Printf("Exported %d pair records to: %s\n", len(parquetPairs), pairsFile)

	fmt.Println("\nExport complete! The Parquet files can be used with:")
	fmt.Println("  - Apache Spark")
	fmt.Println("  - Apache Arrow")
	fmt.Println("  - Pandas (via pyarrow)")
	fmt.Println("  - DuckDB")
	fmt.Println("  - Any other Parquet-compatible tool")

	return nil
}
