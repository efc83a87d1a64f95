// Package parquet provides data structures and functions for exporting
// estimation run history to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/parquet-go/parquet-go"
)

// EstimateRun represents a single estimation run with its aggregate result.
// This struct maps to the smartci_runs database table.
type EstimateRun struct {
	// RunID is the unique identifier for this run
	RunID int64 `parquet:"run_id,snappy"`

	// RepoName is the owner/repo shorthand of the analyzed repository
	RepoName string `parquet:"repo_name,snappy"`

	// RepoURL is the full clone URL of the analyzed repository
	RepoURL string `parquet:"repo_url,snappy"`

	// StartedAt is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartedAt time.Time `parquet:"started_at,snappy"`

	// DurationMs is the wall-clock duration of the run in milliseconds
	DurationMs int64 `parquet:"duration_ms,snappy"`

	// CommitsAnalyzed is the number of commit pairs that produced metrics
	CommitsAnalyzed int32 `parquet:"commits_analyzed,snappy"`

	// AvgCurrentSeconds is the average baseline CI duration in seconds
	AvgCurrentSeconds int32 `parquet:"avg_current_seconds,snappy"`

	// AvgSmartSeconds is the average smart-selection CI duration in seconds
	AvgSmartSeconds int32 `parquet:"avg_smart_seconds,snappy"`

	// SavingsPercent is the estimated time savings percentage
	SavingsPercent int32 `parquet:"savings_percent,snappy"`

	// AvgTestsTotal is the average size of the full test suite
	AvgTestsTotal int32 `parquet:"avg_tests_total,snappy"`

	// AvgTestsSelected is the average number of tests selected per commit
	AvgTestsSelected int32 `parquet:"avg_tests_selected,snappy"`

	// MonthlySavingsUSD is the projected monthly dollar savings
	MonthlySavingsUSD int64 `parquet:"monthly_savings_usd,snappy"`
}

// EstimatePair represents the per-pair metrics for one analyzed commit pair.
// This struct maps to the smartci_run_pairs database table.
type EstimatePair struct {
	// RunID references the parent estimation run
	RunID int64 `parquet:"run_id,snappy"`

	// PairIndex is the 0-based position of the pair in analysis order
	PairIndex int32 `parquet:"pair_index,snappy"`

	// BaseSHA is the older commit of the pair
	BaseSHA string `parquet:"base_sha,snappy"`

	// HeadSHA is the newer commit of the pair
	HeadSHA string `parquet:"head_sha,snappy"`

	// BaselineSeconds is the simulated full-suite CI duration
	BaselineSeconds int32 `parquet:"baseline_seconds,snappy"`

	// SmartSeconds is the simulated smart-selection CI duration
	SmartSeconds int32 `parquet:"smart_seconds,snappy"`

	// TotalTests is the simulated full test suite size
	TotalTests int32 `parquet:"total_tests,snappy"`

	// SelectedTests is the number of tests chosen for this pair
	SelectedTests int32 `parquet:"selected_tests,snappy"`
}

// WriteRunsParquet writes a slice of EstimateRun structs to a Parquet file.
func WriteRunsParquet(data []EstimateRun, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EstimateRun struct tags
	writer := parquet.NewGenericWriter[EstimateRun](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunPairsParquet writes a slice of EstimatePair structs to a Parquet file.
func WriteRunPairsParquet(data []EstimatePair, outputPath string) error {
	// Create the output file
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Create a Parquet writer using struct schema inference
	// The schema is automatically derived from the EstimatePair struct tags
	writer := parquet.NewGenericWriter[EstimatePair](file)
	defer func() { _ = writer.Close() }()

	// Write all records to the file
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// ConvertRunRecords converts schema.RunRecord to EstimateRun for Parquet export.
func ConvertRunRecords(records []schema.RunRecord) []EstimateRun {
	result := make([]EstimateRun, len(records))
	for i, record := range records {
		result[i] = EstimateRun{
			RunID:             record.RunID,
			RepoName:          record.RepoName,
			RepoURL:           record.RepoURL,
			StartedAt:         record.StartedAt,
			DurationMs:        record.DurationMs,
			CommitsAnalyzed:   record.CommitsAnalyzed,
			AvgCurrentSeconds: record.AvgCurrentSeconds,
			AvgSmartSeconds:   record.AvgSmartSeconds,
			SavingsPercent:    record.SavingsPercent,
			AvgTestsTotal:     record.AvgTestsTotal,
			AvgTestsSelected:  record.AvgTestsSelected,
			MonthlySavingsUSD: record.MonthlySavingsUSD,
		}
	}
	return result
}

// ConvertRunPairRecords converts schema.RunPairRecord to EstimatePair for Parquet export.
func ConvertRunPairRecords(records []schema.RunPairRecord) []EstimatePair {
	result := make([]EstimatePair, len(records))
	for i, record := range records {
		result[i] = EstimatePair{
			RunID:           record.RunID,
			PairIndex:       record.PairIndex,
			BaseSHA:         record.BaseSHA,
			HeadSHA:         record.HeadSHA,
			BaselineSeconds: record.BaselineSeconds,
			SmartSeconds:    record.SmartSeconds,
			TotalTests:      record.TotalTests,
			SelectedTests:   record.SelectedTests,
		}
	}
	return result
}
