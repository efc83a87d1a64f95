// Package schema defines the shared data types for SmartCI estimation runs.
package schema

import "time"

// CommitPair names two adjacent commits defining a diff window for analysis.
// Base is the direct chronological predecessor of Head in the walked window.
// Index is the 0-based position of the pair in analysis order; the synthetic
// workload formulas depend on it, so it travels with the pair instead of
// being re-derived from loop position.
type CommitPair struct {
	Head  string
	Base  string
	Index int
}

// AnalysisVerdict is the structured output of the external pair analyzer.
// ChangedFunctions maps file paths to the function names that changed between
// the two commits; it is only meaningful when Mode is SmartSelectionMode.
type AnalysisVerdict struct {
	Success          bool                `json:"success"`
	Mode             AnalysisMode        `json:"analysis_mode"`
	ChangedFunctions map[string][]string `json:"changed_functions"`
}

// CountChangedFunctions returns the total number of changed function names
// across all files in the verdict.
func (v *AnalysisVerdict) CountChangedFunctions() int {
	count := 0
	for _, fns := range v.ChangedFunctions {
		count += len(fns)
	}
	return count
}

// PairMetrics holds the simulated workload figures for one analyzed pair.
type PairMetrics struct {
	BaselineSeconds int `json:"baseline_seconds"`
	SmartSeconds    int `json:"smart_seconds"`
	TotalTests      int `json:"total_tests"`
	SelectedTests   int `json:"selected_tests"`
}

// AnalyzedPair couples a commit pair with the metrics it produced. Used for
// run-history telemetry; pairs that failed analysis never appear here.
type AnalyzedPair struct {
	Pair    CommitPair
	Metrics PairMetrics
}

// AggregateResult is the reduced summary across all analyzed pairs.
// All averages are integer-truncated.
type AggregateResult struct {
	CommitsAnalyzed   int `json:"commits_analyzed"`
	AvgCurrentSeconds int `json:"avg_current_seconds"`
	AvgSmartSeconds   int `json:"avg_smart_seconds"`
	SavingsPercent    int `json:"savings_percent"`
	AvgTestsTotal     int `json:"avg_tests_total"`
	AvgTestsSelected  int `json:"avg_tests_selected"`
}

// EstimateReport is the sole durable output of one pipeline run.
type EstimateReport struct {
	RepoName          string          `json:"repo_name"`
	RepoURL           string          `json:"repo_url"`
	StartedAt         time.Time       `json:"started_at"`
	Duration          time.Duration   `json:"duration"`
	Aggregate         AggregateResult `json:"aggregate"`
	MonthlySavingsUSD int             `json:"monthly_savings_usd"`
}

// RunStatus holds status information about the run-history store.
type RunStatus struct {
	Backend       string
	Connected     bool
	TotalRuns     int64
	LastRunID     int64
	LastRunTime   time.Time
	OldestRunTime time.Time
	TableSizes    map[string]int64
}

// RunRecord is one recorded estimation run, as stored in the run-history store.
type RunRecord struct {
	RunID             int64
	RepoName          string
	RepoURL           string
	StartedAt         time.Time
	DurationMs        int64
	CommitsAnalyzed   int32
	AvgCurrentSeconds int32
	AvgSmartSeconds   int32
	SavingsPercent    int32
	AvgTestsTotal     int32
	AvgTestsSelected  int32
	MonthlySavingsUSD int64
}

// RunPairRecord is the per-pair detail row for a recorded run.
type RunPairRecord struct {
	RunID           int64
	PairIndex       int32
	BaseSHA         string
	HeadSHA         string
	BaselineSeconds int32
	SmartSeconds    int32
	TotalTests      int32
	SelectedTests   int32
}
