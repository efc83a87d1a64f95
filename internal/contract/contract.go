// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import (
	"context"

	"github.com/Nemesis2003/smartci-backend/schema"
)

// VCSClient defines the version-control operations the pipeline depends on.
// This allows the estimation logic to be tested without a real git executable.
type VCSClient interface {
	// Clone produces a shallow clone of the repository at url inside dest.
	// dest must already exist and be empty.
	Clone(ctx context.Context, url, dest string) error

	// ListCommits returns up to maxCount commit hashes on the current
	// branch of the repository at repoDir, newest first.
	ListCommits(ctx context.Context, repoDir string, maxCount int) ([]string, error)
}

// PairAnalyzer defines the single capability of the external change
// analyzer: classify the diff between two commits. The core never depends
// on how the verdict is produced.
type PairAnalyzer interface {
	Analyze(ctx context.Context, repoDir, baseSHA, headSHA string) (*schema.AnalysisVerdict, error)
}

// RunStore defines the interface for recording completed estimation runs.
// Recording is write-only telemetry; it is never an input to an estimate.
type RunStore interface {
	// RecordRun persists one completed run and its per-pair detail rows.
	RecordRun(report *schema.EstimateReport, pairs []schema.AnalyzedPair) error

	// GetStatus returns status information about the run-history store.
	GetStatus() (schema.RunStatus, error)

	// GetAllRuns retrieves every recorded run.
	GetAllRuns() ([]schema.RunRecord, error)

	// GetAllRunPairs retrieves every recorded per-pair detail row.
	GetAllRunPairs() ([]schema.RunPairRecord, error)

	// Close closes the underlying connection.
	Close() error
}

// StoreManager defines the interface for accessing the run-history store.
// This allows the persistence layer to be mocked for testing.
type StoreManager interface {
	GetRunStore() RunStore
}
