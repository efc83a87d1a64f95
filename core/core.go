// Package core implements the commit-window analysis and aggregation
// pipeline: walk a bounded window of recent commits, drive a per-pair
// analysis with strict timeouts and failure isolation, simulate
// test-selection metrics from each verdict, and reduce everything into a
// savings estimate.
package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/Nemesis2003/smartci-backend/internal/contract"
	"github.com/Nemesis2003/smartci-backend/schema"
)

// RepoHostMarker identifies a URL as a supported repository reference.
// Anything without it is rejected before any resource is acquired.
const RepoHostMarker = "github.com"

// Pipeline sequences one estimation run end to end. Each call to Estimate
// owns its own temporary workspace; a Pipeline is safe for concurrent use
// as long as its collaborators are.
type Pipeline struct {
	VCS      contract.VCSClient
	Analyzer contract.PairAnalyzer

	// Runs, when non-nil, receives write-only telemetry about completed
	// runs. Store failures are logged and never fail an estimate.
	Runs contract.RunStore

	// WorkspaceRoot is the parent directory for clone workspaces.
	// Empty means the system temp directory.
	WorkspaceRoot string

	Logger *slog.Logger
}

// NewPipeline creates a pipeline with the given collaborators.
func NewPipeline(vcs contract.VCSClient, analyzer contract.PairAnalyzer) *Pipeline {
	return &Pipeline{VCS: vcs, Analyzer: analyzer}
}

// ParseRepoName validates a repository URL and extracts its "owner/repo"
// name. The URL must carry the repository host marker; a trailing ".git"
// suffix and trailing slashes are tolerated.
func ParseRepoName(repoURL string) (string, error) {
	trimmed := strings.TrimSpace(repoURL)
	if trimmed == "" {
		return "", fmt.Errorf("%w: empty URL", ErrInvalidRepoURL)
	}
	if !strings.Contains(trimmed, RepoHostMarker) {
		return "", fmt.Errorf("%w: %q does not reference %s", ErrInvalidRepoURL, repoURL, RepoHostMarker)
	}

	var path string
	if !strings.Contains(trimmed, "://") && strings.Contains(trimmed, "@") {
		// scp-style remote (git@github.com:owner/repo.git) has no scheme
		// and fails URL parsing; the path follows the colon.
		i := strings.Index(trimmed, ":")
		if i < 0 {
			return "", fmt.Errorf("%w: %q has no owner/repo path", ErrInvalidRepoURL, repoURL)
		}
		path = trimmed[i+1:]
	} else {
		u, err := url.Parse(trimmed)
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrInvalidRepoURL, err)
		}
		path = u.Path
	}

	path = strings.TrimSuffix(strings.Trim(path, "/"), ".git")
	segments := strings.Split(path, "/")
	if len(segments) < 2 || segments[len(segments)-1] == "" || segments[len(segments)-2] == "" {
		return "", fmt.Errorf("%w: %q has no owner/repo path", ErrInvalidRepoURL, repoURL)
	}
	return segments[len(segments)-2] + "/" + segments[len(segments)-1], nil
}

// Estimate runs the full pipeline for one repository URL: validate, clone
// into an isolated workspace, walk the commit window, analyze each pair
// with failure isolation, aggregate, and project monthly savings.
//
// The workspace is removed on every exit path; cleanup failures are logged,
// never propagated. Context errors are returned unwrapped so callers can
// distinguish an overall timeout from a pipeline failure.
func (p *Pipeline) Estimate(ctx context.Context, repoURL string) (*schema.EstimateReport, error) {
	logger := p.logger().With("repo_url", repoURL)
	startedAt := time.Now()

	repoName, err := ParseRepoName(repoURL)
	if err != nil {
		return nil, err
	}

	workspace, err := p.acquireWorkspace(repoName)
	if err != nil {
		return nil, fmt.Errorf("failed to acquire workspace: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(workspace); rmErr != nil {
			logger.Warn("workspace cleanup failed", "workspace", workspace, "error", rmErr)
		}
	}()

	if err := p.VCS.Clone(ctx, repoURL, workspace); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("%w: %v", ErrCloneFailed, err)
	}

	commits, err := p.VCS.ListCommits(ctx, workspace, CommitWindow)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, fmt.Errorf("failed to read commit history: %w", err)
	}
	if len(commits) < 2 {
		return nil, fmt.Errorf("%w: found %d commit(s), need at least 2", ErrInsufficientHistory, len(commits))
	}

	pairs := BuildCommitPairs(commits)
	acc := &Accumulator{}
	analyzed := make([]schema.AnalyzedPair, 0, len(pairs))

	for _, pair := range pairs {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		verdict, err := p.Analyzer.Analyze(ctx, workspace, pair.Base, pair.Head)
		if err != nil {
			logger.Warn("pair analysis skipped", "index", pair.Index, "head", pair.Head, "error", err)
			continue
		}
		if !verdict.Success {
			logger.Warn("pair analysis reported failure", "index", pair.Index, "head", pair.Head)
			continue
		}

		total := TotalTests(pair.Index)
		selected := SelectedTests(verdict, pair.Index)
		metrics := SimulatePair(total, selected, pair.Index)

		acc.Add(metrics)
		analyzed = append(analyzed, schema.AnalyzedPair{Pair: pair, Metrics: metrics})
	}

	agg, err := acc.Reduce()
	if err != nil {
		return nil, err
	}

	report := &schema.EstimateReport{
		RepoName:          repoName,
		RepoURL:           repoURL,
		StartedAt:         startedAt,
		Duration:          time.Since(startedAt),
		Aggregate:         agg,
		MonthlySavingsUSD: MonthlySavingsUSD(agg.AvgCurrentSeconds, agg.AvgSmartSeconds),
	}

	p.recordRun(logger, report, analyzed)
	logger.Info("estimation complete",
		"repo", repoName,
		"commits_analyzed", agg.CommitsAnalyzed,
		"savings_percent", agg.SavingsPercent,
		"monthly_savings_usd", report.MonthlySavingsUSD)
	return report, nil
}

// acquireWorkspace creates a uniquely-named, isolated temp directory for
// the clone. Concurrent runs never collide: uniqueness comes from the
// random suffix, the name prefix just keeps directories attributable.
func (p *Pipeline) acquireWorkspace(repoName string) (string, error) {
	prefix := "smartci_" + strings.ReplaceAll(repoName, "/", "_") + "_"
	return os.MkdirTemp(p.WorkspaceRoot, prefix)
}

// recordRun hands completed-run telemetry to the run store, if configured.
func (p *Pipeline) recordRun(logger *slog.Logger, report *schema.EstimateReport, pairs []schema.AnalyzedPair) {
	if p.Runs == nil {
		return
	}
	if err := p.Runs.RecordRun(report, pairs); err != nil {
		logger.Warn("failed to record run history", "error", err)
	}
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return slog.Default()
}

// IsClientFault reports whether err belongs to the error classes caused by
// the request rather than the service.
func IsClientFault(err error) bool {
	return errors.Is(err, ErrInvalidRepoURL) ||
		errors.Is(err, ErrCloneFailed) ||
		errors.Is(err, ErrInsufficientHistory) ||
		errors.Is(err, ErrNoPairsAnalyzed)
}
