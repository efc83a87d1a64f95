package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Fixed budgets for VCS operations. Each is strictly smaller than the
// surrounding request deadline; a timeout here is fatal to the run.
const (
	// CloneDepth bounds how much history a shallow clone fetches.
	CloneDepth = 50

	// CloneTimeout bounds the shallow clone step.
	CloneTimeout = 120 * time.Second

	// LogTimeout bounds the commit-log retrieval step.
	LogTimeout = 10 * time.Second
)

// LocalGitClient implements the VCSClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ VCSClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Clone implements the VCSClient interface with a shallow, time-bounded clone.
func (c *LocalGitClient) Clone(ctx context.Context, url, dest string) error {
	cctx, cancel := context.WithTimeout(ctx, CloneTimeout)
	defer cancel()

	cmd := exec.CommandContext(cctx, "git", "clone", "--depth", strconv.Itoa(CloneDepth), url, dest)
	out, err := cmd.CombinedOutput()
	if err != nil {
		if errors.Is(cctx.Err(), context.DeadlineExceeded) {
			return fmt.Errorf("git clone timed out after %s", CloneTimeout)
		}
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			return fmt.Errorf("git clone failed: %w. Ensure Git is installed and available on your PATH", err)
		}
		return fmt.Errorf("git clone failed: %s", detail)
	}
	return nil
}

// ListCommits implements the VCSClient interface.
func (c *LocalGitClient) ListCommits(ctx context.Context, repoDir string, maxCount int) ([]string, error) {
	lctx, cancel := context.WithTimeout(ctx, LogTimeout)
	defer cancel()

	cmd := exec.CommandContext(lctx, "git", "-C", repoDir, "log", "--format=%H", "-n", strconv.Itoa(maxCount))
	out, err := cmd.Output()
	if err != nil {
		if errors.Is(lctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("git log timed out after %s", LogTimeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			return nil, fmt.Errorf("git log failed in %q: %s", repoDir, stderr)
		}
		return nil, fmt.Errorf("git log failed: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(out)), "\n")
	commits := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			commits = append(commits, trimmed)
		}
	}
	return commits, nil
}
