package contract

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/Nemesis2003/smartci-backend/schema"
)

// PairAnalysisTimeout bounds one analyzer invocation. It is strictly
// shorter than any surrounding request deadline so a stuck analyzer only
// costs one pair, never the run.
const PairAnalysisTimeout = 10 * time.Second

// DefaultAnalyzerCommand invokes the reference analyzer script.
var DefaultAnalyzerCommand = "python smart_ci.py"

// ExecPairAnalyzer implements the PairAnalyzer interface by invoking an
// external analyzer process and parsing its JSON verdict from stdout.
type ExecPairAnalyzer struct {
	// Command is the analyzer program plus any leading arguments,
	// e.g. ["python", "smart_ci.py"].
	Command []string

	// Timeout bounds each invocation. Zero means PairAnalysisTimeout.
	Timeout time.Duration
}

var _ PairAnalyzer = &ExecPairAnalyzer{} // Compile-time check

// NewExecPairAnalyzer creates an analyzer client from a command string,
// split on whitespace. An empty command falls back to the default.
func NewExecPairAnalyzer(command string) *ExecPairAnalyzer {
	if strings.TrimSpace(command) == "" {
		command = DefaultAnalyzerCommand
	}
	return &ExecPairAnalyzer{Command: strings.Fields(command)}
}

// Analyze implements the PairAnalyzer interface. Any failure (timeout,
// non-zero exit, empty output, malformed JSON) is returned as an error; the
// caller decides whether to skip the pair.
func (a *ExecPairAnalyzer) Analyze(ctx context.Context, repoDir, baseSHA, headSHA string) (*schema.AnalysisVerdict, error) {
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = PairAnalysisTimeout
	}
	actx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	args := append(append([]string{}, a.Command[1:]...),
		"analyze", "--repo", repoDir, "--base-sha", baseSHA, "--head-sha", headSHA)
	cmd := exec.CommandContext(actx, a.Command[0], args...)

	out, err := cmd.Output()
	if err != nil {
		if errors.Is(actx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("pair analysis timed out after %s", timeout)
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			stderr := strings.TrimSpace(string(exitErr.Stderr))
			return nil, fmt.Errorf("analyzer exited with %s: %s", exitErr.ProcessState, stderr)
		}
		return nil, fmt.Errorf("analyzer invocation failed: %w", err)
	}

	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil, errors.New("analyzer produced no output")
	}

	var verdict schema.AnalysisVerdict
	if err := json.Unmarshal([]byte(trimmed), &verdict); err != nil {
		return nil, fmt.Errorf("analyzer output is not valid JSON: %w", err)
	}
	return &verdict, nil
}
