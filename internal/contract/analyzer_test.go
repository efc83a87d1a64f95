package contract

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExecPairAnalyzer_SplitsCommand(t *testing.T) {
	a := NewExecPairAnalyzer("python3 tools/ci_analyze.py")
	assert.Equal(t, []string{"python3", "tools/ci_analyze.py"}, a.Command)
}

func TestNewExecPairAnalyzer_EmptyUsesDefault(t *testing.T) {
	for _, command := range []string{"", "   "} {
		a := NewExecPairAnalyzer(command)
		assert.Equal(t, []string{"python", "smart_ci.py"}, a.Command)
	}
}

// writeAnalyzerScript writes a shell script standing in for the analyzer
// and returns the command string to invoke it.
func writeAnalyzerScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script fixtures require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "analyzer.sh")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return "/bin/sh " + path
}

func TestExecPairAnalyzer_ParsesVerdict(t *testing.T) {
	command := writeAnalyzerScript(t,
		`echo '{"success": true, "analysis_mode": "smart_selection", "changed_functions": {"a.go": ["One", "Two"]}}'`)
	a := NewExecPairAnalyzer(command)

	verdict, err := a.Analyze(context.Background(), "/tmp/repo", "base", "head")
	require.NoError(t, err)
	assert.True(t, verdict.Success)
	assert.Equal(t, schema.SmartSelectionMode, verdict.Mode)
	assert.Equal(t, 2, verdict.CountChangedFunctions())
}

func TestExecPairAnalyzer_NonZeroExit(t *testing.T) {
	command := writeAnalyzerScript(t, `echo "boom" >&2; exit 3`)
	a := NewExecPairAnalyzer(command)

	_, err := a.Analyze(context.Background(), "/tmp/repo", "base", "head")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
}

func TestExecPairAnalyzer_EmptyOutput(t *testing.T) {
	command := writeAnalyzerScript(t, `exit 0`)
	a := NewExecPairAnalyzer(command)

	_, err := a.Analyze(context.Background(), "/tmp/repo", "base", "head")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no output")
}

func TestExecPairAnalyzer_MalformedJSON(t *testing.T) {
	command := writeAnalyzerScript(t, `echo "not json"`)
	a := NewExecPairAnalyzer(command)

	_, err := a.Analyze(context.Background(), "/tmp/repo", "base", "head")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not valid JSON")
}

func TestExecPairAnalyzer_Timeout(t *testing.T) {
	command := writeAnalyzerScript(t, `sleep 5`)
	a := NewExecPairAnalyzer(command)
	a.Timeout = 50 * time.Millisecond

	start := time.Now()
	_, err := a.Analyze(context.Background(), "/tmp/repo", "base", "head")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 2*time.Second)
}
