package contract

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
)

// Savings label constants.
const (
	MajorValue    = "Major"    // Most of the suite is skipped
	StrongValue   = "Strong"   // Substantial reduction
	ModerateValue = "Moderate" // Noticeable reduction
	MarginalValue = "Marginal" // Little to gain from selection
)

// Color variables for console output.
var (
	MajorColor    = color.New(color.FgGreen, color.Bold) // majorColor marks the best outcome.
	StrongColor   = color.New(color.FgCyan, color.Bold)  // strongColor marks a clear win.
	ModerateColor = color.New(color.FgYellow)            // moderateColor marks a partial win, not bold.
	MarginalColor = color.New(color.FgRed)               // marginalColor marks little benefit.
)

// GetPlainLabel returns a plain text label describing how large the
// estimated savings percentage is. This is the core logic used for JSON
// and table printing.
func GetPlainLabel(savingsPercent int) string {
	switch {
	case savingsPercent >= 80:
		return MajorValue
	case savingsPercent >= 50:
		return StrongValue
	case savingsPercent >= 20:
		return ModerateValue
	default:
		return MarginalValue
	}
}

// GetColorLabel returns a colored text label for console output (table).
// It uses GetPlainLabel to determine the string, and then applies the appropriate color.
func GetColorLabel(savingsPercent int) string {
	text := GetPlainLabel(savingsPercent)

	switch text {
	case MajorValue:
		return MajorColor.Sprint(text)
	case StrongValue:
		return StrongColor.Sprint(text)
	case ModerateValue:
		return ModerateColor.Sprint(text)
	default: // "Marginal"
		return MarginalColor.Sprint(text)
	}
}

// SelectOutputFile returns the appropriate file handle for output, based on
// the provided file path. It falls back to os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// GetRunsDBFilePath returns the path to the SQLite DB file for run-history storage.
func GetRunsDBFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".smartci_runs.db"
	}
	return filepath.Join(homeDir, ".smartci_runs.db")
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
