// Package outwriter has output and writer logic for estimation reports.
package outwriter

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Nemesis2003/smartci-backend/internal/contract"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// WriteReport outputs an estimation report, dispatching based on the output
// format configured.
func WriteReport(report *schema.EstimateReport, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := writeReportJSON(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
		return nil
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeReportTable(report, cfg, w)
		}, "Wrote table")
	}
}

// jsonReport mirrors the API response shape so CLI and HTTP consumers see
// the same field names.
type jsonReport struct {
	Success          bool   `json:"success"`
	RepoName         string `json:"repo_name"`
	RepoURL          string `json:"repo_url"`
	CurrentTime      int    `json:"current_time"`
	SmartTime        int    `json:"smart_time"`
	SavingsPercent   int    `json:"savings_percent"`
	SavingsLabel     string `json:"savings_label"`
	CommitsAnalyzed  int    `json:"commits_analyzed"`
	TestsTotal       int    `json:"tests_total"`
	TestsAvgSelected int    `json:"tests_avg_selected"`
	MonthlySavings   string `json:"monthly_savings"`
	DurationMs       int64  `json:"duration_ms"`
}

// writeReportJSON handles opening the file and calling the JSON writer.
func writeReportJSON(report *schema.EstimateReport, cfg *contract.Config) error {
	agg := report.Aggregate
	out := jsonReport{
		Success:          true,
		RepoName:         report.RepoName,
		RepoURL:          report.RepoURL,
		CurrentTime:      agg.AvgCurrentSeconds,
		SmartTime:        agg.AvgSmartSeconds,
		SavingsPercent:   agg.SavingsPercent,
		SavingsLabel:     contract.GetPlainLabel(agg.SavingsPercent),
		CommitsAnalyzed:  agg.CommitsAnalyzed,
		TestsTotal:       agg.AvgTestsTotal,
		TestsAvgSelected: agg.AvgTestsSelected,
		MonthlySavings:   schema.FormatUSD(report.MonthlySavingsUSD),
		DurationMs:       report.Duration.Milliseconds(),
	}
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, out)
	}, "Wrote JSON")
}

// writeReportTable generates and writes the human-readable table.
func writeReportTable(report *schema.EstimateReport, cfg *contract.Config, writer io.Writer) error {
	agg := report.Aggregate

	label := contract.GetPlainLabel(agg.SavingsPercent)
	if cfg.UseColors {
		label = contract.GetColorLabel(agg.SavingsPercent)
	}

	table := tablewriter.NewWriter(writer)
	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Repository", truncateValue(report.RepoName, getMaxValueWidth(cfg))},
		{"Commits analyzed", strconv.Itoa(agg.CommitsAnalyzed)},
		{"Current CI time", formatSeconds(agg.AvgCurrentSeconds)},
		{"Smart CI time", formatSeconds(agg.AvgSmartSeconds)},
		{"Savings", fmt.Sprintf("%d%% (%s)", agg.SavingsPercent, label)},
		{"Tests in suite (avg)", strconv.Itoa(agg.AvgTestsTotal)},
		{"Tests selected (avg)", strconv.Itoa(agg.AvgTestsSelected)},
		{"Monthly savings", schema.FormatUSD(report.MonthlySavingsUSD)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Analysis of %s completed in %v\n", report.RepoName, report.Duration.Round(time.Millisecond))
	return err
}

// formatSeconds renders a second count as "25m 30s" style text.
func formatSeconds(seconds int) string {
	d := time.Duration(seconds) * time.Second
	if d >= time.Minute {
		return fmt.Sprintf("%dm %02ds", int(d.Minutes()), seconds%60)
	}
	return fmt.Sprintf("%ds", seconds)
}

// getMaxValueWidth calculates the maximum width for the value column based
// on terminal width and table configuration.
func getMaxValueWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for the metric column plus borders and padding
	available := termWidth - 35
	if available < 15 {
		return 15
	}
	if available > 70 {
		return 70
	}
	return available
}

// truncateValue shortens a value with a leading ellipsis when it exceeds max.
func truncateValue(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[len(s)-max:]
	}
	return "..." + s[len(s)-(max-3):]
}
