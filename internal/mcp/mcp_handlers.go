package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Nemesis2003/smartci-backend/internal/contract"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	est     Estimator
}

// estimateResult is the JSON payload returned by estimate_ci_savings.
type estimateResult struct {
	RepoName         string `json:"repo_name"`
	CurrentTime      int    `json:"current_time"`
	SmartTime        int    `json:"smart_time"`
	SavingsPercent   int    `json:"savings_percent"`
	SavingsLabel     string `json:"savings_label"`
	CommitsAnalyzed  int    `json:"commits_analyzed"`
	TestsTotal       int    `json:"tests_total"`
	TestsAvgSelected int    `json:"tests_avg_selected"`
	MonthlySavings   string `json:"monthly_savings"`
}

func (h *toolHandler) handleEstimateCISavings(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	repoURL := request.GetString("repo_url", "")
	if repoURL == "" {
		return mcp.NewToolResultError("repo_url is required"), nil
	}

	if h.baseCfg.RequestTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.baseCfg.RequestTimeout)
		defer cancel()
	}

	report, err := h.est.Estimate(ctx, repoURL)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("estimation failed: %v", err)), nil
	}

	agg := report.Aggregate
	result := estimateResult{
		RepoName:         report.RepoName,
		CurrentTime:      agg.AvgCurrentSeconds,
		SmartTime:        agg.AvgSmartSeconds,
		SavingsPercent:   agg.SavingsPercent,
		SavingsLabel:     contract.GetPlainLabel(agg.SavingsPercent),
		CommitsAnalyzed:  agg.CommitsAnalyzed,
		TestsTotal:       agg.AvgTestsTotal,
		TestsAvgSelected: agg.AvgTestsSelected,
		MonthlySavings:   schema.FormatUSD(report.MonthlySavingsUSD),
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
