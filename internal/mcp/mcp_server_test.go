package mcp_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Nemesis2003/smartci-backend/internal/contract"
	mcp_internal "github.com/Nemesis2003/smartci-backend/internal/mcp"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEstimator returns a canned report or error.
type stubEstimator struct {
	report *schema.EstimateReport
	err    error
}

func (s *stubEstimator) Estimate(_ context.Context, _ string) (*schema.EstimateReport, error) {
	return s.report, s.err
}

func callEstimateTool(t *testing.T, est mcp_internal.Estimator, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(&contract.Config{}, est)

	tool := s.GetTool("estimate_ci_savings")
	require.NotNil(t, tool, "Tool estimate_ci_savings should exist")

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "estimate_ci_savings",
			Arguments: args,
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	return res
}

func TestEstimateCISavings_MissingRepoURL(t *testing.T) {
	res := callEstimateTool(t, &stubEstimator{}, map[string]any{
		"repo_url": "",
	})
	assert.True(t, res.IsError, "The response should indicate an error state")
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "repo_url is required")
}

func TestEstimateCISavings_EstimationFailure(t *testing.T) {
	res := callEstimateTool(t, &stubEstimator{err: errors.New("clone failed: remote hung up")}, map[string]any{
		"repo_url": "https://github.com/acme/widgets",
	})
	assert.True(t, res.IsError)
	assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "estimation failed")
}

func TestEstimateCISavings_Success(t *testing.T) {
	report := &schema.EstimateReport{
		RepoName: "acme/widgets",
		Aggregate: schema.AggregateResult{
			CommitsAnalyzed:   1,
			AvgCurrentSeconds: 1200,
			AvgSmartSeconds:   0,
			SavingsPercent:    100,
			AvgTestsTotal:     1000,
		},
		MonthlySavingsUSD: 480769,
	}

	res := callEstimateTool(t, &stubEstimator{report: report}, map[string]any{
		"repo_url": "https://github.com/acme/widgets",
	})
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"repo_name": "acme/widgets"`)
	assert.Contains(t, text, `"savings_percent": 100`)
	assert.Contains(t, text, `"monthly_savings": "$480,769"`)
	assert.Contains(t, text, `"savings_label": "Major"`)
}
