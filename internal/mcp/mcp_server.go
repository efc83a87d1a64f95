// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/Nemesis2003/smartci-backend/internal/contract"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Estimator runs one repository estimation end to end.
type Estimator interface {
	Estimate(ctx context.Context, repoURL string) (*schema.EstimateReport, error)
}

// NewMCPServer initializes and configures the SmartCI MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, est Estimator) *server.MCPServer {
	s := server.NewMCPServer(
		"SmartCI Savings Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		est:     est,
	}

	// --- 1. Tool: estimate_ci_savings ---
	s.AddTool(mcp.NewTool("estimate_ci_savings",
		mcp.WithDescription("Estimate CI time and cost savings from smart test selection for a GitHub repository."),
		mcp.WithString("repo_url", mcp.Description("HTTPS clone URL of the GitHub repository to analyze."), mcp.Required()),
	), h.handleEstimateCISavings)

	return s
}

// StartMCPServer starts the SmartCI MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, est Estimator) error {
	s := NewMCPServer(baseCfg, est)
	return server.ServeStdio(s)
}
