// Package server exposes the estimation pipeline over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/Nemesis2003/smartci-backend/core"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/gin-gonic/gin"
)

// Estimator runs one repository estimation end to end.
type Estimator interface {
	Estimate(ctx context.Context, repoURL string) (*schema.EstimateReport, error)
}

// Handlers contains the HTTP handlers for the estimation API.
type Handlers struct {
	est     Estimator
	timeout time.Duration
}

// NewHandlers creates handlers backed by the given estimator. timeout bounds
// each analyze request; zero means no per-request deadline.
func NewHandlers(est Estimator, timeout time.Duration) *Handlers {
	return &Handlers{est: est, timeout: timeout}
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	RepoURL string `json:"repo_url" binding:"required"`
}

// AnalyzeResponse is the success body for POST /analyze.
type AnalyzeResponse struct {
	Success          bool   `json:"success"`
	RepoName         string `json:"repo_name"`
	CurrentTime      int    `json:"current_time"`
	SmartTime        int    `json:"smart_time"`
	SavingsPercent   int    `json:"savings_percent"`
	CommitsAnalyzed  int    `json:"commits_analyzed"`
	TestsTotal       int    `json:"tests_total"`
	TestsAvgSelected int    `json:"tests_avg_selected"`
	MonthlySavings   string `json:"monthly_savings"`
}

// ErrorResponse is the body returned for any failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HandleAnalyze handles POST /analyze. It validates the request, runs the
// estimation pipeline under the configured deadline, and maps pipeline
// errors onto HTTP status codes.
func (h *Handlers) HandleAnalyze(c *gin.Context) {
	logger := slog.With("request_id", getRequestID(c), "handler", "HandleAnalyze")

	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "repo_url is required"})
		return
	}

	ctx := c.Request.Context()
	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	report, err := h.est.Estimate(ctx, req.RepoURL)
	if err != nil {
		status, msg := classifyError(err)
		if status == http.StatusInternalServerError {
			logger.Error("estimation failed", "repo_url", req.RepoURL, "error", err)
		} else {
			logger.Warn("estimation rejected", "repo_url", req.RepoURL, "error", err)
		}
		c.JSON(status, ErrorResponse{Error: msg})
		return
	}

	agg := report.Aggregate
	c.JSON(http.StatusOK, AnalyzeResponse{
		Success:          true,
		RepoName:         report.RepoName,
		CurrentTime:      agg.AvgCurrentSeconds,
		SmartTime:        agg.AvgSmartSeconds,
		SavingsPercent:   agg.SavingsPercent,
		CommitsAnalyzed:  agg.CommitsAnalyzed,
		TestsTotal:       agg.AvgTestsTotal,
		TestsAvgSelected: agg.AvgTestsSelected,
		MonthlySavings:   schema.FormatUSD(report.MonthlySavingsUSD),
	})
}

// statusClientClosedRequest is the nginx convention for a request whose
// client disconnected before the response was written.
const statusClientClosedRequest = 499

// classifyError maps a pipeline error onto an HTTP status and a message
// safe to return to the caller. Internal failures get a generic message;
// the detail stays in the server log. Client disconnects are not server
// faults and are kept out of the error log.
func classifyError(err error) (int, string) {
	switch {
	case core.IsClientFault(err):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, "analysis timed out"
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, "request canceled"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleRoot handles GET /.
func (h *Handlers) HandleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"service": "SmartCI Savings Analyzer",
		"usage":   "POST /analyze with {\"repo_url\": \"https://github.com/owner/repo\"}",
	})
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}
