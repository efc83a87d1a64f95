package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Nemesis2003/smartci-backend/core"
	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubEstimator returns a canned report or error.
type stubEstimator struct {
	report *schema.EstimateReport
	err    error
}

func (s *stubEstimator) Estimate(_ context.Context, _ string) (*schema.EstimateReport, error) {
	return s.report, s.err
}

func newTestRouter(est Estimator) *gin.Engine {
	return NewRouter(NewHandlers(est, time.Minute))
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandleAnalyze_Success(t *testing.T) {
	report := &schema.EstimateReport{
		RepoName: "acme/widgets",
		Aggregate: schema.AggregateResult{
			CommitsAnalyzed:   1,
			AvgCurrentSeconds: 1200,
			AvgSmartSeconds:   0,
			SavingsPercent:    100,
			AvgTestsTotal:     1000,
			AvgTestsSelected:  0,
		},
		MonthlySavingsUSD: 480769,
	}
	router := newTestRouter(&stubEstimator{report: report})

	w := doRequest(router, http.MethodPost, "/analyze", `{"repo_url": "https://github.com/acme/widgets"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AnalyzeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "acme/widgets", resp.RepoName)
	assert.Equal(t, 1200, resp.CurrentTime)
	assert.Equal(t, 0, resp.SmartTime)
	assert.Equal(t, 100, resp.SavingsPercent)
	assert.Equal(t, 1, resp.CommitsAnalyzed)
	assert.Equal(t, 1000, resp.TestsTotal)
	assert.Equal(t, "$480,769", resp.MonthlySavings)
}

func TestHandleAnalyze_MissingRepoURL(t *testing.T) {
	router := newTestRouter(&stubEstimator{})

	for _, body := range []string{"", "{}", `{"repo_url": ""}`, "not json"} {
		w := doRequest(router, http.MethodPost, "/analyze", body)
		assert.Equal(t, http.StatusBadRequest, w.Code, "body=%q", body)
	}
}

func TestHandleAnalyze_ClientFaultsMapTo400(t *testing.T) {
	for _, sentinel := range []error{
		core.ErrInvalidRepoURL,
		core.ErrCloneFailed,
		core.ErrInsufficientHistory,
		core.ErrNoPairsAnalyzed,
	} {
		router := newTestRouter(&stubEstimator{err: sentinel})
		w := doRequest(router, http.MethodPost, "/analyze", `{"repo_url": "https://github.com/acme/widgets"}`)
		require.Equal(t, http.StatusBadRequest, w.Code, sentinel)

		var resp ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Contains(t, resp.Error, sentinel.Error())
	}
}

func TestHandleAnalyze_TimeoutMapsTo408(t *testing.T) {
	router := newTestRouter(&stubEstimator{err: context.DeadlineExceeded})
	w := doRequest(router, http.MethodPost, "/analyze", `{"repo_url": "https://github.com/acme/widgets"}`)
	assert.Equal(t, http.StatusRequestTimeout, w.Code)
}

func TestHandleAnalyze_ClientCancelMapsTo499(t *testing.T) {
	router := newTestRouter(&stubEstimator{err: context.Canceled})
	w := doRequest(router, http.MethodPost, "/analyze", `{"repo_url": "https://github.com/acme/widgets"}`)
	assert.Equal(t, statusClientClosedRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "request canceled", resp.Error)
}

func TestHandleAnalyze_InternalErrorsAreGeneric(t *testing.T) {
	router := newTestRouter(&stubEstimator{err: assert.AnError})
	w := doRequest(router, http.MethodPost, "/analyze", `{"repo_url": "https://github.com/acme/widgets"}`)
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "internal server error", resp.Error)
	assert.NotContains(t, resp.Error, assert.AnError.Error())
}

func TestHandleRoot(t *testing.T) {
	router := newTestRouter(&stubEstimator{})
	w := doRequest(router, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "analyze")
}

func TestHandleHealth(t *testing.T) {
	router := newTestRouter(&stubEstimator{})
	w := doRequest(router, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status": "healthy"}`, w.Body.String())
}

func TestCORSHeadersAndPreflight(t *testing.T) {
	router := newTestRouter(&stubEstimator{})

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	w = doRequest(router, http.MethodOptions, "/analyze", "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(&stubEstimator{})

	w := doRequest(router, http.MethodGet, "/health", "")
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, "fixed-id", w.Header().Get(RequestIDHeader))
}
