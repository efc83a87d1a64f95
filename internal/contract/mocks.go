package contract

import (
	"context"

	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/stretchr/testify/mock"
)

// MockVCSClient is a testify mock for the VCSClient interface.
type MockVCSClient struct {
	mock.Mock
}

var _ VCSClient = &MockVCSClient{} // Compile-time check

// Clone mocks the VCSClient Clone method.
func (m *MockVCSClient) Clone(ctx context.Context, url, dest string) error {
	args := m.Called(ctx, url, dest)
	return args.Error(0)
}

// ListCommits mocks the VCSClient ListCommits method.
func (m *MockVCSClient) ListCommits(ctx context.Context, repoDir string, maxCount int) ([]string, error) {
	args := m.Called(ctx, repoDir, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockPairAnalyzer is a testify mock for the PairAnalyzer interface.
type MockPairAnalyzer struct {
	mock.Mock
}

var _ PairAnalyzer = &MockPairAnalyzer{} // Compile-time check

// Analyze mocks the PairAnalyzer Analyze method.
func (m *MockPairAnalyzer) Analyze(ctx context.Context, repoDir, baseSHA, headSHA string) (*schema.AnalysisVerdict, error) {
	args := m.Called(ctx, repoDir, baseSHA, headSHA)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*schema.AnalysisVerdict), args.Error(1)
}

// MockRunStore is a testify mock for the RunStore interface.
type MockRunStore struct {
	mock.Mock
}

var _ RunStore = &MockRunStore{} // Compile-time check

// RecordRun mocks the RunStore RecordRun method.
func (m *MockRunStore) RecordRun(report *schema.EstimateReport, pairs []schema.AnalyzedPair) error {
	args := m.Called(report, pairs)
	return args.Error(0)
}

// GetStatus mocks the RunStore GetStatus method.
func (m *MockRunStore) GetStatus() (schema.RunStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.RunStatus), args.Error(1)
}

// GetAllRuns mocks the RunStore GetAllRuns method.
func (m *MockRunStore) GetAllRuns() ([]schema.RunRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schema.RunRecord), args.Error(1)
}

// GetAllRunPairs mocks the RunStore GetAllRunPairs method.
func (m *MockRunStore) GetAllRunPairs() ([]schema.RunPairRecord, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]schema.RunPairRecord), args.Error(1)
}

// Close mocks the RunStore Close method.
func (m *MockRunStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
