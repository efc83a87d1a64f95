package core

import (
	"github.com/Nemesis2003/smartci-backend/schema"
)

// Synthetic workload constants. These feed the externally visible figures
// and must not drift.
const (
	baseTestCount      = 1000
	testCountStep      = 50
	minSelectedTests   = 50
	testsPerChangedFun = 15
)

// TotalTests returns the synthetic full-suite size for the pair at position
// index: 1000 + 50*index.
func TotalTests(index int) int {
	return baseTestCount + testCountStep*index
}

// SelectedTests maps a successful analyzer verdict to a simulated selected
// test count for the pair at the given position index:
//   - smart_selection: 15 tests per changed function, floored at 50
//   - no_changes: 0
//   - full_run or any unrecognized mode: the full synthetic suite
//
// An unrecognized mode never fails the pair; it behaves as full_run.
func SelectedTests(verdict *schema.AnalysisVerdict, index int) int {
	switch verdict.Mode {
	case schema.SmartSelectionMode:
		return max(minSelectedTests, testsPerChangedFun*verdict.CountChangedFunctions())
	case schema.NoChangesMode:
		return 0
	default:
		return TotalTests(index)
	}
}
