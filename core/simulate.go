package core

import (
	"github.com/Nemesis2003/smartci-backend/schema"
)

// Baseline runtime model constants.
const (
	baseBaselineSeconds = 1200
	baselineSecondsStep = 30
)

// BaselineSeconds returns the modeled full-suite runtime for the pair at
// position index: 1200 + 30*index seconds.
func BaselineSeconds(index int) int {
	return baseBaselineSeconds + baselineSecondsStep*index
}

// SimulatePair derives per-pair workload metrics from the selected and total
// test counts and the pair's position index. The smart runtime scales the
// baseline by the selection ratio, truncated toward zero. Pure function of
// its three inputs.
func SimulatePair(totalTests, selectedTests, index int) schema.PairMetrics {
	baseline := BaselineSeconds(index)

	smart := 0
	if totalTests > 0 {
		// Integer math: floor(baseline * selected / total) without
		// floating-point drift.
		smart = baseline * selectedTests / totalTests
	}

	return schema.PairMetrics{
		BaselineSeconds: baseline,
		SmartSeconds:    smart,
		TotalTests:      totalTests,
		SelectedTests:   selectedTests,
	}
}
