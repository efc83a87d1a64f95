package core

import (
	"github.com/Nemesis2003/smartci-backend/schema"
)

// Accumulator folds PairMetrics into running sums across the pair loop.
// Accumulation is commutative; the ordering sensitivity of the overall
// result comes from the position index feeding the per-pair formulas, not
// from the fold itself.
type Accumulator struct {
	baselineSum int
	smartSum    int
	totalSum    int
	selectedSum int
	count       int
}

// Add accumulates one analyzed pair's metrics.
func (a *Accumulator) Add(m schema.PairMetrics) {
	a.baselineSum += m.BaselineSeconds
	a.smartSum += m.SmartSeconds
	a.totalSum += m.TotalTests
	a.selectedSum += m.SelectedTests
	a.count++
}

// Count returns the number of pairs accumulated so far.
func (a *Accumulator) Count() int {
	return a.count
}

// Reduce collapses the sums into integer-truncated averages and the derived
// savings percentage. Returns ErrNoPairsAnalyzed when nothing was
// accumulated. The avg_current == 0 division guard cannot trigger under the
// baseline formula (always >= 1200) but is kept explicit.
func (a *Accumulator) Reduce() (schema.AggregateResult, error) {
	if a.count == 0 {
		return schema.AggregateResult{}, ErrNoPairsAnalyzed
	}

	avgCurrent := a.baselineSum / a.count
	avgSmart := a.smartSum / a.count

	savingsPercent := 0
	if avgCurrent > 0 {
		savingsPercent = 100 * (avgCurrent - avgSmart) / avgCurrent
	}

	return schema.AggregateResult{
		CommitsAnalyzed:   a.count,
		AvgCurrentSeconds: avgCurrent,
		AvgSmartSeconds:   avgSmart,
		SavingsPercent:    savingsPercent,
		AvgTestsTotal:     a.totalSum / a.count,
		AvgTestsSelected:  a.selectedSum / a.count,
	}, nil
}
