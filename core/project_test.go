package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonthlySavingsUSD_RegressionPin(t *testing.T) {
	// 1200s saved/commit * 10 commits * 100 engineers * 20 days
	// = 24,000,000s = 6666.67h at $72.12/h.
	assert.Equal(t, 480769, MonthlySavingsUSD(1200, 0))
}

func TestMonthlySavingsUSD_NoDelta(t *testing.T) {
	assert.Equal(t, 0, MonthlySavingsUSD(1200, 1200))
}

func TestMonthlySavingsUSD_PartialDelta(t *testing.T) {
	// Half the pinned delta projects to half the pinned dollars (truncated).
	assert.Equal(t, 240384, MonthlySavingsUSD(1200, 600))
}
