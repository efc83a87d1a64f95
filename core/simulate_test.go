package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBaselineSeconds(t *testing.T) {
	assert.Equal(t, 1200, BaselineSeconds(0))
	assert.Equal(t, 1230, BaselineSeconds(1))
	assert.Equal(t, 1770, BaselineSeconds(19))
}

func TestSimulatePair_FullSelection(t *testing.T) {
	m := SimulatePair(1000, 1000, 0)
	assert.Equal(t, 1200, m.BaselineSeconds)
	assert.Equal(t, 1200, m.SmartSeconds)
}

func TestSimulatePair_ZeroSelection(t *testing.T) {
	m := SimulatePair(1000, 0, 0)
	assert.Equal(t, 0, m.SmartSeconds)
}

func TestSimulatePair_ZeroTotalTests(t *testing.T) {
	// Guard against division by zero: ratio is 0 when total is 0.
	m := SimulatePair(0, 0, 0)
	assert.Equal(t, 0, m.SmartSeconds)
	assert.Equal(t, 1200, m.BaselineSeconds)
}

func TestSimulatePair_TruncatesTowardZero(t *testing.T) {
	// 1200 * 50 / 1000 = 60 exactly; 1230 * 51 / 1050 = 59.74 -> 59.
	assert.Equal(t, 60, SimulatePair(1000, 50, 0).SmartSeconds)
	assert.Equal(t, 59, SimulatePair(1050, 51, 1).SmartSeconds)
}

func TestSimulatePair_MonotonicInSelected(t *testing.T) {
	prev := -1
	for selected := 0; selected <= 1000; selected += 50 {
		m := SimulatePair(1000, selected, 5)
		assert.GreaterOrEqual(t, m.SmartSeconds, prev)
		assert.LessOrEqual(t, m.SmartSeconds, m.BaselineSeconds)
		prev = m.SmartSeconds
	}
}

func TestSimulatePair_Pure(t *testing.T) {
	first := SimulatePair(1100, 200, 2)
	second := SimulatePair(1100, 200, 2)
	assert.Equal(t, first, second)
}
