package core

import (
	"testing"

	"github.com/Nemesis2003/smartci-backend/schema"
	"github.com/stretchr/testify/assert"
)

func TestTotalTests(t *testing.T) {
	assert.Equal(t, 1000, TotalTests(0))
	assert.Equal(t, 1050, TotalTests(1))
	assert.Equal(t, 1950, TotalTests(19))
}

func TestSelectedTests_NoChanges(t *testing.T) {
	verdict := &schema.AnalysisVerdict{Success: true, Mode: schema.NoChangesMode}
	for index := range 20 {
		assert.Equal(t, 0, SelectedTests(verdict, index))
	}
}

func TestSelectedTests_FullRun(t *testing.T) {
	verdict := &schema.AnalysisVerdict{Success: true, Mode: schema.FullRunMode}
	assert.Equal(t, 1000, SelectedTests(verdict, 0))
	assert.Equal(t, 1500, SelectedTests(verdict, 10))
}

func TestSelectedTests_UnrecognizedModeBehavesAsFullRun(t *testing.T) {
	verdict := &schema.AnalysisVerdict{Success: true, Mode: "surprise_mode"}
	assert.Equal(t, TotalTests(3), SelectedTests(verdict, 3))
}

func TestSelectedTests_SmartSelection(t *testing.T) {
	t.Run("zero changed functions hits the floor", func(t *testing.T) {
		verdict := &schema.AnalysisVerdict{Success: true, Mode: schema.SmartSelectionMode}
		assert.Equal(t, 50, SelectedTests(verdict, 0))
	})

	t.Run("few functions still floored", func(t *testing.T) {
		verdict := &schema.AnalysisVerdict{
			Success: true,
			Mode:    schema.SmartSelectionMode,
			ChangedFunctions: map[string][]string{
				"a.go": {"One", "Two", "Three"},
			},
		}
		// 3 functions * 15 = 45, below the floor of 50.
		assert.Equal(t, 50, SelectedTests(verdict, 0))
	})

	t.Run("many functions scale linearly", func(t *testing.T) {
		verdict := &schema.AnalysisVerdict{
			Success: true,
			Mode:    schema.SmartSelectionMode,
			ChangedFunctions: map[string][]string{
				"a.go": {"One", "Two", "Three", "Four"},
				"b.go": {"Five", "Six"},
			},
		}
		assert.Equal(t, 90, SelectedTests(verdict, 0))
	})
}
