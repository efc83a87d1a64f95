package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		name   string
		amount int
		want   string
	}{
		{"zero", 0, "$0"},
		{"small", 42, "$42"},
		{"three digits", 999, "$999"},
		{"four digits", 1000, "$1,000"},
		{"six digits", 480769, "$480,769"},
		{"seven digits", 1234567, "$1,234,567"},
		{"negative", -4500, "-$4,500"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUSD(tt.amount))
		})
	}
}

func TestCountChangedFunctions(t *testing.T) {
	t.Run("nil map", func(t *testing.T) {
		v := AnalysisVerdict{Success: true, Mode: NoChangesMode}
		assert.Equal(t, 0, v.CountChangedFunctions())
	})

	t.Run("multiple files", func(t *testing.T) {
		v := AnalysisVerdict{
			Success: true,
			Mode:    SmartSelectionMode,
			ChangedFunctions: map[string][]string{
				"pkg/a.go": {"Alpha", "Beta"},
				"pkg/b.go": {"Gamma"},
				"pkg/c.go": {},
			},
		}
		assert.Equal(t, 3, v.CountChangedFunctions())
	})
}
