package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  AnalyzeParams
		wantErr bool
	}{
		{"defaults", AnalyzeParams{Points: DefaultPoints, Days: DefaultDays}, false},
		{"min boundaries accepted", AnalyzeParams{Points: 10, Days: 7}, false},
		{"max boundaries accepted", AnalyzeParams{Points: 500, Days: 90}, false},
		{"points below min", AnalyzeParams{Points: 9, Days: 30}, true},
		{"points above max", AnalyzeParams{Points: 501, Days: 30}, true},
		{"days below min", AnalyzeParams{Points: 50, Days: 6}, true},
		{"days above max", AnalyzeParams{Points: 50, Days: 91}, true},
		{"negative points", AnalyzeParams{Points: -1, Days: 30}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAnalyzeParamsApplyDefaults(t *testing.T) {
	var params AnalyzeParams
	params.ApplyDefaults()

	assert.Equal(t, DefaultPoints, params.Points)
	assert.Equal(t, DefaultDays, params.Days)
	assert.NoError(t, params.Validate())

	// Explicit values survive
	params = AnalyzeParams{Points: 100, Days: 14}
	params.ApplyDefaults()
	assert.Equal(t, 100, params.Points)
	assert.Equal(t, 14, params.Days)
}

func TestCacheKey(t *testing.T) {
	a := AnalyzeParams{Points: 50, Days: 30}
	b := AnalyzeParams{Points: 50, Days: 30}
	c := AnalyzeParams{Points: 50, Days: 31}

	assert.Equal(t, a.CacheKey(), b.CacheKey())
	assert.NotEqual(t, a.CacheKey(), c.CacheKey())
}
