package models

import "fmt"

// Parameter bounds for an analysis request
const (
	MinPoints = 10
	MaxPoints = 500
	MinDays   = 7
	MaxDays   = 90

	DefaultPoints = 50
	DefaultDays   = 30
)

// AnalyzeParams represents query parameters for an analysis request
type AnalyzeParams struct {
	Points int `form:"points" json:"points"` // Number of sample points [10, 500]
	Days   int `form:"days" json:"days"`     // Observation window in days [7, 90]
}

// ApplyDefaults fills zero-valued parameters with their defaults
func (p *AnalyzeParams) ApplyDefaults() {
	if p.Points == 0 {
		p.Points = DefaultPoints
	}
	if p.Days == 0 {
		p.Days = DefaultDays
	}
}

// Validate checks the parameters against the accepted ranges.
// Boundary values are accepted.
func (p AnalyzeParams) Validate() error {
	if p.Points < MinPoints || p.Points > MaxPoints {
		return fmt.Errorf("points must be between %d and %d, got %d", MinPoints, MaxPoints, p.Points)
	}
	if p.Days < MinDays || p.Days > MaxDays {
		return fmt.Errorf("days must be between %d and %d, got %d", MinDays, MaxDays, p.Days)
	}
	return nil
}

// CacheKey returns a stable key identifying this parameter pair
func (p AnalyzeParams) CacheKey() string {
	return fmt.Sprintf("analysis:p%d:d%d", p.Points, p.Days)
}
