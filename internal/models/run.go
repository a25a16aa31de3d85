package models

import "time"

// AnalysisRun represents a persisted analysis result
type AnalysisRun struct {
	ID string `json:"id" db:"id"` // UUID

	// Request parameters
	Points int `json:"points" db:"points"`
	Days   int `json:"days" db:"days"`

	// Summary
	TotalPoints     int     `json:"total_points" db:"total_points"`
	MaxUHIIntensity float64 `json:"max_uhi_intensity" db:"max_uhi_intensity"`

	// Full statistics, stored as JSON
	Statistics *Statistics `json:"statistics,omitempty"`

	// Metadata
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// AnalysisRunDetail is a run together with its sample points
type AnalysisRunDetail struct {
	AnalysisRun
	Data []Point `json:"data"`
}
