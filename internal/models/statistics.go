package models

// ZoneCounts holds the number of sample points per heat zone
type ZoneCounts struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// Total returns the sum across all zones
func (z ZoneCounts) Total() int {
	return z.Low + z.Medium + z.High
}

// TemperatureStats summarizes land surface temperature across a sample set
type TemperatureStats struct {
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Avg    float64 `json:"avg"`
	StdDev float64 `json:"std_dev"`
}

// VegetationStats summarizes NDVI across a sample set
type VegetationStats struct {
	AvgNDVI    float64            `json:"avg_ndvi"`
	ByCategory map[string]float64 `json:"avg_ndvi_by_category"` // Mean NDVI per fixed category
}

// DateRange is the simulated observation window of a sample set
type DateRange struct {
	Start int64 `json:"start"` // Unix timestamp in seconds
	End   int64 `json:"end"`   // Unix timestamp in seconds
	Days  int   `json:"days"`
}

// BoundingBox is the spatial extent of a sample set
type BoundingBox struct {
	MinLat float64 `json:"min_lat"`
	MaxLat float64 `json:"max_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLon float64 `json:"max_lon"`
}

// Statistics is the aggregate summary returned alongside the point list
type Statistics struct {
	TotalPoints     int              `json:"total_points"`
	Zones           ZoneCounts       `json:"zones"`
	Temperature     TemperatureStats `json:"temperature"`
	Vegetation      VegetationStats  `json:"vegetation"`
	MaxUHIIntensity float64          `json:"max_uhi_intensity"`
	DateRange       DateRange        `json:"date_range"`
	Extent          BoundingBox      `json:"extent"`
}

// AnalyzeResponse is the wire envelope for GET /api/analyze/uhi
type AnalyzeResponse struct {
	Success    bool        `json:"success"`
	Data       []Point     `json:"data"`
	Statistics *Statistics `json:"statistics,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// ExportDocument is the downloadable JSON payload produced by the export feature
type ExportDocument struct {
	GeneratedAt int64         `json:"generated_at"` // Unix timestamp in seconds
	Params      AnalyzeParams `json:"params"`
	Data        []Point       `json:"data"`
	Statistics  *Statistics   `json:"statistics"`
}
