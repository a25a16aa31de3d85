package models

// Heat zone classification, ordered by severity
const (
	ZoneLow    = 0
	ZoneMedium = 1
	ZoneHigh   = 2
)

// Vegetation categories derived from NDVI
const (
	VegetationDense    = "Dense Vegetation"
	VegetationModerate = "Moderate Vegetation"
	VegetationSparse   = "Sparse Vegetation"
	VegetationBarren   = "Barren"
)

// VegetationCategories lists the fixed categories in display order
var VegetationCategories = []string{
	VegetationDense,
	VegetationModerate,
	VegetationSparse,
	VegetationBarren,
}

// Point represents a single Urban Heat Island sample point
type Point struct {
	Lat          float64 `json:"lat" db:"lat"`
	Lon          float64 `json:"lon" db:"lon"`
	LST          float64 `json:"lst" db:"lst"`                     // Land surface temperature (°C)
	NDVI         float64 `json:"ndvi" db:"ndvi"`                   // Vegetation index, range [-1, 1]
	UHIIntensity float64 `json:"uhi_intensity" db:"uhi_intensity"` // Delta vs. green baseline (°C)
	Timestamp    int64   `json:"timestamp" db:"timestamp"`         // Unix timestamp in seconds

	// Classification
	Zone       int    `json:"zone" db:"zone"` // 0=low, 1=medium, 2=high
	Vegetation string `json:"vegetation" db:"vegetation"`

	// Presentation fields
	Color          string `json:"color" db:"color"`
	Severity       string `json:"severity" db:"severity"`
	Priority       string `json:"priority" db:"priority"`
	Recommendation string `json:"recommendation" db:"recommendation"`
}

// VegetationCategory maps an NDVI value to one of the fixed categories
func VegetationCategory(ndvi float64) string {
	switch {
	case ndvi >= 0.5:
		return VegetationDense
	case ndvi >= 0.3:
		return VegetationModerate
	case ndvi >= 0.15:
		return VegetationSparse
	default:
		return VegetationBarren
	}
}

// ZonePresentation holds the display attributes assigned per heat zone
type ZonePresentation struct {
	Color          string
	Severity       string
	Priority       string
	Recommendation string
}

// zonePresentations indexes display attributes by zone value
var zonePresentations = map[int]ZonePresentation{
	ZoneLow: {
		Color:          "#4caf50",
		Severity:       "Low",
		Priority:       "Monitor",
		Recommendation: "Maintain existing green cover",
	},
	ZoneMedium: {
		Color:          "#ff9800",
		Severity:       "Medium",
		Priority:       "Moderate",
		Recommendation: "Cool pavements & urban parks",
	},
	ZoneHigh: {
		Color:          "#f44336",
		Severity:       "High",
		Priority:       "Urgent",
		Recommendation: "Tree plantation & green roofs",
	},
}

// PresentationForZone returns the display attributes for a zone value.
// Unknown zones fall back to the low-heat presentation.
func PresentationForZone(zone int) ZonePresentation {
	if p, ok := zonePresentations[zone]; ok {
		return p
	}
	return zonePresentations[ZoneLow]
}
