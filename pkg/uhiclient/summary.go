package uhiclient

import (
	"math"
	"sort"
)

// TopHotspotCount is the number of hotspots kept in a summary
const TopHotspotCount = 5

// HistogramBucket is one fixed temperature range and its point count
type HistogramBucket struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"` // Inclusive
	Max   float64 `json:"max"` // Exclusive; +Inf for the last bucket
	Count int     `json:"count"`
}

// temperatureRanges are the fixed histogram buckets in °C. Together they
// cover the whole real line, so every point lands in exactly one bucket.
var temperatureRanges = []HistogramBucket{
	{Label: "< 32°C", Min: math.Inf(-1), Max: 32},
	{Label: "32-35°C", Min: 32, Max: 35},
	{Label: "35-38°C", Min: 35, Max: 38},
	{Label: "38-41°C", Min: 38, Max: 41},
	{Label: ">= 41°C", Min: 41, Max: math.Inf(1)},
}

// Summary holds the aggregates the analytics panel renders
type Summary struct {
	TemperatureHistogram []HistogramBucket `json:"temperature_histogram"`
	VegetationCounts     map[string]int    `json:"vegetation_counts"`
	TopHotspots          []Point           `json:"top_hotspots"`
}

// Summarize computes the analytics panel aggregates from a point list:
// a fixed-bucket temperature histogram, a count per vegetation category,
// and the top hotspots by descending UHI intensity. Nil or empty input
// yields empty results.
func Summarize(points []Point) Summary {
	summary := Summary{
		TemperatureHistogram: make([]HistogramBucket, len(temperatureRanges)),
		VegetationCounts:     make(map[string]int),
	}
	copy(summary.TemperatureHistogram, temperatureRanges)

	for _, p := range points {
		for i := range summary.TemperatureHistogram {
			b := &summary.TemperatureHistogram[i]
			if p.LST >= b.Min && p.LST < b.Max {
				b.Count++
				break
			}
		}
		summary.VegetationCounts[p.Vegetation]++
	}

	summary.TopHotspots = topHotspots(points, TopHotspotCount)
	return summary
}

// topHotspots returns up to n points sorted by descending UHI intensity
func topHotspots(points []Point, n int) []Point {
	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].UHIIntensity > sorted[j].UHIIntensity
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
