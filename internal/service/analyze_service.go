package service

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/debjganguly/uhi-backend-go/internal/cache"
	"github.com/debjganguly/uhi-backend-go/internal/cluster"
	"github.com/debjganguly/uhi-backend-go/internal/models"
	"github.com/debjganguly/uhi-backend-go/internal/sample"
	"github.com/debjganguly/uhi-backend-go/internal/spatial"
	"github.com/debjganguly/uhi-backend-go/internal/stats"
)

// RunStore persists completed analysis runs
type RunStore interface {
	Save(run models.AnalysisRun, points []models.Point) error
}

// AnalyzeService runs the analysis pipeline: sample generation, heat-zone
// clustering, per-point enrichment and aggregate statistics.
type AnalyzeService struct {
	generator *sample.Generator
	cache     cache.AnalysisCache
	runs      RunStore
	seed      int64
	now       func() time.Time
}

// NewAnalyzeService creates a new analyze service
func NewAnalyzeService(generator *sample.Generator, c cache.AnalysisCache, runs RunStore, seed int64) *AnalyzeService {
	return &AnalyzeService{
		generator: generator,
		cache:     c,
		runs:      runs,
		seed:      seed,
		now:       time.Now,
	}
}

// Analyze produces the full analysis response for validated parameters.
// Identical parameter pairs are served from cache within the TTL.
func (s *AnalyzeService) Analyze(ctx context.Context, params models.AnalyzeParams) (*models.AnalyzeResponse, error) {
	if cached, ok := s.cache.Get(ctx, params.CacheKey()); ok {
		return cached, nil
	}

	now := s.now()
	points := s.generator.Generate(params.Points, params.Days, now)
	if len(points) == 0 {
		return nil, fmt.Errorf("sample generation produced no points")
	}

	cluster.DetectHeatZones(points, s.seed)
	enrichPoints(points)
	statistics := buildStatistics(points, params)

	resp := &models.AnalyzeResponse{
		Success:    true,
		Data:       points,
		Statistics: statistics,
	}

	run := models.AnalysisRun{
		ID:              uuid.NewString(),
		Points:          params.Points,
		Days:            params.Days,
		TotalPoints:     statistics.TotalPoints,
		MaxUHIIntensity: statistics.MaxUHIIntensity,
		Statistics:      statistics,
		CreatedAt:       now,
	}
	if err := s.runs.Save(run, points); err != nil {
		// Persistence is history-keeping; the analysis itself is sound
		log.Printf("Failed to persist analysis run %s: %v", run.ID, err)
	}

	s.cache.Set(ctx, params.CacheKey(), resp)
	return resp, nil
}

// enrichPoints fills the derived and presentation fields on each point.
// UHI intensity is the delta against the green baseline: the mean LST of
// vegetated points (NDVI >= 0.3), falling back to the coolest zone, then
// to the overall mean.
func enrichPoints(points []models.Point) {
	for i := range points {
		points[i].Vegetation = models.VegetationCategory(points[i].NDVI)

		p := models.PresentationForZone(points[i].Zone)
		points[i].Color = p.Color
		points[i].Severity = p.Severity
		points[i].Priority = p.Priority
		points[i].Recommendation = p.Recommendation
	}

	baseline := greenBaseline(points)
	for i := range points {
		points[i].UHIIntensity = round2(points[i].LST - baseline)
	}
}

func greenBaseline(points []models.Point) float64 {
	var green []float64
	for _, p := range points {
		if p.NDVI >= 0.3 {
			green = append(green, p.LST)
		}
	}
	if len(green) > 0 {
		return stats.Mean(green)
	}

	var coolest []float64
	for _, p := range points {
		if p.Zone == models.ZoneLow {
			coolest = append(coolest, p.LST)
		}
	}
	if len(coolest) > 0 {
		return stats.Mean(coolest)
	}

	all := make([]float64, len(points))
	for i, p := range points {
		all[i] = p.LST
	}
	return stats.Mean(all)
}

func buildStatistics(points []models.Point, params models.AnalyzeParams) *models.Statistics {
	temps := make([]float64, len(points))
	intensities := make([]float64, len(points))
	ndvis := make([]float64, len(points))
	ndviByCategory := make(map[string][]float64)

	var zones models.ZoneCounts
	box := spatial.NewBoundingBox()
	minTS, maxTS := points[0].Timestamp, points[0].Timestamp

	for i, p := range points {
		temps[i] = p.LST
		intensities[i] = p.UHIIntensity
		ndvis[i] = p.NDVI
		ndviByCategory[p.Vegetation] = append(ndviByCategory[p.Vegetation], p.NDVI)

		switch p.Zone {
		case models.ZoneHigh:
			zones.High++
		case models.ZoneMedium:
			zones.Medium++
		default:
			zones.Low++
		}

		box.Extend(p.Lat, p.Lon)
		if p.Timestamp < minTS {
			minTS = p.Timestamp
		}
		if p.Timestamp > maxTS {
			maxTS = p.Timestamp
		}
	}

	byCategory := make(map[string]float64, len(models.VegetationCategories))
	for _, category := range models.VegetationCategories {
		if vals, ok := ndviByCategory[category]; ok {
			byCategory[category] = round2(stats.Mean(vals))
		}
	}

	return &models.Statistics{
		TotalPoints: len(points),
		Zones:       zones,
		Temperature: models.TemperatureStats{
			Min:    stats.Min(temps),
			Max:    stats.Max(temps),
			Avg:    round2(stats.Mean(temps)),
			StdDev: round2(stats.StdDev(temps)),
		},
		Vegetation: models.VegetationStats{
			AvgNDVI:    round2(stats.Mean(ndvis)),
			ByCategory: byCategory,
		},
		MaxUHIIntensity: stats.Max(intensities),
		DateRange: models.DateRange{
			Start: minTS,
			End:   maxTS,
			Days:  params.Days,
		},
		Extent: models.BoundingBox{
			MinLat: box.MinLat,
			MaxLat: box.MaxLat,
			MinLon: box.MinLon,
			MaxLon: box.MaxLon,
		},
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
