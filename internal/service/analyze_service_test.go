package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debjganguly/uhi-backend-go/internal/cache"
	"github.com/debjganguly/uhi-backend-go/internal/models"
	"github.com/debjganguly/uhi-backend-go/internal/sample"
)

// fakeRunStore records saved runs in memory
type fakeRunStore struct {
	runs   []models.AnalysisRun
	points [][]models.Point
}

func (f *fakeRunStore) Save(run models.AnalysisRun, points []models.Point) error {
	f.runs = append(f.runs, run)
	f.points = append(f.points, points)
	return nil
}

func newTestService(store *fakeRunStore) *AnalyzeService {
	generator := sample.NewGenerator(20.30, 85.82, 42)
	c := cache.NewMemoryCache(time.Minute)
	return NewAnalyzeService(generator, c, store, 42)
}

func TestAnalyzeResponseShape(t *testing.T) {
	store := &fakeRunStore{}
	svc := newTestService(store)
	params := models.AnalyzeParams{Points: 100, Days: 30}

	resp, err := svc.Analyze(context.Background(), params)
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.True(t, resp.Success)
	assert.Empty(t, resp.Error)
	assert.Len(t, resp.Data, 100)
	require.NotNil(t, resp.Statistics)
}

func TestAnalyzeStatisticsConsistency(t *testing.T) {
	svc := newTestService(&fakeRunStore{})
	params := models.AnalyzeParams{Points: 250, Days: 60}

	resp, err := svc.Analyze(context.Background(), params)
	require.NoError(t, err)
	stats := resp.Statistics

	// Zone counts sum to the total point count
	assert.Equal(t, 250, stats.TotalPoints)
	assert.Equal(t, 250, stats.Zones.Total())

	// Temperature bounds bracket the average
	assert.LessOrEqual(t, stats.Temperature.Min, stats.Temperature.Avg)
	assert.LessOrEqual(t, stats.Temperature.Avg, stats.Temperature.Max)
	assert.GreaterOrEqual(t, stats.Temperature.StdDev, 0.0)

	// Max UHI intensity matches the hottest point's delta
	var maxIntensity float64
	for i, p := range resp.Data {
		if i == 0 || p.UHIIntensity > maxIntensity {
			maxIntensity = p.UHIIntensity
		}
	}
	assert.Equal(t, maxIntensity, stats.MaxUHIIntensity)

	// Date range covers every timestamp and keeps the requested window
	assert.Equal(t, 60, stats.DateRange.Days)
	for _, p := range resp.Data {
		assert.GreaterOrEqual(t, p.Timestamp, stats.DateRange.Start)
		assert.LessOrEqual(t, p.Timestamp, stats.DateRange.End)
	}
}

func TestAnalyzeEnrichment(t *testing.T) {
	svc := newTestService(&fakeRunStore{})
	resp, err := svc.Analyze(context.Background(), models.AnalyzeParams{Points: 50, Days: 7})
	require.NoError(t, err)

	for _, p := range resp.Data {
		presentation := models.PresentationForZone(p.Zone)
		assert.Equal(t, presentation.Color, p.Color)
		assert.Equal(t, presentation.Severity, p.Severity)
		assert.Equal(t, presentation.Priority, p.Priority)
		assert.Equal(t, presentation.Recommendation, p.Recommendation)
		assert.Equal(t, models.VegetationCategory(p.NDVI), p.Vegetation)
	}
}

func TestAnalyzePersistsRun(t *testing.T) {
	store := &fakeRunStore{}
	svc := newTestService(store)

	_, err := svc.Analyze(context.Background(), models.AnalyzeParams{Points: 20, Days: 7})
	require.NoError(t, err)

	require.Len(t, store.runs, 1)
	run := store.runs[0]
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 20, run.Points)
	assert.Equal(t, 7, run.Days)
	assert.Equal(t, 20, run.TotalPoints)
	assert.Len(t, store.points[0], 20)
}

func TestAnalyzeServesFromCache(t *testing.T) {
	store := &fakeRunStore{}
	svc := newTestService(store)
	params := models.AnalyzeParams{Points: 30, Days: 14}

	first, err := svc.Analyze(context.Background(), params)
	require.NoError(t, err)
	second, err := svc.Analyze(context.Background(), params)
	require.NoError(t, err)

	// The second call is a cache hit: same response, no new run persisted
	assert.Same(t, first, second)
	assert.Len(t, store.runs, 1)
}

func TestGreenBaselineFallbacks(t *testing.T) {
	// Vegetated points present: baseline is their mean LST
	points := []models.Point{
		{LST: 30, NDVI: 0.6},
		{LST: 32, NDVI: 0.4},
		{LST: 44, NDVI: 0.1},
	}
	assert.InDelta(t, 31.0, greenBaseline(points), 1e-9)

	// No vegetated points, no low zone: overall mean
	barren := []models.Point{
		{LST: 40, NDVI: 0.1, Zone: models.ZoneHigh},
		{LST: 42, NDVI: 0.1, Zone: models.ZoneHigh},
	}
	assert.InDelta(t, 41.0, greenBaseline(barren), 1e-9)

	// No vegetated points, but a low zone exists: its mean wins
	mixed := []models.Point{
		{LST: 34, NDVI: 0.1, Zone: models.ZoneLow},
		{LST: 42, NDVI: 0.1, Zone: models.ZoneHigh},
	}
	assert.InDelta(t, 34.0, greenBaseline(mixed), 1e-9)
}
