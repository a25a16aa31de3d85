package repository

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debjganguly/uhi-backend-go/internal/database"
	"github.com/debjganguly/uhi-backend-go/internal/models"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "uhi-repo-test")
	if err != nil {
		panic(err)
	}

	if err := database.Init(database.Config{Path: filepath.Join(dir, "test.db")}); err != nil {
		panic(err)
	}

	code := m.Run()

	database.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func sampleRun() (models.AnalysisRun, []models.Point) {
	stats := &models.Statistics{
		TotalPoints:     2,
		Zones:           models.ZoneCounts{Low: 1, High: 1},
		MaxUHIIntensity: 5.2,
	}
	run := models.AnalysisRun{
		ID:              uuid.NewString(),
		Points:          50,
		Days:            30,
		TotalPoints:     2,
		MaxUHIIntensity: 5.2,
		Statistics:      stats,
		CreatedAt:       time.Now(),
	}
	points := []models.Point{
		{
			Lat: 20.31, Lon: 85.83, LST: 31.2, NDVI: 0.6, UHIIntensity: -2.1,
			Timestamp: time.Now().Unix(), Zone: models.ZoneLow,
			Vegetation: models.VegetationDense, Color: "#4caf50",
			Severity: "Low", Priority: "Monitor",
			Recommendation: "Maintain existing green cover",
		},
		{
			Lat: 20.29, Lon: 85.81, LST: 43.8, NDVI: 0.12, UHIIntensity: 5.2,
			Timestamp: time.Now().Unix(), Zone: models.ZoneHigh,
			Vegetation: models.VegetationBarren, Color: "#f44336",
			Severity: "High", Priority: "Urgent",
			Recommendation: "Tree plantation & green roofs",
		},
	}
	return run, points
}

func TestSaveAndGetRun(t *testing.T) {
	repo := NewRunRepository(database.GetDB())
	run, points := sampleRun()

	require.NoError(t, repo.Save(run, points))

	detail, err := repo.GetByID(run.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, run.ID, detail.ID)
	assert.Equal(t, run.Points, detail.Points)
	assert.Equal(t, run.Days, detail.Days)
	assert.Equal(t, run.MaxUHIIntensity, detail.MaxUHIIntensity)
	require.NotNil(t, detail.Statistics)
	assert.Equal(t, run.Statistics.Zones, detail.Statistics.Zones)

	require.Len(t, detail.Data, 2)
	assert.Equal(t, points[0].LST, detail.Data[0].LST)
	assert.Equal(t, points[1].Recommendation, detail.Data[1].Recommendation)
}

func TestGetMissingRun(t *testing.T) {
	repo := NewRunRepository(database.GetDB())

	detail, err := repo.GetByID("no-such-run")
	require.NoError(t, err)
	assert.Nil(t, detail)
}

func TestListRuns(t *testing.T) {
	repo := NewRunRepository(database.GetDB())

	run, points := sampleRun()
	require.NoError(t, repo.Save(run, points))

	runs, err := repo.List(100)
	require.NoError(t, err)
	require.NotEmpty(t, runs)

	found := false
	for _, r := range runs {
		if r.ID == run.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestDeleteRun(t *testing.T) {
	repo := NewRunRepository(database.GetDB())

	run, points := sampleRun()
	require.NoError(t, repo.Save(run, points))

	deleted, err := repo.Delete(run.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// Cascade removed the points as well
	detail, err := repo.GetByID(run.ID)
	require.NoError(t, err)
	assert.Nil(t, detail)

	deleted, err = repo.Delete(run.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
