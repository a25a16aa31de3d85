package uhiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, requests *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/analyze/health", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})
	mux.HandleFunc("/api/analyze/uhi", func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(requests, 1)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(AnalyzeResult{
			Success: true,
			Data: []Point{
				{Lat: 20.31, Lon: 85.83, LST: 42.1, NDVI: 0.12, UHIIntensity: 6.3, Zone: 2, Vegetation: "Barren"},
				{Lat: 20.29, Lon: 85.81, LST: 31.4, NDVI: 0.61, UHIIntensity: -1.2, Zone: 0, Vegetation: "Dense Vegetation"},
			},
			Statistics: &Statistics{TotalPoints: 2, MaxUHIIntensity: 6.3},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHealth(t *testing.T) {
	var requests int32
	srv := newTestServer(t, &requests)

	client := New(srv.URL)
	assert.NoError(t, client.Health(context.Background()))
}

func TestHealthDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := New(srv.URL)
	assert.Error(t, client.Health(context.Background()))
}

func TestAnalyze(t *testing.T) {
	var requests int32
	srv := newTestServer(t, &requests)

	client := New(srv.URL)
	result, err := client.Analyze(context.Background(), Params{Points: 50, Days: 30})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Len(t, result.Data, 2)
	require.NotNil(t, result.Statistics)
	assert.Equal(t, 2, result.Statistics.TotalPoints)
}

func TestAnalyzeValidatesBeforeNetwork(t *testing.T) {
	var requests int32
	srv := newTestServer(t, &requests)
	client := New(srv.URL)

	invalid := []Params{
		{Points: 9, Days: 30},
		{Points: 501, Days: 30},
		{Points: 50, Days: 6},
		{Points: 50, Days: 91},
	}
	for _, params := range invalid {
		_, err := client.Analyze(context.Background(), params)
		assert.Error(t, err)
	}

	// No request left the client
	assert.EqualValues(t, 0, atomic.LoadInt32(&requests))

	// Boundary values pass validation and reach the server
	for _, params := range []Params{{Points: 10, Days: 7}, {Points: 500, Days: 90}} {
		_, err := client.Analyze(context.Background(), params)
		assert.NoError(t, err)
	}
	assert.EqualValues(t, 2, atomic.LoadInt32(&requests))
}

func TestAnalyzeBackendFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(AnalyzeResult{Success: false, Error: "model unavailable"})
	}))
	defer srv.Close()

	client := New(srv.URL)
	_, err := client.Analyze(context.Background(), Params{Points: 50, Days: 30})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model unavailable")
}

func TestExportToFile(t *testing.T) {
	var requests int32
	srv := newTestServer(t, &requests)
	client := New(srv.URL)

	path := filepath.Join(t.TempDir(), "export.json")
	params := Params{Points: 50, Days: 30}
	require.NoError(t, client.ExportToFile(context.Background(), params, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc ExportDocument
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, params, doc.Params)
	assert.Len(t, doc.Data, 2)
	require.NotNil(t, doc.Statistics)
	assert.NotZero(t, doc.GeneratedAt)
}
