// Package uhiclient is a Go client for the UHI analysis API. It carries the
// dashboard-side behaviors: parameter validation before any network call,
// JSON export of fetched results, and summary aggregation for analytics
// panels. Requests are terminal: there is no retry or backoff.
package uhiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

// Parameter bounds accepted by the analysis API
const (
	MinPoints = 10
	MaxPoints = 500
	MinDays   = 7
	MaxDays   = 90
)

const defaultTimeout = 10 * time.Second

// Params are the analysis request parameters
type Params struct {
	Points int `json:"points"`
	Days   int `json:"days"`
}

// Validate rejects out-of-range parameters before any network call.
// Boundary values are accepted.
func (p Params) Validate() error {
	if p.Points < MinPoints || p.Points > MaxPoints {
		return fmt.Errorf("points must be between %d and %d, got %d", MinPoints, MaxPoints, p.Points)
	}
	if p.Days < MinDays || p.Days > MaxDays {
		return fmt.Errorf("days must be between %d and %d, got %d", MinDays, MaxDays, p.Days)
	}
	return nil
}

// Point mirrors the wire shape of a UHI sample point
type Point struct {
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	LST            float64 `json:"lst"`
	NDVI           float64 `json:"ndvi"`
	UHIIntensity   float64 `json:"uhi_intensity"`
	Timestamp      int64   `json:"timestamp"`
	Zone           int     `json:"zone"`
	Vegetation     string  `json:"vegetation"`
	Color          string  `json:"color"`
	Severity       string  `json:"severity"`
	Priority       string  `json:"priority"`
	Recommendation string  `json:"recommendation"`
}

// Statistics mirrors the wire shape of the aggregate summary
type Statistics struct {
	TotalPoints int `json:"total_points"`
	Zones       struct {
		Low    int `json:"low"`
		Medium int `json:"medium"`
		High   int `json:"high"`
	} `json:"zones"`
	Temperature struct {
		Min    float64 `json:"min"`
		Max    float64 `json:"max"`
		Avg    float64 `json:"avg"`
		StdDev float64 `json:"std_dev"`
	} `json:"temperature"`
	Vegetation struct {
		AvgNDVI    float64            `json:"avg_ndvi"`
		ByCategory map[string]float64 `json:"avg_ndvi_by_category"`
	} `json:"vegetation"`
	MaxUHIIntensity float64 `json:"max_uhi_intensity"`
	DateRange       struct {
		Start int64 `json:"start"`
		End   int64 `json:"end"`
		Days  int   `json:"days"`
	} `json:"date_range"`
}

// AnalyzeResult is the API response envelope
type AnalyzeResult struct {
	Success    bool        `json:"success"`
	Data       []Point     `json:"data"`
	Statistics *Statistics `json:"statistics"`
	Error      string      `json:"error"`
}

// Client talks to a UHI analysis API instance
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for the given base URL, e.g. "http://localhost:8080"
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// Health checks whether the analysis service is up
func (c *Client) Health(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/analyze/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %s", resp.Status)
	}
	return nil
}

// Analyze fetches an analysis for the given parameters. Invalid parameters
// are rejected locally without touching the network.
func (c *Client) Analyze(ctx context.Context, params Params) (*AnalyzeResult, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	q := url.Values{}
	q.Set("points", strconv.Itoa(params.Points))
	q.Set("days", strconv.Itoa(params.Days))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.baseURL+"/api/analyze/uhi?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis request failed: %w", err)
	}
	defer resp.Body.Close()

	var result AnalyzeResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response (status %s): %w", resp.Status, err)
	}

	if !result.Success {
		msg := result.Error
		if msg == "" {
			msg = "status " + resp.Status
		}
		return nil, fmt.Errorf("analysis failed: %s", msg)
	}

	return &result, nil
}
