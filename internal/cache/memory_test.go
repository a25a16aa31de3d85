package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/debjganguly/uhi-backend-go/internal/models"
)

func TestMemoryCacheRoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute)
	ctx := context.Background()

	_, ok := c.Get(ctx, "missing")
	assert.False(t, ok)

	resp := &models.AnalyzeResponse{
		Success: true,
		Data:    []models.Point{{Lat: 20.3, Lon: 85.8, LST: 38.5}},
	}
	c.Set(ctx, "analysis:p50:d30", resp)

	got, ok := c.Get(ctx, "analysis:p50:d30")
	require.True(t, ok)
	assert.Same(t, resp, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	c := NewMemoryCache(10 * time.Millisecond)
	ctx := context.Background()

	c.Set(ctx, "k", &models.AnalyzeResponse{Success: true})
	time.Sleep(30 * time.Millisecond)

	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
