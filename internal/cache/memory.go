package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/debjganguly/uhi-backend-go/internal/models"
)

// MemoryCache is an in-process AnalysisCache backed by go-cache
type MemoryCache struct {
	store *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given TTL
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns a cached response if present and not expired
func (c *MemoryCache) Get(_ context.Context, key string) (*models.AnalyzeResponse, bool) {
	v, ok := c.store.Get(key)
	if !ok {
		return nil, false
	}
	resp, ok := v.(*models.AnalyzeResponse)
	return resp, ok
}

// Set stores a response under the default TTL
func (c *MemoryCache) Set(_ context.Context, key string, resp *models.AnalyzeResponse) {
	c.store.Set(key, resp, gocache.DefaultExpiration)
}
