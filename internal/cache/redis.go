package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/debjganguly/uhi-backend-go/internal/models"
)

// RedisCache is an AnalysisCache backed by a Redis instance. Responses are
// stored as JSON so entries survive process restarts.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisCache connects to the given Redis address and verifies the
// connection before returning.
func NewRedisCache(addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{
		client: client,
		ttl:    ttl,
	}, nil
}

// Get returns a cached response. Redis errors and decode failures are
// logged and treated as misses.
func (c *RedisCache) Get(ctx context.Context, key string) (*models.AnalyzeResponse, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("redis get %s: %v", key, err)
		}
		return nil, false
	}

	var resp models.AnalyzeResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		log.Printf("redis decode %s: %v", key, err)
		return nil, false
	}
	return &resp, true
}

// Set stores a response with the configured TTL. Failures are logged,
// never surfaced.
func (c *RedisCache) Set(ctx context.Context, key string, resp *models.AnalyzeResponse) {
	raw, err := json.Marshal(resp)
	if err != nil {
		log.Printf("redis encode %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		log.Printf("redis set %s: %v", key, err)
	}
}
