// File: services/intelligence/interpretationCache.go
package ai

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"agrirent/models"

	"github.com/go-redis/redis/v8"
)

const interpretationPrefix = "ai:query:"

// InterpretationCache stores interpreter results in Redis so repeated
// queries skip the model call.
type InterpretationCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewInterpretationCache(client *redis.Client, ttl time.Duration) *InterpretationCache {
	return &InterpretationCache{client: client, ttl: ttl}
}

func cacheKey(query string) string {
	return interpretationPrefix + strings.ToLower(strings.TrimSpace(query))
}

func (c *InterpretationCache) Get(ctx context.Context, query string) (*models.QueryInterpretation, error) {
	data, err := c.client.Get(ctx, cacheKey(query)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var interpretation models.QueryInterpretation
	if err := json.Unmarshal([]byte(data), &interpretation); err != nil {
		return nil, err
	}
	return &interpretation, nil
}

func (c *InterpretationCache) Set(ctx context.Context, query string, interpretation *models.QueryInterpretation) error {
	b, err := json.Marshal(interpretation)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, cacheKey(query), b, c.ttl).Err()
}
