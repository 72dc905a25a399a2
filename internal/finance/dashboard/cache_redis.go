// Copyright (c) 2026 Quanto. All rights reserved.
// Author: dev@quanto.app

package dashboard

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/quantoapp/quanto/internal/platform/constants"
)

// RedisCache implements [Cache] on Redis with a fixed TTL.
//
// Cache failures are logged and otherwise ignored: the dashboard must keep
// working when Redis is down, just slower.
type RedisCache struct {
	client *redis.Client
	logger *slog.Logger
}

func NewRedisCache(client *redis.Client, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, logger: logger}
}

func (cache *RedisCache) Lookup(ctx context.Context, key string) (*Summary, bool) {
	payload, err := cache.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			cache.logger.Warn("dashboard_cache_lookup_failed", slog.String("error", err.Error()))
		}
		return nil, false
	}

	summary := &Summary{}
	if err := json.Unmarshal(payload, summary); err != nil {
		cache.logger.Warn("dashboard_cache_corrupt_entry", slog.String("key", key))
		return nil, false
	}

	return summary, true
}

func (cache *RedisCache) Store(ctx context.Context, key string, summary *Summary) {
	payload, err := json.Marshal(summary)
	if err != nil {
		return
	}

	if err := cache.client.Set(ctx, key, payload, constants.DashboardCacheTTL).Err(); err != nil {
		cache.logger.Warn("dashboard_cache_store_failed", slog.String("error", err.Error()))
	}
}
