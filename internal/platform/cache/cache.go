// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package cache provides the read-through cache used by catalog services.
//
// # Architecture
//
// Services depend on the [Cache] interface. The Redis implementation stores
// JSON-encoded values; [Noop] is used when no REDIS_URL is configured so the
// service code never branches on cache availability.
//
// Cache failures are never fatal: a read error is treated as a miss and a
// write error is logged and dropped.
package cache

import (
	stdctx "context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache stores JSON-serializable values under string keys.
type Cache interface {

	// Get decodes the cached value for key into target.
	// Returns false on a miss or on any backend failure.
	Get(context stdctx.Context, key string, target any) bool

	// Set stores value under key for the configured TTL.
	Set(context stdctx.Context, key string, value any)

	// Delete removes the given keys. Missing keys are ignored.
	Delete(context stdctx.Context, keys ...string)
}

// # Redis

// RedisCache implements [Cache] on top of a go-redis client.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedis wraps client with the given entry TTL.
func NewRedis(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisCache {
	return &RedisCache{client: client, ttl: ttl, logger: logger}
}

// Get implements [Cache].
func (cache *RedisCache) Get(context stdctx.Context, key string, target any) bool {
	raw, err := cache.client.Get(context, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			cache.logger.WarnContext(context, "cache_read_failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}

	if err := json.Unmarshal(raw, target); err != nil {
		cache.logger.WarnContext(context, "cache_decode_failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

// Set implements [Cache].
func (cache *RedisCache) Set(context stdctx.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		cache.logger.WarnContext(context, "cache_encode_failed", slog.String("key", key), slog.Any("error", err))
		return
	}

	if err := cache.client.Set(context, key, raw, cache.ttl).Err(); err != nil {
		cache.logger.WarnContext(context, "cache_write_failed", slog.String("key", key), slog.Any("error", err))
	}
}

// Delete implements [Cache].
func (cache *RedisCache) Delete(context stdctx.Context, keys ...string) {
	if len(keys) == 0 {
		return
	}
	if err := cache.client.Del(context, keys...).Err(); err != nil {
		cache.logger.WarnContext(context, "cache_invalidate_failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

// # No-op

// Noop is a [Cache] that never stores anything.
type Noop struct{}

func (Noop) Get(stdctx.Context, string, any) bool { return false }
func (Noop) Set(stdctx.Context, string, any)      {}
func (Noop) Delete(stdctx.Context, ...string)     {}
