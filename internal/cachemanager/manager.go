// Package cachemanager provides a generic TTL cache used to memoize
// registry lookups and resolved trees.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is the port for a TTL-based key/value cache.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	GetWithRefresh(ctx context.Context, key K, ttl time.Duration) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
