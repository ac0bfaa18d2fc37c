package registry

import (
	"context"
	"reflect"
	"time"

	"github.com/zjrosen/arbor/internal/cachemanager"
	"github.com/zjrosen/arbor/internal/domain/resolve"
)

// DefaultLookupTTL bounds how long a cached lookup result is served before
// the underlying lookup is consulted again.
const DefaultLookupTTL = 5 * time.Minute

// Cached decorates a resolve.Lookup with a read-through cache. Successful
// results are cached under descriptor-derived keys; lookup errors are never
// cached, so failed descriptors keep hitting the underlying lookup.
type Cached struct {
	cache  cachemanager.CacheManager[string, any]
	byName *cachemanager.ReadThroughCache[string, any, string]
	byType *cachemanager.ReadThroughCache[string, any, reflect.Type]
	ttl    time.Duration
}

// NewCached wraps next with the given cache. A non-positive ttl falls back
// to DefaultLookupTTL. With skipCache set every call goes straight through,
// which keeps the wiring identical when caching is disabled in config.
func NewCached(next resolve.Lookup, cache cachemanager.CacheManager[string, any], ttl time.Duration, skipCache bool) *Cached {
	if ttl <= 0 {
		ttl = DefaultLookupTTL
	}
	return &Cached{
		cache: cache,
		byName: cachemanager.NewReadThroughCache(
			cache,
			func(ctx context.Context, name string) (any, error) {
				return next.ByName(ctx, name)
			},
			skipCache,
		),
		byType: cachemanager.NewReadThroughCache(
			cache,
			func(ctx context.Context, t reflect.Type) (any, error) {
				return next.ByType(ctx, t)
			},
			skipCache,
		),
		ttl: ttl,
	}
}

// ByName implements resolve.Lookup.
func (c *Cached) ByName(ctx context.Context, name string) (any, error) {
	return c.byName.Get(ctx, "name:"+name, name, c.ttl)
}

// ByType implements resolve.Lookup.
func (c *Cached) ByType(ctx context.Context, t reflect.Type) (any, error) {
	return c.byType.Get(ctx, typeKey(t), t, c.ttl)
}

// Invalidate drops every cached lookup result. The watcher calls this when
// manifests change on disk.
func (c *Cached) Invalidate(ctx context.Context) error {
	return c.cache.Flush(ctx)
}

func typeKey(t reflect.Type) string {
	if t.PkgPath() != "" {
		return "type:" + t.PkgPath() + "." + t.Name()
	}
	return "type:" + t.String()
}
