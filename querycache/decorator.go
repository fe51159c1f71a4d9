package querycache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"golang.org/x/sync/singleflight"
)

// ReadFunc is a query resolver: it receives the query arguments and returns the result.
type ReadFunc[R any] func(ctx context.Context, args map[string]any) (R, error)

// WriteFunc is a mutation resolver.
type WriteFunc[R any] func(ctx context.Context, args map[string]any) (R, error)

// Decorator wraps resolvers with read-through caching and write invalidation.
type Decorator struct {
	cache  cache.Service
	keys   cache.KeyGenerator
	logger *slog.Logger
	group  singleflight.Group
}

// New creates a Decorator over the given cache service. A nil keyGenerator uses the
// default one and a nil logger uses slog.Default().
func New(cacheService cache.Service, keyGenerator cache.KeyGenerator, logger *slog.Logger) *Decorator {
	if keyGenerator == nil {
		keyGenerator = cache.NewDefaultKeyGenerator()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Decorator{
		cache:  cacheService,
		keys:   keyGenerator,
		logger: logger.With("component", "querycache"),
	}
}

// Cache returns the underlying cache service.
func (d *Decorator) Cache() cache.Service {
	return d.cache
}

// WithCache returns a resolver that serves fn's results from namespace ns.
//
// The key is built from queryName and the arguments. On a hit the cached value is
// returned and fn is not called. On a miss fn runs, and a successful result is
// stored under the given tags plus any tags attached to the context with
// WithCacheTags. A result is not stored if one of its tags was invalidated while
// fn ran. Concurrent misses for the same key share a single call to fn.
// Errors from fn are returned unchanged and are never cached.
func WithCache[R any](d *Decorator, queryName string, ns cache.Namespace, tags []string, fn ReadFunc[R]) ReadFunc[R] {
	baseTags := normalizeTags(tags)

	return func(ctx context.Context, args map[string]any) (R, error) {
		var zero R
		key := d.keys.GenerateKey(queryName, args)

		if cached, ok := d.cache.Get(ctx, ns, key); ok {
			d.logger.DebugContext(ctx, "Cache hit.", "namespace", string(ns), "key", key)
			return as[R](key, cached)
		}
		d.logger.DebugContext(ctx, "Cache miss.", "namespace", string(ns), "key", key)

		entryTags := dedupeStrings(append(append([]string(nil), baseTags...), contextTags(ctx)...))
		v, err, _ := d.group.Do(string(ns)+"|"+key, func() (any, error) {
			snap := d.cache.Snapshot(entryTags...)
			result, err := fn(ctx, args)
			if err != nil {
				return nil, err
			}
			if _, err := d.cache.SetIfFresh(ctx, ns, key, result, snap); err != nil {
				return nil, err
			}
			return result, nil
		})
		if err != nil {
			return zero, err
		}
		return as[R](key, v)
	}
}

// WithInvalidation returns a resolver that runs fn and, if it succeeds, invalidates
// every cached entry of entityType (and every statistics entry) in both namespaces
// before returning. When fn fails its error is returned unchanged and the cache is
// left untouched.
//
// A read served between fn's write and the invalidation can still observe the
// previous value, but it cannot store it past the invalidation.
func WithInvalidation[R any](d *Decorator, entityType string, fn WriteFunc[R]) WriteFunc[R] {
	tag := toSnake(entityType)

	return func(ctx context.Context, args map[string]any) (R, error) {
		result, err := fn(ctx, args)
		if err != nil {
			return result, err
		}
		d.cache.InvalidateEntity(ctx, tag)
		return result, nil
	}
}

func as[R any](key string, v any) (R, error) {
	var zero R
	if v == nil {
		return zero, nil
	}
	typed, ok := v.(R)
	if !ok {
		return zero, fmt.Errorf("%w: key %q holds %T", cache.ErrInvalidResultType, key, v)
	}
	return typed, nil
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = toSnake(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func dedupeStrings(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
