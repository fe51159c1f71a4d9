package cache

import (
	"context"
	"errors"
	"fmt"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/cacheinfra"
)

// Namespace identifies one of the independent key spaces of the cache.
type Namespace = cacheinfra.Namespace

// Stats summarizes a namespace: hits, misses, live keys and their sizes.
type Stats = cacheinfra.Stats

// Snapshot is the invalidation generation of a set of tags, taken before a
// result is computed.
type Snapshot = cacheinfra.Snapshot

// Clock drives expiry checks and sweeps. Tests inject a fake one through Config.
type Clock = cacheinfra.Clock

const (
	// NamespaceEntity holds non-paginated query results (TTL 300s by default).
	NamespaceEntity = cacheinfra.NamespaceEntity
	// NamespacePagination holds paginated query results (TTL 120s by default).
	NamespacePagination = cacheinfra.NamespacePagination

	// StatisticsTag is invalidated together with every entity type.
	StatisticsTag = cacheinfra.StatisticsTag
)

var (
	// ErrUnknownNamespace is returned when writing to a namespace the service does not own.
	ErrUnknownNamespace = cacheinfra.ErrUnknownNamespace

	// ErrInvalidResultType is returned by GetOrFetch when the cached value is not a T.
	ErrInvalidResultType = errors.New("cache: cached value has unexpected type")
)

// FetchFn is the function signature GetOrFetch expects when fetching from the source of truth.
type FetchFn[T any] func(ctx context.Context) (T, error)

// Service is the two-namespace query result cache. Implementations must be safe for
// concurrent use.
type Service interface {
	Get(ctx context.Context, ns Namespace, key string) (any, bool)
	Set(ctx context.Context, ns Namespace, key string, value any, tags ...string) error
	Delete(ctx context.Context, ns Namespace, key string)

	// Snapshot records the invalidation generation of tags. SetIfFresh stores value
	// under the snapshot's tags only if none of them was invalidated since.
	Snapshot(tags ...string) Snapshot
	SetIfFresh(ctx context.Context, ns Namespace, key string, value any, snap Snapshot) (bool, error)

	// InvalidatePattern removes entries whose key contains pattern as a literal
	// substring, across both namespaces.
	InvalidatePattern(ctx context.Context, pattern string) int
	// InvalidateTags removes entries indexed under any of tags, across both namespaces.
	InvalidateTags(ctx context.Context, tags ...string) int
	// InvalidateEntity removes entries tagged with entityType or StatisticsTag.
	InvalidateEntity(ctx context.Context, entityType string) int

	ClearAll(ctx context.Context)
	Stats() map[Namespace]Stats
	Close() error
}

// GetOrFetch is a type-safe read-through helper. On a hit it returns the cached
// value; on a miss it calls fetchFn and stores a successful result under key with
// tags, unless one of the tags was invalidated while fetchFn ran. Errors from fetchFn
// are returned unchanged and nothing is stored.
func GetOrFetch[T any](ctx context.Context, service Service, ns Namespace, key string, tags []string, fetchFn FetchFn[T]) (T, error) {
	var zero T
	if cached, ok := service.Get(ctx, ns, key); ok {
		if cached == nil {
			return zero, nil
		}
		typed, ok := cached.(T)
		if !ok {
			return zero, fmt.Errorf("%w: key %q holds %T", ErrInvalidResultType, key, cached)
		}
		return typed, nil
	}

	snap := service.Snapshot(tags...)
	result, err := fetchFn(ctx)
	if err != nil {
		return zero, err
	}
	if _, err := service.SetIfFresh(ctx, ns, key, result, snap); err != nil {
		return zero, err
	}
	return result, nil
}
