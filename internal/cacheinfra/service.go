package cacheinfra

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// StatisticsTag marks entries derived from every collection, such as aggregate
// statistics. It is invalidated together with any entity type.
const StatisticsTag = "estatisticas"

// ErrUnknownNamespace is returned when writing to a namespace the service does not own.
var ErrUnknownNamespace = errors.New("cacheinfra: unknown namespace")

// Service owns the entity and pagination stores.
type Service struct {
	stores map[Namespace]*Store
	order  []Namespace
	gens   *generations
	logger *slog.Logger
}

// NewService validates cfg and starts one store per namespace.
func NewService(cfg Config) (*Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	clock := cfg.Clock
	if clock == nil {
		clock = NewRealClock()
	}

	entity, err := NewStore(NamespaceEntity, cfg.Entity, clock, logger)
	if err != nil {
		return nil, err
	}
	paginated, err := NewStore(NamespacePagination, cfg.Pagination, clock, logger)
	if err != nil {
		entity.Close()
		return nil, err
	}

	return &Service{
		stores: map[Namespace]*Store{
			NamespaceEntity:     entity,
			NamespacePagination: paginated,
		},
		order:  []Namespace{NamespaceEntity, NamespacePagination},
		gens:   newGenerations(),
		logger: logger.With("component", "query_cache"),
	}, nil
}

// Get looks key up in namespace ns.
func (s *Service) Get(_ context.Context, ns Namespace, key string) (any, bool) {
	store, ok := s.stores[ns]
	if !ok {
		return nil, false
	}
	return store.Get(key)
}

// Set stores value under key in namespace ns with the namespace default TTL.
func (s *Service) Set(ctx context.Context, ns Namespace, key string, value any, tags ...string) error {
	return s.SetWithTTL(ctx, ns, key, value, 0, tags...)
}

// SetWithTTL stores value under key in namespace ns for ttl. A ttl <= 0 uses the
// namespace default.
func (s *Service) SetWithTTL(_ context.Context, ns Namespace, key string, value any, ttl time.Duration, tags ...string) error {
	store, ok := s.stores[ns]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}
	store.Set(key, value, ttl, tags...)
	return nil
}

// Snapshot records the current invalidation generation of tags, for a later
// SetIfFresh.
func (s *Service) Snapshot(tags ...string) Snapshot {
	return s.gens.snapshot(dedupeStrings(tags))
}

// SetIfFresh stores value like Set, unless one of the snapshot's tags was
// invalidated (or the cache cleared) after snap was taken. The entry is indexed
// under the snapshot's tags. It reports whether the value was stored.
func (s *Service) SetIfFresh(_ context.Context, ns Namespace, key string, value any, snap Snapshot) (bool, error) {
	store, ok := s.stores[ns]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}
	stored := s.gens.whileCurrent(snap, func() {
		store.Set(key, value, 0, snap.tags...)
	})
	if !stored {
		s.logger.Debug("Dropped a result computed before an invalidation.", "namespace", string(ns), "key", key)
	}
	return stored, nil
}

// Delete removes key from namespace ns.
func (s *Service) Delete(_ context.Context, ns Namespace, key string) {
	if store, ok := s.stores[ns]; ok {
		store.Delete(key)
	}
}

// Keys lists the live keys of namespace ns.
func (s *Service) Keys(ns Namespace) []string {
	store, ok := s.stores[ns]
	if !ok {
		return nil
	}
	return store.Keys()
}

// InvalidatePattern removes, from both namespaces, every entry whose key contains
// pattern as a literal substring.
func (s *Service) InvalidatePattern(ctx context.Context, pattern string) int {
	removed := 0
	for _, ns := range s.order {
		removed += s.stores[ns].InvalidatePattern(pattern)
	}
	s.logger.InfoContext(ctx, "Invalidated cache entries by pattern.", "pattern", pattern, "removed", removed)
	return removed
}

// InvalidateTags removes, from both namespaces, every entry indexed under any of tags.
func (s *Service) InvalidateTags(ctx context.Context, tags ...string) int {
	tags = dedupeStrings(tags)
	s.gens.bump(tags...)

	removed := 0
	for _, tag := range tags {
		for _, ns := range s.order {
			removed += s.stores[ns].InvalidateTag(tag)
		}
	}
	s.logger.InfoContext(ctx, "Invalidated cache entries by tag.", "tags", tags, "removed", removed)
	return removed
}

// InvalidateEntity removes every entry tagged with entityType and every statistics
// entry, since statistics aggregate all collections.
func (s *Service) InvalidateEntity(ctx context.Context, entityType string) int {
	return s.InvalidateTags(ctx, entityType, StatisticsTag)
}

// ClearAll flushes both namespaces.
func (s *Service) ClearAll(ctx context.Context) {
	s.gens.bumpAll()
	for _, ns := range s.order {
		s.stores[ns].Flush()
	}
	s.logger.InfoContext(ctx, "Cleared all cache namespaces.")
}

// Stats returns the statistics of each namespace.
func (s *Service) Stats() map[Namespace]Stats {
	stats := make(map[Namespace]Stats, len(s.stores))
	for ns, store := range s.stores {
		stats[ns] = store.Stats()
	}
	return stats
}

// Close stops the sweepers of both namespaces.
func (s *Service) Close() error {
	for _, ns := range s.order {
		s.stores[ns].Close()
	}
	return nil
}
