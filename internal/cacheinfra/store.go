package cacheinfra

import (
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/metrics"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/viccon/sturdyc"
)

// Namespace identifies one of the independent key spaces of the cache.
type Namespace string

const (
	// NamespaceEntity holds non-paginated query results.
	NamespaceEntity Namespace = "entity"
	// NamespacePagination holds paginated query results.
	NamespacePagination Namespace = "pagination"
)

// Stats summarizes a namespace.
type Stats struct {
	Hits      int64 `json:"hits"`
	Misses    int64 `json:"misses"`
	Keys      int   `json:"keys"`
	KeySize   int64 `json:"ksize"`
	ValueSize int64 `json:"vsize"`
}

// entry is what the store keeps per key. Entries are replaced, never mutated.
type entry struct {
	value     any
	expiresAt time.Time
	tags      []string
	size      int64
}

type keySet = *xsync.MapOf[string, struct{}]

// Store is a TTL key/value store for one namespace. It is backed by a sturdyc
// client for sharded storage and capacity eviction, while expiry is decided here
// against the injected clock: Get never returns an entry past its expiresAt, and a
// background sweep removes those entries every SweepInterval.
type Store struct {
	namespace Namespace
	cfg       NamespaceConfig
	client    *sturdyc.Client[*entry]
	clock     Clock
	logger    *slog.Logger

	// tags indexes keys by invalidation tag.
	tags *xsync.MapOf[string, keySet]

	hits   atomic.Int64
	misses atomic.Int64

	stop      chan struct{}
	done      chan struct{}
	closeOnce sync.Once
}

// NewStore validates cfg, creates the sturdyc client and starts the sweeper.
func NewStore(namespace Namespace, cfg NamespaceConfig, clock Clock, logger *slog.Logger) (*Store, error) {
	if err := cfg.validate(string(namespace)); err != nil {
		return nil, err
	}
	if clock == nil {
		clock = NewRealClock()
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Store{
		namespace: namespace,
		cfg:       cfg,
		client: sturdyc.New[*entry](
			cfg.Capacity,
			cfg.NumShards,
			cfg.MaxTTL,
			cfg.EvictionPercentage,
			cfg.sturdycOptions()...,
		),
		clock:  clock,
		logger: logger.With("namespace", string(namespace)),
		tags:   xsync.NewMapOf[string, keySet](),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}

	ticks, stopTicker := clock.NewTicker(cfg.SweepInterval)
	go s.sweeper(ticks, stopTicker)
	return s, nil
}

// Namespace returns the namespace this store serves.
func (s *Store) Namespace() Namespace {
	return s.namespace
}

// Get returns the value stored under key. Expired entries are reported as absent
// and removed on the spot.
func (s *Store) Get(key string) (any, bool) {
	e, ok := s.client.Get(key)
	if ok && s.expired(e) {
		s.remove(key, e, "expired")
		ok = false
	}
	if !ok {
		s.misses.Add(1)
		metrics.CacheLookups.WithLabelValues(string(s.namespace), "miss").Inc()
		return nil, false
	}
	s.hits.Add(1)
	metrics.CacheLookups.WithLabelValues(string(s.namespace), "hit").Inc()
	return e.value, true
}

// Set stores value under key for ttl, or for the namespace TTL when ttl <= 0.
// TTLs above MaxTTL are capped. The entry is indexed under every given tag.
func (s *Store) Set(key string, value any, ttl time.Duration, tags ...string) {
	if ttl <= 0 {
		ttl = s.cfg.TTL
	}
	ttl = min(ttl, s.cfg.MaxTTL)

	if old, ok := s.client.Get(key); ok {
		s.unindex(key, old.tags)
	}
	e := &entry{
		value:     value,
		expiresAt: s.clock.Now().Add(ttl),
		tags:      dedupeStrings(tags),
		size:      int64(len(key)) + estimateSize(value),
	}
	// Index before storing so a concurrent invalidation never misses the key.
	for _, tag := range e.tags {
		set, _ := s.tags.LoadOrStore(tag, xsync.NewMapOf[string, struct{}]())
		set.Store(key, struct{}{})
	}
	s.client.Set(key, e)
}

// Keys returns every live key of the namespace.
func (s *Store) Keys() []string {
	keys := s.client.ScanKeys()
	live := keys[:0]
	for _, key := range keys {
		if e, ok := s.client.Get(key); ok && !s.expired(e) {
			live = append(live, key)
		}
	}
	return live
}

// Delete removes key. Deleting a missing key is a no-op.
func (s *Store) Delete(key string) {
	if e, ok := s.client.Get(key); ok {
		s.remove(key, e, "deleted")
	}
}

// Flush removes every entry of the namespace.
func (s *Store) Flush() {
	removed := 0
	for _, key := range s.client.ScanKeys() {
		s.client.Delete(key)
		removed++
	}
	s.tags.Range(func(tag string, _ keySet) bool {
		s.tags.Delete(tag)
		return true
	})
	metrics.CacheRemovals.WithLabelValues(string(s.namespace), "flushed").Add(float64(removed))
}

// InvalidateTag removes every entry indexed under tag and returns how many were
// removed.
func (s *Store) InvalidateTag(tag string) int {
	set, ok := s.tags.LoadAndDelete(tag)
	if !ok {
		return 0
	}
	removed := 0
	set.Range(func(key string, _ struct{}) bool {
		if e, ok := s.client.Get(key); ok {
			s.remove(key, e, "invalidated")
			removed++
		}
		return true
	})
	return removed
}

// InvalidatePattern removes every entry whose key contains pattern as a literal
// substring and returns how many were removed.
func (s *Store) InvalidatePattern(pattern string) int {
	removed := 0
	for _, key := range s.client.ScanKeys() {
		if !strings.Contains(key, pattern) {
			continue
		}
		if e, ok := s.client.Get(key); ok {
			s.remove(key, e, "invalidated")
			removed++
		}
	}
	return removed
}

// Stats returns hit/miss counters and the size of the live entries.
func (s *Store) Stats() Stats {
	stats := Stats{Hits: s.hits.Load(), Misses: s.misses.Load()}
	for _, key := range s.client.ScanKeys() {
		e, ok := s.client.Get(key)
		if !ok || s.expired(e) {
			continue
		}
		stats.Keys++
		stats.KeySize += int64(len(key))
		stats.ValueSize += e.size - int64(len(key))
	}
	return stats
}

// Close stops the sweeper. It is safe to call more than once.
func (s *Store) Close() {
	s.closeOnce.Do(func() {
		close(s.stop)
		<-s.done
	})
}

func (s *Store) expired(e *entry) bool {
	return !s.clock.Now().Before(e.expiresAt)
}

func (s *Store) remove(key string, e *entry, reason string) {
	s.client.Delete(key)
	s.unindex(key, e.tags)
	metrics.CacheRemovals.WithLabelValues(string(s.namespace), reason).Inc()
}

func (s *Store) unindex(key string, tags []string) {
	for _, tag := range tags {
		if set, ok := s.tags.Load(tag); ok {
			set.Delete(key)
		}
	}
}

func (s *Store) sweeper(ticks <-chan time.Time, stopTicker func()) {
	defer close(s.done)
	defer stopTicker()

	for {
		select {
		case <-s.stop:
			return
		case <-ticks:
			if removed := s.sweep(); removed > 0 {
				s.logger.Debug("Swept expired cache entries.", "removed", removed)
			}
		}
	}
}

// sweep removes expired entries and drops index references to keys sturdyc
// evicted on its own.
func (s *Store) sweep() int {
	removed := 0
	for _, key := range s.client.ScanKeys() {
		if e, ok := s.client.Get(key); ok && s.expired(e) {
			s.remove(key, e, "expired")
			removed++
		}
	}
	s.tags.Range(func(tag string, set keySet) bool {
		set.Range(func(key string, _ struct{}) bool {
			if _, ok := s.client.Get(key); !ok {
				set.Delete(key)
			}
			return true
		})
		return true
	})
	return removed
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
