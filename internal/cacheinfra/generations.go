package cacheinfra

import (
	"sync"

	"github.com/puzpuzpuz/xsync/v3"
)

// Snapshot is the invalidation generation of a set of tags at one point in time.
// A value computed after the snapshot was taken may only be stored if none of its
// tags has been invalidated since.
type Snapshot struct {
	epoch uint64
	tags  []string
	gens  []uint64
}

// generations counts invalidations per tag. Invalidations hold the write lock
// while bumping, and conditional writes hold the read lock from the comparison
// until the entry is stored, so a write either lands before the bump (and is then
// removed by the invalidation) or sees the new generation and is dropped.
type generations struct {
	mu    sync.RWMutex
	epoch uint64
	tags  *xsync.MapOf[string, uint64]
}

func newGenerations() *generations {
	return &generations{tags: xsync.NewMapOf[string, uint64]()}
}

func (g *generations) snapshot(tags []string) Snapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()

	snap := Snapshot{epoch: g.epoch, tags: tags, gens: make([]uint64, len(tags))}
	for i, tag := range tags {
		snap.gens[i], _ = g.tags.Load(tag)
	}
	return snap
}

func (g *generations) bump(tags ...string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	for _, tag := range tags {
		g.tags.Compute(tag, func(old uint64, _ bool) (uint64, bool) {
			return old + 1, false
		})
	}
}

func (g *generations) bumpAll() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.epoch++
}

// whileCurrent runs store if snap is still current, holding the read lock so no
// invalidation can slip in between. It reports whether store ran.
func (g *generations) whileCurrent(snap Snapshot, store func()) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if snap.epoch != g.epoch {
		return false
	}
	for i, tag := range snap.tags {
		if gen, _ := g.tags.Load(tag); gen != snap.gens[i] {
			return false
		}
	}
	store()
	return true
}
