package cache

import (
	"log/slog"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/cacheinfra"
)

// Config exposes cache configuration options for consumers of the cache package.
type Config struct {
	Entity     NamespaceConfig
	Pagination NamespaceConfig

	// Clock defaults to the wall clock.
	Clock Clock
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// NamespaceConfig mirrors the per-namespace store options.
type NamespaceConfig struct {
	TTL                time.Duration
	SweepInterval      time.Duration
	MaxTTL             time.Duration
	Capacity           int
	NumShards          int
	EvictionPercentage int
}

// DefaultConfig returns a Config populated with the default namespace settings.
func DefaultConfig() Config {
	return convertFromInternal(cacheinfra.DefaultConfig())
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	return c.toInternal().Validate()
}

// NewService constructs the default cache service implementation using the provided
// configuration. Callers own the returned handle and must Close it.
func NewService(cfg Config) (Service, error) {
	svc, err := cacheinfra.NewService(cfg.toInternal())
	if err != nil {
		return nil, err
	}
	return svc, nil
}

func (c Config) toInternal() cacheinfra.Config {
	return cacheinfra.Config{
		Entity:     c.Entity.toInternal(),
		Pagination: c.Pagination.toInternal(),
		Clock:      c.Clock,
		Logger:     c.Logger,
	}
}

func (c NamespaceConfig) toInternal() cacheinfra.NamespaceConfig {
	return cacheinfra.NamespaceConfig{
		TTL:                c.TTL,
		SweepInterval:      c.SweepInterval,
		MaxTTL:             c.MaxTTL,
		Capacity:           c.Capacity,
		NumShards:          c.NumShards,
		EvictionPercentage: c.EvictionPercentage,
	}
}

func convertFromInternal(cfg cacheinfra.Config) Config {
	return Config{
		Entity:     namespaceFromInternal(cfg.Entity),
		Pagination: namespaceFromInternal(cfg.Pagination),
		Clock:      cfg.Clock,
		Logger:     cfg.Logger,
	}
}

func namespaceFromInternal(cfg cacheinfra.NamespaceConfig) NamespaceConfig {
	return NamespaceConfig{
		TTL:                cfg.TTL,
		SweepInterval:      cfg.SweepInterval,
		MaxTTL:             cfg.MaxTTL,
		Capacity:           cfg.Capacity,
		NumShards:          cfg.NumShards,
		EvictionPercentage: cfg.EvictionPercentage,
	}
}
