package cacheinfra

import (
	"errors"
	"log/slog"
	"sort"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/viccon/sturdyc"
)

// Config holds the configuration of both cache namespaces.
type Config struct {
	// Entity configures the namespace for non-paginated query results.
	Entity NamespaceConfig

	// Pagination configures the namespace for paginated query results.
	Pagination NamespaceConfig

	// Clock drives TTL checks and the sweep tickers. Nil uses the wall clock.
	Clock Clock

	// Logger receives sweep and invalidation logs. Nil uses slog.Default().
	Logger *slog.Logger
}

// NamespaceConfig configures a single namespace store.
type NamespaceConfig struct {
	// TTL is the default time-to-live of entries written without an explicit TTL.
	// Must be greater than 0.
	TTL time.Duration

	// SweepInterval sets how often expired entries are removed in the background.
	// Must be greater than 0.
	SweepInterval time.Duration

	// MaxTTL caps per-entry TTL overrides. It is also the TTL handed to sturdyc,
	// which therefore never drops an entry before we consider it expired.
	// Must be at least TTL.
	MaxTTL time.Duration

	// Capacity defines the maximum number of entries the namespace can hold.
	Capacity int

	// NumShards determines the number of sturdyc shards.
	NumShards int

	// EvictionPercentage is the share of entries sturdyc evicts when a shard is full.
	// Must be between 1-100.
	EvictionPercentage int
}

// DefaultConfig returns the entity (300s, swept every 60s) and pagination
// (120s, swept every 30s) namespaces.
func DefaultConfig() Config {
	return Config{
		Entity: NamespaceConfig{
			TTL:                300 * time.Second,
			SweepInterval:      60 * time.Second,
			MaxTTL:             time.Hour,
			Capacity:           10000,
			NumShards:          16,
			EvictionPercentage: 10,
		},
		Pagination: NamespaceConfig{
			TTL:                120 * time.Second,
			SweepInterval:      30 * time.Second,
			MaxTTL:             time.Hour,
			Capacity:           10000,
			NumShards:          16,
			EvictionPercentage: 10,
		},
	}
}

// Validate checks if the configuration values are valid.
func (c Config) Validate() error {
	if err := c.Entity.validate(string(NamespaceEntity)); err != nil {
		return err
	}
	return c.Pagination.validate(string(NamespacePagination))
}

func (c NamespaceConfig) validate(namespace string) error {
	err := validation.ValidateStruct(&c,
		validation.Field(&c.TTL, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.SweepInterval, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MaxTTL, validation.Required, validation.Min(c.TTL)),
		validation.Field(&c.Capacity, validation.Required, validation.Min(1)),
		validation.Field(&c.NumShards, validation.Required, validation.Min(1)),
		validation.Field(&c.EvictionPercentage, validation.Required, validation.Min(1), validation.Max(100)),
	)
	if err == nil {
		return nil
	}

	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return &ConfigError{Field: namespace, Message: err.Error()}
	}
	fields := make([]string, 0, len(fieldErrs))
	for field := range fieldErrs {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return &ConfigError{Field: namespace + "." + fields[0], Message: fieldErrs[fields[0]].Error()}
}

func (c NamespaceConfig) sturdycOptions() []sturdyc.Option {
	return []sturdyc.Option{sturdyc.WithEvictionInterval(c.SweepInterval)}
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
