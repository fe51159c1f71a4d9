// Package config loads the server configuration from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	toml "github.com/pelletier/go-toml/v2"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/server"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
)

// Environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Duration is a time.Duration written as a Go duration string ("300s", "2m").
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// Config mirrors the TOML schema.
type Config struct {
	Server     ServerConfig     `toml:"server"`
	Store      StoreConfig      `toml:"store"`
	Cache      CacheConfig      `toml:"cache"`
	Pagination PaginationConfig `toml:"pagination"`
	Log        LogConfig        `toml:"log"`
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Address         string   `toml:"address"`
	Environment     string   `toml:"environment"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	// MaxComplexity rejects GraphQL queries scoring above it. Zero disables the check.
	MaxComplexity int             `toml:"max_complexity"`
	RateLimit     RateLimitConfig `toml:"rate_limit"`
}

// RateLimitConfig holds the per-IP limits applied to /graphql.
type RateLimitConfig struct {
	Enabled  bool        `toml:"enabled"`
	General  LimitConfig `toml:"general"`
	Mutation LimitConfig `toml:"mutation"`
	Complex  LimitConfig `toml:"complex"`
}

// LimitConfig allows Requests per Window to each client IP.
type LimitConfig struct {
	Requests int      `toml:"requests"`
	Window   Duration `toml:"window"`
}

func (l LimitConfig) validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Requests, validation.Required, validation.Min(1)),
		validation.Field(&l.Window, validation.Required, validation.Min(Duration(time.Second))),
	)
}

func (l LimitConfig) toServer() server.Limit {
	return server.Limit{Requests: l.Requests, Window: time.Duration(l.Window)}
}

// GuardOptions converts the rate limit and complexity settings for server.New.
func (c ServerConfig) GuardOptions() server.GuardOptions {
	return server.GuardOptions{
		RateLimit:     c.RateLimit.Enabled,
		General:       c.RateLimit.General.toServer(),
		Mutation:      c.RateLimit.Mutation.toServer(),
		Complex:       c.RateLimit.Complex.toServer(),
		MaxComplexity: c.MaxComplexity,
	}
}

// Production reports whether the administrative routes must be hidden.
func (c ServerConfig) Production() bool {
	return c.Environment == EnvProduction
}

// StoreConfig locates the database file.
type StoreConfig struct {
	Path string `toml:"path"`
}

// CacheConfig configures both cache namespaces.
type CacheConfig struct {
	Entity     NamespaceConfig `toml:"entity"`
	Pagination NamespaceConfig `toml:"pagination"`
}

// NamespaceConfig configures one cache namespace.
type NamespaceConfig struct {
	TTL                Duration `toml:"ttl"`
	SweepInterval      Duration `toml:"sweep_interval"`
	MaxTTL             Duration `toml:"max_ttl"`
	Capacity           int      `toml:"capacity"`
	NumShards          int      `toml:"num_shards"`
	EvictionPercentage int      `toml:"eviction_percentage"`
}

func (r RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	return validation.Errors{
		"general":  r.General.validate(),
		"mutation": r.Mutation.validate(),
		"complex":  r.Complex.validate(),
	}.Filter()
}

// PaginationConfig holds the page size defaults.
type PaginationConfig struct {
	DefaultLimit int `toml:"default_limit"`
	DefaultFirst int `toml:"default_first"`
}

// LogConfig configures the logger.
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	c := cache.DefaultConfig()
	guard := server.DefaultGuardOptions()
	return Config{
		Server: ServerConfig{
			Address:         ":4000",
			Environment:     EnvDevelopment,
			ReadTimeout:     Duration(15 * time.Second),
			WriteTimeout:    Duration(15 * time.Second),
			ShutdownTimeout: Duration(10 * time.Second),
			MaxComplexity:   guard.MaxComplexity,
			RateLimit: RateLimitConfig{
				Enabled:  guard.RateLimit,
				General:  limitFromServer(guard.General),
				Mutation: limitFromServer(guard.Mutation),
				Complex:  limitFromServer(guard.Complex),
			},
		},
		Store: StoreConfig{Path: "mock_db.json"},
		Cache: CacheConfig{
			Entity:     namespaceFromCache(c.Entity),
			Pagination: namespaceFromCache(c.Pagination),
		},
		Pagination: PaginationConfig{
			DefaultLimit: pagination.DefaultLimit,
			DefaultFirst: pagination.DefaultFirst,
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// LoadOptions tunes config loading behavior.
type LoadOptions struct {
	// Strict turns unknown keys into an error instead of a warning.
	Strict bool
}

// Result wraps a loaded configuration alongside any non-fatal warnings.
type Result struct {
	Config   Config
	Warnings []string
}

// Load reads path and merges it over Default. Keys absent from the file keep
// their default values.
func Load(path string, opts LoadOptions) (Result, error) {
	res := Result{Config: Default()}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return res, fmt.Errorf("read %s: %w", path, err)
	}

	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(&res.Config)

	var strictErr *toml.StrictMissingError
	switch {
	case errors.As(err, &strictErr):
		keys := make([]string, 0, len(strictErr.Errors))
		for _, e := range strictErr.Errors {
			keys = append(keys, strings.Join(e.Key(), "."))
		}
		slices.Sort(keys)
		message := fmt.Sprintf("%s: unknown configuration keys: %s", path, strings.Join(keys, ", "))
		if opts.Strict {
			return res, errors.New(message)
		}
		res.Warnings = append(res.Warnings, message)
	case err != nil:
		return res, fmt.Errorf("%s: %w", path, err)
	}

	if err := res.Config.Validate(); err != nil {
		return res, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

// Validate checks the values that are not covered by the cache configuration.
func (c Config) Validate() error {
	err := validation.Errors{
		"server": validation.ValidateStruct(&c.Server,
			validation.Field(&c.Server.Address, validation.Required),
			validation.Field(&c.Server.Environment, validation.Required, validation.In(EnvDevelopment, EnvProduction)),
			validation.Field(&c.Server.MaxComplexity, validation.Min(0)),
		),
		"server.rate_limit": c.Server.RateLimit.validate(),
		"store": validation.ValidateStruct(&c.Store,
			validation.Field(&c.Store.Path, validation.Required),
		),
		"pagination": validation.ValidateStruct(&c.Pagination,
			validation.Field(&c.Pagination.DefaultLimit, validation.Required, validation.Min(1)),
			validation.Field(&c.Pagination.DefaultFirst, validation.Required, validation.Min(1)),
		),
		"log": validation.ValidateStruct(&c.Log,
			validation.Field(&c.Log.Level, validation.In("debug", "info", "warn", "error")),
			validation.Field(&c.Log.Format, validation.In("json", "text")),
		),
	}.Filter()
	if err != nil {
		return err
	}
	return c.CacheConfig().Validate()
}

// CacheConfig converts the cache section for cache.NewService.
func (c Config) CacheConfig() cache.Config {
	return cache.Config{
		Entity:     c.Cache.Entity.toCache(),
		Pagination: c.Cache.Pagination.toCache(),
	}
}

// Paginator returns the paginator configured by the pagination section.
func (c Config) Paginator() pagination.Paginator {
	return pagination.NewPaginator(c.Pagination.DefaultLimit, c.Pagination.DefaultFirst)
}

func (n NamespaceConfig) toCache() cache.NamespaceConfig {
	return cache.NamespaceConfig{
		TTL:                time.Duration(n.TTL),
		SweepInterval:      time.Duration(n.SweepInterval),
		MaxTTL:             time.Duration(n.MaxTTL),
		Capacity:           n.Capacity,
		NumShards:          n.NumShards,
		EvictionPercentage: n.EvictionPercentage,
	}
}

func limitFromServer(l server.Limit) LimitConfig {
	return LimitConfig{Requests: l.Requests, Window: Duration(l.Window)}
}

func namespaceFromCache(n cache.NamespaceConfig) NamespaceConfig {
	return NamespaceConfig{
		TTL:                Duration(n.TTL),
		SweepInterval:      Duration(n.SweepInterval),
		MaxTTL:             Duration(n.MaxTTL),
		Capacity:           n.Capacity,
		NumShards:          n.NumShards,
		EvictionPercentage: n.EvictionPercentage,
	}
}
