package di

import (
	"log/slog"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/config"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/logging"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/metrics"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/resolver"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/server"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/querycache"
)

// Container provides dependency injection for the whole server.
// It owns a single instance of every component, built once from the configuration,
// and exposes them for the binary and for tests.
type Container struct {
	config       config.Config
	logger       *slog.Logger
	store        *store.Store
	cacheService cache.Service
	keyGenerator cache.KeyGenerator
	decorator    *querycache.Decorator
	resolver     *resolver.Resolver
	executor     *graph.Executor
	server       *server.Server
}

// Option customises how the container builds its components.
type Option func(*options)

type options struct {
	logger *slog.Logger
	clock  cache.Clock
}

// WithLogger replaces the logger built from the log section.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithClock drives cache expiry from clock instead of the wall clock.
func WithClock(clock cache.Clock) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// NewContainer creates a new DI container from cfg.
// The cache configuration is validated before anything is opened; the record
// store is loaded from cfg.Store.Path and its mutations are counted in metrics.
func NewContainer(cfg config.Config, opts ...Option) (*Container, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := o.logger
	if logger == nil {
		var err error
		logger, err = logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format})
		if err != nil {
			return nil, err
		}
	}

	cacheConfig := cfg.CacheConfig()
	cacheConfig.Clock = o.clock
	cacheConfig.Logger = logger
	cacheService, err := cache.NewService(cacheConfig)
	if err != nil {
		return nil, err
	}

	st := store.Open(cfg.Store.Path, logger)
	st.Subscribe(func(c store.Change) {
		metrics.StoreMutations.WithLabelValues(c.Collection, string(c.Op)).Inc()
	})

	keyGenerator := cache.NewDefaultKeyGenerator()
	decorator := querycache.New(cacheService, keyGenerator, logger)
	res := resolver.New(st, decorator,
		resolver.WithPaginator(cfg.Paginator()),
		resolver.WithLogger(logger),
	)
	schema := graph.NewExecutableSchema(graph.Config{Resolvers: res})
	executor := graph.NewExecutor(schema, logger)
	srv := server.New(graph.NewHandler(schema, logger), cacheService, server.Options{
		Address:         cfg.Server.Address,
		Production:      cfg.Server.Production(),
		ReadTimeout:     time.Duration(cfg.Server.ReadTimeout),
		WriteTimeout:    time.Duration(cfg.Server.WriteTimeout),
		ShutdownTimeout: time.Duration(cfg.Server.ShutdownTimeout),
		Guard:           cfg.Server.GuardOptions(),
		Logger:          logger,
	})

	return &Container{
		config:       cfg,
		logger:       logger,
		store:        st,
		cacheService: cacheService,
		keyGenerator: keyGenerator,
		decorator:    decorator,
		resolver:     res,
		executor:     executor,
		server:       srv,
	}, nil
}

// NewContainerWithDefaults creates a new DI container using config.Default().
func NewContainerWithDefaults(opts ...Option) (*Container, error) {
	return NewContainer(config.Default(), opts...)
}

// Config returns a copy of the configuration used by this container.
func (c *Container) Config() config.Config {
	return c.config
}

// Logger returns the root logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}

// Store returns the record store.
func (c *Container) Store() *store.Store {
	return c.store
}

// CacheService returns the singleton cache service instance.
func (c *Container) CacheService() cache.Service {
	return c.cacheService
}

// KeyGenerator returns the singleton key generator instance.
func (c *Container) KeyGenerator() cache.KeyGenerator {
	return c.keyGenerator
}

// Decorator returns the query cache decorator shared by every resolver.
func (c *Container) Decorator() *querycache.Decorator {
	return c.decorator
}

// Resolver returns the GraphQL resolver.
func (c *Container) Resolver() *resolver.Resolver {
	return c.resolver
}

// Executor runs GraphQL operations in process, through the same schema the
// server mounts on /graphql.
func (c *Container) Executor() *graph.Executor {
	return c.executor
}

// Server returns the HTTP server.
func (c *Container) Server() *server.Server {
	return c.server
}

// Close stops the cache sweepers. The server is shut down separately.
func (c *Container) Close() error {
	return c.cacheService.Close()
}

// NewCachedQuery wraps fn with the container's query cache.
//
// Since Go methods cannot have type parameters, this is provided as a package-level function.
// Example: NewCachedQuery(container, "pessoas", cache.NamespaceEntity, []string{"pessoas"}, fn)
func NewCachedQuery[R any](c *Container, queryName string, ns cache.Namespace, tags []string, fn querycache.ReadFunc[R]) querycache.ReadFunc[R] {
	return querycache.WithCache(c.decorator, queryName, ns, tags, fn)
}

// NewInvalidatingMutation wraps fn so that a successful call invalidates entityType.
func NewInvalidatingMutation[R any](c *Container, entityType string, fn querycache.WriteFunc[R]) querycache.WriteFunc[R] {
	return querycache.WithInvalidation(c.decorator, entityType, fn)
}
