// Package resolver implements the consórcio GraphQL schema on top of the record
// store. Queries are served through the query cache, mutations invalidate it.
package resolver

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/graph"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/store"
	"github.com/ViniciusKumagai/desafio-tech-pill/pagination"
	"github.com/ViniciusKumagai/desafio-tech-pill/querycache"
)

// Cache tags attached to query results. A mutation of a collection invalidates the
// tag of the same name; the statistics tag goes with every mutation.
const (
	TagPessoas           = store.CollectionPessoas
	TagPlanos            = store.CollectionPlanos
	TagPlanosContratados = store.CollectionPlanosContratados
	TagEstatisticas      = "estatisticas"
)

// Resolver holds the dependencies shared by every field resolver.
type Resolver struct {
	store     *store.Store
	cache     *querycache.Decorator
	paginator pagination.Paginator
	logger    *slog.Logger
}

var _ graph.ResolverRoot = (*Resolver)(nil)

// Option configures a Resolver.
type Option func(*Resolver)

// WithPaginator overrides the pagination defaults.
func WithPaginator(p pagination.Paginator) Option {
	return func(r *Resolver) {
		r.paginator = p
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// New creates a Resolver.
func New(st *store.Store, decorator *querycache.Decorator, opts ...Option) *Resolver {
	r := &Resolver{
		store:     st,
		cache:     decorator,
		paginator: pagination.NewPaginator(pagination.DefaultLimit, pagination.DefaultFirst),
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.logger = r.logger.With("component", "resolver")
	return r
}

// Query returns the root query resolver.
func (r *Resolver) Query() graph.QueryResolver { return &queryResolver{r} }

// Mutation returns the root mutation resolver.
func (r *Resolver) Mutation() graph.MutationResolver { return &mutationResolver{r} }

// Pessoa returns the Pessoa field resolver.
func (r *Resolver) Pessoa() graph.PessoaResolver { return &pessoaResolver{r} }

// Plano returns the Plano field resolver.
func (r *Resolver) Plano() graph.PlanoResolver { return &planoResolver{r} }

// PlanoContratado returns the PlanoContratado field resolver.
func (r *Resolver) PlanoContratado() graph.PlanoContratadoResolver {
	return &planoContratadoResolver{r}
}

type queryResolver struct{ *Resolver }
type mutationResolver struct{ *Resolver }
type pessoaResolver struct{ *Resolver }
type planoResolver struct{ *Resolver }
type planoContratadoResolver struct{ *Resolver }

// args are the arguments of one query call. They only build the cache key.
type args = map[string]any

// cached serves fn through the query cache under queryName and a.
func cached[R any](r *Resolver, ctx context.Context, queryName string, ns cache.Namespace, tags []string, a args, fn func(context.Context) (R, error)) (R, error) {
	read := querycache.WithCache(r.cache, queryName, ns, tags, func(ctx context.Context, _ map[string]any) (R, error) {
		return fn(ctx)
	})
	return read(ctx, a)
}

// invalidating runs fn and invalidates entityType when it succeeds. A write that
// finds no record fails inside the wrapper, so nothing is invalidated, and is then
// answered with notFound.
func invalidating[R any](r *Resolver, ctx context.Context, entityType string, notFound R, fn func(context.Context) (R, error)) (R, error) {
	write := querycache.WithInvalidation(r.cache, entityType, func(ctx context.Context, _ map[string]any) (R, error) {
		return fn(ctx)
	})
	v, err := write(ctx, nil)
	if errors.Is(err, store.ErrNotFound) {
		return notFound, nil
	}
	return v, err
}

// found turns a lookup into an optional result.
func found[T any](v T, err error) (*T, error) {
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// created returns a pointer to a successfully written record.
func created[T any](v T, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	return &v, nil
}
