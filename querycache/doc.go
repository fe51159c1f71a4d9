// Package querycache decorates GraphQL resolvers with the query result cache.
//
// Read resolvers are wrapped with WithCache, which serves results from the entity
// or pagination namespace and stores misses with invalidation tags. Mutation
// resolvers are wrapped with WithInvalidation, which drops every entry of the
// mutated entity type, plus aggregate statistics, once the write succeeds.
//
//	d := querycache.New(cacheService, nil, logger)
//
//	pessoas := querycache.WithCache(d, "pessoas", cache.NamespaceEntity,
//		[]string{"pessoas"}, listPessoas)
//	criarPessoa := querycache.WithInvalidation(d, "pessoas", createPessoa)
//
// Tags are normalized to snake_case, so "planosContratados" and "planos_contratados"
// name the same tag. Additional tags can be attached per call with WithCacheTags.
package querycache
