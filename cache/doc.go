// Package cache provides the query result cache used by the GraphQL resolvers.
//
// # Overview
//
// The package exports:
//
//   - Service: a two-namespace TTL cache with tag and substring invalidation
//   - KeyGenerator: builds canonical keys from a query name and its arguments
//   - GetOrFetch: a type-safe read-through helper over Service
//
// Results of plain queries live in NamespaceEntity (300s TTL, swept every 60s) and
// paginated results in NamespacePagination (120s TTL, swept every 30s). The two
// namespaces are independent key spaces.
//
// # Basic Usage
//
//	svc, err := cache.NewService(cache.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer svc.Close()
//
//	key := cache.GenerateKey("pessoa", map[string]any{"id": 1})
//	pessoa, err := cache.GetOrFetch(ctx, svc, cache.NamespaceEntity, key, []string{"pessoas"},
//		func(ctx context.Context) (store.Pessoa, error) {
//			return records.GetPessoa(ctx, 1)
//		})
//
// # Keys
//
// Keys have the form "<queryName>:<json>". Only the top-level argument names are
// sorted before encoding; nested values keep the order encoding/json gives them.
// Maps therefore encode deterministically at any depth, while struct values follow
// their field declaration order.
//
// # Invalidation
//
// Entries are stored with tags. InvalidateEntity removes every entry carrying the
// entity tag or StatisticsTag from both namespaces. InvalidatePattern performs a
// literal substring match over keys and is meant for administrative use.
//
// For the resolver-facing wrappers, see the querycache package.
package cache
