// Package metrics holds the prometheus collectors shared by the cache, the record
// store and the HTTP server.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CacheLookups counts cache reads per namespace and result (hit/miss).
	CacheLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_lookups_total",
		Help: "The total number of query cache lookups.",
	}, []string{
		"namespace", // entity or pagination.
		"result",    // hit or miss.
	})

	// CacheRemovals counts entries removed from a namespace, by reason.
	CacheRemovals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "query_cache_removed_entries_total",
		Help: "The total number of entries removed from the query cache.",
	}, []string{
		"namespace",
		"reason", // expired, invalidated, deleted or flushed.
	})

	// StoreMutations counts successful record store writes.
	StoreMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "record_store_mutations_total",
		Help: "The total number of record store mutations.",
	}, []string{"collection", "op"})

	// HTTPRequests counts served HTTP requests by route and status code.
	HTTPRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "The total number of HTTP requests served.",
	}, []string{"route", "code"})

	// RateLimited counts GraphQL requests refused by a per-IP rate limit.
	RateLimited = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "graphql_rate_limited_requests_total",
		Help: "The total number of GraphQL requests refused by a rate limit.",
	}, []string{"tier"}) // general, mutation or complex.
)

// Handler exposes the default registry in the prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}
