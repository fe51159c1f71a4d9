package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/metrics"
)

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status    string                          `json:"status"`
	Timestamp time.Time                       `json:"timestamp"`
	Uptime    float64                         `json:"uptime"`
	Cache     map[cache.Namespace]cache.Stats `json:"cache"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	writeJSON(w, http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: now.UTC(),
		Uptime:    now.Sub(s.started).Seconds(),
		Cache:     s.cache.Stats(),
	})
}

func (s *Server) handleCacheClear(w http.ResponseWriter, r *http.Request) {
	s.cache.ClearAll(r.Context())
	writeJSON(w, http.StatusOK, map[string]string{"message": "Cache cleared successfully"})
}

func (s *Server) handleCacheStats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cache.Stats())
}

func metricsHandler() http.Handler {
	return metrics.Handler()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
