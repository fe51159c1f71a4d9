package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"
	"golang.org/x/time/rate"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/metrics"
)

// Limit allows Requests per Window to each client IP.
type Limit struct {
	Requests int
	Window   time.Duration
}

// GuardOptions configures the checks run before a GraphQL request is executed.
type GuardOptions struct {
	// RateLimit enables the per-IP limits below.
	RateLimit bool
	General   Limit
	Mutation  Limit
	Complex   Limit
	// MaxComplexity rejects queries scoring above it. Zero disables the check.
	MaxComplexity int
}

// DefaultGuardOptions returns the limits the API ships with.
func DefaultGuardOptions() GuardOptions {
	return GuardOptions{
		RateLimit:     true,
		General:       Limit{Requests: 100, Window: 15 * time.Minute},
		Mutation:      Limit{Requests: 20, Window: 5 * time.Minute},
		Complex:       Limit{Requests: 50, Window: 10 * time.Minute},
		MaxComplexity: 30,
	}
}

// Complexity scores a query by its text: nesting, related entities, pagination
// and statistics all add to it.
func Complexity(query string) int {
	score := strings.Count(query, "{") * 2
	for _, relation := range []string{"pessoa", "plano", "planosContratados"} {
		if strings.Contains(query, relation) {
			score += 5
		}
	}
	if strings.Contains(query, "pagination") {
		score += 3
	}
	if strings.Contains(query, "estatisticas") {
		score += 10
	}
	return score
}

// tier is one per-IP rate limit, applied to the queries match accepts.
type tier struct {
	name     string
	limit    Limit
	match    func(query string) bool
	visitors *xsync.MapOf[string, *visitor]
	swept    atomic.Int64
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

func newTier(name string, limit Limit, match func(string) bool) *tier {
	return &tier{
		name:     name,
		limit:    limit,
		match:    match,
		visitors: xsync.NewMapOf[string, *visitor](),
	}
}

// allow takes one token from the bucket of ip. When none is left it reports how
// long until the next one.
func (t *tier) allow(ip string, now time.Time) (bool, time.Duration) {
	t.sweep(now)
	v, _ := t.visitors.LoadOrCompute(ip, func() *visitor {
		every := t.limit.Window / time.Duration(t.limit.Requests)
		return &visitor{limiter: rate.NewLimiter(rate.Every(every), t.limit.Requests)}
	})
	v.lastSeen.Store(now.UnixNano())
	if v.limiter.AllowN(now, 1) {
		return true, 0
	}
	r := v.limiter.ReserveN(now, 1)
	delay := r.DelayFrom(now)
	r.CancelAt(now)
	return false, delay
}

// sweep drops visitors idle for a whole window, once per window. Their buckets
// have refilled, so dropping them loses nothing.
func (t *tier) sweep(now time.Time) {
	last := t.swept.Load()
	if now.UnixNano()-last < int64(t.limit.Window) || !t.swept.CompareAndSwap(last, now.UnixNano()) {
		return
	}
	cutoff := now.Add(-t.limit.Window).UnixNano()
	t.visitors.Range(func(ip string, v *visitor) bool {
		if v.lastSeen.Load() < cutoff {
			t.visitors.Delete(ip)
		}
		return true
	})
}

func (t *tier) message() string {
	switch t.name {
	case "mutation":
		return "Too many mutations from this IP, please try again later."
	case "complex":
		return "Too many complex queries from this IP, please try again later."
	default:
		return "Too many requests from this IP, please try again later."
	}
}

type rateLimitedResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

type tooComplexResponse struct {
	Error      string `json:"error"`
	Complexity int    `json:"complexity"`
	MaxAllowed int    `json:"maxAllowed"`
}

type guard struct {
	server *Server
	opts   GuardOptions
	tiers  []*tier
}

func newGuard(s *Server, opts GuardOptions) *guard {
	g := &guard{server: s, opts: opts}
	if !opts.RateLimit {
		return g
	}
	tiers := []*tier{
		newTier("general", opts.General, func(q string) bool {
			return !strings.Contains(q, "__schema") && !strings.Contains(q, "__type")
		}),
		newTier("mutation", opts.Mutation, func(q string) bool {
			return strings.Contains(q, "mutation")
		}),
		newTier("complex", opts.Complex, func(q string) bool {
			return strings.Contains(q, "planosContratados") ||
				strings.Contains(q, "pagination") ||
				strings.Contains(q, "estatisticas")
		}),
	}
	for _, t := range tiers {
		if t.limit.Requests > 0 && t.limit.Window > 0 {
			g.tiers = append(g.tiers, t)
		}
	}
	return g
}

// wrap rate limits and scores GraphQL requests before they reach next. Requests
// without a query go through untouched, so the transport reports them.
func (g *guard) wrap(next http.Handler) http.Handler {
	if len(g.tiers) == 0 && g.opts.MaxComplexity <= 0 {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query, err := readQuery(r)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeJSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "Request body too large."})
				return
			}
		}
		if query == "" {
			next.ServeHTTP(w, r)
			return
		}

		complexity := Complexity(query)
		ip := clientIP(r)
		now := g.server.opts.Now()
		for _, t := range g.tiers {
			if !t.match(query) {
				continue
			}
			if ok, delay := t.allow(ip, now); !ok {
				g.reject(w, r, t, ip, complexity, delay)
				return
			}
		}

		if g.opts.MaxComplexity > 0 && complexity > g.opts.MaxComplexity {
			g.server.logger.InfoContext(r.Context(), "Rejected complex query.",
				"ip", ip, "complexity", complexity, "max_allowed", g.opts.MaxComplexity)
			writeJSON(w, http.StatusBadRequest, tooComplexResponse{
				Error:      "Query too complex. Please simplify your request.",
				Complexity: complexity,
				MaxAllowed: g.opts.MaxComplexity,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (g *guard) reject(w http.ResponseWriter, r *http.Request, t *tier, ip string, complexity int, delay time.Duration) {
	retryAfter := int(math.Ceil(delay.Seconds()))
	if retryAfter < 1 {
		retryAfter = 1
	}
	userAgent := r.UserAgent()
	if userAgent == "" {
		userAgent = "unknown"
	}
	g.server.logger.WarnContext(r.Context(), "Rate limit exceeded.",
		"tier", t.name,
		"ip", ip,
		"complexity", complexity,
		"user_agent", userAgent,
	)
	metrics.RateLimited.WithLabelValues(t.name).Inc()

	h := w.Header()
	h.Set("Retry-After", strconv.Itoa(retryAfter))
	h.Set("RateLimit-Limit", strconv.Itoa(t.limit.Requests))
	h.Set("RateLimit-Remaining", "0")
	h.Set("RateLimit-Reset", strconv.Itoa(retryAfter))
	writeJSON(w, http.StatusTooManyRequests, rateLimitedResponse{Error: t.message(), RetryAfter: retryAfter})
}

// readQuery returns the query of a GraphQL request. A POST body is read and
// put back for the transport.
func readQuery(r *http.Request) (string, error) {
	if r.Method != http.MethodPost {
		return r.URL.Query().Get("query"), nil
	}
	body, err := io.ReadAll(r.Body)
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	var params struct {
		Query string `json:"query"`
	}
	if json.Unmarshal(body, &params) != nil {
		return "", nil
	}
	return params.Query, nil
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
