// Package server exposes the GraphQL handler and the cache administration
// endpoints over HTTP.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
)

// maxBodyBytes bounds the size of a GraphQL request body.
const maxBodyBytes = 10 << 20

// Options configures a Server.
type Options struct {
	Address string
	// Production hides the /cache administration routes and disables CORS.
	Production      bool
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	// Guard rate limits and scores requests to /graphql. The zero value
	// disables both.
	Guard  GuardOptions
	Logger *slog.Logger
	// Now defaults to time.Now.
	Now func() time.Time
}

// Server serves the HTTP API.
type Server struct {
	graphql  http.Handler
	cache    cache.Service
	opts     Options
	logger   *slog.Logger
	started  time.Time
	handler  http.Handler
	http     *http.Server
}

// New creates a Server that mounts graphqlHandler on /graphql. Routes are
// registered immediately; nothing listens until ListenAndServe or Serve is called.
func New(graphqlHandler http.Handler, cacheService cache.Service, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	s := &Server{
		graphql:  graphqlHandler,
		cache:    cacheService,
		opts:     opts,
		logger:   opts.Logger.With("component", "server"),
		started:  opts.Now(),
	}
	s.handler = s.routes()
	s.http = &http.Server{
		Addr:         opts.Address,
		Handler:      s.handler,
		ReadTimeout:  opts.ReadTimeout,
		WriteTimeout: opts.WriteTimeout,
	}
	return s
}

// Handler returns the root handler with every middleware applied.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	graphql := s.instrument("/graphql", limitBody(newGuard(s, s.opts.Guard).wrap(s.graphql)))
	mux.Handle("POST /graphql", graphql)
	mux.Handle("GET /graphql", graphql)
	mux.Handle("GET /health", s.instrument("/health", http.HandlerFunc(s.handleHealth)))
	mux.Handle("GET /metrics", s.instrument("/metrics", metricsHandler()))
	if !s.opts.Production {
		mux.Handle("POST /cache/clear", s.instrument("/cache/clear", http.HandlerFunc(s.handleCacheClear)))
		mux.Handle("GET /cache/stats", s.instrument("/cache/stats", http.HandlerFunc(s.handleCacheStats)))
	}

	var h http.Handler = mux
	if !s.opts.Production {
		h = cors(h)
	}
	h = securityHeaders(h)
	h = s.accessLog(h)
	return requestID(h)
}

// ListenAndServe listens on Options.Address. It returns nil once Shutdown has
// been called.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.opts.Address)
	if err != nil {
		return err
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln.
func (s *Server) Serve(ln net.Listener) error {
	s.logger.Info("GraphQL server listening.", "address", ln.Addr().String(), "production", s.opts.Production)
	if err := s.http.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests, bounded
// by ctx and Options.ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.opts.ShutdownTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ShutdownTimeout)
		defer cancel()
	}
	s.logger.Info("Shutting down server.")
	return s.http.Shutdown(ctx)
}
