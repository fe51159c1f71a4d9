// Serves the pessoas/planos GraphQL API backed by a JSON database file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/config"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/logging"
	"github.com/ViniciusKumagai/desafio-tech-pill/pkg/di"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stderr)
	stop()
	os.Exit(code)
}

// options are the command line flags. Non-empty values override the file.
type options struct {
	configPath   string
	address      string
	dbPath       string
	environment  string
	logLevel     string
	strictConfig bool
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML configuration file")
	fs.StringVar(&opts.address, "addr", "", "Listen address, e.g. :4000")
	fs.StringVar(&opts.dbPath, "db", "", "Path to the JSON database file")
	fs.StringVar(&opts.environment, "env", "", "development or production")
	fs.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error")
	fs.BoolVar(&opts.strictConfig, "strict-config", false, "Treat unknown configuration keys as errors")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// loadConfig reads the configuration file, if any, and applies the flag overrides.
func loadConfig(opts options) (config.Config, []string, error) {
	cfg := config.Default()
	var warnings []string
	if opts.configPath != "" {
		res, err := config.Load(opts.configPath, config.LoadOptions{Strict: opts.strictConfig})
		if err != nil {
			return cfg, nil, err
		}
		cfg, warnings = res.Config, res.Warnings
	}

	if opts.address != "" {
		cfg.Server.Address = opts.address
	}
	if opts.dbPath != "" {
		cfg.Store.Path = opts.dbPath
	}
	if opts.environment != "" {
		cfg.Server.Environment = opts.environment
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, warnings, cfg.Validate()
}

func run(ctx context.Context, args []string, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 2
	}

	cfg, warnings, err := loadConfig(opts)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}

	logger, err := logging.New(logging.Options{Level: cfg.Log.Level, Format: cfg.Log.Format, Writer: stderr})
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err.Error())
		return 1
	}
	slog.SetDefault(logger)

	container, err := di.NewContainer(cfg, di.WithLogger(logger))
	if err != nil {
		logger.Error("Failed to build the server.", "error", err)
		return 1
	}
	defer container.Close()

	for _, w := range warnings {
		logger.Warn("Configuration warning.", "warning", w)
	}

	srv := container.Server()
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			logger.Error("Server stopped.", "error", err)
			return 1
		}
		return 0
	case <-ctx.Done():
		logger.Info("Received termination signal, shutting down.")
	}

	// Shutdown applies the configured timeout.
	if err := srv.Shutdown(context.Background()); err != nil {
		logger.Error("Graceful shutdown failed.", "error", err)
		return 1
	}
	if err := <-serveErr; err != nil {
		logger.Error("Server stopped.", "error", err)
		return 1
	}
	logger.Info("Server stopped.")
	return 0
}
