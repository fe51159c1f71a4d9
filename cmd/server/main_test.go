package main

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ViniciusKumagai/desafio-tech-pill/internal/config"
	"github.com/ViniciusKumagai/desafio-tech-pill/pkg/testsupport"
)

func TestParseFlags(t *testing.T) {
	var stderr bytes.Buffer
	opts, err := parseFlags([]string{"-addr", ":9000", "-db", "data.json", "-log-level", "debug", "-strict-config"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, options{address: ":9000", dbPath: "data.json", logLevel: "debug", strictConfig: true}, opts)

	_, err = parseFlags([]string{"extra"}, &stderr)
	assert.ErrorContains(t, err, "unexpected arguments")
}

func TestLoadConfig_Overrides(t *testing.T) {
	path := testsupport.TempFile(t, "server.toml", []byte("[server]\naddress = \":8080\"\n\n[log]\nlevel = \"warn\"\n"))

	cfg, warnings, err := loadConfig(options{configPath: path, dbPath: "other.json", environment: config.EnvProduction})
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "other.json", cfg.Store.Path)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Server.Production())

	cfg, _, err = loadConfig(options{})
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	_, _, err = loadConfig(options{logLevel: "loud"})
	assert.Error(t, err)
}

func TestRun_ExitCodes(t *testing.T) {
	var stderr bytes.Buffer
	assert.Equal(t, 0, run(context.Background(), []string{"-h"}, &stderr))
	assert.Equal(t, 2, run(context.Background(), []string{"-nope"}, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-config", "missing.toml"}, &stderr))
	assert.Equal(t, 1, run(context.Background(), []string{"-env", "staging"}, &stderr))
}

func TestRun_ShutsDownOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stderr bytes.Buffer
	code := run(ctx, []string{"-addr", "127.0.0.1:0", "-db", testsupport.MockDB(t), "-log-level", "error"}, &stderr)
	assert.Equal(t, 0, code, stderr.String())
}
