package config

import (
	"strings"
	"testing"
	"time"

	"github.com/ViniciusKumagai/desafio-tech-pill/cache"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/cacheinfra"
	"github.com/ViniciusKumagai/desafio-tech-pill/internal/server"
	"github.com/ViniciusKumagai/desafio-tech-pill/pkg/testsupport"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	return testsupport.TempFile(t, "server.toml", []byte(strings.TrimSpace(content)))
}

func TestDefault_MatchesCacheDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	got := cfg.CacheConfig()
	want := cache.DefaultConfig()
	assert.Equal(t, want.Entity, got.Entity)
	assert.Equal(t, want.Pagination, got.Pagination)
	assert.Equal(t, 300*time.Second, got.Entity.TTL)
	assert.Equal(t, 30*time.Second, got.Pagination.SweepInterval)
	assert.False(t, cfg.Server.Production())
	assert.Equal(t, server.DefaultGuardOptions(), cfg.Server.GuardOptions())
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
address = ":8080"
environment = "production"

[store]
path = "/var/lib/app/db.json"

[cache.pagination]
ttl = "2m"
sweep_interval = "15s"

[pagination]
default_limit = 25

[log]
level = "debug"
format = "text"
`)

	res, err := Load(path, LoadOptions{Strict: true})
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)

	cfg := res.Config
	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.True(t, cfg.Server.Production())
	assert.Equal(t, Duration(10*time.Second), cfg.Server.ShutdownTimeout)
	assert.Equal(t, "/var/lib/app/db.json", cfg.Store.Path)
	assert.Equal(t, Duration(2*time.Minute), cfg.Cache.Pagination.TTL)
	assert.Equal(t, Duration(15*time.Second), cfg.Cache.Pagination.SweepInterval)
	assert.Equal(t, Duration(300*time.Second), cfg.Cache.Entity.TTL)
	assert.Equal(t, 25, cfg.Pagination.DefaultLimit)
	assert.Equal(t, 10, cfg.Pagination.DefaultFirst)
	assert.Equal(t, "debug", cfg.Log.Level)

	p := cfg.Paginator()
	assert.Equal(t, 25, p.DefaultLimit)
}

func TestLoad_RateLimits(t *testing.T) {
	path := writeConfig(t, `
[server]
max_complexity = 0

[server.rate_limit]
mutation = { requests = 5, window = "1m" }

[server.rate_limit.complex]
requests = 10
`)

	res, err := Load(path, LoadOptions{Strict: true})
	require.NoError(t, err)

	guard := res.Config.Server.GuardOptions()
	assert.True(t, guard.RateLimit)
	assert.Zero(t, guard.MaxComplexity)
	assert.Equal(t, server.Limit{Requests: 100, Window: 15 * time.Minute}, guard.General)
	assert.Equal(t, server.Limit{Requests: 5, Window: time.Minute}, guard.Mutation)
	assert.Equal(t, server.Limit{Requests: 10, Window: 10 * time.Minute}, guard.Complex)

	// Disabled limits are not validated.
	path = writeConfig(t, `
[server.rate_limit]
enabled = false
general = { requests = 0, window = "0s" }
`)
	res, err = Load(path, LoadOptions{Strict: true})
	require.NoError(t, err)
	assert.False(t, res.Config.Server.GuardOptions().RateLimit)
}

func TestLoad_UnknownKeys(t *testing.T) {
	path := writeConfig(t, `
[server]
adress = ":8080"
`)

	res, err := Load(path, LoadOptions{})
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "server.adress")

	_, err = Load(path, LoadOptions{Strict: true})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown configuration keys")
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "syntax", content: `[server`, want: "server.toml"},
		{name: "bad duration", content: "[cache.entity]\nttl = \"soon\"", want: "soon"},
		{name: "environment", content: "[server]\nenvironment = \"staging\"", want: "Environment"},
		{name: "log level", content: "[log]\nlevel = \"loud\"", want: "Level"},
		{name: "page size", content: "[pagination]\ndefault_limit = -1", want: "DefaultLimit"},
		{name: "complexity", content: "[server]\nmax_complexity = -1", want: "MaxComplexity"},
		{name: "rate limit requests", content: "[server.rate_limit.general]\nrequests = 0", want: "general"},
		{name: "rate limit window", content: "[server.rate_limit]\nmutation = { requests = 5, window = \"10ms\" }", want: "Window"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content), LoadOptions{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoad_InvalidCacheSection(t *testing.T) {
	path := writeConfig(t, `
[cache.entity]
ttl = "2h"
max_ttl = "1h"
`)

	_, err := Load(path, LoadOptions{})
	require.Error(t, err)

	var cfgErr *cacheinfra.ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "entity.MaxTTL", cfgErr.Field)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("does-not-exist.toml", LoadOptions{})
	require.Error(t, err)
}

func TestDuration_Text(t *testing.T) {
	var d Duration
	require.NoError(t, d.UnmarshalText([]byte("1m30s")))
	assert.Equal(t, Duration(90*time.Second), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1m30s", string(text))

	assert.Error(t, d.UnmarshalText([]byte("later")))
}

func TestLoad_ExampleFileMatchesDefaults(t *testing.T) {
	res, err := Load("../../server.example.toml", LoadOptions{Strict: true})
	require.NoError(t, err)
	assert.Equal(t, Default(), res.Config)
}
