package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "server.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNew(t *testing.T) {
	path := writeConfig(t, `
[server]
host = "127.0.0.1"
port = 8080
debug_mode = true
profile_secret = "from-file"
profile_ttl = "24h"

[session]
backend = "redis"
redis_addr = "localhost:6379"
redis_db = 2

[auth]
latency = "0s"
`)
	t.Setenv("BIZNESS_PROFILE_SECRET", "from-env")

	cfg, err := New(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.Server.Debug)
	assert.Equal(t, "from-env", cfg.Server.ProfileSecret)
	assert.Equal(t, 24*time.Hour, cfg.Server.ProfileTTL)
	assert.Equal(t, BackendRedis, cfg.Session.Backend)
	assert.Equal(t, 2, cfg.Session.RedisDB)
	assert.Equal(t, "bizness:user:", cfg.Session.KeyPrefix)
	assert.Equal(t, time.Duration(0), cfg.AuthLatency())
	assert.False(t, cfg.TLS())
}

func TestNew_Defaults(t *testing.T) {
	cfg, err := New(writeConfig(t, `
[server]
tls_cert = "cert.pem"
tls_key = "key.pem"
`))
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, BackendSQLite, cfg.Session.Backend)
	assert.Equal(t, "session.sqlite", cfg.Session.SqliteFile)
	assert.Equal(t, 1024, cfg.Server.Panels)
	assert.Equal(t, 1500*time.Millisecond, cfg.AuthLatency())
	assert.True(t, cfg.TLS())
}

func TestNew_MissingFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}
