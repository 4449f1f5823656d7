package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fleet.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, ":8090", cfg.Addr)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrent)
	assert.Empty(t, cfg.Miners)
	assert.Empty(t, cfg.Redis.URL)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
addr: ":9000"
poll_interval: 1m
fetch_timeout: 10s
max_concurrent: 2
jwt_signing_key: topsecret
redis:
  url: redis://localhost:6379/0
  pool_size: 4
miners:
  - id: rack1-01
    host: 10.0.0.1
    user: admin
    pass: hunter2
    model: M50SVH50
  - id: rack1-02
    host: 10.0.0.2
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, time.Minute, cfg.PollInterval)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 2, cfg.MaxConcurrent)
	assert.Equal(t, "topsecret", cfg.JWTSigningKey)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 4, cfg.Redis.PoolSize)

	require.Len(t, cfg.Miners, 2)
	assert.Equal(t, "rack1-01", cfg.Miners[0].ID)
	assert.Equal(t, "10.0.0.1", cfg.Miners[0].Host)
	assert.Equal(t, "M50SVH50", cfg.Miners[0].Model)
	assert.Empty(t, cfg.Miners[1].Model)
}

func TestLoadEnvOverrides(t *testing.T) {
	path := writeConfig(t, `addr: ":9000"`)
	t.Setenv("CHIPSCOPE_ADDR", ":7070")
	t.Setenv("CHIPSCOPE_JWT_SIGNING_KEY", "env-key")
	t.Setenv("CHIPSCOPE_REDIS_URL", "redis://cache:6379")
	t.Setenv("CHIPSCOPE_POLL_INTERVAL", "45s")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "env-key", cfg.JWTSigningKey)
	assert.Equal(t, "redis://cache:6379", cfg.Redis.URL)
	assert.Equal(t, 45*time.Second, cfg.PollInterval)
}

func TestLoadBadPollInterval(t *testing.T) {
	t.Setenv("CHIPSCOPE_POLL_INTERVAL", "soon")
	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CHIPSCOPE_POLL_INTERVAL")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "addr: [unclosed")
	_, err := Load(path)
	require.Error(t, err)
}

func TestLoadRejectsDuplicateMinerIDs(t *testing.T) {
	path := writeConfig(t, `
miners:
  - id: rack1-01
    host: 10.0.0.1
  - id: rack1-01
    host: 10.0.0.2
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate miner id")
}

func TestLoadRejectsMissingMinerID(t *testing.T) {
	path := writeConfig(t, `
miners:
  - host: 10.0.0.1
`)
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "id is required")
}

func TestLoadRejectsNonPositiveSettings(t *testing.T) {
	path := writeConfig(t, `
poll_interval: -5s
fetch_timeout: 0s
max_concurrent: -1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.FetchTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrent)
}
