package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	v, err := New()
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://solana-monitoring-app.onrender.com", cfg.Remote.BaseURL)
	assert.Equal(t, "https://sol-transfer-backend.vercel.app", cfg.Remote.StopBaseURL)
	assert.Equal(t, 30*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, 5*time.Second, cfg.Feed.Interval)
	assert.Equal(t, BackendTOML, cfg.State.Backend)
	assert.Equal(t, filepath.Join(homeDir, ".sat", "state.toml"), cfg.State.Path)
	assert.Equal(t, filepath.Join(homeDir, ".sat", "state.db"), cfg.State.SQLitePath)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "127.0.0.1:8787", cfg.Serve.Addr)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SAT_REMOTE_BASE_URL", "http://127.0.0.1:9000")
	t.Setenv("SAT_FEED_INTERVAL", "2s")
	t.Setenv("SAT_STATE_BACKEND", "sqlite")
	t.Setenv("SAT_LOG_LEVEL", "DEBUG")

	v, err := New()
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9000", cfg.Remote.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Feed.Interval)
	assert.Equal(t, BackendSQLite, cfg.State.Backend)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadReadsConfigFile(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)
	require.NoError(t, os.MkdirAll(filepath.Join(homeDir, ".sat"), 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(homeDir, ".sat", "config.toml"), []byte(`
[remote]
stop_base_url = "https://stop.example.com"

[log]
format = "json"
`), 0o600))

	v, err := New()
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, "https://stop.example.com", cfg.Remote.StopBaseURL)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidateCollectsEveryProblem(t *testing.T) {
	t.Parallel()

	err := Config{
		Remote: RemoteConfig{BaseURL: "ftp://example.com"},
		State:  StateConfig{Backend: "redis"},
		Log:    LogConfig{Level: "trace", Format: "xml"},
	}.Validate()
	require.Error(t, err)

	for _, fragment := range []string{
		"remote.base_url must use http or https",
		"remote.timeout must be positive",
		"feed.interval must be positive",
		`state.backend must be "toml" or "sqlite", got "redis"`,
		"log.level must be one of",
		"log.format must be text or json",
		"serve.addr is required",
	} {
		assert.ErrorContains(t, err, fragment)
	}
}
