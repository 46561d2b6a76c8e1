package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "file", cfg.Storage.Backend)
	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, 0.8, cfg.Demo.AcceptProbability)
	assert.Equal(t, "2s", cfg.Demo.ApprovalDelay)
	assert.Equal(t, "1500ms", cfg.Demo.MentorResolveDelay)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Empty(t, cfg.Demo.BootstrapURL)
	assert.Empty(t, cfg.Messaging.NATSURL)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
server:
  port: "9090"
storage:
  backend: memory
demo:
  accept_probability: 0.5
  approval_delay: 500ms
`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Storage.Backend)
	assert.Equal(t, 0.5, cfg.Demo.AcceptProbability)
	assert.Equal(t, "500ms", cfg.Demo.ApprovalDelay)
	// Untouched fields keep their defaults.
	assert.Equal(t, "development", cfg.Server.Mode)
	assert.Equal(t, "1500ms", cfg.Demo.MentorResolveDelay)
}

func TestLoadConfigEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("STORAGE_BACKEND", "redis")
	t.Setenv("DEMO_ACCEPT_PROBABILITY", "0.25")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "redis", cfg.Storage.Backend)
	assert.Equal(t, 0.25, cfg.Demo.AcceptProbability)
}

func TestLoadConfigRejectsUnknownBackend(t *testing.T) {
	t.Setenv("STORAGE_BACKEND", "postgres")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadProbability(t *testing.T) {
	t.Setenv("DEMO_ACCEPT_PROBABILITY", "1.5")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsBadDelay(t *testing.T) {
	t.Setenv("DEMO_APPROVAL_DELAY", "soon")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
