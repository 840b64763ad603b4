package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_Defaults(t *testing.T) {
	cfg, err := InitConfig("")
	require.NoError(t, err)

	assert.Equal(t, "crowdpulse", cfg.App.Name)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 5, cfg.Connection.MaxReconnectAttempts)
	assert.Equal(t, 5*time.Second, cfg.Crowd.LivePollInterval)
	assert.Equal(t, 15*time.Second, cfg.Crowd.AnalysisInterval)
	assert.Equal(t, 30*time.Second, cfg.Crowd.PollInterval)
	assert.Equal(t, 2.0, cfg.Crowd.StaleFactor)
	assert.Equal(t, 5*time.Minute, cfg.Sharing.RequestTTL)
	assert.Equal(t, time.Minute, cfg.Sharing.CleanupInterval)
	assert.Empty(t, cfg.NATS.URL)
}

func TestInitConfig_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte(`
app:
  name: crowdpulse-test
  user_id: alice
server:
  port: 9090
crowd:
  poll_interval: 45s
nats:
  url: nats://localhost:4222
`)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	t.Setenv("SERVER_PORT", "9191")
	t.Setenv("SHARING_REQUEST_TTL", "2m")

	cfg, err := InitConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "crowdpulse-test", cfg.App.Name)
	assert.Equal(t, "alice", cfg.App.UserID)
	assert.Equal(t, 9191, cfg.Server.Port)
	assert.Equal(t, 45*time.Second, cfg.Crowd.PollInterval)
	assert.Equal(t, 2*time.Minute, cfg.Sharing.RequestTTL)
	assert.Equal(t, "nats://localhost:4222", cfg.NATS.URL)
}

func TestInitConfig_Invalid(t *testing.T) {
	t.Setenv("CROWD_STALE_FACTOR", "0")

	_, err := InitConfig("")
	assert.Error(t, err)
}

func TestInitConfig_MissingFile(t *testing.T) {
	_, err := InitConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
