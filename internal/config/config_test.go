package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"taskBoard/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
server:
  host: 127.0.0.1
  port: "9090"
  rate_limit: 50
  cors_origins:
    - http://localhost:3000
repository:
  type: sqlite
sqlite:
  path: /tmp/board.db
worker:
  interval: 30s
logging:
  development: true
`)

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.GetServerAddr())
	assert.Equal(t, 50, cfg.Server.RateLimit)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.CORSOrigins)
	assert.Equal(t, config.RepositorySQLite, cfg.Repository.Type)
	assert.Equal(t, "/tmp/board.db", cfg.SQLite.Path)
	assert.Equal(t, 30*time.Second, cfg.Worker.Interval)
	assert.True(t, cfg.Logging.Development)

	// defaults fill what the file leaves out
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, int32(10), cfg.Database.MaxConnections)
	assert.True(t, cfg.Worker.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "server:\n  port: \"9090\"\n")
	t.Setenv("TASKBOARD_SERVER_PORT", "7070")
	t.Setenv("TASKBOARD_REPOSITORY_TYPE", "postgres")
	t.Setenv("TASKBOARD_DATABASE_URL", "postgres://u:p@localhost:5432/board")

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, config.RepositoryPostgres, cfg.Repository.Type)
	assert.Equal(t, "postgres://u:p@localhost:5432/board", cfg.Database.URL)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"unknown repository", "repository:\n  type: mongo\n"},
		{"postgres without url", "repository:\n  type: postgres\n"},
		{"zero rate limit", "server:\n  rate_limit: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}
