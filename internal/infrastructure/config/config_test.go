package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := `
server:
  port: 9090
  allowed_origins:
    - http://localhost:4000
storage:
  database_path: /tmp/test_check.db
check:
  assign_new_people: true
observability:
  logging:
    level: debug
    format: json
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, []string{"http://localhost:4000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, "/tmp/test_check.db", cfg.Storage.DatabasePath)
	assert.True(t, cfg.Check.AssignNewPeople)
	assert.Equal(t, "debug", cfg.Observability.Logging.Level)
	assert.Equal(t, "json", cfg.Observability.Logging.Format)
}

func TestLoadExpandsEnvVars(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	t.Setenv("TEST_CHECK_DB", "expanded.db")
	content := "storage:\n  database_path: ${TEST_CHECK_DB}\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "expanded.db", cfg.Storage.DatabasePath)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	content := "server:\n  port: 3333\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3333, cfg.Server.Port)
	assert.Equal(t, "check_splitter.db", cfg.Storage.DatabasePath)
	assert.False(t, cfg.Check.AssignNewPeople)
	assert.Equal(t, "info", cfg.Observability.Logging.Level)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "8181")
	t.Setenv("CHECK_DB_PATH", "env.db")
	t.Setenv("CHECK_ASSIGN_NEW_PEOPLE", "true")
	t.Setenv("LOG_LEVEL", "warn")

	cfg := LoadFromEnv()
	assert.Equal(t, 8181, cfg.Server.Port)
	assert.Equal(t, "env.db", cfg.Storage.DatabasePath)
	assert.True(t, cfg.Check.AssignNewPeople)
	assert.Equal(t, "warn", cfg.Observability.Logging.Level)
}

func TestLoadOrEnvFallsBack(t *testing.T) {
	cfg := LoadOrEnvWithPath(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.NotNil(t, cfg)
	assert.Equal(t, 8080, cfg.Server.Port)
}
