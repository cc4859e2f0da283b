package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env"), SearchPaths: []string{dir}})
	require.NoError(t, err)

	assert.Equal(t, DefaultDataDir, cfg.DataDir)
	assert.Equal(t, 6, cfg.PerPage)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 10*time.Minute, cfg.RedisTTL)
}

func TestLoadYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "quillpad.yaml", `
data:
  dir: /var/lib/quillpad
blog:
  per_page: 10
log:
  level: debug
redis:
  addr: localhost:6379
  ttl: 30s
`)
	t.Setenv("QUILLPAD_LOG_LEVEL", "warn")

	cfg, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env"), SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/quillpad", cfg.DataDir)
	assert.Equal(t, 10, cfg.PerPage)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 30*time.Second, cfg.RedisTTL)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "test.env", "QUILLPAD_DATA_DIR=from-dotenv\n")
	// godotenv never overrides variables that are already set, and t.Setenv
	// restores the previous state when the test ends.
	t.Setenv("QUILLPAD_DATA_DIR", "")
	require.NoError(t, os.Unsetenv("QUILLPAD_DATA_DIR"))

	cfg, err := Load(Options{EnvFile: envFile, SearchPaths: []string{dir}})
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv", cfg.DataDir)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(Options{EnvFile: filepath.Join(dir, "missing.env"), ConfigFile: filepath.Join(dir, "nope.yaml")})
	assert.Error(t, err)

	path := writeFile(t, dir, "custom.yaml", "blog:\n  per_page: 0\n")
	_, err = Load(Options{EnvFile: filepath.Join(dir, "missing.env"), ConfigFile: path})
	assert.Error(t, err)
}
