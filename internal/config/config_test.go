package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8088", cfg.ServerPort)
	assert.Equal(t, DriverJSON, cfg.StoreDriver)
	assert.Empty(t, cfg.AIAPIKey)
}

func TestLoadFromEnvFile(t *testing.T) {
	dir := t.TempDir()
	env := "STORE_DRIVER=sqlite\nSERVER_PORT=9000\nAI_API_KEY=sk-test\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(env), 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.StoreDriver)
	assert.Equal(t, "9000", cfg.ServerPort)
	assert.Equal(t, "sk-test", cfg.AIAPIKey)
}
