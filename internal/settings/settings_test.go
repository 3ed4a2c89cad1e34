package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets a variable while keeping t.Setenv's restore hook.
func clearEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t, "SPHLAB_DATA_DIR")
	clearEnv(t, "SPHLAB_CATALOG")
	clearEnv(t, "SPHLAB_LOG_LEVEL")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ".sphlab", s.DataDir)
	assert.Empty(t, s.CatalogPath)
	assert.Equal(t, "info", s.LogLevel)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SPHLAB_DATA_DIR", "/var/lib/sphlab")
	t.Setenv("SPHLAB_CATALOG", "/tmp/cat.db")
	t.Setenv("SPHLAB_LOG_LEVEL", "debug")

	s, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/sphlab", s.DataDir)
	assert.Equal(t, "/tmp/cat.db", s.CatalogPath)
	assert.Equal(t, "debug", s.LogLevel)
}

func TestCatalogOrDefault(t *testing.T) {
	s := Settings{DataDir: "data"}
	assert.Equal(t, filepath.Join("data", "catalog.db"), s.CatalogOrDefault())

	s.CatalogPath = "elsewhere.db"
	assert.Equal(t, "elsewhere.db", s.CatalogOrDefault())
}
