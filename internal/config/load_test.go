package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTempConfigFile writes a config.yaml with the given content and
// returns its path.
func createTempConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ".", cfg.Export.Dir)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TASKTRACK_LOG_LEVEL", "debug")
	t.Setenv("TASKTRACK_EXPORT_DIR", "/tmp/reports")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "/tmp/reports", cfg.Export.Dir)
}

func TestLoadFromConfigFile(t *testing.T) {
	path := createTempConfigFile(t, "log:\n  level: warn\nexport:\n  dir: ./out\n")

	cfg, err := load(path)

	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "./out", cfg.Export.Dir)
}

func TestEnvironmentOverridesConfigFile(t *testing.T) {
	t.Setenv("TASKTRACK_LOG_LEVEL", "error")
	path := createTempConfigFile(t, "log:\n  level: debug\n")

	cfg, err := load(path)

	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoadRejectsInvalidLogLevel(t *testing.T) {
	t.Setenv("TASKTRACK_LOG_LEVEL", "loud")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestLoadRejectsMalformedConfigFile(t *testing.T) {
	path := createTempConfigFile(t, "log: [not: valid\n")

	_, err := load(path)

	require.Error(t, err)
}
