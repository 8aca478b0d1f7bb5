package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AOC_INPUT_DIR", "AOC_HISTORY_DB", "AOC_FORMAT", "AOC_LOG_LEVEL", "AOC_CONFIG"} {
		t.Setenv(k, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "inputs", cfg.InputDir)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "history.db", filepath.Base(cfg.HistoryDB))
}

func TestConfig_SaveLoad(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	cfg := DefaultConfig()
	cfg.InputDir = "/data/aoc"
	cfg.Format = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/data/aoc", loaded.InputDir)
	assert.Equal(t, "json", loaded.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("format: value\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "value", cfg.Format)
	assert.Equal(t, "inputs", cfg.InputDir)
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AOC_INPUT_DIR", "/env/inputs")
	t.Setenv("AOC_HISTORY_DB", "/env/history.db")
	t.Setenv("AOC_LOG_LEVEL", "DEBUG")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "/env/inputs", cfg.InputDir)
	assert.Equal(t, "/env/history.db", cfg.HistoryDB)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_ExpandsHome(t *testing.T) {
	clearEnv(t)
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("history_db: ~/x/h.db\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "x", "h.db"), cfg.HistoryDB)
}

func TestLoad_Invalid(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: [\n"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	badFormat := filepath.Join(dir, "format.yaml")
	require.NoError(t, os.WriteFile(badFormat, []byte("format: xml\n"), 0o644))
	_, err = Load(badFormat)
	assert.Error(t, err)

	t.Setenv("AOC_LOG_LEVEL", "loud")
	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDefaultPath(t *testing.T) {
	clearEnv(t)
	assert.Equal(t, "config.yaml", filepath.Base(DefaultPath()))

	t.Setenv("AOC_CONFIG", "/etc/aoc.yaml")
	assert.Equal(t, "/etc/aoc.yaml", DefaultPath())
}
