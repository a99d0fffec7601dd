package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigLoadSave(t *testing.T) {
	tempDir := t.TempDir()

	// Override the home directory environment variable for testing
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir) // For Windows compatibility in tests

	cfg, err := Load()
	require.NoError(t, err, "loading a missing config should not fail")
	require.NotNil(t, cfg)
	assert.Equal(t, &AppConfig{}, cfg)

	cfg.DefaultFrom = "NDLS"
	cfg.DefaultTo = "BCT"
	cfg.AccentColor = "212"
	require.NoError(t, Save(cfg))

	configPath := filepath.Join(tempDir, ".trainbot.json")
	_, err = os.Stat(configPath)
	assert.NoError(t, err, "expected config file at %s", configPath)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestConfigParseError(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("USERPROFILE", tempDir)

	configPath := filepath.Join(tempDir, ".trainbot.json")
	require.NoError(t, os.WriteFile(configPath, []byte("invalid json { content"), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestSetDefaultRoute(t *testing.T) {
	cfg := &AppConfig{}

	cfg.SetDefaultFrom("  New Delhi ")
	cfg.SetDefaultTo("bct")
	assert.Equal(t, "NDLS", cfg.DefaultFrom)
	assert.Equal(t, "New Delhi", cfg.DefaultFromName)
	assert.Equal(t, "BCT", cfg.DefaultTo)
	assert.Empty(t, cfg.DefaultToName, "a code needs no separate display name")

	assert.Equal(t, "New Delhi (NDLS)", cfg.FromLabel())
	assert.Equal(t, "BCT", cfg.ToLabel())

	cfg.SetDefaultFrom("")
	assert.Empty(t, cfg.DefaultFrom)
	assert.Empty(t, cfg.DefaultFromName)
	assert.Empty(t, cfg.FromLabel())
}

func TestSetDefaultRoute_RoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := &AppConfig{}
	cfg.SetDefaultFrom("mumbai central")
	require.NoError(t, Save(cfg))

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "MMCT", loaded.DefaultFrom)
	assert.Equal(t, "mumbai central (MMCT)", loaded.FromLabel())
}
