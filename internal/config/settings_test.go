package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)

	assert.Equal(t, MaxTickFactor, s.MaxTickFactor)
	assert.Equal(t, ScreenWidth, s.Window.Width)
	assert.Equal(t, "rogue", s.Player.Class)
	assert.Equal(t, 100, s.Player.Hitpoints)
}

func TestLoadSettingsFromFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := []byte("seed: 42\ndebug: true\ncampaign:\n  random_levels: 3\nplayer:\n  class: warrior\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))
	t.Setenv("ADVENTURER_WINDOW_WIDTH", "800")

	s, err := LoadSettings(path)
	require.NoError(t, err)

	assert.Equal(t, int64(42), s.Seed)
	assert.True(t, s.Debug)
	assert.Equal(t, 3, s.Campaign.RandomLevels)
	assert.Equal(t, "warrior", s.Player.Class)
	assert.Equal(t, 800, s.Window.Width)
}

func TestLoadSettingsMissingFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
