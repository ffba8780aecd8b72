package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, WindowWidth, s.Window.Width)
	assert.Equal(t, WindowHeight, s.Window.Height)
	assert.Equal(t, WindowTitle, s.Window.Title)
	assert.Equal(t, DefaultTrafficCars, s.Traffic.Cars)
	assert.Equal(t, uint64(0), s.Seed)
}

func TestLoadSettingsOverridesAndBackfills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "drift.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"seed: 1234\nwindow:\n  width: 640\ntraffic:\n  cars: 8\n",
	), 0o644))

	s, err := LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, uint64(1234), s.Seed)
	assert.Equal(t, 640, s.Window.Width)
	assert.Equal(t, WindowHeight, s.Window.Height) // unset, backfilled
	assert.Equal(t, WindowTitle, s.Window.Title)
	assert.Equal(t, 8, s.Traffic.Cars)
}

func TestLoadSettingsBadInput(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [not a map"), 0o644))
	_, err = LoadSettings(path)
	assert.Error(t, err)
}
