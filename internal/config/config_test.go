package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, cfg.DataDir)
	assert.Empty(t, cfg.Model)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{
		YouTubeAPIKey: "yt-key",
		Model:         "gemini-2.5-flash",
		DataDir:       dir,
		Debug:         true,
	}
	require.NoError(t, cfg.Save())

	info, err := os.Stat(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvOverridesWin(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{GeminiAPIKey: "from-file", DataDir: dir}
	require.NoError(t, cfg.Save())

	t.Setenv("GEMINI_API_KEY", "from-env")
	t.Setenv("YOUTUBE_API_KEY", "yt-env")

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-env", loaded.GeminiAPIKey)
	assert.Equal(t, "yt-env", loaded.YouTubeAPIKey)
}

func TestGoogleAPIKeyOnlyFillsMissing(t *testing.T) {
	dir := t.TempDir()
	cfg := &Config{GeminiAPIKey: "from-file", DataDir: dir}
	require.NoError(t, cfg.Save())

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-env")

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "from-file", loaded.GeminiAPIKey)
}
