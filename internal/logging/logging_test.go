package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWritesToFile(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, true)
	require.NoError(t, err)

	logger.Info("hello")
	logger.Debug("details")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "chiseled.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
	assert.Contains(t, string(data), "details")
}

func TestNewWithoutDebugDropsDebugLines(t *testing.T) {
	dir := t.TempDir()
	logger, err := New(dir, false)
	require.NoError(t, err)

	logger.Debug("invisible")
	require.NoError(t, logger.Sync())

	data, err := os.ReadFile(filepath.Join(dir, "chiseled.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "invisible")
}
