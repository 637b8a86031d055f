package logging

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesToRotatedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, err := New(Options{Dir: dir})
	require.NoError(t, err)

	logger.Info("lookup completed")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(dir, FileName(time.Now())))
	require.NoError(t, err)
	assert.Contains(t, string(data), "lookup completed")
}

func TestNew_DebugLevel(t *testing.T) {
	dir := t.TempDir()

	logger, err := New(Options{Dir: dir})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(-1))

	logger, err = New(Options{Dir: dir, Debug: true})
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(-1))
}

func TestNew_BadDirFallsBackToStderr(t *testing.T) {
	file := filepath.Join(t.TempDir(), "not-a-dir")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))

	logger, err := New(Options{Dir: filepath.Join(file, "logs")})
	require.Error(t, err)
	require.NotNil(t, logger)
	assert.True(t, logger.Core().Enabled(0))
}

func TestFileName(t *testing.T) {
	day := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, "philologus-2026-10-19.log", FileName(day))
}
