package settings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundryhq/cbe/internal/adapters/settings"
)

func TestLoad_MissingFileIsZeroValue(t *testing.T) {
	dir := t.TempDir()
	s, err := settings.Load(filepath.Join(dir, "cbe.yaml"))
	require.NoError(t, err)
	assert.Equal(t, settings.Settings{}, s)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cbe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("manifestFile: custom.cbe\njobs: 4\ndryRun: true\n"), 0o644))

	s, err := settings.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "custom.cbe", s.ManifestFile)
	assert.Equal(t, 4, s.Jobs)
	assert.True(t, s.DryRun)
}

func TestLoad_MalformedYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cbe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("not: [valid"), 0o644))

	_, err := settings.Load(path)
	assert.Error(t, err)
}
