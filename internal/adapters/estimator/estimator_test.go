package estimator_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foundryhq/cbe/internal/adapters/estimator"
	"github.com/foundryhq/cbe/internal/core/domain"
)

func TestLoad_ValidEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimates.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.o|10\nb.o|3\n"), 0o644))

	e, err := estimator.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 10, e.Estimate(domain.NewPath("a.o")))
	assert.Equal(t, 3, e.Estimate(domain.NewPath("b.o")))
}

func TestLoad_UnknownPathIsZero(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimates.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.o|10\n"), 0o644))

	e, err := estimator.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Estimate(domain.NewPath("unknown.o")))
}

func TestLoad_MalformedLinesIgnored(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "estimates.txt")
	require.NoError(t, os.WriteFile(path, []byte("a.o|notanumber\nb.o|-5\nc.o\nc.o|7\n"), 0o644))

	e, err := estimator.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 0, e.Estimate(domain.NewPath("a.o")))
	assert.Equal(t, 0, e.Estimate(domain.NewPath("b.o")))
	assert.Equal(t, 7, e.Estimate(domain.NewPath("c.o")))
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	e, err := estimator.Load(filepath.Join(dir, "nope.txt"))
	require.NoError(t, err)
	assert.Equal(t, 0, e.Estimate(domain.NewPath("a.o")))
}
