package commands_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/foundryhq/cbe/cmd/cbe/commands"
	"github.com/foundryhq/cbe/internal/adapters/logger"
	"github.com/foundryhq/cbe/internal/adapters/statcache"
	"github.com/foundryhq/cbe/internal/app"
	"github.com/foundryhq/cbe/internal/core/ports/mocks"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, os.Chdir(cwd)) })
	require.NoError(t, os.Chdir(dir))
	return dir
}

func TestRun_Success(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.cpp"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "build.cbe"), []byte("DEF|cc|gcc\ncc|a.cpp|a.o\n"), 0o644))

	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)
	runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(0, nil).Times(1)

	a := app.New(logger.New(), statcache.New(), runner, logger.NewProgress(os.Stdout))
	cli := commands.New(a)
	cli.SetArgs([]string{"run"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	a := app.New(logger.New(), statcache.New(), runner, logger.NewProgress(os.Stdout))
	cli := commands.New(a)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
}

func TestRoot_Help(t *testing.T) {
	ctrl := gomock.NewController(t)
	runner := mocks.NewMockProcessRunner(ctrl)

	a := app.New(logger.New(), statcache.New(), runner, logger.NewProgress(os.Stdout))
	cli := commands.New(a)
	cli.SetArgs([]string{"--help"})

	require.NoError(t, cli.Execute(context.Background()))
}
