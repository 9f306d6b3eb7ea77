package launcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/stretchr/testify/require"
)

func TestLaunch_StartsEntryFile(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the entry file")
	}
	root := t.TempDir()
	makeInstall(t, root, "app.sh", []string{"1.0"}, nil)

	err := launcher.NewExecutor("app.sh").Launch(context.Background(), root, "1.0")
	require.NoError(t, err)
}

func TestLaunch_NotFound(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	makeInstall(t, root, "app.sh", nil, []string{"bare"})
	require.NoError(t, os.MkdirAll(filepath.Join(root, "dir-entry", "app.sh"), 0o755))
	ex := launcher.NewExecutor("app.sh")

	for _, version := range []string{"missing", "bare", "dir-entry", "", "..", "../etc"} {
		err := ex.Launch(context.Background(), root, version)
		require.Error(t, err, "version %q", version)
		require.True(t, launcher.IsNotFound(err), "version %q: %v", version, err)
		require.False(t, launcher.IsSpawnFailed(err))

		var le *launcher.LaunchError
		require.True(t, errors.As(err, &le))
		require.Equal(t, version, le.Version)
	}
}

func TestLaunch_SpawnFailed(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("relies on the executable bit")
	}
	root := t.TempDir()
	dir := filepath.Join(root, "1.0")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.sh"), []byte("not a program"), 0o644))

	err := launcher.NewExecutor("app.sh").Launch(context.Background(), root, "1.0")
	require.Error(t, err)
	require.ErrorIs(t, err, launcher.ErrSpawnFailed)
	require.Contains(t, err.Error(), "spawn failed")
}

func TestExecutor_EntryPath(t *testing.T) {
	t.Parallel()
	ex := launcher.NewExecutor("app.sh")
	require.Equal(t, filepath.Join("root", "2.1", "app.sh"), ex.EntryPath("root", "2.1"))
}
