package internal_test

import (
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/verlaunch/pkg/internal"
	"github.com/stretchr/testify/require"
)

func TestConfigDir_HomeFallback(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix layout")
	}
	t.Parallel()
	rt, err := toolkit.NewTestRuntime(t.TempDir(), "/home/testuser", "testuser")
	require.NoError(t, err)

	dir, err := internal.ConfigDir(rt, "verlaunch")
	require.NoError(t, err)
	require.Equal(t, filepath.Join("/home/testuser", ".config", "verlaunch"), dir)
}

func TestConfigDirOr_UsesResolvedDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix layout")
	}
	t.Parallel()
	rt, err := toolkit.NewTestRuntime(t.TempDir(), "/home/testuser", "testuser")
	require.NoError(t, err)

	require.Equal(t, "/home/testuser/.config/verlaunch",
		internal.ConfigDirOr(rt, "verlaunch", "~/.config/verlaunch"))
}
