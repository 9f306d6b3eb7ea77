package cli_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tu "github.com/jlrickert/cli-toolkit/sandbox"
	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/verlaunch/pkg/cli"
	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/store"
	"github.com/stretchr/testify/require"
)

const testEntry = "app.bin"

func NewSandbox(t *testing.T, opts ...tu.Option) *tu.Sandbox {
	return tu.NewSandbox(t, &tu.Options{
		Home: "/home/testuser",
		User: "testuser",
	}, opts...)
}

func NewProcess(t *testing.T, isTTY bool, args ...string) *tu.Process {
	return tu.NewProcess(func(ctx context.Context, rt *toolkit.Runtime) (int, error) {
		return cli.Run(ctx, rt, args)
	}, isTTY)
}

// makeInstall creates a real install root with one launchable directory per
// version.
func makeInstall(t *testing.T, versions ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, v := range versions {
		dir := filepath.Join(root, v)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, testEntry), []byte("#!/bin/sh\n"), 0o755))
	}
	return root
}

// recordingLauncher records launches instead of starting processes.
type recordingLauncher struct {
	mu       sync.Mutex
	launched []string
	fail     bool
}

func (l *recordingLauncher) Launch(ctx context.Context, root, version string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.fail {
		return &launcher.LaunchError{Kind: launcher.LaunchNotFound, Version: version}
	}
	l.launched = append(l.launched, version)
	return nil
}

func (l *recordingLauncher) Launches() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.launched...)
}

// harness runs the CLI with injected collaborators.
type harness struct {
	sb       *tu.Sandbox
	store    *store.MemoryStore
	launcher *recordingLauncher
	out      bytes.Buffer
	err      bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	return &harness{
		sb:       NewSandbox(t),
		store:    store.NewMemoryStore(),
		launcher: &recordingLauncher{},
	}
}

func (h *harness) seed(t *testing.T, rec launcher.PreferenceRecord) {
	t.Helper()
	require.NoError(t, h.store.Save(context.Background(), launcher.DefaultNamespace, rec))
}

func (h *harness) record(t *testing.T) launcher.PreferenceRecord {
	t.Helper()
	rec, err := h.store.Load(context.Background(), launcher.DefaultNamespace)
	require.NoError(t, err)
	return rec
}

func (h *harness) run(args ...string) (int, error) {
	deps := &cli.Deps{
		Runtime:  h.sb.Runtime(),
		In:       strings.NewReader(""),
		Out:      &h.out,
		Err:      &h.err,
		Store:    h.store,
		Launcher: h.launcher,
	}
	return cli.RunWithDeps(h.sb.Context(), deps, append([]string{"--entry-file", testEntry}, args...))
}
