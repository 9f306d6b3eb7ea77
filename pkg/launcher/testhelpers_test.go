package launcher_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/stretchr/testify/require"
)

// fakeScanner returns a fixed set per root and counts calls.
type fakeScanner struct {
	roots map[string]launcher.VersionSet
	calls []string
}

func (s *fakeScanner) Scan(ctx context.Context, root string) launcher.VersionSet {
	s.calls = append(s.calls, root)
	if set, ok := s.roots[root]; ok {
		return set.Clone()
	}
	return launcher.VersionSet{}
}

// fakeLauncher succeeds only for versions listed in ok.
type fakeLauncher struct {
	ok    map[string]bool
	calls []string
}

func newFakeLauncher(ok ...string) *fakeLauncher {
	l := &fakeLauncher{ok: map[string]bool{}}
	for _, v := range ok {
		l.ok[v] = true
	}
	return l
}

func (l *fakeLauncher) Launch(ctx context.Context, root, version string) error {
	l.calls = append(l.calls, root+"|"+version)
	if l.ok[root+"|"+version] || l.ok[version] {
		return nil
	}
	return &launcher.LaunchError{Kind: launcher.LaunchNotFound, Version: version}
}

// fakeGateway replays scripted answers and records what it was shown.
type fakeGateway struct {
	dirs      []dirAnswer
	choices   []launcher.Choice
	dirCalls  int
	shown     []launcher.Selection
	pickErr   error
	lastRoots []string
}

type dirAnswer struct {
	dir string
	ok  bool
}

func (g *fakeGateway) PickDirectory(ctx context.Context, current string) (string, bool, error) {
	g.dirCalls++
	g.lastRoots = append(g.lastRoots, current)
	if len(g.dirs) == 0 {
		return "", false, nil
	}
	a := g.dirs[0]
	g.dirs = g.dirs[1:]
	return a.dir, a.ok, nil
}

func (g *fakeGateway) PickOne(ctx context.Context, sel launcher.Selection) (launcher.Choice, error) {
	g.shown = append(g.shown, sel)
	if g.pickErr != nil {
		return launcher.Choice{}, g.pickErr
	}
	if len(g.choices) == 0 {
		return launcher.Choice{Action: launcher.ActionClose, Selected: sel.Preselected, Remember: sel.Remember}, nil
	}
	c := g.choices[0]
	g.choices = g.choices[1:]
	return c, nil
}

var errGateway = errors.New("terminal gone")

// makeInstall creates root/<version>/<entry> for each version with an entry
// file, and root/<version> alone for each bare directory.
func makeInstall(t *testing.T, root, entry string, withEntry []string, bare []string) {
	t.Helper()
	for _, v := range withEntry {
		dir := filepath.Join(root, v)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(dir, entry), []byte("#!/bin/sh\nexit 0\n"), 0o755))
	}
	for _, v := range bare {
		require.NoError(t, os.MkdirAll(filepath.Join(root, v), 0o755))
	}
}
