package launcher

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/jlrickert/verlaunch/pkg/log"
)

// Executor starts the entry file of an installed version as an independent
// process. It never waits for the process and does not own its lifetime.
type Executor struct {
	EntryFile string
}

// NewExecutor returns an Executor for entryFile, falling back to
// DefaultEntryFile when empty.
func NewExecutor(entryFile string) *Executor {
	if entryFile == "" {
		entryFile = DefaultEntryFile
	}
	return &Executor{EntryFile: entryFile}
}

// EntryPath returns root/version/EntryFile.
func (e *Executor) EntryPath(root, version string) string {
	return filepath.Join(root, version, e.EntryFile)
}

// Launch starts root/version/EntryFile detached from the current process.
//
// The returned error is a *LaunchError: ErrNotFound when the version is
// unusable or the entry file is missing or not a regular file, ErrSpawnFailed
// when the OS refuses to start it.
func (e *Executor) Launch(ctx context.Context, root, version string) error {
	lg := log.FromContext(ctx)

	if !validVersionName(version) {
		return newNotFoundError(version, "", nil)
	}
	path := e.EntryPath(root, version)

	info, err := os.Stat(path)
	if err != nil {
		return newNotFoundError(version, path, err)
	}
	if !info.Mode().IsRegular() {
		return newNotFoundError(version, path, nil)
	}

	cmd := exec.Command(path)
	cmd.Dir = filepath.Dir(path)
	configureDetached(cmd)

	if err := cmd.Start(); err != nil {
		lg.Warn("unable to start version", "version", version, "path", path, "err", err)
		return newSpawnFailedError(version, path, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		lg.Debug("unable to release process handle", "pid", pid, "err", err)
	}
	lg.Info("launched version", "version", version, "path", path, "pid", pid)
	return nil
}

// validVersionName rejects identifiers that would escape the install root.
// Names produced by Scanner always pass; persisted names may not.
func validVersionName(version string) bool {
	if version == "" || version == "." || version == ".." {
		return false
	}
	return !strings.ContainsAny(version, `/\`)
}
