package launcher

import (
	"context"
	"os"
	"path/filepath"

	"github.com/jlrickert/verlaunch/pkg/log"
)

// Scanner discovers installed versions below an install root. A version is a
// direct child directory that contains EntryFile as a regular file.
type Scanner struct {
	EntryFile string
}

// NewScanner returns a Scanner for entryFile, falling back to
// DefaultEntryFile when empty.
func NewScanner(entryFile string) *Scanner {
	if entryFile == "" {
		entryFile = DefaultEntryFile
	}
	return &Scanner{EntryFile: entryFile}
}

// Scan lists root and returns the set of valid versions. A root that cannot
// be listed yields the empty set; that is a normal outcome, not an error.
func (s *Scanner) Scan(ctx context.Context, root string) VersionSet {
	lg := log.FromContext(ctx)
	found := VersionSet{}
	if root == "" {
		return found
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		lg.Debug("install root not listable", "root", root, "err", err)
		return found
	}

	for _, entry := range entries {
		name := entry.Name()
		dir := filepath.Join(root, name)

		// Stat rather than entry.IsDir so symlinked version dirs count.
		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entryPath := filepath.Join(dir, s.EntryFile)
		fi, err := os.Stat(entryPath)
		if err != nil {
			lg.Debug("skipping directory without entry file", "dir", dir, "entry", s.EntryFile)
			continue
		}
		if !fi.Mode().IsRegular() {
			lg.Debug("skipping directory with non-regular entry", "path", entryPath)
			continue
		}
		found.Add(name)
	}

	lg.Debug("scan complete", "root", root, "versions", found.Sorted())
	return found
}
