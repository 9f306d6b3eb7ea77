package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jlrickert/cli-toolkit/toolkit"
	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
)

// FileStore keeps one YAML file per namespace under Dir. All filesystem
// access goes through the runtime so tests can jail it.
type FileStore struct {
	Runtime *toolkit.Runtime

	// Dir holds the record files. It may start with ~ or contain
	// environment variables.
	Dir string
}

// NewFileStore returns a FileStore rooted at dir.
func NewFileStore(rt *toolkit.Runtime, dir string) *FileStore {
	return &FileStore{Runtime: rt, Dir: dir}
}

func (s *FileStore) Name() string { return "file" }

// Path returns the file that holds namespace.
func (s *FileStore) Path(namespace string) (string, error) {
	dir := toolkit.ExpandEnv(s.Runtime, s.Dir)
	dir, err := toolkit.ExpandPath(s.Runtime, dir)
	if err != nil {
		return "", fmt.Errorf("unable to expand store dir %q: %w", s.Dir, err)
	}
	return filepath.Join(dir, fileName(namespace)), nil
}

func (s *FileStore) Load(ctx context.Context, namespace string) (launcher.PreferenceRecord, error) {
	lg := log.FromContext(ctx)
	path, err := s.Path(namespace)
	if err != nil {
		return launcher.PreferenceRecord{}, err
	}

	data, err := s.Runtime.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lg.Debug("preference record missing", "path", path)
			return launcher.PreferenceRecord{}, newNotFoundError(namespace)
		}
		return launcher.PreferenceRecord{}, fmt.Errorf("unable to read preference record %s: %w", path, err)
	}

	rec, err := decodeNamespace(namespace, data)
	if err != nil {
		lg.Warn("preference record corrupt", "path", path, "err", err)
		return launcher.PreferenceRecord{}, err
	}
	lg.Debug("preference record read", "path", path)
	return rec, nil
}

func (s *FileStore) Save(ctx context.Context, namespace string, rec launcher.PreferenceRecord) error {
	lg := log.FromContext(ctx)
	path, err := s.Path(namespace)
	if err != nil {
		return &WriteError{Namespace: namespace, Err: err}
	}

	data, err := Encode(rec)
	if err != nil {
		return &WriteError{Namespace: namespace, Location: path, Err: err}
	}
	if err := s.Runtime.Mkdir(filepath.Dir(path), 0o755, true); err != nil {
		return &WriteError{Namespace: namespace, Location: path, Err: err}
	}
	if err := s.Runtime.AtomicWriteFile(path, data, 0o644); err != nil {
		lg.Error("failed to write preference record", "path", path, "err", err)
		return &WriteError{Namespace: namespace, Location: path, Err: err}
	}
	lg.Debug("preference record written", "path", path)
	return nil
}

// fileName maps a namespace, which may look like a registry path, to a
// single file name.
func fileName(namespace string) string {
	ns := strings.TrimSpace(namespace)
	if ns == "" {
		ns = launcher.DefaultNamespace
	}
	ns = strings.NewReplacer(`\`, "-", "/", "-", ":", "-").Replace(ns)
	return ns + ".yaml"
}

var _ Store = (*FileStore)(nil)
