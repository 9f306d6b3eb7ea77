package launcher

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrNotFound indicates the entry file for a version does not exist or is
	// not a regular file.
	ErrNotFound = errors.New("entry file not found")

	// ErrSpawnFailed indicates the operating system refused to start the
	// entry file.
	ErrSpawnFailed = errors.New("unable to start process")
)

// LaunchErrorKind classifies a LaunchError.
type LaunchErrorKind int

const (
	LaunchNotFound LaunchErrorKind = iota
	LaunchSpawnFailed
)

func (k LaunchErrorKind) String() string {
	switch k {
	case LaunchNotFound:
		return "not found"
	case LaunchSpawnFailed:
		return "spawn failed"
	default:
		return "unknown"
	}
}

// LaunchError is returned by Executor.Launch. Callers that only care whether
// a launch worked can treat any non-nil error the same way; callers that need
// the reason use errors.Is with ErrNotFound or ErrSpawnFailed.
type LaunchError struct {
	Kind    LaunchErrorKind
	Version string
	Path    string
	Err     error
}

func (e *LaunchError) Error() string {
	msg := fmt.Sprintf("launch %q", e.Version)
	if e.Path != "" {
		msg = fmt.Sprintf("launch %q (%s)", e.Version, e.Path)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", msg, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %s", msg, e.Kind)
}

func (e *LaunchError) Is(target error) bool {
	switch e.Kind {
	case LaunchNotFound:
		return target == ErrNotFound
	case LaunchSpawnFailed:
		return target == ErrSpawnFailed
	}
	return false
}

func (e *LaunchError) Unwrap() error { return e.Err }

func newNotFoundError(version, path string, err error) error {
	return &LaunchError{Kind: LaunchNotFound, Version: version, Path: path, Err: err}
}

func newSpawnFailedError(version, path string, err error) error {
	return &LaunchError{Kind: LaunchSpawnFailed, Version: version, Path: path, Err: err}
}

// IsNotFound reports whether err is (or wraps) a missing entry file.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsSpawnFailed reports whether err is (or wraps) an OS-level start failure.
func IsSpawnFailed(err error) bool {
	return errors.Is(err, ErrSpawnFailed)
}
