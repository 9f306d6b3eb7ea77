package store

import (
	"errors"
	"fmt"
)

// Sentinel errors used for simple equality-style checks.
var (
	// ErrNotFound indicates no record is stored under the namespace.
	ErrNotFound = errors.New("preference record not found")

	// ErrCorrupt indicates a stored record could not be decoded.
	ErrCorrupt = errors.New("preference record corrupt")

	// ErrWrite indicates the record could not be persisted.
	ErrWrite = errors.New("unable to write preference record")

	// ErrUnsupported indicates the backend is not available on this platform.
	ErrUnsupported = errors.New("store not supported on this platform")
)

// CorruptError carries the namespace and decode failure of an unreadable
// record.
type CorruptError struct {
	Namespace string
	Err       error
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("preference record %q corrupt: %v", e.Namespace, e.Err)
}

func (e *CorruptError) Is(target error) bool { return target == ErrCorrupt }

func (e *CorruptError) Unwrap() error { return e.Err }

// WriteError wraps a failure to persist a record. It is surfaced to the user
// because a silent failure would degrade every later run.
type WriteError struct {
	Namespace string
	Location  string
	Err       error
}

func (e *WriteError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("unable to write preference record %q to %s: %v", e.Namespace, e.Location, e.Err)
	}
	return fmt.Sprintf("unable to write preference record %q: %v", e.Namespace, e.Err)
}

func (e *WriteError) Is(target error) bool { return target == ErrWrite }

func (e *WriteError) Unwrap() error { return e.Err }

func newNotFoundError(namespace string) error {
	return fmt.Errorf("%w: %q", ErrNotFound, namespace)
}
