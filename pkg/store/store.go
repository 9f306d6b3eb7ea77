// Package store persists the launcher's PreferenceRecord under a namespace.
//
// Implementations share one contract: Load reports a missing record with
// ErrNotFound and an unreadable one with ErrCorrupt; Save reports any failure
// as a *WriteError. The record is stored as a field-labelled YAML blob so it
// can be read and diffed by hand.
package store

import (
	"context"
	"errors"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
)

// Store is the durable home of the preference record.
type Store interface {
	// Name returns a short, human-friendly name for the backend.
	Name() string

	// Load returns the record saved under namespace.
	Load(ctx context.Context, namespace string) (launcher.PreferenceRecord, error)

	// Save replaces the record saved under namespace.
	Save(ctx context.Context, namespace string, rec launcher.PreferenceRecord) error
}

// LoadOrReset loads the record for namespace. A missing or corrupt record is
// replaced with def once and loaded again; a second failure is returned.
func LoadOrReset(ctx context.Context, s Store, namespace string, def launcher.PreferenceRecord) (launcher.PreferenceRecord, error) {
	lg := log.FromContext(ctx)

	rec, err := s.Load(ctx, namespace)
	if err == nil {
		return rec, nil
	}
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, ErrCorrupt) {
		return launcher.PreferenceRecord{}, err
	}

	lg.Info("resetting preference record", "store", s.Name(), "namespace", namespace, "reason", err)
	if err := s.Save(ctx, namespace, def); err != nil {
		return launcher.PreferenceRecord{}, err
	}

	rec, err = s.Load(ctx, namespace)
	if err != nil {
		lg.Error("preference record unreadable after reset", "store", s.Name(), "namespace", namespace, "err", err)
		return launcher.PreferenceRecord{}, err
	}
	return rec, nil
}
