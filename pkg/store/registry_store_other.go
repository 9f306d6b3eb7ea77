//go:build !windows

package store

import (
	"context"

	"github.com/jlrickert/verlaunch/pkg/launcher"
)

// RegistryStore is only available on Windows.
type RegistryStore struct{}

// NewRegistryStore reports ErrUnsupported outside Windows.
func NewRegistryStore() (*RegistryStore, error) {
	return nil, ErrUnsupported
}

func (s *RegistryStore) Name() string { return "registry" }

func (s *RegistryStore) Load(ctx context.Context, namespace string) (launcher.PreferenceRecord, error) {
	return launcher.PreferenceRecord{}, ErrUnsupported
}

func (s *RegistryStore) Save(ctx context.Context, namespace string, rec launcher.PreferenceRecord) error {
	return &WriteError{Namespace: namespace, Location: "registry", Err: ErrUnsupported}
}

var _ Store = (*RegistryStore)(nil)
