//go:build windows

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jlrickert/verlaunch/pkg/launcher"
	"github.com/jlrickert/verlaunch/pkg/log"
	"golang.org/x/sys/windows/registry"
)

// registryValueName is the string value holding the YAML blob.
const registryValueName = "config"

// RegistryStore keeps the record as a string value under
// HKEY_CURRENT_USER\Software\<namespace>.
type RegistryStore struct{}

// NewRegistryStore returns the per-user registry store.
func NewRegistryStore() (*RegistryStore, error) {
	return &RegistryStore{}, nil
}

func (s *RegistryStore) Name() string { return "registry" }

func registryKeyPath(namespace string) string {
	if namespace == "" {
		namespace = launcher.DefaultNamespace
	}
	return `Software\` + namespace
}

func (s *RegistryStore) Load(ctx context.Context, namespace string) (launcher.PreferenceRecord, error) {
	lg := log.FromContext(ctx)
	keyPath := registryKeyPath(namespace)

	k, err := registry.OpenKey(registry.CURRENT_USER, keyPath, registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return launcher.PreferenceRecord{}, newNotFoundError(namespace)
		}
		return launcher.PreferenceRecord{}, fmt.Errorf("unable to open registry key %s: %w", keyPath, err)
	}
	defer k.Close()

	blob, _, err := k.GetStringValue(registryValueName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return launcher.PreferenceRecord{}, newNotFoundError(namespace)
		}
		// A value of the wrong type is as good as a damaged one.
		return launcher.PreferenceRecord{}, &CorruptError{Namespace: namespace, Err: err}
	}
	lg.Debug("preference record read", "key", keyPath)
	return decodeNamespace(namespace, []byte(blob))
}

func (s *RegistryStore) Save(ctx context.Context, namespace string, rec launcher.PreferenceRecord) error {
	lg := log.FromContext(ctx)
	keyPath := registryKeyPath(namespace)
	location := `HKCU\` + keyPath

	data, err := Encode(rec)
	if err != nil {
		return &WriteError{Namespace: namespace, Location: location, Err: err}
	}

	k, _, err := registry.CreateKey(registry.CURRENT_USER, keyPath, registry.SET_VALUE)
	if err != nil {
		return &WriteError{Namespace: namespace, Location: location, Err: err}
	}
	defer k.Close()

	if err := k.SetStringValue(registryValueName, string(data)); err != nil {
		lg.Error("failed to write preference record", "key", keyPath, "err", err)
		return &WriteError{Namespace: namespace, Location: location, Err: err}
	}
	return nil
}

var _ Store = (*RegistryStore)(nil)
