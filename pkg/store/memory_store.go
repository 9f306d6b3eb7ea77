package store

import (
	"context"
	"errors"
	"sync"

	"github.com/jlrickert/verlaunch/pkg/launcher"
)

// MemoryStore keeps encoded records in memory. It is meant for tests and for
// embedding the engine without touching disk.
//
// Records are stored encoded so a MemoryStore exercises the same codec as
// the durable backends; Corrupt can place arbitrary bytes under a namespace.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte

	// FailWrites makes every Save fail with a *WriteError.
	FailWrites bool
}

// NewMemoryStore constructs an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

func (m *MemoryStore) Name() string { return "memory" }

func (m *MemoryStore) Load(ctx context.Context, namespace string) (launcher.PreferenceRecord, error) {
	m.mu.RLock()
	data, ok := m.blobs[namespace]
	m.mu.RUnlock()
	if !ok {
		return launcher.PreferenceRecord{}, newNotFoundError(namespace)
	}
	return decodeNamespace(namespace, data)
}

func (m *MemoryStore) Save(ctx context.Context, namespace string, rec launcher.PreferenceRecord) error {
	if m.FailWrites {
		return &WriteError{Namespace: namespace, Location: "memory", Err: errors.New("writes disabled")}
	}
	data, err := Encode(rec)
	if err != nil {
		return &WriteError{Namespace: namespace, Location: "memory", Err: err}
	}
	m.mu.Lock()
	m.blobs[namespace] = data
	m.mu.Unlock()
	return nil
}

// Raw returns the encoded blob stored under namespace.
func (m *MemoryStore) Raw(namespace string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.blobs[namespace]
	return append([]byte(nil), data...), ok
}

// Corrupt stores data verbatim under namespace.
func (m *MemoryStore) Corrupt(namespace string, data []byte) {
	m.mu.Lock()
	m.blobs[namespace] = append([]byte(nil), data...)
	m.mu.Unlock()
}

var _ Store = (*MemoryStore)(nil)
