// Package storage holds the key-value backends that persist user preferences.
//
// Each backend stores plain string values under string keys. Only the theme
// preference uses them today, so the interface stays deliberately small.
package storage

import (
	"fmt"
	"sync"
)

// Backend names accepted by Open and the configuration file.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

// KeyValueStore persists string values under string keys.
// Get reports ok=false for a key that was never written.
type KeyValueStore interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// Open returns the backend named by kind. path is ignored for the memory backend.
func Open(kind, path string) (KeyValueStore, error) {
	switch kind {
	case BackendMemory, "":
		return NewMemoryStore(), nil
	case BackendFile:
		return NewFileStore(path)
	case BackendSQLite:
		return NewSQLiteStore(path)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", kind)
	}
}

// MemoryStore keeps values for the lifetime of the process.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// Get implements KeyValueStore.
func (m *MemoryStore) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.values[key]
	return value, ok, nil
}

// Set implements KeyValueStore.
func (m *MemoryStore) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.values[key] = value
	return nil
}

// Close implements KeyValueStore.
func (m *MemoryStore) Close() error { return nil }

var (
	_ KeyValueStore = (*MemoryStore)(nil)
	_ KeyValueStore = (*FileStore)(nil)
	_ KeyValueStore = (*SQLiteStore)(nil)
)
