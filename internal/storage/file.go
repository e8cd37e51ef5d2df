package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

const fileFormatVersion = 1

// preferencesFile is the on-disk JSON layout.
type preferencesFile struct {
	Version int               `json:"version"`
	Entries map[string]string `json:"entries"`
}

// FileStore persists values in a single JSON document, rewritten atomically
// on every Set.
type FileStore struct {
	path    string
	mu      sync.RWMutex
	entries map[string]string
}

// NewFileStore opens path, creating its directory. A missing file starts
// empty; so does an unreadable document, which the next Set replaces.
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, apperrors.NewValidationError("preferences.path", "file backend requires a path", nil)
	}

	s := &FileStore{
		path:    path,
		entries: make(map[string]string),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, apperrors.NewPersistenceError(BackendFile, "", fmt.Errorf("create directory: %w", err))
	}

	if err := s.load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		var syntaxErr *json.SyntaxError
		var typeErr *json.UnmarshalTypeError
		if !errors.As(err, &syntaxErr) && !errors.As(err, &typeErr) {
			return nil, apperrors.NewPersistenceError(BackendFile, "", err)
		}
	}

	return s, nil
}

// Path returns the backing file location.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return err
	}

	var file preferencesFile
	if err := json.Unmarshal(data, &file); err != nil {
		return err
	}

	if file.Entries != nil {
		s.entries = file.Entries
	}
	return nil
}

// Get implements KeyValueStore.
func (s *FileStore) Get(key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.entries[key]
	return value, ok, nil
}

// Set implements KeyValueStore. The in-memory copy only changes once the
// document has been written.
func (s *FileStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := make(map[string]string, len(s.entries)+1)
	for k, v := range s.entries {
		next[k] = v
	}
	next[key] = value

	if err := s.write(next); err != nil {
		return apperrors.NewPersistenceError(BackendFile, key, err)
	}
	s.entries = next
	return nil
}

func (s *FileStore) write(entries map[string]string) error {
	data, err := json.MarshalIndent(preferencesFile{Version: fileFormatVersion, Entries: entries}, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temporary file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temporary file: %w", err)
	}
	return nil
}

// Close implements KeyValueStore.
func (s *FileStore) Close() error { return nil }
