package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Storage is the durable local medium the store snapshots itself into on
// every mutation. It is a single named entry, the moral equivalent of one
// browser localStorage key.
type Storage interface {
	// Save replaces the stored snapshot.
	Save(data []byte) error
	// Load returns the stored snapshot, or (nil, nil) when none exists yet.
	Load() ([]byte, error)
}

// FileStorage keeps the snapshot in a single JSON file, written atomically
// via a temp file and rename so a crash mid-write never truncates the
// previous snapshot.
type FileStorage struct {
	path string
}

// NewFileStorage creates file-backed storage at path, creating parent
// directories as needed.
func NewFileStorage(path string) (*FileStorage, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create state directory: %w", err)
	}
	return &FileStorage{path: path}, nil
}

func (f *FileStorage) Save(data []byte) error {
	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	return nil
}

func (f *FileStorage) Load() ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read snapshot: %w", err)
	}
	return data, nil
}

// MemoryStorage is an in-process Storage used by tests and by callers that
// opt out of durability.
type MemoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func NewMemoryStorage() *MemoryStorage { return &MemoryStorage{} }

func (m *MemoryStorage) Save(data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = append([]byte(nil), data...)
	return nil
}

func (m *MemoryStorage) Load() ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		return nil, nil
	}
	return append([]byte(nil), m.data...), nil
}
