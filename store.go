package snapdrag

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// Store persists the last resting position of a draggable across sessions.
// Restore reports ok=false with a nil error when nothing is stored under key.
type Store interface {
	Persist(key string, pos Vec2) error
	Restore(key string) (pos Vec2, ok bool, err error)
}

// MemoryStore is an in-process Store. The zero value is ready to use.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string]Vec2
}

// Persist records pos under key.
func (m *MemoryStore) Persist(key string, pos Vec2) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.data == nil {
		m.data = make(map[string]Vec2)
	}
	m.data[key] = pos
	return nil
}

// Restore returns the position stored under key.
func (m *MemoryStore) Restore(key string) (Vec2, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pos, ok := m.data[key]
	return pos, ok, nil
}

// FileStore keeps positions in a single JSON file. The file is loaded lazily
// on first access and rewritten atomically (temp file + rename) on every
// Persist.
type FileStore struct {
	path   string
	mu     sync.Mutex
	data   map[string]Vec2
	loaded bool
}

// NewFileStore returns a FileStore backed by path. The file need not exist.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) load() error {
	if s.loaded {
		return nil
	}
	s.data = make(map[string]Vec2)
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read positions %s: %w", s.path, err)
	}
	if err := json.Unmarshal(b, &s.data); err != nil {
		return fmt.Errorf("parse positions %s: %w", s.path, err)
	}
	s.loaded = true
	return nil
}

// Persist records pos under key and writes the file.
func (s *FileStore) Persist(key string, pos Vec2) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return err
	}
	s.data[key] = pos

	b, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode positions: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// Restore returns the position stored under key.
func (s *FileStore) Restore(key string) (Vec2, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(); err != nil {
		return Vec2{}, false, err
	}
	pos, ok := s.data[key]
	return pos, ok, nil
}
