// Package session stores the bearer token between runs so a logged-in
// session survives process restarts, the way the web client keeps it in
// local storage.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the current bearer token.
type Store interface {
	// Token returns the stored token, or "" when logged out.
	Token() string
	SetToken(tok string) error
	Clear() error
}

// MemoryStore keeps the token for the lifetime of the process.
type MemoryStore struct {
	mu  sync.RWMutex
	tok string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

func (s *MemoryStore) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}

// FileStore persists the token to a file, with an in-memory cache populated
// at construction so reads never touch the disk.
type FileStore struct {
	mu   sync.RWMutex
	path string
	tok  string
}

// NewFileStore loads any previously stored token from path. A missing file
// means "logged out", not an error.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path}
	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, err
	}
	s.tok = strings.TrimSpace(string(b))
	return s, nil
}

func (s *FileStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.tok
}

func (s *FileStore) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	if err := os.WriteFile(s.path, []byte(tok), 0o600); err != nil {
		return err
	}
	s.tok = tok
	return nil
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	s.tok = ""
	return nil
}
