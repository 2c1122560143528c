// Package session persists the one piece of client state that survives a
// restart: the bearer token for the authenticated session.
package session

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store holds the session credential. Implementations must be safe for
// concurrent use: the HTTP adapter clears the credential from request
// goroutines while the UI reads it.
type Store interface {
	// Token returns the stored credential, or "" when unauthenticated.
	Token() string
	SetToken(tok string) error
	Clear() error
}

// fileStore keeps the token in a single file under the config directory,
// the terminal equivalent of the browser's one localStorage key.
type fileStore struct {
	mu   sync.Mutex
	path string
	tok  string
}

// NewFileStore loads any existing token from dir and returns the store.
func NewFileStore(dir string) (Store, error) {
	s := &fileStore{path: filepath.Join(dir, "token")}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}
	s.tok = strings.TrimSpace(string(data))
	return s, nil
}

func (s *fileStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok
}

func (s *fileStore) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.path, []byte(tok+"\n"), 0o600); err != nil {
		return err
	}
	s.tok = tok
	return nil
}

func (s *fileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	mu  sync.Mutex
	tok string
}

func NewMemStore(tok string) *MemStore { return &MemStore{tok: tok} }

func (s *MemStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tok
}

func (s *MemStore) SetToken(tok string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = tok
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tok = ""
	return nil
}
