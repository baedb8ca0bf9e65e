// Package session holds the client's copy of {token, user} with an explicit
// load/save/clear lifecycle instead of ambient global state.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/portfolio-dev/portfolio/internal/models"
)

type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// IsAdmin reports whether the signed-in user carries the admin flag.
func (s *Session) IsAdmin() bool {
	return s != nil && s.User.IsAdmin
}

type Store interface {
	// Load returns the persisted session, or false when none is stored or
	// the stored record is unreadable.
	Load() (*Session, bool)
	Save(*Session) error
	Clear() error
}

// FileStore persists the session as a single JSON record on disk, the
// durable-storage equivalent of the browser's localStorage entry.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (f *FileStore) Load() (*Session, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)

	if err != nil {
		return nil, false
	}

	var s Session

	// A corrupt record behaves like no record at all.
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, false
	}

	if s.Token == "" || s.User.Email == "" {
		return nil, false
	}

	return &s, true
}

func (f *FileStore) Save(s *Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := json.Marshal(s)

	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o700); err != nil {
		return err
	}

	return os.WriteFile(f.path, data, 0o600)
}

func (f *FileStore) Clear() error {
	f.mu.Lock()
	defer f.mu.Unlock()

	err := os.Remove(f.path)

	if err != nil && !os.IsNotExist(err) {
		return err
	}

	return nil
}
