package mediconnect

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"
)

// Storage keys for the persisted session. Kept stable so sessions
// written by older builds keep working.
const (
	SessionTokenKey = "mc_token"
	SessionRoleKey  = "mc_role"
)

// SessionStore holds the bearer token and role between requests.
// Login fills it, logout and any 401 response clear it.
type SessionStore interface {
	Token() string
	Role() string
	Save(token, role string) error
	Clear() error
}

// MemoryStore is a process-local SessionStore.
type MemoryStore struct {
	mu    sync.RWMutex
	token string
	role  string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (s *MemoryStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryStore) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *MemoryStore) Save(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.role = role
	return nil
}

func (s *MemoryStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.role = ""
	return nil
}

// FileStore persists the session as a small JSON document so it
// survives restarts, the same way a browser keeps it in local storage.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Token() string {
	return s.read()[SessionTokenKey]
}

func (s *FileStore) Role() string {
	return s.read()[SessionRoleKey]
}

func (s *FileStore) Save(token, role string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payload, err := json.Marshal(map[string]string{
		SessionTokenKey: token,
		SessionRoleKey:  role,
	})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, payload, 0o600)
}

func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *FileStore) read() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]string{}
	}
	values := map[string]string{}
	if err := json.Unmarshal(raw, &values); err != nil {
		return map[string]string{}
	}
	return values
}
