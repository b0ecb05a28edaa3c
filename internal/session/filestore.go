package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/eduterm/eduterm/internal/models"
	"github.com/eduterm/eduterm/pkg/logger"
	"go.uber.org/zap"
)

// FileStore persists session keys in a single JSON file, the terminal
// analog of browser-local storage. Mutations rewrite the file atomically;
// a missing or corrupt file reads as an empty store.
type FileStore struct {
	path string

	mu     sync.Mutex
	values map[string]json.RawMessage
}

// NewFileStore opens (or initializes) the store at path.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		values: map[string]json.RawMessage{},
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session file: %w", err)
	}

	if err := json.Unmarshal(data, &s.values); err != nil {
		// Corrupt session data means an unauthenticated start, not a
		// startup failure.
		logger.Warn("session file unreadable, starting empty",
			zap.String("path", path),
			zap.Error(err))
		s.values = map[string]json.RawMessage{}
	}
	return s, nil
}

func (s *FileStore) SaveToken(token string) error {
	return s.set(tokenKey, token)
}

func (s *FileStore) Token() (string, bool) {
	var token string
	if !s.get(tokenKey, &token) || token == "" {
		return "", false
	}
	return token, true
}

func (s *FileStore) RemoveToken() {
	s.remove(tokenKey)
}

func (s *FileStore) SaveUser(user *models.User) error {
	return s.set(userKey, user)
}

func (s *FileStore) User() (*models.User, bool) {
	var user models.User
	if !s.get(userKey, &user) {
		return nil, false
	}
	return &user, true
}

func (s *FileStore) RemoveUser() {
	s.remove(userKey)
}

func (s *FileStore) SaveRegisterEmail(email string) error {
	return s.set(registerEmailKey, email)
}

func (s *FileStore) RegisterEmail() (string, bool) {
	var email string
	if !s.get(registerEmailKey, &email) || email == "" {
		return "", false
	}
	return email, true
}

func (s *FileStore) ClearRegisterEmail() {
	s.remove(registerEmailKey)
}

// Logout removes the token and the user record. Idempotent; a failed
// rewrite is logged and swallowed so logout never fails.
func (s *FileStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, tokenKey)
	delete(s.values, userKey)
	if err := s.flushLocked(); err != nil {
		logger.Warn("failed to persist logout", zap.Error(err))
	}
}

func (s *FileStore) set(key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = raw
	return s.flushLocked()
}

// get decodes the stored value into out. Malformed data reads as absent.
func (s *FileStore) get(key string, out any) bool {
	s.mu.Lock()
	raw, ok := s.values[key]
	s.mu.Unlock()
	if !ok {
		return false
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.Warn("malformed session value, treating as absent",
			zap.String("key", key),
			zap.Error(err))
		return false
	}
	return true
}

func (s *FileStore) remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	if err := s.flushLocked(); err != nil {
		logger.Warn("failed to persist session removal",
			zap.String("key", key),
			zap.Error(err))
	}
}

// flushLocked rewrites the session file via a temp file and rename so a
// crash mid-write cannot leave a truncated store.
func (s *FileStore) flushLocked() error {
	data, err := json.MarshalIndent(s.values, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*")
	if err != nil {
		return fmt.Errorf("failed to create temp session file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close session file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod session file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace session file: %w", err)
	}
	return nil
}
