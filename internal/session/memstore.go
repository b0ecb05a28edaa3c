package session

import (
	"github.com/eduterm/eduterm/internal/models"
	gocache "github.com/patrickmn/go-cache"
)

// MemStore keeps session keys in a non-expiring in-memory cache. Used for
// ephemeral sessions and tests; nothing survives process exit.
type MemStore struct {
	cache *gocache.Cache
}

func NewMemStore() *MemStore {
	return &MemStore{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

func (s *MemStore) SaveToken(token string) error {
	s.cache.Set(tokenKey, token, gocache.NoExpiration)
	return nil
}

func (s *MemStore) Token() (string, bool) {
	return s.getString(tokenKey)
}

func (s *MemStore) RemoveToken() {
	s.cache.Delete(tokenKey)
}

func (s *MemStore) SaveUser(user *models.User) error {
	copied := *user
	s.cache.Set(userKey, &copied, gocache.NoExpiration)
	return nil
}

func (s *MemStore) User() (*models.User, bool) {
	v, ok := s.cache.Get(userKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*models.User)
	if !ok {
		return nil, false
	}
	copied := *user
	return &copied, true
}

func (s *MemStore) RemoveUser() {
	s.cache.Delete(userKey)
}

func (s *MemStore) SaveRegisterEmail(email string) error {
	s.cache.Set(registerEmailKey, email, gocache.NoExpiration)
	return nil
}

func (s *MemStore) RegisterEmail() (string, bool) {
	return s.getString(registerEmailKey)
}

func (s *MemStore) ClearRegisterEmail() {
	s.cache.Delete(registerEmailKey)
}

func (s *MemStore) Logout() {
	s.cache.Delete(tokenKey)
	s.cache.Delete(userKey)
}

func (s *MemStore) getString(key string) (string, bool) {
	v, ok := s.cache.Get(key)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	if !ok || str == "" {
		return "", false
	}
	return str, true
}
