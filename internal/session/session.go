// Package session holds the client-side auth session: a bearer token and
// the logged-in user, mirrored in memory and persisted to the local kv
// blob. A single instance is constructed at startup and passed explicitly
// to every consumer; there is no package-level session.
package session

import (
	"sync"

	authModel "github.com/ashevelyov/matchboard/internal/auth/model"
	"github.com/ashevelyov/matchboard/internal/localstore"
)

// Store is the auth session store.
type Store struct {
	mu    sync.RWMutex
	kv    *localstore.KV
	token string
	user  *authModel.PublicUser
}

// New loads any persisted session from the kv blob. A corrupt or missing
// session simply starts logged out.
func New(kv *localstore.KV) *Store {
	s := &Store{kv: kv}

	var token string
	if kv.Get(localstore.TokenKey, &token) {
		s.token = token
	}
	var user authModel.PublicUser
	if kv.Get(localstore.UserKey, &user) && user.ID != "" {
		s.user = &user
	}
	return s
}

// SetSession stores the token and user, durably.
func (s *Store) SetSession(token string, user authModel.PublicUser) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.user = &user

	if err := s.kv.Put(localstore.TokenKey, token); err != nil {
		return err
	}
	return s.kv.Put(localstore.UserKey, user)
}

// Token returns the bearer token, or empty when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns the logged-in user, or nil.
func (s *Store) User() *authModel.PublicUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// IsAdmin reports whether the session belongs to an admin.
func (s *Store) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == authModel.RoleAdmin
}

// Logout clears the in-memory session and both persisted keys.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.user = nil

	if err := s.kv.Delete(localstore.TokenKey); err != nil {
		return err
	}
	return s.kv.Delete(localstore.UserKey)
}
