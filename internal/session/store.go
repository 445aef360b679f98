package session

import (
	"sync"

	"github.com/winter3671/TakeMeTrip/internal/domain"
)

// Credentials is the read-only view of the credential store handed to
// everything outside this package.
type Credentials interface {
	Token() string
	Identity() *domain.Identity
	IsAuthenticated() bool
	Snapshot() domain.Session
}

// CredentialStore holds the current session. Only the Controller mutates it.
type CredentialStore struct {
	mu      sync.RWMutex
	session domain.Session
}

var _ Credentials = (*CredentialStore)(nil)

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

func (s *CredentialStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Token
}

func (s *CredentialStore) Identity() *domain.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return copyIdentity(s.session.Identity)
}

func (s *CredentialStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.session.Authenticated()
}

func (s *CredentialStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Session{
		Token:    s.session.Token,
		Identity: copyIdentity(s.session.Identity),
	}
}

func (s *CredentialStore) setSession(token string, identity domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{Token: token, Identity: &identity}
}

// setIdentity replaces the identity only while token is still the current
// token, so a concurrent logout or re-login is never overwritten.
func (s *CredentialStore) setIdentity(token string, identity domain.Identity) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" || s.session.Token != token {
		return false
	}

	s.session.Identity = &identity
	return true
}

func (s *CredentialStore) clearSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = domain.Session{}
}

func copyIdentity(identity *domain.Identity) *domain.Identity {
	if identity == nil {
		return nil
	}

	copied := *identity
	return &copied
}
