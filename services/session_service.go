package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// sessionTTL caps how long a token stays valid. Entries are checked
// lazily on lookup; there is no background sweeper.
const sessionTTL = 24 * time.Hour

type session struct {
	username  string
	createdAt time.Time
}

// SessionService maps opaque session tokens to usernames. It is safe for
// concurrent use and is constructed once and shared by injection.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]session
	ttl      time.Duration
}

func NewSessionService() *SessionService {
	return &SessionService{
		sessions: make(map[string]session),
		ttl:      sessionTTL,
	}
}

// Create issues a fresh token for the user. Logging in twice issues two
// independently valid tokens.
func (s *SessionService) Create(username string) (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	token := id.String()

	s.mu.Lock()
	s.sessions[token] = session{username: username, createdAt: time.Now()}
	s.mu.Unlock()

	return token, nil
}

// Lookup resolves a token to its username. Expired tokens are removed on
// access and reported as absent.
func (s *SessionService) Lookup(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	entry, ok := s.sessions[token]
	s.mu.RUnlock()

	if !ok {
		return "", false
	}
	if time.Since(entry.createdAt) > s.ttl {
		s.Invalidate(token)
		return "", false
	}
	return entry.username, true
}

// Invalidate removes a token. Invalidating an unknown token is a no-op.
func (s *SessionService) Invalidate(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}
