package session

import (
	"sync"

	"github.com/Veer-w/Online-Chatbot-for-ticketing/internal/domain"
)

// Store maps session ids to conversation state. Lookups and creates are safe
// for concurrent use; mutation of a single session is guarded by the session's
// own lock, which the caller holds for the whole chat turn.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*domain.Session)}
}

// GetOrCreate returns the session for id, creating a fresh one in the greeting
// state the first time the id is seen.
func (s *Store) GetOrCreate(id string) *domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		sess = domain.NewSession()
		s.sessions[id] = sess
	}
	return sess
}
