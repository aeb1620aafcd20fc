package services

import (
	"sync"

	"github.com/google/uuid"
)

// SessionManager owns the lifetime of active sessions so the HTTP layer stays
// stateless. Sessions live in memory only; a process restart drops them.
type SessionManager interface {
	Create() (*Session, []string)
	Get(id uuid.UUID) (*Session, bool)
}

type sessionManager struct {
	conversation ConversationService
	mu           sync.RWMutex
	sessions     map[uuid.UUID]*Session
}

func NewSessionManager(conversation ConversationService) SessionManager {
	return &sessionManager{
		conversation: conversation,
		sessions:     make(map[uuid.UUID]*Session),
	}
}

// Create implements SessionManager.
func (m *sessionManager) Create() (*Session, []string) {
	s, greeting := m.conversation.NewSession()

	m.mu.Lock()
	m.sessions[s.ID] = s
	m.mu.Unlock()

	return s, greeting
}

// Get implements SessionManager.
func (m *sessionManager) Get(id uuid.UUID) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[id]
	return s, ok
}
