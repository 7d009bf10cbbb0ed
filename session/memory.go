package session

import (
	"context"
	"sort"
	"sync"

	"github.com/richinex/phonewise/llm"
)

// MemoryStore implements Store using an in-memory map.
// Data is lost when the process terminates.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string][]llm.ChatMessage
	maxMessages int
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates an in-memory store. A maxMessages of 0 uses
// DefaultMaxMessages; negative disables trimming.
func NewMemoryStore(maxMessages int) *MemoryStore {
	if maxMessages == 0 {
		maxMessages = DefaultMaxMessages
	}
	return &MemoryStore{
		sessions:    make(map[string][]llm.ChatMessage),
		maxMessages: maxMessages,
	}
}

// Load loads conversation history for a session.
// Returns empty slice if session doesn't exist.
func (s *MemoryStore) Load(ctx context.Context, sessionID string) ([]llm.ChatMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history, ok := s.sessions[sessionID]
	if !ok {
		return []llm.ChatMessage{}, nil
	}

	// Return a copy to avoid external mutations
	copied := make([]llm.ChatMessage, len(history))
	copy(copied, history)
	return copied, nil
}

// AppendExchange appends one user/assistant exchange and trims the
// session to the store's cap.
func (s *MemoryStore) AppendExchange(ctx context.Context, sessionID, userMsg, assistantMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.sessions[sessionID],
		llm.UserMessage(userMsg),
		llm.AssistantMessage(assistantMsg),
	)
	s.sessions[sessionID] = trim(history, s.maxMessages)
	return nil
}

// Delete deletes conversation history for a session.
func (s *MemoryStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, sessionID)
	return nil
}

// ListSessions lists all session IDs.
func (s *MemoryStore) ListSessions(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := make([]string, 0, len(s.sessions))
	for sessionID := range s.sessions {
		sessions = append(sessions, sessionID)
	}
	sort.Strings(sessions)
	return sessions, nil
}

// Exists checks if a session exists.
func (s *MemoryStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.sessions[sessionID]
	return ok, nil
}
