// Package session provides conversation history storage.
//
// History holds only the user/assistant exchange, never intermediate
// tool traffic, and every backend caps each session at a fixed number
// of messages by dropping the oldest first.
//
// Information Hiding:
// - Storage backend implementation details hidden behind interface
// - Allows swapping between memory and SQLite without API changes
// - Trimming policy applied inside each backend's append path
package session

import (
	"context"

	"github.com/richinex/phonewise/llm"
)

// DefaultMaxMessages caps stored history at 10 exchanges per session.
const DefaultMaxMessages = 20

// Store defines the interface for conversation history storage.
type Store interface {
	// Load returns the stored history for a session.
	// Returns empty slice (not nil) if session doesn't exist.
	// Returns error only for storage failures, not missing sessions.
	Load(ctx context.Context, sessionID string) ([]llm.ChatMessage, error)

	// AppendExchange appends one user/assistant exchange and trims the
	// session to the store's message cap, oldest first.
	AppendExchange(ctx context.Context, sessionID, userMsg, assistantMsg string) error

	// Delete removes all history for a session.
	Delete(ctx context.Context, sessionID string) error

	// ListSessions lists all session IDs with stored history.
	ListSessions(ctx context.Context) ([]string, error)

	// Exists checks if a session has stored history.
	Exists(ctx context.Context, sessionID string) (bool, error)
}

// trim drops the oldest messages until history fits within max.
func trim(history []llm.ChatMessage, max int) []llm.ChatMessage {
	if max <= 0 || len(history) <= max {
		return history
	}
	return history[len(history)-max:]
}
