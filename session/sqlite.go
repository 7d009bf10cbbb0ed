package session

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/richinex/phonewise/llm"
)

// SqliteStore implements Store using SQLite.
// Thread-safe: reads go through the pooled sql.DB; the read-modify-write
// in AppendExchange is serialized by a store-level mutex so concurrent
// appends to the same session never overwrite each other.
type SqliteStore struct {
	db          *sql.DB
	mu          sync.Mutex
	maxMessages int
}

var _ Store = (*SqliteStore)(nil)

// OpenSqlite opens or creates a SQLite database at the given path.
// Creates parent directories if they don't exist. A maxMessages of 0
// uses DefaultMaxMessages; negative disables trimming.
func OpenSqlite(path string, maxMessages int) (*SqliteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", path))
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	return initSqlite(db, maxMessages)
}

// NewSqliteInMemory creates an in-memory database (useful for testing).
func NewSqliteInMemory(maxMessages int) (*SqliteStore, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory SQLite: %w", err)
	}
	// Each pooled connection would see its own empty database; pin the
	// pool to one connection so the store is a single database.
	db.SetMaxOpenConns(1)
	return initSqlite(db, maxMessages)
}

func initSqlite(db *sql.DB, maxMessages int) (*SqliteStore, error) {
	if maxMessages == 0 {
		maxMessages = DefaultMaxMessages
	}
	store := &SqliteStore{db: db, maxMessages: maxMessages}
	if err := store.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *SqliteStore) Close() error {
	return s.db.Close()
}

func (s *SqliteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			session_id TEXT PRIMARY KEY,
			created_at TEXT NOT NULL DEFAULT (datetime('now')),
			updated_at TEXT NOT NULL DEFAULT (datetime('now'))
		);

		CREATE TABLE IF NOT EXISTS messages (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL,
			message_index INTEGER NOT NULL,
			role TEXT NOT NULL,
			content TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(session_id) ON DELETE CASCADE,
			UNIQUE(session_id, message_index)
		);

		CREATE INDEX IF NOT EXISTS idx_messages_session
		ON messages(session_id, message_index);
	`

	_, err := s.db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SqliteStore) ensureSession(ctx context.Context, tx *sql.Tx, sessionID string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT OR IGNORE INTO sessions (session_id) VALUES (?)",
		sessionID,
	)
	if err != nil {
		return fmt.Errorf("failed to ensure session: %w", err)
	}
	return nil
}

// querier is satisfied by both *sql.DB and *sql.Tx so history can be
// read standalone or inside a transaction.
type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Load loads conversation history for a session.
// Returns empty slice if session doesn't exist.
func (s *SqliteStore) Load(ctx context.Context, sessionID string) ([]llm.ChatMessage, error) {
	return loadMessages(ctx, s.db, sessionID)
}

func loadMessages(ctx context.Context, q querier, sessionID string) ([]llm.ChatMessage, error) {
	rows, err := q.QueryContext(ctx,
		"SELECT role, content FROM messages WHERE session_id = ? ORDER BY message_index ASC",
		sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query messages: %w", err)
	}
	defer rows.Close()

	messages := []llm.ChatMessage{} // Start with empty slice, not nil
	for rows.Next() {
		var msg llm.ChatMessage
		if err := rows.Scan(&msg.Role, &msg.Content); err != nil {
			return nil, fmt.Errorf("failed to scan message: %w", err)
		}
		messages = append(messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating messages: %w", err)
	}

	return messages, nil
}

// AppendExchange appends one user/assistant exchange inside a single
// transaction, rewriting the session trimmed to the store's cap.
// Writers are serialized so two concurrent appends for the same session
// cannot read the same snapshot and drop one exchange.
func (s *SqliteStore) AppendExchange(ctx context.Context, sessionID, userMsg, assistantMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	// Rollback is safe even after Commit() - it becomes a no-op
	defer func() { _ = tx.Rollback() }()

	history, err := loadMessages(ctx, tx, sessionID)
	if err != nil {
		return err
	}
	history = trim(append(history,
		llm.UserMessage(userMsg),
		llm.AssistantMessage(assistantMsg),
	), s.maxMessages)

	if err := s.ensureSession(ctx, tx, sessionID); err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM messages WHERE session_id = ?", sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear old messages: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO messages (session_id, message_index, role, content) VALUES (?, ?, ?, ?)")
	if err != nil {
		return fmt.Errorf("failed to prepare insert statement: %w", err)
	}
	defer stmt.Close()

	for i, msg := range history {
		if _, err = stmt.ExecContext(ctx, sessionID, i, msg.Role, msg.Content); err != nil {
			return fmt.Errorf("failed to insert message: %w", err)
		}
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE sessions SET updated_at = datetime('now') WHERE session_id = ?",
		sessionID)
	if err != nil {
		return fmt.Errorf("failed to update session timestamp: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Delete deletes conversation history for a session.
func (s *SqliteStore) Delete(ctx context.Context, sessionID string) error {
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM messages WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session messages: %w", err)
	}
	if _, err := s.db.ExecContext(ctx,
		"DELETE FROM sessions WHERE session_id = ?", sessionID); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// ListSessions lists all session IDs, most recently updated first.
func (s *SqliteStore) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT session_id FROM sessions ORDER BY updated_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	sessions := []string{} // Start with empty slice, not nil
	for rows.Next() {
		var sessionID string
		if err := rows.Scan(&sessionID); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sessions = append(sessions, sessionID)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating sessions: %w", err)
	}

	return sessions, nil
}

// Exists checks if a session exists.
func (s *SqliteStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM sessions WHERE session_id = ?",
		sessionID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check session existence: %w", err)
	}
	return count > 0, nil
}
