// Package storage provides a SQLite journal of SSH play sessions.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// ErrSessionNotFound is returned when a session ID has no journal entry.
var ErrSessionNotFound = errors.New("storage: session not found")

// Store manages the SQLite database connection for the session journal.
type Store struct {
	db *sql.DB
}

// Session is one SSH connection that ran the game.
type Session struct {
	ID        int64
	SessionID string
	User      string
	Remote    string
	StartedAt time.Time
	EndedAt   time.Time // Zero while the session is still open
	Duration  time.Duration
	EndReason string // "quit" or "closed"; empty while open
}

// Open returns true when the session has not been ended yet.
func (s Session) Open() bool {
	return s.EndedAt.IsZero()
}

// Stats aggregates the journal.
type Stats struct {
	Sessions      int
	UniqueUsers   int
	TotalDuration time.Duration
	LastStarted   time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			session_id TEXT NOT NULL UNIQUE,
			user TEXT NOT NULL,
			remote TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT,
			duration_ms INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL DEFAULT ''
		);
		CREATE INDEX IF NOT EXISTS idx_sessions_user ON sessions(user);
		CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// StartSession records a new open session.
// Returns the ID of the inserted record.
func (s *Store) StartSession(sessionID, user, remote string, startedAt time.Time) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO sessions (session_id, user, remote, started_at) VALUES (?, ?, ?, ?)",
		sessionID, user, remote, formatTime(startedAt),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot start session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// EndSession closes an open session and stores its duration.
func (s *Store) EndSession(sessionID string, endedAt time.Time, reason string) error {
	sess, err := s.SessionByID(sessionID)
	if err != nil {
		return err
	}

	duration := endedAt.Sub(sess.StartedAt)
	if duration < 0 {
		duration = 0
	}

	_, err = s.db.Exec(
		`UPDATE sessions
		 SET ended_at = ?, duration_ms = ?, end_reason = ?
		 WHERE session_id = ?`,
		formatTime(endedAt), duration.Milliseconds(), reason, sessionID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot end session: %w", err)
	}
	return nil
}

// SessionByID retrieves a session by its session ID.
func (s *Store) SessionByID(sessionID string) (*Session, error) {
	row := s.db.QueryRow(
		`SELECT id, session_id, user, remote, started_at, ended_at, duration_ms, end_reason
		 FROM sessions
		 WHERE session_id = ?`,
		sessionID,
	)

	sess, err := scanSession(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrSessionNotFound, sessionID)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query session: %w", err)
	}
	return sess, nil
}

// RecentSessions retrieves the most recently started sessions.
func (s *Store) RecentSessions(limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, user, remote, started_at, ended_at, duration_ms, end_reason
		 FROM sessions
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	return collectSessions(rows)
}

// UserSessions retrieves the sessions of a single user, newest first.
func (s *Store) UserSessions(user string, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, session_id, user, remote, started_at, ended_at, duration_ms, end_reason
		 FROM sessions
		 WHERE user = ?
		 ORDER BY started_at DESC, id DESC
		 LIMIT ?`,
		user, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query user sessions: %w", err)
	}
	return collectSessions(rows)
}

// Stats returns aggregated figures over the whole journal.
func (s *Store) Stats() (*Stats, error) {
	var stats Stats
	var totalMs int64
	var last sql.NullString

	err := s.db.QueryRow(
		`SELECT COUNT(*), COUNT(DISTINCT user), COALESCE(SUM(duration_ms), 0), MAX(started_at)
		 FROM sessions`,
	).Scan(&stats.Sessions, &stats.UniqueUsers, &totalMs, &last)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get session stats: %w", err)
	}

	stats.TotalDuration = time.Duration(totalMs) * time.Millisecond
	if last.Valid {
		stats.LastStarted = parseTime(last.String)
	}
	return &stats, nil
}

// PruneBefore deletes closed sessions that started before cutoff and
// returns how many were removed.
func (s *Store) PruneBefore(cutoff time.Time) (int64, error) {
	res, err := s.db.Exec(
		"DELETE FROM sessions WHERE ended_at IS NOT NULL AND started_at < ?",
		formatTime(cutoff),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot prune sessions: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot count pruned rows: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var sess Session
	var startedAt string
	var endedAt sql.NullString
	var durationMs int64

	if err := row.Scan(
		&sess.ID,
		&sess.SessionID,
		&sess.User,
		&sess.Remote,
		&startedAt,
		&endedAt,
		&durationMs,
		&sess.EndReason,
	); err != nil {
		return nil, err
	}

	sess.StartedAt = parseTime(startedAt)
	if endedAt.Valid {
		sess.EndedAt = parseTime(endedAt.String)
	}
	sess.Duration = time.Duration(durationMs) * time.Millisecond
	return &sess, nil
}

func collectSessions(rows *sql.Rows) ([]Session, error) {
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		sess, err := scanSession(rows)
		if err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		sessions = append(sessions, *sess)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return sessions, nil
}

// Timestamps are stored as fixed-width UTC text so they sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02 15:04:05", s); err == nil {
		return t
	}
	return time.Time{}
}
