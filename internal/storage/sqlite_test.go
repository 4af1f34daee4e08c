package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreStartAndEndSession(t *testing.T) {
	store := openTestStore(t)
	start := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	if _, err := store.StartSession("alice-1", "alice", "10.0.0.1:5000", start); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}

	sess, err := store.SessionByID("alice-1")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if !sess.Open() {
		t.Error("new session should be open")
	}
	if !sess.StartedAt.Equal(start) {
		t.Errorf("StartedAt = %v, expected %v", sess.StartedAt, start)
	}

	if err := store.EndSession("alice-1", start.Add(90*time.Second), "quit"); err != nil {
		t.Fatalf("EndSession() failed: %v", err)
	}

	sess, err = store.SessionByID("alice-1")
	if err != nil {
		t.Fatalf("SessionByID() failed: %v", err)
	}
	if sess.Open() {
		t.Error("ended session should not be open")
	}
	if sess.Duration != 90*time.Second {
		t.Errorf("Duration = %v, expected 1m30s", sess.Duration)
	}
	if sess.EndReason != "quit" || sess.User != "alice" || sess.Remote != "10.0.0.1:5000" {
		t.Errorf("unexpected session: %+v", sess)
	}
}

func TestStoreDuplicateSessionID(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()

	if _, err := store.StartSession("dup", "bob", "remote", now); err != nil {
		t.Fatalf("StartSession() failed: %v", err)
	}
	if _, err := store.StartSession("dup", "bob", "remote", now); err == nil {
		t.Error("StartSession() should reject a duplicate session ID")
	}
}

func TestStoreEndUnknownSession(t *testing.T) {
	store := openTestStore(t)

	err := store.EndSession("missing", time.Now(), "closed")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestStoreRecentSessionsOrderAndLimit(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	for i := range 5 {
		id := string(rune('a' + i))
		if _, err := store.StartSession(id, "user", "remote", base.Add(time.Duration(i)*time.Minute)); err != nil {
			t.Fatalf("StartSession() failed: %v", err)
		}
	}

	sessions, err := store.RecentSessions(3)
	if err != nil {
		t.Fatalf("RecentSessions() failed: %v", err)
	}
	if len(sessions) != 3 {
		t.Fatalf("Expected 3 sessions with limit, got %d", len(sessions))
	}

	// Newest first: e, d, c
	if sessions[0].SessionID != "e" || sessions[1].SessionID != "d" || sessions[2].SessionID != "c" {
		t.Errorf("Sessions not in expected order: %v", sessions)
	}
}

func TestStoreUserSessions(t *testing.T) {
	store := openTestStore(t)
	now := time.Now()

	store.StartSession("a1", "alice", "r", now)
	store.StartSession("a2", "alice", "r", now.Add(time.Second))
	store.StartSession("b1", "bob", "r", now)

	sessions, err := store.UserSessions("alice", 10)
	if err != nil {
		t.Fatalf("UserSessions() failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Errorf("Expected 2 sessions for alice, got %d", len(sessions))
	}
	for _, s := range sessions {
		if s.User != "alice" {
			t.Errorf("unexpected user %q", s.User)
		}
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	// Empty journal
	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 0 || stats.TotalDuration != 0 {
		t.Errorf("Expected empty stats, got %+v", stats)
	}

	store.StartSession("a1", "alice", "r", base)
	store.EndSession("a1", base.Add(time.Minute), "closed")
	store.StartSession("a2", "alice", "r", base.Add(time.Hour))
	store.EndSession("a2", base.Add(time.Hour+2*time.Minute), "closed")
	store.StartSession("b1", "bob", "r", base.Add(2*time.Hour))

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Sessions != 3 || stats.UniqueUsers != 2 {
		t.Errorf("sessions/users = %d/%d, expected 3/2", stats.Sessions, stats.UniqueUsers)
	}
	if stats.TotalDuration != 3*time.Minute {
		t.Errorf("TotalDuration = %v, expected 3m", stats.TotalDuration)
	}
	if !stats.LastStarted.Equal(base.Add(2 * time.Hour)) {
		t.Errorf("LastStarted = %v", stats.LastStarted)
	}
}

func TestStorePruneBefore(t *testing.T) {
	store := openTestStore(t)
	base := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)

	store.StartSession("old", "alice", "r", base)
	store.EndSession("old", base.Add(time.Minute), "closed")
	store.StartSession("old-open", "bob", "r", base)
	store.StartSession("new", "carol", "r", base.Add(48*time.Hour))
	store.EndSession("new", base.Add(49*time.Hour), "closed")

	n, err := store.PruneBefore(base.Add(24 * time.Hour))
	if err != nil {
		t.Fatalf("PruneBefore() failed: %v", err)
	}
	if n != 1 {
		t.Errorf("pruned %d sessions, expected 1", n)
	}

	// Open sessions are never pruned
	if _, err := store.SessionByID("old-open"); err != nil {
		t.Errorf("open session should survive pruning: %v", err)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
