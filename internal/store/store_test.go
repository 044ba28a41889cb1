package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared", opts...)
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func createTestUser(t *testing.T, s *Store, level, language string) *User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &User{
		Name:              "test learner",
		SelfRatedLevel:    level,
		PreferredLanguage: language,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

func startTestSession(t *testing.T, s *Store, userID, topic string) *Session {
	t.Helper()
	sess, err := s.Sessions().Start(context.Background(), userID, topic)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return sess
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tables := []string{
		"users", "sessions", "interactions", "session_plans",
		"progress_snapshots", "student_skills", "student_topics",
		"session_stats", "fairness_reports", "llm_request_events",
	}
	for _, table := range tables {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestUserCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "fr")
	if u.UserID == "" {
		t.Fatal("expected generated user ID")
	}

	got, err := s.Users().Get(ctx, u.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SelfRatedLevel != "beginner" || got.PreferredLanguage != "fr" {
		t.Errorf("got level=%q lang=%q", got.SelfRatedLevel, got.PreferredLanguage)
	}
}

func TestUserGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Users().Get(context.Background(), "nope")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestUserDuplicateIDRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	_, err := s.Users().Create(ctx, &User{UserID: u.UserID})
	if !IsConstraint(err) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
}

func TestUserUpdatePreferences(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	if err := s.Users().UpdatePreferences(ctx, u.UserID, "advanced", "fr"); err != nil {
		t.Fatalf("update preferences: %v", err)
	}

	got, err := s.Users().Get(ctx, u.UserID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.SelfRatedLevel != "advanced" || got.PreferredLanguage != "fr" {
		t.Errorf("preferences not applied: %+v", got)
	}
	if !got.CreatedAt.Equal(u.CreatedAt) {
		t.Error("created_at must not change on preference edit")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")
	if sess.Closed() {
		t.Fatal("new session must be open")
	}

	end := time.Now()
	if err := s.Sessions().End(ctx, sess.SessionID, end); err != nil {
		t.Fatalf("end: %v", err)
	}

	got, err := s.Sessions().Get(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !got.Closed() {
		t.Fatal("session should be closed")
	}

	// Closing twice violates the write-once ended_at contract.
	err = s.Sessions().End(ctx, sess.SessionID, time.Now())
	if !IsConstraint(err) {
		t.Fatalf("expected ConstraintError on double close, got %v", err)
	}
}

func TestSessionStartUnknownUser(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Sessions().Start(context.Background(), "ghost", "algebra")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestSessionLatest(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")

	latest, err := s.Sessions().Latest(ctx, u.UserID)
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if latest != nil {
		t.Fatal("expected nil when no sessions exist")
	}

	startTestSession(t, s, u.UserID, "one")
	time.Sleep(5 * time.Millisecond)
	second := startTestSession(t, s, u.UserID, "two")

	latest, err = s.Sessions().Latest(ctx, u.UserID)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if latest.SessionID != second.SessionID {
		t.Errorf("latest = %s, want %s", latest.SessionID, second.SessionID)
	}
}

func TestSessionListFilters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	startTestSession(t, s, u.UserID, "fractions")
	startTestSession(t, s, u.UserID, "algebra")

	got, err := s.Sessions().List(ctx, SessionFilter{UserID: u.UserID, Topic: "algebra"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Topic != "algebra" {
		t.Errorf("filtered list = %+v", got)
	}
}
