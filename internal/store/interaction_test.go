package store

import (
	"context"
	"sync"
	"testing"
	"time"
)

func recordTurn(t *testing.T, s *Store, sessionID, speaker, content string) *Interaction {
	t.Helper()
	it, err := s.Interactions().Record(context.Background(), RecordInteractionParams{
		SessionID: sessionID,
		Speaker:   speaker,
		AgentRole: "socratic_tutor",
		Content:   content,
	})
	if err != nil {
		t.Fatalf("record interaction: %v", err)
	}
	return it
}

func TestInteractionTurnIndicesContiguous(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	for i := 0; i < 5; i++ {
		speaker := SpeakerStudent
		if i%2 == 1 {
			speaker = SpeakerTutor
		}
		it := recordTurn(t, s, sess.SessionID, speaker, "turn")
		if it.TurnIndex != i {
			t.Errorf("turn %d assigned index %d", i, it.TurnIndex)
		}
	}

	turns, err := s.Interactions().List(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	for i, it := range turns {
		if it.TurnIndex != i {
			t.Errorf("list[%d].TurnIndex = %d; indices must be contiguous from 0", i, it.TurnIndex)
		}
	}
}

func TestInteractionIndependentPerSession(t *testing.T) {
	s := openTestStore(t)

	u := createTestUser(t, s, "beginner", "en")
	a := startTestSession(t, s, u.UserID, "fractions")
	b := startTestSession(t, s, u.UserID, "algebra")

	recordTurn(t, s, a.SessionID, SpeakerStudent, "a0")
	itB := recordTurn(t, s, b.SessionID, SpeakerStudent, "b0")
	itA := recordTurn(t, s, a.SessionID, SpeakerTutor, "a1")

	if itB.TurnIndex != 0 {
		t.Errorf("session b first turn = %d, want 0", itB.TurnIndex)
	}
	if itA.TurnIndex != 1 {
		t.Errorf("session a second turn = %d, want 1", itA.TurnIndex)
	}
}

func TestInteractionClosedSessionRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")
	recordTurn(t, s, sess.SessionID, SpeakerStudent, "hello")

	if err := s.Sessions().End(ctx, sess.SessionID, time.Now()); err != nil {
		t.Fatalf("end: %v", err)
	}

	_, err := s.Interactions().Record(ctx, RecordInteractionParams{
		SessionID: sess.SessionID,
		Speaker:   SpeakerStudent,
		AgentRole: "system",
		Content:   "too late",
	})
	if !IsConstraint(err) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}

	// The rejected write must not have left a row behind.
	turns, err := s.Interactions().List(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(turns) != 1 {
		t.Errorf("turn count = %d, want 1", len(turns))
	}
}

func TestInteractionUnknownSession(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Interactions().Record(context.Background(), RecordInteractionParams{
		SessionID: "ghost",
		Speaker:   SpeakerStudent,
		AgentRole: "system",
		Content:   "hello",
	})
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestInteractionConcurrentWriters(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)

	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.Interactions().Record(ctx, RecordInteractionParams{
				SessionID: sess.SessionID,
				Speaker:   SpeakerStudent,
				AgentRole: "system",
				Content:   "concurrent",
			})
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("writer %d: %v", i, err)
		}
	}

	turns, err := s.Interactions().List(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(turns) != writers {
		t.Fatalf("turn count = %d, want %d", len(turns), writers)
	}
	for i, it := range turns {
		if it.TurnIndex != i {
			t.Errorf("turns[%d].TurnIndex = %d; concurrent writes must serialize", i, it.TurnIndex)
		}
	}
}

func TestInteractionRecent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	for i := 0; i < 5; i++ {
		recordTurn(t, s, sess.SessionID, SpeakerStudent, "turn")
	}

	recent, err := s.Interactions().Recent(ctx, sess.SessionID, 3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("recent count = %d, want 3", len(recent))
	}
	// Chronological order: oldest of the window first.
	if recent[0].TurnIndex != 2 || recent[2].TurnIndex != 4 {
		t.Errorf("recent window = [%d..%d], want [2..4]", recent[0].TurnIndex, recent[2].TurnIndex)
	}
}
