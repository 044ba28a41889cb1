package mastery

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/metamind-labs/metamind/internal/llm"
	"github.com/metamind-labs/metamind/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func seedSession(t *testing.T, s *store.Store, level string) (*store.User, *store.Session) {
	t.Helper()
	ctx := context.Background()

	u, err := s.Users().Create(ctx, &store.User{
		Name:              "learner",
		SelfRatedLevel:    level,
		PreferredLanguage: "en",
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	sess, err := s.Sessions().Start(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("start session: %v", err)
	}
	return u, sess
}

func record(t *testing.T, s *store.Store, sessionID, speaker, content, status, hintPolicy string) {
	t.Helper()
	_, err := s.Interactions().Record(context.Background(), store.RecordInteractionParams{
		SessionID:  sessionID,
		Speaker:    speaker,
		AgentRole:  "socratic_tutor",
		Content:    content,
		Status:     status,
		HintPolicy: hintPolicy,
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}
}

func extractResponse(t *testing.T, skills ...string) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(SkillExtract{Skills: skills, Reason: "practiced in transcript"})
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: content}
}

func TestDigestSolvedSession(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, sess := seedSession(t, s, "beginner")
	record(t, s, sess.SessionID, store.SpeakerStudent, "how do I add 1/2 and 1/3?", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerTutor, "what do the denominators need?", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerStudent, "a common denominator, so 5/6!", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerTutor, "exactly right", store.StatusSolved, "")

	mock := llm.NewMockProvider(extractResponse(t, "common_denominator"))
	agg := NewAggregator(s, NewLLMExtractor(mock))

	digest, err := agg.DigestSession(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}

	if digest.ExtractionSkipped {
		t.Fatal("extraction should have succeeded")
	}
	if len(digest.SkillUpdates) != 1 {
		t.Fatalf("skill updates = %d, want 1", len(digest.SkillUpdates))
	}
	up := digest.SkillUpdates[0]
	if up.Skill != "common_denominator" {
		t.Errorf("skill = %q", up.Skill)
	}
	// First solve from mastery 0: delta 0.2, folded mastery 0.2.
	if !floatEq(up.Delta, 0.2) || !floatEq(up.Mastery, 0.2) {
		t.Errorf("delta=%v mastery=%v, want 0.2 each", up.Delta, up.Mastery)
	}
	if digest.TargetDifficulty != "easy" {
		t.Errorf("target = %q, want easy at mastery 0.2", digest.TargetDifficulty)
	}

	// The snapshot must be in the event history.
	snaps, err := s.Progress().List(ctx, store.SnapshotFilter{UserID: u.UserID})
	if err != nil {
		t.Fatalf("list snapshots: %v", err)
	}
	if len(snaps) != 1 || snaps[0].SourceSessionID != sess.SessionID {
		t.Errorf("snapshots = %+v", snaps)
	}

	// Stats cache must be populated.
	stats, err := s.Stats().Get(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.Turns != 4 || stats.Attempts != 2 || stats.SolvedCount != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.MasteryDelta == nil || !floatEq(*stats.MasteryDelta, 0.2) {
		t.Errorf("mastery delta = %v, want 0.2", stats.MasteryDelta)
	}
}

func TestDigestDiminishingDeltas(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _ := seedSession(t, s, "beginner")
	agg := NewAggregator(s, nil)

	// Replay three solves through the snapshot log directly.
	current := 0.0
	for i := 0; i < 3; i++ {
		d := ComputeDelta(current)
		if _, err := s.Progress().Append(ctx, store.AppendSnapshotParams{
			UserID: u.UserID, Topic: "fractions", Skill: "simplify", Delta: d, Reason: "solved",
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
		m, err := agg.Mastery(ctx, u.UserID, "fractions", "simplify")
		if err != nil {
			t.Fatalf("mastery: %v", err)
		}
		if m <= current {
			t.Errorf("mastery must increase: %v -> %v", current, m)
		}
		current = m
	}
	// 0.2, then 0.2*0.8=0.16, then 0.2*0.64=0.128.
	if !floatEq(current, 0.488) {
		t.Errorf("mastery after three solves = %v, want 0.488", current)
	}
}

func TestDigestExtractorUnavailable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, sess := seedSession(t, s, "beginner")
	record(t, s, sess.SessionID, store.SpeakerStudent, "help", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerTutor, "done", store.StatusSolved, "")

	// Empty mock queue: every call fails with ErrProviderUnavailable.
	agg := NewAggregator(s, NewLLMExtractor(llm.NewMockProvider()))

	digest, err := agg.DigestSession(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("digest must degrade, not fail: %v", err)
	}
	if !digest.ExtractionSkipped {
		t.Fatal("expected ExtractionSkipped")
	}
	if len(digest.SkillUpdates) != 0 {
		t.Errorf("skill updates = %d, want 0", len(digest.SkillUpdates))
	}

	// Stats still land even without skills.
	stats, err := s.Stats().Get(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("get stats: %v", err)
	}
	if stats.Turns != 2 || stats.SolvedCount != 1 {
		t.Errorf("stats = %+v", stats)
	}

	// No snapshots may have been invented.
	snaps, _ := s.Progress().List(ctx, store.SnapshotFilter{UserID: u.UserID})
	if len(snaps) != 0 {
		t.Errorf("snapshots = %d, want 0", len(snaps))
	}
}

func TestDigestUnsolvedSessionNoSnapshots(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, sess := seedSession(t, s, "beginner")
	record(t, s, sess.SessionID, store.SpeakerStudent, "stuck", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerStudent, "giving up", store.StatusGiveUp, "")

	mock := llm.NewMockProvider(extractResponse(t, "simplify"))
	agg := NewAggregator(s, NewLLMExtractor(mock))

	digest, err := agg.DigestSession(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("digest: %v", err)
	}

	// The skill is still recorded as seen, but no mastery is granted.
	if len(digest.SkillUpdates) != 1 || digest.SkillUpdates[0].Delta != 0 {
		t.Errorf("updates = %+v", digest.SkillUpdates)
	}
	snaps, _ := s.Progress().List(ctx, store.SnapshotFilter{UserID: u.UserID})
	if len(snaps) != 0 {
		t.Errorf("unsolved session appended %d snapshots", len(snaps))
	}

	skills, err := s.StudentModel().ListSkills(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("list skills: %v", err)
	}
	if len(skills) != 1 || !skills[0].NeedsReinforcement {
		t.Errorf("skills = %+v", skills)
	}
}

func TestDigestHintLowersDifficulty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, sess := seedSession(t, s, "beginner")
	record(t, s, sess.SessionID, store.SpeakerStudent, "lost", store.StatusOngoing, "")
	record(t, s, sess.SessionID, store.SpeakerTutor, "try the numerators", store.StatusOngoing, "high")
	record(t, s, sess.SessionID, store.SpeakerTutor, "there you go", store.StatusSolved, "")

	mock := llm.NewMockProvider(extractResponse(t, "simplify"))
	agg := NewAggregator(s, NewLLMExtractor(mock))

	if _, err := agg.DigestSession(ctx, sess.SessionID); err != nil {
		t.Fatalf("digest: %v", err)
	}

	d, err := s.StudentModel().GetTopicDifficulty(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("get difficulty: %v", err)
	}
	if !floatEq(d, 0.4) {
		t.Errorf("difficulty = %v, want 0.5 - 0.10 = 0.4", d)
	}
}

func TestDigestCleanSolveRaisesDifficulty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, sess := seedSession(t, s, "beginner")
	record(t, s, sess.SessionID, store.SpeakerStudent, "got it", store.StatusSolved, "")

	mock := llm.NewMockProvider(extractResponse(t, "simplify"))
	agg := NewAggregator(s, NewLLMExtractor(mock))

	if _, err := agg.DigestSession(ctx, sess.SessionID); err != nil {
		t.Fatalf("digest: %v", err)
	}

	d, _ := s.StudentModel().GetTopicDifficulty(ctx, u.UserID, "fractions")
	if !floatEq(d, 0.55) {
		t.Errorf("difficulty = %v, want 0.5 + 0.05 = 0.55", d)
	}
}

func TestTopicMasteryGroupsBySkill(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u, _ := seedSession(t, s, "beginner")
	agg := NewAggregator(s, nil)

	for _, p := range []struct {
		skill string
		delta float64
	}{
		{"simplify", 0.2},
		{"simplify", 0.16},
		{"common_denominator", 0.2},
	} {
		if _, err := s.Progress().Append(ctx, store.AppendSnapshotParams{
			UserID: u.UserID, Topic: "fractions", Skill: p.skill, Delta: p.delta,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := agg.TopicMastery(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("topic mastery: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("skills = %d, want 2", len(got))
	}
	if !floatEq(got["simplify"], 0.36) || !floatEq(got["common_denominator"], 0.2) {
		t.Errorf("mastery map = %v", got)
	}
}

func TestExtractorTruncatesToFiveSkills(t *testing.T) {
	content, _ := json.Marshal(SkillExtract{
		Skills: []string{"a", "b", "c", "d", "e", "f", "g"},
		Reason: "over-eager model",
	})
	mock := llm.NewMockProvider(llm.MockResponse{Content: content})
	ex := NewLLMExtractor(mock)

	got, err := ex.ExtractSkills(context.Background(), "fractions", nil)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if len(got.Skills) != 5 {
		t.Errorf("skills = %d, want truncation to 5", len(got.Skills))
	}
}

func TestExtractorMalformedJSON(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`not json`)})
	ex := NewLLMExtractor(mock)

	_, err := ex.ExtractSkills(context.Background(), "fractions", nil)
	var invalid *llm.ErrInvalidResponse
	if !errors.As(err, &invalid) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}
