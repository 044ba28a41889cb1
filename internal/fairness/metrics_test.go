package fairness

import (
	"context"
	"reflect"
	"testing"

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

func seedUser(t *testing.T, s *store.Store, level, language string) *store.User {
	t.Helper()
	u, err := s.Users().Create(context.Background(), &store.User{
		Name:              "learner",
		SelfRatedLevel:    level,
		PreferredLanguage: language,
	})
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	return u
}

// seedSession records a short dialogue ending in a solve or a give-up.
// withHint inserts one high-hint tutor turn before the outcome.
func seedSession(t *testing.T, s *store.Store, userID, topic string, solved, withHint bool) *store.Session {
	t.Helper()
	ctx := context.Background()

	sess, err := s.Sessions().Start(ctx, userID, topic)
	if err != nil {
		t.Fatalf("start session: %v", err)
	}

	turns := []store.RecordInteractionParams{
		{SessionID: sess.SessionID, Speaker: store.SpeakerStudent, AgentRole: "socratic_tutor", Content: "attempt", Status: store.StatusOngoing},
	}
	if withHint {
		turns = append(turns, store.RecordInteractionParams{
			SessionID: sess.SessionID, Speaker: store.SpeakerTutor, AgentRole: "socratic_tutor",
			Content: "hint", Status: store.StatusOngoing, HintPolicy: "high",
		})
	}
	outcome := store.StatusGiveUp
	if solved {
		outcome = store.StatusSolved
	}
	turns = append(turns, store.RecordInteractionParams{
		SessionID: sess.SessionID, Speaker: store.SpeakerTutor, AgentRole: "socratic_tutor",
		Content: "closing", Status: outcome,
	})

	for _, p := range turns {
		if _, err := s.Interactions().Record(ctx, p); err != nil {
			t.Fatalf("record: %v", err)
		}
	}
	return sess
}

// seedCohort creates one user per session so group sizes equal session
// counts regardless of grouping dimension.
func seedCohort(t *testing.T, s *store.Store, level string, total, solved int) {
	t.Helper()
	for i := 0; i < total; i++ {
		u := seedUser(t, s, level, "en")
		seedSession(t, s, u.UserID, "fractions", i < solved, false)
	}
}

func TestComputeSolvedRateGapWarn(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	// 7/8 vs 6/8 solved: gap 0.125, above warn, below alert.
	seedCohort(t, s, "beginner", 8, 6)
	seedCohort(t, s, "advanced", 8, 7)

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if m.TotalSessions != 16 || len(m.Groups) != 2 {
		t.Fatalf("total=%d groups=%d", m.TotalSessions, len(m.Groups))
	}
	// Groups are sorted by name: advanced before beginner.
	if m.Groups[0].Group != "advanced" || m.Groups[1].Group != "beginner" {
		t.Fatalf("group order = %q, %q", m.Groups[0].Group, m.Groups[1].Group)
	}
	if m.Groups[0].SolvedRate != 0.875 || m.Groups[1].SolvedRate != 0.75 {
		t.Errorf("solved rates = %v, %v", m.Groups[0].SolvedRate, m.Groups[1].SolvedRate)
	}
	if m.Gaps.SolvedRate == nil || *m.Gaps.SolvedRate != 0.125 {
		t.Fatalf("solved rate gap = %v, want 0.125", m.Gaps.SolvedRate)
	}

	a := Analyze(m)
	if a.Status != StatusWarn {
		t.Errorf("status = %q, want WARN", a.Status)
	}
	if len(a.Issues) != 1 || a.Issues[0].Metric != "solved_rate" {
		t.Errorf("issues = %+v", a.Issues)
	}
	if len(a.Recommendations) != 1 {
		t.Errorf("recommendations = %v", a.Recommendations)
	}
}

func TestComputeSolvedRateGapAlert(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	// 8/8 vs 5/8 solved: gap 0.375.
	seedCohort(t, s, "beginner", 8, 5)
	seedCohort(t, s, "advanced", 8, 8)

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	a := Analyze(m)
	if a.Status != StatusAlert {
		t.Errorf("status = %q, want ALERT", a.Status)
	}
}

func TestComputeHintRateGap(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	// Every beginner session gets a hint turn, no advanced session does.
	// All sessions solve, so the only disparity is hint usage.
	for i := 0; i < 6; i++ {
		u := seedUser(t, s, "beginner", "en")
		seedSession(t, s, u.UserID, "fractions", true, true)
	}
	for i := 0; i < 6; i++ {
		u := seedUser(t, s, "advanced", "en")
		seedSession(t, s, u.UserID, "fractions", true, false)
	}

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if m.Gaps.SolvedRate == nil || *m.Gaps.SolvedRate != 0 {
		t.Errorf("solved rate gap = %v, want 0", m.Gaps.SolvedRate)
	}
	if m.Gaps.HintRate == nil || *m.Gaps.HintRate < rateAlertThreshold {
		t.Errorf("hint rate gap = %v, want >= alert threshold", m.Gaps.HintRate)
	}

	a := Analyze(m)
	if a.Status != StatusAlert {
		t.Errorf("status = %q, want ALERT", a.Status)
	}
}

func TestComputeTenSessionCohorts(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	// Beginners solve 8 of 10 sessions, advanced 9 of 10.
	seedCohort(t, s, "beginner", 10, 8)
	seedCohort(t, s, "advanced", 10, 9)

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if m.Gaps.SolvedRate == nil {
		t.Fatal("expected a solved rate gap")
	}
	if diff := *m.Gaps.SolvedRate - 0.1; diff < -1e-9 || diff > 1e-9 {
		t.Errorf("solved rate gap = %v, want 0.1", *m.Gaps.SolvedRate)
	}
}

func TestComputeInsufficientDataGroupExcluded(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	seedCohort(t, s, "beginner", 6, 3)
	seedCohort(t, s, "advanced", 2, 0) // below the default minimum of 5

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	var small *GroupMetrics
	for i := range m.Groups {
		if m.Groups[i].Group == "advanced" {
			small = &m.Groups[i]
		}
	}
	if small == nil {
		t.Fatal("small group must still be reported")
	}
	if !small.InsufficientData {
		t.Error("small group must be marked insufficient, not scored as zero")
	}
	if m.EligibleGroups != 1 {
		t.Errorf("eligible groups = %d, want 1", m.EligibleGroups)
	}
	if m.Gaps.SolvedRate != nil {
		t.Errorf("gap = %v, want absent with one eligible group", *m.Gaps.SolvedRate)
	}

	a := Analyze(m)
	if a.Status != StatusNotEnoughData {
		t.Errorf("status = %q, want NOT_ENOUGH_DATA", a.Status)
	}
}

func TestComputeCustomMinSampleSize(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	seedCohort(t, s, "beginner", 2, 2)
	seedCohort(t, s, "advanced", 2, 1)

	m, err := engine.Compute(context.Background(), Params{
		GroupBy:       GroupBySelfRatedLevel,
		MinSampleSize: 2,
	})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if m.EligibleGroups != 2 {
		t.Errorf("eligible groups = %d, want 2 with threshold lowered", m.EligibleGroups)
	}
	if m.Gaps.SolvedRate == nil || *m.Gaps.SolvedRate != 0.5 {
		t.Errorf("solved rate gap = %v, want 0.5", m.Gaps.SolvedRate)
	}
}

func TestComputeGroupByTopic(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	u := seedUser(t, s, "beginner", "en")
	for i := 0; i < 5; i++ {
		seedSession(t, s, u.UserID, "fractions", true, false)
		seedSession(t, s, u.UserID, "algebra", false, false)
	}

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupByTopic})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if len(m.Groups) != 2 {
		t.Fatalf("groups = %d, want 2", len(m.Groups))
	}
	if m.Groups[0].Group != "algebra" || m.Groups[0].SolvedRate != 0 {
		t.Errorf("algebra group = %+v", m.Groups[0])
	}
	if m.Groups[1].Group != "fractions" || m.Groups[1].SolvedRate != 1 {
		t.Errorf("fractions group = %+v", m.Groups[1])
	}
}

func TestComputeTopicFilter(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	u := seedUser(t, s, "beginner", "en")
	seedSession(t, s, u.UserID, "fractions", true, false)
	seedSession(t, s, u.UserID, "algebra", true, false)

	m, err := engine.Compute(context.Background(), Params{
		GroupBy: GroupBySelfRatedLevel,
		Topic:   "fractions",
	})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if m.TotalSessions != 1 {
		t.Errorf("total sessions = %d, want 1 after topic filter", m.TotalSessions)
	}
}

func TestComputeDeterministic(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	seedCohort(t, s, "beginner", 6, 4)
	seedCohort(t, s, "advanced", 6, 5)
	seedCohort(t, s, "intermediate", 3, 1)

	p := Params{GroupBy: GroupBySelfRatedLevel}
	first, err := engine.Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("first compute: %v", err)
	}
	second, err := engine.Compute(context.Background(), p)
	if err != nil {
		t.Fatalf("second compute: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated computation diverged:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestComputeInvalidGroupBy(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	_, err := engine.Compute(context.Background(), Params{GroupBy: "shoe_size"})
	if !store.IsConstraint(err) {
		t.Fatalf("expected ConstraintError, got %v", err)
	}
}

func TestAnalyzeOKWhenGapsSmall(t *testing.T) {
	s := openTestStore(t)
	engine := NewEngine(s)

	seedCohort(t, s, "beginner", 8, 6)
	seedCohort(t, s, "advanced", 8, 6)

	m, err := engine.Compute(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	a := Analyze(m)
	if a.Status != StatusOK {
		t.Errorf("status = %q, want OK for identical groups", a.Status)
	}
	if len(a.Issues) != 0 {
		t.Errorf("issues = %+v", a.Issues)
	}
}
