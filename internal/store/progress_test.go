package store

import (
	"context"
	"testing"
	"time"
)

func TestProgressAppendAndOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")

	deltas := []float64{0.2, 0.15, 0.1}
	for _, d := range deltas {
		_, err := s.Progress().Append(ctx, AppendSnapshotParams{
			UserID: u.UserID,
			Topic:  "fractions",
			Skill:  "common_denominator",
			Delta:  d,
			Reason: "solved",
		})
		if err != nil {
			t.Fatalf("append %v: %v", d, err)
		}
	}

	snaps, err := s.Progress().List(ctx, SnapshotFilter{
		UserID: u.UserID,
		Topic:  "fractions",
		Skill:  "common_denominator",
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(snaps) != 3 {
		t.Fatalf("snapshot count = %d, want 3", len(snaps))
	}
	for i, snap := range snaps {
		if snap.Delta != deltas[i] {
			t.Errorf("snaps[%d].Delta = %v, want %v", i, snap.Delta, deltas[i])
		}
	}
}

func TestProgressDeltaOutOfRange(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")

	_, err := s.Progress().Append(ctx, AppendSnapshotParams{
		UserID: u.UserID,
		Topic:  "fractions",
		Skill:  "common_denominator",
		Delta:  5.0,
	})
	if !IsConstraint(err) {
		t.Fatalf("expected ConstraintError for delta 5.0, got %v", err)
	}

	// Nothing may be written on rejection.
	snaps, err := s.Progress().List(ctx, SnapshotFilter{UserID: u.UserID})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("snapshot count = %d, want 0", len(snaps))
	}
}

func TestProgressCustomBounds(t *testing.T) {
	s := openTestStore(t, WithDeltaBounds(DeltaBounds{Min: 0, Max: 0.5}))
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")

	if _, err := s.Progress().Append(ctx, AppendSnapshotParams{
		UserID: u.UserID, Topic: "t", Skill: "s", Delta: 0.4,
	}); err != nil {
		t.Fatalf("delta 0.4 within bounds: %v", err)
	}
	if _, err := s.Progress().Append(ctx, AppendSnapshotParams{
		UserID: u.UserID, Topic: "t", Skill: "s", Delta: -0.1,
	}); !IsConstraint(err) {
		t.Fatalf("expected ConstraintError for delta -0.1, got %v", err)
	}
}

func TestProgressWindowFilter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")

	_, err := s.Progress().Append(ctx, AppendSnapshotParams{
		UserID: u.UserID, Topic: "t", Skill: "s", Delta: 0.1,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	future := time.Now().Add(time.Hour)
	snaps, err := s.Progress().List(ctx, SnapshotFilter{UserID: u.UserID, From: future})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(snaps) != 0 {
		t.Errorf("future window should exclude all snapshots, got %d", len(snaps))
	}
}

func TestStatsUpsert(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	steps := 4.0
	stats := &SessionStats{
		SessionID:    sess.SessionID,
		UserID:       u.UserID,
		Topic:        "fractions",
		Turns:        8,
		Attempts:     4,
		SolvedCount:  1,
		StepsToSolve: &steps,
		HintCount:    2,
	}
	if err := s.Stats().Upsert(ctx, stats); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	stats.Turns = 10
	stats.Attempts = 5
	if err := s.Stats().Upsert(ctx, stats); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	got, err := s.Stats().Get(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Turns != 10 || got.Attempts != 5 {
		t.Errorf("got turns=%d attempts=%d", got.Turns, got.Attempts)
	}
	if got.StepsToSolve == nil || *got.StepsToSolve != 4.0 {
		t.Errorf("steps_to_solve = %v, want 4.0", got.StepsToSolve)
	}
}

func TestPlanVersioning(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	first, err := s.Plans().Append(ctx, sess.SessionID, map[string]any{"goal": "warm up"})
	if err != nil {
		t.Fatalf("append v1: %v", err)
	}
	second, err := s.Plans().Append(ctx, sess.SessionID, map[string]any{"goal": "advance"})
	if err != nil {
		t.Fatalf("append v2: %v", err)
	}

	if first.Version != 1 || second.Version != 2 {
		t.Errorf("versions = %d, %d; want 1, 2", first.Version, second.Version)
	}

	cur, err := s.Plans().Current(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur.Plan["goal"] != "advance" {
		t.Errorf("current goal = %v, want advance", cur.Plan["goal"])
	}

	hist, err := s.Plans().History(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(hist) != 2 || hist[0].Plan["goal"] != "warm up" {
		t.Errorf("history = %+v", hist)
	}
}

func TestPlanCurrentEmpty(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	sess := startTestSession(t, s, u.UserID, "fractions")

	cur, err := s.Plans().Current(ctx, sess.SessionID)
	if err != nil {
		t.Fatalf("current: %v", err)
	}
	if cur != nil {
		t.Fatal("expected nil plan when none appended")
	}
}

func TestStudentSkillUpsertRules(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	now := time.Now()

	repo := s.StudentModel()
	if err := repo.UpsertSkill(ctx, u.UserID, "fractions", "common_denominator", 0.4, "warmup", now); err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	skills, err := repo.ListSkills(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(skills) != 1 {
		t.Fatalf("skill count = %d, want 1", len(skills))
	}
	sk := skills[0]
	if sk.Exposures != 1 {
		t.Errorf("exposures = %d, want 1", sk.Exposures)
	}
	if !sk.NeedsReinforcement {
		t.Error("single low-mastery exposure must need reinforcement")
	}

	if err := repo.UpsertSkill(ctx, u.UserID, "fractions", "common_denominator", 0.7, "apply", now); err != nil {
		t.Fatalf("second upsert: %v", err)
	}
	skills, _ = repo.ListSkills(ctx, u.UserID, "fractions")
	sk = skills[0]
	if sk.Exposures != 2 || sk.Mastery != 0.7 {
		t.Errorf("exposures=%d mastery=%v", sk.Exposures, sk.Mastery)
	}
	if sk.NeedsReinforcement {
		t.Error("mastery 0.7 over 2 exposures should not need reinforcement")
	}
	if sk.ContextsSeen != "warmup,apply" {
		t.Errorf("contexts_seen = %q", sk.ContextsSeen)
	}
}

func TestTopicDifficultyClamped(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	u := createTestUser(t, s, "beginner", "en")
	repo := s.StudentModel()

	d, err := repo.GetTopicDifficulty(ctx, u.UserID, "fractions")
	if err != nil {
		t.Fatalf("get default: %v", err)
	}
	if d != 0.5 {
		t.Errorf("default difficulty = %v, want 0.5", d)
	}

	if err := repo.SetTopicDifficulty(ctx, u.UserID, "fractions", 2.0); err != nil {
		t.Fatalf("set: %v", err)
	}
	d, _ = repo.GetTopicDifficulty(ctx, u.UserID, "fractions")
	if d != 0.95 {
		t.Errorf("difficulty = %v, want clamp to 0.95", d)
	}
}

func TestReportSaveGetList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Reports().Save(ctx, SaveReportParams{
		GroupBy: "self_rated_level",
		Metrics: map[string]any{"solved_rate_gap": 0.1},
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Topic != "ALL" {
		t.Errorf("empty topic should default to ALL, got %q", first.Topic)
	}

	got, err := s.Reports().Get(ctx, first.ReportID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Metrics["solved_rate_gap"] != 0.1 {
		t.Errorf("metrics = %v", got.Metrics)
	}

	time.Sleep(5 * time.Millisecond)
	second, err := s.Reports().Save(ctx, SaveReportParams{
		GroupBy: "preferred_language",
		Metrics: map[string]any{},
	})
	if err != nil {
		t.Fatalf("save second: %v", err)
	}

	list, err := s.Reports().List(ctx, ReportFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("report count = %d, want 2", len(list))
	}
	if list[0].ReportID != second.ReportID {
		t.Error("list must be most recent first")
	}

	filtered, err := s.Reports().List(ctx, ReportFilter{GroupBy: "self_rated_level"})
	if err != nil {
		t.Fatalf("filtered list: %v", err)
	}
	if len(filtered) != 1 || filtered[0].ReportID != first.ReportID {
		t.Errorf("filtered = %+v", filtered)
	}
}

func TestReportGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Reports().Get(context.Background(), "ghost")
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}

func TestLLMRequestEventAppend(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	calls := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "skill-extract", InputTokens: 10, OutputTokens: 5, LatencyMs: 20, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "skill-extract", InputTokens: 30, OutputTokens: 15, LatencyMs: 40, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "fairness-interpret", InputTokens: 100, Success: false, ErrorMessage: "boom"},
	}
	for _, c := range calls {
		if err := s.Events().AppendLLMRequest(ctx, c); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := s.Events().ListLLMRequests(ctx, 2)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("event count = %d, want limit of 2", len(events))
	}

	got, err := s.Events().GetLLMRequest(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != events[0].ID {
		t.Errorf("get returned id %d, want %d", got.ID, events[0].ID)
	}

	usage, err := s.Events().UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	byKey := map[string]*LLMUsage{}
	for _, u := range usage {
		byKey[u.Key] = u
	}
	extract := byKey["skill-extract"]
	if extract == nil || extract.Calls != 2 || extract.InputTokens != 40 || extract.OutputTokens != 20 {
		t.Errorf("skill-extract usage = %+v", extract)
	}
	if interp := byKey["fairness-interpret"]; interp == nil || interp.Calls != 1 {
		t.Errorf("fairness-interpret usage = %+v", interp)
	}
}

func TestLLMRequestEventGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Events().GetLLMRequest(context.Background(), 999)
	if !IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
