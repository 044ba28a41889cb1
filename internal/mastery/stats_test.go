package mastery

import (
	"testing"

	"github.com/metamind-labs/metamind/internal/store"
)

func turn(idx int, speaker, status, hintPolicy string) *store.Interaction {
	return &store.Interaction{
		TurnIndex:  idx,
		Speaker:    speaker,
		Status:     status,
		HintPolicy: hintPolicy,
	}
}

func TestStatsFromInteractions(t *testing.T) {
	sess := &store.Session{SessionID: "s1", UserID: "u1", Topic: "fractions"}

	turns := []*store.Interaction{
		turn(0, store.SpeakerTutor, store.StatusOngoing, ""),
		turn(1, store.SpeakerStudent, store.StatusOngoing, ""),
		turn(2, store.SpeakerTutor, store.StatusOngoing, "high"),
		turn(3, store.SpeakerStudent, store.StatusOngoing, ""),
		turn(4, store.SpeakerTutor, store.StatusSolved, ""),
	}

	stats := StatsFromInteractions(sess, turns)

	if stats.Turns != 5 {
		t.Errorf("Turns = %d, want 5", stats.Turns)
	}
	if stats.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", stats.Attempts)
	}
	if stats.HintCount != 1 {
		t.Errorf("HintCount = %d, want 1", stats.HintCount)
	}
	if stats.SolvedCount != 1 {
		t.Errorf("SolvedCount = %d, want 1", stats.SolvedCount)
	}
	// First student turn at 1, solved at 4.
	if stats.StepsToSolve == nil || *stats.StepsToSolve != 3 {
		t.Errorf("StepsToSolve = %v, want 3", stats.StepsToSolve)
	}
}

func TestStatsUnsolvedHasNoSteps(t *testing.T) {
	sess := &store.Session{SessionID: "s1", UserID: "u1", Topic: "fractions"}
	turns := []*store.Interaction{
		turn(0, store.SpeakerStudent, store.StatusOngoing, ""),
		turn(1, store.SpeakerTutor, store.StatusOngoing, ""),
		turn(2, store.SpeakerStudent, store.StatusGiveUp, ""),
	}

	stats := StatsFromInteractions(sess, turns)
	if stats.StepsToSolve != nil {
		t.Errorf("unsolved session must have nil StepsToSolve, got %v", *stats.StepsToSolve)
	}
	if stats.SolvedCount != 0 {
		t.Errorf("SolvedCount = %d, want 0", stats.SolvedCount)
	}
}

func TestStatsEmptySession(t *testing.T) {
	sess := &store.Session{SessionID: "s1", UserID: "u1", Topic: "fractions"}
	stats := StatsFromInteractions(sess, nil)

	if stats.Turns != 0 || stats.Attempts != 0 || stats.StepsToSolve != nil {
		t.Errorf("empty session stats = %+v", stats)
	}
}

func TestStatsHintPolicyCaseInsensitive(t *testing.T) {
	sess := &store.Session{SessionID: "s1", UserID: "u1", Topic: "fractions"}
	turns := []*store.Interaction{
		turn(0, store.SpeakerTutor, store.StatusOngoing, "HIGH"),
		turn(1, store.SpeakerTutor, store.StatusOngoing, "low"),
	}

	stats := StatsFromInteractions(sess, turns)
	if stats.HintCount != 1 {
		t.Errorf("HintCount = %d, want 1", stats.HintCount)
	}
}

func TestStatsSolveAtFloorOneStep(t *testing.T) {
	sess := &store.Session{SessionID: "s1", UserID: "u1", Topic: "fractions"}
	// Solved turn precedes the first student turn in index order; the
	// derived step count still reports at least one step.
	turns := []*store.Interaction{
		turn(0, store.SpeakerTutor, store.StatusSolved, ""),
		turn(1, store.SpeakerStudent, store.StatusOngoing, ""),
	}

	stats := StatsFromInteractions(sess, turns)
	if stats.StepsToSolve == nil || *stats.StepsToSolve != 1 {
		t.Errorf("StepsToSolve = %v, want floor of 1", stats.StepsToSolve)
	}
}
