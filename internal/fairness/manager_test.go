package fairness

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/metamind-labs/metamind/internal/llm"
	"github.com/metamind-labs/metamind/internal/store"
)

func interpretResponse(t *testing.T, summary string) llm.MockResponse {
	t.Helper()
	content, err := json.Marshal(Interpretation{
		Summary:           summary,
		LikelyCauses:      []string{"sample size"},
		RecommendedChecks: []string{"rerun with a wider window"},
		Mitigations:       []string{"none yet"},
		Confidence:        0.6,
	})
	if err != nil {
		t.Fatal(err)
	}
	return llm.MockResponse{Content: content}
}

func TestRunAuditSavesReport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedCohort(t, s, "beginner", 8, 6)
	seedCohort(t, s, "advanced", 8, 7)

	mock := llm.NewMockProvider(interpretResponse(t, "modest solved-rate spread"))
	mgr := NewManager(s, NewLLMInterpreter(mock))

	report, err := mgr.RunAudit(ctx, Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("run audit: %v", err)
	}

	if report.GroupBy != GroupBySelfRatedLevel || report.Topic != "ALL" {
		t.Errorf("report header = %q/%q", report.GroupBy, report.Topic)
	}
	if report.MinSampleSize != DefaultMinSampleSize {
		t.Errorf("min sample = %d, want default %d", report.MinSampleSize, DefaultMinSampleSize)
	}
	if report.Metrics["total_sessions"] != float64(16) {
		t.Errorf("total_sessions = %v", report.Metrics["total_sessions"])
	}
	analysis, ok := report.Metrics["analysis"].(map[string]any)
	if !ok || analysis["status"] != StatusWarn {
		t.Errorf("embedded analysis = %v", report.Metrics["analysis"])
	}
	if report.Interpretation == nil || report.Interpretation["summary"] != "modest solved-rate spread" {
		t.Errorf("interpretation = %v", report.Interpretation)
	}
	if report.Notes != "" {
		t.Errorf("notes = %q, want empty on success", report.Notes)
	}

	// The saved report must round-trip through the store.
	got, err := mgr.GetReport(ctx, report.ReportID)
	if err != nil {
		t.Fatalf("get report: %v", err)
	}
	if got.ReportID != report.ReportID {
		t.Errorf("report ID mismatch")
	}
}

func TestRunAuditInterpreterUnavailable(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedCohort(t, s, "beginner", 6, 4)
	seedCohort(t, s, "advanced", 6, 5)

	// Empty mock queue: the interpreter fails on every call.
	mgr := NewManager(s, NewLLMInterpreter(llm.NewMockProvider()))

	report, err := mgr.RunAudit(ctx, Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("audit must degrade, not fail: %v", err)
	}
	if report.Interpretation != nil {
		t.Errorf("interpretation = %v, want absent", report.Interpretation)
	}
	if report.Notes == "" {
		t.Error("degraded report must carry a note")
	}
	// Metrics are unaffected by the interpreter outage.
	if report.Metrics["total_sessions"] != float64(12) {
		t.Errorf("total_sessions = %v", report.Metrics["total_sessions"])
	}
}

func TestRunAuditWithoutInterpreter(t *testing.T) {
	s := openTestStore(t)

	seedCohort(t, s, "beginner", 5, 3)
	mgr := NewManager(s, nil)

	report, err := mgr.RunAudit(context.Background(), Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("run audit: %v", err)
	}
	if report.Interpretation != nil || report.Notes != "" {
		t.Errorf("nil interpreter must leave interpretation and notes empty: %+v", report)
	}
}

func TestReanalyzeCreatesNewReport(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedCohort(t, s, "beginner", 6, 4)
	seedCohort(t, s, "advanced", 6, 5)

	mgr := NewManager(s, nil)

	first, err := mgr.RunAudit(ctx, Params{GroupBy: GroupBySelfRatedLevel, MinSampleSize: 3})
	if err != nil {
		t.Fatalf("first audit: %v", err)
	}

	// More history lands between the runs.
	seedCohort(t, s, "beginner", 3, 0)

	second, err := mgr.Reanalyze(ctx, first.ReportID)
	if err != nil {
		t.Fatalf("reanalyze: %v", err)
	}

	if second.ReportID == first.ReportID {
		t.Fatal("reanalysis must create a new report")
	}
	if second.GroupBy != first.GroupBy || second.MinSampleSize != first.MinSampleSize {
		t.Errorf("reanalysis must reuse stored parameters: %+v vs %+v", second, first)
	}
	if second.Metrics["total_sessions"] == first.Metrics["total_sessions"] {
		t.Error("reanalysis over grown history should see more sessions")
	}

	// Both reports remain listed.
	reports, err := mgr.ListReports(ctx, store.ReportFilter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(reports) != 2 {
		t.Errorf("report count = %d, want 2", len(reports))
	}
}

func TestReanalyzeIdempotentOverUnchangedData(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	seedCohort(t, s, "beginner", 6, 4)
	seedCohort(t, s, "advanced", 6, 5)

	mgr := NewManager(s, nil)

	first, err := mgr.RunAudit(ctx, Params{GroupBy: GroupBySelfRatedLevel})
	if err != nil {
		t.Fatalf("first audit: %v", err)
	}
	second, err := mgr.Reanalyze(ctx, first.ReportID)
	if err != nil {
		t.Fatalf("reanalyze: %v", err)
	}

	// No data changed between the runs: metric values must match
	// exactly even though the report rows are distinct.
	firstJSON, _ := json.Marshal(first.Metrics)
	secondJSON, _ := json.Marshal(second.Metrics)
	if string(firstJSON) != string(secondJSON) {
		t.Errorf("metrics diverged over unchanged data:\n%s\n%s", firstJSON, secondJSON)
	}
}

func TestReanalyzeUnknownReport(t *testing.T) {
	s := openTestStore(t)
	mgr := NewManager(s, nil)

	_, err := mgr.Reanalyze(context.Background(), "ghost")
	if !store.IsNotFound(err) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
}
