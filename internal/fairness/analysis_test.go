package fairness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f(v float64) *float64 { return &v }

func metricsWith(eligible int, gaps Gaps) *Metrics {
	return &Metrics{
		GroupBy:        GroupBySelfRatedLevel,
		MinSampleSize:  DefaultMinSampleSize,
		EligibleGroups: eligible,
		Gaps:           gaps,
	}
}

func TestAnalyzeThresholds(t *testing.T) {
	tests := []struct {
		name       string
		gaps       Gaps
		wantStatus string
		wantIssues int
	}{
		{"all gaps tiny", Gaps{SolvedRate: f(0.05), HintRate: f(0.02)}, StatusOK, 0},
		{"solved rate at warn", Gaps{SolvedRate: f(0.10)}, StatusWarn, 1},
		{"solved rate at alert", Gaps{SolvedRate: f(0.20)}, StatusAlert, 1},
		{"steps below its own warn", Gaps{StepsToSolve: f(1.5)}, StatusOK, 0},
		{"steps at warn", Gaps{StepsToSolve: f(2.0)}, StatusWarn, 1},
		{"steps at alert", Gaps{StepsToSolve: f(4.5)}, StatusAlert, 1},
		{"warn plus alert reports alert", Gaps{SolvedRate: f(0.12), HintRate: f(0.3)}, StatusAlert, 2},
		{"no gaps at all", Gaps{}, StatusOK, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Analyze(metricsWith(2, tt.gaps))
			assert.Equal(t, tt.wantStatus, a.Status)
			assert.Len(t, a.Issues, tt.wantIssues)
			assert.Len(t, a.Recommendations, tt.wantIssues)
		})
	}
}

func TestAnalyzeNotEnoughData(t *testing.T) {
	// Large gaps are irrelevant when only one group is eligible.
	a := Analyze(metricsWith(1, Gaps{SolvedRate: f(0.9)}))

	require.Equal(t, StatusNotEnoughData, a.Status)
	assert.Empty(t, a.Issues)
	assert.NotEmpty(t, a.Recommendations)
}

func TestAnalyzeIssueCarriesGapValue(t *testing.T) {
	a := Analyze(metricsWith(3, Gaps{MasteryDelta: f(0.25)}))

	require.Len(t, a.Issues, 1)
	assert.Equal(t, "mastery_delta", a.Issues[0].Metric)
	assert.Equal(t, 0.25, a.Issues[0].Gap)
	assert.Equal(t, StatusAlert, a.Issues[0].Severity)
}
