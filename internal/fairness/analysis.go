package fairness

import "fmt"

// Audit status levels, ordered by severity.
const (
	StatusOK            = "OK"
	StatusWarn          = "WARN"
	StatusAlert         = "ALERT"
	StatusNotEnoughData = "NOT_ENOUGH_DATA"
)

// Disparity thresholds for rate-valued gaps (solved rate, hint rate,
// mastery delta).
const (
	rateWarnThreshold  = 0.10
	rateAlertThreshold = 0.20
)

// Disparity thresholds for the steps-to-solve gap, measured in turns.
const (
	stepsWarnThreshold  = 2.0
	stepsAlertThreshold = 4.0
)

// Issue is one metric whose gap crossed a threshold.
type Issue struct {
	Metric   string  `json:"metric"`
	Gap      float64 `json:"gap"`
	Severity string  `json:"severity"` // WARN or ALERT
}

// Analysis is the threshold verdict over a set of computed metrics.
type Analysis struct {
	Status          string   `json:"status"`
	Issues          []Issue  `json:"issues,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
}

// Analyze applies the fixed disparity thresholds to computed metrics.
// Pure function of its input; no randomness, no clock.
func Analyze(m *Metrics) *Analysis {
	if m.EligibleGroups < 2 {
		return &Analysis{
			Status: StatusNotEnoughData,
			Recommendations: []string{
				fmt.Sprintf("need at least 2 groups with %d+ sessions each before gaps are meaningful", m.MinSampleSize),
			},
		}
	}

	a := &Analysis{Status: StatusOK}

	a.check("solved_rate", m.Gaps.SolvedRate, rateWarnThreshold, rateAlertThreshold)
	a.check("hint_rate", m.Gaps.HintRate, rateWarnThreshold, rateAlertThreshold)
	a.check("mastery_delta", m.Gaps.MasteryDelta, rateWarnThreshold, rateAlertThreshold)
	a.check("steps_to_solve", m.Gaps.StepsToSolve, stepsWarnThreshold, stepsAlertThreshold)

	for _, issue := range a.Issues {
		a.Recommendations = append(a.Recommendations, recommendFor(issue, m.GroupBy))
	}
	return a
}

func (a *Analysis) check(metric string, gap *float64, warn, alert float64) {
	if gap == nil {
		return
	}
	switch {
	case *gap >= alert:
		a.Issues = append(a.Issues, Issue{Metric: metric, Gap: *gap, Severity: StatusAlert})
		a.Status = StatusAlert
	case *gap >= warn:
		a.Issues = append(a.Issues, Issue{Metric: metric, Gap: *gap, Severity: StatusWarn})
		if a.Status == StatusOK {
			a.Status = StatusWarn
		}
	}
}

func recommendFor(issue Issue, groupBy string) string {
	switch issue.Metric {
	case "solved_rate":
		return fmt.Sprintf("review problem difficulty calibration across %s groups (solved rate gap %.2f)", groupBy, issue.Gap)
	case "hint_rate":
		return fmt.Sprintf("check whether hint policy triggers unevenly across %s groups (hint rate gap %.2f)", groupBy, issue.Gap)
	case "mastery_delta":
		return fmt.Sprintf("audit mastery crediting for %s groups (mastery delta gap %.2f)", groupBy, issue.Gap)
	case "steps_to_solve":
		return fmt.Sprintf("compare tutoring pacing across %s groups (steps-to-solve gap %.1f turns)", groupBy, issue.Gap)
	}
	return fmt.Sprintf("investigate %s gap of %.2f across %s groups", issue.Metric, issue.Gap, groupBy)
}
