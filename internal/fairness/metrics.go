// Package fairness computes outcome metrics across learner groups,
// flags disparities against fixed thresholds, and manages saved audit
// reports. Every metric is recomputed from the interaction and snapshot
// history, so the same events always produce the same numbers.
package fairness

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/metamind-labs/metamind/internal/mastery"
	"github.com/metamind-labs/metamind/internal/store"
)

// Grouping dimensions for an audit.
const (
	GroupBySelfRatedLevel    = "self_rated_level"
	GroupByPreferredLanguage = "preferred_language"
	GroupByTopic             = "topic"
)

// DefaultMinSampleSize is the minimum number of sessions a group needs
// before its metrics count toward gap computation.
const DefaultMinSampleSize = 5

// Params selects the session population and grouping for an audit.
type Params struct {
	GroupBy       string
	Topic         string // "" means all topics
	From          *time.Time
	To            *time.Time
	MinSampleSize int // 0 means DefaultMinSampleSize
}

// GroupMetrics are the outcome measures for one learner group.
type GroupMetrics struct {
	Group    string `json:"group"`
	Sessions int    `json:"sessions"`

	// SolvedRate is the fraction of sessions that reached a solve.
	SolvedRate float64 `json:"solved_rate"`

	// AvgStepsToSolve averages over solved sessions only; nil when the
	// group has no solved sessions.
	AvgStepsToSolve *float64 `json:"avg_steps_to_solve,omitempty"`

	// HintRate is high-hint turns over all turns in the group.
	HintRate float64 `json:"hint_rate"`

	// MeanMasteryDelta averages the per-session snapshot delta sums;
	// nil when no session in the group produced snapshots.
	MeanMasteryDelta *float64 `json:"mean_mastery_delta,omitempty"`

	// InsufficientData marks groups below the minimum sample size.
	// Such groups are reported but excluded from gaps.
	InsufficientData bool `json:"insufficient_data,omitempty"`
}

// Gaps are max-minus-min spreads across eligible groups. A gap is nil
// when fewer than two eligible groups carry the underlying metric.
type Gaps struct {
	SolvedRate   *float64 `json:"solved_rate,omitempty"`
	StepsToSolve *float64 `json:"steps_to_solve,omitempty"`
	HintRate     *float64 `json:"hint_rate,omitempty"`
	MasteryDelta *float64 `json:"mastery_delta,omitempty"`
}

// Metrics is the full result of one audit computation.
type Metrics struct {
	GroupBy        string         `json:"group_by"`
	Topic          string         `json:"topic"`
	WindowFrom     *time.Time     `json:"window_from,omitempty"`
	WindowTo       *time.Time     `json:"window_to,omitempty"`
	MinSampleSize  int            `json:"min_sample_size"`
	TotalSessions  int            `json:"total_sessions"`
	Groups         []GroupMetrics `json:"groups"`
	EligibleGroups int            `json:"eligible_groups"`
	Gaps           Gaps           `json:"gaps"`
}

// Engine recomputes fairness metrics from the event history.
type Engine struct {
	store *store.Store
}

func NewEngine(s *store.Store) *Engine {
	return &Engine{store: s}
}

// Compute derives per-group metrics and gaps for the selected session
// population. Groups are ordered by name so repeated runs over the same
// history produce identical results.
func (e *Engine) Compute(ctx context.Context, p Params) (*Metrics, error) {
	if err := validateGroupBy(p.GroupBy); err != nil {
		return nil, err
	}
	if p.MinSampleSize <= 0 {
		p.MinSampleSize = DefaultMinSampleSize
	}

	filter := store.SessionFilter{Topic: p.Topic}
	if p.From != nil {
		filter.From = *p.From
	}
	if p.To != nil {
		filter.To = *p.To
	}
	sessions, err := e.store.Sessions().List(ctx, filter)
	if err != nil {
		return nil, err
	}

	users, err := e.userIndex(ctx)
	if err != nil {
		return nil, err
	}
	deltas, err := e.sessionDeltas(ctx, p.Topic)
	if err != nil {
		return nil, err
	}

	acc := map[string]*groupAccumulator{}
	for _, sess := range sessions {
		key, ok := groupKey(p.GroupBy, sess, users[sess.UserID])
		if !ok {
			continue
		}
		g := acc[key]
		if g == nil {
			g = &groupAccumulator{}
			acc[key] = g
		}

		turns, err := e.store.Interactions().List(ctx, sess.SessionID)
		if err != nil {
			return nil, err
		}
		stats := mastery.StatsFromInteractions(sess, turns)

		g.sessions++
		g.turns += stats.Turns
		g.hints += stats.HintCount
		if stats.SolvedCount > 0 {
			g.solved++
			if stats.StepsToSolve != nil {
				g.stepsSum += *stats.StepsToSolve
				g.stepsN++
			}
		}
		if d, ok := deltas[sess.SessionID]; ok {
			g.deltaSum += d
			g.deltaN++
		}
	}

	m := &Metrics{
		GroupBy:       p.GroupBy,
		Topic:         p.Topic,
		WindowFrom:    p.From,
		WindowTo:      p.To,
		MinSampleSize: p.MinSampleSize,
		TotalSessions: len(sessions),
	}

	names := make([]string, 0, len(acc))
	for name := range acc {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		g := acc[name]
		gm := GroupMetrics{
			Group:            name,
			Sessions:         g.sessions,
			SolvedRate:       ratio(g.solved, g.sessions),
			HintRate:         ratio(g.hints, g.turns),
			InsufficientData: g.sessions < p.MinSampleSize,
		}
		if g.stepsN > 0 {
			avg := g.stepsSum / float64(g.stepsN)
			gm.AvgStepsToSolve = &avg
		}
		if g.deltaN > 0 {
			mean := g.deltaSum / float64(g.deltaN)
			gm.MeanMasteryDelta = &mean
		}
		m.Groups = append(m.Groups, gm)
		if !gm.InsufficientData {
			m.EligibleGroups++
		}
	}

	m.Gaps = computeGaps(m.Groups)
	return m, nil
}

type groupAccumulator struct {
	sessions int
	solved   int
	turns    int
	hints    int
	stepsSum float64
	stepsN   int
	deltaSum float64
	deltaN   int
}

// sessionDeltas sums snapshot deltas per source session.
func (e *Engine) sessionDeltas(ctx context.Context, topic string) (map[string]float64, error) {
	snaps, err := e.store.Progress().List(ctx, store.SnapshotFilter{Topic: topic})
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64)
	for _, s := range snaps {
		if s.SourceSessionID == "" {
			continue
		}
		out[s.SourceSessionID] += s.Delta
	}
	return out, nil
}

func (e *Engine) userIndex(ctx context.Context) (map[string]*store.User, error) {
	users, err := e.store.Users().List(ctx)
	if err != nil {
		return nil, err
	}
	out := make(map[string]*store.User, len(users))
	for _, u := range users {
		out[u.UserID] = u
	}
	return out, nil
}

func groupKey(groupBy string, sess *store.Session, u *store.User) (string, bool) {
	switch groupBy {
	case GroupByTopic:
		return sess.Topic, true
	case GroupBySelfRatedLevel:
		if u == nil {
			return "", false
		}
		return u.SelfRatedLevel, true
	case GroupByPreferredLanguage:
		if u == nil {
			return "", false
		}
		return u.PreferredLanguage, true
	}
	return "", false
}

func computeGaps(groups []GroupMetrics) Gaps {
	var gaps Gaps

	var solved, hints, steps, deltas []float64
	for _, g := range groups {
		if g.InsufficientData {
			continue
		}
		solved = append(solved, g.SolvedRate)
		hints = append(hints, g.HintRate)
		if g.AvgStepsToSolve != nil {
			steps = append(steps, *g.AvgStepsToSolve)
		}
		if g.MeanMasteryDelta != nil {
			deltas = append(deltas, *g.MeanMasteryDelta)
		}
	}

	gaps.SolvedRate = spread(solved)
	gaps.HintRate = spread(hints)
	gaps.StepsToSolve = spread(steps)
	gaps.MasteryDelta = spread(deltas)
	return gaps
}

// spread returns max-min, or nil when fewer than two values exist.
func spread(values []float64) *float64 {
	if len(values) < 2 {
		return nil
	}
	min, max := values[0], values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	gap := max - min
	return &gap
}

func ratio(n, d int) float64 {
	if d == 0 {
		return 0
	}
	return float64(n) / float64(d)
}

func validateGroupBy(groupBy string) error {
	switch groupBy {
	case GroupBySelfRatedLevel, GroupByPreferredLanguage, GroupByTopic:
		return nil
	}
	return &store.ConstraintError{
		Op: "fairness.compute",
		Reason: fmt.Sprintf("unknown group_by %q (want %s, %s or %s)",
			groupBy, GroupBySelfRatedLevel, GroupByPreferredLanguage, GroupByTopic),
	}
}
