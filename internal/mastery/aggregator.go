// Package mastery maintains the student model: per-skill mastery folded
// from progress snapshots, session statistics, and the topic difficulty
// dial that steers problem selection.
package mastery

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/metamind-labs/metamind/internal/store"
)

// SkillUpdate reports one skill touched while digesting a session.
type SkillUpdate struct {
	Skill   string
	Delta   float64
	Mastery float64
}

// SessionDigest is the result of folding a finished session into the
// student model.
type SessionDigest struct {
	Stats            *store.SessionStats
	SkillUpdates     []SkillUpdate
	TargetDifficulty string

	// ExtractionSkipped is set when the skill extractor was unavailable
	// and the digest carries stats only.
	ExtractionSkipped bool
}

// Aggregator derives mastery state from the interaction log. All of its
// outputs can be recomputed from the event history; the student_skills
// and session_stats tables are caches.
type Aggregator struct {
	store     *store.Store
	extractor SkillExtractor
}

func NewAggregator(s *store.Store, extractor SkillExtractor) *Aggregator {
	return &Aggregator{store: s, extractor: extractor}
}

// SessionStats loads a session's interactions and derives its counters.
// The computation is live; it does not read the session_stats cache.
func (a *Aggregator) SessionStats(ctx context.Context, sessionID string) (*store.SessionStats, error) {
	sess, err := a.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := a.store.Interactions().List(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return StatsFromInteractions(sess, turns), nil
}

// Mastery folds every snapshot for (user, topic, skill) into the current
// mastery value. Zero snapshots fold to 0.
func (a *Aggregator) Mastery(ctx context.Context, userID, topic, skill string) (float64, error) {
	snaps, err := a.store.Progress().List(ctx, store.SnapshotFilter{
		UserID: userID,
		Topic:  topic,
		Skill:  skill,
	})
	if err != nil {
		return 0, err
	}
	return Fold(snaps), nil
}

// TopicMastery folds snapshots per skill and returns skill -> mastery
// for every skill the user has history on within the topic.
func (a *Aggregator) TopicMastery(ctx context.Context, userID, topic string) (map[string]float64, error) {
	snaps, err := a.store.Progress().List(ctx, store.SnapshotFilter{
		UserID: userID,
		Topic:  topic,
	})
	if err != nil {
		return nil, err
	}

	bySkill := make(map[string][]*store.ProgressSnapshot)
	for _, s := range snaps {
		bySkill[s.Skill] = append(bySkill[s.Skill], s)
	}

	out := make(map[string]float64, len(bySkill))
	for skill, group := range bySkill {
		out[skill] = Fold(group)
	}
	return out, nil
}

// DigestSession folds a finished session into the student model:
// computes and caches session stats, asks the extractor which skills
// the session exercised, appends a progress snapshot per skill, and
// re-materializes the student_skills rows and the topic difficulty.
//
// When the extractor is unavailable the digest degrades to stats only;
// the session remains replayable once the extractor recovers.
func (a *Aggregator) DigestSession(ctx context.Context, sessionID string) (*SessionDigest, error) {
	sess, err := a.store.Sessions().Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns, err := a.store.Interactions().List(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	stats := StatsFromInteractions(sess, turns)
	digest := &SessionDigest{Stats: stats}

	solved := stats.SolvedCount > 0
	usedHint := stats.HintCount > 0

	extract, err := a.extractSkills(ctx, sess.Topic, turns)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: skill extraction unavailable for session %s: %v\n", sessionID, err)
		digest.ExtractionSkipped = true
	} else {
		updates, err := a.applySkills(ctx, sess, extract, solved)
		if err != nil {
			return nil, err
		}
		digest.SkillUpdates = updates
	}

	if solved {
		delta := a.totalDelta(digest.SkillUpdates)
		stats.MasteryDelta = &delta
	}
	if err := a.store.Stats().Upsert(ctx, stats); err != nil {
		return nil, err
	}

	target, err := a.adjustTopicDifficulty(ctx, sess.UserID, sess.Topic, solved, usedHint)
	if err != nil {
		return nil, err
	}
	digest.TargetDifficulty = target

	return digest, nil
}

func (a *Aggregator) extractSkills(ctx context.Context, topic string, turns []*store.Interaction) (*SkillExtract, error) {
	if a.extractor == nil {
		return nil, fmt.Errorf("no skill extractor configured")
	}
	return a.extractor.ExtractSkills(ctx, topic, turns)
}

// applySkills appends a snapshot per extracted skill and re-materializes
// the student_skills cache from the fold.
func (a *Aggregator) applySkills(ctx context.Context, sess *store.Session, extract *SkillExtract, solved bool) ([]SkillUpdate, error) {
	now := time.Now()
	reason := "practiced"
	if solved {
		reason = "solved"
	}

	updates := make([]SkillUpdate, 0, len(extract.Skills))
	for _, skill := range extract.Skills {
		current, err := a.Mastery(ctx, sess.UserID, sess.Topic, skill)
		if err != nil {
			return nil, err
		}

		delta := 0.0
		if solved {
			delta = ComputeDelta(current)
			_, err = a.store.Progress().Append(ctx, store.AppendSnapshotParams{
				UserID:          sess.UserID,
				Topic:           sess.Topic,
				Skill:           skill,
				Delta:           delta,
				Reason:          reason,
				SourceSessionID: sess.SessionID,
			})
			if err != nil {
				return nil, err
			}
		}

		mastery, err := a.Mastery(ctx, sess.UserID, sess.Topic, skill)
		if err != nil {
			return nil, err
		}
		if err := a.store.StudentModel().UpsertSkill(ctx, sess.UserID, sess.Topic, skill, mastery, reason, now); err != nil {
			return nil, err
		}

		updates = append(updates, SkillUpdate{Skill: skill, Delta: delta, Mastery: mastery})
	}
	return updates, nil
}

// adjustTopicDifficulty nudges the stored difficulty dial after each
// session: down when hints were needed, slightly up on a clean solve.
func (a *Aggregator) adjustTopicDifficulty(ctx context.Context, userID, topic string, solved, usedHint bool) (string, error) {
	d, err := a.store.StudentModel().GetTopicDifficulty(ctx, userID, topic)
	if err != nil {
		return "", err
	}

	switch {
	case usedHint:
		d -= 0.10
	case solved:
		d += 0.05
	}
	if err := a.store.StudentModel().SetTopicDifficulty(ctx, userID, topic, d); err != nil {
		return "", err
	}

	avg, err := a.averageTopicMastery(ctx, userID, topic)
	if err != nil {
		return "", err
	}
	return TargetFromMastery(avg), nil
}

func (a *Aggregator) averageTopicMastery(ctx context.Context, userID, topic string) (float64, error) {
	bySkill, err := a.TopicMastery(ctx, userID, topic)
	if err != nil {
		return 0, err
	}
	if len(bySkill) == 0 {
		return 0, nil
	}
	var sum float64
	for _, m := range bySkill {
		sum += m
	}
	return sum / float64(len(bySkill)), nil
}

func (a *Aggregator) totalDelta(updates []SkillUpdate) float64 {
	var sum float64
	for _, u := range updates {
		sum += u.Delta
	}
	return sum
}
