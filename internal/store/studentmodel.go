package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/studentskill"
	"github.com/metamind-labs/metamind/ent/studenttopic"
)

// studentModelRepo implements StudentModelRepo using the ent client.
// StudentSkill and StudentTopic rows are created lazily on first write;
// there is no fixed skill catalog.
type studentModelRepo struct {
	client *ent.Client
}

func (r *studentModelRepo) UpsertSkill(ctx context.Context, userID, topic, skill string, mastery float64, contextTag string, seenAt time.Time) error {
	row, err := r.client.StudentSkill.Query().
		Where(
			studentskill.UserID(userID),
			studentskill.Topic(topic),
			studentskill.Skill(skill),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query student skill: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.StudentSkill.Create().
			SetUserID(userID).
			SetTopic(topic).
			SetSkill(skill).
			SetExposures(1).
			SetMastery(mastery).
			SetNeedsReinforcement(needsReinforcement(mastery, 1)).
			SetContextsSeen(mergeContexts("", contextTag)).
			SetLastSeen(seenAt).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student skill: %w", err)
		}
		return nil
	}

	exposures := row.Exposures + 1
	_, err = row.Update().
		SetExposures(exposures).
		SetMastery(mastery).
		SetNeedsReinforcement(needsReinforcement(mastery, exposures)).
		SetContextsSeen(mergeContexts(row.ContextsSeen, contextTag)).
		SetLastSeen(seenAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update student skill: %w", err)
	}
	return nil
}

func (r *studentModelRepo) ListSkills(ctx context.Context, userID, topic string) ([]*StudentSkill, error) {
	rows, err := r.client.StudentSkill.Query().
		Where(
			studentskill.UserID(userID),
			studentskill.Topic(topic),
		).
		Order(
			ent.Desc(studentskill.FieldNeedsReinforcement),
			ent.Asc(studentskill.FieldMastery),
			ent.Asc(studentskill.FieldExposures),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list student skills: %w", err)
	}
	out := make([]*StudentSkill, len(rows))
	for i, row := range rows {
		out[i] = &StudentSkill{
			UserID:             row.UserID,
			Topic:              row.Topic,
			Skill:              row.Skill,
			Exposures:          row.Exposures,
			Mastery:            row.Mastery,
			NeedsReinforcement: row.NeedsReinforcement,
			ContextsSeen:       row.ContextsSeen,
			LastSeen:           row.LastSeen,
		}
	}
	return out, nil
}

func (r *studentModelRepo) GetTopicDifficulty(ctx context.Context, userID, topic string) (float64, error) {
	row, err := r.client.StudentTopic.Query().
		Where(
			studenttopic.UserID(userID),
			studenttopic.Topic(topic),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0.5, nil
		}
		return 0, fmt.Errorf("get topic difficulty: %w", err)
	}
	return row.Difficulty, nil
}

func (r *studentModelRepo) SetTopicDifficulty(ctx context.Context, userID, topic string, difficulty float64) error {
	difficulty = clamp(difficulty, 0.1, 0.95)

	row, err := r.client.StudentTopic.Query().
		Where(
			studenttopic.UserID(userID),
			studenttopic.Topic(topic),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query student topic: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.StudentTopic.Create().
			SetUserID(userID).
			SetTopic(topic).
			SetDifficulty(difficulty).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create student topic: %w", err)
		}
		return nil
	}

	_, err = row.Update().
		SetDifficulty(difficulty).
		SetLastSeen(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update student topic: %w", err)
	}
	return nil
}

// needsReinforcement applies the v1 student-model rule: a skill needs
// reinforcement until mastery reaches 0.6 over at least two exposures.
func needsReinforcement(mastery float64, exposures int) bool {
	return mastery < 0.6 || exposures < 2
}

// mergeContexts appends tag to the comma-joined context list if new.
func mergeContexts(seen, tag string) string {
	if tag == "" {
		return seen
	}
	var existing []string
	for _, c := range strings.Split(seen, ",") {
		if c = strings.TrimSpace(c); c != "" {
			existing = append(existing, c)
			if c == tag {
				return seen
			}
		}
	}
	return strings.Join(append(existing, tag), ",")
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
