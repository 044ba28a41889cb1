package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/progresssnapshot"
)

// progressRepo implements ProgressRepo using the ent client.
type progressRepo struct {
	client *ent.Client
	bounds DeltaBounds
}

func (r *progressRepo) Append(ctx context.Context, p AppendSnapshotParams) (*ProgressSnapshot, error) {
	if p.Delta < r.bounds.Min || p.Delta > r.bounds.Max {
		return nil, &ConstraintError{
			Op: "append progress snapshot",
			Reason: fmt.Sprintf("delta %.4f outside plausible range [%.2f, %.2f]",
				p.Delta, r.bounds.Min, r.bounds.Max),
		}
	}

	row, err := r.client.ProgressSnapshot.Create().
		SetSnapshotID(uuid.NewString()).
		SetUserID(p.UserID).
		SetTopic(p.Topic).
		SetSkill(p.Skill).
		SetDelta(p.Delta).
		SetReason(p.Reason).
		SetSourceSessionID(p.SourceSessionID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("append snapshot: %w", err)
	}
	return entSnapshotToSnapshot(row), nil
}

func (r *progressRepo) List(ctx context.Context, f SnapshotFilter) ([]*ProgressSnapshot, error) {
	q := r.client.ProgressSnapshot.Query()
	if f.UserID != "" {
		q = q.Where(progresssnapshot.UserID(f.UserID))
	}
	if f.Topic != "" {
		q = q.Where(progresssnapshot.Topic(f.Topic))
	}
	if f.Skill != "" {
		q = q.Where(progresssnapshot.Skill(f.Skill))
	}
	if !f.From.IsZero() {
		q = q.Where(progresssnapshot.CreatedAtGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(progresssnapshot.CreatedAtLTE(f.To))
	}

	// Snapshot ID breaks timestamp ties so the fold order is total.
	rows, err := q.Order(
		ent.Asc(progresssnapshot.FieldCreatedAt),
		ent.Asc(progresssnapshot.FieldSnapshotID),
	).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list snapshots: %w", err)
	}
	out := make([]*ProgressSnapshot, len(rows))
	for i, row := range rows {
		out[i] = entSnapshotToSnapshot(row)
	}
	return out, nil
}

func entSnapshotToSnapshot(row *ent.ProgressSnapshot) *ProgressSnapshot {
	return &ProgressSnapshot{
		SnapshotID:      row.SnapshotID,
		UserID:          row.UserID,
		Topic:           row.Topic,
		Skill:           row.Skill,
		Delta:           row.Delta,
		Reason:          row.Reason,
		SourceSessionID: row.SourceSessionID,
		CreatedAt:       row.CreatedAt,
	}
}
