package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/interaction"
	"github.com/metamind-labs/metamind/ent/session"
)

// interactionRepo implements InteractionRepo using the ent client.
//
// Turn indices must be strictly increasing and contiguous within a
// session for all time — steps-to-solve arithmetic depends on it. Record
// runs in a single transaction and the per-session mutex serializes
// index assignment in-process; the unique (session_id, turn_index) index
// backs the invariant at the database level, so a racing writer from
// another process fails the transaction instead of corrupting the order.
type interactionRepo struct {
	store *Store
}

func (r *interactionRepo) Record(ctx context.Context, p RecordInteractionParams) (*Interaction, error) {
	unlock := r.store.turnMu.Lock(p.SessionID)
	defer unlock()

	tx, err := r.store.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	row, err := r.record(ctx, tx, p)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit interaction: %w", err)
	}
	return entInteractionToInteraction(row), nil
}

func (r *interactionRepo) record(ctx context.Context, tx *ent.Tx, p RecordInteractionParams) (*ent.Interaction, error) {
	sess, err := tx.Session.Query().
		Where(session.SessionID(p.SessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "session", ID: p.SessionID}
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.EndedAt != nil {
		return nil, &ConstraintError{
			Op:     "record interaction",
			Reason: fmt.Sprintf("session %s is closed", p.SessionID),
		}
	}

	next := 0
	last, err := tx.Interaction.Query().
		Where(interaction.SessionID(p.SessionID)).
		Order(ent.Desc(interaction.FieldTurnIndex)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query last turn: %w", err)
	}
	if err == nil {
		next = last.TurnIndex + 1
	}

	row, err := tx.Interaction.Create().
		SetInteractionID(uuid.NewString()).
		SetSessionID(p.SessionID).
		SetTurnIndex(next).
		SetSpeaker(p.Speaker).
		SetAgentRole(p.AgentRole).
		SetContent(p.Content).
		SetStatus(p.Status).
		SetHintPolicy(p.HintPolicy).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save interaction: %w", err)
	}
	return row, nil
}

func (r *interactionRepo) List(ctx context.Context, sessionID string) ([]*Interaction, error) {
	rows, err := r.store.client.Interaction.Query().
		Where(interaction.SessionID(sessionID)).
		Order(ent.Asc(interaction.FieldTurnIndex)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interactions: %w", err)
	}
	out := make([]*Interaction, len(rows))
	for i, row := range rows {
		out[i] = entInteractionToInteraction(row)
	}
	return out, nil
}

func (r *interactionRepo) Recent(ctx context.Context, sessionID string, n int) ([]*Interaction, error) {
	rows, err := r.store.client.Interaction.Query().
		Where(interaction.SessionID(sessionID)).
		Order(ent.Desc(interaction.FieldTurnIndex)).
		Limit(n).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent interactions: %w", err)
	}

	// Newest-first from the query; reverse to chronological.
	out := make([]*Interaction, len(rows))
	for i, row := range rows {
		out[len(rows)-1-i] = entInteractionToInteraction(row)
	}
	return out, nil
}

func entInteractionToInteraction(row *ent.Interaction) *Interaction {
	return &Interaction{
		InteractionID: row.InteractionID,
		SessionID:     row.SessionID,
		TurnIndex:     row.TurnIndex,
		Speaker:       row.Speaker,
		AgentRole:     row.AgentRole,
		Content:       row.Content,
		Status:        row.Status,
		HintPolicy:    row.HintPolicy,
		CreatedAt:     row.CreatedAt,
	}
}
