package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/session"
	"github.com/metamind-labs/metamind/ent/sessionplan"
)

// planRepo implements PlanRepo using the ent client. Every append
// creates a new version; old versions stay untouched as history.
type planRepo struct {
	store *Store
}

func (r *planRepo) Append(ctx context.Context, sessionID string, plan map[string]any) (*SessionPlan, error) {
	unlock := r.store.planMu.Lock(sessionID)
	defer unlock()

	tx, err := r.store.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	row, err := r.append(ctx, tx, sessionID, plan)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit plan: %w", err)
	}
	return entPlanToPlan(row), nil
}

func (r *planRepo) append(ctx context.Context, tx *ent.Tx, sessionID string, plan map[string]any) (*ent.SessionPlan, error) {
	exists, err := tx.Session.Query().
		Where(session.SessionID(sessionID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}
	if !exists {
		return nil, &NotFoundError{Kind: "session", ID: sessionID}
	}

	version := 1
	last, err := tx.SessionPlan.Query().
		Where(sessionplan.SessionID(sessionID)).
		Order(ent.Desc(sessionplan.FieldVersion)).
		First(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query last plan version: %w", err)
	}
	if err == nil {
		version = last.Version + 1
	}

	row, err := tx.SessionPlan.Create().
		SetPlanID(uuid.NewString()).
		SetSessionID(sessionID).
		SetVersion(version).
		SetPlan(plan).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return row, nil
}

func (r *planRepo) Current(ctx context.Context, sessionID string) (*SessionPlan, error) {
	row, err := r.store.client.SessionPlan.Query().
		Where(sessionplan.SessionID(sessionID)).
		Order(ent.Desc(sessionplan.FieldVersion)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("current plan: %w", err)
	}
	return entPlanToPlan(row), nil
}

func (r *planRepo) History(ctx context.Context, sessionID string) ([]*SessionPlan, error) {
	rows, err := r.store.client.SessionPlan.Query().
		Where(sessionplan.SessionID(sessionID)).
		Order(ent.Asc(sessionplan.FieldVersion)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("plan history: %w", err)
	}
	out := make([]*SessionPlan, len(rows))
	for i, row := range rows {
		out[i] = entPlanToPlan(row)
	}
	return out, nil
}

func entPlanToPlan(row *ent.SessionPlan) *SessionPlan {
	return &SessionPlan{
		PlanID:    row.PlanID,
		SessionID: row.SessionID,
		Version:   row.Version,
		Plan:      row.Plan,
		CreatedAt: row.CreatedAt,
	}
}
