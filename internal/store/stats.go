package store

import (
	"context"
	"fmt"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/sessionstat"
)

// statsRepo implements StatsRepo using the ent client.
type statsRepo struct {
	client *ent.Client
}

func (r *statsRepo) Upsert(ctx context.Context, s *SessionStats) error {
	row, err := r.client.SessionStat.Query().
		Where(sessionstat.SessionID(s.SessionID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query session stats: %w", err)
	}

	if ent.IsNotFound(err) {
		_, err = r.client.SessionStat.Create().
			SetSessionID(s.SessionID).
			SetUserID(s.UserID).
			SetTopic(s.Topic).
			SetTurns(s.Turns).
			SetAttempts(s.Attempts).
			SetSolvedCount(s.SolvedCount).
			SetNillableStepsToSolve(s.StepsToSolve).
			SetHintCount(s.HintCount).
			SetNillableMasteryDelta(s.MasteryDelta).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create session stats: %w", err)
		}
		return nil
	}

	upd := row.Update().
		SetTurns(s.Turns).
		SetAttempts(s.Attempts).
		SetSolvedCount(s.SolvedCount).
		SetHintCount(s.HintCount)
	if s.StepsToSolve != nil {
		upd = upd.SetStepsToSolve(*s.StepsToSolve)
	}
	if s.MasteryDelta != nil {
		upd = upd.SetMasteryDelta(*s.MasteryDelta)
	}
	if _, err := upd.Save(ctx); err != nil {
		return fmt.Errorf("update session stats: %w", err)
	}
	return nil
}

func (r *statsRepo) Get(ctx context.Context, sessionID string) (*SessionStats, error) {
	row, err := r.client.SessionStat.Query().
		Where(sessionstat.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "session stats", ID: sessionID}
		}
		return nil, fmt.Errorf("get session stats: %w", err)
	}
	return &SessionStats{
		SessionID:    row.SessionID,
		UserID:       row.UserID,
		Topic:        row.Topic,
		Turns:        row.Turns,
		Attempts:     row.Attempts,
		SolvedCount:  row.SolvedCount,
		StepsToSolve: row.StepsToSolve,
		HintCount:    row.HintCount,
		MasteryDelta: row.MasteryDelta,
		UpdatedAt:    row.UpdatedAt,
	}, nil
}
