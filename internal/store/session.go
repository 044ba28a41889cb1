package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/session"
	"github.com/metamind-labs/metamind/ent/user"
)

// sessionRepo implements SessionRepo using the ent client.
type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Start(ctx context.Context, userID, topic string) (*Session, error) {
	exists, err := r.client.User.Query().
		Where(user.UserID(userID)).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}
	if !exists {
		return nil, &NotFoundError{Kind: "user", ID: userID}
	}

	row, err := r.client.Session.Create().
		SetSessionID(uuid.NewString()).
		SetUserID(userID).
		SetTopic(topic).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *sessionRepo) Get(ctx context.Context, sessionID string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "session", ID: sessionID}
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return entSessionToSession(row), nil
}

func (r *sessionRepo) End(ctx context.Context, sessionID string, at time.Time) error {
	row, err := r.client.Session.Query().
		Where(session.SessionID(sessionID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &NotFoundError{Kind: "session", ID: sessionID}
		}
		return fmt.Errorf("get session: %w", err)
	}
	if row.EndedAt != nil {
		return &ConstraintError{Op: "end session", Reason: fmt.Sprintf("session %s already closed", sessionID)}
	}

	_, err = row.Update().SetEndedAt(at).Save(ctx)
	if err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	return nil
}

func (r *sessionRepo) UpdateSettings(ctx context.Context, sessionID, difficultyMode, manualTarget string) error {
	n, err := r.client.Session.Update().
		Where(session.SessionID(sessionID)).
		SetDifficultyMode(difficultyMode).
		SetManualTargetDifficulty(manualTarget).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session settings: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "session", ID: sessionID}
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context, f SessionFilter) ([]*Session, error) {
	q := r.client.Session.Query()
	if f.UserID != "" {
		q = q.Where(session.UserID(f.UserID))
	}
	if f.Topic != "" {
		q = q.Where(session.Topic(f.Topic))
	}
	if !f.From.IsZero() {
		q = q.Where(session.StartedAtGTE(f.From))
	}
	if !f.To.IsZero() {
		q = q.Where(session.StartedAtLTE(f.To))
	}

	rows, err := q.Order(ent.Asc(session.FieldStartedAt), ent.Asc(session.FieldSessionID)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*Session, len(rows))
	for i, row := range rows {
		out[i] = entSessionToSession(row)
	}
	return out, nil
}

func (r *sessionRepo) Latest(ctx context.Context, userID string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(session.UserID(userID)).
		Order(ent.Desc(session.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest session: %w", err)
	}
	return entSessionToSession(row), nil
}

func entSessionToSession(row *ent.Session) *Session {
	return &Session{
		SessionID:              row.SessionID,
		UserID:                 row.UserID,
		Topic:                  row.Topic,
		StartedAt:              row.StartedAt,
		EndedAt:                row.EndedAt,
		DifficultyMode:         row.DifficultyMode,
		ManualTargetDifficulty: row.ManualTargetDifficulty,
	}
}
