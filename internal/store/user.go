package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/metamind-labs/metamind/ent"
	"github.com/metamind-labs/metamind/ent/user"
)

// userRepo implements UserRepo using the ent client.
type userRepo struct {
	client *ent.Client
}

func (r *userRepo) Create(ctx context.Context, u *User) (*User, error) {
	if u.UserID == "" {
		u.UserID = uuid.NewString()
	}

	builder := r.client.User.Create().
		SetUserID(u.UserID).
		SetName(u.Name)

	if u.SelfRatedLevel != "" {
		builder = builder.SetSelfRatedLevel(u.SelfRatedLevel)
	}
	if u.PreferredLanguage != "" {
		builder = builder.SetPreferredLanguage(u.PreferredLanguage)
	}
	if !u.CreatedAt.IsZero() {
		builder = builder.SetCreatedAt(u.CreatedAt)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, &ConstraintError{Op: "create user", Reason: fmt.Sprintf("user %s already exists", u.UserID)}
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return entUserToUser(row), nil
}

func (r *userRepo) Get(ctx context.Context, userID string) (*User, error) {
	row, err := r.client.User.Query().
		Where(user.UserID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, &NotFoundError{Kind: "user", ID: userID}
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return entUserToUser(row), nil
}

func (r *userRepo) List(ctx context.Context) ([]*User, error) {
	rows, err := r.client.User.Query().
		Order(ent.Desc(user.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	out := make([]*User, len(rows))
	for i, row := range rows {
		out[i] = entUserToUser(row)
	}
	return out, nil
}

func (r *userRepo) UpdatePreferences(ctx context.Context, userID, level, language string) error {
	n, err := r.client.User.Update().
		Where(user.UserID(userID)).
		SetSelfRatedLevel(level).
		SetPreferredLanguage(language).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update preferences: %w", err)
	}
	if n == 0 {
		return &NotFoundError{Kind: "user", ID: userID}
	}
	return nil
}

func entUserToUser(row *ent.User) *User {
	return &User{
		UserID:            row.UserID,
		Name:              row.Name,
		SelfRatedLevel:    row.SelfRatedLevel,
		PreferredLanguage: row.PreferredLanguage,
		CreatedAt:         row.CreatedAt,
	}
}
