package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionPlan is one version of a session's learning plan.
// Plans are never updated in place: each refresh appends a new version
// and the current plan is the highest version for the session.
type SessionPlan struct {
	ent.Schema
}

func (SessionPlan) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("session_id").
			Immutable().
			NotEmpty(),
		field.Int("version").
			Immutable().
			Positive().
			Comment("Monotonic per session, assigned by the store"),
		field.JSON("plan", map[string]any{}).
			Immutable().
			Comment("Goal, target skills, difficulty, hint policy"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (SessionPlan) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "version").Unique(),
	}
}
