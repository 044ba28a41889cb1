package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interaction is one user/assistant turn within a session.
// Rows are append-only: every field is immutable and the
// (session_id, turn_index) pair is unique, so a turn can never be
// rewritten or reordered after it becomes visible.
type Interaction struct {
	ent.Schema
}

func (Interaction) Fields() []ent.Field {
	return []ent.Field{
		field.String("interaction_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("session_id").
			Immutable().
			NotEmpty(),
		field.Int("turn_index").
			Immutable().
			NonNegative().
			Comment("Monotonic within the session, assigned by the store"),
		field.String("speaker").
			Immutable().
			NotEmpty().
			Comment("student or tutor"),
		field.String("agent_role").
			Immutable().
			NotEmpty().
			Comment("socratic_tutor, planner or system"),
		field.Text("content").
			Immutable(),
		field.String("status").
			Immutable().
			Default("").
			Comment("ONGOING, SOLVED or GIVE_UP on tutor turns; empty for student turns"),
		field.String("hint_policy").
			Immutable().
			Default("").
			Comment("low, medium or high; empty when no hint policy applied"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Interaction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "turn_index").Unique(),
		index.Fields("status"),
	}
}
