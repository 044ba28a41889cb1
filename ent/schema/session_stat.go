package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionStat is the materialized per-session counter row kept for fast
// dashboard reads. It is a cache: the fairness engine and any audit path
// recompute the same numbers from interactions and never trust this row.
type SessionStat struct {
	ent.Schema
}

func (SessionStat) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			NotEmpty(),
		field.String("user_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Int("turns").
			Default(0).
			Comment("Total interactions recorded"),
		field.Int("attempts").
			Default(0).
			Comment("Student turns"),
		field.Int("solved_count").
			Default(0),
		field.Float("steps_to_solve").
			Optional().
			Nillable().
			Comment("Turns from first student prompt to first SOLVED; unset when unsolved"),
		field.Int("hint_count").
			Default(0),
		field.Float("mastery_delta").
			Optional().
			Nillable().
			Comment("Sum of snapshot deltas attributed to the session"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SessionStat) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("topic"),
	}
}
