package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one continuous tutoring engagement for a user on a topic.
// Created open, closed once by setting ended_at, never deleted.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("user_id").
			Immutable().
			NotEmpty(),
		field.String("topic").
			NotEmpty(),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set exactly once when the session closes"),
		field.String("difficulty_mode").
			Default("auto").
			Comment("auto or manual"),
		field.String("manual_target_difficulty").
			Default("medium").
			Comment("easy, medium or hard; used when difficulty_mode is manual"),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("topic"),
		index.Fields("started_at"),
	}
}
