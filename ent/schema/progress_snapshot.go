package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ProgressSnapshot is an immutable mastery delta — the unit of the
// append-only audit trail. Current mastery for a (user, topic, skill)
// is always a fold over these rows in order, never a stored counter.
type ProgressSnapshot struct {
	ent.Schema
}

func (ProgressSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("snapshot_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("user_id").
			Immutable().
			NotEmpty(),
		field.String("topic").
			Immutable().
			NotEmpty(),
		field.String("skill").
			Immutable().
			Comment("Dynamically discovered skill name; empty for topic-level deltas"),
		field.Float("delta").
			Immutable().
			Comment("Mastery change, bounded by the store's plausible range"),
		field.String("reason").
			Immutable().
			Default(""),
		field.String("source_session_id").
			Immutable().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ProgressSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic", "skill"),
		index.Fields("created_at"),
		index.Fields("source_session_id"),
	}
}
