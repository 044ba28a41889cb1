package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentTopic holds per-(user, topic) difficulty preference, separate
// from skill mastery. Created lazily on first write.
type StudentTopic struct {
	ent.Schema
}

func (StudentTopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.Float("difficulty").
			Default(0.5).
			Comment("Working difficulty, clamped to [0.1, 0.95]"),
		field.Time("last_seen").
			Default(time.Now),
	}
}

func (StudentTopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic").Unique(),
	}
}
