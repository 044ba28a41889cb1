package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// StudentSkill is the materialized mastery record for a
// (user, topic, skill) triple. Skills have no fixed catalog — a row is
// created lazily the first time a snapshot names the skill. The mastery
// value here is a cache of the snapshot fold, never authoritative.
type StudentSkill struct {
	ent.Schema
}

func (StudentSkill) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").NotEmpty(),
		field.String("topic").NotEmpty(),
		field.String("skill").NotEmpty(),
		field.Int("exposures").
			Default(0).
			Comment("Times the skill appeared in a snapshot"),
		field.Float("mastery").
			Default(0).
			Comment("Fold of progress snapshots, clamped to [0,1]"),
		field.Bool("needs_reinforcement").
			Default(true),
		field.String("contexts_seen").
			Default("").
			Comment("Comma-joined context tags the skill was exercised in"),
		field.Time("last_seen").
			Default(time.Now),
	}
}

func (StudentSkill) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "topic", "skill").Unique(),
		index.Fields("user_id", "topic"),
	}
}
