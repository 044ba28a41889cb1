package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User is a learner identity with static preferences.
// Users are never deleted; preference edits supersede the old values
// while identity and created_at stay immutable.
type User struct {
	ent.Schema
}

func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("UUID, stable external identifier"),
		field.String("name").
			Default(""),
		field.String("self_rated_level").
			Default("intermediate").
			Comment("beginner, intermediate or advanced"),
		field.String("preferred_language").
			Default("en"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("self_rated_level"),
		index.Fields("preferred_language"),
	}
}
