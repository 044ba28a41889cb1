package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FairnessReport is a saved audit result. Reports are immutable once
// written; re-analysis always creates a new row with fresh metrics and
// the original grouping parameters.
type FairnessReport struct {
	ent.Schema
}

func (FairnessReport) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_id").
			Unique().
			Immutable().
			NotEmpty(),
		field.String("group_by").
			Immutable().
			NotEmpty().
			Comment("self_rated_level, preferred_language or topic"),
		field.String("topic").
			Immutable().
			Default("ALL").
			Comment("Topic filter the report was computed over; ALL when unfiltered"),
		field.Time("window_from").
			Optional().
			Nillable().
			Immutable(),
		field.Time("window_to").
			Optional().
			Nillable().
			Immutable(),
		field.Int("min_sample_size").
			Immutable().
			Default(0).
			Comment("Group exclusion threshold used when computing"),
		field.JSON("metrics", map[string]any{}).
			Immutable().
			Comment("Deterministic group metrics and gaps"),
		field.JSON("interpretation", map[string]any{}).
			Optional().
			Immutable().
			Comment("Optional LLM-authored reading; absent when the collaborator failed"),
		field.String("notes").
			Immutable().
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (FairnessReport) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
		index.Fields("group_by"),
	}
}
