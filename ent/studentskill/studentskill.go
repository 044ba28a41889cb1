// Code generated by ent, DO NOT EDIT.

package studentskill

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the studentskill type in the database.
	Label = "student_skill"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldExposures holds the string denoting the exposures field in the database.
	FieldExposures = "exposures"
	// FieldMastery holds the string denoting the mastery field in the database.
	FieldMastery = "mastery"
	// FieldNeedsReinforcement holds the string denoting the needs_reinforcement field in the database.
	FieldNeedsReinforcement = "needs_reinforcement"
	// FieldContextsSeen holds the string denoting the contexts_seen field in the database.
	FieldContextsSeen = "contexts_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the studentskill in the database.
	Table = "student_skills"
)

// Columns holds all SQL columns for studentskill fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldTopic,
	FieldSkill,
	FieldExposures,
	FieldMastery,
	FieldNeedsReinforcement,
	FieldContextsSeen,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DefaultExposures holds the default value on creation for the "exposures" field.
	DefaultExposures int
	// DefaultMastery holds the default value on creation for the "mastery" field.
	DefaultMastery float64
	// DefaultNeedsReinforcement holds the default value on creation for the "needs_reinforcement" field.
	DefaultNeedsReinforcement bool
	// DefaultContextsSeen holds the default value on creation for the "contexts_seen" field.
	DefaultContextsSeen string
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the StudentSkill queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByExposures orders the results by the exposures field.
func ByExposures(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExposures, opts...).ToFunc()
}

// ByMastery orders the results by the mastery field.
func ByMastery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMastery, opts...).ToFunc()
}

// ByNeedsReinforcement orders the results by the needs_reinforcement field.
func ByNeedsReinforcement(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNeedsReinforcement, opts...).ToFunc()
}

// ByContextsSeen orders the results by the contexts_seen field.
func ByContextsSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContextsSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
