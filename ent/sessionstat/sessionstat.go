// Code generated by ent, DO NOT EDIT.

package sessionstat

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the sessionstat type in the database.
	Label = "session_stat"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldTurns holds the string denoting the turns field in the database.
	FieldTurns = "turns"
	// FieldAttempts holds the string denoting the attempts field in the database.
	FieldAttempts = "attempts"
	// FieldSolvedCount holds the string denoting the solved_count field in the database.
	FieldSolvedCount = "solved_count"
	// FieldStepsToSolve holds the string denoting the steps_to_solve field in the database.
	FieldStepsToSolve = "steps_to_solve"
	// FieldHintCount holds the string denoting the hint_count field in the database.
	FieldHintCount = "hint_count"
	// FieldMasteryDelta holds the string denoting the mastery_delta field in the database.
	FieldMasteryDelta = "mastery_delta"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the sessionstat in the database.
	Table = "session_stats"
)

// Columns holds all SQL columns for sessionstat fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldUserID,
	FieldTopic,
	FieldTurns,
	FieldAttempts,
	FieldSolvedCount,
	FieldStepsToSolve,
	FieldHintCount,
	FieldMasteryDelta,
	FieldUpdatedAt,
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
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// DefaultTurns holds the default value on creation for the "turns" field.
	DefaultTurns int
	// DefaultAttempts holds the default value on creation for the "attempts" field.
	DefaultAttempts int
	// DefaultSolvedCount holds the default value on creation for the "solved_count" field.
	DefaultSolvedCount int
	// DefaultHintCount holds the default value on creation for the "hint_count" field.
	DefaultHintCount int
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the SessionStat queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByTurns orders the results by the turns field.
func ByTurns(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTurns, opts...).ToFunc()
}

// ByAttempts orders the results by the attempts field.
func ByAttempts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempts, opts...).ToFunc()
}

// BySolvedCount orders the results by the solved_count field.
func BySolvedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSolvedCount, opts...).ToFunc()
}

// ByStepsToSolve orders the results by the steps_to_solve field.
func ByStepsToSolve(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStepsToSolve, opts...).ToFunc()
}

// ByHintCount orders the results by the hint_count field.
func ByHintCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHintCount, opts...).ToFunc()
}

// ByMasteryDelta orders the results by the mastery_delta field.
func ByMasteryDelta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryDelta, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
