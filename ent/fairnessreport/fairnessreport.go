// Code generated by ent, DO NOT EDIT.

package fairnessreport

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the fairnessreport type in the database.
	Label = "fairness_report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldGroupBy holds the string denoting the group_by field in the database.
	FieldGroupBy = "group_by"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldWindowFrom holds the string denoting the window_from field in the database.
	FieldWindowFrom = "window_from"
	// FieldWindowTo holds the string denoting the window_to field in the database.
	FieldWindowTo = "window_to"
	// FieldMinSampleSize holds the string denoting the min_sample_size field in the database.
	FieldMinSampleSize = "min_sample_size"
	// FieldMetrics holds the string denoting the metrics field in the database.
	FieldMetrics = "metrics"
	// FieldInterpretation holds the string denoting the interpretation field in the database.
	FieldInterpretation = "interpretation"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the fairnessreport in the database.
	Table = "fairness_reports"
)

// Columns holds all SQL columns for fairnessreport fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldGroupBy,
	FieldTopic,
	FieldWindowFrom,
	FieldWindowTo,
	FieldMinSampleSize,
	FieldMetrics,
	FieldInterpretation,
	FieldNotes,
	FieldCreatedAt,
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
	// ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	ReportIDValidator func(string) error
	// GroupByValidator is a validator for the "group_by" field. It is called by the builders before save.
	GroupByValidator func(string) error
	// DefaultTopic holds the default value on creation for the "topic" field.
	DefaultTopic string
	// DefaultMinSampleSize holds the default value on creation for the "min_sample_size" field.
	DefaultMinSampleSize int
	// DefaultNotes holds the default value on creation for the "notes" field.
	DefaultNotes string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the FairnessReport queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// ByGroupBy orders the results by the group_by field.
func ByGroupBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGroupBy, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByWindowFrom orders the results by the window_from field.
func ByWindowFrom(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowFrom, opts...).ToFunc()
}

// ByWindowTo orders the results by the window_to field.
func ByWindowTo(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowTo, opts...).ToFunc()
}

// ByMinSampleSize orders the results by the min_sample_size field.
func ByMinSampleSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMinSampleSize, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
