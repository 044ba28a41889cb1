// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
)

// FairnessReport is the model entity for the FairnessReport schema.
type FairnessReport struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// ReportID holds the value of the "report_id" field.
	ReportID string `json:"report_id,omitempty"`
	// self_rated_level, preferred_language or topic
	GroupBy string `json:"group_by,omitempty"`
	// Topic filter the report was computed over; ALL when unfiltered
	Topic string `json:"topic,omitempty"`
	// WindowFrom holds the value of the "window_from" field.
	WindowFrom *time.Time `json:"window_from,omitempty"`
	// WindowTo holds the value of the "window_to" field.
	WindowTo *time.Time `json:"window_to,omitempty"`
	// Group exclusion threshold used when computing
	MinSampleSize int `json:"min_sample_size,omitempty"`
	// Deterministic group metrics and gaps
	Metrics map[string]interface{} `json:"metrics,omitempty"`
	// Optional LLM-authored reading; absent when the collaborator failed
	Interpretation map[string]interface{} `json:"interpretation,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes string `json:"notes,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*FairnessReport) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case fairnessreport.FieldMetrics, fairnessreport.FieldInterpretation:
			values[i] = new([]byte)
		case fairnessreport.FieldID, fairnessreport.FieldMinSampleSize:
			values[i] = new(sql.NullInt64)
		case fairnessreport.FieldReportID, fairnessreport.FieldGroupBy, fairnessreport.FieldTopic, fairnessreport.FieldNotes:
			values[i] = new(sql.NullString)
		case fairnessreport.FieldWindowFrom, fairnessreport.FieldWindowTo, fairnessreport.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the FairnessReport fields.
func (_m *FairnessReport) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case fairnessreport.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case fairnessreport.FieldReportID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field report_id", values[i])
			} else if value.Valid {
				_m.ReportID = value.String
			}
		case fairnessreport.FieldGroupBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field group_by", values[i])
			} else if value.Valid {
				_m.GroupBy = value.String
			}
		case fairnessreport.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case fairnessreport.FieldWindowFrom:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_from", values[i])
			} else if value.Valid {
				_m.WindowFrom = new(time.Time)
				*_m.WindowFrom = value.Time
			}
		case fairnessreport.FieldWindowTo:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field window_to", values[i])
			} else if value.Valid {
				_m.WindowTo = new(time.Time)
				*_m.WindowTo = value.Time
			}
		case fairnessreport.FieldMinSampleSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field min_sample_size", values[i])
			} else if value.Valid {
				_m.MinSampleSize = int(value.Int64)
			}
		case fairnessreport.FieldMetrics:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field metrics", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Metrics); err != nil {
					return fmt.Errorf("unmarshal field metrics: %w", err)
				}
			}
		case fairnessreport.FieldInterpretation:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field interpretation", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Interpretation); err != nil {
					return fmt.Errorf("unmarshal field interpretation: %w", err)
				}
			}
		case fairnessreport.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = value.String
			}
		case fairnessreport.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the FairnessReport.
// This includes values selected through modifiers, order, etc.
func (_m *FairnessReport) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this FairnessReport.
// Note that you need to call FairnessReport.Unwrap() before calling this method if this FairnessReport
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *FairnessReport) Update() *FairnessReportUpdateOne {
	return NewFairnessReportClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the FairnessReport entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *FairnessReport) Unwrap() *FairnessReport {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: FairnessReport is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *FairnessReport) String() string {
	var builder strings.Builder
	builder.WriteString("FairnessReport(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("report_id=")
	builder.WriteString(_m.ReportID)
	builder.WriteString(", ")
	builder.WriteString("group_by=")
	builder.WriteString(_m.GroupBy)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	if v := _m.WindowFrom; v != nil {
		builder.WriteString("window_from=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.WindowTo; v != nil {
		builder.WriteString("window_to=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("min_sample_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.MinSampleSize))
	builder.WriteString(", ")
	builder.WriteString("metrics=")
	builder.WriteString(fmt.Sprintf("%v", _m.Metrics))
	builder.WriteString(", ")
	builder.WriteString("interpretation=")
	builder.WriteString(fmt.Sprintf("%v", _m.Interpretation))
	builder.WriteString(", ")
	builder.WriteString("notes=")
	builder.WriteString(_m.Notes)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// FairnessReports is a parsable slice of FairnessReport.
type FairnessReports []*FairnessReport
