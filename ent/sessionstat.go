// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/sessionstat"
)

// SessionStat is the model entity for the SessionStat schema.
type SessionStat struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Total interactions recorded
	Turns int `json:"turns,omitempty"`
	// Student turns
	Attempts int `json:"attempts,omitempty"`
	// SolvedCount holds the value of the "solved_count" field.
	SolvedCount int `json:"solved_count,omitempty"`
	// Turns from first student prompt to first SOLVED; unset when unsolved
	StepsToSolve *float64 `json:"steps_to_solve,omitempty"`
	// HintCount holds the value of the "hint_count" field.
	HintCount int `json:"hint_count,omitempty"`
	// Sum of snapshot deltas attributed to the session
	MasteryDelta *float64 `json:"mastery_delta,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SessionStat) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case sessionstat.FieldStepsToSolve, sessionstat.FieldMasteryDelta:
			values[i] = new(sql.NullFloat64)
		case sessionstat.FieldID, sessionstat.FieldTurns, sessionstat.FieldAttempts, sessionstat.FieldSolvedCount, sessionstat.FieldHintCount:
			values[i] = new(sql.NullInt64)
		case sessionstat.FieldSessionID, sessionstat.FieldUserID, sessionstat.FieldTopic:
			values[i] = new(sql.NullString)
		case sessionstat.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SessionStat fields.
func (_m *SessionStat) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case sessionstat.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case sessionstat.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case sessionstat.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case sessionstat.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case sessionstat.FieldTurns:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field turns", values[i])
			} else if value.Valid {
				_m.Turns = int(value.Int64)
			}
		case sessionstat.FieldAttempts:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempts", values[i])
			} else if value.Valid {
				_m.Attempts = int(value.Int64)
			}
		case sessionstat.FieldSolvedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field solved_count", values[i])
			} else if value.Valid {
				_m.SolvedCount = int(value.Int64)
			}
		case sessionstat.FieldStepsToSolve:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field steps_to_solve", values[i])
			} else if value.Valid {
				_m.StepsToSolve = new(float64)
				*_m.StepsToSolve = value.Float64
			}
		case sessionstat.FieldHintCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hint_count", values[i])
			} else if value.Valid {
				_m.HintCount = int(value.Int64)
			}
		case sessionstat.FieldMasteryDelta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_delta", values[i])
			} else if value.Valid {
				_m.MasteryDelta = new(float64)
				*_m.MasteryDelta = value.Float64
			}
		case sessionstat.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SessionStat.
// This includes values selected through modifiers, order, etc.
func (_m *SessionStat) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SessionStat.
// Note that you need to call SessionStat.Unwrap() before calling this method if this SessionStat
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SessionStat) Update() *SessionStatUpdateOne {
	return NewSessionStatClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SessionStat entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SessionStat) Unwrap() *SessionStat {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SessionStat is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SessionStat) String() string {
	var builder strings.Builder
	builder.WriteString("SessionStat(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("turns=")
	builder.WriteString(fmt.Sprintf("%v", _m.Turns))
	builder.WriteString(", ")
	builder.WriteString("attempts=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempts))
	builder.WriteString(", ")
	builder.WriteString("solved_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.SolvedCount))
	builder.WriteString(", ")
	if v := _m.StepsToSolve; v != nil {
		builder.WriteString("steps_to_solve=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("hint_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HintCount))
	builder.WriteString(", ")
	if v := _m.MasteryDelta; v != nil {
		builder.WriteString("mastery_delta=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SessionStats is a parsable slice of SessionStat.
type SessionStats []*SessionStat
