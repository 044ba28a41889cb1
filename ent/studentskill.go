// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/metamind-labs/metamind/ent/studentskill"
)

// StudentSkill is the model entity for the StudentSkill schema.
type StudentSkill struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Topic holds the value of the "topic" field.
	Topic string `json:"topic,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// Times the skill appeared in a snapshot
	Exposures int `json:"exposures,omitempty"`
	// Fold of progress snapshots, clamped to [0,1]
	Mastery float64 `json:"mastery,omitempty"`
	// NeedsReinforcement holds the value of the "needs_reinforcement" field.
	NeedsReinforcement bool `json:"needs_reinforcement,omitempty"`
	// Comma-joined context tags the skill was exercised in
	ContextsSeen string `json:"contexts_seen,omitempty"`
	// LastSeen holds the value of the "last_seen" field.
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*StudentSkill) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case studentskill.FieldNeedsReinforcement:
			values[i] = new(sql.NullBool)
		case studentskill.FieldMastery:
			values[i] = new(sql.NullFloat64)
		case studentskill.FieldID, studentskill.FieldExposures:
			values[i] = new(sql.NullInt64)
		case studentskill.FieldUserID, studentskill.FieldTopic, studentskill.FieldSkill, studentskill.FieldContextsSeen:
			values[i] = new(sql.NullString)
		case studentskill.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the StudentSkill fields.
func (_m *StudentSkill) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case studentskill.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case studentskill.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case studentskill.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case studentskill.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case studentskill.FieldExposures:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field exposures", values[i])
			} else if value.Valid {
				_m.Exposures = int(value.Int64)
			}
		case studentskill.FieldMastery:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery", values[i])
			} else if value.Valid {
				_m.Mastery = value.Float64
			}
		case studentskill.FieldNeedsReinforcement:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field needs_reinforcement", values[i])
			} else if value.Valid {
				_m.NeedsReinforcement = value.Bool
			}
		case studentskill.FieldContextsSeen:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field contexts_seen", values[i])
			} else if value.Valid {
				_m.ContextsSeen = value.String
			}
		case studentskill.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the StudentSkill.
// This includes values selected through modifiers, order, etc.
func (_m *StudentSkill) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this StudentSkill.
// Note that you need to call StudentSkill.Unwrap() before calling this method if this StudentSkill
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *StudentSkill) Update() *StudentSkillUpdateOne {
	return NewStudentSkillClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the StudentSkill entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *StudentSkill) Unwrap() *StudentSkill {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: StudentSkill is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *StudentSkill) String() string {
	var builder strings.Builder
	builder.WriteString("StudentSkill(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("exposures=")
	builder.WriteString(fmt.Sprintf("%v", _m.Exposures))
	builder.WriteString(", ")
	builder.WriteString("mastery=")
	builder.WriteString(fmt.Sprintf("%v", _m.Mastery))
	builder.WriteString(", ")
	builder.WriteString("needs_reinforcement=")
	builder.WriteString(fmt.Sprintf("%v", _m.NeedsReinforcement))
	builder.WriteString(", ")
	builder.WriteString("contexts_seen=")
	builder.WriteString(_m.ContextsSeen)
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// StudentSkills is a parsable slice of StudentSkill.
type StudentSkills []*StudentSkill
