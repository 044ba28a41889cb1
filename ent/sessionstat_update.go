// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/predicate"
	"github.com/metamind-labs/metamind/ent/sessionstat"
)

// SessionStatUpdate is the builder for updating SessionStat entities.
type SessionStatUpdate struct {
	config
	hooks    []Hook
	mutation *SessionStatMutation
}

// Where appends a list predicates to the SessionStatUpdate builder.
func (_u *SessionStatUpdate) Where(ps ...predicate.SessionStat) *SessionStatUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *SessionStatUpdate) SetSessionID(v string) *SessionStatUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableSessionID(v *string) *SessionStatUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionStatUpdate) SetUserID(v string) *SessionStatUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableUserID(v *string) *SessionStatUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionStatUpdate) SetTopic(v string) *SessionStatUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableTopic(v *string) *SessionStatUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *SessionStatUpdate) SetTurns(v int) *SessionStatUpdate {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableTurns(v *int) *SessionStatUpdate {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *SessionStatUpdate) AddTurns(v int) *SessionStatUpdate {
	_u.mutation.AddTurns(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionStatUpdate) SetAttempts(v int) *SessionStatUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableAttempts(v *int) *SessionStatUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SessionStatUpdate) AddAttempts(v int) *SessionStatUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSolvedCount sets the "solved_count" field.
func (_u *SessionStatUpdate) SetSolvedCount(v int) *SessionStatUpdate {
	_u.mutation.ResetSolvedCount()
	_u.mutation.SetSolvedCount(v)
	return _u
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableSolvedCount(v *int) *SessionStatUpdate {
	if v != nil {
		_u.SetSolvedCount(*v)
	}
	return _u
}

// AddSolvedCount adds value to the "solved_count" field.
func (_u *SessionStatUpdate) AddSolvedCount(v int) *SessionStatUpdate {
	_u.mutation.AddSolvedCount(v)
	return _u
}

// SetStepsToSolve sets the "steps_to_solve" field.
func (_u *SessionStatUpdate) SetStepsToSolve(v float64) *SessionStatUpdate {
	_u.mutation.ResetStepsToSolve()
	_u.mutation.SetStepsToSolve(v)
	return _u
}

// SetNillableStepsToSolve sets the "steps_to_solve" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableStepsToSolve(v *float64) *SessionStatUpdate {
	if v != nil {
		_u.SetStepsToSolve(*v)
	}
	return _u
}

// AddStepsToSolve adds value to the "steps_to_solve" field.
func (_u *SessionStatUpdate) AddStepsToSolve(v float64) *SessionStatUpdate {
	_u.mutation.AddStepsToSolve(v)
	return _u
}

// ClearStepsToSolve clears the value of the "steps_to_solve" field.
func (_u *SessionStatUpdate) ClearStepsToSolve() *SessionStatUpdate {
	_u.mutation.ClearStepsToSolve()
	return _u
}

// SetHintCount sets the "hint_count" field.
func (_u *SessionStatUpdate) SetHintCount(v int) *SessionStatUpdate {
	_u.mutation.ResetHintCount()
	_u.mutation.SetHintCount(v)
	return _u
}

// SetNillableHintCount sets the "hint_count" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableHintCount(v *int) *SessionStatUpdate {
	if v != nil {
		_u.SetHintCount(*v)
	}
	return _u
}

// AddHintCount adds value to the "hint_count" field.
func (_u *SessionStatUpdate) AddHintCount(v int) *SessionStatUpdate {
	_u.mutation.AddHintCount(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *SessionStatUpdate) SetMasteryDelta(v float64) *SessionStatUpdate {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *SessionStatUpdate) SetNillableMasteryDelta(v *float64) *SessionStatUpdate {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *SessionStatUpdate) AddMasteryDelta(v float64) *SessionStatUpdate {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// ClearMasteryDelta clears the value of the "mastery_delta" field.
func (_u *SessionStatUpdate) ClearMasteryDelta() *SessionStatUpdate {
	_u.mutation.ClearMasteryDelta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionStatUpdate) SetUpdatedAt(v time.Time) *SessionStatUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionStatMutation object of the builder.
func (_u *SessionStatUpdate) Mutation() *SessionStatMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionStatUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionStatUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionStatUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionStatUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionStatUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionStatUpdate) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionstat.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionStat.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionStatUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionstat.Table, sessionstat.Columns, sqlgraph.NewFieldSpec(sessionstat.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionstat.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionstat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionstat.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(sessionstat.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(sessionstat.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(sessionstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolvedCount(); ok {
		_spec.SetField(sessionstat.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolvedCount(); ok {
		_spec.AddField(sessionstat.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsToSolve(); ok {
		_spec.SetField(sessionstat.FieldStepsToSolve, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStepsToSolve(); ok {
		_spec.AddField(sessionstat.FieldStepsToSolve, field.TypeFloat64, value)
	}
	if _u.mutation.StepsToSolveCleared() {
		_spec.ClearField(sessionstat.FieldStepsToSolve, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HintCount(); ok {
		_spec.SetField(sessionstat.FieldHintCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintCount(); ok {
		_spec.AddField(sessionstat.FieldHintCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(sessionstat.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(sessionstat.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if _u.mutation.MasteryDeltaCleared() {
		_spec.ClearField(sessionstat.FieldMasteryDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstat.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionStatUpdateOne is the builder for updating a single SessionStat entity.
type SessionStatUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionStatMutation
}

// SetSessionID sets the "session_id" field.
func (_u *SessionStatUpdateOne) SetSessionID(v string) *SessionStatUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableSessionID(v *string) *SessionStatUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *SessionStatUpdateOne) SetUserID(v string) *SessionStatUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableUserID(v *string) *SessionStatUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *SessionStatUpdateOne) SetTopic(v string) *SessionStatUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableTopic(v *string) *SessionStatUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetTurns sets the "turns" field.
func (_u *SessionStatUpdateOne) SetTurns(v int) *SessionStatUpdateOne {
	_u.mutation.ResetTurns()
	_u.mutation.SetTurns(v)
	return _u
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableTurns(v *int) *SessionStatUpdateOne {
	if v != nil {
		_u.SetTurns(*v)
	}
	return _u
}

// AddTurns adds value to the "turns" field.
func (_u *SessionStatUpdateOne) AddTurns(v int) *SessionStatUpdateOne {
	_u.mutation.AddTurns(v)
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *SessionStatUpdateOne) SetAttempts(v int) *SessionStatUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableAttempts(v *int) *SessionStatUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *SessionStatUpdateOne) AddAttempts(v int) *SessionStatUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetSolvedCount sets the "solved_count" field.
func (_u *SessionStatUpdateOne) SetSolvedCount(v int) *SessionStatUpdateOne {
	_u.mutation.ResetSolvedCount()
	_u.mutation.SetSolvedCount(v)
	return _u
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableSolvedCount(v *int) *SessionStatUpdateOne {
	if v != nil {
		_u.SetSolvedCount(*v)
	}
	return _u
}

// AddSolvedCount adds value to the "solved_count" field.
func (_u *SessionStatUpdateOne) AddSolvedCount(v int) *SessionStatUpdateOne {
	_u.mutation.AddSolvedCount(v)
	return _u
}

// SetStepsToSolve sets the "steps_to_solve" field.
func (_u *SessionStatUpdateOne) SetStepsToSolve(v float64) *SessionStatUpdateOne {
	_u.mutation.ResetStepsToSolve()
	_u.mutation.SetStepsToSolve(v)
	return _u
}

// SetNillableStepsToSolve sets the "steps_to_solve" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableStepsToSolve(v *float64) *SessionStatUpdateOne {
	if v != nil {
		_u.SetStepsToSolve(*v)
	}
	return _u
}

// AddStepsToSolve adds value to the "steps_to_solve" field.
func (_u *SessionStatUpdateOne) AddStepsToSolve(v float64) *SessionStatUpdateOne {
	_u.mutation.AddStepsToSolve(v)
	return _u
}

// ClearStepsToSolve clears the value of the "steps_to_solve" field.
func (_u *SessionStatUpdateOne) ClearStepsToSolve() *SessionStatUpdateOne {
	_u.mutation.ClearStepsToSolve()
	return _u
}

// SetHintCount sets the "hint_count" field.
func (_u *SessionStatUpdateOne) SetHintCount(v int) *SessionStatUpdateOne {
	_u.mutation.ResetHintCount()
	_u.mutation.SetHintCount(v)
	return _u
}

// SetNillableHintCount sets the "hint_count" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableHintCount(v *int) *SessionStatUpdateOne {
	if v != nil {
		_u.SetHintCount(*v)
	}
	return _u
}

// AddHintCount adds value to the "hint_count" field.
func (_u *SessionStatUpdateOne) AddHintCount(v int) *SessionStatUpdateOne {
	_u.mutation.AddHintCount(v)
	return _u
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_u *SessionStatUpdateOne) SetMasteryDelta(v float64) *SessionStatUpdateOne {
	_u.mutation.ResetMasteryDelta()
	_u.mutation.SetMasteryDelta(v)
	return _u
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_u *SessionStatUpdateOne) SetNillableMasteryDelta(v *float64) *SessionStatUpdateOne {
	if v != nil {
		_u.SetMasteryDelta(*v)
	}
	return _u
}

// AddMasteryDelta adds value to the "mastery_delta" field.
func (_u *SessionStatUpdateOne) AddMasteryDelta(v float64) *SessionStatUpdateOne {
	_u.mutation.AddMasteryDelta(v)
	return _u
}

// ClearMasteryDelta clears the value of the "mastery_delta" field.
func (_u *SessionStatUpdateOne) ClearMasteryDelta() *SessionStatUpdateOne {
	_u.mutation.ClearMasteryDelta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionStatUpdateOne) SetUpdatedAt(v time.Time) *SessionStatUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the SessionStatMutation object of the builder.
func (_u *SessionStatUpdateOne) Mutation() *SessionStatMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionStatUpdate builder.
func (_u *SessionStatUpdateOne) Where(ps ...predicate.SessionStat) *SessionStatUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionStatUpdateOne) Select(field string, fields ...string) *SessionStatUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SessionStat entity.
func (_u *SessionStatUpdateOne) Save(ctx context.Context) (*SessionStat, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionStatUpdateOne) SaveX(ctx context.Context) *SessionStat {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionStatUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionStatUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionStatUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := sessionstat.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionStatUpdateOne) check() error {
	if v, ok := _u.mutation.SessionID(); ok {
		if err := sessionstat.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.session_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := sessionstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := sessionstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionStat.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionStatUpdateOne) sqlSave(ctx context.Context) (_node *SessionStat, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(sessionstat.Table, sessionstat.Columns, sqlgraph.NewFieldSpec(sessionstat.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SessionStat.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sessionstat.FieldID)
		for _, f := range fields {
			if !sessionstat.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != sessionstat.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(sessionstat.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(sessionstat.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(sessionstat.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Turns(); ok {
		_spec.SetField(sessionstat.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTurns(); ok {
		_spec.AddField(sessionstat.FieldTurns, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(sessionstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(sessionstat.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SolvedCount(); ok {
		_spec.SetField(sessionstat.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSolvedCount(); ok {
		_spec.AddField(sessionstat.FieldSolvedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.StepsToSolve(); ok {
		_spec.SetField(sessionstat.FieldStepsToSolve, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedStepsToSolve(); ok {
		_spec.AddField(sessionstat.FieldStepsToSolve, field.TypeFloat64, value)
	}
	if _u.mutation.StepsToSolveCleared() {
		_spec.ClearField(sessionstat.FieldStepsToSolve, field.TypeFloat64)
	}
	if value, ok := _u.mutation.HintCount(); ok {
		_spec.SetField(sessionstat.FieldHintCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHintCount(); ok {
		_spec.AddField(sessionstat.FieldHintCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MasteryDelta(); ok {
		_spec.SetField(sessionstat.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMasteryDelta(); ok {
		_spec.AddField(sessionstat.FieldMasteryDelta, field.TypeFloat64, value)
	}
	if _u.mutation.MasteryDeltaCleared() {
		_spec.ClearField(sessionstat.FieldMasteryDelta, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstat.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &SessionStat{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{sessionstat.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
