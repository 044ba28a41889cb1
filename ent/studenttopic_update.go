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
	"github.com/metamind-labs/metamind/ent/studenttopic"
)

// StudentTopicUpdate is the builder for updating StudentTopic entities.
type StudentTopicUpdate struct {
	config
	hooks    []Hook
	mutation *StudentTopicMutation
}

// Where appends a list predicates to the StudentTopicUpdate builder.
func (_u *StudentTopicUpdate) Where(ps ...predicate.StudentTopic) *StudentTopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentTopicUpdate) SetUserID(v string) *StudentTopicUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentTopicUpdate) SetNillableUserID(v *string) *StudentTopicUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudentTopicUpdate) SetTopic(v string) *StudentTopicUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudentTopicUpdate) SetNillableTopic(v *string) *StudentTopicUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudentTopicUpdate) SetDifficulty(v float64) *StudentTopicUpdate {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudentTopicUpdate) SetNillableDifficulty(v *float64) *StudentTopicUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *StudentTopicUpdate) AddDifficulty(v float64) *StudentTopicUpdate {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *StudentTopicUpdate) SetLastSeen(v time.Time) *StudentTopicUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *StudentTopicUpdate) SetNillableLastSeen(v *time.Time) *StudentTopicUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the StudentTopicMutation object of the builder.
func (_u *StudentTopicUpdate) Mutation() *StudentTopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentTopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentTopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentTopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentTopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentTopicUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studenttopic.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentTopic.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studenttopic.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudentTopic.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentTopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studenttopic.Table, studenttopic.Columns, sqlgraph.NewFieldSpec(studenttopic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studenttopic.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studenttopic.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studenttopic.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(studenttopic.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(studenttopic.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studenttopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentTopicUpdateOne is the builder for updating a single StudentTopic entity.
type StudentTopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentTopicMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudentTopicUpdateOne) SetUserID(v string) *StudentTopicUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentTopicUpdateOne) SetNillableUserID(v *string) *StudentTopicUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudentTopicUpdateOne) SetTopic(v string) *StudentTopicUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudentTopicUpdateOne) SetNillableTopic(v *string) *StudentTopicUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *StudentTopicUpdateOne) SetDifficulty(v float64) *StudentTopicUpdateOne {
	_u.mutation.ResetDifficulty()
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *StudentTopicUpdateOne) SetNillableDifficulty(v *float64) *StudentTopicUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// AddDifficulty adds value to the "difficulty" field.
func (_u *StudentTopicUpdateOne) AddDifficulty(v float64) *StudentTopicUpdateOne {
	_u.mutation.AddDifficulty(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *StudentTopicUpdateOne) SetLastSeen(v time.Time) *StudentTopicUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *StudentTopicUpdateOne) SetNillableLastSeen(v *time.Time) *StudentTopicUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the StudentTopicMutation object of the builder.
func (_u *StudentTopicUpdateOne) Mutation() *StudentTopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentTopicUpdate builder.
func (_u *StudentTopicUpdateOne) Where(ps ...predicate.StudentTopic) *StudentTopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentTopicUpdateOne) Select(field string, fields ...string) *StudentTopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentTopic entity.
func (_u *StudentTopicUpdateOne) Save(ctx context.Context) (*StudentTopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentTopicUpdateOne) SaveX(ctx context.Context) *StudentTopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentTopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentTopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentTopicUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studenttopic.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentTopic.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studenttopic.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudentTopic.topic": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentTopicUpdateOne) sqlSave(ctx context.Context) (_node *StudentTopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studenttopic.Table, studenttopic.Columns, sqlgraph.NewFieldSpec(studenttopic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentTopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studenttopic.FieldID)
		for _, f := range fields {
			if !studenttopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studenttopic.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studenttopic.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studenttopic.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(studenttopic.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDifficulty(); ok {
		_spec.AddField(studenttopic.FieldDifficulty, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(studenttopic.FieldLastSeen, field.TypeTime, value)
	}
	_node = &StudentTopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studenttopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
