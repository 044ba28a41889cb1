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
	"github.com/metamind-labs/metamind/ent/studentskill"
)

// StudentSkillUpdate is the builder for updating StudentSkill entities.
type StudentSkillUpdate struct {
	config
	hooks    []Hook
	mutation *StudentSkillMutation
}

// Where appends a list predicates to the StudentSkillUpdate builder.
func (_u *StudentSkillUpdate) Where(ps ...predicate.StudentSkill) *StudentSkillUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *StudentSkillUpdate) SetUserID(v string) *StudentSkillUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableUserID(v *string) *StudentSkillUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudentSkillUpdate) SetTopic(v string) *StudentSkillUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableTopic(v *string) *StudentSkillUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *StudentSkillUpdate) SetSkill(v string) *StudentSkillUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableSkill(v *string) *StudentSkillUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *StudentSkillUpdate) SetExposures(v int) *StudentSkillUpdate {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableExposures(v *int) *StudentSkillUpdate {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *StudentSkillUpdate) AddExposures(v int) *StudentSkillUpdate {
	_u.mutation.AddExposures(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *StudentSkillUpdate) SetMastery(v float64) *StudentSkillUpdate {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableMastery(v *float64) *StudentSkillUpdate {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *StudentSkillUpdate) AddMastery(v float64) *StudentSkillUpdate {
	_u.mutation.AddMastery(v)
	return _u
}

// SetNeedsReinforcement sets the "needs_reinforcement" field.
func (_u *StudentSkillUpdate) SetNeedsReinforcement(v bool) *StudentSkillUpdate {
	_u.mutation.SetNeedsReinforcement(v)
	return _u
}

// SetNillableNeedsReinforcement sets the "needs_reinforcement" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableNeedsReinforcement(v *bool) *StudentSkillUpdate {
	if v != nil {
		_u.SetNeedsReinforcement(*v)
	}
	return _u
}

// SetContextsSeen sets the "contexts_seen" field.
func (_u *StudentSkillUpdate) SetContextsSeen(v string) *StudentSkillUpdate {
	_u.mutation.SetContextsSeen(v)
	return _u
}

// SetNillableContextsSeen sets the "contexts_seen" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableContextsSeen(v *string) *StudentSkillUpdate {
	if v != nil {
		_u.SetContextsSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *StudentSkillUpdate) SetLastSeen(v time.Time) *StudentSkillUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *StudentSkillUpdate) SetNillableLastSeen(v *time.Time) *StudentSkillUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the StudentSkillMutation object of the builder.
func (_u *StudentSkillUpdate) Mutation() *StudentSkillMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *StudentSkillUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentSkillUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *StudentSkillUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentSkillUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentSkillUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studentskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studentskill.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := studentskill.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentSkillUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentskill.Table, studentskill.Columns, sqlgraph.NewFieldSpec(studentskill.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(studentskill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studentskill.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(studentskill.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(studentskill.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(studentskill.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(studentskill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(studentskill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReinforcement(); ok {
		_spec.SetField(studentskill.FieldNeedsReinforcement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContextsSeen(); ok {
		_spec.SetField(studentskill.FieldContextsSeen, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(studentskill.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// StudentSkillUpdateOne is the builder for updating a single StudentSkill entity.
type StudentSkillUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *StudentSkillMutation
}

// SetUserID sets the "user_id" field.
func (_u *StudentSkillUpdateOne) SetUserID(v string) *StudentSkillUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableUserID(v *string) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *StudentSkillUpdateOne) SetTopic(v string) *StudentSkillUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableTopic(v *string) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *StudentSkillUpdateOne) SetSkill(v string) *StudentSkillUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableSkill(v *string) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetExposures sets the "exposures" field.
func (_u *StudentSkillUpdateOne) SetExposures(v int) *StudentSkillUpdateOne {
	_u.mutation.ResetExposures()
	_u.mutation.SetExposures(v)
	return _u
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableExposures(v *int) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetExposures(*v)
	}
	return _u
}

// AddExposures adds value to the "exposures" field.
func (_u *StudentSkillUpdateOne) AddExposures(v int) *StudentSkillUpdateOne {
	_u.mutation.AddExposures(v)
	return _u
}

// SetMastery sets the "mastery" field.
func (_u *StudentSkillUpdateOne) SetMastery(v float64) *StudentSkillUpdateOne {
	_u.mutation.ResetMastery()
	_u.mutation.SetMastery(v)
	return _u
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableMastery(v *float64) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetMastery(*v)
	}
	return _u
}

// AddMastery adds value to the "mastery" field.
func (_u *StudentSkillUpdateOne) AddMastery(v float64) *StudentSkillUpdateOne {
	_u.mutation.AddMastery(v)
	return _u
}

// SetNeedsReinforcement sets the "needs_reinforcement" field.
func (_u *StudentSkillUpdateOne) SetNeedsReinforcement(v bool) *StudentSkillUpdateOne {
	_u.mutation.SetNeedsReinforcement(v)
	return _u
}

// SetNillableNeedsReinforcement sets the "needs_reinforcement" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableNeedsReinforcement(v *bool) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetNeedsReinforcement(*v)
	}
	return _u
}

// SetContextsSeen sets the "contexts_seen" field.
func (_u *StudentSkillUpdateOne) SetContextsSeen(v string) *StudentSkillUpdateOne {
	_u.mutation.SetContextsSeen(v)
	return _u
}

// SetNillableContextsSeen sets the "contexts_seen" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableContextsSeen(v *string) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetContextsSeen(*v)
	}
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *StudentSkillUpdateOne) SetLastSeen(v time.Time) *StudentSkillUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *StudentSkillUpdateOne) SetNillableLastSeen(v *time.Time) *StudentSkillUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// Mutation returns the StudentSkillMutation object of the builder.
func (_u *StudentSkillUpdateOne) Mutation() *StudentSkillMutation {
	return _u.mutation
}

// Where appends a list predicates to the StudentSkillUpdate builder.
func (_u *StudentSkillUpdateOne) Where(ps ...predicate.StudentSkill) *StudentSkillUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *StudentSkillUpdateOne) Select(field string, fields ...string) *StudentSkillUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated StudentSkill entity.
func (_u *StudentSkillUpdateOne) Save(ctx context.Context) (*StudentSkill, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *StudentSkillUpdateOne) SaveX(ctx context.Context) *StudentSkill {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *StudentSkillUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *StudentSkillUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *StudentSkillUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := studentskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Topic(); ok {
		if err := studentskill.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Skill(); ok {
		if err := studentskill.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.skill": %w`, err)}
		}
	}
	return nil
}

func (_u *StudentSkillUpdateOne) sqlSave(ctx context.Context) (_node *StudentSkill, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(studentskill.Table, studentskill.Columns, sqlgraph.NewFieldSpec(studentskill.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "StudentSkill.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, studentskill.FieldID)
		for _, f := range fields {
			if !studentskill.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != studentskill.FieldID {
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
		_spec.SetField(studentskill.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(studentskill.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(studentskill.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Exposures(); ok {
		_spec.SetField(studentskill.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExposures(); ok {
		_spec.AddField(studentskill.FieldExposures, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Mastery(); ok {
		_spec.SetField(studentskill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMastery(); ok {
		_spec.AddField(studentskill.FieldMastery, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.NeedsReinforcement(); ok {
		_spec.SetField(studentskill.FieldNeedsReinforcement, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ContextsSeen(); ok {
		_spec.SetField(studentskill.FieldContextsSeen, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(studentskill.FieldLastSeen, field.TypeTime, value)
	}
	_node = &StudentSkill{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{studentskill.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
