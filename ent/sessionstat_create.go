// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/sessionstat"
)

// SessionStatCreate is the builder for creating a SessionStat entity.
type SessionStatCreate struct {
	config
	mutation *SessionStatMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SessionStatCreate) SetSessionID(v string) *SessionStatCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *SessionStatCreate) SetUserID(v string) *SessionStatCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *SessionStatCreate) SetTopic(v string) *SessionStatCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetTurns sets the "turns" field.
func (_c *SessionStatCreate) SetTurns(v int) *SessionStatCreate {
	_c.mutation.SetTurns(v)
	return _c
}

// SetNillableTurns sets the "turns" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableTurns(v *int) *SessionStatCreate {
	if v != nil {
		_c.SetTurns(*v)
	}
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *SessionStatCreate) SetAttempts(v int) *SessionStatCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableAttempts(v *int) *SessionStatCreate {
	if v != nil {
		_c.SetAttempts(*v)
	}
	return _c
}

// SetSolvedCount sets the "solved_count" field.
func (_c *SessionStatCreate) SetSolvedCount(v int) *SessionStatCreate {
	_c.mutation.SetSolvedCount(v)
	return _c
}

// SetNillableSolvedCount sets the "solved_count" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableSolvedCount(v *int) *SessionStatCreate {
	if v != nil {
		_c.SetSolvedCount(*v)
	}
	return _c
}

// SetStepsToSolve sets the "steps_to_solve" field.
func (_c *SessionStatCreate) SetStepsToSolve(v float64) *SessionStatCreate {
	_c.mutation.SetStepsToSolve(v)
	return _c
}

// SetNillableStepsToSolve sets the "steps_to_solve" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableStepsToSolve(v *float64) *SessionStatCreate {
	if v != nil {
		_c.SetStepsToSolve(*v)
	}
	return _c
}

// SetHintCount sets the "hint_count" field.
func (_c *SessionStatCreate) SetHintCount(v int) *SessionStatCreate {
	_c.mutation.SetHintCount(v)
	return _c
}

// SetNillableHintCount sets the "hint_count" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableHintCount(v *int) *SessionStatCreate {
	if v != nil {
		_c.SetHintCount(*v)
	}
	return _c
}

// SetMasteryDelta sets the "mastery_delta" field.
func (_c *SessionStatCreate) SetMasteryDelta(v float64) *SessionStatCreate {
	_c.mutation.SetMasteryDelta(v)
	return _c
}

// SetNillableMasteryDelta sets the "mastery_delta" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableMasteryDelta(v *float64) *SessionStatCreate {
	if v != nil {
		_c.SetMasteryDelta(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *SessionStatCreate) SetUpdatedAt(v time.Time) *SessionStatCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *SessionStatCreate) SetNillableUpdatedAt(v *time.Time) *SessionStatCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionStatMutation object of the builder.
func (_c *SessionStatCreate) Mutation() *SessionStatMutation {
	return _c.mutation
}

// Save creates the SessionStat in the database.
func (_c *SessionStatCreate) Save(ctx context.Context) (*SessionStat, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionStatCreate) SaveX(ctx context.Context) *SessionStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStatCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStatCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionStatCreate) defaults() {
	if _, ok := _c.mutation.Turns(); !ok {
		v := sessionstat.DefaultTurns
		_c.mutation.SetTurns(v)
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		v := sessionstat.DefaultAttempts
		_c.mutation.SetAttempts(v)
	}
	if _, ok := _c.mutation.SolvedCount(); !ok {
		v := sessionstat.DefaultSolvedCount
		_c.mutation.SetSolvedCount(v)
	}
	if _, ok := _c.mutation.HintCount(); !ok {
		v := sessionstat.DefaultHintCount
		_c.mutation.SetHintCount(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := sessionstat.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionStatCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionStat.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionstat.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "SessionStat.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := sessionstat.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "SessionStat.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "SessionStat.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := sessionstat.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "SessionStat.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Turns(); !ok {
		return &ValidationError{Name: "turns", err: errors.New(`ent: missing required field "SessionStat.turns"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "SessionStat.attempts"`)}
	}
	if _, ok := _c.mutation.SolvedCount(); !ok {
		return &ValidationError{Name: "solved_count", err: errors.New(`ent: missing required field "SessionStat.solved_count"`)}
	}
	if _, ok := _c.mutation.HintCount(); !ok {
		return &ValidationError{Name: "hint_count", err: errors.New(`ent: missing required field "SessionStat.hint_count"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "SessionStat.updated_at"`)}
	}
	return nil
}

func (_c *SessionStatCreate) sqlSave(ctx context.Context) (*SessionStat, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionStatCreate) createSpec() (*SessionStat, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionStat{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionstat.Table, sqlgraph.NewFieldSpec(sessionstat.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionstat.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(sessionstat.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(sessionstat.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Turns(); ok {
		_spec.SetField(sessionstat.FieldTurns, field.TypeInt, value)
		_node.Turns = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(sessionstat.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.SolvedCount(); ok {
		_spec.SetField(sessionstat.FieldSolvedCount, field.TypeInt, value)
		_node.SolvedCount = value
	}
	if value, ok := _c.mutation.StepsToSolve(); ok {
		_spec.SetField(sessionstat.FieldStepsToSolve, field.TypeFloat64, value)
		_node.StepsToSolve = &value
	}
	if value, ok := _c.mutation.HintCount(); ok {
		_spec.SetField(sessionstat.FieldHintCount, field.TypeInt, value)
		_node.HintCount = value
	}
	if value, ok := _c.mutation.MasteryDelta(); ok {
		_spec.SetField(sessionstat.FieldMasteryDelta, field.TypeFloat64, value)
		_node.MasteryDelta = &value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(sessionstat.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// SessionStatCreateBulk is the builder for creating many SessionStat entities in bulk.
type SessionStatCreateBulk struct {
	config
	err      error
	builders []*SessionStatCreate
}

// Save creates the SessionStat entities in the database.
func (_c *SessionStatCreateBulk) Save(ctx context.Context) ([]*SessionStat, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionStat, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionStatMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionStatCreateBulk) SaveX(ctx context.Context) []*SessionStat {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionStatCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionStatCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
