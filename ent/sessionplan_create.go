// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/sessionplan"
)

// SessionPlanCreate is the builder for creating a SessionPlan entity.
type SessionPlanCreate struct {
	config
	mutation *SessionPlanMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *SessionPlanCreate) SetPlanID(v string) *SessionPlanCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *SessionPlanCreate) SetSessionID(v string) *SessionPlanCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *SessionPlanCreate) SetVersion(v int) *SessionPlanCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetPlan sets the "plan" field.
func (_c *SessionPlanCreate) SetPlan(v map[string]interface{}) *SessionPlanCreate {
	_c.mutation.SetPlan(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionPlanCreate) SetCreatedAt(v time.Time) *SessionPlanCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionPlanCreate) SetNillableCreatedAt(v *time.Time) *SessionPlanCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the SessionPlanMutation object of the builder.
func (_c *SessionPlanCreate) Mutation() *SessionPlanMutation {
	return _c.mutation
}

// Save creates the SessionPlan in the database.
func (_c *SessionPlanCreate) Save(ctx context.Context) (*SessionPlan, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionPlanCreate) SaveX(ctx context.Context) *SessionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionPlanCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionPlanCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionPlanCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := sessionplan.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionPlanCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "SessionPlan.plan_id"`)}
	}
	if v, ok := _c.mutation.PlanID(); ok {
		if err := sessionplan.PlanIDValidator(v); err != nil {
			return &ValidationError{Name: "plan_id", err: fmt.Errorf(`ent: validator failed for field "SessionPlan.plan_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SessionPlan.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := sessionplan.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SessionPlan.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "SessionPlan.version"`)}
	}
	if v, ok := _c.mutation.Version(); ok {
		if err := sessionplan.VersionValidator(v); err != nil {
			return &ValidationError{Name: "version", err: fmt.Errorf(`ent: validator failed for field "SessionPlan.version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plan(); !ok {
		return &ValidationError{Name: "plan", err: errors.New(`ent: missing required field "SessionPlan.plan"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "SessionPlan.created_at"`)}
	}
	return nil
}

func (_c *SessionPlanCreate) sqlSave(ctx context.Context) (*SessionPlan, error) {
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

func (_c *SessionPlanCreate) createSpec() (*SessionPlan, *sqlgraph.CreateSpec) {
	var (
		_node = &SessionPlan{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(sessionplan.Table, sqlgraph.NewFieldSpec(sessionplan.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(sessionplan.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(sessionplan.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(sessionplan.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.Plan(); ok {
		_spec.SetField(sessionplan.FieldPlan, field.TypeJSON, value)
		_node.Plan = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(sessionplan.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// SessionPlanCreateBulk is the builder for creating many SessionPlan entities in bulk.
type SessionPlanCreateBulk struct {
	config
	err      error
	builders []*SessionPlanCreate
}

// Save creates the SessionPlan entities in the database.
func (_c *SessionPlanCreateBulk) Save(ctx context.Context) ([]*SessionPlan, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SessionPlan, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionPlanMutation)
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
func (_c *SessionPlanCreateBulk) SaveX(ctx context.Context) []*SessionPlan {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionPlanCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionPlanCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
