// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/progresssnapshot"
)

// ProgressSnapshotCreate is the builder for creating a ProgressSnapshot entity.
type ProgressSnapshotCreate struct {
	config
	mutation *ProgressSnapshotMutation
	hooks    []Hook
}

// SetSnapshotID sets the "snapshot_id" field.
func (_c *ProgressSnapshotCreate) SetSnapshotID(v string) *ProgressSnapshotCreate {
	_c.mutation.SetSnapshotID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ProgressSnapshotCreate) SetUserID(v string) *ProgressSnapshotCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *ProgressSnapshotCreate) SetTopic(v string) *ProgressSnapshotCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *ProgressSnapshotCreate) SetSkill(v string) *ProgressSnapshotCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetDelta sets the "delta" field.
func (_c *ProgressSnapshotCreate) SetDelta(v float64) *ProgressSnapshotCreate {
	_c.mutation.SetDelta(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ProgressSnapshotCreate) SetReason(v string) *ProgressSnapshotCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_c *ProgressSnapshotCreate) SetNillableReason(v *string) *ProgressSnapshotCreate {
	if v != nil {
		_c.SetReason(*v)
	}
	return _c
}

// SetSourceSessionID sets the "source_session_id" field.
func (_c *ProgressSnapshotCreate) SetSourceSessionID(v string) *ProgressSnapshotCreate {
	_c.mutation.SetSourceSessionID(v)
	return _c
}

// SetNillableSourceSessionID sets the "source_session_id" field if the given value is not nil.
func (_c *ProgressSnapshotCreate) SetNillableSourceSessionID(v *string) *ProgressSnapshotCreate {
	if v != nil {
		_c.SetSourceSessionID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ProgressSnapshotCreate) SetCreatedAt(v time.Time) *ProgressSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ProgressSnapshotCreate) SetNillableCreatedAt(v *time.Time) *ProgressSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ProgressSnapshotMutation object of the builder.
func (_c *ProgressSnapshotCreate) Mutation() *ProgressSnapshotMutation {
	return _c.mutation
}

// Save creates the ProgressSnapshot in the database.
func (_c *ProgressSnapshotCreate) Save(ctx context.Context) (*ProgressSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProgressSnapshotCreate) SaveX(ctx context.Context) *ProgressSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProgressSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Reason(); !ok {
		v := progresssnapshot.DefaultReason
		_c.mutation.SetReason(v)
	}
	if _, ok := _c.mutation.SourceSessionID(); !ok {
		v := progresssnapshot.DefaultSourceSessionID
		_c.mutation.SetSourceSessionID(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := progresssnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProgressSnapshotCreate) check() error {
	if _, ok := _c.mutation.SnapshotID(); !ok {
		return &ValidationError{Name: "snapshot_id", err: errors.New(`ent: missing required field "ProgressSnapshot.snapshot_id"`)}
	}
	if v, ok := _c.mutation.SnapshotID(); ok {
		if err := progresssnapshot.SnapshotIDValidator(v); err != nil {
			return &ValidationError{Name: "snapshot_id", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.snapshot_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProgressSnapshot.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := progresssnapshot.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ProgressSnapshot.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := progresssnapshot.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ProgressSnapshot.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "ProgressSnapshot.skill"`)}
	}
	if _, ok := _c.mutation.Delta(); !ok {
		return &ValidationError{Name: "delta", err: errors.New(`ent: missing required field "ProgressSnapshot.delta"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ProgressSnapshot.reason"`)}
	}
	if _, ok := _c.mutation.SourceSessionID(); !ok {
		return &ValidationError{Name: "source_session_id", err: errors.New(`ent: missing required field "ProgressSnapshot.source_session_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ProgressSnapshot.created_at"`)}
	}
	return nil
}

func (_c *ProgressSnapshotCreate) sqlSave(ctx context.Context) (*ProgressSnapshot, error) {
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

func (_c *ProgressSnapshotCreate) createSpec() (*ProgressSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &ProgressSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(progresssnapshot.Table, sqlgraph.NewFieldSpec(progresssnapshot.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SnapshotID(); ok {
		_spec.SetField(progresssnapshot.FieldSnapshotID, field.TypeString, value)
		_node.SnapshotID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(progresssnapshot.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(progresssnapshot.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(progresssnapshot.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Delta(); ok {
		_spec.SetField(progresssnapshot.FieldDelta, field.TypeFloat64, value)
		_node.Delta = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(progresssnapshot.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.SourceSessionID(); ok {
		_spec.SetField(progresssnapshot.FieldSourceSessionID, field.TypeString, value)
		_node.SourceSessionID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(progresssnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ProgressSnapshotCreateBulk is the builder for creating many ProgressSnapshot entities in bulk.
type ProgressSnapshotCreateBulk struct {
	config
	err      error
	builders []*ProgressSnapshotCreate
}

// Save creates the ProgressSnapshot entities in the database.
func (_c *ProgressSnapshotCreateBulk) Save(ctx context.Context) ([]*ProgressSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProgressSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProgressSnapshotMutation)
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
func (_c *ProgressSnapshotCreateBulk) SaveX(ctx context.Context) []*ProgressSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProgressSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProgressSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
