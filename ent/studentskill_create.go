// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/studentskill"
)

// StudentSkillCreate is the builder for creating a StudentSkill entity.
type StudentSkillCreate struct {
	config
	mutation *StudentSkillMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *StudentSkillCreate) SetUserID(v string) *StudentSkillCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *StudentSkillCreate) SetTopic(v string) *StudentSkillCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *StudentSkillCreate) SetSkill(v string) *StudentSkillCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetExposures sets the "exposures" field.
func (_c *StudentSkillCreate) SetExposures(v int) *StudentSkillCreate {
	_c.mutation.SetExposures(v)
	return _c
}

// SetNillableExposures sets the "exposures" field if the given value is not nil.
func (_c *StudentSkillCreate) SetNillableExposures(v *int) *StudentSkillCreate {
	if v != nil {
		_c.SetExposures(*v)
	}
	return _c
}

// SetMastery sets the "mastery" field.
func (_c *StudentSkillCreate) SetMastery(v float64) *StudentSkillCreate {
	_c.mutation.SetMastery(v)
	return _c
}

// SetNillableMastery sets the "mastery" field if the given value is not nil.
func (_c *StudentSkillCreate) SetNillableMastery(v *float64) *StudentSkillCreate {
	if v != nil {
		_c.SetMastery(*v)
	}
	return _c
}

// SetNeedsReinforcement sets the "needs_reinforcement" field.
func (_c *StudentSkillCreate) SetNeedsReinforcement(v bool) *StudentSkillCreate {
	_c.mutation.SetNeedsReinforcement(v)
	return _c
}

// SetNillableNeedsReinforcement sets the "needs_reinforcement" field if the given value is not nil.
func (_c *StudentSkillCreate) SetNillableNeedsReinforcement(v *bool) *StudentSkillCreate {
	if v != nil {
		_c.SetNeedsReinforcement(*v)
	}
	return _c
}

// SetContextsSeen sets the "contexts_seen" field.
func (_c *StudentSkillCreate) SetContextsSeen(v string) *StudentSkillCreate {
	_c.mutation.SetContextsSeen(v)
	return _c
}

// SetNillableContextsSeen sets the "contexts_seen" field if the given value is not nil.
func (_c *StudentSkillCreate) SetNillableContextsSeen(v *string) *StudentSkillCreate {
	if v != nil {
		_c.SetContextsSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *StudentSkillCreate) SetLastSeen(v time.Time) *StudentSkillCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *StudentSkillCreate) SetNillableLastSeen(v *time.Time) *StudentSkillCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the StudentSkillMutation object of the builder.
func (_c *StudentSkillCreate) Mutation() *StudentSkillMutation {
	return _c.mutation
}

// Save creates the StudentSkill in the database.
func (_c *StudentSkillCreate) Save(ctx context.Context) (*StudentSkill, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StudentSkillCreate) SaveX(ctx context.Context) *StudentSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentSkillCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentSkillCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StudentSkillCreate) defaults() {
	if _, ok := _c.mutation.Exposures(); !ok {
		v := studentskill.DefaultExposures
		_c.mutation.SetExposures(v)
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		v := studentskill.DefaultMastery
		_c.mutation.SetMastery(v)
	}
	if _, ok := _c.mutation.NeedsReinforcement(); !ok {
		v := studentskill.DefaultNeedsReinforcement
		_c.mutation.SetNeedsReinforcement(v)
	}
	if _, ok := _c.mutation.ContextsSeen(); !ok {
		v := studentskill.DefaultContextsSeen
		_c.mutation.SetContextsSeen(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := studentskill.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StudentSkillCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "StudentSkill.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := studentskill.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "StudentSkill.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := studentskill.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "StudentSkill.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := studentskill.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "StudentSkill.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Exposures(); !ok {
		return &ValidationError{Name: "exposures", err: errors.New(`ent: missing required field "StudentSkill.exposures"`)}
	}
	if _, ok := _c.mutation.Mastery(); !ok {
		return &ValidationError{Name: "mastery", err: errors.New(`ent: missing required field "StudentSkill.mastery"`)}
	}
	if _, ok := _c.mutation.NeedsReinforcement(); !ok {
		return &ValidationError{Name: "needs_reinforcement", err: errors.New(`ent: missing required field "StudentSkill.needs_reinforcement"`)}
	}
	if _, ok := _c.mutation.ContextsSeen(); !ok {
		return &ValidationError{Name: "contexts_seen", err: errors.New(`ent: missing required field "StudentSkill.contexts_seen"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "StudentSkill.last_seen"`)}
	}
	return nil
}

func (_c *StudentSkillCreate) sqlSave(ctx context.Context) (*StudentSkill, error) {
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

func (_c *StudentSkillCreate) createSpec() (*StudentSkill, *sqlgraph.CreateSpec) {
	var (
		_node = &StudentSkill{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(studentskill.Table, sqlgraph.NewFieldSpec(studentskill.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(studentskill.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(studentskill.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(studentskill.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Exposures(); ok {
		_spec.SetField(studentskill.FieldExposures, field.TypeInt, value)
		_node.Exposures = value
	}
	if value, ok := _c.mutation.Mastery(); ok {
		_spec.SetField(studentskill.FieldMastery, field.TypeFloat64, value)
		_node.Mastery = value
	}
	if value, ok := _c.mutation.NeedsReinforcement(); ok {
		_spec.SetField(studentskill.FieldNeedsReinforcement, field.TypeBool, value)
		_node.NeedsReinforcement = value
	}
	if value, ok := _c.mutation.ContextsSeen(); ok {
		_spec.SetField(studentskill.FieldContextsSeen, field.TypeString, value)
		_node.ContextsSeen = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(studentskill.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// StudentSkillCreateBulk is the builder for creating many StudentSkill entities in bulk.
type StudentSkillCreateBulk struct {
	config
	err      error
	builders []*StudentSkillCreate
}

// Save creates the StudentSkill entities in the database.
func (_c *StudentSkillCreateBulk) Save(ctx context.Context) ([]*StudentSkill, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StudentSkill, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StudentSkillMutation)
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
func (_c *StudentSkillCreateBulk) SaveX(ctx context.Context) []*StudentSkill {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StudentSkillCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StudentSkillCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
