// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
)

// FairnessReportCreate is the builder for creating a FairnessReport entity.
type FairnessReportCreate struct {
	config
	mutation *FairnessReportMutation
	hooks    []Hook
}

// SetReportID sets the "report_id" field.
func (_c *FairnessReportCreate) SetReportID(v string) *FairnessReportCreate {
	_c.mutation.SetReportID(v)
	return _c
}

// SetGroupBy sets the "group_by" field.
func (_c *FairnessReportCreate) SetGroupBy(v string) *FairnessReportCreate {
	_c.mutation.SetGroupBy(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *FairnessReportCreate) SetTopic(v string) *FairnessReportCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableTopic(v *string) *FairnessReportCreate {
	if v != nil {
		_c.SetTopic(*v)
	}
	return _c
}

// SetWindowFrom sets the "window_from" field.
func (_c *FairnessReportCreate) SetWindowFrom(v time.Time) *FairnessReportCreate {
	_c.mutation.SetWindowFrom(v)
	return _c
}

// SetNillableWindowFrom sets the "window_from" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableWindowFrom(v *time.Time) *FairnessReportCreate {
	if v != nil {
		_c.SetWindowFrom(*v)
	}
	return _c
}

// SetWindowTo sets the "window_to" field.
func (_c *FairnessReportCreate) SetWindowTo(v time.Time) *FairnessReportCreate {
	_c.mutation.SetWindowTo(v)
	return _c
}

// SetNillableWindowTo sets the "window_to" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableWindowTo(v *time.Time) *FairnessReportCreate {
	if v != nil {
		_c.SetWindowTo(*v)
	}
	return _c
}

// SetMinSampleSize sets the "min_sample_size" field.
func (_c *FairnessReportCreate) SetMinSampleSize(v int) *FairnessReportCreate {
	_c.mutation.SetMinSampleSize(v)
	return _c
}

// SetNillableMinSampleSize sets the "min_sample_size" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableMinSampleSize(v *int) *FairnessReportCreate {
	if v != nil {
		_c.SetMinSampleSize(*v)
	}
	return _c
}

// SetMetrics sets the "metrics" field.
func (_c *FairnessReportCreate) SetMetrics(v map[string]interface{}) *FairnessReportCreate {
	_c.mutation.SetMetrics(v)
	return _c
}

// SetInterpretation sets the "interpretation" field.
func (_c *FairnessReportCreate) SetInterpretation(v map[string]interface{}) *FairnessReportCreate {
	_c.mutation.SetInterpretation(v)
	return _c
}

// SetNotes sets the "notes" field.
func (_c *FairnessReportCreate) SetNotes(v string) *FairnessReportCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableNotes(v *string) *FairnessReportCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *FairnessReportCreate) SetCreatedAt(v time.Time) *FairnessReportCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FairnessReportCreate) SetNillableCreatedAt(v *time.Time) *FairnessReportCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the FairnessReportMutation object of the builder.
func (_c *FairnessReportCreate) Mutation() *FairnessReportMutation {
	return _c.mutation
}

// Save creates the FairnessReport in the database.
func (_c *FairnessReportCreate) Save(ctx context.Context) (*FairnessReport, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FairnessReportCreate) SaveX(ctx context.Context) *FairnessReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FairnessReportCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FairnessReportCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FairnessReportCreate) defaults() {
	if _, ok := _c.mutation.Topic(); !ok {
		v := fairnessreport.DefaultTopic
		_c.mutation.SetTopic(v)
	}
	if _, ok := _c.mutation.MinSampleSize(); !ok {
		v := fairnessreport.DefaultMinSampleSize
		_c.mutation.SetMinSampleSize(v)
	}
	if _, ok := _c.mutation.Notes(); !ok {
		v := fairnessreport.DefaultNotes
		_c.mutation.SetNotes(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := fairnessreport.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FairnessReportCreate) check() error {
	if _, ok := _c.mutation.ReportID(); !ok {
		return &ValidationError{Name: "report_id", err: errors.New(`ent: missing required field "FairnessReport.report_id"`)}
	}
	if v, ok := _c.mutation.ReportID(); ok {
		if err := fairnessreport.ReportIDValidator(v); err != nil {
			return &ValidationError{Name: "report_id", err: fmt.Errorf(`ent: validator failed for field "FairnessReport.report_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GroupBy(); !ok {
		return &ValidationError{Name: "group_by", err: errors.New(`ent: missing required field "FairnessReport.group_by"`)}
	}
	if v, ok := _c.mutation.GroupBy(); ok {
		if err := fairnessreport.GroupByValidator(v); err != nil {
			return &ValidationError{Name: "group_by", err: fmt.Errorf(`ent: validator failed for field "FairnessReport.group_by": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "FairnessReport.topic"`)}
	}
	if _, ok := _c.mutation.MinSampleSize(); !ok {
		return &ValidationError{Name: "min_sample_size", err: errors.New(`ent: missing required field "FairnessReport.min_sample_size"`)}
	}
	if _, ok := _c.mutation.Metrics(); !ok {
		return &ValidationError{Name: "metrics", err: errors.New(`ent: missing required field "FairnessReport.metrics"`)}
	}
	if _, ok := _c.mutation.Notes(); !ok {
		return &ValidationError{Name: "notes", err: errors.New(`ent: missing required field "FairnessReport.notes"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FairnessReport.created_at"`)}
	}
	return nil
}

func (_c *FairnessReportCreate) sqlSave(ctx context.Context) (*FairnessReport, error) {
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

func (_c *FairnessReportCreate) createSpec() (*FairnessReport, *sqlgraph.CreateSpec) {
	var (
		_node = &FairnessReport{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(fairnessreport.Table, sqlgraph.NewFieldSpec(fairnessreport.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.ReportID(); ok {
		_spec.SetField(fairnessreport.FieldReportID, field.TypeString, value)
		_node.ReportID = value
	}
	if value, ok := _c.mutation.GroupBy(); ok {
		_spec.SetField(fairnessreport.FieldGroupBy, field.TypeString, value)
		_node.GroupBy = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(fairnessreport.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.WindowFrom(); ok {
		_spec.SetField(fairnessreport.FieldWindowFrom, field.TypeTime, value)
		_node.WindowFrom = &value
	}
	if value, ok := _c.mutation.WindowTo(); ok {
		_spec.SetField(fairnessreport.FieldWindowTo, field.TypeTime, value)
		_node.WindowTo = &value
	}
	if value, ok := _c.mutation.MinSampleSize(); ok {
		_spec.SetField(fairnessreport.FieldMinSampleSize, field.TypeInt, value)
		_node.MinSampleSize = value
	}
	if value, ok := _c.mutation.Metrics(); ok {
		_spec.SetField(fairnessreport.FieldMetrics, field.TypeJSON, value)
		_node.Metrics = value
	}
	if value, ok := _c.mutation.Interpretation(); ok {
		_spec.SetField(fairnessreport.FieldInterpretation, field.TypeJSON, value)
		_node.Interpretation = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(fairnessreport.FieldNotes, field.TypeString, value)
		_node.Notes = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(fairnessreport.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// FairnessReportCreateBulk is the builder for creating many FairnessReport entities in bulk.
type FairnessReportCreateBulk struct {
	config
	err      error
	builders []*FairnessReportCreate
}

// Save creates the FairnessReport entities in the database.
func (_c *FairnessReportCreateBulk) Save(ctx context.Context) ([]*FairnessReport, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FairnessReport, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FairnessReportMutation)
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
func (_c *FairnessReportCreateBulk) SaveX(ctx context.Context) []*FairnessReport {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FairnessReportCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FairnessReportCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
