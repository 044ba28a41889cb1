// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// FairnessReportUpdate is the builder for updating FairnessReport entities.
type FairnessReportUpdate struct {
	config
	hooks    []Hook
	mutation *FairnessReportMutation
}

// Where appends a list predicates to the FairnessReportUpdate builder.
func (_u *FairnessReportUpdate) Where(ps ...predicate.FairnessReport) *FairnessReportUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the FairnessReportMutation object of the builder.
func (_u *FairnessReportUpdate) Mutation() *FairnessReportMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FairnessReportUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FairnessReportUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FairnessReportUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FairnessReportUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FairnessReportUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(fairnessreport.Table, fairnessreport.Columns, sqlgraph.NewFieldSpec(fairnessreport.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.WindowFromCleared() {
		_spec.ClearField(fairnessreport.FieldWindowFrom, field.TypeTime)
	}
	if _u.mutation.WindowToCleared() {
		_spec.ClearField(fairnessreport.FieldWindowTo, field.TypeTime)
	}
	if _u.mutation.InterpretationCleared() {
		_spec.ClearField(fairnessreport.FieldInterpretation, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fairnessreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FairnessReportUpdateOne is the builder for updating a single FairnessReport entity.
type FairnessReportUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FairnessReportMutation
}

// Mutation returns the FairnessReportMutation object of the builder.
func (_u *FairnessReportUpdateOne) Mutation() *FairnessReportMutation {
	return _u.mutation
}

// Where appends a list predicates to the FairnessReportUpdate builder.
func (_u *FairnessReportUpdateOne) Where(ps ...predicate.FairnessReport) *FairnessReportUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FairnessReportUpdateOne) Select(field string, fields ...string) *FairnessReportUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FairnessReport entity.
func (_u *FairnessReportUpdateOne) Save(ctx context.Context) (*FairnessReport, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FairnessReportUpdateOne) SaveX(ctx context.Context) *FairnessReport {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FairnessReportUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FairnessReportUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *FairnessReportUpdateOne) sqlSave(ctx context.Context) (_node *FairnessReport, err error) {
	_spec := sqlgraph.NewUpdateSpec(fairnessreport.Table, fairnessreport.Columns, sqlgraph.NewFieldSpec(fairnessreport.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FairnessReport.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, fairnessreport.FieldID)
		for _, f := range fields {
			if !fairnessreport.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != fairnessreport.FieldID {
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
	if _u.mutation.WindowFromCleared() {
		_spec.ClearField(fairnessreport.FieldWindowFrom, field.TypeTime)
	}
	if _u.mutation.WindowToCleared() {
		_spec.ClearField(fairnessreport.FieldWindowTo, field.TypeTime)
	}
	if _u.mutation.InterpretationCleared() {
		_spec.ClearField(fairnessreport.FieldInterpretation, field.TypeJSON)
	}
	_node = &FairnessReport{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{fairnessreport.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
