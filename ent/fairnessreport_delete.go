// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/metamind-labs/metamind/ent/fairnessreport"
	"github.com/metamind-labs/metamind/ent/predicate"
)

// FairnessReportDelete is the builder for deleting a FairnessReport entity.
type FairnessReportDelete struct {
	config
	hooks    []Hook
	mutation *FairnessReportMutation
}

// Where appends a list predicates to the FairnessReportDelete builder.
func (_d *FairnessReportDelete) Where(ps ...predicate.FairnessReport) *FairnessReportDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *FairnessReportDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FairnessReportDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *FairnessReportDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(fairnessreport.Table, sqlgraph.NewFieldSpec(fairnessreport.FieldID, field.TypeInt))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// FairnessReportDeleteOne is the builder for deleting a single FairnessReport entity.
type FairnessReportDeleteOne struct {
	_d *FairnessReportDelete
}

// Where appends a list predicates to the FairnessReportDelete builder.
func (_d *FairnessReportDeleteOne) Where(ps ...predicate.FairnessReport) *FairnessReportDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *FairnessReportDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{fairnessreport.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *FairnessReportDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
