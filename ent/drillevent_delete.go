// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/drillevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/predicate"
)

// DrillEventDelete is the builder for deleting a DrillEvent entity.
type DrillEventDelete struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventDelete builder.
func (_d *DrillEventDelete) Where(ps ...predicate.DrillEvent) *DrillEventDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DrillEventDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillEventDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DrillEventDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(drillevent.Table, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
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

// DrillEventDeleteOne is the builder for deleting a single DrillEvent entity.
type DrillEventDeleteOne struct {
	_d *DrillEventDelete
}

// Where appends a list predicates to the DrillEventDelete builder.
func (_d *DrillEventDeleteOne) Where(ps ...predicate.DrillEvent) *DrillEventDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DrillEventDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{drillevent.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DrillEventDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
