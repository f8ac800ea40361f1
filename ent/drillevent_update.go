// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/drillevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/predicate"
)

// DrillEventUpdate is the builder for updating DrillEvent entities.
type DrillEventUpdate struct {
	config
	hooks    []Hook
	mutation *DrillEventMutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdate) Where(ps ...predicate.DrillEvent) *DrillEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *DrillEventUpdate) SetProfileID(v string) *DrillEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableProfileID(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDrillKey sets the "drill_key" field.
func (_u *DrillEventUpdate) SetDrillKey(v string) *DrillEventUpdate {
	_u.mutation.SetDrillKey(v)
	return _u
}

// SetNillableDrillKey sets the "drill_key" field if the given value is not nil.
func (_u *DrillEventUpdate) SetNillableDrillKey(v *string) *DrillEventUpdate {
	if v != nil {
		_u.SetDrillKey(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdate) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DrillEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DrillEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := drillevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillKey(); ok {
		if err := drillevent.DrillKeyValidator(v); err != nil {
			return &ValidationError{Name: "drill_key", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(drillevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillKey(); ok {
		_spec.SetField(drillevent.FieldDrillKey, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DrillEventUpdateOne is the builder for updating a single DrillEvent entity.
type DrillEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DrillEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *DrillEventUpdateOne) SetProfileID(v string) *DrillEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableProfileID(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetDrillKey sets the "drill_key" field.
func (_u *DrillEventUpdateOne) SetDrillKey(v string) *DrillEventUpdateOne {
	_u.mutation.SetDrillKey(v)
	return _u
}

// SetNillableDrillKey sets the "drill_key" field if the given value is not nil.
func (_u *DrillEventUpdateOne) SetNillableDrillKey(v *string) *DrillEventUpdateOne {
	if v != nil {
		_u.SetDrillKey(*v)
	}
	return _u
}

// Mutation returns the DrillEventMutation object of the builder.
func (_u *DrillEventUpdateOne) Mutation() *DrillEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the DrillEventUpdate builder.
func (_u *DrillEventUpdateOne) Where(ps ...predicate.DrillEvent) *DrillEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DrillEventUpdateOne) Select(field string, fields ...string) *DrillEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DrillEvent entity.
func (_u *DrillEventUpdateOne) Save(ctx context.Context) (*DrillEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DrillEventUpdateOne) SaveX(ctx context.Context) *DrillEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DrillEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DrillEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DrillEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := drillevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DrillKey(); ok {
		if err := drillevent.DrillKeyValidator(v); err != nil {
			return &ValidationError{Name: "drill_key", err: fmt.Errorf(`ent: validator failed for field "DrillEvent.drill_key": %w`, err)}
		}
	}
	return nil
}

func (_u *DrillEventUpdateOne) sqlSave(ctx context.Context) (_node *DrillEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(drillevent.Table, drillevent.Columns, sqlgraph.NewFieldSpec(drillevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DrillEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, drillevent.FieldID)
		for _, f := range fields {
			if !drillevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != drillevent.FieldID {
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
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(drillevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.DrillKey(); ok {
		_spec.SetField(drillevent.FieldDrillKey, field.TypeString, value)
	}
	_node = &DrillEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{drillevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
