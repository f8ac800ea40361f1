// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/practiceevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/predicate"
)

// PracticeEventUpdate is the builder for updating PracticeEvent entities.
type PracticeEventUpdate struct {
	config
	hooks    []Hook
	mutation *PracticeEventMutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdate) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProfileID sets the "profile_id" field.
func (_u *PracticeEventUpdate) SetProfileID(v string) *PracticeEventUpdate {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableProfileID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTechniqueID sets the "technique_id" field.
func (_u *PracticeEventUpdate) SetTechniqueID(v string) *PracticeEventUpdate {
	_u.mutation.SetTechniqueID(v)
	return _u
}

// SetNillableTechniqueID sets the "technique_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableTechniqueID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetTechniqueID(*v)
	}
	return _u
}

// SetVariationID sets the "variation_id" field.
func (_u *PracticeEventUpdate) SetVariationID(v string) *PracticeEventUpdate {
	_u.mutation.SetVariationID(v)
	return _u
}

// SetNillableVariationID sets the "variation_id" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableVariationID(v *string) *PracticeEventUpdate {
	if v != nil {
		_u.SetVariationID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PracticeEventUpdate) SetKind(v practiceevent.Kind) *PracticeEventUpdate {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PracticeEventUpdate) SetNillableKind(v *practiceevent.Kind) *PracticeEventUpdate {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdate) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PracticeEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PracticeEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdate) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TechniqueID(); ok {
		if err := practiceevent.TechniqueIDValidator(v); err != nil {
			return &ValidationError{Name: "technique_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.technique_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VariationID(); ok {
		if err := practiceevent.VariationIDValidator(v); err != nil {
			return &ValidationError{Name: "variation_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.variation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := practiceevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ProfileID(); ok {
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechniqueID(); ok {
		_spec.SetField(practiceevent.FieldTechniqueID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariationID(); ok {
		_spec.SetField(practiceevent.FieldVariationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(practiceevent.FieldKind, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PracticeEventUpdateOne is the builder for updating a single PracticeEvent entity.
type PracticeEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PracticeEventMutation
}

// SetProfileID sets the "profile_id" field.
func (_u *PracticeEventUpdateOne) SetProfileID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetProfileID(v)
	return _u
}

// SetNillableProfileID sets the "profile_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableProfileID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetProfileID(*v)
	}
	return _u
}

// SetTechniqueID sets the "technique_id" field.
func (_u *PracticeEventUpdateOne) SetTechniqueID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetTechniqueID(v)
	return _u
}

// SetNillableTechniqueID sets the "technique_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableTechniqueID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetTechniqueID(*v)
	}
	return _u
}

// SetVariationID sets the "variation_id" field.
func (_u *PracticeEventUpdateOne) SetVariationID(v string) *PracticeEventUpdateOne {
	_u.mutation.SetVariationID(v)
	return _u
}

// SetNillableVariationID sets the "variation_id" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableVariationID(v *string) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetVariationID(*v)
	}
	return _u
}

// SetKind sets the "kind" field.
func (_u *PracticeEventUpdateOne) SetKind(v practiceevent.Kind) *PracticeEventUpdateOne {
	_u.mutation.SetKind(v)
	return _u
}

// SetNillableKind sets the "kind" field if the given value is not nil.
func (_u *PracticeEventUpdateOne) SetNillableKind(v *practiceevent.Kind) *PracticeEventUpdateOne {
	if v != nil {
		_u.SetKind(*v)
	}
	return _u
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_u *PracticeEventUpdateOne) Mutation() *PracticeEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the PracticeEventUpdate builder.
func (_u *PracticeEventUpdateOne) Where(ps ...predicate.PracticeEvent) *PracticeEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PracticeEventUpdateOne) Select(field string, fields ...string) *PracticeEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PracticeEvent entity.
func (_u *PracticeEventUpdateOne) Save(ctx context.Context) (*PracticeEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) SaveX(ctx context.Context) *PracticeEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PracticeEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PracticeEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PracticeEventUpdateOne) check() error {
	if v, ok := _u.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TechniqueID(); ok {
		if err := practiceevent.TechniqueIDValidator(v); err != nil {
			return &ValidationError{Name: "technique_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.technique_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.VariationID(); ok {
		if err := practiceevent.VariationIDValidator(v); err != nil {
			return &ValidationError{Name: "variation_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.variation_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Kind(); ok {
		if err := practiceevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_u *PracticeEventUpdateOne) sqlSave(ctx context.Context) (_node *PracticeEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(practiceevent.Table, practiceevent.Columns, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PracticeEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, practiceevent.FieldID)
		for _, f := range fields {
			if !practiceevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != practiceevent.FieldID {
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
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TechniqueID(); ok {
		_spec.SetField(practiceevent.FieldTechniqueID, field.TypeString, value)
	}
	if value, ok := _u.mutation.VariationID(); ok {
		_spec.SetField(practiceevent.FieldVariationID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Kind(); ok {
		_spec.SetField(practiceevent.FieldKind, field.TypeEnum, value)
	}
	_node = &PracticeEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{practiceevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
