// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/practiceevent"
)

// PracticeEventCreate is the builder for creating a PracticeEvent entity.
type PracticeEventCreate struct {
	config
	mutation *PracticeEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *PracticeEventCreate) SetSequence(v int64) *PracticeEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *PracticeEventCreate) SetTimestamp(v time.Time) *PracticeEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *PracticeEventCreate) SetNillableTimestamp(v *time.Time) *PracticeEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetProfileID sets the "profile_id" field.
func (_c *PracticeEventCreate) SetProfileID(v string) *PracticeEventCreate {
	_c.mutation.SetProfileID(v)
	return _c
}

// SetTechniqueID sets the "technique_id" field.
func (_c *PracticeEventCreate) SetTechniqueID(v string) *PracticeEventCreate {
	_c.mutation.SetTechniqueID(v)
	return _c
}

// SetVariationID sets the "variation_id" field.
func (_c *PracticeEventCreate) SetVariationID(v string) *PracticeEventCreate {
	_c.mutation.SetVariationID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *PracticeEventCreate) SetKind(v practiceevent.Kind) *PracticeEventCreate {
	_c.mutation.SetKind(v)
	return _c
}

// Mutation returns the PracticeEventMutation object of the builder.
func (_c *PracticeEventCreate) Mutation() *PracticeEventMutation {
	return _c.mutation
}

// Save creates the PracticeEvent in the database.
func (_c *PracticeEventCreate) Save(ctx context.Context) (*PracticeEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PracticeEventCreate) SaveX(ctx context.Context) *PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PracticeEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := practiceevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PracticeEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "PracticeEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "PracticeEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.ProfileID(); !ok {
		return &ValidationError{Name: "profile_id", err: errors.New(`ent: missing required field "PracticeEvent.profile_id"`)}
	}
	if v, ok := _c.mutation.ProfileID(); ok {
		if err := practiceevent.ProfileIDValidator(v); err != nil {
			return &ValidationError{Name: "profile_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.profile_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TechniqueID(); !ok {
		return &ValidationError{Name: "technique_id", err: errors.New(`ent: missing required field "PracticeEvent.technique_id"`)}
	}
	if v, ok := _c.mutation.TechniqueID(); ok {
		if err := practiceevent.TechniqueIDValidator(v); err != nil {
			return &ValidationError{Name: "technique_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.technique_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.VariationID(); !ok {
		return &ValidationError{Name: "variation_id", err: errors.New(`ent: missing required field "PracticeEvent.variation_id"`)}
	}
	if v, ok := _c.mutation.VariationID(); ok {
		if err := practiceevent.VariationIDValidator(v); err != nil {
			return &ValidationError{Name: "variation_id", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.variation_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "PracticeEvent.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := practiceevent.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "PracticeEvent.kind": %w`, err)}
		}
	}
	return nil
}

func (_c *PracticeEventCreate) sqlSave(ctx context.Context) (*PracticeEvent, error) {
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

func (_c *PracticeEventCreate) createSpec() (*PracticeEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &PracticeEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(practiceevent.Table, sqlgraph.NewFieldSpec(practiceevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(practiceevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(practiceevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.ProfileID(); ok {
		_spec.SetField(practiceevent.FieldProfileID, field.TypeString, value)
		_node.ProfileID = value
	}
	if value, ok := _c.mutation.TechniqueID(); ok {
		_spec.SetField(practiceevent.FieldTechniqueID, field.TypeString, value)
		_node.TechniqueID = value
	}
	if value, ok := _c.mutation.VariationID(); ok {
		_spec.SetField(practiceevent.FieldVariationID, field.TypeString, value)
		_node.VariationID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(practiceevent.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	return _node, _spec
}

// PracticeEventCreateBulk is the builder for creating many PracticeEvent entities in bulk.
type PracticeEventCreateBulk struct {
	config
	err      error
	builders []*PracticeEventCreate
}

// Save creates the PracticeEvent entities in the database.
func (_c *PracticeEventCreateBulk) Save(ctx context.Context) ([]*PracticeEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PracticeEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PracticeEventMutation)
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
func (_c *PracticeEventCreateBulk) SaveX(ctx context.Context) []*PracticeEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PracticeEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PracticeEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
