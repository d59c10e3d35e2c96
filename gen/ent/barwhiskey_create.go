// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// BarWhiskeyCreate is the builder for creating a BarWhiskey entity.
type BarWhiskeyCreate struct {
	config
	mutation *BarWhiskeyMutation
	hooks    []Hook
}

// SetBarID sets the "bar_id" field.
func (_c *BarWhiskeyCreate) SetBarID(v uuid.UUID) *BarWhiskeyCreate {
	_c.mutation.SetBarID(v)
	return _c
}

// SetWhiskeyID sets the "whiskey_id" field.
func (_c *BarWhiskeyCreate) SetWhiskeyID(v uuid.UUID) *BarWhiskeyCreate {
	_c.mutation.SetWhiskeyID(v)
	return _c
}

// SetPrice sets the "price" field.
func (_c *BarWhiskeyCreate) SetPrice(v float64) *BarWhiskeyCreate {
	_c.mutation.SetPrice(v)
	return _c
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillablePrice(v *float64) *BarWhiskeyCreate {
	if v != nil {
		_c.SetPrice(*v)
	}
	return _c
}

// SetPourSize sets the "pour_size" field.
func (_c *BarWhiskeyCreate) SetPourSize(v string) *BarWhiskeyCreate {
	_c.mutation.SetPourSize(v)
	return _c
}

// SetNillablePourSize sets the "pour_size" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillablePourSize(v *string) *BarWhiskeyCreate {
	if v != nil {
		_c.SetPourSize(*v)
	}
	return _c
}

// SetAvailable sets the "available" field.
func (_c *BarWhiskeyCreate) SetAvailable(v bool) *BarWhiskeyCreate {
	_c.mutation.SetAvailable(v)
	return _c
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableAvailable(v *bool) *BarWhiskeyCreate {
	if v != nil {
		_c.SetAvailable(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *BarWhiskeyCreate) SetNotes(v string) *BarWhiskeyCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableNotes(v *string) *BarWhiskeyCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *BarWhiskeyCreate) SetSourceType(v string) *BarWhiskeyCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetLastVerified sets the "last_verified" field.
func (_c *BarWhiskeyCreate) SetLastVerified(v time.Time) *BarWhiskeyCreate {
	_c.mutation.SetLastVerified(v)
	return _c
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableLastVerified(v *time.Time) *BarWhiskeyCreate {
	if v != nil {
		_c.SetLastVerified(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BarWhiskeyCreate) SetCreatedAt(v time.Time) *BarWhiskeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableCreatedAt(v *time.Time) *BarWhiskeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BarWhiskeyCreate) SetUpdatedAt(v time.Time) *BarWhiskeyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableUpdatedAt(v *time.Time) *BarWhiskeyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BarWhiskeyCreate) SetID(v uuid.UUID) *BarWhiskeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BarWhiskeyCreate) SetNillableID(v *uuid.UUID) *BarWhiskeyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBar sets the "bar" edge to the Bar entity.
func (_c *BarWhiskeyCreate) SetBar(v *Bar) *BarWhiskeyCreate {
	return _c.SetBarID(v.ID)
}

// SetWhiskey sets the "whiskey" edge to the Whiskey entity.
func (_c *BarWhiskeyCreate) SetWhiskey(v *Whiskey) *BarWhiskeyCreate {
	return _c.SetWhiskeyID(v.ID)
}

// Mutation returns the BarWhiskeyMutation object of the builder.
func (_c *BarWhiskeyCreate) Mutation() *BarWhiskeyMutation {
	return _c.mutation
}

// Save creates the BarWhiskey in the database.
func (_c *BarWhiskeyCreate) Save(ctx context.Context) (*BarWhiskey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BarWhiskeyCreate) SaveX(ctx context.Context) *BarWhiskey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BarWhiskeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BarWhiskeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BarWhiskeyCreate) defaults() {
	if _, ok := _c.mutation.Available(); !ok {
		v := barwhiskey.DefaultAvailable
		_c.mutation.SetAvailable(v)
	}
	if _, ok := _c.mutation.LastVerified(); !ok {
		v := barwhiskey.DefaultLastVerified()
		_c.mutation.SetLastVerified(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := barwhiskey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := barwhiskey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := barwhiskey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BarWhiskeyCreate) check() error {
	if _, ok := _c.mutation.BarID(); !ok {
		return &ValidationError{Name: "bar_id", err: errors.New(`ent: missing required field "BarWhiskey.bar_id"`)}
	}
	if _, ok := _c.mutation.WhiskeyID(); !ok {
		return &ValidationError{Name: "whiskey_id", err: errors.New(`ent: missing required field "BarWhiskey.whiskey_id"`)}
	}
	if _, ok := _c.mutation.Available(); !ok {
		return &ValidationError{Name: "available", err: errors.New(`ent: missing required field "BarWhiskey.available"`)}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "BarWhiskey.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := barwhiskey.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "BarWhiskey.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastVerified(); !ok {
		return &ValidationError{Name: "last_verified", err: errors.New(`ent: missing required field "BarWhiskey.last_verified"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BarWhiskey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BarWhiskey.updated_at"`)}
	}
	if len(_c.mutation.BarIDs()) == 0 {
		return &ValidationError{Name: "bar", err: errors.New(`ent: missing required edge "BarWhiskey.bar"`)}
	}
	if len(_c.mutation.WhiskeyIDs()) == 0 {
		return &ValidationError{Name: "whiskey", err: errors.New(`ent: missing required edge "BarWhiskey.whiskey"`)}
	}
	return nil
}

func (_c *BarWhiskeyCreate) sqlSave(ctx context.Context) (*BarWhiskey, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BarWhiskeyCreate) createSpec() (*BarWhiskey, *sqlgraph.CreateSpec) {
	var (
		_node = &BarWhiskey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(barwhiskey.Table, sqlgraph.NewFieldSpec(barwhiskey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Price(); ok {
		_spec.SetField(barwhiskey.FieldPrice, field.TypeFloat64, value)
		_node.Price = &value
	}
	if value, ok := _c.mutation.PourSize(); ok {
		_spec.SetField(barwhiskey.FieldPourSize, field.TypeString, value)
		_node.PourSize = &value
	}
	if value, ok := _c.mutation.Available(); ok {
		_spec.SetField(barwhiskey.FieldAvailable, field.TypeBool, value)
		_node.Available = value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(barwhiskey.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(barwhiskey.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.LastVerified(); ok {
		_spec.SetField(barwhiskey.FieldLastVerified, field.TypeTime, value)
		_node.LastVerified = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(barwhiskey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(barwhiskey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BarIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   barwhiskey.BarTable,
			Columns: []string{barwhiskey.BarColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(bar.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.BarID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WhiskeyIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   barwhiskey.WhiskeyTable,
			Columns: []string{barwhiskey.WhiskeyColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(whiskey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.WhiskeyID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BarWhiskeyCreateBulk is the builder for creating many BarWhiskey entities in bulk.
type BarWhiskeyCreateBulk struct {
	config
	err      error
	builders []*BarWhiskeyCreate
}

// Save creates the BarWhiskey entities in the database.
func (_c *BarWhiskeyCreateBulk) Save(ctx context.Context) ([]*BarWhiskey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BarWhiskey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BarWhiskeyMutation)
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
func (_c *BarWhiskeyCreateBulk) SaveX(ctx context.Context) []*BarWhiskey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BarWhiskeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BarWhiskeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
