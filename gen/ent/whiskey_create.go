// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// WhiskeyCreate is the builder for creating a Whiskey entity.
type WhiskeyCreate struct {
	config
	mutation *WhiskeyMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *WhiskeyCreate) SetName(v string) *WhiskeyCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDistillery sets the "distillery" field.
func (_c *WhiskeyCreate) SetDistillery(v string) *WhiskeyCreate {
	_c.mutation.SetDistillery(v)
	return _c
}

// SetNillableDistillery sets the "distillery" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableDistillery(v *string) *WhiskeyCreate {
	if v != nil {
		_c.SetDistillery(*v)
	}
	return _c
}

// SetNameKey sets the "name_key" field.
func (_c *WhiskeyCreate) SetNameKey(v string) *WhiskeyCreate {
	_c.mutation.SetNameKey(v)
	return _c
}

// SetDistilleryKey sets the "distillery_key" field.
func (_c *WhiskeyCreate) SetDistilleryKey(v string) *WhiskeyCreate {
	_c.mutation.SetDistilleryKey(v)
	return _c
}

// SetNillableDistilleryKey sets the "distillery_key" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableDistilleryKey(v *string) *WhiskeyCreate {
	if v != nil {
		_c.SetDistilleryKey(*v)
	}
	return _c
}

// SetSpiritType sets the "spirit_type" field.
func (_c *WhiskeyCreate) SetSpiritType(v string) *WhiskeyCreate {
	_c.mutation.SetSpiritType(v)
	return _c
}

// SetNillableSpiritType sets the "spirit_type" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableSpiritType(v *string) *WhiskeyCreate {
	if v != nil {
		_c.SetSpiritType(*v)
	}
	return _c
}

// SetAgeYears sets the "age_years" field.
func (_c *WhiskeyCreate) SetAgeYears(v int) *WhiskeyCreate {
	_c.mutation.SetAgeYears(v)
	return _c
}

// SetNillableAgeYears sets the "age_years" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableAgeYears(v *int) *WhiskeyCreate {
	if v != nil {
		_c.SetAgeYears(*v)
	}
	return _c
}

// SetAbv sets the "abv" field.
func (_c *WhiskeyCreate) SetAbv(v float64) *WhiskeyCreate {
	_c.mutation.SetAbv(v)
	return _c
}

// SetNillableAbv sets the "abv" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableAbv(v *float64) *WhiskeyCreate {
	if v != nil {
		_c.SetAbv(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *WhiskeyCreate) SetCreatedAt(v time.Time) *WhiskeyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableCreatedAt(v *time.Time) *WhiskeyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *WhiskeyCreate) SetUpdatedAt(v time.Time) *WhiskeyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableUpdatedAt(v *time.Time) *WhiskeyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *WhiskeyCreate) SetID(v uuid.UUID) *WhiskeyCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *WhiskeyCreate) SetNillableID(v *uuid.UUID) *WhiskeyCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_c *WhiskeyCreate) AddListingIDs(ids ...uuid.UUID) *WhiskeyCreate {
	_c.mutation.AddListingIDs(ids...)
	return _c
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_c *WhiskeyCreate) AddListings(v ...*BarWhiskey) *WhiskeyCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddListingIDs(ids...)
}

// Mutation returns the WhiskeyMutation object of the builder.
func (_c *WhiskeyCreate) Mutation() *WhiskeyMutation {
	return _c.mutation
}

// Save creates the Whiskey in the database.
func (_c *WhiskeyCreate) Save(ctx context.Context) (*Whiskey, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *WhiskeyCreate) SaveX(ctx context.Context) *Whiskey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhiskeyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhiskeyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *WhiskeyCreate) defaults() {
	if _, ok := _c.mutation.DistilleryKey(); !ok {
		v := whiskey.DefaultDistilleryKey
		_c.mutation.SetDistilleryKey(v)
	}
	if _, ok := _c.mutation.SpiritType(); !ok {
		v := whiskey.DefaultSpiritType
		_c.mutation.SetSpiritType(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := whiskey.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := whiskey.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := whiskey.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *WhiskeyCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Whiskey.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := whiskey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.NameKey(); !ok {
		return &ValidationError{Name: "name_key", err: errors.New(`ent: missing required field "Whiskey.name_key"`)}
	}
	if v, ok := _c.mutation.NameKey(); ok {
		if err := whiskey.NameKeyValidator(v); err != nil {
			return &ValidationError{Name: "name_key", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name_key": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DistilleryKey(); !ok {
		return &ValidationError{Name: "distillery_key", err: errors.New(`ent: missing required field "Whiskey.distillery_key"`)}
	}
	if _, ok := _c.mutation.SpiritType(); !ok {
		return &ValidationError{Name: "spirit_type", err: errors.New(`ent: missing required field "Whiskey.spirit_type"`)}
	}
	if v, ok := _c.mutation.SpiritType(); ok {
		if err := whiskey.SpiritTypeValidator(v); err != nil {
			return &ValidationError{Name: "spirit_type", err: fmt.Errorf(`ent: validator failed for field "Whiskey.spirit_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Whiskey.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Whiskey.updated_at"`)}
	}
	return nil
}

func (_c *WhiskeyCreate) sqlSave(ctx context.Context) (*Whiskey, error) {
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

func (_c *WhiskeyCreate) createSpec() (*Whiskey, *sqlgraph.CreateSpec) {
	var (
		_node = &Whiskey{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(whiskey.Table, sqlgraph.NewFieldSpec(whiskey.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(whiskey.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Distillery(); ok {
		_spec.SetField(whiskey.FieldDistillery, field.TypeString, value)
		_node.Distillery = &value
	}
	if value, ok := _c.mutation.NameKey(); ok {
		_spec.SetField(whiskey.FieldNameKey, field.TypeString, value)
		_node.NameKey = value
	}
	if value, ok := _c.mutation.DistilleryKey(); ok {
		_spec.SetField(whiskey.FieldDistilleryKey, field.TypeString, value)
		_node.DistilleryKey = value
	}
	if value, ok := _c.mutation.SpiritType(); ok {
		_spec.SetField(whiskey.FieldSpiritType, field.TypeString, value)
		_node.SpiritType = value
	}
	if value, ok := _c.mutation.AgeYears(); ok {
		_spec.SetField(whiskey.FieldAgeYears, field.TypeInt, value)
		_node.AgeYears = &value
	}
	if value, ok := _c.mutation.Abv(); ok {
		_spec.SetField(whiskey.FieldAbv, field.TypeFloat64, value)
		_node.Abv = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(whiskey.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(whiskey.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ListingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   whiskey.ListingsTable,
			Columns: []string{whiskey.ListingsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(barwhiskey.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// WhiskeyCreateBulk is the builder for creating many Whiskey entities in bulk.
type WhiskeyCreateBulk struct {
	config
	err      error
	builders []*WhiskeyCreate
}

// Save creates the Whiskey entities in the database.
func (_c *WhiskeyCreateBulk) Save(ctx context.Context) ([]*Whiskey, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Whiskey, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*WhiskeyMutation)
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
func (_c *WhiskeyCreateBulk) SaveX(ctx context.Context) []*Whiskey {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *WhiskeyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *WhiskeyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
