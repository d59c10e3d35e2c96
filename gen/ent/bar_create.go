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
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/google/uuid"
)

// BarCreate is the builder for creating a Bar entity.
type BarCreate struct {
	config
	mutation *BarMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *BarCreate) SetName(v string) *BarCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetAddress sets the "address" field.
func (_c *BarCreate) SetAddress(v string) *BarCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_c *BarCreate) SetNillableAddress(v *string) *BarCreate {
	if v != nil {
		_c.SetAddress(*v)
	}
	return _c
}

// SetCity sets the "city" field.
func (_c *BarCreate) SetCity(v string) *BarCreate {
	_c.mutation.SetCity(v)
	return _c
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_c *BarCreate) SetNillableCity(v *string) *BarCreate {
	if v != nil {
		_c.SetCity(*v)
	}
	return _c
}

// SetWebsiteURL sets the "website_url" field.
func (_c *BarCreate) SetWebsiteURL(v string) *BarCreate {
	_c.mutation.SetWebsiteURL(v)
	return _c
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_c *BarCreate) SetNillableWebsiteURL(v *string) *BarCreate {
	if v != nil {
		_c.SetWebsiteURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BarCreate) SetCreatedAt(v time.Time) *BarCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BarCreate) SetNillableCreatedAt(v *time.Time) *BarCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BarCreate) SetUpdatedAt(v time.Time) *BarCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BarCreate) SetNillableUpdatedAt(v *time.Time) *BarCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BarCreate) SetID(v uuid.UUID) *BarCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BarCreate) SetNillableID(v *uuid.UUID) *BarCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_c *BarCreate) AddListingIDs(ids ...uuid.UUID) *BarCreate {
	_c.mutation.AddListingIDs(ids...)
	return _c
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_c *BarCreate) AddListings(v ...*BarWhiskey) *BarCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddListingIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the TrawlJob entity by IDs.
func (_c *BarCreate) AddJobIDs(ids ...uuid.UUID) *BarCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the TrawlJob entity.
func (_c *BarCreate) AddJobs(v ...*TrawlJob) *BarCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the BarMutation object of the builder.
func (_c *BarCreate) Mutation() *BarMutation {
	return _c.mutation
}

// Save creates the Bar in the database.
func (_c *BarCreate) Save(ctx context.Context) (*Bar, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BarCreate) SaveX(ctx context.Context) *Bar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BarCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BarCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BarCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bar.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := bar.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := bar.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BarCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Bar.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := bar.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Bar.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Bar.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Bar.updated_at"`)}
	}
	return nil
}

func (_c *BarCreate) sqlSave(ctx context.Context) (*Bar, error) {
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

func (_c *BarCreate) createSpec() (*Bar, *sqlgraph.CreateSpec) {
	var (
		_node = &Bar{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bar.Table, sqlgraph.NewFieldSpec(bar.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(bar.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(bar.FieldAddress, field.TypeString, value)
		_node.Address = &value
	}
	if value, ok := _c.mutation.City(); ok {
		_spec.SetField(bar.FieldCity, field.TypeString, value)
		_node.City = &value
	}
	if value, ok := _c.mutation.WebsiteURL(); ok {
		_spec.SetField(bar.FieldWebsiteURL, field.TypeString, value)
		_node.WebsiteURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bar.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(bar.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.ListingsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bar.ListingsTable,
			Columns: []string{bar.ListingsColumn},
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
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   bar.JobsTable,
			Columns: []string{bar.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(trawljob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BarCreateBulk is the builder for creating many Bar entities in bulk.
type BarCreateBulk struct {
	config
	err      error
	builders []*BarCreate
}

// Save creates the Bar entities in the database.
func (_c *BarCreateBulk) Save(ctx context.Context) ([]*Bar, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Bar, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BarMutation)
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
func (_c *BarCreateBulk) SaveX(ctx context.Context) []*Bar {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BarCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BarCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
