// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/google/uuid"
)

// TrawlJobCreate is the builder for creating a TrawlJob entity.
type TrawlJobCreate struct {
	config
	mutation *TrawlJobMutation
	hooks    []Hook
}

// SetBarID sets the "bar_id" field.
func (_c *TrawlJobCreate) SetBarID(v uuid.UUID) *TrawlJobCreate {
	_c.mutation.SetBarID(v)
	return _c
}

// SetSourceRef sets the "source_ref" field.
func (_c *TrawlJobCreate) SetSourceRef(v string) *TrawlJobCreate {
	_c.mutation.SetSourceRef(v)
	return _c
}

// SetSourceType sets the "source_type" field.
func (_c *TrawlJobCreate) SetSourceType(v string) *TrawlJobCreate {
	_c.mutation.SetSourceType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *TrawlJobCreate) SetStatus(v string) *TrawlJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableStatus(v *string) *TrawlJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetWhiskeyCount sets the "whiskey_count" field.
func (_c *TrawlJobCreate) SetWhiskeyCount(v int) *TrawlJobCreate {
	_c.mutation.SetWhiskeyCount(v)
	return _c
}

// SetNillableWhiskeyCount sets the "whiskey_count" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableWhiskeyCount(v *int) *TrawlJobCreate {
	if v != nil {
		_c.SetWhiskeyCount(*v)
	}
	return _c
}

// SetResult sets the "result" field.
func (_c *TrawlJobCreate) SetResult(v json.RawMessage) *TrawlJobCreate {
	_c.mutation.SetResult(v)
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *TrawlJobCreate) SetErrorMessage(v string) *TrawlJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableErrorMessage(v *string) *TrawlJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetSubmittedBy sets the "submitted_by" field.
func (_c *TrawlJobCreate) SetSubmittedBy(v string) *TrawlJobCreate {
	_c.mutation.SetSubmittedBy(v)
	return _c
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableSubmittedBy(v *string) *TrawlJobCreate {
	if v != nil {
		_c.SetSubmittedBy(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrawlJobCreate) SetCreatedAt(v time.Time) *TrawlJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableCreatedAt(v *time.Time) *TrawlJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TrawlJobCreate) SetUpdatedAt(v time.Time) *TrawlJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableUpdatedAt(v *time.Time) *TrawlJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TrawlJobCreate) SetID(v uuid.UUID) *TrawlJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *TrawlJobCreate) SetNillableID(v *uuid.UUID) *TrawlJobCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetBar sets the "bar" edge to the Bar entity.
func (_c *TrawlJobCreate) SetBar(v *Bar) *TrawlJobCreate {
	return _c.SetBarID(v.ID)
}

// Mutation returns the TrawlJobMutation object of the builder.
func (_c *TrawlJobCreate) Mutation() *TrawlJobMutation {
	return _c.mutation
}

// Save creates the TrawlJob in the database.
func (_c *TrawlJobCreate) Save(ctx context.Context) (*TrawlJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrawlJobCreate) SaveX(ctx context.Context) *TrawlJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrawlJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrawlJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrawlJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := trawljob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.WhiskeyCount(); !ok {
		v := trawljob.DefaultWhiskeyCount
		_c.mutation.SetWhiskeyCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trawljob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := trawljob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := trawljob.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrawlJobCreate) check() error {
	if _, ok := _c.mutation.BarID(); !ok {
		return &ValidationError{Name: "bar_id", err: errors.New(`ent: missing required field "TrawlJob.bar_id"`)}
	}
	if _, ok := _c.mutation.SourceRef(); !ok {
		return &ValidationError{Name: "source_ref", err: errors.New(`ent: missing required field "TrawlJob.source_ref"`)}
	}
	if v, ok := _c.mutation.SourceRef(); ok {
		if err := trawljob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_ref": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SourceType(); !ok {
		return &ValidationError{Name: "source_type", err: errors.New(`ent: missing required field "TrawlJob.source_type"`)}
	}
	if v, ok := _c.mutation.SourceType(); ok {
		if err := trawljob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "TrawlJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := trawljob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WhiskeyCount(); !ok {
		return &ValidationError{Name: "whiskey_count", err: errors.New(`ent: missing required field "TrawlJob.whiskey_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrawlJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TrawlJob.updated_at"`)}
	}
	if len(_c.mutation.BarIDs()) == 0 {
		return &ValidationError{Name: "bar", err: errors.New(`ent: missing required edge "TrawlJob.bar"`)}
	}
	return nil
}

func (_c *TrawlJobCreate) sqlSave(ctx context.Context) (*TrawlJob, error) {
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

func (_c *TrawlJobCreate) createSpec() (*TrawlJob, *sqlgraph.CreateSpec) {
	var (
		_node = &TrawlJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trawljob.Table, sqlgraph.NewFieldSpec(trawljob.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.SourceRef(); ok {
		_spec.SetField(trawljob.FieldSourceRef, field.TypeString, value)
		_node.SourceRef = value
	}
	if value, ok := _c.mutation.SourceType(); ok {
		_spec.SetField(trawljob.FieldSourceType, field.TypeString, value)
		_node.SourceType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(trawljob.FieldStatus, field.TypeString, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.WhiskeyCount(); ok {
		_spec.SetField(trawljob.FieldWhiskeyCount, field.TypeInt, value)
		_node.WhiskeyCount = value
	}
	if value, ok := _c.mutation.Result(); ok {
		_spec.SetField(trawljob.FieldResult, field.TypeJSON, value)
		_node.Result = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(trawljob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.SubmittedBy(); ok {
		_spec.SetField(trawljob.FieldSubmittedBy, field.TypeString, value)
		_node.SubmittedBy = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trawljob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(trawljob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.BarIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   trawljob.BarTable,
			Columns: []string{trawljob.BarColumn},
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
	return _node, _spec
}

// TrawlJobCreateBulk is the builder for creating many TrawlJob entities in bulk.
type TrawlJobCreateBulk struct {
	config
	err      error
	builders []*TrawlJobCreate
}

// Save creates the TrawlJob entities in the database.
func (_c *TrawlJobCreateBulk) Save(ctx context.Context) ([]*TrawlJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrawlJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrawlJobMutation)
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
func (_c *TrawlJobCreateBulk) SaveX(ctx context.Context) []*TrawlJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrawlJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrawlJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
