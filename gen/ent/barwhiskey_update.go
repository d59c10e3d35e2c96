// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// BarWhiskeyUpdate is the builder for updating BarWhiskey entities.
type BarWhiskeyUpdate struct {
	config
	hooks    []Hook
	mutation *BarWhiskeyMutation
}

// Where appends a list predicates to the BarWhiskeyUpdate builder.
func (_u *BarWhiskeyUpdate) Where(ps ...predicate.BarWhiskey) *BarWhiskeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBarID sets the "bar_id" field.
func (_u *BarWhiskeyUpdate) SetBarID(v uuid.UUID) *BarWhiskeyUpdate {
	_u.mutation.SetBarID(v)
	return _u
}

// SetNillableBarID sets the "bar_id" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableBarID(v *uuid.UUID) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetBarID(*v)
	}
	return _u
}

// SetWhiskeyID sets the "whiskey_id" field.
func (_u *BarWhiskeyUpdate) SetWhiskeyID(v uuid.UUID) *BarWhiskeyUpdate {
	_u.mutation.SetWhiskeyID(v)
	return _u
}

// SetNillableWhiskeyID sets the "whiskey_id" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableWhiskeyID(v *uuid.UUID) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetWhiskeyID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BarWhiskeyUpdate) SetPrice(v float64) *BarWhiskeyUpdate {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillablePrice(v *float64) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BarWhiskeyUpdate) AddPrice(v float64) *BarWhiskeyUpdate {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *BarWhiskeyUpdate) ClearPrice() *BarWhiskeyUpdate {
	_u.mutation.ClearPrice()
	return _u
}

// SetPourSize sets the "pour_size" field.
func (_u *BarWhiskeyUpdate) SetPourSize(v string) *BarWhiskeyUpdate {
	_u.mutation.SetPourSize(v)
	return _u
}

// SetNillablePourSize sets the "pour_size" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillablePourSize(v *string) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetPourSize(*v)
	}
	return _u
}

// ClearPourSize clears the value of the "pour_size" field.
func (_u *BarWhiskeyUpdate) ClearPourSize() *BarWhiskeyUpdate {
	_u.mutation.ClearPourSize()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *BarWhiskeyUpdate) SetAvailable(v bool) *BarWhiskeyUpdate {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableAvailable(v *bool) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BarWhiskeyUpdate) SetNotes(v string) *BarWhiskeyUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableNotes(v *string) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BarWhiskeyUpdate) ClearNotes() *BarWhiskeyUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *BarWhiskeyUpdate) SetSourceType(v string) *BarWhiskeyUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableSourceType(v *string) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLastVerified sets the "last_verified" field.
func (_u *BarWhiskeyUpdate) SetLastVerified(v time.Time) *BarWhiskeyUpdate {
	_u.mutation.SetLastVerified(v)
	return _u
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_u *BarWhiskeyUpdate) SetNillableLastVerified(v *time.Time) *BarWhiskeyUpdate {
	if v != nil {
		_u.SetLastVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BarWhiskeyUpdate) SetUpdatedAt(v time.Time) *BarWhiskeyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBar sets the "bar" edge to the Bar entity.
func (_u *BarWhiskeyUpdate) SetBar(v *Bar) *BarWhiskeyUpdate {
	return _u.SetBarID(v.ID)
}

// SetWhiskey sets the "whiskey" edge to the Whiskey entity.
func (_u *BarWhiskeyUpdate) SetWhiskey(v *Whiskey) *BarWhiskeyUpdate {
	return _u.SetWhiskeyID(v.ID)
}

// Mutation returns the BarWhiskeyMutation object of the builder.
func (_u *BarWhiskeyUpdate) Mutation() *BarWhiskeyMutation {
	return _u.mutation
}

// ClearBar clears the "bar" edge to the Bar entity.
func (_u *BarWhiskeyUpdate) ClearBar() *BarWhiskeyUpdate {
	_u.mutation.ClearBar()
	return _u
}

// ClearWhiskey clears the "whiskey" edge to the Whiskey entity.
func (_u *BarWhiskeyUpdate) ClearWhiskey() *BarWhiskeyUpdate {
	_u.mutation.ClearWhiskey()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BarWhiskeyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BarWhiskeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BarWhiskeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BarWhiskeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BarWhiskeyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := barwhiskey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BarWhiskeyUpdate) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := barwhiskey.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "BarWhiskey.source_type": %w`, err)}
		}
	}
	if _u.mutation.BarCleared() && len(_u.mutation.BarIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BarWhiskey.bar"`)
	}
	if _u.mutation.WhiskeyCleared() && len(_u.mutation.WhiskeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BarWhiskey.whiskey"`)
	}
	return nil
}

func (_u *BarWhiskeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(barwhiskey.Table, barwhiskey.Columns, sqlgraph.NewFieldSpec(barwhiskey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(barwhiskey.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(barwhiskey.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(barwhiskey.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PourSize(); ok {
		_spec.SetField(barwhiskey.FieldPourSize, field.TypeString, value)
	}
	if _u.mutation.PourSizeCleared() {
		_spec.ClearField(barwhiskey.FieldPourSize, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(barwhiskey.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(barwhiskey.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(barwhiskey.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(barwhiskey.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastVerified(); ok {
		_spec.SetField(barwhiskey.FieldLastVerified, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(barwhiskey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BarCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BarIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhiskeyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhiskeyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{barwhiskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BarWhiskeyUpdateOne is the builder for updating a single BarWhiskey entity.
type BarWhiskeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BarWhiskeyMutation
}

// SetBarID sets the "bar_id" field.
func (_u *BarWhiskeyUpdateOne) SetBarID(v uuid.UUID) *BarWhiskeyUpdateOne {
	_u.mutation.SetBarID(v)
	return _u
}

// SetNillableBarID sets the "bar_id" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableBarID(v *uuid.UUID) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetBarID(*v)
	}
	return _u
}

// SetWhiskeyID sets the "whiskey_id" field.
func (_u *BarWhiskeyUpdateOne) SetWhiskeyID(v uuid.UUID) *BarWhiskeyUpdateOne {
	_u.mutation.SetWhiskeyID(v)
	return _u
}

// SetNillableWhiskeyID sets the "whiskey_id" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableWhiskeyID(v *uuid.UUID) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetWhiskeyID(*v)
	}
	return _u
}

// SetPrice sets the "price" field.
func (_u *BarWhiskeyUpdateOne) SetPrice(v float64) *BarWhiskeyUpdateOne {
	_u.mutation.ResetPrice()
	_u.mutation.SetPrice(v)
	return _u
}

// SetNillablePrice sets the "price" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillablePrice(v *float64) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetPrice(*v)
	}
	return _u
}

// AddPrice adds value to the "price" field.
func (_u *BarWhiskeyUpdateOne) AddPrice(v float64) *BarWhiskeyUpdateOne {
	_u.mutation.AddPrice(v)
	return _u
}

// ClearPrice clears the value of the "price" field.
func (_u *BarWhiskeyUpdateOne) ClearPrice() *BarWhiskeyUpdateOne {
	_u.mutation.ClearPrice()
	return _u
}

// SetPourSize sets the "pour_size" field.
func (_u *BarWhiskeyUpdateOne) SetPourSize(v string) *BarWhiskeyUpdateOne {
	_u.mutation.SetPourSize(v)
	return _u
}

// SetNillablePourSize sets the "pour_size" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillablePourSize(v *string) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetPourSize(*v)
	}
	return _u
}

// ClearPourSize clears the value of the "pour_size" field.
func (_u *BarWhiskeyUpdateOne) ClearPourSize() *BarWhiskeyUpdateOne {
	_u.mutation.ClearPourSize()
	return _u
}

// SetAvailable sets the "available" field.
func (_u *BarWhiskeyUpdateOne) SetAvailable(v bool) *BarWhiskeyUpdateOne {
	_u.mutation.SetAvailable(v)
	return _u
}

// SetNillableAvailable sets the "available" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableAvailable(v *bool) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetAvailable(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *BarWhiskeyUpdateOne) SetNotes(v string) *BarWhiskeyUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableNotes(v *string) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *BarWhiskeyUpdateOne) ClearNotes() *BarWhiskeyUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *BarWhiskeyUpdateOne) SetSourceType(v string) *BarWhiskeyUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableSourceType(v *string) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetLastVerified sets the "last_verified" field.
func (_u *BarWhiskeyUpdateOne) SetLastVerified(v time.Time) *BarWhiskeyUpdateOne {
	_u.mutation.SetLastVerified(v)
	return _u
}

// SetNillableLastVerified sets the "last_verified" field if the given value is not nil.
func (_u *BarWhiskeyUpdateOne) SetNillableLastVerified(v *time.Time) *BarWhiskeyUpdateOne {
	if v != nil {
		_u.SetLastVerified(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BarWhiskeyUpdateOne) SetUpdatedAt(v time.Time) *BarWhiskeyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBar sets the "bar" edge to the Bar entity.
func (_u *BarWhiskeyUpdateOne) SetBar(v *Bar) *BarWhiskeyUpdateOne {
	return _u.SetBarID(v.ID)
}

// SetWhiskey sets the "whiskey" edge to the Whiskey entity.
func (_u *BarWhiskeyUpdateOne) SetWhiskey(v *Whiskey) *BarWhiskeyUpdateOne {
	return _u.SetWhiskeyID(v.ID)
}

// Mutation returns the BarWhiskeyMutation object of the builder.
func (_u *BarWhiskeyUpdateOne) Mutation() *BarWhiskeyMutation {
	return _u.mutation
}

// ClearBar clears the "bar" edge to the Bar entity.
func (_u *BarWhiskeyUpdateOne) ClearBar() *BarWhiskeyUpdateOne {
	_u.mutation.ClearBar()
	return _u
}

// ClearWhiskey clears the "whiskey" edge to the Whiskey entity.
func (_u *BarWhiskeyUpdateOne) ClearWhiskey() *BarWhiskeyUpdateOne {
	_u.mutation.ClearWhiskey()
	return _u
}

// Where appends a list predicates to the BarWhiskeyUpdate builder.
func (_u *BarWhiskeyUpdateOne) Where(ps ...predicate.BarWhiskey) *BarWhiskeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BarWhiskeyUpdateOne) Select(field string, fields ...string) *BarWhiskeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BarWhiskey entity.
func (_u *BarWhiskeyUpdateOne) Save(ctx context.Context) (*BarWhiskey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BarWhiskeyUpdateOne) SaveX(ctx context.Context) *BarWhiskey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BarWhiskeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BarWhiskeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BarWhiskeyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := barwhiskey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BarWhiskeyUpdateOne) check() error {
	if v, ok := _u.mutation.SourceType(); ok {
		if err := barwhiskey.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "BarWhiskey.source_type": %w`, err)}
		}
	}
	if _u.mutation.BarCleared() && len(_u.mutation.BarIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BarWhiskey.bar"`)
	}
	if _u.mutation.WhiskeyCleared() && len(_u.mutation.WhiskeyIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "BarWhiskey.whiskey"`)
	}
	return nil
}

func (_u *BarWhiskeyUpdateOne) sqlSave(ctx context.Context) (_node *BarWhiskey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(barwhiskey.Table, barwhiskey.Columns, sqlgraph.NewFieldSpec(barwhiskey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BarWhiskey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, barwhiskey.FieldID)
		for _, f := range fields {
			if !barwhiskey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != barwhiskey.FieldID {
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
	if value, ok := _u.mutation.Price(); ok {
		_spec.SetField(barwhiskey.FieldPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPrice(); ok {
		_spec.AddField(barwhiskey.FieldPrice, field.TypeFloat64, value)
	}
	if _u.mutation.PriceCleared() {
		_spec.ClearField(barwhiskey.FieldPrice, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PourSize(); ok {
		_spec.SetField(barwhiskey.FieldPourSize, field.TypeString, value)
	}
	if _u.mutation.PourSizeCleared() {
		_spec.ClearField(barwhiskey.FieldPourSize, field.TypeString)
	}
	if value, ok := _u.mutation.Available(); ok {
		_spec.SetField(barwhiskey.FieldAvailable, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(barwhiskey.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(barwhiskey.FieldNotes, field.TypeString)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(barwhiskey.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.LastVerified(); ok {
		_spec.SetField(barwhiskey.FieldLastVerified, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(barwhiskey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BarCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BarIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.WhiskeyCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WhiskeyIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &BarWhiskey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{barwhiskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
