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
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// WhiskeyUpdate is the builder for updating Whiskey entities.
type WhiskeyUpdate struct {
	config
	hooks    []Hook
	mutation *WhiskeyMutation
}

// Where appends a list predicates to the WhiskeyUpdate builder.
func (_u *WhiskeyUpdate) Where(ps ...predicate.Whiskey) *WhiskeyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *WhiskeyUpdate) SetName(v string) *WhiskeyUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableName(v *string) *WhiskeyUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDistillery sets the "distillery" field.
func (_u *WhiskeyUpdate) SetDistillery(v string) *WhiskeyUpdate {
	_u.mutation.SetDistillery(v)
	return _u
}

// SetNillableDistillery sets the "distillery" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableDistillery(v *string) *WhiskeyUpdate {
	if v != nil {
		_u.SetDistillery(*v)
	}
	return _u
}

// ClearDistillery clears the value of the "distillery" field.
func (_u *WhiskeyUpdate) ClearDistillery() *WhiskeyUpdate {
	_u.mutation.ClearDistillery()
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *WhiskeyUpdate) SetNameKey(v string) *WhiskeyUpdate {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableNameKey(v *string) *WhiskeyUpdate {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetDistilleryKey sets the "distillery_key" field.
func (_u *WhiskeyUpdate) SetDistilleryKey(v string) *WhiskeyUpdate {
	_u.mutation.SetDistilleryKey(v)
	return _u
}

// SetNillableDistilleryKey sets the "distillery_key" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableDistilleryKey(v *string) *WhiskeyUpdate {
	if v != nil {
		_u.SetDistilleryKey(*v)
	}
	return _u
}

// SetSpiritType sets the "spirit_type" field.
func (_u *WhiskeyUpdate) SetSpiritType(v string) *WhiskeyUpdate {
	_u.mutation.SetSpiritType(v)
	return _u
}

// SetNillableSpiritType sets the "spirit_type" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableSpiritType(v *string) *WhiskeyUpdate {
	if v != nil {
		_u.SetSpiritType(*v)
	}
	return _u
}

// SetAgeYears sets the "age_years" field.
func (_u *WhiskeyUpdate) SetAgeYears(v int) *WhiskeyUpdate {
	_u.mutation.ResetAgeYears()
	_u.mutation.SetAgeYears(v)
	return _u
}

// SetNillableAgeYears sets the "age_years" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableAgeYears(v *int) *WhiskeyUpdate {
	if v != nil {
		_u.SetAgeYears(*v)
	}
	return _u
}

// AddAgeYears adds value to the "age_years" field.
func (_u *WhiskeyUpdate) AddAgeYears(v int) *WhiskeyUpdate {
	_u.mutation.AddAgeYears(v)
	return _u
}

// ClearAgeYears clears the value of the "age_years" field.
func (_u *WhiskeyUpdate) ClearAgeYears() *WhiskeyUpdate {
	_u.mutation.ClearAgeYears()
	return _u
}

// SetAbv sets the "abv" field.
func (_u *WhiskeyUpdate) SetAbv(v float64) *WhiskeyUpdate {
	_u.mutation.ResetAbv()
	_u.mutation.SetAbv(v)
	return _u
}

// SetNillableAbv sets the "abv" field if the given value is not nil.
func (_u *WhiskeyUpdate) SetNillableAbv(v *float64) *WhiskeyUpdate {
	if v != nil {
		_u.SetAbv(*v)
	}
	return _u
}

// AddAbv adds value to the "abv" field.
func (_u *WhiskeyUpdate) AddAbv(v float64) *WhiskeyUpdate {
	_u.mutation.AddAbv(v)
	return _u
}

// ClearAbv clears the value of the "abv" field.
func (_u *WhiskeyUpdate) ClearAbv() *WhiskeyUpdate {
	_u.mutation.ClearAbv()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhiskeyUpdate) SetUpdatedAt(v time.Time) *WhiskeyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_u *WhiskeyUpdate) AddListingIDs(ids ...uuid.UUID) *WhiskeyUpdate {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_u *WhiskeyUpdate) AddListings(v ...*BarWhiskey) *WhiskeyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the WhiskeyMutation object of the builder.
func (_u *WhiskeyUpdate) Mutation() *WhiskeyMutation {
	return _u.mutation
}

// ClearListings clears all "listings" edges to the BarWhiskey entity.
func (_u *WhiskeyUpdate) ClearListings() *WhiskeyUpdate {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to BarWhiskey entities by IDs.
func (_u *WhiskeyUpdate) RemoveListingIDs(ids ...uuid.UUID) *WhiskeyUpdate {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to BarWhiskey entities.
func (_u *WhiskeyUpdate) RemoveListings(v ...*BarWhiskey) *WhiskeyUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *WhiskeyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhiskeyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *WhiskeyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhiskeyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhiskeyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whiskey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhiskeyUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := whiskey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameKey(); ok {
		if err := whiskey.NameKeyValidator(v); err != nil {
			return &ValidationError{Name: "name_key", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpiritType(); ok {
		if err := whiskey.SpiritTypeValidator(v); err != nil {
			return &ValidationError{Name: "spirit_type", err: fmt.Errorf(`ent: validator failed for field "Whiskey.spirit_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WhiskeyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whiskey.Table, whiskey.Columns, sqlgraph.NewFieldSpec(whiskey.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(whiskey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distillery(); ok {
		_spec.SetField(whiskey.FieldDistillery, field.TypeString, value)
	}
	if _u.mutation.DistilleryCleared() {
		_spec.ClearField(whiskey.FieldDistillery, field.TypeString)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(whiskey.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistilleryKey(); ok {
		_spec.SetField(whiskey.FieldDistilleryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpiritType(); ok {
		_spec.SetField(whiskey.FieldSpiritType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeYears(); ok {
		_spec.SetField(whiskey.FieldAgeYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeYears(); ok {
		_spec.AddField(whiskey.FieldAgeYears, field.TypeInt, value)
	}
	if _u.mutation.AgeYearsCleared() {
		_spec.ClearField(whiskey.FieldAgeYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Abv(); ok {
		_spec.SetField(whiskey.FieldAbv, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbv(); ok {
		_spec.AddField(whiskey.FieldAbv, field.TypeFloat64, value)
	}
	if _u.mutation.AbvCleared() {
		_spec.ClearField(whiskey.FieldAbv, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whiskey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whiskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// WhiskeyUpdateOne is the builder for updating a single Whiskey entity.
type WhiskeyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *WhiskeyMutation
}

// SetName sets the "name" field.
func (_u *WhiskeyUpdateOne) SetName(v string) *WhiskeyUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableName(v *string) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDistillery sets the "distillery" field.
func (_u *WhiskeyUpdateOne) SetDistillery(v string) *WhiskeyUpdateOne {
	_u.mutation.SetDistillery(v)
	return _u
}

// SetNillableDistillery sets the "distillery" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableDistillery(v *string) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetDistillery(*v)
	}
	return _u
}

// ClearDistillery clears the value of the "distillery" field.
func (_u *WhiskeyUpdateOne) ClearDistillery() *WhiskeyUpdateOne {
	_u.mutation.ClearDistillery()
	return _u
}

// SetNameKey sets the "name_key" field.
func (_u *WhiskeyUpdateOne) SetNameKey(v string) *WhiskeyUpdateOne {
	_u.mutation.SetNameKey(v)
	return _u
}

// SetNillableNameKey sets the "name_key" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableNameKey(v *string) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetNameKey(*v)
	}
	return _u
}

// SetDistilleryKey sets the "distillery_key" field.
func (_u *WhiskeyUpdateOne) SetDistilleryKey(v string) *WhiskeyUpdateOne {
	_u.mutation.SetDistilleryKey(v)
	return _u
}

// SetNillableDistilleryKey sets the "distillery_key" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableDistilleryKey(v *string) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetDistilleryKey(*v)
	}
	return _u
}

// SetSpiritType sets the "spirit_type" field.
func (_u *WhiskeyUpdateOne) SetSpiritType(v string) *WhiskeyUpdateOne {
	_u.mutation.SetSpiritType(v)
	return _u
}

// SetNillableSpiritType sets the "spirit_type" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableSpiritType(v *string) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetSpiritType(*v)
	}
	return _u
}

// SetAgeYears sets the "age_years" field.
func (_u *WhiskeyUpdateOne) SetAgeYears(v int) *WhiskeyUpdateOne {
	_u.mutation.ResetAgeYears()
	_u.mutation.SetAgeYears(v)
	return _u
}

// SetNillableAgeYears sets the "age_years" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableAgeYears(v *int) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetAgeYears(*v)
	}
	return _u
}

// AddAgeYears adds value to the "age_years" field.
func (_u *WhiskeyUpdateOne) AddAgeYears(v int) *WhiskeyUpdateOne {
	_u.mutation.AddAgeYears(v)
	return _u
}

// ClearAgeYears clears the value of the "age_years" field.
func (_u *WhiskeyUpdateOne) ClearAgeYears() *WhiskeyUpdateOne {
	_u.mutation.ClearAgeYears()
	return _u
}

// SetAbv sets the "abv" field.
func (_u *WhiskeyUpdateOne) SetAbv(v float64) *WhiskeyUpdateOne {
	_u.mutation.ResetAbv()
	_u.mutation.SetAbv(v)
	return _u
}

// SetNillableAbv sets the "abv" field if the given value is not nil.
func (_u *WhiskeyUpdateOne) SetNillableAbv(v *float64) *WhiskeyUpdateOne {
	if v != nil {
		_u.SetAbv(*v)
	}
	return _u
}

// AddAbv adds value to the "abv" field.
func (_u *WhiskeyUpdateOne) AddAbv(v float64) *WhiskeyUpdateOne {
	_u.mutation.AddAbv(v)
	return _u
}

// ClearAbv clears the value of the "abv" field.
func (_u *WhiskeyUpdateOne) ClearAbv() *WhiskeyUpdateOne {
	_u.mutation.ClearAbv()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *WhiskeyUpdateOne) SetUpdatedAt(v time.Time) *WhiskeyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_u *WhiskeyUpdateOne) AddListingIDs(ids ...uuid.UUID) *WhiskeyUpdateOne {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_u *WhiskeyUpdateOne) AddListings(v ...*BarWhiskey) *WhiskeyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// Mutation returns the WhiskeyMutation object of the builder.
func (_u *WhiskeyUpdateOne) Mutation() *WhiskeyMutation {
	return _u.mutation
}

// ClearListings clears all "listings" edges to the BarWhiskey entity.
func (_u *WhiskeyUpdateOne) ClearListings() *WhiskeyUpdateOne {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to BarWhiskey entities by IDs.
func (_u *WhiskeyUpdateOne) RemoveListingIDs(ids ...uuid.UUID) *WhiskeyUpdateOne {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to BarWhiskey entities.
func (_u *WhiskeyUpdateOne) RemoveListings(v ...*BarWhiskey) *WhiskeyUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// Where appends a list predicates to the WhiskeyUpdate builder.
func (_u *WhiskeyUpdateOne) Where(ps ...predicate.Whiskey) *WhiskeyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *WhiskeyUpdateOne) Select(field string, fields ...string) *WhiskeyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Whiskey entity.
func (_u *WhiskeyUpdateOne) Save(ctx context.Context) (*Whiskey, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *WhiskeyUpdateOne) SaveX(ctx context.Context) *Whiskey {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *WhiskeyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *WhiskeyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *WhiskeyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := whiskey.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *WhiskeyUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := whiskey.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.NameKey(); ok {
		if err := whiskey.NameKeyValidator(v); err != nil {
			return &ValidationError{Name: "name_key", err: fmt.Errorf(`ent: validator failed for field "Whiskey.name_key": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SpiritType(); ok {
		if err := whiskey.SpiritTypeValidator(v); err != nil {
			return &ValidationError{Name: "spirit_type", err: fmt.Errorf(`ent: validator failed for field "Whiskey.spirit_type": %w`, err)}
		}
	}
	return nil
}

func (_u *WhiskeyUpdateOne) sqlSave(ctx context.Context) (_node *Whiskey, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(whiskey.Table, whiskey.Columns, sqlgraph.NewFieldSpec(whiskey.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Whiskey.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, whiskey.FieldID)
		for _, f := range fields {
			if !whiskey.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != whiskey.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(whiskey.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Distillery(); ok {
		_spec.SetField(whiskey.FieldDistillery, field.TypeString, value)
	}
	if _u.mutation.DistilleryCleared() {
		_spec.ClearField(whiskey.FieldDistillery, field.TypeString)
	}
	if value, ok := _u.mutation.NameKey(); ok {
		_spec.SetField(whiskey.FieldNameKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.DistilleryKey(); ok {
		_spec.SetField(whiskey.FieldDistilleryKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.SpiritType(); ok {
		_spec.SetField(whiskey.FieldSpiritType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AgeYears(); ok {
		_spec.SetField(whiskey.FieldAgeYears, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAgeYears(); ok {
		_spec.AddField(whiskey.FieldAgeYears, field.TypeInt, value)
	}
	if _u.mutation.AgeYearsCleared() {
		_spec.ClearField(whiskey.FieldAgeYears, field.TypeInt)
	}
	if value, ok := _u.mutation.Abv(); ok {
		_spec.SetField(whiskey.FieldAbv, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAbv(); ok {
		_spec.AddField(whiskey.FieldAbv, field.TypeFloat64, value)
	}
	if _u.mutation.AbvCleared() {
		_spec.ClearField(whiskey.FieldAbv, field.TypeFloat64)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(whiskey.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Whiskey{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{whiskey.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
