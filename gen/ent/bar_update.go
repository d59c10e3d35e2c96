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
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/google/uuid"
)

// BarUpdate is the builder for updating Bar entities.
type BarUpdate struct {
	config
	hooks    []Hook
	mutation *BarMutation
}

// Where appends a list predicates to the BarUpdate builder.
func (_u *BarUpdate) Where(ps ...predicate.Bar) *BarUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BarUpdate) SetName(v string) *BarUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BarUpdate) SetNillableName(v *string) *BarUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *BarUpdate) SetAddress(v string) *BarUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BarUpdate) SetNillableAddress(v *string) *BarUpdate {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BarUpdate) ClearAddress() *BarUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *BarUpdate) SetCity(v string) *BarUpdate {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BarUpdate) SetNillableCity(v *string) *BarUpdate {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *BarUpdate) ClearCity() *BarUpdate {
	_u.mutation.ClearCity()
	return _u
}

// SetWebsiteURL sets the "website_url" field.
func (_u *BarUpdate) SetWebsiteURL(v string) *BarUpdate {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *BarUpdate) SetNillableWebsiteURL(v *string) *BarUpdate {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *BarUpdate) ClearWebsiteURL() *BarUpdate {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BarUpdate) SetUpdatedAt(v time.Time) *BarUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_u *BarUpdate) AddListingIDs(ids ...uuid.UUID) *BarUpdate {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_u *BarUpdate) AddListings(v ...*BarWhiskey) *BarUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the TrawlJob entity by IDs.
func (_u *BarUpdate) AddJobIDs(ids ...uuid.UUID) *BarUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the TrawlJob entity.
func (_u *BarUpdate) AddJobs(v ...*TrawlJob) *BarUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BarMutation object of the builder.
func (_u *BarUpdate) Mutation() *BarMutation {
	return _u.mutation
}

// ClearListings clears all "listings" edges to the BarWhiskey entity.
func (_u *BarUpdate) ClearListings() *BarUpdate {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to BarWhiskey entities by IDs.
func (_u *BarUpdate) RemoveListingIDs(ids ...uuid.UUID) *BarUpdate {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to BarWhiskey entities.
func (_u *BarUpdate) RemoveListings(v ...*BarWhiskey) *BarUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the TrawlJob entity.
func (_u *BarUpdate) ClearJobs() *BarUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to TrawlJob entities by IDs.
func (_u *BarUpdate) RemoveJobIDs(ids ...uuid.UUID) *BarUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to TrawlJob entities.
func (_u *BarUpdate) RemoveJobs(v ...*TrawlJob) *BarUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BarUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BarUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BarUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BarUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BarUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BarUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := bar.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Bar.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BarUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bar.Table, bar.Columns, sqlgraph.NewFieldSpec(bar.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(bar.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(bar.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(bar.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(bar.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(bar.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(bar.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(bar.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BarUpdateOne is the builder for updating a single Bar entity.
type BarUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BarMutation
}

// SetName sets the "name" field.
func (_u *BarUpdateOne) SetName(v string) *BarUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BarUpdateOne) SetNillableName(v *string) *BarUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetAddress sets the "address" field.
func (_u *BarUpdateOne) SetAddress(v string) *BarUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// SetNillableAddress sets the "address" field if the given value is not nil.
func (_u *BarUpdateOne) SetNillableAddress(v *string) *BarUpdateOne {
	if v != nil {
		_u.SetAddress(*v)
	}
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *BarUpdateOne) ClearAddress() *BarUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetCity sets the "city" field.
func (_u *BarUpdateOne) SetCity(v string) *BarUpdateOne {
	_u.mutation.SetCity(v)
	return _u
}

// SetNillableCity sets the "city" field if the given value is not nil.
func (_u *BarUpdateOne) SetNillableCity(v *string) *BarUpdateOne {
	if v != nil {
		_u.SetCity(*v)
	}
	return _u
}

// ClearCity clears the value of the "city" field.
func (_u *BarUpdateOne) ClearCity() *BarUpdateOne {
	_u.mutation.ClearCity()
	return _u
}

// SetWebsiteURL sets the "website_url" field.
func (_u *BarUpdateOne) SetWebsiteURL(v string) *BarUpdateOne {
	_u.mutation.SetWebsiteURL(v)
	return _u
}

// SetNillableWebsiteURL sets the "website_url" field if the given value is not nil.
func (_u *BarUpdateOne) SetNillableWebsiteURL(v *string) *BarUpdateOne {
	if v != nil {
		_u.SetWebsiteURL(*v)
	}
	return _u
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (_u *BarUpdateOne) ClearWebsiteURL() *BarUpdateOne {
	_u.mutation.ClearWebsiteURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BarUpdateOne) SetUpdatedAt(v time.Time) *BarUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by IDs.
func (_u *BarUpdateOne) AddListingIDs(ids ...uuid.UUID) *BarUpdateOne {
	_u.mutation.AddListingIDs(ids...)
	return _u
}

// AddListings adds the "listings" edges to the BarWhiskey entity.
func (_u *BarUpdateOne) AddListings(v ...*BarWhiskey) *BarUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddListingIDs(ids...)
}

// AddJobIDs adds the "jobs" edge to the TrawlJob entity by IDs.
func (_u *BarUpdateOne) AddJobIDs(ids ...uuid.UUID) *BarUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the TrawlJob entity.
func (_u *BarUpdateOne) AddJobs(v ...*TrawlJob) *BarUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the BarMutation object of the builder.
func (_u *BarUpdateOne) Mutation() *BarMutation {
	return _u.mutation
}

// ClearListings clears all "listings" edges to the BarWhiskey entity.
func (_u *BarUpdateOne) ClearListings() *BarUpdateOne {
	_u.mutation.ClearListings()
	return _u
}

// RemoveListingIDs removes the "listings" edge to BarWhiskey entities by IDs.
func (_u *BarUpdateOne) RemoveListingIDs(ids ...uuid.UUID) *BarUpdateOne {
	_u.mutation.RemoveListingIDs(ids...)
	return _u
}

// RemoveListings removes "listings" edges to BarWhiskey entities.
func (_u *BarUpdateOne) RemoveListings(v ...*BarWhiskey) *BarUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveListingIDs(ids...)
}

// ClearJobs clears all "jobs" edges to the TrawlJob entity.
func (_u *BarUpdateOne) ClearJobs() *BarUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to TrawlJob entities by IDs.
func (_u *BarUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *BarUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to TrawlJob entities.
func (_u *BarUpdateOne) RemoveJobs(v ...*TrawlJob) *BarUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the BarUpdate builder.
func (_u *BarUpdateOne) Where(ps ...predicate.Bar) *BarUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BarUpdateOne) Select(field string, fields ...string) *BarUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Bar entity.
func (_u *BarUpdateOne) Save(ctx context.Context) (*Bar, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BarUpdateOne) SaveX(ctx context.Context) *Bar {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BarUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BarUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BarUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := bar.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BarUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := bar.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Bar.name": %w`, err)}
		}
	}
	return nil
}

func (_u *BarUpdateOne) sqlSave(ctx context.Context) (_node *Bar, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bar.Table, bar.Columns, sqlgraph.NewFieldSpec(bar.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Bar.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bar.FieldID)
		for _, f := range fields {
			if !bar.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bar.FieldID {
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
		_spec.SetField(bar.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(bar.FieldAddress, field.TypeString, value)
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(bar.FieldAddress, field.TypeString)
	}
	if value, ok := _u.mutation.City(); ok {
		_spec.SetField(bar.FieldCity, field.TypeString, value)
	}
	if _u.mutation.CityCleared() {
		_spec.ClearField(bar.FieldCity, field.TypeString)
	}
	if value, ok := _u.mutation.WebsiteURL(); ok {
		_spec.SetField(bar.FieldWebsiteURL, field.TypeString, value)
	}
	if _u.mutation.WebsiteURLCleared() {
		_spec.ClearField(bar.FieldWebsiteURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(bar.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedListingsIDs(); len(nodes) > 0 && !_u.mutation.ListingsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ListingsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Bar{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bar.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
