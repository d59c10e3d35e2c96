// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/google/uuid"
)

// TrawlJobUpdate is the builder for updating TrawlJob entities.
type TrawlJobUpdate struct {
	config
	hooks    []Hook
	mutation *TrawlJobMutation
}

// Where appends a list predicates to the TrawlJobUpdate builder.
func (_u *TrawlJobUpdate) Where(ps ...predicate.TrawlJob) *TrawlJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBarID sets the "bar_id" field.
func (_u *TrawlJobUpdate) SetBarID(v uuid.UUID) *TrawlJobUpdate {
	_u.mutation.SetBarID(v)
	return _u
}

// SetNillableBarID sets the "bar_id" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableBarID(v *uuid.UUID) *TrawlJobUpdate {
	if v != nil {
		_u.SetBarID(*v)
	}
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *TrawlJobUpdate) SetSourceRef(v string) *TrawlJobUpdate {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableSourceRef(v *string) *TrawlJobUpdate {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TrawlJobUpdate) SetSourceType(v string) *TrawlJobUpdate {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableSourceType(v *string) *TrawlJobUpdate {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrawlJobUpdate) SetStatus(v string) *TrawlJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableStatus(v *string) *TrawlJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWhiskeyCount sets the "whiskey_count" field.
func (_u *TrawlJobUpdate) SetWhiskeyCount(v int) *TrawlJobUpdate {
	_u.mutation.ResetWhiskeyCount()
	_u.mutation.SetWhiskeyCount(v)
	return _u
}

// SetNillableWhiskeyCount sets the "whiskey_count" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableWhiskeyCount(v *int) *TrawlJobUpdate {
	if v != nil {
		_u.SetWhiskeyCount(*v)
	}
	return _u
}

// AddWhiskeyCount adds value to the "whiskey_count" field.
func (_u *TrawlJobUpdate) AddWhiskeyCount(v int) *TrawlJobUpdate {
	_u.mutation.AddWhiskeyCount(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TrawlJobUpdate) SetResult(v json.RawMessage) *TrawlJobUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *TrawlJobUpdate) AppendResult(v json.RawMessage) *TrawlJobUpdate {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TrawlJobUpdate) ClearResult() *TrawlJobUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrawlJobUpdate) SetErrorMessage(v string) *TrawlJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableErrorMessage(v *string) *TrawlJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrawlJobUpdate) ClearErrorMessage() *TrawlJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *TrawlJobUpdate) SetSubmittedBy(v string) *TrawlJobUpdate {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *TrawlJobUpdate) SetNillableSubmittedBy(v *string) *TrawlJobUpdate {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *TrawlJobUpdate) ClearSubmittedBy() *TrawlJobUpdate {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrawlJobUpdate) SetUpdatedAt(v time.Time) *TrawlJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBar sets the "bar" edge to the Bar entity.
func (_u *TrawlJobUpdate) SetBar(v *Bar) *TrawlJobUpdate {
	return _u.SetBarID(v.ID)
}

// Mutation returns the TrawlJobMutation object of the builder.
func (_u *TrawlJobUpdate) Mutation() *TrawlJobMutation {
	return _u.mutation
}

// ClearBar clears the "bar" edge to the Bar entity.
func (_u *TrawlJobUpdate) ClearBar() *TrawlJobUpdate {
	_u.mutation.ClearBar()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrawlJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrawlJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrawlJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrawlJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrawlJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trawljob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrawlJobUpdate) check() error {
	if v, ok := _u.mutation.SourceRef(); ok {
		if err := trawljob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := trawljob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trawljob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.status": %w`, err)}
		}
	}
	if _u.mutation.BarCleared() && len(_u.mutation.BarIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrawlJob.bar"`)
	}
	return nil
}

func (_u *TrawlJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trawljob.Table, trawljob.Columns, sqlgraph.NewFieldSpec(trawljob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(trawljob.FieldSourceRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(trawljob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trawljob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhiskeyCount(); ok {
		_spec.SetField(trawljob.FieldWhiskeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWhiskeyCount(); ok {
		_spec.AddField(trawljob.FieldWhiskeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(trawljob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trawljob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(trawljob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trawljob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trawljob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(trawljob.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(trawljob.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trawljob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BarCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BarIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trawljob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrawlJobUpdateOne is the builder for updating a single TrawlJob entity.
type TrawlJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrawlJobMutation
}

// SetBarID sets the "bar_id" field.
func (_u *TrawlJobUpdateOne) SetBarID(v uuid.UUID) *TrawlJobUpdateOne {
	_u.mutation.SetBarID(v)
	return _u
}

// SetNillableBarID sets the "bar_id" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableBarID(v *uuid.UUID) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetBarID(*v)
	}
	return _u
}

// SetSourceRef sets the "source_ref" field.
func (_u *TrawlJobUpdateOne) SetSourceRef(v string) *TrawlJobUpdateOne {
	_u.mutation.SetSourceRef(v)
	return _u
}

// SetNillableSourceRef sets the "source_ref" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableSourceRef(v *string) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetSourceRef(*v)
	}
	return _u
}

// SetSourceType sets the "source_type" field.
func (_u *TrawlJobUpdateOne) SetSourceType(v string) *TrawlJobUpdateOne {
	_u.mutation.SetSourceType(v)
	return _u
}

// SetNillableSourceType sets the "source_type" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableSourceType(v *string) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetSourceType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *TrawlJobUpdateOne) SetStatus(v string) *TrawlJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableStatus(v *string) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetWhiskeyCount sets the "whiskey_count" field.
func (_u *TrawlJobUpdateOne) SetWhiskeyCount(v int) *TrawlJobUpdateOne {
	_u.mutation.ResetWhiskeyCount()
	_u.mutation.SetWhiskeyCount(v)
	return _u
}

// SetNillableWhiskeyCount sets the "whiskey_count" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableWhiskeyCount(v *int) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetWhiskeyCount(*v)
	}
	return _u
}

// AddWhiskeyCount adds value to the "whiskey_count" field.
func (_u *TrawlJobUpdateOne) AddWhiskeyCount(v int) *TrawlJobUpdateOne {
	_u.mutation.AddWhiskeyCount(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TrawlJobUpdateOne) SetResult(v json.RawMessage) *TrawlJobUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// AppendResult appends value to the "result" field.
func (_u *TrawlJobUpdateOne) AppendResult(v json.RawMessage) *TrawlJobUpdateOne {
	_u.mutation.AppendResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TrawlJobUpdateOne) ClearResult() *TrawlJobUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TrawlJobUpdateOne) SetErrorMessage(v string) *TrawlJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableErrorMessage(v *string) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TrawlJobUpdateOne) ClearErrorMessage() *TrawlJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetSubmittedBy sets the "submitted_by" field.
func (_u *TrawlJobUpdateOne) SetSubmittedBy(v string) *TrawlJobUpdateOne {
	_u.mutation.SetSubmittedBy(v)
	return _u
}

// SetNillableSubmittedBy sets the "submitted_by" field if the given value is not nil.
func (_u *TrawlJobUpdateOne) SetNillableSubmittedBy(v *string) *TrawlJobUpdateOne {
	if v != nil {
		_u.SetSubmittedBy(*v)
	}
	return _u
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (_u *TrawlJobUpdateOne) ClearSubmittedBy() *TrawlJobUpdateOne {
	_u.mutation.ClearSubmittedBy()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TrawlJobUpdateOne) SetUpdatedAt(v time.Time) *TrawlJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBar sets the "bar" edge to the Bar entity.
func (_u *TrawlJobUpdateOne) SetBar(v *Bar) *TrawlJobUpdateOne {
	return _u.SetBarID(v.ID)
}

// Mutation returns the TrawlJobMutation object of the builder.
func (_u *TrawlJobUpdateOne) Mutation() *TrawlJobMutation {
	return _u.mutation
}

// ClearBar clears the "bar" edge to the Bar entity.
func (_u *TrawlJobUpdateOne) ClearBar() *TrawlJobUpdateOne {
	_u.mutation.ClearBar()
	return _u
}

// Where appends a list predicates to the TrawlJobUpdate builder.
func (_u *TrawlJobUpdateOne) Where(ps ...predicate.TrawlJob) *TrawlJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrawlJobUpdateOne) Select(field string, fields ...string) *TrawlJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrawlJob entity.
func (_u *TrawlJobUpdateOne) Save(ctx context.Context) (*TrawlJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrawlJobUpdateOne) SaveX(ctx context.Context) *TrawlJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrawlJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrawlJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TrawlJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := trawljob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrawlJobUpdateOne) check() error {
	if v, ok := _u.mutation.SourceRef(); ok {
		if err := trawljob.SourceRefValidator(v); err != nil {
			return &ValidationError{Name: "source_ref", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_ref": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SourceType(); ok {
		if err := trawljob.SourceTypeValidator(v); err != nil {
			return &ValidationError{Name: "source_type", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.source_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := trawljob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "TrawlJob.status": %w`, err)}
		}
	}
	if _u.mutation.BarCleared() && len(_u.mutation.BarIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "TrawlJob.bar"`)
	}
	return nil
}

func (_u *TrawlJobUpdateOne) sqlSave(ctx context.Context) (_node *TrawlJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trawljob.Table, trawljob.Columns, sqlgraph.NewFieldSpec(trawljob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrawlJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trawljob.FieldID)
		for _, f := range fields {
			if !trawljob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trawljob.FieldID {
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
	if value, ok := _u.mutation.SourceRef(); ok {
		_spec.SetField(trawljob.FieldSourceRef, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceType(); ok {
		_spec.SetField(trawljob.FieldSourceType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(trawljob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.WhiskeyCount(); ok {
		_spec.SetField(trawljob.FieldWhiskeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWhiskeyCount(); ok {
		_spec.AddField(trawljob.FieldWhiskeyCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(trawljob.FieldResult, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedResult(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, trawljob.FieldResult, value)
		})
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(trawljob.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(trawljob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(trawljob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.SubmittedBy(); ok {
		_spec.SetField(trawljob.FieldSubmittedBy, field.TypeString, value)
	}
	if _u.mutation.SubmittedByCleared() {
		_spec.ClearField(trawljob.FieldSubmittedBy, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(trawljob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BarCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BarIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &TrawlJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trawljob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
