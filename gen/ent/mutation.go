// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/predicate"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBar        = "Bar"
	TypeBarWhiskey = "BarWhiskey"
	TypeTrawlJob   = "TrawlJob"
	TypeWhiskey    = "Whiskey"
)

// BarMutation represents an operation that mutates the Bar nodes in the graph.
type BarMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	address         *string
	city            *string
	website_url     *string
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	listings        map[uuid.UUID]struct{}
	removedlistings map[uuid.UUID]struct{}
	clearedlistings bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Bar, error)
	predicates      []predicate.Bar
}

var _ ent.Mutation = (*BarMutation)(nil)

// barOption allows management of the mutation configuration using functional options.
type barOption func(*BarMutation)

// newBarMutation creates new mutation for the Bar entity.
func newBarMutation(c config, op Op, opts ...barOption) *BarMutation {
	m := &BarMutation{
		config:        c,
		op:            op,
		typ:           TypeBar,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBarID sets the ID field of the mutation.
func withBarID(id uuid.UUID) barOption {
	return func(m *BarMutation) {
		var (
			err   error
			once  sync.Once
			value *Bar
		)
		m.oldValue = func(ctx context.Context) (*Bar, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Bar.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBar sets the old Bar of the mutation.
func withBar(node *Bar) barOption {
	return func(m *BarMutation) {
		m.oldValue = func(context.Context) (*Bar, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BarMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BarMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Bar entities.
func (m *BarMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BarMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BarMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Bar.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *BarMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BarMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BarMutation) ResetName() {
	m.name = nil
}

// SetAddress sets the "address" field.
func (m *BarMutation) SetAddress(s string) {
	m.address = &s
}

// Address returns the value of the "address" field in the mutation.
func (m *BarMutation) Address() (r string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldAddress(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// ClearAddress clears the value of the "address" field.
func (m *BarMutation) ClearAddress() {
	m.address = nil
	m.clearedFields[bar.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *BarMutation) AddressCleared() bool {
	_, ok := m.clearedFields[bar.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *BarMutation) ResetAddress() {
	m.address = nil
	delete(m.clearedFields, bar.FieldAddress)
}

// SetCity sets the "city" field.
func (m *BarMutation) SetCity(s string) {
	m.city = &s
}

// City returns the value of the "city" field in the mutation.
func (m *BarMutation) City() (r string, exists bool) {
	v := m.city
	if v == nil {
		return
	}
	return *v, true
}

// OldCity returns the old "city" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldCity(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCity: %w", err)
	}
	return oldValue.City, nil
}

// ClearCity clears the value of the "city" field.
func (m *BarMutation) ClearCity() {
	m.city = nil
	m.clearedFields[bar.FieldCity] = struct{}{}
}

// CityCleared returns if the "city" field was cleared in this mutation.
func (m *BarMutation) CityCleared() bool {
	_, ok := m.clearedFields[bar.FieldCity]
	return ok
}

// ResetCity resets all changes to the "city" field.
func (m *BarMutation) ResetCity() {
	m.city = nil
	delete(m.clearedFields, bar.FieldCity)
}

// SetWebsiteURL sets the "website_url" field.
func (m *BarMutation) SetWebsiteURL(s string) {
	m.website_url = &s
}

// WebsiteURL returns the value of the "website_url" field in the mutation.
func (m *BarMutation) WebsiteURL() (r string, exists bool) {
	v := m.website_url
	if v == nil {
		return
	}
	return *v, true
}

// OldWebsiteURL returns the old "website_url" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldWebsiteURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWebsiteURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWebsiteURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWebsiteURL: %w", err)
	}
	return oldValue.WebsiteURL, nil
}

// ClearWebsiteURL clears the value of the "website_url" field.
func (m *BarMutation) ClearWebsiteURL() {
	m.website_url = nil
	m.clearedFields[bar.FieldWebsiteURL] = struct{}{}
}

// WebsiteURLCleared returns if the "website_url" field was cleared in this mutation.
func (m *BarMutation) WebsiteURLCleared() bool {
	_, ok := m.clearedFields[bar.FieldWebsiteURL]
	return ok
}

// ResetWebsiteURL resets all changes to the "website_url" field.
func (m *BarMutation) ResetWebsiteURL() {
	m.website_url = nil
	delete(m.clearedFields, bar.FieldWebsiteURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *BarMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BarMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BarMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BarMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BarMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Bar entity.
// If the Bar object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BarMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by ids.
func (m *BarMutation) AddListingIDs(ids ...uuid.UUID) {
	if m.listings == nil {
		m.listings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.listings[ids[i]] = struct{}{}
	}
}

// ClearListings clears the "listings" edge to the BarWhiskey entity.
func (m *BarMutation) ClearListings() {
	m.clearedlistings = true
}

// ListingsCleared reports if the "listings" edge to the BarWhiskey entity was cleared.
func (m *BarMutation) ListingsCleared() bool {
	return m.clearedlistings
}

// RemoveListingIDs removes the "listings" edge to the BarWhiskey entity by IDs.
func (m *BarMutation) RemoveListingIDs(ids ...uuid.UUID) {
	if m.removedlistings == nil {
		m.removedlistings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.listings, ids[i])
		m.removedlistings[ids[i]] = struct{}{}
	}
}

// RemovedListings returns the removed IDs of the "listings" edge to the BarWhiskey entity.
func (m *BarMutation) RemovedListingsIDs() (ids []uuid.UUID) {
	for id := range m.removedlistings {
		ids = append(ids, id)
	}
	return
}

// ListingsIDs returns the "listings" edge IDs in the mutation.
func (m *BarMutation) ListingsIDs() (ids []uuid.UUID) {
	for id := range m.listings {
		ids = append(ids, id)
	}
	return
}

// ResetListings resets all changes to the "listings" edge.
func (m *BarMutation) ResetListings() {
	m.listings = nil
	m.clearedlistings = false
	m.removedlistings = nil
}

// AddJobIDs adds the "jobs" edge to the TrawlJob entity by ids.
func (m *BarMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the TrawlJob entity.
func (m *BarMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the TrawlJob entity was cleared.
func (m *BarMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the TrawlJob entity by IDs.
func (m *BarMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the TrawlJob entity.
func (m *BarMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *BarMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *BarMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the BarMutation builder.
func (m *BarMutation) Where(ps ...predicate.Bar) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BarMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BarMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Bar, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BarMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BarMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Bar).
func (m *BarMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BarMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.name != nil {
		fields = append(fields, bar.FieldName)
	}
	if m.address != nil {
		fields = append(fields, bar.FieldAddress)
	}
	if m.city != nil {
		fields = append(fields, bar.FieldCity)
	}
	if m.website_url != nil {
		fields = append(fields, bar.FieldWebsiteURL)
	}
	if m.created_at != nil {
		fields = append(fields, bar.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, bar.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BarMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case bar.FieldName:
		return m.Name()
	case bar.FieldAddress:
		return m.Address()
	case bar.FieldCity:
		return m.City()
	case bar.FieldWebsiteURL:
		return m.WebsiteURL()
	case bar.FieldCreatedAt:
		return m.CreatedAt()
	case bar.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BarMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case bar.FieldName:
		return m.OldName(ctx)
	case bar.FieldAddress:
		return m.OldAddress(ctx)
	case bar.FieldCity:
		return m.OldCity(ctx)
	case bar.FieldWebsiteURL:
		return m.OldWebsiteURL(ctx)
	case bar.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case bar.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Bar field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BarMutation) SetField(name string, value ent.Value) error {
	switch name {
	case bar.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case bar.FieldAddress:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case bar.FieldCity:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCity(v)
		return nil
	case bar.FieldWebsiteURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWebsiteURL(v)
		return nil
	case bar.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case bar.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Bar field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BarMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BarMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BarMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Bar numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BarMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(bar.FieldAddress) {
		fields = append(fields, bar.FieldAddress)
	}
	if m.FieldCleared(bar.FieldCity) {
		fields = append(fields, bar.FieldCity)
	}
	if m.FieldCleared(bar.FieldWebsiteURL) {
		fields = append(fields, bar.FieldWebsiteURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BarMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BarMutation) ClearField(name string) error {
	switch name {
	case bar.FieldAddress:
		m.ClearAddress()
		return nil
	case bar.FieldCity:
		m.ClearCity()
		return nil
	case bar.FieldWebsiteURL:
		m.ClearWebsiteURL()
		return nil
	}
	return fmt.Errorf("unknown Bar nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BarMutation) ResetField(name string) error {
	switch name {
	case bar.FieldName:
		m.ResetName()
		return nil
	case bar.FieldAddress:
		m.ResetAddress()
		return nil
	case bar.FieldCity:
		m.ResetCity()
		return nil
	case bar.FieldWebsiteURL:
		m.ResetWebsiteURL()
		return nil
	case bar.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case bar.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Bar field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BarMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.listings != nil {
		edges = append(edges, bar.EdgeListings)
	}
	if m.jobs != nil {
		edges = append(edges, bar.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BarMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case bar.EdgeListings:
		ids := make([]ent.Value, 0, len(m.listings))
		for id := range m.listings {
			ids = append(ids, id)
		}
		return ids
	case bar.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BarMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedlistings != nil {
		edges = append(edges, bar.EdgeListings)
	}
	if m.removedjobs != nil {
		edges = append(edges, bar.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BarMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case bar.EdgeListings:
		ids := make([]ent.Value, 0, len(m.removedlistings))
		for id := range m.removedlistings {
			ids = append(ids, id)
		}
		return ids
	case bar.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BarMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedlistings {
		edges = append(edges, bar.EdgeListings)
	}
	if m.clearedjobs {
		edges = append(edges, bar.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BarMutation) EdgeCleared(name string) bool {
	switch name {
	case bar.EdgeListings:
		return m.clearedlistings
	case bar.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BarMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Bar unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BarMutation) ResetEdge(name string) error {
	switch name {
	case bar.EdgeListings:
		m.ResetListings()
		return nil
	case bar.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Bar edge %s", name)
}

// BarWhiskeyMutation represents an operation that mutates the BarWhiskey nodes in the graph.
type BarWhiskeyMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	price          *float64
	addprice       *float64
	pour_size      *string
	available      *bool
	notes          *string
	source_type    *string
	last_verified  *time.Time
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	bar            *uuid.UUID
	clearedbar     bool
	whiskey        *uuid.UUID
	clearedwhiskey bool
	done           bool
	oldValue       func(context.Context) (*BarWhiskey, error)
	predicates     []predicate.BarWhiskey
}

var _ ent.Mutation = (*BarWhiskeyMutation)(nil)

// barwhiskeyOption allows management of the mutation configuration using functional options.
type barwhiskeyOption func(*BarWhiskeyMutation)

// newBarWhiskeyMutation creates new mutation for the BarWhiskey entity.
func newBarWhiskeyMutation(c config, op Op, opts ...barwhiskeyOption) *BarWhiskeyMutation {
	m := &BarWhiskeyMutation{
		config:        c,
		op:            op,
		typ:           TypeBarWhiskey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBarWhiskeyID sets the ID field of the mutation.
func withBarWhiskeyID(id uuid.UUID) barwhiskeyOption {
	return func(m *BarWhiskeyMutation) {
		var (
			err   error
			once  sync.Once
			value *BarWhiskey
		)
		m.oldValue = func(ctx context.Context) (*BarWhiskey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BarWhiskey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBarWhiskey sets the old BarWhiskey of the mutation.
func withBarWhiskey(node *BarWhiskey) barwhiskeyOption {
	return func(m *BarWhiskeyMutation) {
		m.oldValue = func(context.Context) (*BarWhiskey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BarWhiskeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BarWhiskeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BarWhiskey entities.
func (m *BarWhiskeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BarWhiskeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BarWhiskeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BarWhiskey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBarID sets the "bar_id" field.
func (m *BarWhiskeyMutation) SetBarID(u uuid.UUID) {
	m.bar = &u
}

// BarID returns the value of the "bar_id" field in the mutation.
func (m *BarWhiskeyMutation) BarID() (r uuid.UUID, exists bool) {
	v := m.bar
	if v == nil {
		return
	}
	return *v, true
}

// OldBarID returns the old "bar_id" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldBarID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarID: %w", err)
	}
	return oldValue.BarID, nil
}

// ResetBarID resets all changes to the "bar_id" field.
func (m *BarWhiskeyMutation) ResetBarID() {
	m.bar = nil
}

// SetWhiskeyID sets the "whiskey_id" field.
func (m *BarWhiskeyMutation) SetWhiskeyID(u uuid.UUID) {
	m.whiskey = &u
}

// WhiskeyID returns the value of the "whiskey_id" field in the mutation.
func (m *BarWhiskeyMutation) WhiskeyID() (r uuid.UUID, exists bool) {
	v := m.whiskey
	if v == nil {
		return
	}
	return *v, true
}

// OldWhiskeyID returns the old "whiskey_id" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldWhiskeyID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhiskeyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhiskeyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhiskeyID: %w", err)
	}
	return oldValue.WhiskeyID, nil
}

// ResetWhiskeyID resets all changes to the "whiskey_id" field.
func (m *BarWhiskeyMutation) ResetWhiskeyID() {
	m.whiskey = nil
}

// SetPrice sets the "price" field.
func (m *BarWhiskeyMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *BarWhiskeyMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldPrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *BarWhiskeyMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *BarWhiskeyMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ClearPrice clears the value of the "price" field.
func (m *BarWhiskeyMutation) ClearPrice() {
	m.price = nil
	m.addprice = nil
	m.clearedFields[barwhiskey.FieldPrice] = struct{}{}
}

// PriceCleared returns if the "price" field was cleared in this mutation.
func (m *BarWhiskeyMutation) PriceCleared() bool {
	_, ok := m.clearedFields[barwhiskey.FieldPrice]
	return ok
}

// ResetPrice resets all changes to the "price" field.
func (m *BarWhiskeyMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
	delete(m.clearedFields, barwhiskey.FieldPrice)
}

// SetPourSize sets the "pour_size" field.
func (m *BarWhiskeyMutation) SetPourSize(s string) {
	m.pour_size = &s
}

// PourSize returns the value of the "pour_size" field in the mutation.
func (m *BarWhiskeyMutation) PourSize() (r string, exists bool) {
	v := m.pour_size
	if v == nil {
		return
	}
	return *v, true
}

// OldPourSize returns the old "pour_size" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldPourSize(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPourSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPourSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPourSize: %w", err)
	}
	return oldValue.PourSize, nil
}

// ClearPourSize clears the value of the "pour_size" field.
func (m *BarWhiskeyMutation) ClearPourSize() {
	m.pour_size = nil
	m.clearedFields[barwhiskey.FieldPourSize] = struct{}{}
}

// PourSizeCleared returns if the "pour_size" field was cleared in this mutation.
func (m *BarWhiskeyMutation) PourSizeCleared() bool {
	_, ok := m.clearedFields[barwhiskey.FieldPourSize]
	return ok
}

// ResetPourSize resets all changes to the "pour_size" field.
func (m *BarWhiskeyMutation) ResetPourSize() {
	m.pour_size = nil
	delete(m.clearedFields, barwhiskey.FieldPourSize)
}

// SetAvailable sets the "available" field.
func (m *BarWhiskeyMutation) SetAvailable(b bool) {
	m.available = &b
}

// Available returns the value of the "available" field in the mutation.
func (m *BarWhiskeyMutation) Available() (r bool, exists bool) {
	v := m.available
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailable returns the old "available" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldAvailable(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailable is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailable requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailable: %w", err)
	}
	return oldValue.Available, nil
}

// ResetAvailable resets all changes to the "available" field.
func (m *BarWhiskeyMutation) ResetAvailable() {
	m.available = nil
}

// SetNotes sets the "notes" field.
func (m *BarWhiskeyMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *BarWhiskeyMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *BarWhiskeyMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[barwhiskey.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *BarWhiskeyMutation) NotesCleared() bool {
	_, ok := m.clearedFields[barwhiskey.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *BarWhiskeyMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, barwhiskey.FieldNotes)
}

// SetSourceType sets the "source_type" field.
func (m *BarWhiskeyMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *BarWhiskeyMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *BarWhiskeyMutation) ResetSourceType() {
	m.source_type = nil
}

// SetLastVerified sets the "last_verified" field.
func (m *BarWhiskeyMutation) SetLastVerified(t time.Time) {
	m.last_verified = &t
}

// LastVerified returns the value of the "last_verified" field in the mutation.
func (m *BarWhiskeyMutation) LastVerified() (r time.Time, exists bool) {
	v := m.last_verified
	if v == nil {
		return
	}
	return *v, true
}

// OldLastVerified returns the old "last_verified" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldLastVerified(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastVerified is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastVerified requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastVerified: %w", err)
	}
	return oldValue.LastVerified, nil
}

// ResetLastVerified resets all changes to the "last_verified" field.
func (m *BarWhiskeyMutation) ResetLastVerified() {
	m.last_verified = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BarWhiskeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BarWhiskeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BarWhiskeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BarWhiskeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BarWhiskeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BarWhiskey entity.
// If the BarWhiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BarWhiskeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BarWhiskeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBar clears the "bar" edge to the Bar entity.
func (m *BarWhiskeyMutation) ClearBar() {
	m.clearedbar = true
	m.clearedFields[barwhiskey.FieldBarID] = struct{}{}
}

// BarCleared reports if the "bar" edge to the Bar entity was cleared.
func (m *BarWhiskeyMutation) BarCleared() bool {
	return m.clearedbar
}

// BarIDs returns the "bar" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BarID instead. It exists only for internal usage by the builders.
func (m *BarWhiskeyMutation) BarIDs() (ids []uuid.UUID) {
	if id := m.bar; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBar resets all changes to the "bar" edge.
func (m *BarWhiskeyMutation) ResetBar() {
	m.bar = nil
	m.clearedbar = false
}

// ClearWhiskey clears the "whiskey" edge to the Whiskey entity.
func (m *BarWhiskeyMutation) ClearWhiskey() {
	m.clearedwhiskey = true
	m.clearedFields[barwhiskey.FieldWhiskeyID] = struct{}{}
}

// WhiskeyCleared reports if the "whiskey" edge to the Whiskey entity was cleared.
func (m *BarWhiskeyMutation) WhiskeyCleared() bool {
	return m.clearedwhiskey
}

// WhiskeyIDs returns the "whiskey" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WhiskeyID instead. It exists only for internal usage by the builders.
func (m *BarWhiskeyMutation) WhiskeyIDs() (ids []uuid.UUID) {
	if id := m.whiskey; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWhiskey resets all changes to the "whiskey" edge.
func (m *BarWhiskeyMutation) ResetWhiskey() {
	m.whiskey = nil
	m.clearedwhiskey = false
}

// Where appends a list predicates to the BarWhiskeyMutation builder.
func (m *BarWhiskeyMutation) Where(ps ...predicate.BarWhiskey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BarWhiskeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BarWhiskeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BarWhiskey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BarWhiskeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BarWhiskeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BarWhiskey).
func (m *BarWhiskeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BarWhiskeyMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.bar != nil {
		fields = append(fields, barwhiskey.FieldBarID)
	}
	if m.whiskey != nil {
		fields = append(fields, barwhiskey.FieldWhiskeyID)
	}
	if m.price != nil {
		fields = append(fields, barwhiskey.FieldPrice)
	}
	if m.pour_size != nil {
		fields = append(fields, barwhiskey.FieldPourSize)
	}
	if m.available != nil {
		fields = append(fields, barwhiskey.FieldAvailable)
	}
	if m.notes != nil {
		fields = append(fields, barwhiskey.FieldNotes)
	}
	if m.source_type != nil {
		fields = append(fields, barwhiskey.FieldSourceType)
	}
	if m.last_verified != nil {
		fields = append(fields, barwhiskey.FieldLastVerified)
	}
	if m.created_at != nil {
		fields = append(fields, barwhiskey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, barwhiskey.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BarWhiskeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case barwhiskey.FieldBarID:
		return m.BarID()
	case barwhiskey.FieldWhiskeyID:
		return m.WhiskeyID()
	case barwhiskey.FieldPrice:
		return m.Price()
	case barwhiskey.FieldPourSize:
		return m.PourSize()
	case barwhiskey.FieldAvailable:
		return m.Available()
	case barwhiskey.FieldNotes:
		return m.Notes()
	case barwhiskey.FieldSourceType:
		return m.SourceType()
	case barwhiskey.FieldLastVerified:
		return m.LastVerified()
	case barwhiskey.FieldCreatedAt:
		return m.CreatedAt()
	case barwhiskey.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BarWhiskeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case barwhiskey.FieldBarID:
		return m.OldBarID(ctx)
	case barwhiskey.FieldWhiskeyID:
		return m.OldWhiskeyID(ctx)
	case barwhiskey.FieldPrice:
		return m.OldPrice(ctx)
	case barwhiskey.FieldPourSize:
		return m.OldPourSize(ctx)
	case barwhiskey.FieldAvailable:
		return m.OldAvailable(ctx)
	case barwhiskey.FieldNotes:
		return m.OldNotes(ctx)
	case barwhiskey.FieldSourceType:
		return m.OldSourceType(ctx)
	case barwhiskey.FieldLastVerified:
		return m.OldLastVerified(ctx)
	case barwhiskey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case barwhiskey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BarWhiskey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BarWhiskeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case barwhiskey.FieldBarID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarID(v)
		return nil
	case barwhiskey.FieldWhiskeyID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhiskeyID(v)
		return nil
	case barwhiskey.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case barwhiskey.FieldPourSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPourSize(v)
		return nil
	case barwhiskey.FieldAvailable:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailable(v)
		return nil
	case barwhiskey.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case barwhiskey.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case barwhiskey.FieldLastVerified:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastVerified(v)
		return nil
	case barwhiskey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case barwhiskey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BarWhiskeyMutation) AddedFields() []string {
	var fields []string
	if m.addprice != nil {
		fields = append(fields, barwhiskey.FieldPrice)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BarWhiskeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case barwhiskey.FieldPrice:
		return m.AddedPrice()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BarWhiskeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case barwhiskey.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BarWhiskeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(barwhiskey.FieldPrice) {
		fields = append(fields, barwhiskey.FieldPrice)
	}
	if m.FieldCleared(barwhiskey.FieldPourSize) {
		fields = append(fields, barwhiskey.FieldPourSize)
	}
	if m.FieldCleared(barwhiskey.FieldNotes) {
		fields = append(fields, barwhiskey.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BarWhiskeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BarWhiskeyMutation) ClearField(name string) error {
	switch name {
	case barwhiskey.FieldPrice:
		m.ClearPrice()
		return nil
	case barwhiskey.FieldPourSize:
		m.ClearPourSize()
		return nil
	case barwhiskey.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BarWhiskeyMutation) ResetField(name string) error {
	switch name {
	case barwhiskey.FieldBarID:
		m.ResetBarID()
		return nil
	case barwhiskey.FieldWhiskeyID:
		m.ResetWhiskeyID()
		return nil
	case barwhiskey.FieldPrice:
		m.ResetPrice()
		return nil
	case barwhiskey.FieldPourSize:
		m.ResetPourSize()
		return nil
	case barwhiskey.FieldAvailable:
		m.ResetAvailable()
		return nil
	case barwhiskey.FieldNotes:
		m.ResetNotes()
		return nil
	case barwhiskey.FieldSourceType:
		m.ResetSourceType()
		return nil
	case barwhiskey.FieldLastVerified:
		m.ResetLastVerified()
		return nil
	case barwhiskey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case barwhiskey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BarWhiskeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.bar != nil {
		edges = append(edges, barwhiskey.EdgeBar)
	}
	if m.whiskey != nil {
		edges = append(edges, barwhiskey.EdgeWhiskey)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BarWhiskeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case barwhiskey.EdgeBar:
		if id := m.bar; id != nil {
			return []ent.Value{*id}
		}
	case barwhiskey.EdgeWhiskey:
		if id := m.whiskey; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BarWhiskeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BarWhiskeyMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BarWhiskeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedbar {
		edges = append(edges, barwhiskey.EdgeBar)
	}
	if m.clearedwhiskey {
		edges = append(edges, barwhiskey.EdgeWhiskey)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BarWhiskeyMutation) EdgeCleared(name string) bool {
	switch name {
	case barwhiskey.EdgeBar:
		return m.clearedbar
	case barwhiskey.EdgeWhiskey:
		return m.clearedwhiskey
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BarWhiskeyMutation) ClearEdge(name string) error {
	switch name {
	case barwhiskey.EdgeBar:
		m.ClearBar()
		return nil
	case barwhiskey.EdgeWhiskey:
		m.ClearWhiskey()
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BarWhiskeyMutation) ResetEdge(name string) error {
	switch name {
	case barwhiskey.EdgeBar:
		m.ResetBar()
		return nil
	case barwhiskey.EdgeWhiskey:
		m.ResetWhiskey()
		return nil
	}
	return fmt.Errorf("unknown BarWhiskey edge %s", name)
}

// TrawlJobMutation represents an operation that mutates the TrawlJob nodes in the graph.
type TrawlJobMutation struct {
	config
	op               Op
	typ              string
	id               *uuid.UUID
	source_ref       *string
	source_type      *string
	status           *string
	whiskey_count    *int
	addwhiskey_count *int
	result           *json.RawMessage
	appendresult     json.RawMessage
	error_message    *string
	submitted_by     *string
	created_at       *time.Time
	updated_at       *time.Time
	clearedFields    map[string]struct{}
	bar              *uuid.UUID
	clearedbar       bool
	done             bool
	oldValue         func(context.Context) (*TrawlJob, error)
	predicates       []predicate.TrawlJob
}

var _ ent.Mutation = (*TrawlJobMutation)(nil)

// trawljobOption allows management of the mutation configuration using functional options.
type trawljobOption func(*TrawlJobMutation)

// newTrawlJobMutation creates new mutation for the TrawlJob entity.
func newTrawlJobMutation(c config, op Op, opts ...trawljobOption) *TrawlJobMutation {
	m := &TrawlJobMutation{
		config:        c,
		op:            op,
		typ:           TypeTrawlJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrawlJobID sets the ID field of the mutation.
func withTrawlJobID(id uuid.UUID) trawljobOption {
	return func(m *TrawlJobMutation) {
		var (
			err   error
			once  sync.Once
			value *TrawlJob
		)
		m.oldValue = func(ctx context.Context) (*TrawlJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrawlJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrawlJob sets the old TrawlJob of the mutation.
func withTrawlJob(node *TrawlJob) trawljobOption {
	return func(m *TrawlJobMutation) {
		m.oldValue = func(context.Context) (*TrawlJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrawlJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrawlJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TrawlJob entities.
func (m *TrawlJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrawlJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrawlJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrawlJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBarID sets the "bar_id" field.
func (m *TrawlJobMutation) SetBarID(u uuid.UUID) {
	m.bar = &u
}

// BarID returns the value of the "bar_id" field in the mutation.
func (m *TrawlJobMutation) BarID() (r uuid.UUID, exists bool) {
	v := m.bar
	if v == nil {
		return
	}
	return *v, true
}

// OldBarID returns the old "bar_id" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldBarID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarID: %w", err)
	}
	return oldValue.BarID, nil
}

// ResetBarID resets all changes to the "bar_id" field.
func (m *TrawlJobMutation) ResetBarID() {
	m.bar = nil
}

// SetSourceRef sets the "source_ref" field.
func (m *TrawlJobMutation) SetSourceRef(s string) {
	m.source_ref = &s
}

// SourceRef returns the value of the "source_ref" field in the mutation.
func (m *TrawlJobMutation) SourceRef() (r string, exists bool) {
	v := m.source_ref
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceRef returns the old "source_ref" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldSourceRef(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceRef is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceRef requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceRef: %w", err)
	}
	return oldValue.SourceRef, nil
}

// ResetSourceRef resets all changes to the "source_ref" field.
func (m *TrawlJobMutation) ResetSourceRef() {
	m.source_ref = nil
}

// SetSourceType sets the "source_type" field.
func (m *TrawlJobMutation) SetSourceType(s string) {
	m.source_type = &s
}

// SourceType returns the value of the "source_type" field in the mutation.
func (m *TrawlJobMutation) SourceType() (r string, exists bool) {
	v := m.source_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceType returns the old "source_type" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldSourceType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceType: %w", err)
	}
	return oldValue.SourceType, nil
}

// ResetSourceType resets all changes to the "source_type" field.
func (m *TrawlJobMutation) ResetSourceType() {
	m.source_type = nil
}

// SetStatus sets the "status" field.
func (m *TrawlJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *TrawlJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *TrawlJobMutation) ResetStatus() {
	m.status = nil
}

// SetWhiskeyCount sets the "whiskey_count" field.
func (m *TrawlJobMutation) SetWhiskeyCount(i int) {
	m.whiskey_count = &i
	m.addwhiskey_count = nil
}

// WhiskeyCount returns the value of the "whiskey_count" field in the mutation.
func (m *TrawlJobMutation) WhiskeyCount() (r int, exists bool) {
	v := m.whiskey_count
	if v == nil {
		return
	}
	return *v, true
}

// OldWhiskeyCount returns the old "whiskey_count" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldWhiskeyCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWhiskeyCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWhiskeyCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWhiskeyCount: %w", err)
	}
	return oldValue.WhiskeyCount, nil
}

// AddWhiskeyCount adds i to the "whiskey_count" field.
func (m *TrawlJobMutation) AddWhiskeyCount(i int) {
	if m.addwhiskey_count != nil {
		*m.addwhiskey_count += i
	} else {
		m.addwhiskey_count = &i
	}
}

// AddedWhiskeyCount returns the value that was added to the "whiskey_count" field in this mutation.
func (m *TrawlJobMutation) AddedWhiskeyCount() (r int, exists bool) {
	v := m.addwhiskey_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetWhiskeyCount resets all changes to the "whiskey_count" field.
func (m *TrawlJobMutation) ResetWhiskeyCount() {
	m.whiskey_count = nil
	m.addwhiskey_count = nil
}

// SetResult sets the "result" field.
func (m *TrawlJobMutation) SetResult(jm json.RawMessage) {
	m.result = &jm
	m.appendresult = nil
}

// Result returns the value of the "result" field in the mutation.
func (m *TrawlJobMutation) Result() (r json.RawMessage, exists bool) {
	v := m.result
	if v == nil {
		return
	}
	return *v, true
}

// OldResult returns the old "result" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldResult(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldResult is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldResult requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldResult: %w", err)
	}
	return oldValue.Result, nil
}

// AppendResult adds jm to the "result" field.
func (m *TrawlJobMutation) AppendResult(jm json.RawMessage) {
	m.appendresult = append(m.appendresult, jm...)
}

// AppendedResult returns the list of values that were appended to the "result" field in this mutation.
func (m *TrawlJobMutation) AppendedResult() (json.RawMessage, bool) {
	if len(m.appendresult) == 0 {
		return nil, false
	}
	return m.appendresult, true
}

// ClearResult clears the value of the "result" field.
func (m *TrawlJobMutation) ClearResult() {
	m.result = nil
	m.appendresult = nil
	m.clearedFields[trawljob.FieldResult] = struct{}{}
}

// ResultCleared returns if the "result" field was cleared in this mutation.
func (m *TrawlJobMutation) ResultCleared() bool {
	_, ok := m.clearedFields[trawljob.FieldResult]
	return ok
}

// ResetResult resets all changes to the "result" field.
func (m *TrawlJobMutation) ResetResult() {
	m.result = nil
	m.appendresult = nil
	delete(m.clearedFields, trawljob.FieldResult)
}

// SetErrorMessage sets the "error_message" field.
func (m *TrawlJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TrawlJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TrawlJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[trawljob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TrawlJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[trawljob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TrawlJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, trawljob.FieldErrorMessage)
}

// SetSubmittedBy sets the "submitted_by" field.
func (m *TrawlJobMutation) SetSubmittedBy(s string) {
	m.submitted_by = &s
}

// SubmittedBy returns the value of the "submitted_by" field in the mutation.
func (m *TrawlJobMutation) SubmittedBy() (r string, exists bool) {
	v := m.submitted_by
	if v == nil {
		return
	}
	return *v, true
}

// OldSubmittedBy returns the old "submitted_by" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldSubmittedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubmittedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubmittedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubmittedBy: %w", err)
	}
	return oldValue.SubmittedBy, nil
}

// ClearSubmittedBy clears the value of the "submitted_by" field.
func (m *TrawlJobMutation) ClearSubmittedBy() {
	m.submitted_by = nil
	m.clearedFields[trawljob.FieldSubmittedBy] = struct{}{}
}

// SubmittedByCleared returns if the "submitted_by" field was cleared in this mutation.
func (m *TrawlJobMutation) SubmittedByCleared() bool {
	_, ok := m.clearedFields[trawljob.FieldSubmittedBy]
	return ok
}

// ResetSubmittedBy resets all changes to the "submitted_by" field.
func (m *TrawlJobMutation) ResetSubmittedBy() {
	m.submitted_by = nil
	delete(m.clearedFields, trawljob.FieldSubmittedBy)
}

// SetCreatedAt sets the "created_at" field.
func (m *TrawlJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrawlJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrawlJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TrawlJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TrawlJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TrawlJob entity.
// If the TrawlJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrawlJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TrawlJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBar clears the "bar" edge to the Bar entity.
func (m *TrawlJobMutation) ClearBar() {
	m.clearedbar = true
	m.clearedFields[trawljob.FieldBarID] = struct{}{}
}

// BarCleared reports if the "bar" edge to the Bar entity was cleared.
func (m *TrawlJobMutation) BarCleared() bool {
	return m.clearedbar
}

// BarIDs returns the "bar" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BarID instead. It exists only for internal usage by the builders.
func (m *TrawlJobMutation) BarIDs() (ids []uuid.UUID) {
	if id := m.bar; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBar resets all changes to the "bar" edge.
func (m *TrawlJobMutation) ResetBar() {
	m.bar = nil
	m.clearedbar = false
}

// Where appends a list predicates to the TrawlJobMutation builder.
func (m *TrawlJobMutation) Where(ps ...predicate.TrawlJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrawlJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrawlJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrawlJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrawlJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrawlJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrawlJob).
func (m *TrawlJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrawlJobMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.bar != nil {
		fields = append(fields, trawljob.FieldBarID)
	}
	if m.source_ref != nil {
		fields = append(fields, trawljob.FieldSourceRef)
	}
	if m.source_type != nil {
		fields = append(fields, trawljob.FieldSourceType)
	}
	if m.status != nil {
		fields = append(fields, trawljob.FieldStatus)
	}
	if m.whiskey_count != nil {
		fields = append(fields, trawljob.FieldWhiskeyCount)
	}
	if m.result != nil {
		fields = append(fields, trawljob.FieldResult)
	}
	if m.error_message != nil {
		fields = append(fields, trawljob.FieldErrorMessage)
	}
	if m.submitted_by != nil {
		fields = append(fields, trawljob.FieldSubmittedBy)
	}
	if m.created_at != nil {
		fields = append(fields, trawljob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, trawljob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrawlJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trawljob.FieldBarID:
		return m.BarID()
	case trawljob.FieldSourceRef:
		return m.SourceRef()
	case trawljob.FieldSourceType:
		return m.SourceType()
	case trawljob.FieldStatus:
		return m.Status()
	case trawljob.FieldWhiskeyCount:
		return m.WhiskeyCount()
	case trawljob.FieldResult:
		return m.Result()
	case trawljob.FieldErrorMessage:
		return m.ErrorMessage()
	case trawljob.FieldSubmittedBy:
		return m.SubmittedBy()
	case trawljob.FieldCreatedAt:
		return m.CreatedAt()
	case trawljob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrawlJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trawljob.FieldBarID:
		return m.OldBarID(ctx)
	case trawljob.FieldSourceRef:
		return m.OldSourceRef(ctx)
	case trawljob.FieldSourceType:
		return m.OldSourceType(ctx)
	case trawljob.FieldStatus:
		return m.OldStatus(ctx)
	case trawljob.FieldWhiskeyCount:
		return m.OldWhiskeyCount(ctx)
	case trawljob.FieldResult:
		return m.OldResult(ctx)
	case trawljob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case trawljob.FieldSubmittedBy:
		return m.OldSubmittedBy(ctx)
	case trawljob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case trawljob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrawlJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrawlJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trawljob.FieldBarID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarID(v)
		return nil
	case trawljob.FieldSourceRef:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceRef(v)
		return nil
	case trawljob.FieldSourceType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceType(v)
		return nil
	case trawljob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case trawljob.FieldWhiskeyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWhiskeyCount(v)
		return nil
	case trawljob.FieldResult:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetResult(v)
		return nil
	case trawljob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case trawljob.FieldSubmittedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubmittedBy(v)
		return nil
	case trawljob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case trawljob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrawlJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrawlJobMutation) AddedFields() []string {
	var fields []string
	if m.addwhiskey_count != nil {
		fields = append(fields, trawljob.FieldWhiskeyCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrawlJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trawljob.FieldWhiskeyCount:
		return m.AddedWhiskeyCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrawlJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trawljob.FieldWhiskeyCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddWhiskeyCount(v)
		return nil
	}
	return fmt.Errorf("unknown TrawlJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrawlJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trawljob.FieldResult) {
		fields = append(fields, trawljob.FieldResult)
	}
	if m.FieldCleared(trawljob.FieldErrorMessage) {
		fields = append(fields, trawljob.FieldErrorMessage)
	}
	if m.FieldCleared(trawljob.FieldSubmittedBy) {
		fields = append(fields, trawljob.FieldSubmittedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrawlJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrawlJobMutation) ClearField(name string) error {
	switch name {
	case trawljob.FieldResult:
		m.ClearResult()
		return nil
	case trawljob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case trawljob.FieldSubmittedBy:
		m.ClearSubmittedBy()
		return nil
	}
	return fmt.Errorf("unknown TrawlJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrawlJobMutation) ResetField(name string) error {
	switch name {
	case trawljob.FieldBarID:
		m.ResetBarID()
		return nil
	case trawljob.FieldSourceRef:
		m.ResetSourceRef()
		return nil
	case trawljob.FieldSourceType:
		m.ResetSourceType()
		return nil
	case trawljob.FieldStatus:
		m.ResetStatus()
		return nil
	case trawljob.FieldWhiskeyCount:
		m.ResetWhiskeyCount()
		return nil
	case trawljob.FieldResult:
		m.ResetResult()
		return nil
	case trawljob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case trawljob.FieldSubmittedBy:
		m.ResetSubmittedBy()
		return nil
	case trawljob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case trawljob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrawlJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrawlJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.bar != nil {
		edges = append(edges, trawljob.EdgeBar)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrawlJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trawljob.EdgeBar:
		if id := m.bar; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrawlJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrawlJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrawlJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbar {
		edges = append(edges, trawljob.EdgeBar)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrawlJobMutation) EdgeCleared(name string) bool {
	switch name {
	case trawljob.EdgeBar:
		return m.clearedbar
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrawlJobMutation) ClearEdge(name string) error {
	switch name {
	case trawljob.EdgeBar:
		m.ClearBar()
		return nil
	}
	return fmt.Errorf("unknown TrawlJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrawlJobMutation) ResetEdge(name string) error {
	switch name {
	case trawljob.EdgeBar:
		m.ResetBar()
		return nil
	}
	return fmt.Errorf("unknown TrawlJob edge %s", name)
}

// WhiskeyMutation represents an operation that mutates the Whiskey nodes in the graph.
type WhiskeyMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	name            *string
	distillery      *string
	name_key        *string
	distillery_key  *string
	spirit_type     *string
	age_years       *int
	addage_years    *int
	abv             *float64
	addabv          *float64
	created_at      *time.Time
	updated_at      *time.Time
	clearedFields   map[string]struct{}
	listings        map[uuid.UUID]struct{}
	removedlistings map[uuid.UUID]struct{}
	clearedlistings bool
	done            bool
	oldValue        func(context.Context) (*Whiskey, error)
	predicates      []predicate.Whiskey
}

var _ ent.Mutation = (*WhiskeyMutation)(nil)

// whiskeyOption allows management of the mutation configuration using functional options.
type whiskeyOption func(*WhiskeyMutation)

// newWhiskeyMutation creates new mutation for the Whiskey entity.
func newWhiskeyMutation(c config, op Op, opts ...whiskeyOption) *WhiskeyMutation {
	m := &WhiskeyMutation{
		config:        c,
		op:            op,
		typ:           TypeWhiskey,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWhiskeyID sets the ID field of the mutation.
func withWhiskeyID(id uuid.UUID) whiskeyOption {
	return func(m *WhiskeyMutation) {
		var (
			err   error
			once  sync.Once
			value *Whiskey
		)
		m.oldValue = func(ctx context.Context) (*Whiskey, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Whiskey.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWhiskey sets the old Whiskey of the mutation.
func withWhiskey(node *Whiskey) whiskeyOption {
	return func(m *WhiskeyMutation) {
		m.oldValue = func(context.Context) (*Whiskey, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WhiskeyMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WhiskeyMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Whiskey entities.
func (m *WhiskeyMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WhiskeyMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WhiskeyMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Whiskey.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WhiskeyMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WhiskeyMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WhiskeyMutation) ResetName() {
	m.name = nil
}

// SetDistillery sets the "distillery" field.
func (m *WhiskeyMutation) SetDistillery(s string) {
	m.distillery = &s
}

// Distillery returns the value of the "distillery" field in the mutation.
func (m *WhiskeyMutation) Distillery() (r string, exists bool) {
	v := m.distillery
	if v == nil {
		return
	}
	return *v, true
}

// OldDistillery returns the old "distillery" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldDistillery(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistillery is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistillery requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistillery: %w", err)
	}
	return oldValue.Distillery, nil
}

// ClearDistillery clears the value of the "distillery" field.
func (m *WhiskeyMutation) ClearDistillery() {
	m.distillery = nil
	m.clearedFields[whiskey.FieldDistillery] = struct{}{}
}

// DistilleryCleared returns if the "distillery" field was cleared in this mutation.
func (m *WhiskeyMutation) DistilleryCleared() bool {
	_, ok := m.clearedFields[whiskey.FieldDistillery]
	return ok
}

// ResetDistillery resets all changes to the "distillery" field.
func (m *WhiskeyMutation) ResetDistillery() {
	m.distillery = nil
	delete(m.clearedFields, whiskey.FieldDistillery)
}

// SetNameKey sets the "name_key" field.
func (m *WhiskeyMutation) SetNameKey(s string) {
	m.name_key = &s
}

// NameKey returns the value of the "name_key" field in the mutation.
func (m *WhiskeyMutation) NameKey() (r string, exists bool) {
	v := m.name_key
	if v == nil {
		return
	}
	return *v, true
}

// OldNameKey returns the old "name_key" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldNameKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNameKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNameKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNameKey: %w", err)
	}
	return oldValue.NameKey, nil
}

// ResetNameKey resets all changes to the "name_key" field.
func (m *WhiskeyMutation) ResetNameKey() {
	m.name_key = nil
}

// SetDistilleryKey sets the "distillery_key" field.
func (m *WhiskeyMutation) SetDistilleryKey(s string) {
	m.distillery_key = &s
}

// DistilleryKey returns the value of the "distillery_key" field in the mutation.
func (m *WhiskeyMutation) DistilleryKey() (r string, exists bool) {
	v := m.distillery_key
	if v == nil {
		return
	}
	return *v, true
}

// OldDistilleryKey returns the old "distillery_key" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldDistilleryKey(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistilleryKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistilleryKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistilleryKey: %w", err)
	}
	return oldValue.DistilleryKey, nil
}

// ResetDistilleryKey resets all changes to the "distillery_key" field.
func (m *WhiskeyMutation) ResetDistilleryKey() {
	m.distillery_key = nil
}

// SetSpiritType sets the "spirit_type" field.
func (m *WhiskeyMutation) SetSpiritType(s string) {
	m.spirit_type = &s
}

// SpiritType returns the value of the "spirit_type" field in the mutation.
func (m *WhiskeyMutation) SpiritType() (r string, exists bool) {
	v := m.spirit_type
	if v == nil {
		return
	}
	return *v, true
}

// OldSpiritType returns the old "spirit_type" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldSpiritType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpiritType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpiritType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpiritType: %w", err)
	}
	return oldValue.SpiritType, nil
}

// ResetSpiritType resets all changes to the "spirit_type" field.
func (m *WhiskeyMutation) ResetSpiritType() {
	m.spirit_type = nil
}

// SetAgeYears sets the "age_years" field.
func (m *WhiskeyMutation) SetAgeYears(i int) {
	m.age_years = &i
	m.addage_years = nil
}

// AgeYears returns the value of the "age_years" field in the mutation.
func (m *WhiskeyMutation) AgeYears() (r int, exists bool) {
	v := m.age_years
	if v == nil {
		return
	}
	return *v, true
}

// OldAgeYears returns the old "age_years" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldAgeYears(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgeYears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgeYears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgeYears: %w", err)
	}
	return oldValue.AgeYears, nil
}

// AddAgeYears adds i to the "age_years" field.
func (m *WhiskeyMutation) AddAgeYears(i int) {
	if m.addage_years != nil {
		*m.addage_years += i
	} else {
		m.addage_years = &i
	}
}

// AddedAgeYears returns the value that was added to the "age_years" field in this mutation.
func (m *WhiskeyMutation) AddedAgeYears() (r int, exists bool) {
	v := m.addage_years
	if v == nil {
		return
	}
	return *v, true
}

// ClearAgeYears clears the value of the "age_years" field.
func (m *WhiskeyMutation) ClearAgeYears() {
	m.age_years = nil
	m.addage_years = nil
	m.clearedFields[whiskey.FieldAgeYears] = struct{}{}
}

// AgeYearsCleared returns if the "age_years" field was cleared in this mutation.
func (m *WhiskeyMutation) AgeYearsCleared() bool {
	_, ok := m.clearedFields[whiskey.FieldAgeYears]
	return ok
}

// ResetAgeYears resets all changes to the "age_years" field.
func (m *WhiskeyMutation) ResetAgeYears() {
	m.age_years = nil
	m.addage_years = nil
	delete(m.clearedFields, whiskey.FieldAgeYears)
}

// SetAbv sets the "abv" field.
func (m *WhiskeyMutation) SetAbv(f float64) {
	m.abv = &f
	m.addabv = nil
}

// Abv returns the value of the "abv" field in the mutation.
func (m *WhiskeyMutation) Abv() (r float64, exists bool) {
	v := m.abv
	if v == nil {
		return
	}
	return *v, true
}

// OldAbv returns the old "abv" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldAbv(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAbv is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAbv requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAbv: %w", err)
	}
	return oldValue.Abv, nil
}

// AddAbv adds f to the "abv" field.
func (m *WhiskeyMutation) AddAbv(f float64) {
	if m.addabv != nil {
		*m.addabv += f
	} else {
		m.addabv = &f
	}
}

// AddedAbv returns the value that was added to the "abv" field in this mutation.
func (m *WhiskeyMutation) AddedAbv() (r float64, exists bool) {
	v := m.addabv
	if v == nil {
		return
	}
	return *v, true
}

// ClearAbv clears the value of the "abv" field.
func (m *WhiskeyMutation) ClearAbv() {
	m.abv = nil
	m.addabv = nil
	m.clearedFields[whiskey.FieldAbv] = struct{}{}
}

// AbvCleared returns if the "abv" field was cleared in this mutation.
func (m *WhiskeyMutation) AbvCleared() bool {
	_, ok := m.clearedFields[whiskey.FieldAbv]
	return ok
}

// ResetAbv resets all changes to the "abv" field.
func (m *WhiskeyMutation) ResetAbv() {
	m.abv = nil
	m.addabv = nil
	delete(m.clearedFields, whiskey.FieldAbv)
}

// SetCreatedAt sets the "created_at" field.
func (m *WhiskeyMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WhiskeyMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WhiskeyMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WhiskeyMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WhiskeyMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Whiskey entity.
// If the Whiskey object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WhiskeyMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WhiskeyMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddListingIDs adds the "listings" edge to the BarWhiskey entity by ids.
func (m *WhiskeyMutation) AddListingIDs(ids ...uuid.UUID) {
	if m.listings == nil {
		m.listings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.listings[ids[i]] = struct{}{}
	}
}

// ClearListings clears the "listings" edge to the BarWhiskey entity.
func (m *WhiskeyMutation) ClearListings() {
	m.clearedlistings = true
}

// ListingsCleared reports if the "listings" edge to the BarWhiskey entity was cleared.
func (m *WhiskeyMutation) ListingsCleared() bool {
	return m.clearedlistings
}

// RemoveListingIDs removes the "listings" edge to the BarWhiskey entity by IDs.
func (m *WhiskeyMutation) RemoveListingIDs(ids ...uuid.UUID) {
	if m.removedlistings == nil {
		m.removedlistings = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.listings, ids[i])
		m.removedlistings[ids[i]] = struct{}{}
	}
}

// RemovedListings returns the removed IDs of the "listings" edge to the BarWhiskey entity.
func (m *WhiskeyMutation) RemovedListingsIDs() (ids []uuid.UUID) {
	for id := range m.removedlistings {
		ids = append(ids, id)
	}
	return
}

// ListingsIDs returns the "listings" edge IDs in the mutation.
func (m *WhiskeyMutation) ListingsIDs() (ids []uuid.UUID) {
	for id := range m.listings {
		ids = append(ids, id)
	}
	return
}

// ResetListings resets all changes to the "listings" edge.
func (m *WhiskeyMutation) ResetListings() {
	m.listings = nil
	m.clearedlistings = false
	m.removedlistings = nil
}

// Where appends a list predicates to the WhiskeyMutation builder.
func (m *WhiskeyMutation) Where(ps ...predicate.Whiskey) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WhiskeyMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WhiskeyMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Whiskey, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WhiskeyMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WhiskeyMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Whiskey).
func (m *WhiskeyMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WhiskeyMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, whiskey.FieldName)
	}
	if m.distillery != nil {
		fields = append(fields, whiskey.FieldDistillery)
	}
	if m.name_key != nil {
		fields = append(fields, whiskey.FieldNameKey)
	}
	if m.distillery_key != nil {
		fields = append(fields, whiskey.FieldDistilleryKey)
	}
	if m.spirit_type != nil {
		fields = append(fields, whiskey.FieldSpiritType)
	}
	if m.age_years != nil {
		fields = append(fields, whiskey.FieldAgeYears)
	}
	if m.abv != nil {
		fields = append(fields, whiskey.FieldAbv)
	}
	if m.created_at != nil {
		fields = append(fields, whiskey.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, whiskey.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WhiskeyMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case whiskey.FieldName:
		return m.Name()
	case whiskey.FieldDistillery:
		return m.Distillery()
	case whiskey.FieldNameKey:
		return m.NameKey()
	case whiskey.FieldDistilleryKey:
		return m.DistilleryKey()
	case whiskey.FieldSpiritType:
		return m.SpiritType()
	case whiskey.FieldAgeYears:
		return m.AgeYears()
	case whiskey.FieldAbv:
		return m.Abv()
	case whiskey.FieldCreatedAt:
		return m.CreatedAt()
	case whiskey.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WhiskeyMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case whiskey.FieldName:
		return m.OldName(ctx)
	case whiskey.FieldDistillery:
		return m.OldDistillery(ctx)
	case whiskey.FieldNameKey:
		return m.OldNameKey(ctx)
	case whiskey.FieldDistilleryKey:
		return m.OldDistilleryKey(ctx)
	case whiskey.FieldSpiritType:
		return m.OldSpiritType(ctx)
	case whiskey.FieldAgeYears:
		return m.OldAgeYears(ctx)
	case whiskey.FieldAbv:
		return m.OldAbv(ctx)
	case whiskey.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case whiskey.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Whiskey field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WhiskeyMutation) SetField(name string, value ent.Value) error {
	switch name {
	case whiskey.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case whiskey.FieldDistillery:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistillery(v)
		return nil
	case whiskey.FieldNameKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNameKey(v)
		return nil
	case whiskey.FieldDistilleryKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistilleryKey(v)
		return nil
	case whiskey.FieldSpiritType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpiritType(v)
		return nil
	case whiskey.FieldAgeYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgeYears(v)
		return nil
	case whiskey.FieldAbv:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAbv(v)
		return nil
	case whiskey.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case whiskey.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Whiskey field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WhiskeyMutation) AddedFields() []string {
	var fields []string
	if m.addage_years != nil {
		fields = append(fields, whiskey.FieldAgeYears)
	}
	if m.addabv != nil {
		fields = append(fields, whiskey.FieldAbv)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WhiskeyMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case whiskey.FieldAgeYears:
		return m.AddedAgeYears()
	case whiskey.FieldAbv:
		return m.AddedAbv()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WhiskeyMutation) AddField(name string, value ent.Value) error {
	switch name {
	case whiskey.FieldAgeYears:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAgeYears(v)
		return nil
	case whiskey.FieldAbv:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAbv(v)
		return nil
	}
	return fmt.Errorf("unknown Whiskey numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WhiskeyMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(whiskey.FieldDistillery) {
		fields = append(fields, whiskey.FieldDistillery)
	}
	if m.FieldCleared(whiskey.FieldAgeYears) {
		fields = append(fields, whiskey.FieldAgeYears)
	}
	if m.FieldCleared(whiskey.FieldAbv) {
		fields = append(fields, whiskey.FieldAbv)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WhiskeyMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WhiskeyMutation) ClearField(name string) error {
	switch name {
	case whiskey.FieldDistillery:
		m.ClearDistillery()
		return nil
	case whiskey.FieldAgeYears:
		m.ClearAgeYears()
		return nil
	case whiskey.FieldAbv:
		m.ClearAbv()
		return nil
	}
	return fmt.Errorf("unknown Whiskey nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WhiskeyMutation) ResetField(name string) error {
	switch name {
	case whiskey.FieldName:
		m.ResetName()
		return nil
	case whiskey.FieldDistillery:
		m.ResetDistillery()
		return nil
	case whiskey.FieldNameKey:
		m.ResetNameKey()
		return nil
	case whiskey.FieldDistilleryKey:
		m.ResetDistilleryKey()
		return nil
	case whiskey.FieldSpiritType:
		m.ResetSpiritType()
		return nil
	case whiskey.FieldAgeYears:
		m.ResetAgeYears()
		return nil
	case whiskey.FieldAbv:
		m.ResetAbv()
		return nil
	case whiskey.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case whiskey.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Whiskey field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WhiskeyMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.listings != nil {
		edges = append(edges, whiskey.EdgeListings)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WhiskeyMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case whiskey.EdgeListings:
		ids := make([]ent.Value, 0, len(m.listings))
		for id := range m.listings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WhiskeyMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedlistings != nil {
		edges = append(edges, whiskey.EdgeListings)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WhiskeyMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case whiskey.EdgeListings:
		ids := make([]ent.Value, 0, len(m.removedlistings))
		for id := range m.removedlistings {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WhiskeyMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedlistings {
		edges = append(edges, whiskey.EdgeListings)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WhiskeyMutation) EdgeCleared(name string) bool {
	switch name {
	case whiskey.EdgeListings:
		return m.clearedlistings
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WhiskeyMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Whiskey unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WhiskeyMutation) ResetEdge(name string) error {
	switch name {
	case whiskey.EdgeListings:
		m.ResetListings()
		return nil
	}
	return fmt.Errorf("unknown Whiskey edge %s", name)
}
