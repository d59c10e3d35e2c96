// Code generated by ent, DO NOT EDIT.

package trawljob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the trawljob type in the database.
	Label = "trawl_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBarID holds the string denoting the bar_id field in the database.
	FieldBarID = "bar_id"
	// FieldSourceRef holds the string denoting the source_ref field in the database.
	FieldSourceRef = "source_ref"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldWhiskeyCount holds the string denoting the whiskey_count field in the database.
	FieldWhiskeyCount = "whiskey_count"
	// FieldResult holds the string denoting the result field in the database.
	FieldResult = "result"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldSubmittedBy holds the string denoting the submitted_by field in the database.
	FieldSubmittedBy = "submitted_by"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBar holds the string denoting the bar edge name in mutations.
	EdgeBar = "bar"
	// Table holds the table name of the trawljob in the database.
	Table = "trawl_job"
	// BarTable is the table that holds the bar relation/edge.
	BarTable = "trawl_job"
	// BarInverseTable is the table name for the Bar entity.
	// It exists in this package in order to avoid circular dependency with the "bar" package.
	BarInverseTable = "bar"
	// BarColumn is the table column denoting the bar relation/edge.
	BarColumn = "bar_id"
)

// Columns holds all SQL columns for trawljob fields.
var Columns = []string{
	FieldID,
	FieldBarID,
	FieldSourceRef,
	FieldSourceType,
	FieldStatus,
	FieldWhiskeyCount,
	FieldResult,
	FieldErrorMessage,
	FieldSubmittedBy,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SourceRefValidator is a validator for the "source_ref" field. It is called by the builders before save.
	SourceRefValidator func(string) error
	// SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	SourceTypeValidator func(string) error
	// DefaultStatus holds the default value on creation for the "status" field.
	DefaultStatus string
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultWhiskeyCount holds the default value on creation for the "whiskey_count" field.
	DefaultWhiskeyCount int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the TrawlJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBarID orders the results by the bar_id field.
func ByBarID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarID, opts...).ToFunc()
}

// BySourceRef orders the results by the source_ref field.
func BySourceRef(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceRef, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByWhiskeyCount orders the results by the whiskey_count field.
func ByWhiskeyCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhiskeyCount, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// BySubmittedBy orders the results by the submitted_by field.
func BySubmittedBy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubmittedBy, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBarField orders the results by bar field.
func ByBarField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBarStep(), sql.OrderByField(field, opts...))
	}
}
func newBarStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BarInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BarTable, BarColumn),
	)
}
