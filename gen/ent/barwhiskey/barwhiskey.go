// Code generated by ent, DO NOT EDIT.

package barwhiskey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the barwhiskey type in the database.
	Label = "bar_whiskey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldBarID holds the string denoting the bar_id field in the database.
	FieldBarID = "bar_id"
	// FieldWhiskeyID holds the string denoting the whiskey_id field in the database.
	FieldWhiskeyID = "whiskey_id"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldPourSize holds the string denoting the pour_size field in the database.
	FieldPourSize = "pour_size"
	// FieldAvailable holds the string denoting the available field in the database.
	FieldAvailable = "available"
	// FieldNotes holds the string denoting the notes field in the database.
	FieldNotes = "notes"
	// FieldSourceType holds the string denoting the source_type field in the database.
	FieldSourceType = "source_type"
	// FieldLastVerified holds the string denoting the last_verified field in the database.
	FieldLastVerified = "last_verified"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBar holds the string denoting the bar edge name in mutations.
	EdgeBar = "bar"
	// EdgeWhiskey holds the string denoting the whiskey edge name in mutations.
	EdgeWhiskey = "whiskey"
	// Table holds the table name of the barwhiskey in the database.
	Table = "bar_whiskey"
	// BarTable is the table that holds the bar relation/edge.
	BarTable = "bar_whiskey"
	// BarInverseTable is the table name for the Bar entity.
	// It exists in this package in order to avoid circular dependency with the "bar" package.
	BarInverseTable = "bar"
	// BarColumn is the table column denoting the bar relation/edge.
	BarColumn = "bar_id"
	// WhiskeyTable is the table that holds the whiskey relation/edge.
	WhiskeyTable = "bar_whiskey"
	// WhiskeyInverseTable is the table name for the Whiskey entity.
	// It exists in this package in order to avoid circular dependency with the "whiskey" package.
	WhiskeyInverseTable = "whiskey"
	// WhiskeyColumn is the table column denoting the whiskey relation/edge.
	WhiskeyColumn = "whiskey_id"
)

// Columns holds all SQL columns for barwhiskey fields.
var Columns = []string{
	FieldID,
	FieldBarID,
	FieldWhiskeyID,
	FieldPrice,
	FieldPourSize,
	FieldAvailable,
	FieldNotes,
	FieldSourceType,
	FieldLastVerified,
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
	// DefaultAvailable holds the default value on creation for the "available" field.
	DefaultAvailable bool
	// SourceTypeValidator is a validator for the "source_type" field. It is called by the builders before save.
	SourceTypeValidator func(string) error
	// DefaultLastVerified holds the default value on creation for the "last_verified" field.
	DefaultLastVerified func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the BarWhiskey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBarID orders the results by the bar_id field.
func ByBarID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBarID, opts...).ToFunc()
}

// ByWhiskeyID orders the results by the whiskey_id field.
func ByWhiskeyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWhiskeyID, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByPourSize orders the results by the pour_size field.
func ByPourSize(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPourSize, opts...).ToFunc()
}

// ByAvailable orders the results by the available field.
func ByAvailable(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailable, opts...).ToFunc()
}

// ByNotes orders the results by the notes field.
func ByNotes(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNotes, opts...).ToFunc()
}

// BySourceType orders the results by the source_type field.
func BySourceType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceType, opts...).ToFunc()
}

// ByLastVerified orders the results by the last_verified field.
func ByLastVerified(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastVerified, opts...).ToFunc()
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

// ByWhiskeyField orders the results by whiskey field.
func ByWhiskeyField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWhiskeyStep(), sql.OrderByField(field, opts...))
	}
}
func newBarStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BarInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BarTable, BarColumn),
	)
}
func newWhiskeyStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WhiskeyInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, WhiskeyTable, WhiskeyColumn),
	)
}
