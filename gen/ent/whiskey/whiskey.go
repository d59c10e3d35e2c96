// Code generated by ent, DO NOT EDIT.

package whiskey

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the whiskey type in the database.
	Label = "whiskey"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldDistillery holds the string denoting the distillery field in the database.
	FieldDistillery = "distillery"
	// FieldNameKey holds the string denoting the name_key field in the database.
	FieldNameKey = "name_key"
	// FieldDistilleryKey holds the string denoting the distillery_key field in the database.
	FieldDistilleryKey = "distillery_key"
	// FieldSpiritType holds the string denoting the spirit_type field in the database.
	FieldSpiritType = "spirit_type"
	// FieldAgeYears holds the string denoting the age_years field in the database.
	FieldAgeYears = "age_years"
	// FieldAbv holds the string denoting the abv field in the database.
	FieldAbv = "abv"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeListings holds the string denoting the listings edge name in mutations.
	EdgeListings = "listings"
	// Table holds the table name of the whiskey in the database.
	Table = "whiskey"
	// ListingsTable is the table that holds the listings relation/edge.
	ListingsTable = "bar_whiskey"
	// ListingsInverseTable is the table name for the BarWhiskey entity.
	// It exists in this package in order to avoid circular dependency with the "barwhiskey" package.
	ListingsInverseTable = "bar_whiskey"
	// ListingsColumn is the table column denoting the listings relation/edge.
	ListingsColumn = "whiskey_id"
)

// Columns holds all SQL columns for whiskey fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldDistillery,
	FieldNameKey,
	FieldDistilleryKey,
	FieldSpiritType,
	FieldAgeYears,
	FieldAbv,
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// NameKeyValidator is a validator for the "name_key" field. It is called by the builders before save.
	NameKeyValidator func(string) error
	// DefaultDistilleryKey holds the default value on creation for the "distillery_key" field.
	DefaultDistilleryKey string
	// DefaultSpiritType holds the default value on creation for the "spirit_type" field.
	DefaultSpiritType string
	// SpiritTypeValidator is a validator for the "spirit_type" field. It is called by the builders before save.
	SpiritTypeValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Whiskey queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByDistillery orders the results by the distillery field.
func ByDistillery(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistillery, opts...).ToFunc()
}

// ByNameKey orders the results by the name_key field.
func ByNameKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNameKey, opts...).ToFunc()
}

// ByDistilleryKey orders the results by the distillery_key field.
func ByDistilleryKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistilleryKey, opts...).ToFunc()
}

// BySpiritType orders the results by the spirit_type field.
func BySpiritType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSpiritType, opts...).ToFunc()
}

// ByAgeYears orders the results by the age_years field.
func ByAgeYears(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgeYears, opts...).ToFunc()
}

// ByAbv orders the results by the abv field.
func ByAbv(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAbv, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByListingsCount orders the results by listings count.
func ByListingsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newListingsStep(), opts...)
	}
}

// ByListings orders the results by listings terms.
func ByListings(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newListingsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newListingsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ListingsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ListingsTable, ListingsColumn),
	)
}
