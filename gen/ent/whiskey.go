// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// Whiskey is the model entity for the Whiskey schema.
type Whiskey struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Distillery holds the value of the "distillery" field.
	Distillery *string `json:"distillery,omitempty"`
	// NameKey holds the value of the "name_key" field.
	NameKey string `json:"name_key,omitempty"`
	// DistilleryKey holds the value of the "distillery_key" field.
	DistilleryKey string `json:"distillery_key,omitempty"`
	// SpiritType holds the value of the "spirit_type" field.
	SpiritType string `json:"spirit_type,omitempty"`
	// AgeYears holds the value of the "age_years" field.
	AgeYears *int `json:"age_years,omitempty"`
	// Abv holds the value of the "abv" field.
	Abv *float64 `json:"abv,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the WhiskeyQuery when eager-loading is set.
	Edges        WhiskeyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// WhiskeyEdges holds the relations/edges for other nodes in the graph.
type WhiskeyEdges struct {
	// Listings holds the value of the listings edge.
	Listings []*BarWhiskey `json:"listings,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// ListingsOrErr returns the Listings value or an error if the edge
// was not loaded in eager-loading.
func (e WhiskeyEdges) ListingsOrErr() ([]*BarWhiskey, error) {
	if e.loadedTypes[0] {
		return e.Listings, nil
	}
	return nil, &NotLoadedError{edge: "listings"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Whiskey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case whiskey.FieldAbv:
			values[i] = new(sql.NullFloat64)
		case whiskey.FieldAgeYears:
			values[i] = new(sql.NullInt64)
		case whiskey.FieldName, whiskey.FieldDistillery, whiskey.FieldNameKey, whiskey.FieldDistilleryKey, whiskey.FieldSpiritType:
			values[i] = new(sql.NullString)
		case whiskey.FieldCreatedAt, whiskey.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case whiskey.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Whiskey fields.
func (_m *Whiskey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case whiskey.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case whiskey.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case whiskey.FieldDistillery:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field distillery", values[i])
			} else if value.Valid {
				_m.Distillery = new(string)
				*_m.Distillery = value.String
			}
		case whiskey.FieldNameKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name_key", values[i])
			} else if value.Valid {
				_m.NameKey = value.String
			}
		case whiskey.FieldDistilleryKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field distillery_key", values[i])
			} else if value.Valid {
				_m.DistilleryKey = value.String
			}
		case whiskey.FieldSpiritType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field spirit_type", values[i])
			} else if value.Valid {
				_m.SpiritType = value.String
			}
		case whiskey.FieldAgeYears:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field age_years", values[i])
			} else if value.Valid {
				_m.AgeYears = new(int)
				*_m.AgeYears = int(value.Int64)
			}
		case whiskey.FieldAbv:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field abv", values[i])
			} else if value.Valid {
				_m.Abv = new(float64)
				*_m.Abv = value.Float64
			}
		case whiskey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case whiskey.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Whiskey.
// This includes values selected through modifiers, order, etc.
func (_m *Whiskey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListings queries the "listings" edge of the Whiskey entity.
func (_m *Whiskey) QueryListings() *BarWhiskeyQuery {
	return NewWhiskeyClient(_m.config).QueryListings(_m)
}

// Update returns a builder for updating this Whiskey.
// Note that you need to call Whiskey.Unwrap() before calling this method if this Whiskey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Whiskey) Update() *WhiskeyUpdateOne {
	return NewWhiskeyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Whiskey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Whiskey) Unwrap() *Whiskey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Whiskey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Whiskey) String() string {
	var builder strings.Builder
	builder.WriteString("Whiskey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Distillery; v != nil {
		builder.WriteString("distillery=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("name_key=")
	builder.WriteString(_m.NameKey)
	builder.WriteString(", ")
	builder.WriteString("distillery_key=")
	builder.WriteString(_m.DistilleryKey)
	builder.WriteString(", ")
	builder.WriteString("spirit_type=")
	builder.WriteString(_m.SpiritType)
	builder.WriteString(", ")
	if v := _m.AgeYears; v != nil {
		builder.WriteString("age_years=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Abv; v != nil {
		builder.WriteString("abv=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Whiskeys is a parsable slice of Whiskey.
type Whiskeys []*Whiskey
