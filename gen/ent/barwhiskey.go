// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/barwhiskey"
	"github.com/dramhound/dramhound/gen/ent/whiskey"
	"github.com/google/uuid"
)

// BarWhiskey is the model entity for the BarWhiskey schema.
type BarWhiskey struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BarID holds the value of the "bar_id" field.
	BarID uuid.UUID `json:"bar_id,omitempty"`
	// WhiskeyID holds the value of the "whiskey_id" field.
	WhiskeyID uuid.UUID `json:"whiskey_id,omitempty"`
	// Price holds the value of the "price" field.
	Price *float64 `json:"price,omitempty"`
	// PourSize holds the value of the "pour_size" field.
	PourSize *string `json:"pour_size,omitempty"`
	// Available holds the value of the "available" field.
	Available bool `json:"available,omitempty"`
	// Notes holds the value of the "notes" field.
	Notes *string `json:"notes,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// LastVerified holds the value of the "last_verified" field.
	LastVerified time.Time `json:"last_verified,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BarWhiskeyQuery when eager-loading is set.
	Edges        BarWhiskeyEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BarWhiskeyEdges holds the relations/edges for other nodes in the graph.
type BarWhiskeyEdges struct {
	// Bar holds the value of the bar edge.
	Bar *Bar `json:"bar,omitempty"`
	// Whiskey holds the value of the whiskey edge.
	Whiskey *Whiskey `json:"whiskey,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// BarOrErr returns the Bar value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BarWhiskeyEdges) BarOrErr() (*Bar, error) {
	if e.Bar != nil {
		return e.Bar, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bar.Label}
	}
	return nil, &NotLoadedError{edge: "bar"}
}

// WhiskeyOrErr returns the Whiskey value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BarWhiskeyEdges) WhiskeyOrErr() (*Whiskey, error) {
	if e.Whiskey != nil {
		return e.Whiskey, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: whiskey.Label}
	}
	return nil, &NotLoadedError{edge: "whiskey"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BarWhiskey) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case barwhiskey.FieldAvailable:
			values[i] = new(sql.NullBool)
		case barwhiskey.FieldPrice:
			values[i] = new(sql.NullFloat64)
		case barwhiskey.FieldPourSize, barwhiskey.FieldNotes, barwhiskey.FieldSourceType:
			values[i] = new(sql.NullString)
		case barwhiskey.FieldLastVerified, barwhiskey.FieldCreatedAt, barwhiskey.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case barwhiskey.FieldID, barwhiskey.FieldBarID, barwhiskey.FieldWhiskeyID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BarWhiskey fields.
func (_m *BarWhiskey) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case barwhiskey.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case barwhiskey.FieldBarID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bar_id", values[i])
			} else if value != nil {
				_m.BarID = *value
			}
		case barwhiskey.FieldWhiskeyID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field whiskey_id", values[i])
			} else if value != nil {
				_m.WhiskeyID = *value
			}
		case barwhiskey.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = new(float64)
				*_m.Price = value.Float64
			}
		case barwhiskey.FieldPourSize:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pour_size", values[i])
			} else if value.Valid {
				_m.PourSize = new(string)
				*_m.PourSize = value.String
			}
		case barwhiskey.FieldAvailable:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field available", values[i])
			} else if value.Valid {
				_m.Available = value.Bool
			}
		case barwhiskey.FieldNotes:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field notes", values[i])
			} else if value.Valid {
				_m.Notes = new(string)
				*_m.Notes = value.String
			}
		case barwhiskey.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case barwhiskey.FieldLastVerified:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_verified", values[i])
			} else if value.Valid {
				_m.LastVerified = value.Time
			}
		case barwhiskey.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case barwhiskey.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BarWhiskey.
// This includes values selected through modifiers, order, etc.
func (_m *BarWhiskey) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBar queries the "bar" edge of the BarWhiskey entity.
func (_m *BarWhiskey) QueryBar() *BarQuery {
	return NewBarWhiskeyClient(_m.config).QueryBar(_m)
}

// QueryWhiskey queries the "whiskey" edge of the BarWhiskey entity.
func (_m *BarWhiskey) QueryWhiskey() *WhiskeyQuery {
	return NewBarWhiskeyClient(_m.config).QueryWhiskey(_m)
}

// Update returns a builder for updating this BarWhiskey.
// Note that you need to call BarWhiskey.Unwrap() before calling this method if this BarWhiskey
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BarWhiskey) Update() *BarWhiskeyUpdateOne {
	return NewBarWhiskeyClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BarWhiskey entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BarWhiskey) Unwrap() *BarWhiskey {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BarWhiskey is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BarWhiskey) String() string {
	var builder strings.Builder
	builder.WriteString("BarWhiskey(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bar_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BarID))
	builder.WriteString(", ")
	builder.WriteString("whiskey_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhiskeyID))
	builder.WriteString(", ")
	if v := _m.Price; v != nil {
		builder.WriteString("price=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PourSize; v != nil {
		builder.WriteString("pour_size=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("available=")
	builder.WriteString(fmt.Sprintf("%v", _m.Available))
	builder.WriteString(", ")
	if v := _m.Notes; v != nil {
		builder.WriteString("notes=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("last_verified=")
	builder.WriteString(_m.LastVerified.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BarWhiskeys is a parsable slice of BarWhiskey.
type BarWhiskeys []*BarWhiskey
