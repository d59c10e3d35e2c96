// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/google/uuid"
)

// Bar is the model entity for the Bar schema.
type Bar struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// Address holds the value of the "address" field.
	Address *string `json:"address,omitempty"`
	// City holds the value of the "city" field.
	City *string `json:"city,omitempty"`
	// WebsiteURL holds the value of the "website_url" field.
	WebsiteURL *string `json:"website_url,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BarQuery when eager-loading is set.
	Edges        BarEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BarEdges holds the relations/edges for other nodes in the graph.
type BarEdges struct {
	// Listings holds the value of the listings edge.
	Listings []*BarWhiskey `json:"listings,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*TrawlJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// ListingsOrErr returns the Listings value or an error if the edge
// was not loaded in eager-loading.
func (e BarEdges) ListingsOrErr() ([]*BarWhiskey, error) {
	if e.loadedTypes[0] {
		return e.Listings, nil
	}
	return nil, &NotLoadedError{edge: "listings"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e BarEdges) JobsOrErr() ([]*TrawlJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Bar) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bar.FieldName, bar.FieldAddress, bar.FieldCity, bar.FieldWebsiteURL:
			values[i] = new(sql.NullString)
		case bar.FieldCreatedAt, bar.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case bar.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Bar fields.
func (_m *Bar) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bar.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case bar.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case bar.FieldAddress:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value.Valid {
				_m.Address = new(string)
				*_m.Address = value.String
			}
		case bar.FieldCity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field city", values[i])
			} else if value.Valid {
				_m.City = new(string)
				*_m.City = value.String
			}
		case bar.FieldWebsiteURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field website_url", values[i])
			} else if value.Valid {
				_m.WebsiteURL = new(string)
				*_m.WebsiteURL = value.String
			}
		case bar.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case bar.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the Bar.
// This includes values selected through modifiers, order, etc.
func (_m *Bar) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryListings queries the "listings" edge of the Bar entity.
func (_m *Bar) QueryListings() *BarWhiskeyQuery {
	return NewBarClient(_m.config).QueryListings(_m)
}

// QueryJobs queries the "jobs" edge of the Bar entity.
func (_m *Bar) QueryJobs() *TrawlJobQuery {
	return NewBarClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Bar.
// Note that you need to call Bar.Unwrap() before calling this method if this Bar
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Bar) Update() *BarUpdateOne {
	return NewBarClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Bar entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Bar) Unwrap() *Bar {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Bar is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Bar) String() string {
	var builder strings.Builder
	builder.WriteString("Bar(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	if v := _m.Address; v != nil {
		builder.WriteString("address=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.City; v != nil {
		builder.WriteString("city=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.WebsiteURL; v != nil {
		builder.WriteString("website_url=")
		builder.WriteString(*v)
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

// Bars is a parsable slice of Bar.
type Bars []*Bar
