// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/dramhound/dramhound/gen/ent/bar"
	"github.com/dramhound/dramhound/gen/ent/trawljob"
	"github.com/google/uuid"
)

// TrawlJob is the model entity for the TrawlJob schema.
type TrawlJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// BarID holds the value of the "bar_id" field.
	BarID uuid.UUID `json:"bar_id,omitempty"`
	// SourceRef holds the value of the "source_ref" field.
	SourceRef string `json:"source_ref,omitempty"`
	// SourceType holds the value of the "source_type" field.
	SourceType string `json:"source_type,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// WhiskeyCount holds the value of the "whiskey_count" field.
	WhiskeyCount int `json:"whiskey_count,omitempty"`
	// Result holds the value of the "result" field.
	Result json.RawMessage `json:"result,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// SubmittedBy holds the value of the "submitted_by" field.
	SubmittedBy *string `json:"submitted_by,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the TrawlJobQuery when eager-loading is set.
	Edges        TrawlJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// TrawlJobEdges holds the relations/edges for other nodes in the graph.
type TrawlJobEdges struct {
	// Bar holds the value of the bar edge.
	Bar *Bar `json:"bar,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// BarOrErr returns the Bar value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e TrawlJobEdges) BarOrErr() (*Bar, error) {
	if e.Bar != nil {
		return e.Bar, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: bar.Label}
	}
	return nil, &NotLoadedError{edge: "bar"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TrawlJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case trawljob.FieldResult:
			values[i] = new([]byte)
		case trawljob.FieldWhiskeyCount:
			values[i] = new(sql.NullInt64)
		case trawljob.FieldSourceRef, trawljob.FieldSourceType, trawljob.FieldStatus, trawljob.FieldErrorMessage, trawljob.FieldSubmittedBy:
			values[i] = new(sql.NullString)
		case trawljob.FieldCreatedAt, trawljob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case trawljob.FieldID, trawljob.FieldBarID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TrawlJob fields.
func (_m *TrawlJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case trawljob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case trawljob.FieldBarID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field bar_id", values[i])
			} else if value != nil {
				_m.BarID = *value
			}
		case trawljob.FieldSourceRef:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_ref", values[i])
			} else if value.Valid {
				_m.SourceRef = value.String
			}
		case trawljob.FieldSourceType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_type", values[i])
			} else if value.Valid {
				_m.SourceType = value.String
			}
		case trawljob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case trawljob.FieldWhiskeyCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field whiskey_count", values[i])
			} else if value.Valid {
				_m.WhiskeyCount = int(value.Int64)
			}
		case trawljob.FieldResult:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field result", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Result); err != nil {
					return fmt.Errorf("unmarshal field result: %w", err)
				}
			}
		case trawljob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case trawljob.FieldSubmittedBy:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field submitted_by", values[i])
			} else if value.Valid {
				_m.SubmittedBy = new(string)
				*_m.SubmittedBy = value.String
			}
		case trawljob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case trawljob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TrawlJob.
// This includes values selected through modifiers, order, etc.
func (_m *TrawlJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryBar queries the "bar" edge of the TrawlJob entity.
func (_m *TrawlJob) QueryBar() *BarQuery {
	return NewTrawlJobClient(_m.config).QueryBar(_m)
}

// Update returns a builder for updating this TrawlJob.
// Note that you need to call TrawlJob.Unwrap() before calling this method if this TrawlJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TrawlJob) Update() *TrawlJobUpdateOne {
	return NewTrawlJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TrawlJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TrawlJob) Unwrap() *TrawlJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TrawlJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TrawlJob) String() string {
	var builder strings.Builder
	builder.WriteString("TrawlJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("bar_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.BarID))
	builder.WriteString(", ")
	builder.WriteString("source_ref=")
	builder.WriteString(_m.SourceRef)
	builder.WriteString(", ")
	builder.WriteString("source_type=")
	builder.WriteString(_m.SourceType)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("whiskey_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.WhiskeyCount))
	builder.WriteString(", ")
	builder.WriteString("result=")
	builder.WriteString(fmt.Sprintf("%v", _m.Result))
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.SubmittedBy; v != nil {
		builder.WriteString("submitted_by=")
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

// TrawlJobs is a parsable slice of TrawlJob.
type TrawlJobs []*TrawlJob
