// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/practiceevent"
)

// PracticeEvent is the model entity for the PracticeEvent schema.
type PracticeEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID string `json:"profile_id,omitempty"`
	// TechniqueID holds the value of the "technique_id" field.
	TechniqueID string `json:"technique_id,omitempty"`
	// VariationID holds the value of the "variation_id" field.
	VariationID string `json:"variation_id,omitempty"`
	// Kind holds the value of the "kind" field.
	Kind         practiceevent.Kind `json:"kind,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PracticeEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID, practiceevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case practiceevent.FieldProfileID, practiceevent.FieldTechniqueID, practiceevent.FieldVariationID, practiceevent.FieldKind:
			values[i] = new(sql.NullString)
		case practiceevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PracticeEvent fields.
func (_m *PracticeEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case practiceevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case practiceevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case practiceevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case practiceevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case practiceevent.FieldTechniqueID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field technique_id", values[i])
			} else if value.Valid {
				_m.TechniqueID = value.String
			}
		case practiceevent.FieldVariationID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field variation_id", values[i])
			} else if value.Valid {
				_m.VariationID = value.String
			}
		case practiceevent.FieldKind:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field kind", values[i])
			} else if value.Valid {
				_m.Kind = practiceevent.Kind(value.String)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PracticeEvent.
// This includes values selected through modifiers, order, etc.
func (_m *PracticeEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this PracticeEvent.
// Note that you need to call PracticeEvent.Unwrap() before calling this method if this PracticeEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PracticeEvent) Update() *PracticeEventUpdateOne {
	return NewPracticeEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PracticeEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PracticeEvent) Unwrap() *PracticeEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PracticeEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PracticeEvent) String() string {
	var builder strings.Builder
	builder.WriteString("PracticeEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(_m.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("profile_id=")
	builder.WriteString(_m.ProfileID)
	builder.WriteString(", ")
	builder.WriteString("technique_id=")
	builder.WriteString(_m.TechniqueID)
	builder.WriteString(", ")
	builder.WriteString("variation_id=")
	builder.WriteString(_m.VariationID)
	builder.WriteString(", ")
	builder.WriteString("kind=")
	builder.WriteString(fmt.Sprintf("%v", _m.Kind))
	builder.WriteByte(')')
	return builder.String()
}

// PracticeEvents is a parsable slice of PracticeEvent.
type PracticeEvents []*PracticeEvent
