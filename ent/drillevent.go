// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/drillevent"
)

// DrillEvent is the model entity for the DrillEvent schema.
type DrillEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// ProfileID holds the value of the "profile_id" field.
	ProfileID string `json:"profile_id,omitempty"`
	// DrillKey holds the value of the "drill_key" field.
	DrillKey     string `json:"drill_key,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DrillEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID, drillevent.FieldSequence:
			values[i] = new(sql.NullInt64)
		case drillevent.FieldProfileID, drillevent.FieldDrillKey:
			values[i] = new(sql.NullString)
		case drillevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DrillEvent fields.
func (_m *DrillEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case drillevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case drillevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				_m.Sequence = value.Int64
			}
		case drillevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				_m.Timestamp = value.Time
			}
		case drillevent.FieldProfileID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field profile_id", values[i])
			} else if value.Valid {
				_m.ProfileID = value.String
			}
		case drillevent.FieldDrillKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field drill_key", values[i])
			} else if value.Valid {
				_m.DrillKey = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DrillEvent.
// This includes values selected through modifiers, order, etc.
func (_m *DrillEvent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DrillEvent.
// Note that you need to call DrillEvent.Unwrap() before calling this method if this DrillEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DrillEvent) Update() *DrillEventUpdateOne {
	return NewDrillEventClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DrillEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DrillEvent) Unwrap() *DrillEvent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DrillEvent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DrillEvent) String() string {
	var builder strings.Builder
	builder.WriteString("DrillEvent(")
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
	builder.WriteString("drill_key=")
	builder.WriteString(_m.DrillKey)
	builder.WriteByte(')')
	return builder.String()
}

// DrillEvents is a parsable slice of DrillEvent.
type DrillEvents []*DrillEvent
