// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the drillevent type in the database.
	Label = "drill_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldDrillKey holds the string denoting the drill_key field in the database.
	FieldDrillKey = "drill_key"
	// Table holds the table name of the drillevent in the database.
	Table = "drill_events"
)

// Columns holds all SQL columns for drillevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProfileID,
	FieldDrillKey,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	ProfileIDValidator func(string) error
	// DrillKeyValidator is a validator for the "drill_key" field. It is called by the builders before save.
	DrillKeyValidator func(string) error
)

// OrderOption defines the ordering options for the DrillEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByProfileID orders the results by the profile_id field.
func ByProfileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProfileID, opts...).ToFunc()
}

// ByDrillKey orders the results by the drill_key field.
func ByDrillKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDrillKey, opts...).ToFunc()
}
