// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the practiceevent type in the database.
	Label = "practice_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldProfileID holds the string denoting the profile_id field in the database.
	FieldProfileID = "profile_id"
	// FieldTechniqueID holds the string denoting the technique_id field in the database.
	FieldTechniqueID = "technique_id"
	// FieldVariationID holds the string denoting the variation_id field in the database.
	FieldVariationID = "variation_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// Table holds the table name of the practiceevent in the database.
	Table = "practice_events"
)

// Columns holds all SQL columns for practiceevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldProfileID,
	FieldTechniqueID,
	FieldVariationID,
	FieldKind,
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
	// TechniqueIDValidator is a validator for the "technique_id" field. It is called by the builders before save.
	TechniqueIDValidator func(string) error
	// VariationIDValidator is a validator for the "variation_id" field. It is called by the builders before save.
	VariationIDValidator func(string) error
)

// Kind defines the type for the "kind" enum field.
type Kind string

// Kind values.
const (
	KindVideo    Kind = "video"
	KindTraining Kind = "training"
	KindDrill    Kind = "drill"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindVideo, KindTraining, KindDrill:
		return nil
	default:
		return fmt.Errorf("practiceevent: invalid enum value for kind field: %q", k)
	}
}

// OrderOption defines the ordering options for the PracticeEvent queries.
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

// ByTechniqueID orders the results by the technique_id field.
func ByTechniqueID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTechniqueID, opts...).ToFunc()
}

// ByVariationID orders the results by the variation_id field.
func ByVariationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVariationID, opts...).ToFunc()
}

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}
