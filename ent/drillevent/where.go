// Code generated by ent, DO NOT EDIT.

package drillevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldProfileID, v))
}

// DrillKey applies equality check predicate on the "drill_key" field. It's identical to DrillKeyEQ.
func DrillKey(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillKey, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// DrillKeyEQ applies the EQ predicate on the "drill_key" field.
func DrillKeyEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEQ(FieldDrillKey, v))
}

// DrillKeyNEQ applies the NEQ predicate on the "drill_key" field.
func DrillKeyNEQ(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNEQ(FieldDrillKey, v))
}

// DrillKeyIn applies the In predicate on the "drill_key" field.
func DrillKeyIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldIn(FieldDrillKey, vs...))
}

// DrillKeyNotIn applies the NotIn predicate on the "drill_key" field.
func DrillKeyNotIn(vs ...string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldNotIn(FieldDrillKey, vs...))
}

// DrillKeyGT applies the GT predicate on the "drill_key" field.
func DrillKeyGT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGT(FieldDrillKey, v))
}

// DrillKeyGTE applies the GTE predicate on the "drill_key" field.
func DrillKeyGTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldGTE(FieldDrillKey, v))
}

// DrillKeyLT applies the LT predicate on the "drill_key" field.
func DrillKeyLT(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLT(FieldDrillKey, v))
}

// DrillKeyLTE applies the LTE predicate on the "drill_key" field.
func DrillKeyLTE(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldLTE(FieldDrillKey, v))
}

// DrillKeyContains applies the Contains predicate on the "drill_key" field.
func DrillKeyContains(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContains(FieldDrillKey, v))
}

// DrillKeyHasPrefix applies the HasPrefix predicate on the "drill_key" field.
func DrillKeyHasPrefix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasPrefix(FieldDrillKey, v))
}

// DrillKeyHasSuffix applies the HasSuffix predicate on the "drill_key" field.
func DrillKeyHasSuffix(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldHasSuffix(FieldDrillKey, v))
}

// DrillKeyEqualFold applies the EqualFold predicate on the "drill_key" field.
func DrillKeyEqualFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldEqualFold(FieldDrillKey, v))
}

// DrillKeyContainsFold applies the ContainsFold predicate on the "drill_key" field.
func DrillKeyContainsFold(v string) predicate.DrillEvent {
	return predicate.DrillEvent(sql.FieldContainsFold(FieldDrillKey, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DrillEvent) predicate.DrillEvent {
	return predicate.DrillEvent(sql.NotPredicates(p))
}
