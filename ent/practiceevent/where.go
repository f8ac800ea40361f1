// Code generated by ent, DO NOT EDIT.

package practiceevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// ProfileID applies equality check predicate on the "profile_id" field. It's identical to ProfileIDEQ.
func ProfileID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldProfileID, v))
}

// TechniqueID applies equality check predicate on the "technique_id" field. It's identical to TechniqueIDEQ.
func TechniqueID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTechniqueID, v))
}

// VariationID applies equality check predicate on the "variation_id" field. It's identical to VariationIDEQ.
func VariationID(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldVariationID, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTimestamp, v))
}

// ProfileIDEQ applies the EQ predicate on the "profile_id" field.
func ProfileIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldProfileID, v))
}

// ProfileIDNEQ applies the NEQ predicate on the "profile_id" field.
func ProfileIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldProfileID, v))
}

// ProfileIDIn applies the In predicate on the "profile_id" field.
func ProfileIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldProfileID, vs...))
}

// ProfileIDNotIn applies the NotIn predicate on the "profile_id" field.
func ProfileIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldProfileID, vs...))
}

// ProfileIDGT applies the GT predicate on the "profile_id" field.
func ProfileIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldProfileID, v))
}

// ProfileIDGTE applies the GTE predicate on the "profile_id" field.
func ProfileIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldProfileID, v))
}

// ProfileIDLT applies the LT predicate on the "profile_id" field.
func ProfileIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldProfileID, v))
}

// ProfileIDLTE applies the LTE predicate on the "profile_id" field.
func ProfileIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldProfileID, v))
}

// ProfileIDContains applies the Contains predicate on the "profile_id" field.
func ProfileIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldProfileID, v))
}

// ProfileIDHasPrefix applies the HasPrefix predicate on the "profile_id" field.
func ProfileIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldProfileID, v))
}

// ProfileIDHasSuffix applies the HasSuffix predicate on the "profile_id" field.
func ProfileIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldProfileID, v))
}

// ProfileIDEqualFold applies the EqualFold predicate on the "profile_id" field.
func ProfileIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldProfileID, v))
}

// ProfileIDContainsFold applies the ContainsFold predicate on the "profile_id" field.
func ProfileIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldProfileID, v))
}

// TechniqueIDEQ applies the EQ predicate on the "technique_id" field.
func TechniqueIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldTechniqueID, v))
}

// TechniqueIDNEQ applies the NEQ predicate on the "technique_id" field.
func TechniqueIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldTechniqueID, v))
}

// TechniqueIDIn applies the In predicate on the "technique_id" field.
func TechniqueIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldTechniqueID, vs...))
}

// TechniqueIDNotIn applies the NotIn predicate on the "technique_id" field.
func TechniqueIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldTechniqueID, vs...))
}

// TechniqueIDGT applies the GT predicate on the "technique_id" field.
func TechniqueIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldTechniqueID, v))
}

// TechniqueIDGTE applies the GTE predicate on the "technique_id" field.
func TechniqueIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldTechniqueID, v))
}

// TechniqueIDLT applies the LT predicate on the "technique_id" field.
func TechniqueIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldTechniqueID, v))
}

// TechniqueIDLTE applies the LTE predicate on the "technique_id" field.
func TechniqueIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldTechniqueID, v))
}

// TechniqueIDContains applies the Contains predicate on the "technique_id" field.
func TechniqueIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldTechniqueID, v))
}

// TechniqueIDHasPrefix applies the HasPrefix predicate on the "technique_id" field.
func TechniqueIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldTechniqueID, v))
}

// TechniqueIDHasSuffix applies the HasSuffix predicate on the "technique_id" field.
func TechniqueIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldTechniqueID, v))
}

// TechniqueIDEqualFold applies the EqualFold predicate on the "technique_id" field.
func TechniqueIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldTechniqueID, v))
}

// TechniqueIDContainsFold applies the ContainsFold predicate on the "technique_id" field.
func TechniqueIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldTechniqueID, v))
}

// VariationIDEQ applies the EQ predicate on the "variation_id" field.
func VariationIDEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldVariationID, v))
}

// VariationIDNEQ applies the NEQ predicate on the "variation_id" field.
func VariationIDNEQ(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldVariationID, v))
}

// VariationIDIn applies the In predicate on the "variation_id" field.
func VariationIDIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldVariationID, vs...))
}

// VariationIDNotIn applies the NotIn predicate on the "variation_id" field.
func VariationIDNotIn(vs ...string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldVariationID, vs...))
}

// VariationIDGT applies the GT predicate on the "variation_id" field.
func VariationIDGT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGT(FieldVariationID, v))
}

// VariationIDGTE applies the GTE predicate on the "variation_id" field.
func VariationIDGTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldGTE(FieldVariationID, v))
}

// VariationIDLT applies the LT predicate on the "variation_id" field.
func VariationIDLT(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLT(FieldVariationID, v))
}

// VariationIDLTE applies the LTE predicate on the "variation_id" field.
func VariationIDLTE(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldLTE(FieldVariationID, v))
}

// VariationIDContains applies the Contains predicate on the "variation_id" field.
func VariationIDContains(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContains(FieldVariationID, v))
}

// VariationIDHasPrefix applies the HasPrefix predicate on the "variation_id" field.
func VariationIDHasPrefix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasPrefix(FieldVariationID, v))
}

// VariationIDHasSuffix applies the HasSuffix predicate on the "variation_id" field.
func VariationIDHasSuffix(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldHasSuffix(FieldVariationID, v))
}

// VariationIDEqualFold applies the EqualFold predicate on the "variation_id" field.
func VariationIDEqualFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEqualFold(FieldVariationID, v))
}

// VariationIDContainsFold applies the ContainsFold predicate on the "variation_id" field.
func VariationIDContainsFold(v string) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldContainsFold(FieldVariationID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.FieldNotIn(FieldKind, vs...))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PracticeEvent) predicate.PracticeEvent {
	return predicate.PracticeEvent(sql.NotPredicates(p))
}
