// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/cbas1974-projet/GJJ-TRACKER/ent/drillevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/practiceevent"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/schema"
	"github.com/cbas1974-projet/GJJ-TRACKER/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	drilleventMixin := schema.DrillEvent{}.Mixin()
	drilleventMixinFields0 := drilleventMixin[0].Fields()
	_ = drilleventMixinFields0
	drilleventFields := schema.DrillEvent{}.Fields()
	_ = drilleventFields
	// drilleventDescTimestamp is the schema descriptor for timestamp field.
	drilleventDescTimestamp := drilleventMixinFields0[1].Descriptor()
	// drillevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	drillevent.DefaultTimestamp = drilleventDescTimestamp.Default.(func() time.Time)
	// drilleventDescProfileID is the schema descriptor for profile_id field.
	drilleventDescProfileID := drilleventFields[0].Descriptor()
	// drillevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	drillevent.ProfileIDValidator = drilleventDescProfileID.Validators[0].(func(string) error)
	// drilleventDescDrillKey is the schema descriptor for drill_key field.
	drilleventDescDrillKey := drilleventFields[1].Descriptor()
	// drillevent.DrillKeyValidator is a validator for the "drill_key" field. It is called by the builders before save.
	drillevent.DrillKeyValidator = drilleventDescDrillKey.Validators[0].(func(string) error)
	practiceeventMixin := schema.PracticeEvent{}.Mixin()
	practiceeventMixinFields0 := practiceeventMixin[0].Fields()
	_ = practiceeventMixinFields0
	practiceeventFields := schema.PracticeEvent{}.Fields()
	_ = practiceeventFields
	// practiceeventDescTimestamp is the schema descriptor for timestamp field.
	practiceeventDescTimestamp := practiceeventMixinFields0[1].Descriptor()
	// practiceevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	practiceevent.DefaultTimestamp = practiceeventDescTimestamp.Default.(func() time.Time)
	// practiceeventDescProfileID is the schema descriptor for profile_id field.
	practiceeventDescProfileID := practiceeventFields[0].Descriptor()
	// practiceevent.ProfileIDValidator is a validator for the "profile_id" field. It is called by the builders before save.
	practiceevent.ProfileIDValidator = practiceeventDescProfileID.Validators[0].(func(string) error)
	// practiceeventDescTechniqueID is the schema descriptor for technique_id field.
	practiceeventDescTechniqueID := practiceeventFields[1].Descriptor()
	// practiceevent.TechniqueIDValidator is a validator for the "technique_id" field. It is called by the builders before save.
	practiceevent.TechniqueIDValidator = practiceeventDescTechniqueID.Validators[0].(func(string) error)
	// practiceeventDescVariationID is the schema descriptor for variation_id field.
	practiceeventDescVariationID := practiceeventFields[2].Descriptor()
	// practiceevent.VariationIDValidator is a validator for the "variation_id" field. It is called by the builders before save.
	practiceevent.VariationIDValidator = practiceeventDescVariationID.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
