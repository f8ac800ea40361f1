package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DrillEvent records one run of a keyed drill: a reflex drill
// ("reflex-<techniqueID>") or a fight simulation ("sim-<techniqueID>").
type DrillEvent struct {
	ent.Schema
}

func (DrillEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (DrillEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").NotEmpty(),
		field.String("drill_key").NotEmpty(),
	}
}

func (DrillEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id", "drill_key"),
	}
}
