package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PracticeEvent records one practice rep on a technique variation.
// The per-variation counters in the snapshot are reconstructible from
// this log.
type PracticeEvent struct {
	ent.Schema
}

func (PracticeEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (PracticeEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("profile_id").NotEmpty(),
		field.String("technique_id").NotEmpty(),
		field.String("variation_id").NotEmpty(),
		field.Enum("kind").Values("video", "training", "drill"),
	}
}

func (PracticeEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("profile_id"),
		index.Fields("technique_id", "variation_id"),
	}
}
