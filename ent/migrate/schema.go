// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DrillEventsColumns holds the columns for the "drill_events" table.
	DrillEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "drill_key", Type: field.TypeString},
	}
	// DrillEventsTable holds the schema information for the "drill_events" table.
	DrillEventsTable = &schema.Table{
		Name:       "drill_events",
		Columns:    DrillEventsColumns,
		PrimaryKey: []*schema.Column{DrillEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "drillevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[1]},
			},
			{
				Name:    "drillevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[2]},
			},
			{
				Name:    "drillevent_profile_id_drill_key",
				Unique:  false,
				Columns: []*schema.Column{DrillEventsColumns[3], DrillEventsColumns[4]},
			},
		},
	}
	// PracticeEventsColumns holds the columns for the "practice_events" table.
	PracticeEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeString},
		{Name: "technique_id", Type: field.TypeString},
		{Name: "variation_id", Type: field.TypeString},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"video", "training", "drill"}},
	}
	// PracticeEventsTable holds the schema information for the "practice_events" table.
	PracticeEventsTable = &schema.Table{
		Name:       "practice_events",
		Columns:    PracticeEventsColumns,
		PrimaryKey: []*schema.Column{PracticeEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "practiceevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[1]},
			},
			{
				Name:    "practiceevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[2]},
			},
			{
				Name:    "practiceevent_profile_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[3]},
			},
			{
				Name:    "practiceevent_technique_id_variation_id",
				Unique:  false,
				Columns: []*schema.Column{PracticeEventsColumns[4], PracticeEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DrillEventsTable,
		PracticeEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
