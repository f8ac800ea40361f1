// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// DrillEvent is the predicate function for drillevent builders.
type DrillEvent func(*sql.Selector)

// PracticeEvent is the predicate function for practiceevent builders.
type PracticeEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)
