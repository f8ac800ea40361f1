package store

import (
	"context"
	"time"
)

// PracticeEventData captures one practice rep for the event log.
type PracticeEventData struct {
	ProfileID   string
	TechniqueID string
	VariationID string
	Kind        string // video, training, drill
}

// DrillEventData captures one run of a keyed drill.
type DrillEventData struct {
	ProfileID string
	DrillKey  string // "reflex-<techniqueID>" or "sim-<techniqueID>"
}

// PracticeCounts are per-kind totals for one variation, rebuilt from
// the event log.
type PracticeCounts struct {
	Video    int
	Training int
	Drill    int
}

// EventRepo provides append and query access to the practice event log.
type EventRepo interface {
	// AppendPractice records one practice rep.
	AppendPractice(ctx context.Context, data PracticeEventData) error

	// AppendDrillRun records one run of a reflex drill or simulation.
	AppendDrillRun(ctx context.Context, data DrillEventData) error

	// PracticeCounts rebuilds a variation's counters from the log.
	PracticeCounts(ctx context.Context, profileID, techniqueID, variationID string) (PracticeCounts, error)

	// TotalCounts returns a profile's lifetime per-kind totals.
	TotalCounts(ctx context.Context, profileID string) (PracticeCounts, error)

	// LatestPhysicalPractice returns the timestamp of the profile's
	// most recent non-video practice, or the zero time if none exists.
	LatestPhysicalPractice(ctx context.Context, profileID string) (time.Time, error)

	// LastDrillRun returns the most recent run timestamp for a drill
	// key, or the zero time when the drill was never run.
	LastDrillRun(ctx context.Context, profileID, drillKey string) (time.Time, error)
}

// SnapshotData captures every student profile at a point in time. The
// JSON field names match the exported data format of the original web
// app, so existing exports round-trip unchanged.
type SnapshotData struct {
	Version         int            `json:"version"`
	ActiveProfileID string         `json:"activeStudentId"`
	Profiles        []*ProfileData `json:"students"`
}

// Snapshot represents a point-in-time capture of all learner state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages learner state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}
