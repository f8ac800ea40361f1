package progress

import "time"

// Kind identifies the type of a logged practice event.
type Kind string

const (
	KindVideo    Kind = "video"    // Video review
	KindTraining Kind = "training" // Live partner training
	KindDrill    Kind = "drill"    // Reflex drill or fight simulation rep
)

// AllKinds returns the practice kinds in display order.
func AllKinds() []Kind {
	return []Kind{KindVideo, KindTraining, KindDrill}
}

// PracticeEvent is one logged practice rep.
type PracticeEvent struct {
	Date time.Time
	Kind Kind
}

// VariationProgress is the per-learner mutable record for a single
// technique variation. A nil record is a valid state meaning "never
// touched"; counts are kept non-negative by the mutation paths.
type VariationProgress struct {
	ID            string
	VideoCount    int
	TrainingCount int
	DrillCount    int
	IsPlanned     bool
	Notes         string
	LastPracticed time.Time       // zero when never physically practiced
	History       []PracticeEvent // newest first
}

// LessonProgress groups a learner's variation records for one technique.
type LessonProgress struct {
	TechniqueID string
	Variations  map[string]*VariationProgress
}

// DrillStatus records when a keyed drill was last run. Keys follow the
// "reflex-<techniqueID>" / "sim-<techniqueID>" convention.
type DrillStatus struct {
	ID      string
	History []time.Time // newest first
}

// ReflexDrillKey returns the drill-status key for a technique's reflex drill.
func ReflexDrillKey(techniqueID string) string { return "reflex-" + techniqueID }

// SimulationKey returns the drill-status key for a technique's fight simulation.
func SimulationKey(techniqueID string) string { return "sim-" + techniqueID }

// ConnectionOverride replaces a technique's default flow-chart edges
// for one learner. It replaces wholesale, never merges: an override
// with empty slices means "no connections", not "use the defaults".
type ConnectionOverride struct {
	Parents  []string
	Children []string
}

// PlannedCombo is a learner-curated source → focus → destination
// sequence saved for future practice. Source and destination are
// optional; the focus technique is not.
type PlannedCombo struct {
	ID            string
	SourceID      string
	TechniqueID   string
	DestinationID string
	Created       time.Time
}

// StudentProfile owns all mutable state for one learner.
type StudentProfile struct {
	ID                string
	Name              string
	Progress          map[string]*LessonProgress
	DrillStatus       map[string]*DrillStatus
	CustomConnections map[string]*ConnectionOverride
	PlannedCombos     []PlannedCombo
}

// NewProfile creates an empty profile with all maps initialized.
func NewProfile(id, name string) *StudentProfile {
	return &StudentProfile{
		ID:                id,
		Name:              name,
		Progress:          make(map[string]*LessonProgress),
		DrillStatus:       make(map[string]*DrillStatus),
		CustomConnections: make(map[string]*ConnectionOverride),
	}
}
