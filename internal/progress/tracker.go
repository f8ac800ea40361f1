package progress

import (
	"time"

	"github.com/google/uuid"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/drilltext"
)

// IDFunc produces identifiers for newly created records. Injected so
// callers (and tests) control identity generation; the default is a
// random UUID.
type IDFunc func() string

// Tracker owns the mutation paths over one learner's profile. All
// reads used by aggregation go through the pure accessors instead —
// the tracker is only consulted when a practice event, plan edit, or
// override change is being recorded.
type Tracker struct {
	profile *StudentProfile
	newID   IDFunc
	now     func() time.Time
}

// NewTracker wraps a profile. A nil newID falls back to UUIDs.
func NewTracker(profile *StudentProfile, newID IDFunc) *Tracker {
	if newID == nil {
		newID = uuid.NewString
	}
	return &Tracker{profile: profile, newID: newID, now: time.Now}
}

// Profile returns the wrapped profile.
func (tr *Tracker) Profile() *StudentProfile {
	return tr.profile
}

// ensureVariation materializes the lesson and variation records on
// first touch. Absent records stay absent until a mutation needs them.
func (tr *Tracker) ensureVariation(techniqueID, variationID string) *VariationProgress {
	if tr.profile.Progress == nil {
		tr.profile.Progress = make(map[string]*LessonProgress)
	}
	lesson := tr.profile.Progress[techniqueID]
	if lesson == nil {
		lesson = &LessonProgress{TechniqueID: techniqueID, Variations: make(map[string]*VariationProgress)}
		tr.profile.Progress[techniqueID] = lesson
	}
	if lesson.Variations == nil {
		lesson.Variations = make(map[string]*VariationProgress)
	}
	vp := lesson.Variations[variationID]
	if vp == nil {
		vp = &VariationProgress{ID: variationID}
		lesson.Variations[variationID] = vp
	}
	return vp
}

// LogPractice records one practice rep: the matching counter is
// incremented, the event is prepended to the history, and physical
// practice (training or drill) stamps LastPracticed.
func (tr *Tracker) LogPractice(techniqueID, variationID string, kind Kind) *VariationProgress {
	vp := tr.ensureVariation(techniqueID, variationID)
	now := tr.now()

	switch kind {
	case KindVideo:
		vp.VideoCount++
	case KindTraining:
		vp.TrainingCount++
	case KindDrill:
		vp.DrillCount++
	}
	if kind != KindVideo {
		vp.LastPracticed = now
	}
	vp.History = append([]PracticeEvent{{Date: now, Kind: kind}}, vp.History...)
	return vp
}

// Adjust moves a counter by delta, clamping at zero. Used by manual
// corrections; no history event is written.
func (tr *Tracker) Adjust(techniqueID, variationID string, kind Kind, delta int) *VariationProgress {
	vp := tr.ensureVariation(techniqueID, variationID)
	bump := func(n int) int {
		n += delta
		if n < 0 {
			return 0
		}
		return n
	}
	switch kind {
	case KindVideo:
		vp.VideoCount = bump(vp.VideoCount)
	case KindTraining:
		vp.TrainingCount = bump(vp.TrainingCount)
	case KindDrill:
		vp.DrillCount = bump(vp.DrillCount)
	}
	return vp
}

// SetPlanned flags or unflags a variation for the practice plan.
func (tr *Tracker) SetPlanned(techniqueID, variationID string, planned bool) {
	tr.ensureVariation(techniqueID, variationID).IsPlanned = planned
}

// SetNotes replaces the free-text notes on a variation.
func (tr *Tracker) SetNotes(techniqueID, variationID, notes string) {
	tr.ensureVariation(techniqueID, variationID).Notes = notes
}

// ResetLesson deletes the entire lesson record, variations and
// history included. This is the only way variation records die.
func (tr *Tracker) ResetLesson(techniqueID string) {
	delete(tr.profile.Progress, techniqueID)
}

// RecordDrillRun logs a run of a keyed drill (reflex drill or fight
// simulation): the run timestamp is prepended to the drill history and
// every target variation receives one drill rep.
func (tr *Tracker) RecordDrillRun(drillKey string, targets []drilltext.Target) {
	if tr.profile.DrillStatus == nil {
		tr.profile.DrillStatus = make(map[string]*DrillStatus)
	}
	st := tr.profile.DrillStatus[drillKey]
	if st == nil {
		st = &DrillStatus{ID: drillKey}
		tr.profile.DrillStatus[drillKey] = st
	}
	st.History = append([]time.Time{tr.now()}, st.History...)

	for _, t := range targets {
		tr.LogPractice(t.TechniqueID, t.VariationID, KindDrill)
	}
}

// SetConnectionOverride replaces the flow-chart edges for a technique.
// A nil override clears the customization, restoring the defaults.
func (tr *Tracker) SetConnectionOverride(techniqueID string, override *ConnectionOverride) {
	if tr.profile.CustomConnections == nil {
		tr.profile.CustomConnections = make(map[string]*ConnectionOverride)
	}
	if override == nil {
		delete(tr.profile.CustomConnections, techniqueID)
		return
	}
	tr.profile.CustomConnections[techniqueID] = override
}

// AddPlannedCombo appends a source → focus → destination sequence to
// the plan and returns it. Source and destination may be empty.
func (tr *Tracker) AddPlannedCombo(sourceID, techniqueID, destinationID string) PlannedCombo {
	combo := PlannedCombo{
		ID:            tr.newID(),
		SourceID:      sourceID,
		TechniqueID:   techniqueID,
		DestinationID: destinationID,
		Created:       tr.now(),
	}
	tr.profile.PlannedCombos = append(tr.profile.PlannedCombos, combo)
	return combo
}

// RemovePlannedCombo drops a combo by ID. Unknown IDs are a no-op.
func (tr *Tracker) RemovePlannedCombo(id string) {
	combos := tr.profile.PlannedCombos
	for i, c := range combos {
		if c.ID == id {
			tr.profile.PlannedCombos = append(combos[:i], combos[i+1:]...)
			return
		}
	}
}
