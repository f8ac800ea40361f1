package store

import (
	"sort"
	"time"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// Wire types for the snapshot JSON. Field names and the epoch-
// millisecond timestamps match the original web app's export format.
// Legacy exports may omit newer fields (notes, planned flags, drill
// status, combos); ToDomain absorbs that here so the core packages
// only ever see fully-shaped, invariant-satisfying values.

// ProfileData is the wire form of one student profile.
type ProfileData struct {
	ID                string                             `json:"id"`
	Name              string                             `json:"name"`
	Progress          map[string]*LessonProgressData     `json:"progress"`
	DrillStatus       map[string]*DrillStatusData        `json:"drillStatus"`
	CustomConnections map[string]*ConnectionOverrideData `json:"customConnections"`
	PlannedCombos     []PlannedComboData                 `json:"plannedCombos"`
}

// LessonProgressData is the wire form of one lesson's records.
type LessonProgressData struct {
	TechniqueID string                            `json:"techniqueId"`
	Variations  map[string]*VariationProgressData `json:"variations"`
}

// VariationProgressData is the wire form of one variation record.
type VariationProgressData struct {
	ID            string                `json:"id"`
	VideoCount    int                   `json:"videoCount"`
	TrainingCount int                   `json:"trainingCount"`
	DrillCount    int                   `json:"drillCount"`
	IsPlanned     bool                  `json:"isPlanned,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	LastPracticed int64                 `json:"lastPracticed,omitempty"` // epoch ms, 0 = never
	History       []PracticeSessionData `json:"history,omitempty"`
}

// PracticeSessionData is the wire form of one history entry.
type PracticeSessionData struct {
	Date int64  `json:"date"` // epoch ms
	Type string `json:"type"` // video, training, drill
}

// DrillStatusData is the wire form of a keyed drill's run history.
type DrillStatusData struct {
	ID      string  `json:"id"`
	History []int64 `json:"history"` // epoch ms, newest first
}

// ConnectionOverrideData is the wire form of a flow-chart override.
type ConnectionOverrideData struct {
	Parents  []string `json:"parents"`
	Children []string `json:"children"`
}

// PlannedComboData is the wire form of a planned sequence.
type PlannedComboData struct {
	ID            string `json:"id"`
	SourceID      string `json:"sourceId,omitempty"`
	TechniqueID   string `json:"techniqueId"`
	DestinationID string `json:"destinationId,omitempty"`
	Created       int64  `json:"created"` // epoch ms
}

// ToDomain converts and normalizes a wire profile: nil maps are
// materialized, negative counters clamped to zero, and histories
// sorted newest-first.
func (d *ProfileData) ToDomain() *progress.StudentProfile {
	p := progress.NewProfile(d.ID, d.Name)

	for techID, lessonData := range d.Progress {
		if lessonData == nil {
			continue
		}
		lesson := &progress.LessonProgress{
			TechniqueID: orDefault(lessonData.TechniqueID, techID),
			Variations:  make(map[string]*progress.VariationProgress),
		}
		for varID, vd := range lessonData.Variations {
			if vd == nil {
				continue
			}
			vp := &progress.VariationProgress{
				ID:            orDefault(vd.ID, varID),
				VideoCount:    clampNonNegative(vd.VideoCount),
				TrainingCount: clampNonNegative(vd.TrainingCount),
				DrillCount:    clampNonNegative(vd.DrillCount),
				IsPlanned:     vd.IsPlanned,
				Notes:         vd.Notes,
			}
			if vd.LastPracticed > 0 {
				vp.LastPracticed = fromMillis(vd.LastPracticed)
			}
			for _, h := range vd.History {
				vp.History = append(vp.History, progress.PracticeEvent{
					Date: fromMillis(h.Date),
					Kind: progress.Kind(h.Type),
				})
			}
			sort.SliceStable(vp.History, func(i, j int) bool {
				return vp.History[i].Date.After(vp.History[j].Date)
			})
			lesson.Variations[varID] = vp
		}
		p.Progress[techID] = lesson
	}

	for key, sd := range d.DrillStatus {
		if sd == nil {
			continue
		}
		st := &progress.DrillStatus{ID: orDefault(sd.ID, key)}
		for _, ms := range sd.History {
			st.History = append(st.History, fromMillis(ms))
		}
		sort.SliceStable(st.History, func(i, j int) bool {
			return st.History[i].After(st.History[j])
		})
		p.DrillStatus[key] = st
	}

	for techID, od := range d.CustomConnections {
		if od == nil {
			continue
		}
		p.CustomConnections[techID] = &progress.ConnectionOverride{
			Parents:  od.Parents,
			Children: od.Children,
		}
	}

	for _, cd := range d.PlannedCombos {
		p.PlannedCombos = append(p.PlannedCombos, progress.PlannedCombo{
			ID:            cd.ID,
			SourceID:      cd.SourceID,
			TechniqueID:   cd.TechniqueID,
			DestinationID: cd.DestinationID,
			Created:       fromMillis(cd.Created),
		})
	}

	return p
}

// ProfileDataFrom converts a domain profile to its wire form.
func ProfileDataFrom(p *progress.StudentProfile) *ProfileData {
	d := &ProfileData{
		ID:                p.ID,
		Name:              p.Name,
		Progress:          make(map[string]*LessonProgressData),
		DrillStatus:       make(map[string]*DrillStatusData),
		CustomConnections: make(map[string]*ConnectionOverrideData),
	}

	for techID, lesson := range p.Progress {
		if lesson == nil {
			continue
		}
		ld := &LessonProgressData{
			TechniqueID: lesson.TechniqueID,
			Variations:  make(map[string]*VariationProgressData),
		}
		for varID, vp := range lesson.Variations {
			if vp == nil {
				continue
			}
			vd := &VariationProgressData{
				ID:            vp.ID,
				VideoCount:    vp.VideoCount,
				TrainingCount: vp.TrainingCount,
				DrillCount:    vp.DrillCount,
				IsPlanned:     vp.IsPlanned,
				Notes:         vp.Notes,
			}
			if !vp.LastPracticed.IsZero() {
				vd.LastPracticed = toMillis(vp.LastPracticed)
			}
			for _, h := range vp.History {
				vd.History = append(vd.History, PracticeSessionData{
					Date: toMillis(h.Date),
					Type: string(h.Kind),
				})
			}
			ld.Variations[varID] = vd
		}
		d.Progress[techID] = ld
	}

	for key, st := range p.DrillStatus {
		if st == nil {
			continue
		}
		sd := &DrillStatusData{ID: st.ID}
		for _, ts := range st.History {
			sd.History = append(sd.History, toMillis(ts))
		}
		d.DrillStatus[key] = sd
	}

	for techID, o := range p.CustomConnections {
		if o == nil {
			continue
		}
		d.CustomConnections[techID] = &ConnectionOverrideData{
			Parents:  o.Parents,
			Children: o.Children,
		}
	}

	for _, c := range p.PlannedCombos {
		d.PlannedCombos = append(d.PlannedCombos, PlannedComboData{
			ID:            c.ID,
			SourceID:      c.SourceID,
			TechniqueID:   c.TechniqueID,
			DestinationID: c.DestinationID,
			Created:       toMillis(c.Created),
		})
	}

	return d
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func toMillis(t time.Time) int64 {
	return t.UnixMilli()
}
