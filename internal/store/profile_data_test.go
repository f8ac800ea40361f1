package store

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

func TestToDomain_Normalization(t *testing.T) {
	d := &ProfileData{
		ID:   "p1",
		Name: "Legacy Export",
		Progress: map[string]*LessonProgressData{
			"m-l1": {
				Variations: map[string]*VariationProgressData{
					"v1": {
						VideoCount:    -2,
						TrainingCount: 3,
						LastPracticed: 1700000000000,
						History: []PracticeSessionData{
							{Date: 1600000000000, Type: "video"},
							{Date: 1700000000000, Type: "training"},
						},
					},
					"v2": nil,
				},
			},
			"m-l2": nil,
		},
	}

	p := d.ToDomain()

	// Maps a legacy export may omit are materialized.
	require.NotNil(t, p.DrillStatus)
	require.NotNil(t, p.CustomConnections)

	vp := progress.Lookup(p.Progress, "m-l1", "v1")
	require.NotNil(t, vp)
	assert.Equal(t, 0, vp.VideoCount, "negative counter must clamp to zero")
	assert.Equal(t, 3, vp.TrainingCount)
	assert.Equal(t, "v1", vp.ID, "missing wire ID falls back to the map key")
	assert.Equal(t, time.UnixMilli(1700000000000).UTC(), vp.LastPracticed)

	require.Len(t, vp.History, 2)
	assert.Equal(t, progress.KindTraining, vp.History[0].Kind, "history must be newest first")

	assert.Nil(t, progress.Lookup(p.Progress, "m-l1", "v2"), "nil wire records are dropped")
	assert.Nil(t, p.Progress["m-l2"], "nil wire lessons are dropped")
}

func TestToDomain_LessonIDFallback(t *testing.T) {
	d := &ProfileData{
		ID:   "p1",
		Name: "X",
		Progress: map[string]*LessonProgressData{
			"m-l3": {Variations: map[string]*VariationProgressData{"v1": {TrainingCount: 1}}},
		},
	}
	p := d.ToDomain()
	require.NotNil(t, p.Progress["m-l3"])
	assert.Equal(t, "m-l3", p.Progress["m-l3"].TechniqueID)
}

func TestToDomain_DrillStatusSorted(t *testing.T) {
	d := &ProfileData{
		ID:   "p1",
		Name: "X",
		DrillStatus: map[string]*DrillStatusData{
			"reflex-m-l1": {History: []int64{1600000000000, 1700000000000}},
		},
	}
	p := d.ToDomain()
	st := p.DrillStatus["reflex-m-l1"]
	require.NotNil(t, st)
	assert.Equal(t, "reflex-m-l1", st.ID)
	require.Len(t, st.History, 2)
	assert.True(t, st.History[0].After(st.History[1]), "drill history must be newest first")
}

func TestProfileRoundTrip(t *testing.T) {
	now := time.UnixMilli(time.Now().UnixMilli()).UTC()

	p := progress.NewProfile("p1", "Étudiant")
	tr := progress.NewTracker(p, func() string { return "combo-1" })
	tr.LogPractice("m-l1", "v1", progress.KindTraining)
	tr.SetNotes("m-l1", "v1", "hips higher")
	tr.SetPlanned("m-l1", "v1", true)
	tr.SetConnectionOverride("m-l6", &progress.ConnectionOverride{Parents: []string{}, Children: []string{"m-l3"}})
	tr.AddPlannedCombo("m-l1", "m-l3", "")
	p.DrillStatus["sim-m-l5"] = &progress.DrillStatus{ID: "sim-m-l5", History: []time.Time{now}}

	got := ProfileDataFrom(p).ToDomain()

	vp := progress.Lookup(got.Progress, "m-l1", "v1")
	require.NotNil(t, vp)
	assert.Equal(t, 1, vp.TrainingCount)
	assert.Equal(t, "hips higher", vp.Notes)
	assert.True(t, vp.IsPlanned)
	require.Len(t, vp.History, 1)
	assert.Equal(t, progress.KindTraining, vp.History[0].Kind)

	require.NotNil(t, got.CustomConnections["m-l6"])
	assert.Equal(t, []string{"m-l3"}, got.CustomConnections["m-l6"].Children)
	assert.Empty(t, got.CustomConnections["m-l6"].Parents,
		"an explicitly empty edge list must survive the round trip")

	require.Len(t, got.PlannedCombos, 1)
	assert.Equal(t, "combo-1", got.PlannedCombos[0].ID)
	assert.Equal(t, "m-l3", got.PlannedCombos[0].TechniqueID)

	require.NotNil(t, got.DrillStatus["sim-m-l5"])
	assert.Equal(t, now, got.DrillStatus["sim-m-l5"].History[0])
}

func TestSnapshotData_WireFormat(t *testing.T) {
	data := SnapshotData{
		Version:         1,
		ActiveProfileID: "p1",
		Profiles:        []*ProfileData{{ID: "p1", Name: "Étudiant"}},
	}
	raw, err := json.Marshal(data)
	require.NoError(t, err)

	// Field names must match the original export format.
	assert.Contains(t, string(raw), `"activeStudentId":"p1"`)
	assert.Contains(t, string(raw), `"students":[`)
}
