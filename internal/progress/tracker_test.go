package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/drilltext"
)

// sequentialIDs returns an IDFunc yielding "id-1", "id-2", ...
func sequentialIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func newTestTracker() (*Tracker, *StudentProfile) {
	p := NewProfile("p1", "Test")
	tr := NewTracker(p, sequentialIDs())
	return tr, p
}

func TestLogPractice_Training(t *testing.T) {
	tr, p := newTestTracker()

	vp := tr.LogPractice("m-l1", "v1", KindTraining)
	if vp.TrainingCount != 1 {
		t.Errorf("TrainingCount = %d, want 1", vp.TrainingCount)
	}
	if vp.LastPracticed.IsZero() {
		t.Error("LastPracticed is zero, want stamped for training")
	}
	if len(vp.History) != 1 || vp.History[0].Kind != KindTraining {
		t.Errorf("History = %+v, want one training event", vp.History)
	}
	if Lookup(p.Progress, "m-l1", "v1") != vp {
		t.Error("logged record not reachable through Lookup")
	}
}

func TestLogPractice_VideoDoesNotStampLastPracticed(t *testing.T) {
	tr, _ := newTestTracker()

	vp := tr.LogPractice("m-l1", "v1", KindVideo)
	if vp.VideoCount != 1 {
		t.Errorf("VideoCount = %d, want 1", vp.VideoCount)
	}
	if !vp.LastPracticed.IsZero() {
		t.Error("LastPracticed stamped by video review, want zero")
	}
}

func TestLogPractice_HistoryNewestFirst(t *testing.T) {
	tr, _ := newTestTracker()

	tr.LogPractice("m-l1", "v1", KindVideo)
	vp := tr.LogPractice("m-l1", "v1", KindDrill)

	if len(vp.History) != 2 {
		t.Fatalf("len(History) = %d, want 2", len(vp.History))
	}
	if vp.History[0].Kind != KindDrill {
		t.Errorf("History[0].Kind = %q, want the most recent event first", vp.History[0].Kind)
	}
}

func TestAdjust_ClampsAtZero(t *testing.T) {
	tr, _ := newTestTracker()

	tr.LogPractice("m-l1", "v1", KindTraining)
	vp := tr.Adjust("m-l1", "v1", KindTraining, -5)
	if vp.TrainingCount != 0 {
		t.Errorf("TrainingCount = %d, want clamped to 0", vp.TrainingCount)
	}

	vp = tr.Adjust("m-l1", "v1", KindDrill, 3)
	if vp.DrillCount != 3 {
		t.Errorf("DrillCount = %d, want 3", vp.DrillCount)
	}
}

func TestResetLesson(t *testing.T) {
	tr, p := newTestTracker()

	tr.LogPractice("m-l1", "v1", KindTraining)
	tr.LogPractice("m-l1", "v2", KindDrill)
	tr.LogPractice("m-l2", "v1", KindTraining)

	tr.ResetLesson("m-l1")

	if Lookup(p.Progress, "m-l1", "v1") != nil || Lookup(p.Progress, "m-l1", "v2") != nil {
		t.Error("lesson records survived reset")
	}
	if Lookup(p.Progress, "m-l2", "v1") == nil {
		t.Error("reset wiped an unrelated lesson")
	}
}

func TestRecordDrillRun(t *testing.T) {
	tr, p := newTestTracker()

	targets := []drilltext.Target{
		{TechniqueID: "m-l1", VariationID: "v1"},
		{TechniqueID: "m-l2", VariationID: "v3"},
	}
	tr.RecordDrillRun(ReflexDrillKey("m-l1"), targets)
	tr.RecordDrillRun(ReflexDrillKey("m-l1"), targets)

	st := p.DrillStatus["reflex-m-l1"]
	if st == nil {
		t.Fatal("drill status not recorded")
	}
	if len(st.History) != 2 {
		t.Errorf("len(History) = %d, want 2", len(st.History))
	}
	if vp := Lookup(p.Progress, "m-l2", "v3"); vp == nil || vp.DrillCount != 2 {
		t.Errorf("target drill count = %+v, want 2 drill reps", vp)
	}
}

func TestSetConnectionOverride(t *testing.T) {
	tr, p := newTestTracker()

	tr.SetConnectionOverride("m-l1", &ConnectionOverride{Parents: []string{"m-l3"}})
	if p.CustomConnections["m-l1"] == nil {
		t.Fatal("override not stored")
	}

	tr.SetConnectionOverride("m-l1", nil)
	if _, ok := p.CustomConnections["m-l1"]; ok {
		t.Error("nil override did not clear the customization")
	}
}

func TestPlannedCombos(t *testing.T) {
	tr, p := newTestTracker()

	c1 := tr.AddPlannedCombo("m-l1", "m-l3", "m-l2")
	c2 := tr.AddPlannedCombo("", "m-l5", "")

	if c1.ID == c2.ID {
		t.Fatalf("combo IDs collide: %q", c1.ID)
	}
	if c2.SourceID != "" || c2.DestinationID != "" {
		t.Error("free-entry combo mangled the empty legs")
	}
	if len(p.PlannedCombos) != 2 {
		t.Fatalf("len(PlannedCombos) = %d, want 2", len(p.PlannedCombos))
	}

	tr.RemovePlannedCombo(c1.ID)
	if len(p.PlannedCombos) != 1 || p.PlannedCombos[0].ID != c2.ID {
		t.Errorf("PlannedCombos = %+v, want only %q left", p.PlannedCombos, c2.ID)
	}

	tr.RemovePlannedCombo("missing")
	if len(p.PlannedCombos) != 1 {
		t.Error("removing an unknown combo changed the list")
	}
}

func TestSetPlannedAndNotes(t *testing.T) {
	tr, p := newTestTracker()

	tr.SetPlanned("m-l1", "v1", true)
	tr.SetNotes("m-l1", "v1", "tighter elbow")

	vp := Lookup(p.Progress, "m-l1", "v1")
	if vp == nil || !vp.IsPlanned {
		t.Fatalf("variation = %+v, want planned", vp)
	}
	if vp.Notes != "tighter elbow" {
		t.Errorf("Notes = %q, want %q", vp.Notes, "tighter elbow")
	}

	tr.SetPlanned("m-l1", "v1", false)
	if vp.IsPlanned {
		t.Error("unflagging did not clear IsPlanned")
	}
}

func TestNewTracker_TimeMonotonic(t *testing.T) {
	tr, _ := newTestTracker()
	before := time.Now()
	vp := tr.LogPractice("m-l1", "v1", KindDrill)
	if vp.LastPracticed.Before(before.Add(-time.Second)) {
		t.Errorf("LastPracticed = %v, want around now", vp.LastPracticed)
	}
}
