package insights

import (
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

func TestPlannedItems_Empty(t *testing.T) {
	if got := PlannedItems(nil); len(got) != 0 {
		t.Errorf("PlannedItems = %v, want none", got)
	}
}

func TestPlannedItems_CurriculumOrder(t *testing.T) {
	p := progress.NewProfile("p1", "Test")
	tr := progress.NewTracker(p, nil)
	tr.SetPlanned("m-l12", "v2", true)
	tr.SetPlanned("m-l1", "v1", true)
	tr.SetPlanned("m-l5", "v3", true)
	tr.SetPlanned("m-l5", "v1", false) // touched but not planned

	items := PlannedItems(p.Progress)
	if len(items) != 3 {
		t.Fatalf("got %d items, want 3", len(items))
	}
	wantOrder := []string{"m-l1", "m-l5", "m-l12"}
	for i, want := range wantOrder {
		if items[i].Technique.ID != want {
			t.Errorf("items[%d] = %q, want %q (lesson order)", i, items[i].Technique.ID, want)
		}
	}
	if items[1].Variation.ID != "v3" {
		t.Errorf("items[1].Variation = %q, want the planned variation", items[1].Variation.ID)
	}
}
