package insights

import (
	"strings"
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

func levelLabel(l competency.Level) string {
	return l.String()
}

func variationWithVideo(id string, videos int) *progress.VariationProgress {
	return &progress.VariationProgress{ID: id, VideoCount: videos}
}

func TestDrillGroupBreakdown_Untouched(t *testing.T) {
	th := competency.DefaultThresholds()
	// Group 3 is side mount only: one technique, three variations.
	stats := DrillGroupBreakdown(3, curriculum.ByDrillGroup(3), nil, th)

	if stats.Total != 3 {
		t.Fatalf("Total = %d, want 3", stats.Total)
	}
	if stats.Counts[competency.LevelNone] != 3 {
		t.Errorf("Counts[None] = %d, want 3", stats.Counts[competency.LevelNone])
	}
	if got := stats.Summary(levelLabel); got != "Not started" {
		t.Errorf("Summary = %q, want %q", got, "Not started")
	}
	if got := stats.Percent(competency.LevelNone); got != 100 {
		t.Errorf("Percent(None) = %f, want 100", got)
	}
}

func TestDrillGroupBreakdown_Mixed(t *testing.T) {
	th := competency.DefaultThresholds()
	// sm-l13: v1 mastered (10), v2 at Level1 (one video = 0.5).
	data := withScore("sm-l13", map[string]int{"v1": 5})
	data["sm-l13"].Variations["v2"] = variationWithVideo("v2", 1)

	stats := DrillGroupBreakdown(3, curriculum.ByDrillGroup(3), data, th)

	if stats.Counts[competency.Level4] != 1 {
		t.Errorf("Counts[Level4] = %d, want 1", stats.Counts[competency.Level4])
	}
	if stats.Counts[competency.Level1] != 1 {
		t.Errorf("Counts[Level1] = %d, want 1", stats.Counts[competency.Level1])
	}
	if stats.Counts[competency.LevelNone] != 1 {
		t.Errorf("Counts[None] = %d, want 1", stats.Counts[competency.LevelNone])
	}

	summary := stats.Summary(levelLabel)
	if !strings.HasPrefix(summary, "1 level4") {
		t.Errorf("Summary = %q, want the highest level leading", summary)
	}
	if strings.Contains(summary, "level3") {
		t.Errorf("Summary = %q mentions an empty level", summary)
	}
}

func TestAllDrillGroups_CoversEveryGroup(t *testing.T) {
	th := competency.DefaultThresholds()
	groups := AllDrillGroups(nil, th)
	if len(groups) != 4 {
		t.Fatalf("got %d groups, want 4", len(groups))
	}
	for i, g := range groups {
		if g.DrillGroup != i+1 {
			t.Errorf("groups[%d].DrillGroup = %d, want %d", i, g.DrillGroup, i+1)
		}
		if g.Total == 0 {
			t.Errorf("group %d has no variations", g.DrillGroup)
		}
	}
}
