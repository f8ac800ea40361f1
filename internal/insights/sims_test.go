package insights

import (
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
)

func TestSimulationReadiness_Untouched(t *testing.T) {
	th := competency.DefaultThresholds()
	tech := mustTechnique(t, "m-l5")

	s := SimulationReadiness(tech, nil, th)
	if s.Total != 4 {
		t.Fatalf("Total = %d, want 4 step targets: %v", s.Total, s.Targets)
	}
	if s.UnknownCount != 4 || s.Mastered != 0 || s.AvgCompetency != 0 {
		t.Errorf("readiness = %+v, want all unknown", s)
	}
	if s.Ready() {
		t.Error("Ready() = true for an untouched simulation")
	}
}

func TestSimulationReadiness_Partial(t *testing.T) {
	th := competency.DefaultThresholds()
	tech := mustTechnique(t, "m-l5")

	// Targets: m-l1/v1, m-l3/v4, m-l4/v1, m-l5/v3. Master the first,
	// give the second a single video review, leave the rest untouched.
	data := withScore("m-l1", map[string]int{"v1": 5})
	addScore(data, "m-l3", nil)
	data["m-l3"].Variations["v4"] = variationWithVideo("v4", 1)

	s := SimulationReadiness(tech, data, th)
	if s.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", s.Mastered)
	}
	if s.UnknownCount != 2 {
		t.Errorf("UnknownCount = %d, want 2", s.UnknownCount)
	}
	// Levels 4 + 1 + 0 + 0 over 4 targets.
	if s.AvgCompetency != 1.25 {
		t.Errorf("AvgCompetency = %f, want 1.25", s.AvgCompetency)
	}
}

func TestRecommendSimulations_Ordering(t *testing.T) {
	th := competency.DefaultThresholds()
	data := withScore("m-l1", map[string]int{"v1": 5, "v3": 1})
	addScore(data, "m-l3", map[string]int{"v3": 2})

	sims := RecommendSimulations(data, th)
	if len(sims) != 15 {
		t.Fatalf("got %d simulations, want 15", len(sims))
	}
	for i := 1; i < len(sims); i++ {
		prev, cur := sims[i-1], sims[i]
		if cur.UnknownCount < prev.UnknownCount {
			t.Errorf("sims[%d] (%d unknown) ranked after sims[%d] (%d unknown)",
				i, cur.UnknownCount, i-1, prev.UnknownCount)
		}
		if cur.UnknownCount == prev.UnknownCount && cur.AvgCompetency < prev.AvgCompetency {
			t.Errorf("sims[%d] (avg %f) ranked after sims[%d] (avg %f) within the same unknown count",
				i, cur.AvgCompetency, i-1, prev.AvgCompetency)
		}
	}
}

func TestRecommendSimulations_FullyKnownFirst(t *testing.T) {
	th := competency.DefaultThresholds()
	// Lesson 1's simulation targets m-l1/v3, m-l3/v3 and m-l2/v3.
	// Give each just enough practice to be known.
	data := withScore("m-l1", map[string]int{"v3": 1})
	addScore(data, "m-l3", map[string]int{"v3": 1})
	addScore(data, "m-l2", map[string]int{"v3": 1})

	sims := RecommendSimulations(data, th)
	if sims[0].UnknownCount != 0 {
		t.Fatalf("sims[0] = %+v, want a fully known simulation first", sims[0])
	}
}

func TestRelatedSimulations(t *testing.T) {
	th := competency.DefaultThresholds()
	related := RelatedSimulations("m-l10", nil, th)
	if len(related) == 0 {
		t.Fatal("no simulations reference the Triangle Choke")
	}
	for _, s := range related {
		found := false
		for _, target := range s.Targets {
			if target.TechniqueID == "m-l10" {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("simulation %q listed without a Triangle Choke target", s.Technique.ID)
		}
	}
}

func TestBrowseSimulations_ReadyFirstThenLesson(t *testing.T) {
	th := competency.DefaultThresholds()
	data := withScore("m-l1", map[string]int{"v3": 1})
	addScore(data, "m-l3", map[string]int{"v3": 1})
	addScore(data, "m-l2", map[string]int{"v3": 1})

	sims := BrowseSimulations(data, th, "")
	if len(sims) != 15 {
		t.Fatalf("got %d simulations, want 15", len(sims))
	}
	sawUnready := false
	for i, s := range sims {
		if !s.Ready() {
			sawUnready = true
		} else if sawUnready {
			t.Fatalf("ready simulation %q at index %d after an unready one", s.Technique.ID, i)
		}
	}
	for i := 1; i < len(sims); i++ {
		if sims[i].Ready() == sims[i-1].Ready() &&
			sims[i].Technique.LessonNumber < sims[i-1].Technique.LessonNumber {
			t.Errorf("lesson order broken within the %v block at index %d", sims[i].Ready(), i)
		}
	}
}

func TestBrowseSimulations_Filter(t *testing.T) {
	th := competency.DefaultThresholds()

	byName := BrowseSimulations(nil, th, "triangle")
	if len(byName) != 1 || byName[0].Technique.ID != "m-l10" {
		t.Errorf("filter %q = %v, want only the Triangle Choke", "triangle", byName)
	}

	byLesson := BrowseSimulations(nil, th, "14")
	found := false
	for _, s := range byLesson {
		if s.Technique.LessonNumber == 14 {
			found = true
		}
	}
	if !found {
		t.Errorf("filter %q missed lesson 14", "14")
	}
}
