package insights

import (
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// withScore returns progress data giving the listed variations enough
// training reps to land exactly on the requested levels.
func withScore(techID string, variations map[string]int) map[string]*progress.LessonProgress {
	data := make(map[string]*progress.LessonProgress)
	addScore(data, techID, variations)
	return data
}

func addScore(data map[string]*progress.LessonProgress, techID string, variations map[string]int) {
	lesson := data[techID]
	if lesson == nil {
		lesson = &progress.LessonProgress{TechniqueID: techID, Variations: make(map[string]*progress.VariationProgress)}
		data[techID] = lesson
	}
	for varID, training := range variations {
		lesson.Variations[varID] = &progress.VariationProgress{ID: varID, TrainingCount: training}
	}
}

func mustTechnique(t *testing.T, id string) curriculum.Technique {
	t.Helper()
	tech, err := curriculum.GetTechnique(id)
	if err != nil {
		t.Fatalf("technique %q: %v", id, err)
	}
	return tech
}

func TestLessonAverageLevel_Untouched(t *testing.T) {
	tech := mustTechnique(t, "m-l4")
	got := LessonAverageLevel(tech, nil, competency.DefaultThresholds())
	if got != competency.LevelNone {
		t.Errorf("average = %v, want %v", got, competency.LevelNone)
	}
}

func TestLessonAverageLevel_Rounding(t *testing.T) {
	th := competency.DefaultThresholds()

	// m-l4 has two variations: one mastered (5 training = score 10,
	// Level4), one untouched. Mean 2.0 rounds to Level2.
	tech := mustTechnique(t, "m-l4")
	data := withScore("m-l4", map[string]int{"v1": 5})
	if got := LessonAverageLevel(tech, data, th); got != competency.Level2 {
		t.Errorf("average = %v, want %v", got, competency.Level2)
	}

	// m-l5 has three variations: two mastered, one untouched.
	// Mean 8/3 = 2.67 rounds up to Level3.
	tech = mustTechnique(t, "m-l5")
	data = withScore("m-l5", map[string]int{"v1": 5, "v2": 5})
	if got := LessonAverageLevel(tech, data, th); got != competency.Level3 {
		t.Errorf("average = %v, want %v", got, competency.Level3)
	}
}
