// Package insights derives read-only summaries from a snapshot of
// learner progress: lesson badges, drill-group breakdowns, simulation
// readiness, and reflex-drill line classification. Every computation
// re-derives from the full snapshot — nothing here caches or mutates.
package insights

import (
	"math"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// levelFor classifies one (technique, variation) pair. Missing
// progress folds in as LevelNone.
func levelFor(data map[string]*progress.LessonProgress, techniqueID, variationID string, t competency.Thresholds) competency.Level {
	vp := progress.Lookup(data, techniqueID, variationID)
	return competency.LevelFromScore(competency.Score(vp), t)
}

// LessonAverageLevel is the rounded mean level across a technique's
// variations, used to badge the lesson. A technique with no
// variations averages to LevelNone.
func LessonAverageLevel(tech curriculum.Technique, data map[string]*progress.LessonProgress, t competency.Thresholds) competency.Level {
	if len(tech.Variations) == 0 {
		return competency.LevelNone
	}
	total := 0
	for _, v := range tech.Variations {
		total += int(levelFor(data, tech.ID, v.ID, t))
	}
	mean := float64(total) / float64(len(tech.Variations))
	return competency.Level(int(math.Round(mean)))
}
