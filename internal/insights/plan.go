package insights

import (
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// PlannedItem is one variation flagged for the practice plan.
type PlannedItem struct {
	Technique curriculum.Technique
	Variation curriculum.Variation
	Progress  *progress.VariationProgress
}

// PlannedItems walks the curriculum in lesson order and collects every
// variation the learner flagged as planned.
func PlannedItems(data map[string]*progress.LessonProgress) []PlannedItem {
	var items []PlannedItem
	for _, tech := range curriculum.AllTechniques() {
		for _, v := range tech.Variations {
			if vp := progress.Lookup(data, tech.ID, v.ID); vp != nil && vp.IsPlanned {
				items = append(items, PlannedItem{Technique: tech, Variation: v, Progress: vp})
			}
		}
	}
	return items
}
