package insights

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// DrillGroupStats is the per-level variation breakdown for a set of
// techniques forming one rotation drill.
type DrillGroupStats struct {
	DrillGroup int
	Counts     map[competency.Level]int
	Total      int
}

// Percent returns the share of variations at a level, 0-100.
func (s DrillGroupStats) Percent(l competency.Level) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Counts[l]) / float64(s.Total) * 100
}

// Summary renders the human-readable count line ("3 Mastery, 2 Reflex,
// …"), highest level first, skipping empty levels. labelFor supplies
// the configured level names. An untouched group reads "Not started".
func (s DrillGroupStats) Summary(labelFor func(competency.Level) string) string {
	if s.Counts[competency.LevelNone] == s.Total {
		return "Not started"
	}
	var parts []string
	for _, l := range []competency.Level{competency.Level4, competency.Level3, competency.Level2, competency.Level1} {
		if n := s.Counts[l]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, labelFor(l)))
		}
	}
	return strings.Join(parts, ", ")
}

// DrillGroupBreakdown classifies every variation of the given
// techniques and counts them per level. Absent progress counts as
// LevelNone.
func DrillGroupBreakdown(group int, techniques []curriculum.Technique, data map[string]*progress.LessonProgress, t competency.Thresholds) DrillGroupStats {
	stats := DrillGroupStats{
		DrillGroup: group,
		Counts:     make(map[competency.Level]int, 5),
		Total:      lo.SumBy(techniques, func(tech curriculum.Technique) int { return len(tech.Variations) }),
	}
	for _, tech := range techniques {
		for _, v := range tech.Variations {
			stats.Counts[levelFor(data, tech.ID, v.ID, t)]++
		}
	}
	return stats
}

// AllDrillGroups computes the breakdown for every populated drill
// group, in group order.
func AllDrillGroups(data map[string]*progress.LessonProgress, t competency.Thresholds) []DrillGroupStats {
	return lo.Map(curriculum.DrillGroups(), func(n int, _ int) DrillGroupStats {
		return DrillGroupBreakdown(n, curriculum.ByDrillGroup(n), data, t)
	})
}
