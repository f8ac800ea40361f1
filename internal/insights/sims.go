package insights

import (
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/drilltext"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// SimReadiness summarizes how prepared a learner is for one fight
// simulation: the union of targets across all steps, how many are
// mastered, how many are completely unknown, and the mean level.
type SimReadiness struct {
	Technique     curriculum.Technique
	Targets       []drilltext.Target
	Total         int
	Mastered      int
	UnknownCount  int
	AvgCompetency float64
}

// Ready reports whether every step target has at least some recorded
// practice.
func (s SimReadiness) Ready() bool {
	return s.UnknownCount == 0
}

// SimulationReadiness computes the readiness summary for one
// technique's simulation. A technique without simulation steps yields
// an empty summary.
func SimulationReadiness(tech curriculum.Technique, data map[string]*progress.LessonProgress, t competency.Thresholds) SimReadiness {
	var targets []drilltext.Target
	for _, step := range tech.FightSimSteps {
		targets = append(targets, drilltext.Targets(step)...)
	}

	s := SimReadiness{Technique: tech, Targets: targets, Total: len(targets)}
	levelTotal := 0
	for _, target := range targets {
		lvl := levelFor(data, target.TechniqueID, target.VariationID, t)
		levelTotal += int(lvl)
		if lvl == competency.LevelNone {
			s.UnknownCount++
		}
		if lvl >= competency.Level4 {
			s.Mastered++
		}
	}
	if s.Total > 0 {
		s.AvgCompetency = float64(levelTotal) / float64(s.Total)
	}
	return s
}

// RecommendSimulations ranks every simulation by accessibility:
// fewest unknown targets first, then lowest average competency —
// simulations that are nearly within reach and not yet over-practiced
// surface first.
func RecommendSimulations(data map[string]*progress.LessonProgress, t competency.Thresholds) []SimReadiness {
	sims := lo.Map(curriculum.WithSimulations(), func(tech curriculum.Technique, _ int) SimReadiness {
		return SimulationReadiness(tech, data, t)
	})
	sort.SliceStable(sims, func(i, j int) bool {
		if sims[i].UnknownCount != sims[j].UnknownCount {
			return sims[i].UnknownCount < sims[j].UnknownCount
		}
		return sims[i].AvgCompetency < sims[j].AvgCompetency
	})
	return sims
}

// RelatedSimulations returns the simulations whose steps reference the
// given technique, ranked by accessibility like RecommendSimulations.
func RelatedSimulations(techniqueID string, data map[string]*progress.LessonProgress, t competency.Thresholds) []SimReadiness {
	related := lo.Filter(curriculum.WithSimulations(), func(tech curriculum.Technique, _ int) bool {
		for _, step := range tech.FightSimSteps {
			for _, target := range drilltext.Targets(step) {
				if target.TechniqueID == techniqueID {
					return true
				}
			}
		}
		return false
	})
	sims := lo.Map(related, func(tech curriculum.Technique, _ int) SimReadiness {
		return SimulationReadiness(tech, data, t)
	})
	sort.SliceStable(sims, func(i, j int) bool {
		if sims[i].UnknownCount != sims[j].UnknownCount {
			return sims[i].UnknownCount < sims[j].UnknownCount
		}
		return sims[i].AvgCompetency < sims[j].AvgCompetency
	})
	return sims
}

// BrowseSimulations lists every simulation for display: ready ones
// first, then by lesson number. filter narrows by lesson number or
// name substring (case-insensitive); empty matches everything.
func BrowseSimulations(data map[string]*progress.LessonProgress, t competency.Thresholds, filter string) []SimReadiness {
	sims := lo.Map(curriculum.WithSimulations(), func(tech curriculum.Technique, _ int) SimReadiness {
		return SimulationReadiness(tech, data, t)
	})
	if q := strings.ToLower(strings.TrimSpace(filter)); q != "" {
		sims = lo.Filter(sims, func(s SimReadiness, _ int) bool {
			return strings.Contains(strconv.Itoa(s.Technique.LessonNumber), q) ||
				strings.Contains(strings.ToLower(s.Technique.Name), q)
		})
	}
	sort.SliceStable(sims, func(i, j int) bool {
		if sims[i].Ready() != sims[j].Ready() {
			return sims[i].Ready()
		}
		return sims[i].Technique.LessonNumber < sims[j].Technique.LessonNumber
	})
	return sims
}
