package insights

import (
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/drilltext"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

// ReflexLine is one classified line of a reflex drill script. A line
// referencing the drill's own technique is flagged SelfReference and
// takes display priority; otherwise MinLevel carries the weakest
// competency among the line's targets — the weakest link governs how
// urgent the line is.
type ReflexLine struct {
	Index         int
	Text          string
	Targets       []drilltext.Target
	SelfReference bool
	MinLevel      competency.Level
}

// ReflexLines splits a technique's reflex drill into lines and
// classifies each against the learner's progress. A technique without
// a reflex drill yields nil.
func ReflexLines(tech curriculum.Technique, data map[string]*progress.LessonProgress, t competency.Thresholds) []ReflexLine {
	if tech.ReflexDrill == "" {
		return nil
	}

	var lines []ReflexLine
	for i, text := range drilltext.SplitReflexLines(tech.ReflexDrill) {
		line := ReflexLine{Index: i, Text: text, Targets: drilltext.Targets(text)}

		for _, target := range line.Targets {
			if target.TechniqueID == tech.ID {
				line.SelfReference = true
				break
			}
		}
		if !line.SelfReference && len(line.Targets) > 0 {
			lowest := competency.Level4
			for _, target := range line.Targets {
				if lvl := levelFor(data, target.TechniqueID, target.VariationID, t); lvl < lowest {
					lowest = lvl
				}
			}
			line.MinLevel = lowest
		}

		lines = append(lines, line)
	}
	return lines
}
