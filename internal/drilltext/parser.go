// Package drilltext resolves the free-text drill and simulation
// scripts embedded in the curriculum into structured references to
// technique variations. The scripts are not a grammar: matching is a
// set of substring heuristics that downstream displays and score
// aggregations are calibrated against, so the rules here are load-
// bearing and must not be tightened.
package drilltext

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
)

// lessonRefPattern matches "(L12)" style lesson references.
var lessonRefPattern = regexp.MustCompile(`\(L(\d+)\)`)

// Target is one concrete (technique, variation) reference extracted
// from a script.
type Target struct {
	TechniqueID string
	VariationID string
}

// Targets extracts the variation references from a script, in
// left-to-right order of the lesson references, de-duplicated by
// (technique, variation) with first occurrence winning.
//
// For each "(L<n>)" reference that resolves to a curriculum lesson:
//   - "all variations" or "all stages" anywhere in the text selects
//     every variation of that lesson;
//   - otherwise any variation whose name appears (case-insensitively)
//     anywhere in the text is selected. The match is deliberately
//     global, not scoped to the clause around the reference;
//   - if nothing matched, the lesson's first variation is selected so
//     every resolvable reference yields at least one target.
//
// Unknown lesson numbers are skipped silently.
func Targets(text string) []Target {
	var targets []Target
	lower := strings.ToLower(text)
	wantAll := strings.Contains(lower, "all variations") || strings.Contains(lower, "all stages")

	for _, m := range lessonRefPattern.FindAllStringSubmatch(text, -1) {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		tech, ok := curriculum.TechniqueByLesson(n)
		if !ok {
			continue
		}

		if wantAll {
			for _, v := range tech.Variations {
				targets = append(targets, Target{TechniqueID: tech.ID, VariationID: v.ID})
			}
			continue
		}

		matched := false
		for _, v := range tech.Variations {
			if strings.Contains(lower, strings.ToLower(v.Name)) {
				targets = append(targets, Target{TechniqueID: tech.ID, VariationID: v.ID})
				matched = true
			}
		}
		if !matched && len(tech.Variations) > 0 {
			targets = append(targets, Target{TechniqueID: tech.ID, VariationID: tech.Variations[0].ID})
		}
	}

	return dedupe(targets)
}

// dedupe removes repeated targets, preserving first-seen order.
func dedupe(targets []Target) []Target {
	seen := make(map[Target]bool, len(targets))
	out := targets[:0]
	for _, t := range targets {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}
