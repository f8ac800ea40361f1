package curriculum

import (
	"fmt"
	"strings"
)

// validateTechniques performs all structural checks on the given set.
// Returns a combined error describing all problems found, or nil if valid.
func validateTechniques(techniques []Technique) error {
	var errs []string

	idSet := make(map[string]bool, len(techniques))
	lessonSet := make(map[int]string, len(techniques))
	categorySet := make(map[Category]bool)

	for _, t := range techniques {
		if idSet[t.ID] {
			errs = append(errs, fmt.Sprintf("duplicate technique ID: %q", t.ID))
		}
		idSet[t.ID] = true
		categorySet[t.Category] = true

		if prev, ok := lessonSet[t.LessonNumber]; ok {
			errs = append(errs, fmt.Sprintf("lesson number %d used by both %q and %q", t.LessonNumber, prev, t.ID))
		}
		lessonSet[t.LessonNumber] = t.ID

		if len(t.Variations) == 0 {
			errs = append(errs, fmt.Sprintf("technique %q has no variations", t.ID))
		}

		varSet := make(map[string]bool, len(t.Variations))
		for _, v := range t.Variations {
			if varSet[v.ID] {
				errs = append(errs, fmt.Sprintf("technique %q has duplicate variation ID %q", t.ID, v.ID))
			}
			varSet[v.ID] = true
		}

		if t.DrillGroup < 1 || t.DrillGroup > 4 {
			errs = append(errs, fmt.Sprintf("technique %q has drill group %d, want 1-4", t.ID, t.DrillGroup))
		}
	}

	// Dangling flow-chart edges. The graph is deliberately not acyclic:
	// positional flows loop (mount → guard → mount), so only referential
	// integrity is checked.
	for _, t := range techniques {
		for _, pid := range t.Parents {
			if !idSet[pid] {
				errs = append(errs, fmt.Sprintf("technique %q references nonexistent parent %q", t.ID, pid))
			}
		}
		for _, cid := range t.Children {
			if !idSet[cid] {
				errs = append(errs, fmt.Sprintf("technique %q references nonexistent child %q", t.ID, cid))
			}
		}
	}

	for _, cat := range AllCategories() {
		if !categorySet[cat] {
			errs = append(errs, fmt.Sprintf("category %q has no techniques", cat))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
