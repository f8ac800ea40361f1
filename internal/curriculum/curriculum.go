package curriculum

import (
	"fmt"
	"slices"
	"sort"
)

// catalog holds the technique list with precomputed indices.
type catalog struct {
	techniques  []Technique
	byID        map[string]*Technique
	byLesson    map[int]*Technique
	byCategory  map[Category][]Technique
	byDrill     map[int][]Technique
	drillGroups []int
	withSims    []Technique
}

// c is the package-level catalog singleton, set by init() in seed.go.
var c *catalog

// buildCatalog constructs the catalog and all its indices.
func buildCatalog(techniques []Technique) *catalog {
	cat := &catalog{
		techniques: techniques,
		byID:       make(map[string]*Technique, len(techniques)),
		byLesson:   make(map[int]*Technique, len(techniques)),
		byCategory: make(map[Category][]Technique),
		byDrill:    make(map[int][]Technique),
	}

	for i := range cat.techniques {
		t := &cat.techniques[i]
		cat.byID[t.ID] = t
		cat.byLesson[t.LessonNumber] = t
	}

	// Category and drill-group listings, ordered by lesson number.
	for _, t := range cat.techniques {
		cat.byCategory[t.Category] = append(cat.byCategory[t.Category], t)
		cat.byDrill[t.DrillGroup] = append(cat.byDrill[t.DrillGroup], t)
	}
	for cat2, list := range cat.byCategory {
		sort.Slice(list, func(i, j int) bool { return list[i].LessonNumber < list[j].LessonNumber })
		cat.byCategory[cat2] = list
	}
	for n, list := range cat.byDrill {
		sort.Slice(list, func(i, j int) bool { return list[i].LessonNumber < list[j].LessonNumber })
		cat.byDrill[n] = list
		cat.drillGroups = append(cat.drillGroups, n)
	}
	sort.Ints(cat.drillGroups)

	for _, t := range cat.techniques {
		if t.HasSimulation() {
			cat.withSims = append(cat.withSims, t)
		}
	}

	return cat
}

// GetTechnique returns a technique by ID, or an error if not found.
func GetTechnique(id string) (Technique, error) {
	t, ok := c.byID[id]
	if !ok {
		return Technique{}, fmt.Errorf("technique not found: %q", id)
	}
	return *t, nil
}

// TechniqueByLesson resolves a lesson number to its technique. The
// boolean is false for unknown numbers — the text parser skips those
// silently, so this is not an error path.
func TechniqueByLesson(n int) (Technique, bool) {
	t, ok := c.byLesson[n]
	if !ok {
		return Technique{}, false
	}
	return *t, true
}

// AllTechniques returns every technique in curriculum (lesson) order.
func AllTechniques() []Technique {
	return slices.Clone(c.techniques)
}

// ByCategory returns the techniques of a category, ordered by lesson number.
func ByCategory(cat Category) []Technique {
	return slices.Clone(c.byCategory[cat])
}

// ByDrillGroup returns the techniques of a rotation drill group,
// ordered by lesson number.
func ByDrillGroup(n int) []Technique {
	return slices.Clone(c.byDrill[n])
}

// DrillGroups returns the populated drill group numbers in ascending order.
func DrillGroups() []int {
	return slices.Clone(c.drillGroups)
}

// WithSimulations returns the techniques that expose fight simulation
// steps, in curriculum order.
func WithSimulations() []Technique {
	return slices.Clone(c.withSims)
}

// DefaultConnections returns a technique's built-in flow-chart edges.
// Unknown IDs and techniques without edges both yield empty slices.
func DefaultConnections(id string) (parents, children []string) {
	t, ok := c.byID[id]
	if !ok {
		return []string{}, []string{}
	}
	parents = slices.Clone(t.Parents)
	children = slices.Clone(t.Children)
	if parents == nil {
		parents = []string{}
	}
	if children == nil {
		children = []string{}
	}
	return parents, children
}

// Validate checks the seeded curriculum for structural issues.
func Validate() error {
	return validateTechniques(c.techniques)
}
