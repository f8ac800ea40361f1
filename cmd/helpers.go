package cmd

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
)

// resolveTechnique finds a technique by lesson number first, then by ID.
func resolveTechnique(val string) (curriculum.Technique, error) {
	if n, err := strconv.Atoi(strings.TrimPrefix(val, "L")); err == nil {
		if t, ok := curriculum.TechniqueByLesson(n); ok {
			return t, nil
		}
		return curriculum.Technique{}, fmt.Errorf("no lesson %d in the curriculum", n)
	}
	return curriculum.GetTechnique(val)
}

// resolveVariation finds a variation by ID or case-insensitive name
// substring within a technique.
func resolveVariation(tech curriculum.Technique, val string) (curriculum.Variation, error) {
	for _, v := range tech.Variations {
		if v.ID == val {
			return v, nil
		}
	}
	q := strings.ToLower(val)
	var matches []curriculum.Variation
	for _, v := range tech.Variations {
		if strings.Contains(strings.ToLower(v.Name), q) {
			matches = append(matches, v)
		}
	}
	switch len(matches) {
	case 0:
		return curriculum.Variation{}, fmt.Errorf("no variation of %q matches %q", tech.Name, val)
	case 1:
		return matches[0], nil
	default:
		var names []string
		for _, v := range matches {
			names = append(names, v.Name)
		}
		return curriculum.Variation{}, fmt.Errorf("multiple variations of %q match %q: %s",
			tech.Name, val, strings.Join(names, ", "))
	}
}

// formatDate renders a timestamp for display; the zero time reads "never".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.Format("2006-01-02")
}
