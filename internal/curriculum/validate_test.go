package curriculum

import (
	"strings"
	"testing"
)

// minimalValid returns a small set covering every category, which is
// the baseline the structural checks require.
func minimalValid() []Technique {
	return []Technique{
		{ID: "a", LessonNumber: 1, Name: "A", Category: CategoryMount, DrillGroup: 1,
			Variations: []Variation{{ID: "v1", Name: "One"}}},
		{ID: "b", LessonNumber: 2, Name: "B", Category: CategoryGuard, DrillGroup: 2,
			Variations: []Variation{{ID: "v1", Name: "One"}}},
		{ID: "c", LessonNumber: 3, Name: "C", Category: CategorySideMount, DrillGroup: 3,
			Variations: []Variation{{ID: "v1", Name: "One"}}},
		{ID: "d", LessonNumber: 4, Name: "D", Category: CategoryStanding, DrillGroup: 4,
			Variations: []Variation{{ID: "v1", Name: "One"}}},
	}
}

func TestValidateTechniques_Valid(t *testing.T) {
	if err := validateTechniques(minimalValid()); err != nil {
		t.Errorf("validateTechniques = %v, want nil", err)
	}
}

func TestValidateTechniques_Problems(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]Technique) []Technique
		wantSub string
	}{
		{
			"duplicate ID",
			func(ts []Technique) []Technique {
				ts[1].ID = "a"
				return ts
			},
			"duplicate technique ID",
		},
		{
			"duplicate lesson number",
			func(ts []Technique) []Technique {
				ts[1].LessonNumber = 1
				return ts
			},
			"lesson number 1",
		},
		{
			"no variations",
			func(ts []Technique) []Technique {
				ts[0].Variations = nil
				return ts
			},
			"has no variations",
		},
		{
			"duplicate variation ID",
			func(ts []Technique) []Technique {
				ts[0].Variations = append(ts[0].Variations, Variation{ID: "v1", Name: "Dup"})
				return ts
			},
			"duplicate variation ID",
		},
		{
			"drill group out of range",
			func(ts []Technique) []Technique {
				ts[0].DrillGroup = 5
				return ts
			},
			"drill group 5",
		},
		{
			"dangling parent",
			func(ts []Technique) []Technique {
				ts[0].Parents = []string{"ghost"}
				return ts
			},
			"nonexistent parent",
		},
		{
			"dangling child",
			func(ts []Technique) []Technique {
				ts[0].Children = []string{"ghost"}
				return ts
			},
			"nonexistent child",
		},
		{
			"empty category",
			func(ts []Technique) []Technique {
				return ts[:3]
			},
			"has no techniques",
		},
	}
	for _, tt := range tests {
		err := validateTechniques(tt.mutate(minimalValid()))
		if err == nil {
			t.Errorf("%s: validateTechniques = nil, want error", tt.name)
			continue
		}
		if !strings.Contains(err.Error(), tt.wantSub) {
			t.Errorf("%s: error %q does not mention %q", tt.name, err, tt.wantSub)
		}
	}
}

func TestValidateTechniques_CyclesAllowed(t *testing.T) {
	ts := minimalValid()
	ts[0].Children = []string{"b"}
	ts[1].Children = []string{"a"}
	ts[0].Parents = []string{"b"}
	ts[1].Parents = []string{"a"}
	if err := validateTechniques(ts); err != nil {
		t.Errorf("cyclic edges rejected: %v", err)
	}
}
