package progress

import "testing"

func TestLookup_NilMap(t *testing.T) {
	if got := Lookup(nil, "m-l1", "v1"); got != nil {
		t.Errorf("Lookup(nil, ...) = %+v, want nil", got)
	}
}

func TestLookup_MissingLesson(t *testing.T) {
	data := map[string]*LessonProgress{}
	if got := Lookup(data, "m-l1", "v1"); got != nil {
		t.Errorf("Lookup on missing lesson = %+v, want nil", got)
	}
}

func TestLookup_NilLesson(t *testing.T) {
	data := map[string]*LessonProgress{"m-l1": nil}
	if got := Lookup(data, "m-l1", "v1"); got != nil {
		t.Errorf("Lookup on nil lesson = %+v, want nil", got)
	}
}

func TestLookup_MissingVariation(t *testing.T) {
	data := map[string]*LessonProgress{
		"m-l1": {TechniqueID: "m-l1", Variations: map[string]*VariationProgress{}},
	}
	if got := Lookup(data, "m-l1", "v1"); got != nil {
		t.Errorf("Lookup on missing variation = %+v, want nil", got)
	}
}

func TestLookup_Found(t *testing.T) {
	vp := &VariationProgress{ID: "v1", TrainingCount: 3}
	data := map[string]*LessonProgress{
		"m-l1": {TechniqueID: "m-l1", Variations: map[string]*VariationProgress{"v1": vp}},
	}
	got := Lookup(data, "m-l1", "v1")
	if got != vp {
		t.Fatalf("Lookup = %+v, want the stored record", got)
	}
	if got.TrainingCount != 3 {
		t.Errorf("TrainingCount = %d, want 3", got.TrainingCount)
	}
}
