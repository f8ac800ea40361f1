package drilltext

import (
	"reflect"
	"testing"
)

func TestTargets_NamedVariation(t *testing.T) {
	got := Targets("Americana Armlock – Mount – Standard Variation (L2)")
	want := []Target{{TechniqueID: "m-l2", VariationID: "v2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Targets = %v, want %v", got, want)
	}
}

func TestTargets_AllVariations(t *testing.T) {
	got := Targets("Practice all variations of the Trap and Roll Escape – Mount (L1)")
	want := []Target{
		{TechniqueID: "m-l1", VariationID: "v1"},
		{TechniqueID: "m-l1", VariationID: "v2"},
		{TechniqueID: "m-l1", VariationID: "v3"},
		{TechniqueID: "m-l1", VariationID: "v4"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Targets = %v, want every variation of lesson 1", got)
	}
}

func TestTargets_AllStages(t *testing.T) {
	got := Targets("Punch Block Series – Guard – All Stages (L8)")
	if len(got) != 4 {
		t.Errorf("Targets = %v, want all 4 stages of lesson 8", got)
	}
}

func TestTargets_AllPhraseIsGlobal(t *testing.T) {
	// "all variations" anywhere in the script widens every reference,
	// including ones that name a specific variation.
	got := Targets("Practice all variations of the Trap and Roll Escape – Mount (L1) " +
		"In combination with the Americana Armlock – Mount – Standard Variation (L2)")
	if len(got) != 7 {
		t.Errorf("got %d targets, want 4 from L1 + 3 from L2", len(got))
	}
}

func TestTargets_NameMatchIsGlobal(t *testing.T) {
	// Variation names match anywhere in the text, not just near their
	// own lesson reference.
	got := Targets("Trap and Roll Escape – Mount – Headlock Variation (L1) " +
		"Positional Control – Mount – Low Swim (L3)")
	want := []Target{
		{TechniqueID: "m-l1", VariationID: "v3"},
		{TechniqueID: "m-l3", VariationID: "v3"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Targets = %v, want %v", got, want)
	}
}

func TestTargets_FallbackToFirstVariation(t *testing.T) {
	got := Targets("Something unrecognized (L5)")
	want := []Target{{TechniqueID: "m-l5", VariationID: "v1"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Targets = %v, want first variation fallback %v", got, want)
	}
}

func TestTargets_UnknownLessonSkipped(t *testing.T) {
	if got := Targets("Secret technique (L99)"); len(got) != 0 {
		t.Errorf("Targets = %v, want none for unknown lesson", got)
	}
}

func TestTargets_Deduplicated(t *testing.T) {
	got := Targets("Standard Variation (L2) and again the Standard Variation (L2)")
	want := []Target{{TechniqueID: "m-l2", VariationID: "v2"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Targets = %v, want duplicates collapsed to %v", got, want)
	}
}

func TestTargets_NoReferences(t *testing.T) {
	if got := Targets("Free rolling, no lesson references"); len(got) != 0 {
		t.Errorf("Targets = %v, want none", got)
	}
}
