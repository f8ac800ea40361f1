package curriculum

import "testing"

func TestGetTechnique_Exists(t *testing.T) {
	tech, err := GetTechnique("m-l2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tech.Name != "Americana Armlock" {
		t.Errorf("got name %q, want %q", tech.Name, "Americana Armlock")
	}
	if tech.LessonNumber != 2 {
		t.Errorf("got lesson %d, want 2", tech.LessonNumber)
	}
	if tech.Category != CategoryMount {
		t.Errorf("got category %q, want %q", tech.Category, CategoryMount)
	}
}

func TestGetTechnique_NotFound(t *testing.T) {
	_, err := GetTechnique("nonexistent")
	if err == nil {
		t.Fatal("expected error for nonexistent technique, got nil")
	}
}

func TestTechniqueByLesson(t *testing.T) {
	tech, ok := TechniqueByLesson(11)
	if !ok {
		t.Fatal("lesson 11 not found")
	}
	if tech.ID != "g-l11" {
		t.Errorf("got ID %q, want %q", tech.ID, "g-l11")
	}

	if _, ok := TechniqueByLesson(99); ok {
		t.Error("TechniqueByLesson(99) = found, want not found")
	}
}

func TestAllTechniques_CountAndOrder(t *testing.T) {
	all := AllTechniques()
	if len(all) != 15 {
		t.Fatalf("got %d techniques, want 15", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i].LessonNumber <= all[i-1].LessonNumber {
			t.Errorf("technique %q (lesson %d) appears after lesson %d",
				all[i].ID, all[i].LessonNumber, all[i-1].LessonNumber)
		}
	}
}

func TestByCategory(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{CategoryMount, 7},
		{CategoryGuard, 3},
		{CategorySideMount, 1},
		{CategoryStanding, 4},
	}
	total := 0
	for _, tt := range tests {
		got := ByCategory(tt.category)
		if len(got) != tt.want {
			t.Errorf("ByCategory(%q): got %d, want %d", tt.category, len(got), tt.want)
		}
		total += len(got)
	}
	if total != 15 {
		t.Errorf("categories total %d techniques, want 15", total)
	}
}

func TestDrillGroups(t *testing.T) {
	groups := DrillGroups()
	want := []int{1, 2, 3, 4}
	if len(groups) != len(want) {
		t.Fatalf("DrillGroups() = %v, want %v", groups, want)
	}
	for i, n := range want {
		if groups[i] != n {
			t.Errorf("DrillGroups()[%d] = %d, want %d", i, groups[i], n)
		}
	}
	for _, n := range groups {
		if len(ByDrillGroup(n)) == 0 {
			t.Errorf("ByDrillGroup(%d) is empty", n)
		}
	}
}

func TestWithSimulations(t *testing.T) {
	for _, tech := range WithSimulations() {
		if !tech.HasSimulation() {
			t.Errorf("technique %q listed without simulation steps", tech.ID)
		}
	}
	if len(WithSimulations()) != 15 {
		t.Errorf("got %d simulations, want every lesson to carry one", len(WithSimulations()))
	}
}

func TestDefaultConnections_Known(t *testing.T) {
	parents, children := DefaultConnections("m-l1")
	if len(parents) != 0 {
		t.Errorf("m-l1 parents = %v, want none", parents)
	}
	if len(children) != 1 || children[0] != "m-l3" {
		t.Errorf("m-l1 children = %v, want [m-l3]", children)
	}
}

func TestDefaultConnections_UnknownYieldsEmptyNonNil(t *testing.T) {
	parents, children := DefaultConnections("nope")
	if parents == nil || children == nil {
		t.Fatal("unknown ID yielded nil slices, want empty non-nil")
	}
	if len(parents) != 0 || len(children) != 0 {
		t.Errorf("unknown ID yielded edges: %v / %v", parents, children)
	}
}

func TestValidate_SeededCurriculum(t *testing.T) {
	if err := Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}
