package insights

import (
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
)

func TestReflexLines_NoDrill(t *testing.T) {
	th := competency.DefaultThresholds()
	if got := ReflexLines(curriculum.Technique{ID: "x"}, nil, th); got != nil {
		t.Errorf("ReflexLines = %v, want nil without a script", got)
	}
}

func TestReflexLines_SelfReference(t *testing.T) {
	th := competency.DefaultThresholds()
	tech := mustTechnique(t, "m-l2")

	lines := ReflexLines(tech, nil, th)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0].SelfReference {
		t.Error("line 0 references lesson 1, not the drill's own technique")
	}
	if !lines[1].SelfReference {
		t.Error("line 1 drills the Americana itself, want SelfReference")
	}
}

func TestReflexLines_WeakestLinkGovernsMinLevel(t *testing.T) {
	th := competency.DefaultThresholds()
	tech := mustTechnique(t, "m-l2")

	// Line 0 targets every Trap and Roll variation. Master three of
	// the four; the untouched one must pull MinLevel down to None.
	data := withScore("m-l1", map[string]int{"v1": 5, "v2": 5, "v3": 5})

	lines := ReflexLines(tech, data, th)
	if lines[0].MinLevel != competency.LevelNone {
		t.Errorf("MinLevel = %v, want the weakest target's level", lines[0].MinLevel)
	}

	addScore(data, "m-l1", map[string]int{"v4": 5})
	lines = ReflexLines(tech, data, th)
	if lines[0].MinLevel != competency.Level4 {
		t.Errorf("MinLevel = %v, want Level4 once every target is mastered", lines[0].MinLevel)
	}
}
