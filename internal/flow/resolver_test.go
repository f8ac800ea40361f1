package flow

import (
	"reflect"
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

func TestResolve_CurriculumDefaults(t *testing.T) {
	p := progress.NewProfile("p1", "Test")

	got := Resolve("m-l1", p)
	if len(got.Parents) != 0 {
		t.Errorf("Parents = %v, want none", got.Parents)
	}
	if !reflect.DeepEqual(got.Children, []string{"m-l3"}) {
		t.Errorf("Children = %v, want [m-l3]", got.Children)
	}
}

func TestResolve_OverrideReplacesWholesale(t *testing.T) {
	p := progress.NewProfile("p1", "Test")
	p.CustomConnections["m-l3"] = &progress.ConnectionOverride{
		Parents:  []string{"m-l6"},
		Children: []string{},
	}

	got := Resolve("m-l3", p)
	if !reflect.DeepEqual(got.Parents, []string{"m-l6"}) {
		t.Errorf("Parents = %v, want the override only", got.Parents)
	}
	// The curriculum gives m-l3 four children; an explicitly empty
	// override means disconnected, not "use the defaults".
	if len(got.Children) != 0 {
		t.Errorf("Children = %v, want empty from the override", got.Children)
	}
	if got.Children == nil {
		t.Error("Children is nil, want empty non-nil")
	}
}

func TestResolve_NilEdgesInOverrideBecomeEmpty(t *testing.T) {
	p := progress.NewProfile("p1", "Test")
	p.CustomConnections["m-l1"] = &progress.ConnectionOverride{Parents: []string{"m-l6"}}

	got := Resolve("m-l1", p)
	if got.Children == nil || len(got.Children) != 0 {
		t.Errorf("Children = %v, want empty non-nil for an omitted edge list", got.Children)
	}
}

func TestResolve_UnknownTechnique(t *testing.T) {
	got := Resolve("nope", progress.NewProfile("p1", "Test"))
	if got.Parents == nil || got.Children == nil {
		t.Fatal("unknown technique yielded nil edges, want empty non-nil")
	}
	if len(got.Parents) != 0 || len(got.Children) != 0 {
		t.Errorf("unknown technique yielded edges: %+v", got)
	}
}

func TestResolve_NilProfile(t *testing.T) {
	got := Resolve("m-l1", nil)
	if !reflect.DeepEqual(got.Children, []string{"m-l3"}) {
		t.Errorf("Children = %v, want curriculum defaults for a nil profile", got.Children)
	}
}
