package drilltext

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitReflexLines_TwoParts(t *testing.T) {
	got := SplitReflexLines("Practice all variations of the Trap and Roll Escape – Mount (L1) " +
		"In combination with all variations of the Americana Armlock – Mount (L2)")
	want := []string{
		"Practice all variations of the Trap and Roll Escape – Mount (L1)",
		"In combination with all variations of the Americana Armlock – Mount (L2)",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitReflexLines = %q, want %q", got, want)
	}
}

func TestSplitReflexLines_AndContinuation(t *testing.T) {
	got := SplitReflexLines("Practice the Body Fold Takedown – Standing (L14) " +
		"In combination with Take the Back – Mount (L4) " +
		"And all variations of the Rear Naked Choke – Back Mount (L5)")
	if len(got) != 3 {
		t.Fatalf("got %d lines, want 3: %q", len(got), got)
	}
	if !strings.HasPrefix(got[2], "And all variations") {
		t.Errorf("third line = %q, want the And-continuation", got[2])
	}
}

func TestSplitReflexLines_LowercaseAndIgnored(t *testing.T) {
	// "Trap and Roll" must not open a new line.
	got := SplitReflexLines("Practice the Trap and Roll Escape – Mount (L1)")
	if len(got) != 1 {
		t.Errorf("got %d lines, want 1: %q", len(got), got)
	}
}

func TestSplitReflexLines_TriggerAtStart(t *testing.T) {
	got := SplitReflexLines("In combination with the Leg Hook Takedown – Standing (L6)")
	if len(got) != 1 {
		t.Errorf("got %d lines, want 1 when the trigger opens the script: %q", len(got), got)
	}
}

func TestSplitReflexLines_Empty(t *testing.T) {
	if got := SplitReflexLines("   "); got != nil {
		t.Errorf("SplitReflexLines(blank) = %q, want nil", got)
	}
}
