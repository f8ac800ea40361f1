package competency

import "fmt"

// Validate reports whether the breakpoints are strictly ascending.
// The classifier itself runs unguarded (first-match-wins), so a
// descending configuration silently produces assignments that don't
// match the configured intent — callers surface this as a warning at
// load time rather than rejecting the configuration.
func (t Thresholds) Validate() error {
	if t.Level1 < t.Level2 && t.Level2 < t.Level3 && t.Level3 < t.Level4 {
		return nil
	}
	return fmt.Errorf("thresholds not strictly ascending: %.2f, %.2f, %.2f, %.2f",
		t.Level1, t.Level2, t.Level3, t.Level4)
}
