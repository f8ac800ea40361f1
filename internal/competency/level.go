package competency

// Level is the ordinal competency a learner has reached on one
// technique variation.
type Level int

const (
	LevelNone Level = iota // No recorded practice
	Level1                 // Discovery
	Level2                 // Consolidation; unlocks reflex drills
	Level3                 // Reflex
	Level4                 // Mastery
)

// AllLevels returns all levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelNone, Level1, Level2, Level3, Level4}
}

// String returns the stable identifier used in storage and logs.
func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case Level1:
		return "level1"
	case Level2:
		return "level2"
	case Level3:
		return "level3"
	case Level4:
		return "level4"
	default:
		return "unknown"
	}
}

// Thresholds holds the four ascending score breakpoints that gate each
// level. They are learner-editable; ordering is not enforced here — a
// caller that wants a sanity check uses Validate at the config boundary.
type Thresholds struct {
	Level1 float64
	Level2 float64
	Level3 float64
	Level4 float64
}

// DefaultThresholds returns the stock breakpoints.
func DefaultThresholds() Thresholds {
	return Thresholds{Level1: 0.5, Level2: 3, Level3: 6, Level4: 9}
}

// LevelFromScore classifies a score against the thresholds.
// First match wins, strict ascending comparison. Note that Level1's
// breakpoint is never consulted: any positive score below the Level2
// breakpoint classifies as Level1. Stored data was calibrated against
// this branching, so it must not change.
func LevelFromScore(score float64, t Thresholds) Level {
	switch {
	case score <= 0:
		return LevelNone
	case score < t.Level2:
		return Level1
	case score < t.Level3:
		return Level2
	case score < t.Level4:
		return Level3
	default:
		return Level4
	}
}
