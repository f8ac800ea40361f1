package curriculum

// Category represents a positional category of the curriculum.
type Category string

const (
	CategoryMount     Category = "mount"
	CategoryGuard     Category = "guard"
	CategorySideMount Category = "side-mount"
	CategoryStanding  Category = "standing"
)

// AllCategories returns all categories in display order.
func AllCategories() []Category {
	return []Category{CategoryMount, CategoryGuard, CategorySideMount, CategoryStanding}
}

// CategoryDisplayName returns a human-readable name for a category.
func CategoryDisplayName(c Category) string {
	switch c {
	case CategoryMount:
		return "Mount"
	case CategoryGuard:
		return "Guard"
	case CategorySideMount:
		return "Side Mount"
	case CategoryStanding:
		return "Standing"
	default:
		return string(c)
	}
}

// Variation is a named sub-skill of a technique.
type Variation struct {
	ID   string
	Name string
}

// Technique is a single curriculum unit. Defined once in the static
// dataset and immutable at runtime.
type Technique struct {
	ID           string
	LessonNumber int
	Name         string
	Category     Category
	DrillGroup   int // 1-4, groups lessons into rotation drills
	Variations   []Variation

	// ReflexDrill is a free-text micro-sequence script; empty when the
	// lesson has none. FightSimSteps is an ordered free-text combat
	// scenario. Both embed "(L<n>)" lesson references resolved by the
	// drilltext parser.
	ReflexDrill   string
	FightSimSteps []string

	// Default flow-chart edges: techniques leading into this one
	// (prefixes) and techniques flowing out of it (suffixes).
	// Learner overrides replace these wholesale.
	Parents  []string
	Children []string
}

// HasSimulation reports whether the technique exposes a fight simulation.
func (t Technique) HasSimulation() bool {
	return len(t.FightSimSteps) > 0
}
