package competency

import "github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"

// Practice weights. Live training builds competency fastest: it is
// weighted 4x a video review and 2x an isolated drill rep. Exported
// scores and stored data depend on these exact values.
const (
	VideoWeight    = 0.5
	TrainingWeight = 2.0
	DrillWeight    = 1.0
)

// Score converts a variation's practice counters into its competency
// score. A nil record (variation never touched) scores 0.
func Score(p *progress.VariationProgress) float64 {
	if p == nil {
		return 0
	}
	return float64(p.VideoCount)*VideoWeight +
		float64(p.TrainingCount)*TrainingWeight +
		float64(p.DrillCount)*DrillWeight
}
