package competency

import (
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

func TestScore_NilProgress(t *testing.T) {
	if got := Score(nil); got != 0 {
		t.Errorf("Score(nil) = %f, want 0", got)
	}
}

func TestScore_Weights(t *testing.T) {
	tests := []struct {
		name string
		vp   progress.VariationProgress
		want float64
	}{
		{"untouched", progress.VariationProgress{}, 0},
		{"one video", progress.VariationProgress{VideoCount: 1}, 0.5},
		{"one training", progress.VariationProgress{TrainingCount: 1}, 2.0},
		{"one drill", progress.VariationProgress{DrillCount: 1}, 1.0},
		// 2 videos + 1 training: 2*0.5 + 1*2.0 = 3.0
		{"two videos one training", progress.VariationProgress{VideoCount: 2, TrainingCount: 1}, 3.0},
		{"mixed", progress.VariationProgress{VideoCount: 3, TrainingCount: 2, DrillCount: 4}, 9.5},
	}
	for _, tt := range tests {
		if got := Score(&tt.vp); got != tt.want {
			t.Errorf("%s: Score = %f, want %f", tt.name, got, tt.want)
		}
	}
}

func TestScore_MonotoneInEveryCounter(t *testing.T) {
	base := progress.VariationProgress{VideoCount: 2, TrainingCount: 2, DrillCount: 2}
	baseScore := Score(&base)

	for _, bump := range []progress.VariationProgress{
		{VideoCount: 3, TrainingCount: 2, DrillCount: 2},
		{VideoCount: 2, TrainingCount: 3, DrillCount: 2},
		{VideoCount: 2, TrainingCount: 2, DrillCount: 3},
	} {
		if got := Score(&bump); got <= baseScore {
			t.Errorf("Score(%+v) = %f, want > %f", bump, got, baseScore)
		}
	}
}
