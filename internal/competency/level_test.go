package competency

import "testing"

func TestLevelFromScore_DefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		score float64
		want  Level
	}{
		{-1, LevelNone},
		{0, LevelNone},
		{0.1, Level1},
		{0.5, Level1},
		{2.9, Level1},
		{3.0, Level2},
		{5.9, Level2},
		{6.0, Level3},
		{8.9, Level3},
		{9.0, Level4},
		{100, Level4},
	}
	for _, tt := range tests {
		if got := LevelFromScore(tt.score, th); got != tt.want {
			t.Errorf("LevelFromScore(%f) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestLevelFromScore_Level1BreakpointIgnored(t *testing.T) {
	// Any positive score below the Level2 breakpoint is Level1, no
	// matter where the Level1 breakpoint sits.
	th := DefaultThresholds()
	th.Level1 = 100
	if got := LevelFromScore(0.1, th); got != Level1 {
		t.Errorf("LevelFromScore(0.1) with Level1=100: got %v, want %v", got, Level1)
	}
}

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelNone, "none"},
		{Level1, "level1"},
		{Level4, "level4"},
		{Level(42), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d).String() = %q, want %q", tt.level, got, tt.want)
		}
	}
}
