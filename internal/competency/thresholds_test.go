package competency

import "testing"

func TestThresholdsValidate_Defaults(t *testing.T) {
	if err := DefaultThresholds().Validate(); err != nil {
		t.Errorf("DefaultThresholds().Validate() = %v, want nil", err)
	}
}

func TestThresholdsValidate_NotAscending(t *testing.T) {
	tests := []struct {
		name string
		th   Thresholds
	}{
		{"descending", Thresholds{Level1: 9, Level2: 6, Level3: 3, Level4: 1}},
		{"equal pair", Thresholds{Level1: 1, Level2: 3, Level3: 3, Level4: 9}},
	}
	for _, tt := range tests {
		if err := tt.th.Validate(); err == nil {
			t.Errorf("%s: Validate() = nil, want error", tt.name)
		}
	}
}
