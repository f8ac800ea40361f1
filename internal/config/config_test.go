package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
)

// isolate points every config search path at empty temp directories so
// the developer's real config cannot leak into the test.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("GJJ_TRACKER_CONFIG", dir)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Levels.Level1Name != "Découverte" {
		t.Errorf("Level1Name = %q, want %q", cfg.Levels.Level1Name, "Découverte")
	}
	if cfg.Levels.Level4Name != "Maîtrise" {
		t.Errorf("Level4Name = %q, want %q", cfg.Levels.Level4Name, "Maîtrise")
	}
	if got, want := cfg.Thresholds(), competency.DefaultThresholds(); got != want {
		t.Errorf("Thresholds = %+v, want %+v", got, want)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	dir := isolate(t)
	yaml := []byte("levels:\n  level2_name: Solidification\n  level2: 4.5\nlog:\n  level: debug\n")
	if err := os.WriteFile(filepath.Join(dir, "gjjtracker.yaml"), yaml, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Levels.Level2Name != "Solidification" {
		t.Errorf("Level2Name = %q, want the file value", cfg.Levels.Level2Name)
	}
	if cfg.Levels.Level2 != 4.5 {
		t.Errorf("Level2 = %f, want 4.5", cfg.Levels.Level2)
	}
	if cfg.Levels.Level3 != 6 {
		t.Errorf("Level3 = %f, want the default to survive a partial file", cfg.Levels.Level3)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLevelName(t *testing.T) {
	isolate(t)
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	tests := []struct {
		level competency.Level
		want  string
	}{
		{competency.LevelNone, "Début"},
		{competency.Level1, "Découverte"},
		{competency.Level2, "Consolidation"},
		{competency.Level3, "Réflexe"},
		{competency.Level4, "Maîtrise"},
	}
	for _, tt := range tests {
		if got := cfg.LevelName(tt.level); got != tt.want {
			t.Errorf("LevelName(%v) = %q, want %q", tt.level, got, tt.want)
		}
	}
}
