// Package config loads learner-editable settings: the level display
// names, the score thresholds gating each level, and logging options.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
)

// Config holds all application configuration.
type Config struct {
	Levels LevelsConfig `mapstructure:"levels"`
	Log    LogConfig    `mapstructure:"log"`
}

// LevelsConfig holds the display names and score breakpoints of the
// four competency levels. Breakpoints are free-form on purpose — see
// competency.Thresholds.Validate.
type LevelsConfig struct {
	Level1Name string `mapstructure:"level1_name"`
	Level2Name string `mapstructure:"level2_name"`
	Level3Name string `mapstructure:"level3_name"`
	Level4Name string `mapstructure:"level4_name"`

	Level1 float64 `mapstructure:"level1"`
	Level2 float64 `mapstructure:"level2"`
	Level3 float64 `mapstructure:"level3"`
	Level4 float64 `mapstructure:"level4"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Thresholds converts the configured breakpoints for the classifier.
func (c *Config) Thresholds() competency.Thresholds {
	return competency.Thresholds{
		Level1: c.Levels.Level1,
		Level2: c.Levels.Level2,
		Level3: c.Levels.Level3,
		Level4: c.Levels.Level4,
	}
}

// LevelName returns the configured display name for a level.
func (c *Config) LevelName(l competency.Level) string {
	switch l {
	case competency.Level1:
		return c.Levels.Level1Name
	case competency.Level2:
		return c.Levels.Level2Name
	case competency.Level3:
		return c.Levels.Level3Name
	case competency.Level4:
		return c.Levels.Level4Name
	default:
		return "Début"
	}
}

// Load reads configuration from file and environment variables.
// Search order: $GJJ_TRACKER_CONFIG dir, $XDG_CONFIG_HOME/gjjtracker,
// ~/.config/gjjtracker, then the working directory. A missing file is
// fine — defaults apply.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("gjjtracker")
	v.SetConfigType("yaml")
	if dir := os.Getenv("GJJ_TRACKER_CONFIG"); dir != "" {
		v.AddConfigPath(dir)
	}
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		v.AddConfigPath(filepath.Join(configHome, "gjjtracker"))
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "gjjtracker"))
	}
	v.AddConfigPath(".")

	setDefaults(v)

	v.SetEnvPrefix("GJJ_TRACKER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}

// setDefaults mirrors the stock settings of the original curriculum:
// Découverte / Consolidation / Réflexe / Maîtrise at 0.5 / 3 / 6 / 9.
func setDefaults(v *viper.Viper) {
	def := competency.DefaultThresholds()

	v.SetDefault("levels.level1_name", "Découverte")
	v.SetDefault("levels.level2_name", "Consolidation")
	v.SetDefault("levels.level3_name", "Réflexe")
	v.SetDefault("levels.level4_name", "Maîtrise")

	v.SetDefault("levels.level1", def.Level1)
	v.SetDefault("levels.level2", def.Level2)
	v.SetDefault("levels.level3", def.Level3)
	v.SetDefault("levels.level4", def.Level4)

	v.SetDefault("log.level", "info")
}
