package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/app"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/config"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "gjjtracker",
	Short: "Personal Gracie Jiu-Jitsu progress tracker",
	Long:  "GJJ-Tracker — records practice per technique variation and tells you what to drill next.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GJJ_TRACKER_DB env var)")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(lessonsCmd)
	rootCmd.AddCommand(simsCmd)
	rootCmd.AddCommand(reflexCmd)
	rootCmd.AddCommand(flowCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then GJJ_TRACKER_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// openApp loads config, sets up logging, and opens the application
// state. Callers must Close the returned app.
func openApp(cmd *cobra.Command) (*app.App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	if err := cfg.Thresholds().Validate(); err != nil {
		log.WithError(err).Warn("level thresholds are not ascending; classification will not match the configured intent")
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}

	return app.Open(dbPath, cfg, log, nil)
}
