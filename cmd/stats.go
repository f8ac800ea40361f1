package cmd

import (
	"context"
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show drill-group breakdowns and overall practice counts",
	Args:  cobra.NoArgs,
	RunE:  runStats,
}

const statsBarWidth = 30

func runStats(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	t := a.Config.Thresholds()

	fmt.Printf("Profile: %s\n\n", profile.Name)

	for _, stats := range insights.AllDrillGroups(profile.Progress, t) {
		fmt.Printf("Rotation drill %d — %s\n", stats.DrillGroup,
			stats.Summary(a.Config.LevelName))
		fmt.Printf("  %s\n\n", statsBar(stats))
	}

	counts, err := a.Events().TotalCounts(context.Background(), profile.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Lifetime reps: %d video, %d training, %d drill\n",
		counts.Video, counts.Training, counts.Drill)

	last, err := a.Events().LatestPhysicalPractice(context.Background(), profile.ID)
	if err != nil {
		return err
	}
	fmt.Printf("Last physical practice: %s\n", formatDate(last))
	return nil
}

// statsBar renders a proportional colored bar of the group's levels.
func statsBar(s insights.DrillGroupStats) string {
	if s.Total == 0 {
		return strings.Repeat("░", statsBarWidth)
	}
	var b strings.Builder
	used := 0
	order := []competency.Level{competency.Level4, competency.Level3, competency.Level2, competency.Level1}
	for _, l := range order {
		n := s.Counts[l] * statsBarWidth / s.Total
		if n == 0 {
			continue
		}
		used += n
		b.WriteString(lipgloss.NewStyle().
			Foreground(levelColors[l]).
			Render(strings.Repeat("█", n)))
	}
	if used < statsBarWidth {
		b.WriteString(strings.Repeat("░", statsBarWidth-used))
	}
	return b.String()
}
