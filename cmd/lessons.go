package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/app"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

var lessonsCmd = &cobra.Command{
	Use:   "lessons [lesson]",
	Short: "List the curriculum with competency badges, or detail one lesson",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLessons,
}

func init() {
	lessonsCmd.Flags().String("category", "", "Filter by category: mount, guard, side-mount or standing")
}

func runLessons(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	t := a.Config.Thresholds()

	if len(args) == 1 {
		tech, err := resolveTechnique(args[0])
		if err != nil {
			return err
		}
		printLessonDetail(a, tech, profile, t)
		return nil
	}

	techniques := curriculum.AllTechniques()
	if cat, _ := cmd.Flags().GetString("category"); cat != "" {
		techniques = curriculum.ByCategory(curriculum.Category(cat))
		if len(techniques) == 0 {
			return fmt.Errorf("unknown category %q", cat)
		}
	}

	for _, tech := range techniques {
		avg := insights.LessonAverageLevel(tech, profile.Progress, t)
		fmt.Printf("L%-3d %-42s %-12s %s\n",
			tech.LessonNumber, tech.Name,
			curriculum.CategoryDisplayName(tech.Category),
			levelBadge(avg, a.Config))
	}
	return nil
}

func printLessonDetail(a *app.App, tech curriculum.Technique, profile *progress.StudentProfile, t competency.Thresholds) {
	fmt.Printf("Lesson %d — %s (%s, rotation drill %d)\n\n",
		tech.LessonNumber, tech.Name,
		curriculum.CategoryDisplayName(tech.Category), tech.DrillGroup)

	for _, v := range tech.Variations {
		vp := progress.Lookup(profile.Progress, tech.ID, v.ID)
		score := competency.Score(vp)
		level := competency.LevelFromScore(score, t)

		var video, training, drill int
		last := "never"
		planned := ""
		notes := ""
		if vp != nil {
			video, training, drill = vp.VideoCount, vp.TrainingCount, vp.DrillCount
			last = formatDate(vp.LastPracticed)
			if vp.IsPlanned {
				planned = "  [planned]"
			}
			if vp.Notes != "" {
				notes = "\n      " + vp.Notes
			}
		}
		fmt.Printf("  %-30s %s  score %.1f%s\n", v.Name, levelBadge(level, a.Config), score, planned)
		fmt.Printf("      %dx video, %dx training, %dx drill — last practiced %s%s\n",
			video, training, drill, last, notes)
	}
}
