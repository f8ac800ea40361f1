package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/drilltext"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/store"
)

var reflexCmd = &cobra.Command{
	Use:   "reflex <lesson>",
	Short: "Show a lesson's reflex drill, line by line, with competency markers",
	Long: `Split the lesson's reflex drill script into lines and classify each
one: lines drilling the lesson's own technique are marked ★; other
lines carry the badge of their weakest target. --run logs a run,
giving one drill rep to every target variation in the script.`,
	Args: cobra.ExactArgs(1),
	RunE: runReflex,
}

func init() {
	reflexCmd.Flags().Bool("run", false, "Log a run of this reflex drill")
}

func runReflex(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	if tech.ReflexDrill == "" {
		return fmt.Errorf("lesson %d (%s) has no reflex drill", tech.LessonNumber, tech.Name)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	t := a.Config.Thresholds()

	if doRun, _ := cmd.Flags().GetBool("run"); doRun {
		ctx := context.Background()
		key := progress.ReflexDrillKey(tech.ID)
		targets := drilltext.Targets(tech.ReflexDrill)
		a.ActiveTracker().RecordDrillRun(key, targets)

		if err := a.Events().AppendDrillRun(ctx, store.DrillEventData{
			ProfileID: profile.ID,
			DrillKey:  key,
		}); err != nil {
			return err
		}
		if err := a.Save(ctx); err != nil {
			return err
		}
		fmt.Printf("Reflex drill %q logged: %d target variations drilled.\n",
			tech.Name, len(targets))
		return nil
	}

	fmt.Printf("Reflex drill — Lesson %d, %s\n\n", tech.LessonNumber, tech.Name)
	for _, line := range insights.ReflexLines(tech, profile.Progress, t) {
		switch {
		case line.SelfReference:
			fmt.Printf("  ★ %s\n", line.Text)
		case len(line.Targets) > 0:
			fmt.Printf("  %s %s\n", levelBadge(line.MinLevel, a.Config), line.Text)
		default:
			fmt.Printf("    %s\n", line.Text)
		}
	}

	if st := profile.DrillStatus[progress.ReflexDrillKey(tech.ID)]; st != nil && len(st.History) > 0 {
		fmt.Printf("\nLast run %s (%d runs).\n", formatDate(st.History[0]), len(st.History))
	}
	return nil
}
