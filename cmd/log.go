package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/store"
)

var logCmd = &cobra.Command{
	Use:   "log <lesson> <variation>",
	Short: "Record a practice event for a technique variation",
	Long: `Record one practice rep. The lesson is a lesson number (e.g. 2 or L2)
or technique ID; the variation is matched by ID or name substring.`,
	Args: cobra.ExactArgs(2),
	RunE: runLog,
}

func init() {
	logCmd.Flags().String("type", "training", "Practice type: video, training or drill")
	logCmd.Flags().Bool("undo", false, "Remove one rep of this type instead (manual correction, no event logged)")
}

func runLog(cmd *cobra.Command, args []string) error {
	kindVal, _ := cmd.Flags().GetString("type")
	kind := progress.Kind(kindVal)
	switch kind {
	case progress.KindVideo, progress.KindTraining, progress.KindDrill:
	default:
		return fmt.Errorf("invalid practice type %q: must be video, training or drill", kindVal)
	}

	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	variation, err := resolveVariation(tech, args[1])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	tracker := a.ActiveTracker()

	var vp *progress.VariationProgress
	if undo, _ := cmd.Flags().GetBool("undo"); undo {
		// Corrections adjust the counter directly; the event log keeps
		// the original rep.
		vp = tracker.Adjust(tech.ID, variation.ID, kind, -1)
	} else {
		vp = tracker.LogPractice(tech.ID, variation.ID, kind)
		if err := a.Events().AppendPractice(ctx, store.PracticeEventData{
			ProfileID:   a.Active().ID,
			TechniqueID: tech.ID,
			VariationID: variation.ID,
			Kind:        string(kind),
		}); err != nil {
			return err
		}
	}
	if err := a.Save(ctx); err != nil {
		return err
	}

	score := competency.Score(vp)
	level := competency.LevelFromScore(score, a.Config.Thresholds())
	fmt.Printf("%s — %s: %s (score %.1f)  %s\n",
		tech.Name, variation.Name, kind, score, levelBadge(level, a.Config))
	return nil
}
