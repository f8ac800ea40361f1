package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/store"
)

var simsCmd = &cobra.Command{
	Use:   "sims [filter]",
	Short: "Browse fight simulations and their readiness",
	Long: `List fight simulations, ready ones first. The optional filter narrows
by lesson number or name substring. --recommend ranks by accessibility
instead: fewest unknown targets first, then lowest average competency.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSims,
}

var simsRunCmd = &cobra.Command{
	Use:   "run <lesson>",
	Short: "Log a run of a fight simulation (one drill rep per step target)",
	Args:  cobra.ExactArgs(1),
	RunE:  runSimsRun,
}

func init() {
	simsCmd.Flags().Bool("recommend", false, "Rank simulations by accessibility")
	simsCmd.Flags().Int("top", 0, "Show at most N simulations (0 = all)")
	simsCmd.AddCommand(simsRunCmd)
}

func runSims(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	t := a.Config.Thresholds()

	var sims []insights.SimReadiness
	if recommend, _ := cmd.Flags().GetBool("recommend"); recommend {
		sims = insights.RecommendSimulations(profile.Progress, t)
	} else {
		filter := ""
		if len(args) == 1 {
			filter = args[0]
		}
		sims = insights.BrowseSimulations(profile.Progress, t, filter)
	}
	if top, _ := cmd.Flags().GetInt("top"); top > 0 && len(sims) > top {
		sims = sims[:top]
	}

	for _, s := range sims {
		marker := " "
		if s.Ready() {
			marker = "✓"
		}
		fmt.Printf("%s L%-3d %-42s %d/%d mastered, %d unknown, avg %.1f\n",
			marker, s.Technique.LessonNumber, s.Technique.Name,
			s.Mastered, s.Total, s.UnknownCount, s.AvgCompetency)
		if st := profile.DrillStatus[progress.SimulationKey(s.Technique.ID)]; st != nil && len(st.History) > 0 {
			fmt.Printf("       last run %s (%d runs)\n", formatDate(st.History[0]), len(st.History))
		}
	}
	return nil
}

func runSimsRun(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	if !tech.HasSimulation() {
		return fmt.Errorf("lesson %d (%s) has no fight simulation", tech.LessonNumber, tech.Name)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	ctx := context.Background()
	profile := a.Active()
	t := a.Config.Thresholds()

	readiness := insights.SimulationReadiness(tech, profile.Progress, t)
	key := progress.SimulationKey(tech.ID)
	a.ActiveTracker().RecordDrillRun(key, readiness.Targets)

	if err := a.Events().AppendDrillRun(ctx, store.DrillEventData{
		ProfileID: profile.ID,
		DrillKey:  key,
	}); err != nil {
		return err
	}
	if err := a.Save(ctx); err != nil {
		return err
	}

	fmt.Printf("Fight simulation %q logged: %d target variations drilled.\n",
		tech.Name, len(readiness.Targets))
	return nil
}
