package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/competency"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show the practice plan: flagged variations and saved combos",
	Args:  cobra.NoArgs,
	RunE:  runPlan,
}

var planAddCmd = &cobra.Command{
	Use:   "add <lesson> <variation>",
	Short: "Flag a variation for the practice plan",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPlanned(cmd, args, true) },
}

var planRemoveCmd = &cobra.Command{
	Use:   "remove <lesson> <variation>",
	Short: "Unflag a planned variation",
	Args:  cobra.ExactArgs(2),
	RunE:  func(cmd *cobra.Command, args []string) error { return setPlanned(cmd, args, false) },
}

var planComboCmd = &cobra.Command{
	Use:   "combo <lesson>",
	Short: "Save a source → focus → destination combo around a technique",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanCombo,
}

var planUncomboCmd = &cobra.Command{
	Use:   "uncombo <combo-id>",
	Short: "Drop a saved combo",
	Args:  cobra.ExactArgs(1),
	RunE:  runPlanUncombo,
}

func init() {
	planComboCmd.Flags().String("from", "", "Technique to enter the combo from (lesson number or ID)")
	planComboCmd.Flags().String("to", "", "Technique to exit the combo into (lesson number or ID)")
	planCmd.AddCommand(planAddCmd)
	planCmd.AddCommand(planRemoveCmd)
	planCmd.AddCommand(planComboCmd)
	planCmd.AddCommand(planUncomboCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	t := a.Config.Thresholds()

	items := insights.PlannedItems(profile.Progress)
	if len(items) == 0 && len(profile.PlannedCombos) == 0 {
		fmt.Println("Nothing planned. Flag variations with `gjjtracker plan add`.")
		return nil
	}

	for _, item := range items {
		level := competency.LevelFromScore(competency.Score(item.Progress), t)
		fmt.Printf("L%-3d %-42s %-30s %s\n",
			item.Technique.LessonNumber, item.Technique.Name,
			item.Variation.Name, levelBadge(level, a.Config))
	}

	if len(profile.PlannedCombos) > 0 {
		fmt.Println("\nSaved combos:")
		for _, c := range profile.PlannedCombos {
			fmt.Printf("  %s: %s → %s → %s\n", c.ID,
				comboLeg(c.SourceID), comboLeg(c.TechniqueID), comboLeg(c.DestinationID))
		}
	}
	return nil
}

func setPlanned(cmd *cobra.Command, args []string, planned bool) error {
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

	a.ActiveTracker().SetPlanned(tech.ID, variation.ID, planned)
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	verb := "added to"
	if !planned {
		verb = "removed from"
	}
	fmt.Printf("%s — %s %s the plan.\n", tech.Name, variation.Name, verb)
	return nil
}

func runPlanCombo(cmd *cobra.Command, args []string) error {
	focus, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	sourceID, destID := "", ""
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		t, err := resolveTechnique(from)
		if err != nil {
			return err
		}
		sourceID = t.ID
	}
	if to, _ := cmd.Flags().GetString("to"); to != "" {
		t, err := resolveTechnique(to)
		if err != nil {
			return err
		}
		destID = t.ID
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	combo := a.ActiveTracker().AddPlannedCombo(sourceID, focus.ID, destID)
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Combo saved (%s): %s → %s → %s\n", combo.ID,
		comboLeg(sourceID), comboLeg(focus.ID), comboLeg(destID))
	return nil
}

func runPlanUncombo(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.ActiveTracker().RemovePlannedCombo(args[0])
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Println("Combo removed.")
	return nil
}

func comboLeg(id string) string {
	if id == "" {
		return "(free)"
	}
	if t, err := curriculum.GetTechnique(id); err == nil {
		return t.Name
	}
	return id
}
