package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/curriculum"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/flow"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/insights"
	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

var flowCmd = &cobra.Command{
	Use:   "flow <lesson>",
	Short: "Show a technique's flow-chart connections and related simulations",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlow,
}

var flowSetCmd = &cobra.Command{
	Use:   "set <lesson>",
	Short: "Replace a technique's connections for the active profile",
	Long: `Replace the connections wholesale. Omitting a flag sets that side to
empty — "flow set 6 --parents m-l1" leaves lesson 6 with no children.`,
	Args: cobra.ExactArgs(1),
	RunE: runFlowSet,
}

var flowClearCmd = &cobra.Command{
	Use:   "clear <lesson>",
	Short: "Drop the custom connections, restoring the curriculum defaults",
	Args:  cobra.ExactArgs(1),
	RunE:  runFlowClear,
}

func init() {
	flowSetCmd.Flags().StringSlice("parents", nil, "Technique IDs that lead into this one")
	flowSetCmd.Flags().StringSlice("children", nil, "Technique IDs this one leads to")
	flowCmd.AddCommand(flowSetCmd)
	flowCmd.AddCommand(flowClearCmd)
}

func runFlow(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	profile := a.Active()
	conns := flow.Resolve(tech.ID, profile)

	custom := ""
	if profile.CustomConnections[tech.ID] != nil {
		custom = " (customized)"
	}
	fmt.Printf("Lesson %d — %s%s\n\n", tech.LessonNumber, tech.Name, custom)
	fmt.Printf("  From: %s\n", techniqueNames(conns.Parents))
	fmt.Printf("  To:   %s\n", techniqueNames(conns.Children))

	related := insights.RelatedSimulations(tech.ID, profile.Progress, a.Config.Thresholds())
	if len(related) > 0 {
		fmt.Println("\nSimulations featuring this technique:")
		for _, s := range related {
			fmt.Printf("  L%-3d %-42s %d unknown, avg %.1f\n",
				s.Technique.LessonNumber, s.Technique.Name, s.UnknownCount, s.AvgCompetency)
		}
	}
	return nil
}

func runFlowSet(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	parents, _ := cmd.Flags().GetStringSlice("parents")
	children, _ := cmd.Flags().GetStringSlice("children")
	for _, id := range append(append([]string{}, parents...), children...) {
		if _, err := curriculum.GetTechnique(id); err != nil {
			return err
		}
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.ActiveTracker().SetConnectionOverride(tech.ID, &progress.ConnectionOverride{
		Parents:  parents,
		Children: children,
	})
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Connections for %s replaced: %d parents, %d children.\n",
		tech.Name, len(parents), len(children))
	return nil
}

func runFlowClear(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.ActiveTracker().SetConnectionOverride(tech.ID, nil)
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Connections for %s restored to curriculum defaults.\n", tech.Name)
	return nil
}

func techniqueNames(ids []string) string {
	if len(ids) == 0 {
		return "—"
	}
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if t, err := curriculum.GetTechnique(id); err == nil {
			names = append(names, fmt.Sprintf("%s (L%d)", t.Name, t.LessonNumber))
		} else {
			names = append(names, id)
		}
	}
	return strings.Join(names, ", ")
}
