package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <lesson>",
	Short: "Erase all progress on a lesson for the active profile",
	Long: `Delete the lesson's variation records, counters and history included.
Requires --yes; there is no undo beyond older snapshots.`,
	Args: cobra.ExactArgs(1),
	RunE: runReset,
}

func init() {
	resetCmd.Flags().Bool("yes", false, "Confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	tech, err := resolveTechnique(args[0])
	if err != nil {
		return err
	}
	if yes, _ := cmd.Flags().GetBool("yes"); !yes {
		return fmt.Errorf("refusing to reset lesson %d (%s) without --yes", tech.LessonNumber, tech.Name)
	}

	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.ActiveTracker().ResetLesson(tech.ID)
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Progress on lesson %d (%s) erased.\n", tech.LessonNumber, tech.Name)
	return nil
}
