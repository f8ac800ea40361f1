package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cbas1974-projet/GJJ-TRACKER/internal/progress"
)

var notesCmd = &cobra.Command{
	Use:   "notes <lesson> <variation> [text...]",
	Short: "Set or show the notes on a technique variation",
	Long: `With note text, replace the variation's notes; without, print the
current notes. --clear erases them.`,
	Args: cobra.MinimumNArgs(2),
	RunE: runNotes,
}

func init() {
	notesCmd.Flags().Bool("clear", false, "Erase the notes")
}

func runNotes(cmd *cobra.Command, args []string) error {
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

	clear, _ := cmd.Flags().GetBool("clear")
	text := strings.Join(args[2:], " ")

	if !clear && text == "" {
		vp := progress.Lookup(a.Active().Progress, tech.ID, variation.ID)
		if vp == nil || vp.Notes == "" {
			fmt.Printf("No notes on %s — %s.\n", tech.Name, variation.Name)
			return nil
		}
		fmt.Println(vp.Notes)
		return nil
	}

	if clear {
		text = ""
	}
	a.ActiveTracker().SetNotes(tech.ID, variation.ID, text)
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	if text == "" {
		fmt.Printf("Notes on %s — %s cleared.\n", tech.Name, variation.Name)
	} else {
		fmt.Printf("Notes on %s — %s updated.\n", tech.Name, variation.Name)
	}
	return nil
}
