package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "List learner profiles",
	Args:  cobra.NoArgs,
	RunE:  runProfileList,
}

var profileAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a profile and make it active",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileAdd,
}

var profileUseCmd = &cobra.Command{
	Use:   "use <id-or-name>",
	Short: "Switch the active profile",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileUse,
}

var profileRenameCmd = &cobra.Command{
	Use:   "rename <id-or-name> <new-name>",
	Short: "Rename a profile",
	Args:  cobra.ExactArgs(2),
	RunE:  runProfileRename,
}

var profileRemoveCmd = &cobra.Command{
	Use:   "remove <id-or-name>",
	Short: "Delete a profile and all its progress",
	Args:  cobra.ExactArgs(1),
	RunE:  runProfileRemove,
}

func init() {
	profileCmd.AddCommand(profileAddCmd)
	profileCmd.AddCommand(profileUseCmd)
	profileCmd.AddCommand(profileRenameCmd)
	profileCmd.AddCommand(profileRemoveCmd)
}

func runProfileList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	active := a.Active()
	for _, p := range a.Profiles() {
		marker := " "
		if p.ID == active.ID {
			marker = "*"
		}
		fmt.Printf("%s %s  %s  (%d lessons touched)\n", marker, p.ID, p.Name, len(p.Progress))
	}
	return nil
}

func runProfileAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	p := a.CreateProfile(args[0])
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Profile %q created and active (%s).\n", p.Name, p.ID)
	return nil
}

func runProfileUse(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.SwitchProfile(args[0]); err != nil {
		return err
	}
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Active profile: %s\n", a.Active().Name)
	return nil
}

func runProfileRename(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.RenameProfile(args[0], args[1]); err != nil {
		return err
	}
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Printf("Profile renamed to %q.\n", args[1])
	return nil
}

func runProfileRemove(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if err := a.DeleteProfile(args[0]); err != nil {
		return err
	}
	if err := a.Save(context.Background()); err != nil {
		return err
	}
	fmt.Println("Profile deleted.")
	return nil
}
