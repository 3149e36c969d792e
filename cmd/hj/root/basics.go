package root

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newBasicsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "basics",
		Short: "Manage the daily basics list",
	}
	cmd.AddCommand(
		newBasicsListCmd(),
		newBasicsAddCmd(),
		newBasicsRmCmd(),
		newBasicsMoveCmd(),
	)
	return cmd
}

func newBasicsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List daily basics",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := container.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconAnchor, "Daily Basics"))
			if s.Settings.SurvivalMode {
				fmt.Fprintln(out, ui.Warn.Render("Survival mode on — showing the essentials list."))
			}
			for i, t := range engine.CurrentBasics(s) {
				fmt.Fprintf(out, "%2d. %s %s\n", i+1, t.Text, ui.Muted.Render(t.ID))
			}
			return nil
		},
	}
}

func newBasicsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add <text>",
		Short: "Add a custom basic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			task, err := container.AddBasicTask(strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconSparkle, task.Text, ui.Muted.Render(task.ID))
			return nil
		},
	}
}

func newBasicsRmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rm <task-id>",
		Short: "Remove a basic (earned XP is kept)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			container.DeleteBasicTask(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}

func newBasicsMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move <from> <to>",
		Short: "Reorder basics (1-based positions)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("from and to positions are required")
			}
			for _, a := range args {
				if _, err := strconv.Atoi(a); err != nil {
					return errors.New("positions must be integers")
				}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			from, _ := strconv.Atoi(args[0])
			to, _ := strconv.Atoi(args[1])

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := container.ReorderBasics(from-1, to-1); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Moved %d → %d\n", from, to)
			return nil
		},
	}
}
