package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newFocusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Manage growth focus tasks",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List focus tasks",
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				s := container.Snapshot()
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconCompass, "Focus Tasks"))
				if len(s.FocusTasks) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(none yet — add one with `hj focus add`)"))
					return nil
				}
				for _, t := range s.FocusTasks {
					fmt.Fprintf(out, "- %s %s\n", t.Text, ui.Muted.Render(t.ID))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "add <text>",
			Short: "Add a focus task",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				task, err := container.AddFocusTask(strings.Join(args, " "))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s\n", ui.IconSparkle, task.Text, ui.Muted.Render(task.ID))
				return nil
			},
		},
		&cobra.Command{
			Use:   "rm <task-id>",
			Short: "Remove a focus task (earned XP is kept)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				container.DeleteFocusTask(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}
