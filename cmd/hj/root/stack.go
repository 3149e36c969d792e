package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newStackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stack",
		Short: "Build habit stacks (after I X, I will Y)",
	}
	cmd.AddCommand(
		newStackListCmd(),
		newStackAddCmd(),
		newStackSuggestCmd(),
		&cobra.Command{
			Use:   "rm <stack-id>",
			Short: "Remove a habit stack",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				container.DeleteHabitStack(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newStackListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List habit stacks",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := container.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconCompass, "Habit Stacks"))
			if len(s.HabitStacks) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none yet — try `hj stack suggest --cue \"pour my coffee\"`)"))
				return nil
			}
			for _, h := range s.HabitStacks {
				fmt.Fprintf(out, "- After I %s, I will %s %s\n", h.Cue, h.Action, ui.Dim.Render(h.ID))
			}
			return nil
		},
	}
}

func newStackAddCmd() *cobra.Command {
	var cue, action string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a habit stack",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cue == "" || action == "" {
				return errors.New("--cue and --action are required")
			}

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			stack, err := container.AddHabitStack(cue, action)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s After I %s, I will %s %s\n", ui.IconSparkle, stack.Cue, stack.Action, ui.Muted.Render(stack.ID))
			return nil
		},
	}

	cmd.Flags().StringVar(&cue, "cue", "", "existing habit (after I ...)")
	cmd.Flags().StringVar(&action, "action", "", "new tiny action (I will ...)")
	return cmd
}

func newStackSuggestCmd() *cobra.Command {
	var cue string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest a stack for a cue",
		RunE: func(cmd *cobra.Command, args []string) error {
			if strings.TrimSpace(cue) == "" {
				return errors.New("--cue is required")
			}

			_, adv, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			suggestion := adv.SuggestHabitStack(context.Background(), cue)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render(suggestion))
			return nil
		},
	}

	cmd.Flags().StringVar(&cue, "cue", "", "existing habit to stack on")
	return cmd
}
