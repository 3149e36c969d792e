package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newWinCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "win",
		Short: "Record and browse small wins",
	}
	cmd.AddCommand(
		newWinAddCmd(),
		newWinListCmd(),
		&cobra.Command{
			Use:   "rm <win-id>",
			Short: "Remove a win (earned XP is kept)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				container.DeleteWin(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newWinAddCmd() *cobra.Command {
	var winType string

	cmd := &cobra.Command{
		Use:   "add <text>",
		Short: "Record a win for today",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			win, newBadges, err := container.AddWin(app.Today(), strings.Join(args, " "), engine.JournalType(winType), "")
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Win recorded %s\n", ui.IconSparkle, ui.Muted.Render(win.ID))
			if len(newBadges) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s New badges: %s\n", ui.IconTrophy, ui.Gold.Render(strings.Join(newBadges, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&winType, "type", string(engine.JournalText), "entry type (text, photo, voice)")
	return cmd
}

func newWinListCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent wins",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := container.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Wins"))
			if len(s.Wins) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no wins yet — even tiny ones count)"))
				return nil
			}
			for i, w := range s.Wins {
				if limit > 0 && i >= limit {
					break
				}
				text := w.Text
				if text == "" {
					text = fmt.Sprintf("(%s entry)", w.Type)
				}
				fmt.Fprintf(out, "- %s %s %s\n", ui.Muted.Render(w.Date), text, ui.Dim.Render(w.ID))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 10, "max wins to show (0 for all)")
	return cmd
}
