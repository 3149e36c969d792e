package root

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newDoCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "do <task-id>",
		Short: "Toggle a task for today (or --date)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = app.Today()
			} else if _, err := time.Parse("2006-01-02", date); err != nil {
				return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
			}

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			res, newBadges, err := container.ToggleTask(args[0], date)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if res.Completed {
				fmt.Fprintf(out, "%s %s (+%d XP, total %d)\n", ui.IconDone, res.TaskID, res.XPChange, res.TotalXP)
			} else {
				fmt.Fprintf(out, "%s %s undone (%d XP, total %d)\n", ui.IconBolt, res.TaskID, res.XPChange, res.TotalXP)
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s → %s\n", ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			if len(newBadges) > 0 {
				fmt.Fprintf(out, "%s New badges: %s\n", ui.IconTrophy, ui.Gold.Render(strings.Join(newBadges, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "date to toggle (YYYY-MM-DD, default today)")
	return cmd
}
