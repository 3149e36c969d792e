package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
)

func newHealthCmd() *cobra.Command {
	var sleep float64
	var movement int
	var mood string

	cmd := &cobra.Command{
		Use:   "health",
		Short: "Log sleep, movement and mood for today",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			log := engine.HealthLog{
				Date:            app.Today(),
				SleepHours:      sleep,
				MovementMinutes: movement,
				Mood:            mood,
			}
			if err := container.RecordHealthLog(log); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged. Rest matters too.")
			return nil
		},
	}

	cmd.Flags().Float64Var(&sleep, "sleep", 0, "hours slept")
	cmd.Flags().IntVar(&movement, "move", 0, "minutes of movement")
	cmd.Flags().StringVar(&mood, "mood", "", "one-word mood")
	return cmd
}
