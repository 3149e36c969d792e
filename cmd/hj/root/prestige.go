package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newPrestigeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prestige",
		Short: "Complete the current cycle and start a new journey",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			level, err := container.Prestige()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Journey %d begins. Your XP and badges travel with you.\n", ui.IconPrestige, level+1)
			return nil
		},
	}
}
