package root

import (
	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/tui"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Open the interactive daily board",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(container, cmd.OutOrStdout())
		},
	}
}
