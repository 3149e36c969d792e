package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the full journal as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := out
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				path = app.ExportFileName(app.Today())
			}

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := container.Export(path); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Exported to %s\n", ui.IconSparkle, path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "output", "o", "", "output path")
	return cmd
}
