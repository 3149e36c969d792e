package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newTemplateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Browse and apply journey templates",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List available templates",
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				fmt.Fprintln(out, ui.Heading(ui.IconCompass, "Templates"))
				for _, tpl := range engine.Templates() {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(tpl.Name),
						ui.Muted.Render(fmt.Sprintf("(%d basics, %d focus)", len(tpl.Basics), len(tpl.Focus))))
				}
				return nil
			},
		},
		&cobra.Command{
			Use:   "apply <name>",
			Short: "Replace task lists with a template",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				tpl := container.ApplyTemplate(strings.Join(args, " "))
				fmt.Fprintf(cmd.OutOrStdout(), "%s Applied %s (%d basics, %d focus). History and XP are untouched.\n",
					ui.IconSparkle, tpl.Name, len(tpl.Basics), len(tpl.Focus))
				return nil
			},
		},
	)
	return cmd
}
