package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newSettingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Adjust name, theme and survival mode",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "name <name>",
			Short: "Set your display name",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				container.SetName(strings.Join(args, " "))
				fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
				return nil
			},
		},
		&cobra.Command{
			Use:   "theme <light|dark>",
			Short: "Set the color theme",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				if err := container.SetTheme(engine.Theme(args[0])); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Saved.")
				return nil
			},
		},
		newSurvivalCmd(),
	)
	return cmd
}

func newSurvivalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "survival <on|off>",
		Short: "Toggle survival mode (essentials only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var on bool
			switch args[0] {
			case "on":
				on = true
			case "off":
				on = false
			default:
				return errors.New("argument must be on or off")
			}

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			container.SetSurvivalMode(on)
			if on {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Warn.Render(ui.IconAnchor+" Survival mode on. Just the essentials count this week."))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Good.Render("Survival mode off. Welcome back."))
			}
			return nil
		},
	}
}
