package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newPartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parts",
		Short: "Manage your inner parts",
	}
	cmd.AddCommand(
		newPartsListCmd(),
		newPartsAddCmd(),
		&cobra.Command{
			Use:   "rm <part-id>",
			Short: "Remove a part",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				container, _, cleanup, err := openApp()
				if err != nil {
					return err
				}
				defer cleanup()

				container.DeletePart(args[0])
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
				return nil
			},
		},
	)
	return cmd
}

func newPartsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List known parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := container.Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconHeart, "Inner Parts"))
			for _, p := range s.Parts {
				desc := ""
				if p.Description != "" {
					desc = " — " + p.Description
				}
				fmt.Fprintf(out, "- %s (%s)%s %s\n", p.Name, p.Role, ui.Muted.Render(desc), ui.Dim.Render(p.ID))
			}
			return nil
		},
	}
}

func newPartsAddCmd() *cobra.Command {
	var role, description string

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a part",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			part, newBadges, err := container.AddPart(strings.Join(args, " "), engine.ParsePartRole(role), description)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Welcomed %s (%s) %s\n", ui.IconHeart, part.Name, part.Role, ui.Muted.Render(part.ID))
			if len(newBadges) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s New badges: %s\n", ui.IconTrophy, ui.Gold.Render(strings.Join(newBadges, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&role, "role", "", "part role (manager, firefighter, exile)")
	cmd.Flags().StringVar(&description, "desc", "", "short description")
	return cmd
}
