package root

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newCheckinCmd() *cobra.Command {
	var partIDs []string
	var notes string
	var intensity int

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Check in with your parts",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(partIDs) == 0 {
				return errors.New("at least one part is required (--part <id>)")
			}

			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			ci, newBadges, err := container.AddCheckIn(app.Today(), partIDs, notes, intensity)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Checked in with %d part(s), intensity %d %s\n",
				ui.IconHeart, len(ci.ActiveParts), ci.Intensity, ui.Muted.Render(ci.ID))
			if len(newBadges) > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s New badges: %s\n", ui.IconTrophy, ui.Gold.Render(strings.Join(newBadges, ", ")))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&partIDs, "part", nil, "part id (repeatable)")
	cmd.Flags().StringVar(&notes, "notes", "", "what did you notice?")
	cmd.Flags().IntVar(&intensity, "intensity", 5, "intensity 1-10")
	return cmd
}
