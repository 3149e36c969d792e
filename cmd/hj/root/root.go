package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/ui"
)

const Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:           "hj",
	Short:         "Healing Journey — gentle habit tracking with RPG progression",
	Long:          "Healing Journey is a local-first self-care companion: daily basics, focus tasks, parts check-ins and wins, with XP, levels and badges on top.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")

	rootCmd.AddCommand(
		newStatusCmd(),
		newDoCmd(),
		newBasicsCmd(),
		newFocusCmd(),
		newWinCmd(),
		newPartsCmd(),
		newCheckinCmd(),
		newHealthCmd(),
		newStackCmd(),
		newTemplateCmd(),
		newLibraryCmd(),
		newPrestigeCmd(),
		newSettingsCmd(),
		newExportCmd(),
		newResetCmd(),
		newEncourageCmd(),
		newSuggestCmd(),
		newBoardCmd(),
		newServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+err.Error()))
		os.Exit(1)
	}
}
