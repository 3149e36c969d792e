package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newEncourageCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "encourage",
		Short: "Get a word of encouragement",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, adv, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			msg := adv.GenerateEncouragement(context.Background(), container.Snapshot())
			fmt.Fprintln(cmd.OutOrStdout(), ui.IconHeart+" "+ui.Good.Render(msg))
			return nil
		},
	}
}

func newSuggestCmd() *cobra.Command {
	var mood string

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest three tiny tasks for right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, adv, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			tasks := adv.SuggestMicroTasks(context.Background(), mood)
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconSparkle, "Tiny tasks"))
			for _, t := range tasks {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", t)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&mood, "mood", "okay", "how you are feeling")
	return cmd
}
