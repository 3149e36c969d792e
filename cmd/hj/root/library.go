package root

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newLibraryCmd() *cobra.Command {
	var category string
	cmd := &cobra.Command{
		Use:   "library [title]",
		Short: "Read the IFS and self-compassion articles",
		Long:  "Without arguments, lists the article titles. Pass a title (or a unique prefix of one) to read the full article.",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			entries := engine.LibraryByCategory(category)
			if len(entries) == 0 {
				return fmt.Errorf("no articles in category %q", category)
			}

			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconJournal, "Library"))
				for _, e := range entries {
					fmt.Fprintf(out, "- %s %s\n", ui.Key.Render(e.Title),
						ui.Muted.Render("("+e.Category+")"))
				}
				return nil
			}

			want := strings.ToLower(strings.Join(args, " "))
			for _, e := range entries {
				if strings.HasPrefix(strings.ToLower(e.Title), want) {
					fmt.Fprintln(out, ui.Heading(ui.IconJournal, e.Title))
					fmt.Fprintln(out, ui.Muted.Render(e.Category))
					fmt.Fprintln(out)
					fmt.Fprintln(out, e.Content)
					return nil
				}
			}
			return fmt.Errorf("no article matching %q", strings.Join(args, " "))
		},
	}
	cmd.Flags().StringVar(&category, "category", "", "filter by category (IFS, Specific Parts, Self-Compassion)")
	return cmd
}
