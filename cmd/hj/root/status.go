package root

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mattrebelskey/IFS-app/internal/app"
	"github.com/mattrebelskey/IFS-app/internal/engine"
	"github.com/mattrebelskey/IFS-app/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show progress, streaks and badges",
		RunE: func(cmd *cobra.Command, args []string) error {
			container, _, cleanup, err := openApp()
			if err != nil {
				return err
			}
			defer cleanup()

			s := container.Snapshot()
			cycleXP := engine.CycleProgress(s.TotalXP)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconJourney, "Healing Journey"))
			fmt.Fprintln(out, ui.LabelValue("Name", s.Settings.Name))
			fmt.Fprintln(out, ui.LabelValue("Level", s.CurrentLevel))
			fmt.Fprintln(out, ui.LabelValue("Cycle", ui.ProgressBar(cycleXP, engine.CycleSize, 30)))
			fmt.Fprintln(out, ui.LabelValue("Lifetime XP", s.TotalXP))
			if s.PrestigeLevel > 0 {
				fmt.Fprintln(out, ui.LabelValue("Journey", fmt.Sprintf("%s #%d", ui.IconPrestige, s.PrestigeLevel+1)))
			}
			if engine.CanPrestige(s.TotalXP) {
				fmt.Fprintln(out, ui.Gold.Render(ui.IconPrestige+" A new journey awaits — run `hj prestige` when ready."))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconStreak+" Momentum"))
			fmt.Fprintln(out, ui.LabelValue("Best streak", fmt.Sprintf("%d days", engine.MaxStreak(s.DailyHistory))))
			fmt.Fprintln(out, ui.LabelValue("This week", fmt.Sprintf("%.0f%%", engine.WeeklyCompletion(s, time.Now())*100)))
			if s.Settings.SurvivalMode {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconAnchor+" Survival mode on — just the essentials."))
			}
			fmt.Fprintln(out, "")

			// Today's checklist at a glance.
			today := app.Today()
			done := map[string]bool{}
			for _, id := range s.DailyHistory[today] {
				done[id] = true
			}
			fmt.Fprintln(out, ui.H2.Render(ui.IconDone+" Today"))
			for _, t := range engine.CurrentBasics(s) {
				fmt.Fprintf(out, "%s %s %s\n", ui.CheckMark(done[t.ID]), t.Text, ui.Muted.Render(t.ID))
			}
			for _, t := range s.FocusTasks {
				fmt.Fprintf(out, "%s %s %s\n", ui.CheckMark(done[t.ID]), t.Text, ui.Muted.Render(t.ID))
			}
			fmt.Fprintln(out, "")

			unlocked := map[string]bool{}
			for _, id := range s.Badges {
				unlocked[id] = true
			}
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Badges (%d/%d)", ui.IconTrophy, len(s.Badges), len(engine.BadgeCatalog()))))
			for _, b := range engine.BadgeCatalog() {
				if unlocked[b.ID] {
					fmt.Fprintf(out, "- %s %s %s\n", b.Icon, ui.Good.Render(b.Name), ui.Muted.Render(b.Description))
				} else {
					fmt.Fprintf(out, "- %s\n", ui.Dim.Render("🔒 "+b.Name))
				}
			}
			return nil
		},
	}
	return cmd
}
