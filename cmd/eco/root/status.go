package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show pet stats, achievements, and impact",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Profile()

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconPet, p.Name))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Stage", ui.StageText(p.Stage)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Level", p.Level))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("EXP", fmt.Sprintf("%.1f (%.1f to next level, %.0f%%)",
				p.Exp, svc.ExpToNextLevel(), svc.ProgressPercent())))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Coins", fmt.Sprintf("%d %s", p.Coins, ui.IconCoin)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Tasks", fmt.Sprintf("%d today, %d total", p.TasksToday, p.TotalTasks)))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Days logged", p.ConsecutiveDays))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconTrophy+" Achievements"))
			for _, a := range svc.Achievements() {
				mark := ui.Bad.Render("✗")
				if a.Unlocked {
					mark = ui.Good.Render("✓")
				}
				fmt.Fprintf(cmd.OutOrStdout(), "- %s %s %s %s\n", mark, a.Icon, a.Name,
					ui.Muted.Render(fmt.Sprintf("(+%d%% EXP)", a.ExpBoostPercent)))
			}
			fmt.Fprintln(cmd.OutOrStdout(), "")

			fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render(ui.IconGlobe+" Impact"))
			fmt.Fprintf(cmd.OutOrStdout(), "- Pieces of litter picked up: %.0f\n", p.LitterPicked)
			fmt.Fprintf(cmd.OutOrStdout(), "- Gallons of water saved: %.0f\n", p.WaterSaved)
			fmt.Fprintf(cmd.OutOrStdout(), "- CO₂ emissions reduced: %.1f kg\n", p.CO2Reduced)
			fmt.Fprintf(cmd.OutOrStdout(), "- Items recycled: %.0f\n", p.ItemsRecycled)

			recent, err := svc.ActivityRepo().ListRecent(ctx, 5)
			if err != nil {
				return err
			}
			if len(recent) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Recent activity"))
				for _, e := range recent {
					title := fmt.Sprintf("task #%d", e.TaskID)
					if t := catalog.TaskByID(e.TaskID); t != nil {
						title = t.Title
					}
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", title,
						ui.Muted.Render(fmt.Sprintf("(+%.1f EXP, +%d coins, %s)",
							e.ExpAwarded, e.CoinsAwarded, e.CompletedAt.Format("Jan 2 15:04"))))
				}
			}

			return nil
		},
	}

	return cmd
}
