package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/ui"
)

func newDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete an eco task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("task id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("task id must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, _ := strconv.Atoi(args[0])
			task := catalog.TaskByID(id)
			if task == nil {
				return fmt.Errorf("task %d not found (see 'eco tasks')", id)
			}

			res, err := svc.CompleteTask(ctx, task.ID, task.EXP)
			if err != nil {
				return err
			}

			line := fmt.Sprintf("%s %s %s", ui.Good.Render(ui.IconDone+" Completed"), task.Title,
				ui.Muted.Render(fmt.Sprintf("(+%.1f EXP)", res.ExpAwarded)))
			fmt.Fprintln(cmd.OutOrStdout(), line)
			if res.BonusPercent > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render(fmt.Sprintf("Achievement bonus: +%d%%", res.BonusPercent)))
			}
			if res.CoinsAwarded > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Gold.Render(fmt.Sprintf("%s +%d coins", ui.IconCoin, res.CoinsAwarded)))
			}
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp,
					ui.Muted.Render(fmt.Sprintf("level %d → %d (%s)", res.LevelBefore, res.LevelAfter, ui.StageText(string(res.Stage)))))
			}
			return nil
		},
	}

	return cmd
}
