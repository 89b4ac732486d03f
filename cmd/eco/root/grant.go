package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/ui"
)

func newGrantCmd() *cobra.Command {
	var exp float64
	var coins int

	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Manually grant EXP or coins",
		RunE: func(cmd *cobra.Command, args []string) error {
			if exp <= 0 && coins <= 0 {
				return errors.New("nothing to grant: pass --exp and/or --coins")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if exp > 0 {
				res, err := svc.AddExp(ctx, exp)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s +%.1f EXP %s\n",
					ui.Good.Render(ui.IconSparkle),
					res.ExpAwarded,
					ui.Muted.Render(fmt.Sprintf("(bonus %d%%)", res.BonusPercent)))
				if res.LevelUp {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", ui.BadgeLevelUp,
						ui.Muted.Render(fmt.Sprintf("level %d → %d", res.LevelBefore, res.LevelAfter)))
				}
			}
			if coins > 0 {
				if err := svc.AddCoins(ctx, coins); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s +%d coins\n", ui.Gold.Render(ui.IconCoin), coins)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&exp, "exp", 0, "EXP to grant (achievement bonus applies)")
	cmd.Flags().IntVar(&coins, "coins", 0, "Coins to grant")

	return cmd
}
