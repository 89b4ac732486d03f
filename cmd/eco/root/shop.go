package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/ui"
)

func newShopCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "shop",
		Short: "Browse the eco shop",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			p := svc.Profile()
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconShop, "Eco Shop"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Your coins", fmt.Sprintf("%d %s", p.Coins, ui.IconCoin)))
			fmt.Fprintln(cmd.OutOrStdout(), "")

			for _, item := range catalog.ShopItems() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Key.Render(fmt.Sprintf("%d.", item.ID)),
					item.Name,
					ui.Gold.Render(fmt.Sprintf("%d coins", item.Price)))
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.Dim.Render(item.Description))
			}

			purchases, err := svc.PurchaseRepo().ListRecent(ctx, 5)
			if err != nil {
				return err
			}
			if len(purchases) > 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "")
				fmt.Fprintln(cmd.OutOrStdout(), ui.H2.Render("Recent purchases"))
				for _, pu := range purchases {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s %s\n", pu.Name,
						ui.Muted.Render(fmt.Sprintf("(%d coins, %s)", pu.Price, pu.PurchasedAt.Format("Jan 2 15:04"))))
				}
			}

			return nil
		},
	}

	return cmd
}
