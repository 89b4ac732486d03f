package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/engine"
	"ecobuddy/internal/ui"
)

func newBuyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "buy <item-id>",
		Short: "Buy a shop item",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("item id is required")
			}
			if _, err := strconv.Atoi(args[0]); err != nil {
				return errors.New("item id must be an integer")
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
			item := catalog.ShopItemByID(id)
			if item == nil {
				return fmt.Errorf("item %d not found (see 'eco shop')", id)
			}

			if err := svc.Purchase(ctx, item.ID, item.Name, item.Price); err != nil {
				if errors.Is(err, engine.ErrInsufficientCoins) {
					p := svc.Profile()
					return fmt.Errorf("you need %d coins for %s but only have %d — complete more tasks to earn coins",
						item.Price, item.Name, p.Coins)
				}
				return err
			}

			// The Plant Hat also counts toward the hat-collection achievement.
			if item.ID == catalog.PlantHatID {
				if err := svc.AddHat(ctx); err != nil {
					return err
				}
			}

			p := svc.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
				ui.Good.Render(ui.IconDone+" Purchased"), item.Name,
				ui.Muted.Render(fmt.Sprintf("(%d coins, %d left)", item.Price, p.Coins)))
			return nil
		},
	}

	return cmd
}
