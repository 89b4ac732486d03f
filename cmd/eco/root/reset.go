package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/ui"
)

func newResetCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Reset all pet data to defaults",
		Long: `Reset the pet, counters, coins, and history back to a fresh start.

Owner profile settings are kept. This cannot be undone.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return errors.New("refusing to reset without --yes")
			}

			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if err := svc.ResetAll(ctx); err != nil {
				return err
			}
			p := svc.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Reset complete: say hello to %s the %s\n",
				ui.Warn.Render(ui.IconWarn), ui.Key.Render(p.Name), ui.StageText(p.Stage))
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the reset")

	return cmd
}
