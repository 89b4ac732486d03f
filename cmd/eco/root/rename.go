package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/ui"
)

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <name>",
		Short: "Rename your pet",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
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

			if err := svc.RenamePet(ctx, args[0]); err != nil {
				return err
			}
			p := svc.Profile()
			fmt.Fprintf(cmd.OutOrStdout(), "%s Your pet is now called %s\n",
				ui.Good.Render(ui.IconSparkle), ui.Key.Render(p.Name))
			return nil
		},
	}

	return cmd
}
