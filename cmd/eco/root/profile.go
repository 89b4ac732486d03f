package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/storage"
	"ecobuddy/internal/ui"
)

func newProfileCmd() *cobra.Command {
	var name string
	var city string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your owner profile",
		Long:  "Owner name and city live outside the pet record: they survive 'eco reset'.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			settings := svc.SettingsRepo()
			if name != "" {
				if err := settings.Set(ctx, storage.SettingOwnerName, name); err != nil {
					return err
				}
			}
			if city != "" {
				if err := settings.Set(ctx, storage.SettingOwnerCity, city); err != nil {
					return err
				}
			}

			curName, err := settings.Get(ctx, storage.SettingOwnerName)
			if err != nil {
				return err
			}
			curCity, err := settings.Get(ctx, storage.SettingOwnerCity)
			if err != nil {
				return err
			}
			if curName == "" {
				curName = ui.Muted.Render("(not set)")
			}
			if curCity == "" {
				curCity = ui.Muted.Render("(not set)")
			}

			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconInfo, "Owner Profile"))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("Name", curName))
			fmt.Fprintln(cmd.OutOrStdout(), ui.LabelValue("City", curCity))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Set the owner name")
	cmd.Flags().StringVar(&city, "city", "", "Set the owner city")

	return cmd
}
