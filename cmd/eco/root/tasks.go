package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ecobuddy/internal/catalog"
	"ecobuddy/internal/ui"
)

func newTasksCmd() *cobra.Command {
	var showTips bool

	cmd := &cobra.Command{
		Use:   "tasks",
		Short: "List the eco task catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), ui.Heading(ui.IconLeaf, "Eco Tasks"))
			for _, t := range catalog.Tasks() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					ui.Key.Render(fmt.Sprintf("%d.", t.ID)),
					t.Title,
					ui.Muted.Render(fmt.Sprintf("(+%.0f EXP, %s)", t.EXP, t.Category)))
				fmt.Fprintf(cmd.OutOrStdout(), "   %s\n", ui.Dim.Render(t.Description))
				if showTips {
					for _, tip := range t.Tips {
						fmt.Fprintf(cmd.OutOrStdout(), "   - %s\n", ui.Muted.Render(tip))
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showTips, "tips", false, "Show tips for each task")

	return cmd
}
