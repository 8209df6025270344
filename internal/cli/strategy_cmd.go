package cli

import (
	"fmt"

	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStrategyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "strategy",
		Short: "Inspect planning strategies",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List heuristic strategy presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Printf("%s\n", formatter.FormatStrategies(app.Suggest.Strategies()))
			return nil
		},
	})

	return cmd
}
