package cli

import (
	"github.com/evalonso/mealrota/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Profiles   service.ProfileService
	Dishes     service.DishService
	Selections service.SelectionService
	Suggest    service.SuggestService
	Import     service.ImportService

	// IsInteractive reports whether stdin is a terminal; wizards and the
	// plan review UI refuse to start without one.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "mealrota" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "mealrota",
		Short: "Meal rotation planner",
	}

	root.AddCommand(
		newProfileCmd(app),
		newDishCmd(app),
		newPlanCmd(app),
		newSelectCmd(app),
		newStrategyCmd(app),
		newImportCmd(app),
		newServeCmd(app),
	)

	return root
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}
