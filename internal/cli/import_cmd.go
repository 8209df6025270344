package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Import a profile export file",
		Long: `Import a profile, its dishes, and its selection history from a
JSON export. The import runs in a single transaction; a file that fails
validation leaves the database untouched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := app.Import.ImportProfile(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Imported profile %s: %d dishes, %d selections\n",
				result.Profile.Name, result.DishCount, result.SelectionCount)
			return nil
		},
	}
}
