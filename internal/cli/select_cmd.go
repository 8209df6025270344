package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
	"github.com/spf13/cobra"
)

func newSelectCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Record and inspect meal selections",
	}

	cmd.AddCommand(
		newSelectRecordCmd(app),
		newSelectClearCmd(app),
		newSelectHistoryCmd(app),
	)

	return cmd
}

func newSelectRecordCmd(app *App) *cobra.Command {
	var profile, date, meal string

	cmd := &cobra.Command{
		Use:   "record DISH",
		Short: "Record a dish as served",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}
			d, err := resolveDish(ctx, app, p.ID, args[0])
			if err != nil {
				return err
			}
			if date == "" {
				date = time.Now().UTC().Format("2006-01-02")
			}
			sel, err := app.Selections.Record(ctx, p.ID, date, domain.MealKey(meal), d.ID)
			if err != nil {
				return err
			}
			fmt.Printf("Recorded %s for %s %s\n", d.Name, sel.Date, sel.Meal.Label())
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&meal, "meal", "dinner", "Meal slot (breakfast, lunch, dinner, supper)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newSelectClearCmd(app *App) *cobra.Command {
	var profile, date, meal string

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Clear a recorded selection",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}
			if err := app.Selections.Clear(ctx, p.ID, date, domain.MealKey(meal)); err != nil {
				return err
			}
			fmt.Printf("Cleared %s %s\n", date, meal)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&meal, "meal", "dinner", "Meal slot")
	_ = cmd.MarkFlagRequired("profile")
	_ = cmd.MarkFlagRequired("date")

	return cmd
}

func newSelectHistoryCmd(app *App) *cobra.Command {
	var profile, from, to string

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded selections",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}

			if (from == "") != (to == "") {
				return fmt.Errorf("--from and --to must be used together")
			}
			if from == "" {
				// Default to the trailing four weeks.
				now := time.Now().UTC()
				to = now.Format("2006-01-02")
				from = now.AddDate(0, 0, -28).Format("2006-01-02")
			}

			selections, err := app.Selections.ListRange(ctx, p.ID, from, to)
			if err != nil {
				return err
			}
			if len(selections) == 0 {
				fmt.Println("No selections recorded.")
				return nil
			}

			dishes, err := app.Dishes.ListByProfile(ctx, p.ID)
			if err != nil {
				return err
			}
			names := make(map[string]string, len(dishes))
			for _, d := range dishes {
				names[d.ID] = d.Name
			}

			fmt.Printf("%s\n", formatter.FormatSelections(selections, names))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	cmd.Flags().StringVar(&from, "from", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&to, "to", "", "Range end (YYYY-MM-DD)")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
