package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
	"github.com/evalonso/mealrota/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	var (
		profile  string
		date     string
		days     int
		strategy string
		order    []string
		seed     int64
		asJSON   bool
		review   bool
	)

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Suggest a meal plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}

			req := service.SuggestRequest{
				ProfileID:  p.ID,
				Days:       days,
				StrategyID: strategy,
				Order:      order,
			}
			if date != "" {
				start, err := time.ParseInLocation("2006-01-02", date, time.UTC)
				if err != nil {
					return fmt.Errorf("invalid --date %q, expected YYYY-MM-DD", date)
				}
				req.StartDate = start
			}
			if cmd.Flags().Changed("seed") {
				req.Seed = &seed
			}

			plan, err := app.Suggest.Suggest(ctx, req)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				return enc.Encode(plan)
			}

			if review {
				if !app.interactive() {
					return fmt.Errorf("--review requires an interactive terminal")
				}
				return runPlanReview(ctx, app, p.ID, plan)
			}

			fmt.Printf("%s\n", formatter.FormatPlan(p.Name, plan))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	cmd.Flags().StringVar(&date, "date", "", "Start date (YYYY-MM-DD, default today)")
	cmd.Flags().IntVar(&days, "days", 7, "Number of days to plan")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Heuristic strategy preset")
	cmd.Flags().StringSliceVar(&order, "order", nil, "Explicit soft-heuristic order, overrides --strategy")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Random seed for reproducible plans")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the plan as JSON")
	cmd.Flags().BoolVar(&review, "review", false, "Review the plan interactively and record accepted meals")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func runPlanReview(ctx context.Context, app *App, profileID string, plan []domain.DayPlan) error {
	model := newReviewModel(plan, func(date string, meal domain.MealKey, dishID string) error {
		_, err := app.Selections.Record(ctx, profileID, date, meal, dishID)
		return err
	})

	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return fmt.Errorf("running plan review: %w", err)
	}
	if m, ok := final.(*reviewModel); ok {
		fmt.Printf("Recorded %d selections.\n", m.accepted)
	}
	return nil
}
