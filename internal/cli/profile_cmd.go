package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
	"github.com/spf13/cobra"
)

// resolveProfile accepts a profile name or id and returns the profile.
func resolveProfile(ctx context.Context, app *App, input string) (*domain.Profile, error) {
	if input == "" {
		return nil, fmt.Errorf("profile name or ID is required")
	}
	p, err := app.Profiles.Resolve(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("profile not found: %q", input)
	}
	return p, nil
}

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage planning profiles",
	}

	cmd.AddCommand(
		newProfileAddCmd(app),
		newProfileListCmd(app),
		newProfileInspectCmd(app),
		newProfileUpdateCmd(app),
		newProfileRemoveCmd(app),
	)

	return cmd
}

func newProfileAddCmd(app *App) *cobra.Command {
	var name string
	var meals int
	var strategy []string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a new profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p := &domain.Profile{
				Name:        name,
				MealsPerDay: meals,
				Heuristics:  strategy,
			}
			if err := app.Profiles.Create(context.Background(), p); err != nil {
				return err
			}
			fmt.Printf("Created profile %s (%d meals/day)\n", p.Name, p.MealsPerDay)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().IntVar(&meals, "meals", 0, "Meals per day (2-4, default 3)")
	cmd.Flags().StringSliceVar(&strategy, "order", nil, "Soft-heuristic order (e.g. unscheduled,avoidDuplicates,borrow)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			profiles, err := app.Profiles.List(context.Background())
			if err != nil {
				return err
			}
			if len(profiles) == 0 {
				fmt.Println("No profiles found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatProfileList(profiles))
			return nil
		},
	}
}

func newProfileInspectCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "inspect PROFILE",
		Short: "Show profile details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, args[0])
			if err != nil {
				return err
			}
			dishes, err := app.Dishes.ListByProfile(ctx, p.ID)
			if err != nil {
				return err
			}
			fmt.Printf("%s\n", formatter.FormatProfileInspect(p, len(dishes)))
			return nil
		},
	}
}

func newProfileUpdateCmd(app *App) *cobra.Command {
	var name string
	var meals int
	var strategy []string

	cmd := &cobra.Command{
		Use:   "update PROFILE",
		Short: "Update a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				p.Name = name
			}
			if cmd.Flags().Changed("meals") {
				p.MealsPerDay = meals
			}
			if cmd.Flags().Changed("order") {
				p.Heuristics = strategy
			}
			if err := app.Profiles.Update(ctx, p); err != nil {
				return err
			}
			fmt.Printf("Updated profile %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Profile name")
	cmd.Flags().IntVar(&meals, "meals", 0, "Meals per day (2-4)")
	cmd.Flags().StringSliceVar(&strategy, "order", nil, "Soft-heuristic order")

	return cmd
}

func newProfileRemoveCmd(app *App) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove PROFILE",
		Short: "Remove a profile and its dishes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, args[0])
			if err != nil {
				return err
			}
			if !yes {
				fmt.Printf("Remove profile %q and all its dishes and selections? [y/N] ", p.Name)
				var answer string
				fmt.Scanln(&answer)
				if !strings.EqualFold(answer, "y") {
					fmt.Println("Aborted.")
					return nil
				}
			}
			if err := app.Profiles.Delete(ctx, p.ID); err != nil {
				return err
			}
			fmt.Printf("Removed profile %s\n", p.Name)
			return nil
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Skip the confirmation prompt")

	return cmd
}
