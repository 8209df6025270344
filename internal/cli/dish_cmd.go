package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
	"github.com/spf13/cobra"
)

// resolveDish accepts a dish id or name within a profile's catalog.
func resolveDish(ctx context.Context, app *App, profileID, input string) (*domain.Dish, error) {
	if input == "" {
		return nil, fmt.Errorf("dish name or ID is required")
	}
	dishes, err := app.Dishes.ListByProfile(ctx, profileID)
	if err != nil {
		return nil, err
	}
	for _, d := range dishes {
		if d.ID == input {
			return d, nil
		}
	}
	for _, d := range dishes {
		if strings.EqualFold(d.Name, input) {
			return d, nil
		}
	}
	return nil, fmt.Errorf("dish not found: %q", input)
}

// parseEvery parses a recurrence window flag value: "7" or "5-9".
func parseEvery(value string) (minDays, maxDays int, err error) {
	lo, hi, found := strings.Cut(value, "-")
	minDays, err = strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid --every value %q, expected N or MIN-MAX", value)
	}
	maxDays = minDays
	if found {
		maxDays, err = strconv.Atoi(strings.TrimSpace(hi))
		if err != nil {
			return 0, 0, fmt.Errorf("invalid --every value %q, expected N or MIN-MAX", value)
		}
	}
	return minDays, maxDays, nil
}

// dishFlags is the shared flag set for dish add and dish update.
type dishFlags struct {
	name, desc, notes string
	meals             []string
	days              []string
	every             string
	meat              []string
	produce           []string
	starch            []string
	dairy             []string
}

func (f *dishFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.name, "name", "", "Dish name")
	cmd.Flags().StringVar(&f.desc, "desc", "", "Description")
	cmd.Flags().StringVar(&f.notes, "notes", "", "Free-form notes")
	cmd.Flags().StringSliceVar(&f.meals, "meals", nil, "Meal types (breakfast,lunch,dinner,supper)")
	cmd.Flags().StringSliceVar(&f.days, "days", nil, "Fixed weekdays (e.g. tuesday,friday)")
	cmd.Flags().StringVar(&f.every, "every", "", "Recurrence window in days (e.g. 7 or 5-9)")
	cmd.Flags().StringSliceVar(&f.meat, "meat", nil, "Meat ingredients")
	cmd.Flags().StringSliceVar(&f.produce, "produce", nil, "Produce ingredients")
	cmd.Flags().StringSliceVar(&f.starch, "starch", nil, "Starch ingredients")
	cmd.Flags().StringSliceVar(&f.dairy, "dairy", nil, "Dairy ingredients")
}

func (f *dishFlags) frequency() (domain.Frequency, error) {
	if f.every != "" {
		if len(f.days) > 0 {
			return domain.Frequency{}, fmt.Errorf("--days and --every are mutually exclusive")
		}
		minDays, maxDays, err := parseEvery(f.every)
		if err != nil {
			return domain.Frequency{}, err
		}
		return domain.Frequency{Mode: domain.FrequencyRecurrence, MinDays: minDays, MaxDays: maxDays}, nil
	}
	return domain.Frequency{Mode: domain.FrequencyFixedDays, Days: domain.NormalizeDays(f.days)}, nil
}

func (f *dishFlags) foodGroups() domain.FoodGroups {
	return domain.FoodGroups{
		"meat":    f.meat,
		"produce": f.produce,
		"starch":  f.starch,
		"dairy":   f.dairy,
	}
}

func newDishCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dish",
		Short: "Manage a profile's dish catalog",
	}

	cmd.AddCommand(
		newDishAddCmd(app),
		newDishListCmd(app),
		newDishInspectCmd(app),
		newDishUpdateCmd(app),
		newDishRemoveCmd(app),
	)

	return cmd
}

func newDishAddCmd(app *App) *cobra.Command {
	var profile string
	var wizard bool
	flags := &dishFlags{}

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a dish to a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}

			var d *domain.Dish
			if wizard {
				if !app.interactive() {
					return fmt.Errorf("--wizard requires an interactive terminal")
				}
				d, err = runDishWizard(p)
				if err != nil {
					return err
				}
			} else {
				freq, err := flags.frequency()
				if err != nil {
					return err
				}
				d = &domain.Dish{
					ProfileID:   p.ID,
					Name:        flags.name,
					Description: flags.desc,
					Notes:       flags.notes,
					MealTypes:   domain.NormalizeMealTypes(flags.meals),
					FoodGroups:  flags.foodGroups(),
					Frequency:   freq,
				}
			}

			if err := app.Dishes.Create(ctx, d); err != nil {
				return err
			}
			fmt.Printf("Added dish %s (%s)\n", d.Name, formatter.FrequencyLabel(d.Frequency))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	cmd.Flags().BoolVar(&wizard, "wizard", false, "Collect the dish interactively")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newDishListCmd(app *App) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a profile's dishes",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			p, err := resolveProfile(ctx, app, profile)
			if err != nil {
				return err
			}
			dishes, err := app.Dishes.ListByProfile(ctx, p.ID)
			if err != nil {
				return err
			}
			if len(dishes) == 0 {
				fmt.Println("No dishes found.")
				return nil
			}
			fmt.Printf("%s\n", formatter.FormatDishList(dishes))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newDishInspectCmd(app *App) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "inspect DISH",
		Short: "Show dish details",
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
			fmt.Printf("%s\n", formatter.FormatDishInspect(d))
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newDishUpdateCmd(app *App) *cobra.Command {
	var profile string
	flags := &dishFlags{}

	cmd := &cobra.Command{
		Use:   "update DISH",
		Short: "Update a dish",
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

			if cmd.Flags().Changed("name") {
				d.Name = flags.name
			}
			if cmd.Flags().Changed("desc") {
				d.Description = flags.desc
			}
			if cmd.Flags().Changed("notes") {
				d.Notes = flags.notes
			}
			if cmd.Flags().Changed("meals") {
				d.MealTypes = domain.NormalizeMealTypes(flags.meals)
			}
			if cmd.Flags().Changed("days") || cmd.Flags().Changed("every") {
				freq, err := flags.frequency()
				if err != nil {
					return err
				}
				d.Frequency = freq
			}
			for _, group := range []struct {
				flag  string
				items []string
			}{
				{"meat", flags.meat},
				{"produce", flags.produce},
				{"starch", flags.starch},
				{"dairy", flags.dairy},
			} {
				if cmd.Flags().Changed(group.flag) {
					d.FoodGroups[group.flag] = group.items
				}
			}

			if err := app.Dishes.Update(ctx, d); err != nil {
				return err
			}
			fmt.Printf("Updated dish %s\n", d.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	flags.register(cmd)
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}

func newDishRemoveCmd(app *App) *cobra.Command {
	var profile string

	cmd := &cobra.Command{
		Use:   "remove DISH",
		Short: "Remove a dish",
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
			if err := app.Dishes.Delete(ctx, d.ID); err != nil {
				return err
			}
			fmt.Printf("Removed dish %s\n", d.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Profile name or ID")
	_ = cmd.MarkFlagRequired("profile")

	return cmd
}
