package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/evalonso/mealrota/internal/cli/formatter"
	"github.com/evalonso/mealrota/internal/domain"
)

// mealrotaHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func mealrotaHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

func validateRequired(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", label)
		}
		return nil
	}
}

func validateWindow(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, _, err := parseEvery(s); err != nil {
		return fmt.Errorf("enter a day count like 7 or a window like 5-9")
	}
	return nil
}

// splitCSV splits a comma-separated ingredient line, dropping empty entries.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// runDishWizard collects a new dish interactively. The returned dish still
// goes through DishService.Create for normalization and conflict checks.
func runDishWizard(p *domain.Profile) (*domain.Dish, error) {
	var (
		name, desc, notes string
		meals             []string
		mode              string
		days              []string
		window            string
		groups            = map[string]*string{}
	)
	for _, key := range domain.FoodGroupKeys {
		groups[key] = new(string)
	}

	mealOptions := make([]huh.Option[string], 0, len(p.Meals()))
	for _, m := range p.Meals() {
		mealOptions = append(mealOptions, huh.NewOption(m.Label(), string(m)))
	}
	dayOptions := make([]huh.Option[string], 0, len(domain.WeekdayKeys))
	for _, d := range domain.WeekdayKeys {
		dayOptions = append(dayOptions, huh.NewOption(d.Label(), string(d)))
	}

	basics := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Dish name").
				Validate(validateRequired("name")).
				Value(&name),
			huh.NewInput().
				Title("Description").
				Placeholder("optional").
				Value(&desc),
			huh.NewMultiSelect[string]().
				Title("Which meals?").
				Options(mealOptions...).
				Validate(func(selected []string) error {
					if len(selected) == 0 {
						return fmt.Errorf("pick at least one meal")
					}
					return nil
				}).
				Value(&meals),
			huh.NewSelect[string]().
				Title("How is it scheduled?").
				Options(
					huh.NewOption("Rotation (no fixed schedule)", "rotation"),
					huh.NewOption("Fixed weekdays", "days"),
					huh.NewOption("Recurring window", "window"),
				).
				Value(&mode),
		),
	).WithTheme(mealrotaHuhTheme()).WithShowHelp(false)

	if err := basics.Run(); err != nil {
		return nil, err
	}

	switch mode {
	case "days":
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewMultiSelect[string]().
					Title("Which weekdays?").
					Options(dayOptions...).
					Value(&days),
			),
		).WithTheme(mealrotaHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return nil, err
		}
	case "window":
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Serve every how many days?").
					Placeholder("7 or 5-9").
					Validate(validateWindow).
					Value(&window),
			),
		).WithTheme(mealrotaHuhTheme()).WithShowHelp(false)
		if err := form.Run(); err != nil {
			return nil, err
		}
	}

	groupFields := make([]huh.Field, 0, len(domain.FoodGroupKeys)+1)
	for _, key := range domain.FoodGroupKeys {
		groupFields = append(groupFields, huh.NewInput().
			Title(fmt.Sprintf("%s ingredients", titleWord(key))).
			Placeholder("comma separated, optional").
			Value(groups[key]))
	}
	groupFields = append(groupFields, huh.NewInput().
		Title("Notes").
		Placeholder("optional").
		Value(&notes))

	details := huh.NewForm(huh.NewGroup(groupFields...)).
		WithTheme(mealrotaHuhTheme()).WithShowHelp(false)
	if err := details.Run(); err != nil {
		return nil, err
	}

	freq := domain.Frequency{Mode: domain.FrequencyFixedDays}
	switch mode {
	case "days":
		freq.Days = domain.NormalizeDays(days)
	case "window":
		if strings.TrimSpace(window) != "" {
			minDays, maxDays, err := parseEvery(window)
			if err != nil {
				return nil, err
			}
			freq = domain.Frequency{Mode: domain.FrequencyRecurrence, MinDays: minDays, MaxDays: maxDays}
		}
	}

	foodGroups := domain.FoodGroups{}
	for key, value := range groups {
		if items := splitCSV(*value); len(items) > 0 {
			foodGroups[key] = items
		}
	}

	return &domain.Dish{
		ProfileID:   p.ID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(desc),
		Notes:       strings.TrimSpace(notes),
		MealTypes:   domain.NormalizeMealTypes(meals),
		FoodGroups:  foodGroups,
		Frequency:   freq,
	}, nil
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}
