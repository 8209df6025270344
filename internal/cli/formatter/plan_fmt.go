package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/evalonso/mealrota/internal/domain"
)

// FormatPlan renders a suggestion plan grouped by day, one line per meal.
func FormatPlan(profileName string, plan []domain.DayPlan) string {
	var b strings.Builder
	b.WriteString(Header(fmt.Sprintf("Meal plan — %s", profileName)))
	b.WriteString("\n")

	labelWidth := 0
	dishWidth := 0
	for _, day := range plan {
		for _, meal := range day.MealOrder {
			if w := lipgloss.Width(meal.Label()); w > labelWidth {
				labelWidth = w
			}
			if w := lipgloss.Width(dishNameOrDash(day.Meals[meal])); w > dishWidth {
				dishWidth = w
			}
		}
	}

	for _, day := range plan {
		b.WriteString("\n")
		b.WriteString(Bold(day.Weekday))
		b.WriteString(" ")
		b.WriteString(Dim(day.Date))
		b.WriteString("\n")

		for _, meal := range day.MealOrder {
			suggestion := day.Meals[meal]
			name := dishNameOrDash(suggestion)

			b.WriteString("  ")
			b.WriteString(MealBadge(meal))
			b.WriteString(strings.Repeat(" ", labelWidth-lipgloss.Width(meal.Label())+colGap))
			if suggestion.DishName == nil {
				b.WriteString(StyleRed.Render(name))
			} else {
				b.WriteString(StyleFg.Render(name))
			}
			b.WriteString(strings.Repeat(" ", dishWidth-lipgloss.Width(name)+colGap))
			b.WriteString(Dim(suggestion.Reason))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func dishNameOrDash(s domain.MealSuggestion) string {
	if s.DishName == nil {
		return "—"
	}
	return *s.DishName
}

// FormatSelections renders recorded selections in date order.
func FormatSelections(selections []*domain.Selection, dishNames map[string]string) string {
	rows := make([][]string, 0, len(selections))
	for _, s := range selections {
		name := dishNames[s.DishID]
		if name == "" {
			name = s.DishID
		}
		rows = append(rows, []string{s.Date, MealBadge(s.Meal), StyleFg.Render(name)})
	}
	return RenderTable([]string{"DATE", "MEAL", "DISH"}, rows)
}
